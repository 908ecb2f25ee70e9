package console

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Error    lipgloss.Style
}

// DefaultTheme builds styles bound to r so color output follows the
// writer's capabilities (plain text when it is not a terminal).
func DefaultTheme(r *lipgloss.Renderer) Theme {
	return Theme{
		Title:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
		Subtitle: r.NewStyle().Faint(true),
		Error:    r.NewStyle().Foreground(lipgloss.Color("203")),
	}
}
