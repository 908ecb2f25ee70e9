// Package console frames demo output for a terminal.
package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/EduardoAlcebiades/curso-design-patterns--creational/internal/ports"
)

// Reporter prints a heading before each demo and the message of a failed one.
type Reporter struct {
	w     io.Writer
	theme Theme
}

var _ ports.Reporter = (*Reporter)(nil)

func NewReporter(w io.Writer) *Reporter {
	return &Reporter{
		w:     w,
		theme: DefaultTheme(lipgloss.NewRenderer(w)),
	}
}

func (r *Reporter) DemoStarted(argument, value string) {
	title := r.theme.Title.Render("--" + argument)
	if value == "" {
		fmt.Fprintln(r.w, title)
		return
	}
	fmt.Fprintf(r.w, "%s %s\n", title, r.theme.Subtitle.Render(value))
}

// DemoFailed prints the error text unchanged apart from styling,
// so option lists keep one value per line.
func (r *Reporter) DemoFailed(_ string, err error) {
	if err == nil {
		return
	}
	// Styled per line: lipgloss pads multi-line blocks to a common width.
	for _, line := range strings.Split(err.Error(), "\n") {
		fmt.Fprintln(r.w, r.theme.Error.Render(line))
	}
}
