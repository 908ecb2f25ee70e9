package ports

import "io"

// Demo is one runnable pattern showcase bound to a command-line argument.
type Demo interface {
	// Argument is the flag name without the leading dashes (e.g. "builder").
	Argument() string
	// Options lists the values the demo accepts, in display order.
	Options() []string
	// Run resolves value and writes the demo output to w.
	// An unknown value yields a *domain.SelectionError before anything is written.
	Run(w io.Writer, value string) error
}
