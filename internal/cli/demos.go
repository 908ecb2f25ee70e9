package cli

import (
	"log/slog"

	"github.com/EduardoAlcebiades/curso-design-patterns--creational/internal/patterns/abstractfactory"
	"github.com/EduardoAlcebiades/curso-design-patterns--creational/internal/patterns/builder"
	"github.com/EduardoAlcebiades/curso-design-patterns--creational/internal/patterns/factorymethod"
	"github.com/EduardoAlcebiades/curso-design-patterns--creational/internal/ports"
)

// newDemos is the dispatch table. Demos run in this order.
func newDemos(log *slog.Logger) []ports.Demo {
	if log == nil {
		log = discardLogger()
	}
	return []ports.Demo{
		factorymethod.NewDemo(log),
		abstractfactory.NewDemo(log),
		builder.NewDemo(log),
	}
}

func demoArguments() []string {
	demos := newDemos(nil)
	out := make([]string, 0, len(demos))
	for _, d := range demos {
		out = append(out, d.Argument())
	}
	return out
}
