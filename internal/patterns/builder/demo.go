package builder

import (
	"io"
	"log/slog"

	"github.com/EduardoAlcebiades/curso-design-patterns--creational/internal/infra/yamlout"
)

// Argument is the command-line flag that selects this demo.
const Argument = "builder"

// Demo prints the car and its manual built from the selected recipe.
type Demo struct {
	log *slog.Logger
}

func NewDemo(log *slog.Logger) *Demo {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Demo{log: log}
}

func (d *Demo) Argument() string { return Argument }

func (d *Demo) Options() []string {
	apps := Applications()
	out := make([]string, 0, len(apps))
	for _, a := range apps {
		out = append(out, string(a))
	}
	return out
}

func (d *Demo) Run(w io.Writer, value string) error {
	car, manual, err := Build(Argument, Application(value))
	if err != nil {
		return err
	}
	d.log.Debug("builder.built", "recipe", value, "seats", car.Seats)

	return yamlout.Write(w, car, manual)
}
