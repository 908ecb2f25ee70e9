package abstractfactory

import (
	"io"
	"log/slog"
)

// Argument is the command-line flag that selects this demo.
const Argument = "abstract-factory"

// Demo wires NewFactory and Client behind ports.Demo.
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
	factory, err := NewFactory(Argument, Application(value))
	if err != nil {
		return err
	}
	d.log.Debug("abstractfactory.factory", "value", value)

	app := NewClient(factory)
	app.CreateUI()
	app.Paint(w)
	return nil
}
