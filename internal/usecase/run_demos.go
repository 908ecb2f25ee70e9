package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/EduardoAlcebiades/curso-design-patterns--creational/internal/domain"
	"github.com/EduardoAlcebiades/curso-design-patterns--creational/internal/ports"
)

// RunDemos runs the demos picked on the command line, in table order.
type RunDemos struct {
	demos    []ports.Demo
	reporter ports.Reporter
	log      *slog.Logger
}

type RunOption func(*RunDemos)

func WithReporter(r ports.Reporter) RunOption {
	return func(uc *RunDemos) {
		if r != nil {
			uc.reporter = r
		}
	}
}

func WithLogger(l *slog.Logger) RunOption {
	return func(uc *RunDemos) {
		if l != nil {
			uc.log = l
		}
	}
}

func NewRunDemos(demos []ports.Demo, opts ...RunOption) *RunDemos {
	uc := &RunDemos{
		demos: demos,
		log:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Summary counts what Execute did.
type Summary struct {
	Ran    int
	Failed int
}

// Execute runs every demo with a matching selection. A failing demo is
// reported and logged, and the remaining demos still run. The only error
// returned is the context's.
func (uc *RunDemos) Execute(ctx context.Context, w io.Writer, selections []domain.Selection) (Summary, error) {
	var sum Summary

	for _, d := range uc.demos {
		sel, ok := find(selections, d.Argument())
		if !ok {
			continue
		}
		if err := ctx.Err(); err != nil {
			return sum, err
		}

		sum.Ran++
		uc.log.Debug("demo.start", "argument", sel.Argument, "value", sel.Value)
		if uc.reporter != nil {
			uc.reporter.DemoStarted(sel.Argument, sel.Value)
		}

		if err := d.Run(w, sel.Value); err != nil {
			sum.Failed++
			uc.log.Warn("demo.failed", "argument", sel.Argument, "value", sel.Value, "error", err)
			if uc.reporter != nil {
				uc.reporter.DemoFailed(sel.Argument, err)
			} else {
				fmt.Fprintln(w, err.Error())
			}
			continue
		}

		uc.log.Info("demo.done", "argument", sel.Argument, "value", sel.Value)
	}

	return sum, nil
}

func find(selections []domain.Selection, argument string) (domain.Selection, bool) {
	for _, s := range selections {
		if s.Argument == argument {
			return s, true
		}
	}
	return domain.Selection{}, false
}
