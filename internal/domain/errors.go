package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for broad classification.
var (
	ErrInvalidSelection = errors.New("invalid selection")
	ErrInvalidConfig    = errors.New("invalid config")
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindInvalidSelection ErrorKind = "invalid_selection"
	KindInvalidConfig    ErrorKind = "invalid_config"
	KindExecution        ErrorKind = "execution"
)

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op   string
	Kind ErrorKind
	Path string // Optional: relevant file path
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// SelectionError reports a flag value outside a demo's closed set of options.
// Its message is meant to be shown to the user as-is.
type SelectionError struct {
	Argument string
	Value    string
	Options  []string
}

func (e *SelectionError) Error() string {
	if e == nil {
		return "<nil>"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Invalid value '%s' for argument '--%s'\n\nAvailable options:", e.Value, e.Argument)
	for _, opt := range e.Options {
		b.WriteString("\n- ")
		b.WriteString(opt)
	}
	return b.String()
}

// Is lets errors.Is match ErrInvalidSelection.
func (e *SelectionError) Is(target error) bool {
	return target == ErrInvalidSelection
}

// NewSelectionError builds a SelectionError from any string-based enum.
func NewSelectionError[T ~string](argument string, value T, options []T) *SelectionError {
	opts := make([]string, 0, len(options))
	for _, o := range options {
		opts = append(opts, string(o))
	}
	return &SelectionError{
		Argument: argument,
		Value:    string(value),
		Options:  opts,
	}
}

// IsKind helps callers classify errors without depending on infra packages.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	var se *SelectionError
	if errors.As(err, &se) {
		return kind == KindInvalidSelection
	}
	return false
}
