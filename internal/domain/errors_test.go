package domain

import (
	"errors"
	"strings"
	"testing"
)

func TestOpErrorWrapUnwrap(t *testing.T) {
	root := errors.New("root")
	err := &OpError{
		Op:   "logger.setup",
		Kind: KindInvalidConfig,
		Path: "/tmp/x.log",
		Err:  root,
	}

	if !errors.Is(err, root) {
		t.Fatalf("expected errors.Is to match cause")
	}

	var got *OpError
	if !errors.As(err, &got) {
		t.Fatalf("expected errors.As to match OpError")
	}
	if got.Kind != KindInvalidConfig {
		t.Fatalf("expected kind %s", KindInvalidConfig)
	}
	if !strings.Contains(err.Error(), "path=/tmp/x.log") {
		t.Fatalf("expected path in message, got %q", err.Error())
	}
}

func TestOpErrorNil(t *testing.T) {
	var err *OpError
	if err.Error() != "<nil>" {
		t.Fatalf("unexpected nil message %q", err.Error())
	}
	if err.Unwrap() != nil {
		t.Fatalf("expected nil unwrap")
	}
}

func TestSelectionErrorMessage(t *testing.T) {
	err := &SelectionError{
		Argument: "builder",
		Value:    "truck",
		Options:  []string{"sport", "suv"},
	}

	want := "Invalid value 'truck' for argument '--builder'\n\nAvailable options:\n- sport\n- suv"
	if err.Error() != want {
		t.Fatalf("unexpected message:\n%s\nwant:\n%s", err.Error(), want)
	}
}

func TestSelectionErrorEmptyValue(t *testing.T) {
	err := NewSelectionError("factory-method", "", []string{"web", "windows"})
	if !strings.HasPrefix(err.Error(), "Invalid value '' for argument '--factory-method'") {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestSelectionErrorClassification(t *testing.T) {
	type app string
	var err error = NewSelectionError[app]("abstract-factory", "linux", []app{"mac", "windows"})

	if !errors.Is(err, ErrInvalidSelection) {
		t.Fatalf("expected errors.Is to match ErrInvalidSelection")
	}
	if !IsKind(err, KindInvalidSelection) {
		t.Fatalf("expected IsKind to match selection error")
	}
	if IsKind(err, KindExecution) {
		t.Fatalf("selection error must not classify as execution")
	}

	wrapped := &OpError{Op: "demo.run", Kind: KindExecution, Err: err}
	if !errors.Is(wrapped, ErrInvalidSelection) {
		t.Fatalf("expected wrapped selection error to match sentinel")
	}
	if !IsKind(wrapped, KindExecution) {
		t.Fatalf("expected outer OpError kind to win")
	}
}
