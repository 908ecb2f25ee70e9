package factorymethod

import (
	"fmt"
	"io"
)

// Button is what a dialog renders and wires a click handler to.
type Button interface {
	Render(w io.Writer)
	OnClick(w io.Writer, handler func())
}

type HTMLButton struct {
	handler func()
}

func (b *HTMLButton) Render(w io.Writer) { fmt.Fprintln(w, "HTML button rendered!") }

func (b *HTMLButton) OnClick(w io.Writer, handler func()) {
	b.handler = handler
	fmt.Fprintln(w, "Click handler added!")
}

// Click fires the registered handler, if any.
func (b *HTMLButton) Click() {
	if b.handler != nil {
		b.handler()
	}
}

type WindowsButton struct {
	handler func()
}

func (b *WindowsButton) Render(w io.Writer) { fmt.Fprintln(w, "Windows button rendered!") }

func (b *WindowsButton) OnClick(w io.Writer, handler func()) {
	b.handler = handler
	fmt.Fprintln(w, "Click handler added!")
}

func (b *WindowsButton) Click() {
	if b.handler != nil {
		b.handler()
	}
}
