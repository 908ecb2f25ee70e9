package abstractfactory

import (
	"fmt"
	"io"
)

// Button is a paintable push button.
type Button interface {
	Paint(w io.Writer)
}

// Checkbox is a paintable check box.
type Checkbox interface {
	Paint(w io.Writer)
}

type MacButton struct{}

func (MacButton) Paint(w io.Writer) { fmt.Fprintln(w, "Mac Button was rendered!") }

type MacCheckbox struct{}

func (MacCheckbox) Paint(w io.Writer) { fmt.Fprintln(w, "Mac Checkbox was rendered!") }

type WindowsButton struct{}

func (WindowsButton) Paint(w io.Writer) { fmt.Fprintln(w, "Windows Button was rendered!") }

type WindowsCheckbox struct{}

func (WindowsCheckbox) Paint(w io.Writer) { fmt.Fprintln(w, "Windows Checkbox was rendered!") }
