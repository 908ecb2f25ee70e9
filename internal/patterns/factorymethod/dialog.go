package factorymethod

import (
	"io"

	"github.com/EduardoAlcebiades/curso-design-patterns--creational/internal/domain"
)

// ButtonCreator is the factory method a concrete dialog provides.
type ButtonCreator interface {
	CreateButton() Button
}

// Dialog renders an OK button produced by its creator.
type Dialog struct {
	creator ButtonCreator
	closed  bool
}

func NewDialog(c ButtonCreator) *Dialog {
	return &Dialog{creator: c}
}

// Render creates the button, renders it and attaches the close handler.
// It returns the button so callers can interact with it.
func (d *Dialog) Render(w io.Writer) Button {
	ok := d.creator.CreateButton()
	ok.Render(w)
	ok.OnClick(w, d.close)
	return ok
}

// Closed reports whether the close handler has fired.
func (d *Dialog) Closed() bool { return d.closed }

func (d *Dialog) close() { d.closed = true }

type WebDialog struct{}

func (WebDialog) CreateButton() Button { return &HTMLButton{} }

type WindowsDialog struct{}

func (WindowsDialog) CreateButton() Button { return &WindowsButton{} }

// Application is a value accepted by --factory-method.
type Application string

const (
	AppWeb     Application = "web"
	AppWindows Application = "windows"
)

// Applications returns every accepted value, in display order.
func Applications() []Application {
	return []Application{AppWeb, AppWindows}
}

// NewDialogFor maps an Application to a dialog with the matching creator.
func NewDialogFor(argument string, app Application) (*Dialog, error) {
	switch app {
	case AppWeb:
		return NewDialog(WebDialog{}), nil
	case AppWindows:
		return NewDialog(WindowsDialog{}), nil
	default:
		return nil, domain.NewSelectionError(argument, app, Applications())
	}
}
