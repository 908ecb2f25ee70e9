package abstractfactory

import "github.com/EduardoAlcebiades/curso-design-patterns--creational/internal/domain"

// GUIFactory creates one family of widgets.
type GUIFactory interface {
	CreateButton() Button
	CreateCheckbox() Checkbox
}

type MacFactory struct{}

func (MacFactory) CreateButton() Button     { return MacButton{} }
func (MacFactory) CreateCheckbox() Checkbox { return MacCheckbox{} }

type WindowsFactory struct{}

func (WindowsFactory) CreateButton() Button     { return WindowsButton{} }
func (WindowsFactory) CreateCheckbox() Checkbox { return WindowsCheckbox{} }

// Application is a value accepted by --abstract-factory.
type Application string

const (
	AppMac     Application = "mac"
	AppWindows Application = "windows"
)

// Applications returns every accepted value, in display order.
func Applications() []Application {
	return []Application{AppMac, AppWindows}
}

// NewFactory maps an Application to its widget factory.
func NewFactory(argument string, app Application) (GUIFactory, error) {
	switch app {
	case AppMac:
		return MacFactory{}, nil
	case AppWindows:
		return WindowsFactory{}, nil
	default:
		return nil, domain.NewSelectionError(argument, app, Applications())
	}
}
