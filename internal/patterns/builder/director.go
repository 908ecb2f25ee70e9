package builder

import "github.com/EduardoAlcebiades/curso-design-patterns--creational/internal/domain"

// Recipe is a fixed sequence of builder steps.
type Recipe func(b Builder)

// Director knows the recipes; builders know the representation.
type Director struct{}

// ConstructSportCar: two seats, small high-power engine, no extras.
func (Director) ConstructSportCar(b Builder) {
	b.Reset()
	b.SetSeats(2)
	b.SetEngine(Engine{Cylinders: 2.6, Power: 12})
	b.SetTripComputer(nil)
	b.SetGPS(GPSUnset)
}

// ConstructSUV: five seats, trip computer and basic GPS.
func (Director) ConstructSUV(b Builder) {
	b.Reset()
	b.SetSeats(5)
	b.SetEngine(Engine{Cylinders: 1.6, Power: 10})
	b.SetTripComputer(&TripComputer{Inches: 8, Bluetooth: 5.0})
	b.SetGPS(GPSBasic)
}

// Application is a value accepted by --builder.
type Application string

const (
	AppSport Application = "sport"
	AppSUV   Application = "suv"
)

// Applications returns every accepted value, in display order.
func Applications() []Application {
	return []Application{AppSport, AppSUV}
}

// Recipe maps an Application to the matching director method.
func (d Director) Recipe(argument string, app Application) (Recipe, error) {
	switch app {
	case AppSport:
		return d.ConstructSportCar, nil
	case AppSUV:
		return d.ConstructSUV, nil
	default:
		return nil, domain.NewSelectionError(argument, app, Applications())
	}
}

// Build runs the selected recipe against a car builder and a manual builder.
func Build(argument string, app Application) (Car, Manual, error) {
	var d Director
	recipe, err := d.Recipe(argument, app)
	if err != nil {
		return Car{}, Manual{}, err
	}

	cars := NewCarBuilder()
	manuals := NewManualBuilder()
	recipe(cars)
	recipe(manuals)

	return cars.Result(), manuals.Result(), nil
}
