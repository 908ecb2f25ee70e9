package builder

// Engine describes a car engine.
type Engine struct {
	Cylinders float64 `yaml:"cylinders"`
	Power     int     `yaml:"power"`
}

// TripComputer describes an on-board computer. Bluetooth is the supported
// bluetooth version; zero means the computer has none.
type TripComputer struct {
	Inches    int     `yaml:"inches"`
	Bluetooth float64 `yaml:"bluetooth,omitempty"`
}

// GPS is the navigation tier. The zero value means no GPS.
type GPS string

const (
	GPSUnset    GPS = ""
	GPSBasic    GPS = "basic"
	GPSAdvanced GPS = "advanced"
)

// MarshalYAML renders an unset tier as null.
func (g GPS) MarshalYAML() (any, error) {
	if g == GPSUnset {
		return nil, nil
	}
	return string(g), nil
}
