package builder

import (
	"fmt"
	"math"
	"strconv"
)

// ManualBuilder writes a textual description of the car being built.
type ManualBuilder struct {
	manual *Manual
}

func NewManualBuilder() *ManualBuilder {
	return &ManualBuilder{manual: &Manual{}}
}

func (b *ManualBuilder) Reset() { b.manual = &Manual{} }

func (b *ManualBuilder) SetSeats(n int) {
	b.manual.Seats = fmt.Sprintf("%d seat(s)", n)
}

func (b *ManualBuilder) SetEngine(e Engine) {
	b.manual.Engine = fmt.Sprintf("Engine v%s, power: %d", formatNumber(e.Cylinders), e.Power)
}

func (b *ManualBuilder) SetTripComputer(tc *TripComputer) {
	if tc == nil {
		b.manual.TripComputer = "none"
		return
	}

	bluetooth := "none"
	if tc.Bluetooth != 0 {
		bluetooth = formatVersion(tc.Bluetooth)
	}
	b.manual.TripComputer = fmt.Sprintf("%d inches, bluetooth: %s", tc.Inches, bluetooth)
}

func (b *ManualBuilder) SetGPS(g GPS) {
	b.manual.GPS = gpsLabel(g)
}

func (b *ManualBuilder) Result() Manual {
	out := *b.manual
	b.Reset()
	return out
}

// gpsLabel picks exactly one label per tier.
func gpsLabel(g GPS) string {
	switch g {
	case GPSAdvanced:
		return "Advanced"
	case GPSBasic:
		return "Basic"
	case GPSUnset:
		return "none"
	default:
		return "GPS not registered"
	}
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// formatVersion keeps every digit but shows whole versions as "5.0".
func formatVersion(f float64) string {
	if f == math.Trunc(f) {
		return strconv.FormatFloat(f, 'f', 1, 64)
	}
	return formatNumber(f)
}

var _ ResultBuilder[Manual] = (*ManualBuilder)(nil)
