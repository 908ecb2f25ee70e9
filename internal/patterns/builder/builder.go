package builder

// Builder is the set of construction steps a Director drives.
type Builder interface {
	Reset()
	SetSeats(n int)
	SetEngine(e Engine)
	SetTripComputer(tc *TripComputer)
	SetGPS(g GPS)
}

// ResultBuilder is a Builder that yields a product of type T.
// Result hands the product over and starts a fresh one.
type ResultBuilder[T any] interface {
	Builder
	Result() T
}

// CarBuilder assembles a Car.
type CarBuilder struct {
	car *Car
}

func NewCarBuilder() *CarBuilder {
	return &CarBuilder{car: &Car{}}
}

func (b *CarBuilder) Reset() { b.car = &Car{} }

func (b *CarBuilder) SetSeats(n int) { b.car.Seats = n }

func (b *CarBuilder) SetEngine(e Engine) { b.car.Engine = e }

func (b *CarBuilder) SetTripComputer(tc *TripComputer) {
	if tc == nil {
		b.car.TripComputer = nil
		return
	}
	// Keep the caller's value out of the product.
	cp := *tc
	b.car.TripComputer = &cp
}

func (b *CarBuilder) SetGPS(g GPS) { b.car.GPS = g }

func (b *CarBuilder) Result() Car {
	out := *b.car
	b.Reset()
	return out
}

var _ ResultBuilder[Car] = (*CarBuilder)(nil)
