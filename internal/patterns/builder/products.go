package builder

// Car is the data product.
type Car struct {
	Seats        int           `yaml:"seats"`
	Engine       Engine        `yaml:"engine"`
	TripComputer *TripComputer `yaml:"trip_computer"`
	GPS          GPS           `yaml:"gps"`
}

// Manual is the human-readable product describing a car.
type Manual struct {
	Seats        string `yaml:"seats"`
	Engine       string `yaml:"engine"`
	TripComputer string `yaml:"trip_computer"`
	GPS          string `yaml:"gps"`
}
