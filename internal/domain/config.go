package domain

// Config holds the runtime options collected from command-line flags.
type Config struct {
	Logging LoggingConfig
}

type LoggingConfig struct {
	Debug bool
	// File is an optional path the JSON log is appended to.
	File string
}

// DefaultConfig keeps logging silent.
func DefaultConfig() Config {
	return Config{}
}
