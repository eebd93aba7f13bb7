package config

// Config holds all application configuration.
type Config struct {
	Log Log `mapstructure:"log"`
}

// Log holds logging configuration.
type Log struct {
	Verbose bool   `mapstructure:"verbose"`
	Format  string `mapstructure:"format"` // "text" or "json"
}

// Log formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		Log: Log{
			Verbose: false,
			Format:  FormatText,
		},
	}
}
