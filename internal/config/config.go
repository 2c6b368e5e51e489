// Package config carries the runtime settings for the borderhop CLI.
// Values come from environment variables and act as flag defaults, so
// flags always win.
package config

import "os"

// Config holds the process-wide settings.
type Config struct {
	DatasetPath string
	LogLevel    string
	LogFormat   string
}

// Load reads settings from the environment, falling back to defaults.
func Load() Config {
	return Config{
		DatasetPath: getenv("BORDERHOP_DATASET", "countries.csv"),
		LogLevel:    getenv("BORDERHOP_LOG_LEVEL", "info"),
		LogFormat:   getenv("BORDERHOP_LOG_FORMAT", "text"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
