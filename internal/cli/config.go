package cli

import (
	"os"
)

// Config holds CLI configuration
type Config struct {
	Output  string
	Verbose bool
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		Output:  getEnvOrDefault("BLOKUS_OUTPUT", "text"),
		Verbose: false,
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
