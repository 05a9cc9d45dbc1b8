// Package frankfurter provides a client for the Frankfurter exchange rate API.
package frankfurter

import (
	"os"
	"time"
)

// defaultBaseURL is the public Frankfurter host.
const defaultBaseURL = "https://api.frankfurter.app"

// Config holds configuration for the Frankfurter client.
type Config struct {
	BaseURL string        // Base URL for the API
	Timeout time.Duration // HTTP request timeout
}

// LoadConfig loads Frankfurter configuration from environment variables.
func LoadConfig() Config {
	base := os.Getenv("FRANKFURTER_BASE_URL")
	if base == "" {
		base = defaultBaseURL
	}
	return Config{
		BaseURL: base,
		Timeout: 10 * time.Second,
	}
}
