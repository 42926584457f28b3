package config

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/nleiva/codesensei/pkg/engine"
)

const (
	// Default configuration values
	DefaultPort   = 3000
	DefaultLogDir = "logs"
)

// Config holds all application configuration for the codesensei demo.
// It combines the engine's processing delay with server and logging
// settings into a single struct for easy management.
type Config struct {
	Delay  time.Duration // Artificial processing delay before a report is shown
	Port   int           // HTTP server port for web mode
	LogDir string        // Directory for session metrics files; empty disables them
}

// Validate checks the configuration for correctness
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port must be between 1-65535, got %d", c.Port)
	}
	if c.Delay < 0 {
		return fmt.Errorf("delay must not be negative, got %v", c.Delay)
	}
	return nil
}

// LoadFromEnv loads configuration from environment variables and returns
// a fully configured Config struct. It writes warnings to w for any
// invalid environment variable values encountered.
func LoadFromEnv(w io.Writer) (*Config, error) {
	config := &Config{
		Delay:  loadDelay(w),
		Port:   loadPort(w),
		LogDir: loadLogDir(),
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// loadDelay reads and validates the DELAY_MS environment variable.
// Zero is allowed and means instant responses.
func loadDelay(w io.Writer) time.Duration {
	delayStr := os.Getenv("DELAY_MS")
	if delayStr == "" {
		return engine.DefaultDelay
	}

	delayMs, err := strconv.Atoi(delayStr)
	if err != nil {
		fmt.Fprintf(w, "Warning: Invalid DELAY_MS value '%s': %v, using default %d\n",
			delayStr, err, engine.DefaultDelay.Milliseconds())
		return engine.DefaultDelay
	}

	if delayMs < 0 {
		fmt.Fprintf(w, "Warning: DELAY_MS must not be negative, got %d, using default %d\n",
			delayMs, engine.DefaultDelay.Milliseconds())
		return engine.DefaultDelay
	}

	return time.Duration(delayMs) * time.Millisecond
}

// loadPort reads and validates the PORT environment variable
func loadPort(w io.Writer) int {
	portStr := os.Getenv("PORT")
	if portStr == "" {
		return DefaultPort
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		fmt.Fprintf(w, "Warning: Invalid PORT value '%s': %v, using default %d\n",
			portStr, err, DefaultPort)
		return DefaultPort
	}

	if port <= 0 || port > 65535 {
		fmt.Fprintf(w, "Warning: PORT must be between 1-65535, got %d, using default %d\n",
			port, DefaultPort)
		return DefaultPort
	}

	return port
}

// loadLogDir reads the LOG_DIR environment variable. Setting it to "-"
// disables metrics files entirely.
func loadLogDir() string {
	dir, ok := os.LookupEnv("LOG_DIR")
	if !ok {
		return DefaultLogDir
	}
	if dir == "-" {
		return ""
	}
	return dir
}
