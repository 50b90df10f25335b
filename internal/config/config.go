// Package config reads runtime settings from the environment.
package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// Config holds runtime settings.
type Config struct {
	// DataPath is the content document to load. Empty means the bundled one.
	DataPath    string
	Environment string
	LogLevel    slog.Level

	TelemetryEnabled bool
	HoneycombAPIKey  string
	HoneycombDataset string
}

// Load builds a Config from environment variables.
func Load() *Config {
	return &Config{
		DataPath:         os.Getenv("ELDANIA_DATA"),
		Environment:      getEnv("ENVIRONMENT", "development"),
		LogLevel:         parseLogLevel(getEnv("LOG_LEVEL", "warn")),
		TelemetryEnabled: parseBool(getEnv("TELEMETRY_ENABLED", "false")),
		HoneycombAPIKey:  os.Getenv("HONEYCOMB_API_KEY"),
		HoneycombDataset: getEnv("HONEYCOMB_DATASET", "eldanialight"),
	}
}

// IsProduction reports whether logs should be machine-readable.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func parseBool(value string) bool {
	b, err := strconv.ParseBool(value)
	return err == nil && b
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
