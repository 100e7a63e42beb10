package config

import (
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config carries the runtime settings of the engine binary. Everything is
// optional and read from the environment with sensible defaults.
type Config struct {
	LogLevel  string
	LogFormat string
}

// Load reads configuration from the environment. A .env file is picked up
// when present; running without one is normal.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),
	}
}

// SlogLevel maps the configured level name to its slog level; unknown names
// fall back to info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
