// Package config loads runtime settings from the environment and an optional
// .env file in the working directory.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrInvalidLogLevel is returned when LOG_LEVEL is not a known level.
var ErrInvalidLogLevel = errors.New("invalid log level")

// Config holds settings shared by the server and the terminal app.
type Config struct {
	Port             int    `env:"PORT" envDefault:"8080"`
	LogLevel         string `env:"LOG_LEVEL" envDefault:"info"`
	MetricsPath      string `env:"METRICS_PATH" envDefault:"/metrics"`
	MetricsNamespace string `env:"METRICS_NAMESPACE" envDefault:"tipcalc"`

	// LogFile receives logs from the terminal app. Empty discards them.
	LogFile string `env:"TIPCALC_LOG_FILE"`
}

// Load reads .env (if present) and parses the environment into a Config.
func Load() (Config, error) {
	// The .env file is optional.
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if _, err := ParseLevel(cfg.LogLevel); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Level returns the parsed log level.
func (c Config) Level() slog.Level {
	level, _ := ParseLevel(c.LogLevel)
	return level
}

// ParseLevel maps debug, info, warn and error onto slog levels.
// The empty string is info.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("%w: %q", ErrInvalidLogLevel, s)
	}
}
