package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

const (
	EnvLoggingFormat = "PROMPTBOOK_LOG_FORMAT"
	EnvLoggingLevel  = "PROMPTBOOK_LOG_LEVEL"
)

// Log output formats.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// LoggingConfig selects the slog handler and minimum level.
type LoggingConfig struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// SlogLevel returns Level as a slog.Level.
func (c *LoggingConfig) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *LoggingConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *LoggingConfig) Merge(overlay *LoggingConfig) {
	if overlay.Format != "" {
		c.Format = overlay.Format
	}
	if overlay.Level != "" {
		c.Level = overlay.Level
	}
}

func (c *LoggingConfig) loadDefaults() {
	if c.Format == "" {
		c.Format = LogFormatText
	}
	if c.Level == "" {
		c.Level = "info"
	}
}

func (c *LoggingConfig) loadEnv() {
	if v := os.Getenv(EnvLoggingFormat); v != "" {
		c.Format = v
	}
	if v := os.Getenv(EnvLoggingLevel); v != "" {
		c.Level = v
	}
}

func (c *LoggingConfig) validate() error {
	c.Format = strings.ToLower(c.Format)
	if c.Format != LogFormatText && c.Format != LogFormatJSON {
		return fmt.Errorf("unsupported format: %q", c.Format)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		return fmt.Errorf("invalid level: %w", err)
	}
	return nil
}
