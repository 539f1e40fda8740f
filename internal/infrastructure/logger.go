package infrastructure

import (
	"io"
	"log/slog"

	"github.com/JaimeStill/promptbook/internal/config"
)

// NewLogger builds the service logger: JSON for machine collection,
// text for a terminal. Debug level adds source locations.
func NewLogger(cfg *config.LoggingConfig, w io.Writer) *slog.Logger {
	level := cfg.SlogLevel()
	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: level <= slog.LevelDebug,
	}

	var handler slog.Handler
	if cfg.Format == config.LogFormatJSON {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}
