package observability

import (
	"log/slog"
	"os"
)

// LogConfig is the subset of configuration NewLogger needs: a level string
// ("debug", "info", "warn", "error") and a format ("json" or "text").
type LogConfig interface {
	LogLevelValue() string
	LogFormatValue() string
}

// NewLogger builds a slog.Logger writing to stderr, with level and handler
// format taken from cfg.
func NewLogger(cfg LogConfig) *slog.Logger {
	level := parseLevel(cfg.LogLevelValue())
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if cfg.LogFormatValue() == "text" {
		handler = slog.NewTextHandler(os.Stderr, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	}

	return slog.New(handler)
}

func parseLevel(level string) slog.Level {
	switch level {
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
