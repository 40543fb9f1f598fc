package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Config holds logger configuration with environment variable support.
type Config struct {
	// Level is the minimum level to emit: debug, info, warn, or error.
	Level string `env:"LOG_LEVEL" envDefault:"info"`

	// Format selects the handler: "text" or "json".
	Format string `env:"LOG_FORMAT" envDefault:"text"`
}

// New builds a slog.Logger writing to w according to cfg. Unknown levels
// fall back to info, unknown formats to text.
func New(cfg Config, w io.Writer) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}

	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}

	var h slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}

	return slog.New(h)
}

// Discard returns a logger that drops everything. Useful as a default for
// components that treat logging as optional.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
