package static

import (
	"log/slog"

	"github.com/filegate/filegate/core/handler"
	"github.com/filegate/filegate/core/logger"
	"github.com/filegate/filegate/core/sandbox"
)

// fileConfig holds configuration for single-file serving.
type fileConfig struct {
	log *slog.Logger
}

// FileOption configures single-file serving behavior.
type FileOption func(*fileConfig)

// WithFileLogger sets the logger used for request and denial logging.
// Defaults to slog.Default().
func WithFileLogger(log *slog.Logger) FileOption {
	return func(c *fileConfig) {
		if log != nil {
			c.log = log
		}
	}
}

// File creates a handler that serves a single fixed file from the sandbox
// root, regardless of the request path. Useful for favicon.ico or
// robots.txt routes. It shares Dir's outcome mapping: 200 with the streamed
// file, 403 on denial, 404 when absent, other errors propagated.
func File[C handler.Context](root *sandbox.Root, name string, opts ...FileOption) handler.HandlerFunc[C] {
	cfg := &fileConfig{
		log: slog.Default(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(ctx C) handler.Response {
		cfg.log.Info("requested file", logger.Path(name))
		return serve(cfg.log, root, name)
	}
}
