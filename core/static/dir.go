package static

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/filegate/filegate/core/handler"
	"github.com/filegate/filegate/core/logger"
	"github.com/filegate/filegate/core/response"
	"github.com/filegate/filegate/core/sandbox"
)

// dirConfig holds configuration for directory serving.
type dirConfig struct {
	log *slog.Logger
}

// DirOption configures directory serving behavior.
type DirOption func(*dirConfig)

// WithLogger sets the logger used for request and denial logging.
// Defaults to slog.Default().
func WithLogger(log *slog.Logger) DirOption {
	return func(c *dirConfig) {
		if log != nil {
			c.log = log
		}
	}
}

// Dir creates a handler that serves files from a sandbox root mounted under
// the given URL prefix. The prefix may end with a wildcard marker
// ("/static/*"), which is ignored when stripping it from request paths.
//
// Construction performs no I/O and cannot fail; whether the root actually
// holds the requested files is decided per request. Each request resolves
// and opens the file through the sandbox, so a traversal attempt can never
// yield content from outside the root:
//
//   - open succeeds: 200 with the file streamed as the body
//   - sandbox denies access (OS permission or escape attempt): bare 403
//   - file absent: bare 404
//   - anything else: propagated to the router's error handler
//
// The handler holds no mutable state and is safe for concurrent use.
func Dir[C handler.Context](prefix string, root *sandbox.Root, opts ...DirOption) handler.HandlerFunc[C] {
	cfg := &dirConfig{
		log: slog.Default(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	stripped := strings.TrimSuffix(prefix, "*")

	return func(ctx C) handler.Response {
		urlPath := ctx.Request().URL.Path
		rel, ok := strings.CutPrefix(urlPath, stripped)
		switch {
		case ok:
		case urlPath+"/" == stripped:
			// Wildcard mounts also match the bare prefix without the
			// trailing slash; that request names the root directory itself.
			rel = ""
		default:
			// The router contract is to only invoke the handler on matching
			// paths; a mismatch is a wiring bug, not a client error.
			panic(fmt.Sprintf("static: handler mounted at %q invoked for %q", prefix, urlPath))
		}
		rel = strings.TrimLeft(rel, "/")

		cfg.log.Info("requested file", logger.Path(rel))

		return serve(cfg.log, root, rel)
	}
}

// serve opens rel through the sandbox and maps the outcome onto a response.
// Shared by Dir and File.
func serve(log *slog.Logger, root *sandbox.Root, rel string) handler.Response {
	f, err := root.Open(rel)
	switch {
	case errors.Is(err, sandbox.ErrDenied):
		log.Warn("unauthorized attempt to read file", logger.Path(rel))
		return response.Status(http.StatusForbidden)
	case errors.Is(err, sandbox.ErrNotFound):
		log.Warn("file not found", logger.Path(rel))
		return response.Status(http.StatusNotFound)
	case err != nil:
		return response.Error(err)
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return response.Error(err)
	}

	// Directory listing is disabled: a directory is indistinguishable from
	// a missing file.
	if info.IsDir() {
		_ = f.Close()
		log.Warn("file not found", logger.Path(rel))
		return response.Status(http.StatusNotFound)
	}

	return response.Reader(f)
}
