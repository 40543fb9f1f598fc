package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/filegate/filegate/core/handler"
	"github.com/filegate/filegate/core/logger"
)

// LoggingConfig configures the request/response logging middleware.
type LoggingConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(ctx handler.Context) bool

	// Logger is the slog logger to use (default: slog.Default())
	Logger *slog.Logger

	// LogLevel for request logging (default: slog.LevelInfo)
	LogLevel slog.Level

	// SlowRequestThreshold logs slow requests at warning level (default: 5s)
	SlowRequestThreshold time.Duration

	// Component name for structured logging (default: "http")
	Component string
}

// Logging creates a request/response logging middleware with default
// configuration: one line when a request starts, one when it completes,
// with method, path, status, bytes written, and duration.
func Logging[C handler.Context]() handler.Middleware[C] {
	return LoggingWithConfig[C](LoggingConfig{})
}

// LoggingWithLogger creates a logging middleware with a custom logger.
func LoggingWithLogger[C handler.Context](log *slog.Logger) handler.Middleware[C] {
	return LoggingWithConfig[C](LoggingConfig{Logger: log})
}

// LoggingWithConfig creates a request/response logging middleware with
// custom configuration. Completion lines escalate to warn for 4xx and slow
// requests and to error for 5xx or failed responses.
func LoggingWithConfig[C handler.Context](cfg LoggingConfig) handler.Middleware[C] {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.SlowRequestThreshold <= 0 {
		cfg.SlowRequestThreshold = 5 * time.Second
	}
	if cfg.Component == "" {
		cfg.Component = "http"
	}

	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) handler.Response {
			if cfg.Skip != nil && cfg.Skip(ctx) {
				return next(ctx)
			}

			start := time.Now()
			req := ctx.Request()
			requestID, _ := GetRequestID(ctx)

			attrs := []slog.Attr{
				logger.Component(cfg.Component),
				logger.Event("request"),
				logger.Method(req.Method),
				logger.Path(req.URL.Path),
				logger.RemoteAddr(req.RemoteAddr),
				logger.Query(req.URL.RawQuery),
				logger.RequestID(requestID),
			}
			cfg.Logger.LogAttrs(req.Context(), cfg.LogLevel, "HTTP request started", attrs...)

			response := next(ctx)

			return func(w http.ResponseWriter, r *http.Request) error {
				wrapped := &loggingResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}
				err := response(wrapped, r)
				duration := time.Since(start)

				respAttrs := []slog.Attr{
					logger.Component(cfg.Component),
					logger.Event("response"),
					logger.Method(req.Method),
					logger.Path(req.URL.Path),
					logger.StatusCode(wrapped.statusCode),
					logger.BytesOut(wrapped.size),
					logger.Duration(duration),
					logger.RequestID(requestID),
				}

				level := cfg.LogLevel
				switch {
				case err != nil || wrapped.statusCode >= 500:
					level = slog.LevelError
					respAttrs = append(respAttrs, logger.Error(err))
				case wrapped.statusCode >= 400:
					level = slog.LevelWarn
				case duration > cfg.SlowRequestThreshold:
					level = slog.LevelWarn
					respAttrs = append(respAttrs, slog.Bool("slow_request", true))
				}

				cfg.Logger.LogAttrs(req.Context(), level, "HTTP request completed", respAttrs...)
				return err
			}
		}
	}
}

// loggingResponseWriter wraps http.ResponseWriter to capture status and size.
type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode    int
	size          int64
	headerWritten bool
}

func (rw *loggingResponseWriter) WriteHeader(statusCode int) {
	if !rw.headerWritten {
		rw.statusCode = statusCode
		rw.headerWritten = true
	}
	rw.ResponseWriter.WriteHeader(statusCode)
}

func (rw *loggingResponseWriter) Write(b []byte) (int, error) {
	if !rw.headerWritten {
		rw.WriteHeader(http.StatusOK)
	}
	n, err := rw.ResponseWriter.Write(b)
	rw.size += int64(n)
	return n, err
}

// Flush implements http.Flusher when the underlying writer supports it.
func (rw *loggingResponseWriter) Flush() {
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}
