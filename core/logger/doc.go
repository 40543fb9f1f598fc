// Package logger provides slog attribute helpers with consistent keys and
// an env-driven logger constructor shared by the server and middleware.
package logger
