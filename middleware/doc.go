// Package middleware provides request-scoped middleware for the router:
// request ID assignment and structured request/response logging.
package middleware
