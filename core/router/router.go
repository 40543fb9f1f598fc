package router

import (
	"net/http"

	"github.com/filegate/filegate/core/handler"
)

// Router is the main routing interface for handling HTTP requests.
// It dispatches to type-safe handlers and supports middleware chaining.
type Router[C handler.Context] interface {
	http.Handler
	Routes

	// HTTP method handlers
	Get(pattern string, h handler.HandlerFunc[C])
	Head(pattern string, h handler.HandlerFunc[C])
	Post(pattern string, h handler.HandlerFunc[C])
	Put(pattern string, h handler.HandlerFunc[C])
	Delete(pattern string, h handler.HandlerFunc[C])

	// Handle registers a handler for all HTTP methods.
	Handle(pattern string, h handler.HandlerFunc[C])

	// Use appends middleware applied to every route.
	Use(middlewares ...handler.Middleware[C])
}

// Routes provides route introspection for debugging and monitoring.
type Routes interface {
	Routes() []Route
}

// Route describes a single registered route.
type Route struct {
	Method  string
	Pattern string
}

// New creates a new router with the given options.
// The router supports generic context types for type-safe request handling.
func New[C handler.Context](opts ...Option[C]) Router[C] {
	return newMux[C](opts...)
}
