package router

import (
	"net/http"
	"time"
)

// Context is the default request context implementation. It delegates
// context.Context methods to the request's context and layers
// request-scoped values set via SetValue on top of it.
type Context struct {
	w      http.ResponseWriter
	r      *http.Request
	params map[string]string
	values map[any]any
}

func newContext(w http.ResponseWriter, r *http.Request, params map[string]string) *Context {
	return &Context{w: w, r: r, params: params}
}

// Deadline delegates to the request context.
func (c *Context) Deadline() (deadline time.Time, ok bool) {
	return c.r.Context().Deadline()
}

// Done delegates to the request context.
func (c *Context) Done() <-chan struct{} {
	return c.r.Context().Done()
}

// Err delegates to the request context.
func (c *Context) Err() error {
	return c.r.Context().Err()
}

// Value returns request-scoped values set via SetValue, falling back to the
// request context.
func (c *Context) Value(key any) any {
	if val, ok := c.values[key]; ok {
		return val
	}
	return c.r.Context().Value(key)
}

// Request returns the *http.Request associated with the context.
func (c *Context) Request() *http.Request {
	return c.r
}

// ResponseWriter returns the http.ResponseWriter associated with the context.
func (c *Context) ResponseWriter() http.ResponseWriter {
	return c.w
}

// Param returns the value of the URL parameter by key.
func (c *Context) Param(key string) string {
	if c.params == nil {
		return ""
	}
	return c.params[key]
}

// SetValue stores a request-scoped value retrievable via Value.
func (c *Context) SetValue(key, val any) {
	if c.values == nil {
		c.values = make(map[any]any)
	}
	c.values[key] = val
}
