package router

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"slices"
	"strings"

	"github.com/filegate/filegate/core/handler"
	"github.com/filegate/filegate/core/logger"
)

// mux is the private implementation of Router.
type mux[C handler.Context] struct {
	routes       []*route[C]
	middlewares  []handler.Middleware[C]
	errorHandler handler.ErrorHandler[C]
	newContext   func(http.ResponseWriter, *http.Request, map[string]string) C
	log          *slog.Logger
}

// route is a single registered pattern. method is empty for all-method
// routes.
type route[C handler.Context] struct {
	method  string
	pattern pattern
	handler handler.HandlerFunc[C]
}

// newMux creates a new router instance.
func newMux[C handler.Context](opts ...Option[C]) *mux[C] {
	m := &mux[C]{
		errorHandler: defaultErrorHandler[C],
		log:          logger.Discard(),
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.newContext == nil {
		m.newContext = func(w http.ResponseWriter, r *http.Request, params map[string]string) C {
			// Only the default *Context works without a factory; custom
			// context types must provide one via WithContextFactory.
			var zero C
			if _, ok := any(zero).(*Context); ok {
				return any(newContext(w, r, params)).(C)
			}
			panic(ErrNoContextFactory)
		}
	}

	return m
}

// ServeHTTP implements http.Handler.
func (m *mux[C]) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ww := newResponseWriter(w)

	path := r.URL.Path
	if path == "" {
		path = "/"
	}

	rt, params, allowed := m.match(r.Method, path)

	ctx := m.newContext(ww, r, params)

	// Recover from panics so one bad handler cannot take the server down.
	defer func() {
		if p := recover(); p != nil {
			panicErr := &panicError{value: p, stack: debug.Stack()}

			if ww.Written() {
				// Too late for an error response; record it and move on.
				m.log.Error("panic after response written",
					slog.Any("value", panicErr.value),
					logger.Method(r.Method),
					logger.Path(r.URL.Path),
					logger.StatusCode(ww.Status()),
					slog.String("stack", string(panicErr.stack)),
				)
				return
			}
			m.errorHandler(ctx, panicErr)
		}
	}()

	if rt == nil {
		if len(allowed) > 0 {
			// Allow header per RFC 9110 before responding with 405.
			ww.Header().Set("Allow", strings.Join(allowed, ", "))
			m.errorHandler(ctx, ErrMethodNotAllowed)
		} else {
			m.errorHandler(ctx, ErrNotFound)
		}
		return
	}

	fn := rt.handler
	if len(m.middlewares) > 0 {
		fn = chain(m.middlewares, fn)
	}

	resp := fn(ctx)
	if resp == nil {
		m.errorHandler(ctx, ErrNilResponse)
		return
	}

	if err := resp(ww, r); err != nil {
		m.errorHandler(ctx, err)
	}
}

// match returns the first route matching method and path, together with
// extracted params. When only the method mismatches, it returns the set of
// methods that would have matched so the caller can answer 405.
func (m *mux[C]) match(method, path string) (*route[C], map[string]string, []string) {
	var allowed []string
	for _, rt := range m.routes {
		params, ok := rt.pattern.match(path)
		if !ok {
			continue
		}
		if rt.method == "" || rt.method == method {
			return rt, params, nil
		}
		if !slices.Contains(allowed, rt.method) {
			allowed = append(allowed, rt.method)
		}
	}
	return nil, nil, allowed
}

func (m *mux[C]) Get(pattern string, h handler.HandlerFunc[C])    { m.handle(http.MethodGet, pattern, h) }
func (m *mux[C]) Head(pattern string, h handler.HandlerFunc[C])   { m.handle(http.MethodHead, pattern, h) }
func (m *mux[C]) Post(pattern string, h handler.HandlerFunc[C])   { m.handle(http.MethodPost, pattern, h) }
func (m *mux[C]) Put(pattern string, h handler.HandlerFunc[C])    { m.handle(http.MethodPut, pattern, h) }
func (m *mux[C]) Delete(pattern string, h handler.HandlerFunc[C]) { m.handle(http.MethodDelete, pattern, h) }

// Handle registers a handler for all HTTP methods.
func (m *mux[C]) Handle(pattern string, h handler.HandlerFunc[C]) {
	m.handle("", pattern, h)
}

// Use appends middleware to the router. Middleware must be registered
// before the router starts serving.
func (m *mux[C]) Use(middlewares ...handler.Middleware[C]) {
	m.middlewares = append(m.middlewares, middlewares...)
}

// Routes returns the registered routes.
func (m *mux[C]) Routes() []Route {
	routes := make([]Route, 0, len(m.routes))
	for _, rt := range m.routes {
		method := rt.method
		if method == "" {
			method = "*"
		}
		routes = append(routes, Route{Method: method, Pattern: rt.pattern.raw})
	}
	return routes
}

func (m *mux[C]) handle(method, raw string, h handler.HandlerFunc[C]) {
	if h == nil {
		panic(fmt.Errorf("%w: nil handler for %q", ErrInvalidPattern, raw))
	}
	m.routes = append(m.routes, &route[C]{
		method:  method,
		pattern: compilePattern(raw),
		handler: h,
	})
}

// chain wraps a handler with middleware, outermost first.
func chain[C handler.Context](middlewares []handler.Middleware[C], h handler.HandlerFunc[C]) handler.HandlerFunc[C] {
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}
