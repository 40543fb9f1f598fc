// Package router hosts handler.HandlerFunc values behind an http.Handler.
//
// The mux matches literal patterns, "{param}" segments, and trailing "/*"
// wildcards, chains middleware registered with Use, recovers panics into
// PanicError values, and funnels every failure through a single
// ErrorHandler. Responses that return an error after matching are handled
// the same way, so handlers never write error bodies themselves.
//
//	r := router.New[*router.Context]()
//	r.Use(middleware.RequestID[*router.Context]())
//	r.Get("/static/*", static.Dir[*router.Context]("/static/*", root))
//	http.ListenAndServe(":8080", r)
//
// Custom context types implement handler.Context and are constructed by a
// factory supplied via WithContextFactory.
package router
