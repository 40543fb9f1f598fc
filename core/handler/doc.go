// Package handler defines the request-processing contract shared by the
// router, middleware, and response packages.
//
// A handler produces a Response from a typed context; the Response renders
// itself onto the http.ResponseWriter and may return an error, which the
// hosting router converts into an error response:
//
//	func hello(ctx handler.Context) handler.Response {
//		return func(w http.ResponseWriter, r *http.Request) error {
//			_, err := w.Write([]byte("hello"))
//			return err
//		}
//	}
//
// The Context type parameter lets applications carry their own request
// context type through handlers and middleware without type assertions.
// Any type satisfying the Context interface works; the router provides a
// default implementation and accepts a factory for custom ones.
package handler
