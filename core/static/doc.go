// Package static provides handlers that serve files through a sandboxed
// directory root.
//
// Dir mounts a sandbox.Root under a URL prefix and maps each request path
// to a file inside the root; File serves one fixed file. Both stream the
// file as the response body without buffering it in memory and without
// setting Content-Type, and both translate sandbox failures into bare
// status codes: 403 for denied or escaping paths, 404 for missing ones.
// Unexpected I/O errors are not translated; they flow to the router's
// error handler so operators see them as server failures.
//
//	root, err := sandbox.Open("./public")
//	if err != nil {
//		log.Fatal(err)
//	}
//	r.Get("/static/*", static.Dir[*router.Context]("/static/*", root))
//	r.Get("/favicon.ico", static.File[*router.Context](root, "favicon.ico"))
//
// The router strips nothing itself: Dir receives the full request path and
// removes the mount prefix (a trailing "*" in the prefix is ignored), so
// the handler works identically under any hosting router that honors the
// mounted-prefix contract.
package static
