// Package response provides constructors for handler.Response values:
// fixed-status responses, small in-memory bodies, and streaming bodies
// backed by an io.ReadCloser.
//
// Responses never buffer a reader-backed body eagerly; Reader copies
// through a fixed-size buffer so large files stream with constant memory.
package response
