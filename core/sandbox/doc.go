// Package sandbox provides a capability-scoped directory handle for
// filesystem access that cannot escape a root directory.
//
// A Root wraps os.Root, so containment is enforced by the operating system
// during path resolution rather than by string comparison after the fact.
// Open failures are classified into two sentinel errors that callers can
// test with errors.Is:
//
//	f, err := root.Open(rel)
//	switch {
//	case errors.Is(err, sandbox.ErrNotFound):
//		// 404
//	case errors.Is(err, sandbox.ErrDenied):
//		// 403, including traversal attempts
//	case err != nil:
//		// unexpected I/O failure
//	}
//
// Any error outside that taxonomy (disk failure, descriptor exhaustion) is
// returned untranslated so callers do not mistake infrastructure problems
// for missing files.
package sandbox
