package sandbox

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"
)

var (
	// ErrNotFound indicates the requested path does not exist under the root.
	ErrNotFound = errors.New("file not found")

	// ErrDenied indicates the OS refused access to the resolved path, or the
	// path attempted to resolve outside the root.
	ErrDenied = errors.New("access denied")
)

// Root is a capability-scoped directory handle. All opens are resolved
// relative to the root directory and cannot escape it, including through
// symbolic links. A Root is safe for concurrent use; it grants access but
// is never mutated after Open.
type Root struct {
	dir *os.Root
}

// Open opens dir as a sandbox root. The path must reference an existing
// directory.
func Open(dir string) (*Root, error) {
	root, err := os.OpenRoot(dir)
	if err != nil {
		return nil, fmt.Errorf("sandbox: open root %q: %w", dir, err)
	}
	return &Root{dir: root}, nil
}

// Name returns the directory path the root was opened with.
func (r *Root) Name() string {
	return r.dir.Name()
}

// Close releases the underlying directory handle. Files opened through the
// root remain valid after Close.
func (r *Root) Close() error {
	return r.dir.Close()
}

// Open resolves name relative to the root and opens it for reading.
// Leading path separators are trimmed so the name is always interpreted as
// relative. Returned errors wrap ErrNotFound or ErrDenied where the failure
// is classifiable; anything else is passed through untranslated.
func (r *Root) Open(name string) (*os.File, error) {
	rel, err := relativize(name)
	if err != nil {
		return nil, err
	}

	f, err := r.dir.Open(rel)
	if err != nil {
		return nil, classify(name, err)
	}
	return f, nil
}

// Stat returns file info for name resolved relative to the root, with the
// same error taxonomy as Open.
func (r *Root) Stat(name string) (fs.FileInfo, error) {
	rel, err := relativize(name)
	if err != nil {
		return nil, err
	}

	info, err := r.dir.Stat(rel)
	if err != nil {
		return nil, classify(name, err)
	}
	return info, nil
}

// relativize trims leading separators and rejects paths that lexically
// resolve above the root. The path itself is passed through uncollapsed so
// os.Root still walks every component; this is only a cheap gate in front
// of the kernel-side check.
func relativize(name string) (string, error) {
	rel := strings.TrimLeft(name, "/")
	if rel == "" {
		rel = "."
	}
	if cleaned := path.Clean(rel); cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return "", fmt.Errorf("%w: %s", ErrDenied, name)
	}
	return rel, nil
}

func classify(name string, err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	case errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("%w: %s", ErrDenied, name)
	}

	// os.Root reports symlink escapes with an unexported error value, so the
	// message is the only thing left to classify on.
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) && strings.Contains(pathErr.Err.Error(), "escapes from parent") {
		return fmt.Errorf("%w: %s", ErrDenied, name)
	}

	return err
}
