package sandbox_test

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filegate/filegate/core/sandbox"
)

func TestOpen(t *testing.T) {
	t.Parallel()

	t.Run("existing_directory", func(t *testing.T) {
		t.Parallel()
		root, err := sandbox.Open(t.TempDir())
		require.NoError(t, err)
		require.NoError(t, root.Close())
	})

	t.Run("missing_directory", func(t *testing.T) {
		t.Parallel()
		_, err := sandbox.Open(filepath.Join(t.TempDir(), "nope"))
		assert.Error(t, err)
	})

	t.Run("regular_file", func(t *testing.T) {
		t.Parallel()
		tmpDir := t.TempDir()
		file := filepath.Join(tmpDir, "file.txt")
		require.NoError(t, os.WriteFile(file, []byte("x"), 0644))
		_, err := sandbox.Open(file)
		assert.Error(t, err)
	})
}

func TestRootOpen(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "foo"), []byte("Foobar"), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(tmpDir, "sub"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "sub", "nested.txt"), []byte("nested"), 0644))

	root, err := sandbox.Open(tmpDir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = root.Close() })

	t.Run("reads_file_contents", func(t *testing.T) {
		t.Parallel()
		f, err := root.Open("foo")
		require.NoError(t, err)
		defer f.Close()

		data, err := io.ReadAll(f)
		require.NoError(t, err)
		assert.Equal(t, "Foobar", string(data))
	})

	t.Run("nested_file", func(t *testing.T) {
		t.Parallel()
		f, err := root.Open("sub/nested.txt")
		require.NoError(t, err)
		defer f.Close()

		data, err := io.ReadAll(f)
		require.NoError(t, err)
		assert.Equal(t, "nested", string(data))
	})

	t.Run("leading_separators_are_relative", func(t *testing.T) {
		t.Parallel()
		for _, name := range []string{"/foo", "//foo", "///foo"} {
			f, err := root.Open(name)
			require.NoError(t, err, "name %q", name)
			data, err := io.ReadAll(f)
			require.NoError(t, err)
			assert.Equal(t, "Foobar", string(data))
			require.NoError(t, f.Close())
		}
	})

	t.Run("missing_file_wraps_not_found", func(t *testing.T) {
		t.Parallel()
		_, err := root.Open("bar")
		require.Error(t, err)
		assert.ErrorIs(t, err, sandbox.ErrNotFound)
	})

	t.Run("traversal_wraps_denied", func(t *testing.T) {
		t.Parallel()
		for _, name := range []string{"..", "../foo", "../../etc/passwd", "sub/../../foo", "/..", "/../foo"} {
			_, err := root.Open(name)
			require.Error(t, err, "name %q", name)
			assert.ErrorIs(t, err, sandbox.ErrDenied, "name %q", name)
		}
	})

	t.Run("empty_name_opens_root_directory", func(t *testing.T) {
		t.Parallel()
		f, err := root.Open("")
		require.NoError(t, err)
		defer f.Close()

		info, err := f.Stat()
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})
}

func TestRootOpenSymlinkEscape(t *testing.T) {
	t.Parallel()

	outside := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(outside, "secret"), []byte("secret"), 0644))

	tmpDir := t.TempDir()
	require.NoError(t, os.Symlink(filepath.Join(outside, "secret"), filepath.Join(tmpDir, "link")))

	root, err := sandbox.Open(tmpDir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = root.Close() })

	_, err = root.Open("link")
	require.Error(t, err)
	assert.ErrorIs(t, err, sandbox.ErrDenied)
}

func TestRootOpenPermissionDenied(t *testing.T) {
	t.Parallel()

	if os.Geteuid() == 0 {
		t.Skip("running as root; permission bits are not enforced")
	}

	tmpDir := t.TempDir()
	restricted := filepath.Join(tmpDir, "restricted")
	require.NoError(t, os.Mkdir(restricted, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(restricted, "file"), []byte("x"), 0644))
	require.NoError(t, os.Chmod(restricted, 0000))
	t.Cleanup(func() { _ = os.Chmod(restricted, 0755) })

	root, err := sandbox.Open(tmpDir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = root.Close() })

	_, err = root.Open("restricted/file")
	require.Error(t, err)
	assert.ErrorIs(t, err, sandbox.ErrDenied)
}

func TestRootStat(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "foo"), []byte("Foobar"), 0644))

	root, err := sandbox.Open(tmpDir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = root.Close() })

	info, err := root.Stat("foo")
	require.NoError(t, err)
	assert.Equal(t, int64(6), info.Size())

	_, err = root.Stat("missing")
	assert.ErrorIs(t, err, sandbox.ErrNotFound)

	_, err = root.Stat("../foo")
	assert.ErrorIs(t, err, sandbox.ErrDenied)
}

func TestRootName(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	root, err := sandbox.Open(tmpDir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = root.Close() })

	assert.Equal(t, tmpDir, root.Name())
}
