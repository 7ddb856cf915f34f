package fsutil_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/goslang/pkg/fsutil"
)

func writeTemp(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, content, 0o644))
	return path
}

func TestReadFile(t *testing.T) {
	t.Parallel()

	t.Run("reads content and metadata", func(t *testing.T) {
		t.Parallel()

		content := []byte("package main\n")
		path := writeTemp(t, "main.go", content)

		got, info, err := fsutil.ReadFile(context.Background(), path, 0)
		require.NoError(t, err)

		assert.Equal(t, content, got)
		assert.Equal(t, path, info.Path)
		assert.Equal(t, int64(len(content)), info.Size)
		assert.Equal(t, os.FileMode(0o644), info.Mode.Perm())
		assert.Equal(t, fsutil.Fingerprint(content), info.Hash)
		assert.False(t, info.ModTime.IsZero())
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, _, err := fsutil.ReadFile(context.Background(), filepath.Join(t.TempDir(), "nope.go"), 0)
		require.ErrorIs(t, err, fsutil.ErrNotFound)
	})

	t.Run("directory", func(t *testing.T) {
		t.Parallel()

		_, _, err := fsutil.ReadFile(context.Background(), t.TempDir(), 0)
		require.ErrorIs(t, err, fsutil.ErrIsDirectory)
	})

	t.Run("size limit", func(t *testing.T) {
		t.Parallel()

		path := writeTemp(t, "big.js", []byte("0123456789"))

		_, _, err := fsutil.ReadFile(context.Background(), path, 5)
		require.ErrorIs(t, err, fsutil.ErrTooLarge)

		_, _, err = fsutil.ReadFile(context.Background(), path, 10)
		require.NoError(t, err)
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()

		path := writeTemp(t, "main.go", []byte("x"))
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, _, err := fsutil.ReadFile(ctx, path, 0)
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestFingerprint(t *testing.T) {
	t.Parallel()

	a := fsutil.Fingerprint([]byte("func a() {}"))
	b := fsutil.Fingerprint([]byte("func a() {}"))
	c := fsutil.Fingerprint([]byte("func b() {}"))

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}
