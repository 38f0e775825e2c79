package blobstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

func TestLocalStore(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"a/m0/model.obj": "zero",
		"a/m1/model.obj": "one",
		"b/m2/model.obj": "two",
	})

	store := NewLocalStore(dir)

	t.Run("Open", func(t *testing.T) {
		b, err := store.Open(ctx, "a/m1/model.obj")
		require.NoError(t, err)
		defer b.Close()
		assert.Equal(t, int64(3), b.Size())

		data, err := ReadAll(ctx, store, "a/m1/model.obj")
		require.NoError(t, err)
		assert.Equal(t, []byte("one"), data)
	})

	t.Run("OpenMissing", func(t *testing.T) {
		_, err := store.Open(ctx, "a/m9/model.obj")
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("List", func(t *testing.T) {
		names, err := store.List(ctx, "")
		require.NoError(t, err)
		assert.Equal(t, []string{
			"a/m0/model.obj",
			"a/m1/model.obj",
			"b/m2/model.obj",
		}, names)
	})

	t.Run("ListPrefix", func(t *testing.T) {
		names, err := store.List(ctx, "b")
		require.NoError(t, err)
		assert.Equal(t, []string{"b/m2/model.obj"}, names)
	})

	t.Run("ListMissingPrefix", func(t *testing.T) {
		names, err := store.List(ctx, "nope")
		require.NoError(t, err)
		assert.Empty(t, names)
	})
}
