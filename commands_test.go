package shapeset

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
root_dir: /data/shapenet
model_file: model_normalized.obj
seed: 42
store:
  type: minio
  endpoint: localhost:9000
  bucket: shapenet
  cache_dir: /tmp/cache
`), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "/data/shapenet", cfg.RootDir)
	assert.Equal(t, "model_normalized.obj", cfg.ModelFile)
	require.NotNil(t, cfg.Seed)
	assert.Equal(t, int64(42), *cfg.Seed)
	assert.Equal(t, "minio", cfg.Store.Type)
	assert.Equal(t, "/tmp/cache", cfg.Store.CacheDir)
}

func TestBuildStore(t *testing.T) {
	ctx := context.Background()

	t.Run("LocalIsDefault", func(t *testing.T) {
		store, err := Config{}.buildStore(ctx)
		require.NoError(t, err)
		assert.Nil(t, store, "nil lets Open pick a LocalStore at the root")
	})

	t.Run("UnknownType", func(t *testing.T) {
		_, err := Config{Store: StoreConfig{Type: "ftp"}}.buildStore(ctx)
		require.ErrorIs(t, err, ErrInvalidArgument)
	})
}

func TestCommandTree(t *testing.T) {
	dir := writeTestLayout(t)
	cfg := Config{RootDir: dir}

	run := func(t *testing.T, args ...string) string {
		t.Helper()
		cmd := NewCommand(cfg, WithRandomSeed(7))
		var out bytes.Buffer
		cmd.SetOut(&out)
		cmd.SetErr(&out)
		cmd.SetArgs(args)
		require.NoError(t, cmd.Execute())
		return out.String()
	}

	t.Run("Info", func(t *testing.T) {
		out := run(t, "info")
		assert.Contains(t, out, "models:   3")
		assert.Contains(t, out, "synsets:  2")
	})

	t.Run("Categories", func(t *testing.T) {
		out := run(t, "categories")
		assert.Contains(t, out, "03001627")
		assert.Contains(t, out, "04379243")
	})

	t.Run("SampleByIdx", func(t *testing.T) {
		out := run(t, "sample", "--idx", "0,2")
		assert.Contains(t, out, filepath.Join(dir, "03001627", "chair0", "model.obj"))
		assert.Contains(t, out, filepath.Join(dir, "04379243", "table0", "model.obj"))
	})

	t.Run("SampleByCategory", func(t *testing.T) {
		out := run(t, "sample", "-c", "03001627", "-n", "2")
		assert.Contains(t, out, "03001627")
	})

	t.Run("Manifest", func(t *testing.T) {
		outPath := filepath.Join(t.TempDir(), "catalog.json.zst")
		run(t, "manifest", outPath)
		_, err := os.Stat(outPath)
		require.NoError(t, err)
	})
}
