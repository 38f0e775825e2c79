package blobstore

import (
	"context"
	"os"
	"path/filepath"
)

// CachingStore wraps a BlobStore and spills whole blobs into a local cache
// directory on first access. Subsequent opens are served from disk.
//
// Dataset blobs are immutable, so cached copies are never invalidated.
type CachingStore struct {
	inner BlobStore
	dir   string
}

// NewCachingStore creates a new CachingStore caching into dir.
func NewCachingStore(inner BlobStore, dir string) *CachingStore {
	return &CachingStore{inner: inner, dir: dir}
}

// Open opens a blob, downloading it into the cache directory if missing.
func (s *CachingStore) Open(ctx context.Context, name string) (Blob, error) {
	path := filepath.Join(s.dir, filepath.FromSlash(name))
	if info, err := os.Stat(path); err == nil {
		return &localBlob{path: path, size: info.Size()}, nil
	}

	data, err := ReadAll(ctx, s.inner, name)
	if err != nil {
		return nil, err
	}
	if err := writeFileAtomic(path, data); err != nil {
		return nil, err
	}
	return &localBlob{path: path, size: int64(len(data))}, nil
}

// List delegates to the inner store so that uncached blobs are visible.
func (s *CachingStore) List(ctx context.Context, prefix string) ([]string, error) {
	return s.inner.List(ctx, prefix)
}

// writeFileAtomic writes data via a temp file and rename, so a crashed
// download never leaves a truncated blob in the cache.
func writeFileAtomic(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".cache-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return nil
}
