package blobstore

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
)

// ErrNotFound is returned when a blob does not exist.
//
// Implementations should return an error that satisfies
// `errors.Is(err, ErrNotFound)`. The default maps to `os.ErrNotExist`.
var ErrNotFound = os.ErrNotExist

// BlobStore is an abstraction for accessing immutable dataset blobs
// (mesh files, catalog manifests).
type BlobStore interface {
	// Open opens a blob for reading.
	Open(ctx context.Context, name string) (Blob, error)

	// List returns all blob names under the given prefix, sorted,
	// relative to the store root with slash separators.
	List(ctx context.Context, prefix string) ([]string, error)
}

// Blob is a read-only handle to a dataset blob.
type Blob interface {
	// Reader opens a stream over the full blob contents.
	Reader(ctx context.Context) (io.ReadCloser, error)
	// Size returns the size of the blob in bytes.
	Size() int64
	io.Closer
}

// Fetcher is an optional interface for stores that can read a whole blob
// more efficiently than streaming it (e.g. ranged parallel downloads).
type Fetcher interface {
	Fetch(ctx context.Context, name string) ([]byte, error)
}

// ReadAll reads the full contents of the named blob.
// It prefers the store's Fetcher implementation when present.
func ReadAll(ctx context.Context, store BlobStore, name string) ([]byte, error) {
	if f, ok := store.(Fetcher); ok {
		return f.Fetch(ctx, name)
	}

	b, err := store.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	defer b.Close()

	r, err := b.Reader(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	var buf bytes.Buffer
	buf.Grow(int(b.Size()))
	if _, err := io.Copy(&buf, r); err != nil {
		return nil, fmt.Errorf("read blob %s: %w", name, err)
	}
	return buf.Bytes(), nil
}
