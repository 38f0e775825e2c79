// Package blobstore provides storage abstraction for dataset files.
//
// A ShapeNet-style dataset is a tree of immutable mesh files addressed as
// {synsetID}/{modelID}/{modelFile}. BlobStore is the read-side interface over
// that tree. Implementations must be safe for concurrent use.
//
// # Built-in Implementations
//
//   - LocalStore: local filesystem rooted at the dataset directory
//   - CachingStore: spills blobs from a remote store into a local cache dir
//   - s3.Store: Amazon S3 mirrors, with parallel whole-object downloads
//   - minio.Store: MinIO and other S3-compatible object stores
//
// # Custom Implementations
//
// Implement the BlobStore interface to support custom storage backends:
//
//	type BlobStore interface {
//	    Open(ctx, name) (Blob, error)        // open for reading
//	    List(ctx, prefix) ([]string, error)  // enumerate blob names
//	}
//
// Stores that can read a whole blob more efficiently than streaming it may
// additionally implement Fetcher; ReadAll prefers it when present.
package blobstore
