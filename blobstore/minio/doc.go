// Package minio implements blobstore.BlobStore for MinIO and other
// S3-compatible object stores. Useful for self-hosted dataset mirrors.
package minio
