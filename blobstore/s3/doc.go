// Package s3 implements blobstore.BlobStore for Amazon S3.
//
// Public ShapeNet-style mirrors are commonly hosted in S3 buckets; Store reads
// mesh files and catalog manifests directly from such a bucket. Whole-blob
// reads use the s3 transfer manager for ranged parallel downloads.
package s3
