// Package render marshals resolved dataset selections into a rendering
// collaborator's API.
//
// This package performs no rendering itself: mesh parsing, rasterization,
// shading and camera math belong to the external Renderer implementation.
// What lives here is the explicit configuration surface (Config, replacing
// the original pipeline's implicit per-call defaults) and the mesh Fetcher
// that loads resolved paths from a blobstore with bounded parallelism.
package render
