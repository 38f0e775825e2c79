// Package shapeset indexes ShapeNet-style 3D-model collections and resolves
// selectors into catalog indices, mesh file paths and render dispatches.
//
// A dataset is an ordered catalog of (synset id, model id) pairs, grouped so
// that each synset occupies one contiguous index range, stored on disk (or a
// remote mirror) as {rootDir}/{synsetID}/{modelID}/model.obj.
//
// # Quick Start
//
// Local dataset:
//
//	ctx := context.Background()
//	ds, _ := shapeset.Open(ctx, "./ShapeNetCore.v2")
//
//	// three random chairs and two random tables
//	paths, _ := ds.Paths(ctx, shapeset.Selector{
//	    Categories: []string{"chair", "table"},
//	    SampleNums: []int{3, 2},
//	})
//
// Remote mirror with a local cache:
//
//	store := blobstore.NewCachingStore(s3store, "/fast/nvme/shapenet")
//	ds, _ := shapeset.Open(ctx, "ShapeNetCore.v2", shapeset.WithStore(store))
//
// # Selection Modes
//
// Exactly one selector mode wins per call, in precedence order: explicit
// model ids, categories with per-category sample counts (one count
// broadcasts), explicit catalog indices, and finally a bare random draw from
// the whole catalog.
//
// Draws larger than the selected category fall back to sampling with
// replacement and log a warning instead of failing, since some synsets are
// smaller than common batch sizes.
//
// # Rendering
//
// Rendering is delegated: Dataset.Render resolves a selector, fetches the
// mesh files and hands one render.Request to an external render.Renderer.
// No mesh parsing or shading happens in this module.
package shapeset
