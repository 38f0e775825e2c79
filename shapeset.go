package shapeset

import (
	"context"
	"errors"
	"path"
	"path/filepath"
	"time"

	"github.com/hupe1980/shapeset/blobstore"
	"github.com/hupe1980/shapeset/catalog"
	"github.com/hupe1980/shapeset/render"
	"github.com/hupe1980/shapeset/sample"
)

// DefaultModelFile is the fixed per-model file name inside each
// {synsetID}/{modelID}/ directory.
const DefaultModelFile = "model.obj"

// Dataset indexes a ShapeNet-style model collection and resolves selectors
// into catalog indices, file paths and render dispatches.
//
// The underlying catalog is immutable; all methods are safe for concurrent
// use.
type Dataset struct {
	catalog   *catalog.Catalog
	sampler   *sample.Sampler
	store     blobstore.BlobStore
	fetcher   *render.Fetcher
	rootDir   string
	modelFile string
	logger    *Logger
	metrics   MetricsCollector
}

// New creates a Dataset over an already-built catalog. rootDir is the
// directory (or store-relative prefix) that path resolution joins onto.
func New(c *catalog.Catalog, rootDir string, optFns ...Option) *Dataset {
	o := applyOptions(optFns)

	store := o.store
	if store == nil {
		store = blobstore.NewLocalStore(rootDir)
	}

	fetcher := render.NewFetcher(store, render.FetchOptions{
		Parallelism: o.fetchParallelism,
		BytesPerSec: o.fetchBytesPerSec,
	})

	return &Dataset{
		catalog:   c,
		sampler:   sample.New(o.sampleSeed()),
		store:     store,
		fetcher:   fetcher,
		rootDir:   rootDir,
		modelFile: o.modelFile,
		logger:    o.logger,
		metrics:   o.metricsCollector,
	}
}

// Open builds a Dataset from a dataset root. It loads the catalog manifest
// (catalog.json, optionally .zst/.lz4 compressed) when one exists, and falls
// back to scanning the store's {synsetID}/{modelID}/{modelFile} layout.
//
// Use WithStore to open a remote mirror instead of the local file system.
func Open(ctx context.Context, rootDir string, optFns ...Option) (*Dataset, error) {
	o := applyOptions(optFns)

	store := o.store
	if store == nil {
		store = blobstore.NewLocalStore(rootDir)
	}

	c, err := loadCatalog(ctx, store, o)
	if err != nil {
		return nil, err
	}

	optFns = append(optFns, WithStore(store))
	return New(c, rootDir, optFns...), nil
}

func loadCatalog(ctx context.Context, store blobstore.BlobStore, o options) (*catalog.Catalog, error) {
	for _, name := range []string{
		catalog.DefaultManifestName,
		catalog.DefaultManifestName + ".zst",
		catalog.DefaultManifestName + ".lz4",
	} {
		c, err := catalog.LoadFromStore(ctx, store, name, o.codec)
		if err == nil {
			return c, nil
		}
		if !errors.Is(err, blobstore.ErrNotFound) {
			return nil, err
		}
	}
	return catalog.FromStore(ctx, store, o.modelFile)
}

// Catalog returns the underlying immutable catalog.
func (d *Dataset) Catalog() *catalog.Catalog { return d.catalog }

// Len returns the number of models in the loaded dataset.
func (d *Dataset) Len() int { return d.catalog.Len() }

// Entry returns the (synset id, model id) pair at index i.
// The caller must ensure 0 <= i < Len().
func (d *Dataset) Entry(i int) catalog.Entry { return d.catalog.Entry(i) }

// PathAt returns the file path of the model at index i:
// {rootDir}/{synsetID}/{modelID}/{modelFile}.
func (d *Dataset) PathAt(i int) string {
	e := d.catalog.Entry(i)
	return filepath.Join(d.rootDir, e.SynsetID, e.ModelID, d.modelFile)
}

// keyAt returns the store-relative slash key of the model at index i.
func (d *Dataset) keyAt(i int) string {
	e := d.catalog.Entry(i)
	return path.Join(e.SynsetID, e.ModelID, d.modelFile)
}

// Paths resolves a selector and maps the resulting indices to file paths,
// preserving resolution order.
func (d *Dataset) Paths(ctx context.Context, sel Selector) ([]string, error) {
	idxs, err := d.Resolve(ctx, sel)
	if err != nil {
		return nil, err
	}
	paths := make([]string, len(idxs))
	for i, idx := range idxs {
		paths[i] = d.PathAt(idx)
	}
	return paths, nil
}

// Render resolves a selector, fetches the selected mesh files and dispatches
// one batch request to the external renderer. This method is purely
// marshalling; all rendering happens inside r.
func (d *Dataset) Render(ctx context.Context, sel Selector, r render.Renderer, cfg render.Config) ([]render.Image, error) {
	start := time.Now()

	idxs, err := d.Resolve(ctx, sel)
	if err != nil {
		return nil, err
	}

	keys := make([]string, len(idxs))
	for i, idx := range idxs {
		keys[i] = d.keyAt(idx)
	}

	meshes, err := d.fetcher.Fetch(ctx, keys)
	if err != nil {
		d.metrics.RecordRender(len(keys), time.Since(start), err)
		d.logger.LogRender(ctx, len(keys), err)
		return nil, err
	}

	images, err := r.Render(ctx, &render.Request{
		Meshes: meshes,
		Config: cfg.Normalize(),
	})
	d.metrics.RecordRender(len(meshes), time.Since(start), err)
	d.logger.LogRender(ctx, len(meshes), err)
	return images, err
}
