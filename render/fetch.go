package render

import (
	"context"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/hupe1980/shapeset/blobstore"
)

// FetchOptions bounds mesh loading from a store.
type FetchOptions struct {
	// Parallelism is the maximum number of concurrent blob reads.
	// If 0, defaults to 4.
	Parallelism int

	// BytesPerSec limits aggregate read throughput across the fetch.
	// If 0, unlimited. Mostly useful against remote stores.
	BytesPerSec int64
}

// Fetcher loads mesh blobs for resolved selections, preserving input order.
type Fetcher struct {
	store   blobstore.BlobStore
	limit   int
	limiter *rate.Limiter
}

// NewFetcher creates a Fetcher over the given store.
func NewFetcher(store blobstore.BlobStore, opts FetchOptions) *Fetcher {
	limit := opts.Parallelism
	if limit <= 0 {
		limit = 4
	}
	f := &Fetcher{store: store, limit: limit}
	if opts.BytesPerSec > 0 {
		f.limiter = rate.NewLimiter(rate.Limit(opts.BytesPerSec), int(opts.BytesPerSec))
	}
	return f
}

// Fetch reads every named blob. The result slice is parallel to names; the
// first failure cancels the remaining reads.
func (f *Fetcher) Fetch(ctx context.Context, names []string) ([]Mesh, error) {
	meshes := make([]Mesh, len(names))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(f.limit)

	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			data, err := blobstore.ReadAll(ctx, f.store, name)
			if err != nil {
				return err
			}
			if err := f.throttle(ctx, len(data)); err != nil {
				return err
			}
			meshes[i] = Mesh{Path: name, Data: data}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return meshes, nil
}

// throttle charges n bytes against the rate limiter, in burst-sized chunks so
// blobs larger than the burst do not error out.
func (f *Fetcher) throttle(ctx context.Context, n int) error {
	if f.limiter == nil {
		return nil
	}
	burst := f.limiter.Burst()
	for n > 0 {
		chunk := n
		if chunk > burst {
			chunk = burst
		}
		if err := f.limiter.WaitN(ctx, chunk); err != nil {
			return err
		}
		n -= chunk
	}
	return nil
}
