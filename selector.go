package shapeset

import (
	"context"
	"time"
)

// Selector describes which models to pick from the catalog. Exactly one
// selection mode is honored per call, in precedence order:
//
//  1. ModelIDs: explicit model ids, resolved in input order.
//  2. Categories (+ SampleNums): random draws per category. SampleNums must
//     have the same length as Categories, or length 1 to broadcast one count
//     to every category.
//  3. Idxs: explicit catalog indices, validated and passed through.
//  4. Neither: SampleNums[0] (default 1) models drawn from the whole catalog.
type Selector struct {
	ModelIDs   []string
	Categories []string
	SampleNums []int
	Idxs       []int
}

// Selection modes reported to metrics.
const (
	modeModelIDs   = "model_ids"
	modeCategories = "categories"
	modeIdxs       = "idxs"
	modeDefault    = "default"
)

// Resolve converts a selector into an ordered list of catalog indices.
//
// Draws larger than the selected range fall back to sampling with
// replacement and log a warning; they never fail.
func (d *Dataset) Resolve(ctx context.Context, sel Selector) ([]int, error) {
	start := time.Now()

	mode, idxs, err := d.resolve(ctx, sel)
	err = translateError(err)

	d.metrics.RecordResolve(mode, len(idxs), time.Since(start), err)
	d.logger.LogResolve(ctx, mode, len(idxs), err)
	if err != nil {
		return nil, err
	}
	return idxs, nil
}

func (d *Dataset) resolve(ctx context.Context, sel Selector) (string, []int, error) {
	switch {
	case len(sel.ModelIDs) > 0:
		idxs, err := d.resolveModelIDs(sel.ModelIDs)
		return modeModelIDs, idxs, err

	case len(sel.Categories) > 0:
		idxs, err := d.resolveCategories(ctx, sel.Categories, sel.SampleNums)
		return modeCategories, idxs, err

	case len(sel.Idxs) > 0:
		idxs, err := d.validateIdxs(sel.Idxs)
		return modeIdxs, idxs, err

	default:
		idxs, err := d.resolveDefault(ctx, sel.SampleNums)
		return modeDefault, idxs, err
	}
}

// resolveModelIDs maps each requested id to the index of its first catalog
// occurrence. Output order matches input order; duplicates are preserved.
func (d *Dataset) resolveModelIDs(modelIDs []string) ([]int, error) {
	idxs := make([]int, 0, len(modelIDs))
	for _, id := range modelIDs {
		i, ok := d.catalog.IndexOfModel(id)
		if !ok {
			return nil, &ErrModelNotFound{ModelID: id}
		}
		idxs = append(idxs, i)
	}
	return idxs, nil
}

// resolveCategories draws from each category's contiguous run, concatenating
// results in category order.
func (d *Dataset) resolveCategories(ctx context.Context, categories []string, sampleNums []int) ([]int, error) {
	if len(sampleNums) == 0 {
		sampleNums = []int{1}
	}
	if len(categories) != len(sampleNums) && len(sampleNums) != 1 {
		return nil, &ErrSampleCountMismatch{
			Categories: len(categories),
			SampleNums: len(sampleNums),
		}
	}

	var idxs []int
	for i, category := range categories {
		synset := d.catalog.ResolveAlias(category)
		run, ok := d.catalog.Run(synset)
		if !ok {
			return nil, &ErrUnknownCategory{Category: category}
		}

		// Broadcast if sampleNums has length of 1.
		count := sampleNums[0]
		if len(sampleNums) > 1 {
			count = sampleNums[i]
		}

		sampled, err := d.draw(ctx, count, run.Start, run.Len, "category "+synset)
		if err != nil {
			return nil, err
		}
		idxs = append(idxs, sampled...)
	}
	return idxs, nil
}

// validateIdxs checks every explicit index against the catalog bounds.
func (d *Dataset) validateIdxs(idxs []int) ([]int, error) {
	n := d.catalog.Len()
	for _, idx := range idxs {
		if idx < 0 || idx >= n {
			return nil, &ErrIndexBounds{Index: idx, Size: n}
		}
	}
	return idxs, nil
}

// resolveDefault draws sampleNums[0] models from the whole catalog.
func (d *Dataset) resolveDefault(ctx context.Context, sampleNums []int) ([]int, error) {
	if len(sampleNums) == 0 {
		sampleNums = []int{1}
	}
	if len(sampleNums) > 1 {
		d.logger.WarnExtraSampleNums(ctx, sampleNums[0], len(sampleNums))
	}
	return d.draw(ctx, sampleNums[0], 0, d.catalog.Len(), "all categories")
}

// draw samples count indices from [start, start+length), surfacing the
// with-replacement fallback as a warning attributed to scope.
func (d *Dataset) draw(ctx context.Context, count, start, length int, scope string) ([]int, error) {
	begin := time.Now()
	idxs, replaced, err := d.sampler.Draw(count, start, length)
	if err != nil {
		return nil, err
	}
	d.metrics.RecordSample(count, replaced, time.Since(begin))
	if replaced {
		d.logger.WarnReplacementFallback(ctx, scope, count, length)
	}
	return idxs, nil
}
