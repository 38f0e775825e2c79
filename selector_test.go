package shapeset

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/shapeset/catalog"
)

// newTestDataset builds a catalog with synset "chair" (03001627) at indices
// [0, 5) and "table" (04379243) at [5, 8).
func newTestDataset(t *testing.T, optFns ...Option) *Dataset {
	t.Helper()

	b := catalog.NewBuilder()
	for _, m := range []string{"chair0", "chair1", "chair2", "chair3", "chair4"} {
		b.Append("03001627", m)
	}
	for _, m := range []string{"table0", "table1", "table2"} {
		b.Append("04379243", m)
	}
	b.Alias("chair", "03001627")
	b.Alias("table", "04379243")

	c, err := b.Build()
	require.NoError(t, err)

	return New(c, "/data/shapenet", append([]Option{WithRandomSeed(42)}, optFns...)...)
}

func TestResolveModelIDs(t *testing.T) {
	ctx := context.Background()
	ds := newTestDataset(t)

	t.Run("PreservesOrderAndDuplicates", func(t *testing.T) {
		idxs, err := ds.Resolve(ctx, Selector{
			ModelIDs: []string{"table1", "chair0", "table1"},
		})
		require.NoError(t, err)
		assert.Equal(t, []int{6, 0, 6}, idxs)
	})

	t.Run("AbsentID", func(t *testing.T) {
		_, err := ds.Resolve(ctx, Selector{ModelIDs: []string{"chair0", "missing"}})
		require.ErrorIs(t, err, ErrNotFound)

		var enf *ErrModelNotFound
		require.ErrorAs(t, err, &enf)
		assert.Equal(t, "missing", enf.ModelID)
	})

	t.Run("WinsOverOtherModes", func(t *testing.T) {
		idxs, err := ds.Resolve(ctx, Selector{
			ModelIDs:   []string{"chair1"},
			Categories: []string{"table"},
			Idxs:       []int{7},
		})
		require.NoError(t, err)
		assert.Equal(t, []int{1}, idxs)
	})
}

func TestResolveCategories(t *testing.T) {
	ctx := context.Background()
	ds := newTestDataset(t)

	t.Run("WithoutReplacement", func(t *testing.T) {
		idxs, err := ds.Resolve(ctx, Selector{
			Categories: []string{"chair"},
			SampleNums: []int{3},
		})
		require.NoError(t, err)
		require.Len(t, idxs, 3)

		seen := make(map[int]bool)
		for _, idx := range idxs {
			assert.GreaterOrEqual(t, idx, 0)
			assert.Less(t, idx, 5)
			assert.False(t, seen[idx], "indices must be distinct")
			seen[idx] = true
		}
	})

	t.Run("WithReplacementFallback", func(t *testing.T) {
		idxs, err := ds.Resolve(ctx, Selector{
			Categories: []string{"table"},
			SampleNums: []int{10},
		})
		require.NoError(t, err)
		require.Len(t, idxs, 10)
		for _, idx := range idxs {
			assert.GreaterOrEqual(t, idx, 5)
			assert.Less(t, idx, 8)
		}
	})

	t.Run("SynsetIDsAndLabelsMix", func(t *testing.T) {
		idxs, err := ds.Resolve(ctx, Selector{
			Categories: []string{"chair", "04379243"},
			SampleNums: []int{2, 1},
		})
		require.NoError(t, err)
		require.Len(t, idxs, 3)
		// Per-category grouping order is preserved.
		assert.Less(t, idxs[0], 5)
		assert.Less(t, idxs[1], 5)
		assert.GreaterOrEqual(t, idxs[2], 5)
	})

	t.Run("BroadcastSingleCount", func(t *testing.T) {
		idxs, err := ds.Resolve(ctx, Selector{
			Categories: []string{"chair", "table"},
			SampleNums: []int{2},
		})
		require.NoError(t, err)
		require.Len(t, idxs, 4)
		assert.Less(t, idxs[0], 5)
		assert.Less(t, idxs[1], 5)
		assert.GreaterOrEqual(t, idxs[2], 5)
		assert.GreaterOrEqual(t, idxs[3], 5)
	})

	t.Run("DefaultCountIsOne", func(t *testing.T) {
		idxs, err := ds.Resolve(ctx, Selector{Categories: []string{"chair"}})
		require.NoError(t, err)
		assert.Len(t, idxs, 1)
	})

	t.Run("CountMismatch", func(t *testing.T) {
		_, err := ds.Resolve(ctx, Selector{
			Categories: []string{"chair", "table"},
			SampleNums: []int{1, 2, 3},
		})
		require.ErrorIs(t, err, ErrInvalidArgument)

		var mismatch *ErrSampleCountMismatch
		require.ErrorAs(t, err, &mismatch)
		assert.Equal(t, 2, mismatch.Categories)
		assert.Equal(t, 3, mismatch.SampleNums)
	})

	t.Run("UnknownCategory", func(t *testing.T) {
		_, err := ds.Resolve(ctx, Selector{
			Categories: []string{"sofa"},
			SampleNums: []int{1},
		})
		require.ErrorIs(t, err, ErrInvalidArgument)

		var unknown *ErrUnknownCategory
		require.ErrorAs(t, err, &unknown)
		assert.Equal(t, "sofa", unknown.Category)
	})
}

func TestResolveIdxs(t *testing.T) {
	ctx := context.Background()
	ds := newTestDataset(t)

	t.Run("PassThrough", func(t *testing.T) {
		idxs, err := ds.Resolve(ctx, Selector{Idxs: []int{7, 0, 3, 0}})
		require.NoError(t, err)
		assert.Equal(t, []int{7, 0, 3, 0}, idxs)
	})

	t.Run("NegativeIndex", func(t *testing.T) {
		_, err := ds.Resolve(ctx, Selector{Idxs: []int{-1}})
		require.ErrorIs(t, err, ErrIndexOutOfRange)
	})

	t.Run("IndexEqualToLen", func(t *testing.T) {
		_, err := ds.Resolve(ctx, Selector{Idxs: []int{8}})
		require.ErrorIs(t, err, ErrIndexOutOfRange)

		var bounds *ErrIndexBounds
		require.ErrorAs(t, err, &bounds)
		assert.Equal(t, 8, bounds.Index)
		assert.Equal(t, 8, bounds.Size)
	})
}

func TestResolveDefault(t *testing.T) {
	ctx := context.Background()
	ds := newTestDataset(t)

	t.Run("BareSelectorDrawsOne", func(t *testing.T) {
		idxs, err := ds.Resolve(ctx, Selector{})
		require.NoError(t, err)
		require.Len(t, idxs, 1)
		assert.GreaterOrEqual(t, idxs[0], 0)
		assert.Less(t, idxs[0], 8)
	})

	t.Run("OnlyFirstCountUsed", func(t *testing.T) {
		idxs, err := ds.Resolve(ctx, Selector{SampleNums: []int{3, 5, 7}})
		require.NoError(t, err)
		assert.Len(t, idxs, 3)
	})

	t.Run("OversizedDrawFromWholeCatalog", func(t *testing.T) {
		idxs, err := ds.Resolve(ctx, Selector{SampleNums: []int{20}})
		require.NoError(t, err)
		require.Len(t, idxs, 20)
		for _, idx := range idxs {
			assert.GreaterOrEqual(t, idx, 0)
			assert.Less(t, idx, 8)
		}
	})
}

func TestResolveDeterministicWithSeed(t *testing.T) {
	ctx := context.Background()
	sel := Selector{Categories: []string{"chair", "table"}, SampleNums: []int{2}}

	a, err := newTestDataset(t).Resolve(ctx, sel)
	require.NoError(t, err)
	b, err := newTestDataset(t).Resolve(ctx, sel)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestResolveMetrics(t *testing.T) {
	ctx := context.Background()
	metrics := &BasicMetricsCollector{}
	ds := newTestDataset(t, WithMetricsCollector(metrics))

	_, err := ds.Resolve(ctx, Selector{Categories: []string{"table"}, SampleNums: []int{10}})
	require.NoError(t, err)

	_, err = ds.Resolve(ctx, Selector{ModelIDs: []string{"missing"}})
	require.Error(t, err)

	assert.Equal(t, int64(2), metrics.ResolveCount.Load())
	assert.Equal(t, int64(1), metrics.ResolveErrors.Load())
	assert.Equal(t, int64(1), metrics.SampleCount.Load())
	assert.Equal(t, int64(1), metrics.SampleReplaced.Load())
}
