package sample

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDraw(t *testing.T) {
	t.Run("WithoutReplacement", func(t *testing.T) {
		s := New(42)

		idxs, replaced, err := s.Draw(3, 10, 5)
		require.NoError(t, err)
		assert.False(t, replaced)
		require.Len(t, idxs, 3)

		seen := make(map[int]bool)
		for _, idx := range idxs {
			assert.GreaterOrEqual(t, idx, 10)
			assert.Less(t, idx, 15)
			assert.False(t, seen[idx], "indices must be distinct")
			seen[idx] = true
		}
	})

	t.Run("FullWindow", func(t *testing.T) {
		s := New(1)

		idxs, replaced, err := s.Draw(5, 0, 5)
		require.NoError(t, err)
		assert.False(t, replaced)

		seen := make(map[int]bool)
		for _, idx := range idxs {
			seen[idx] = true
		}
		assert.Len(t, seen, 5, "a full draw is a permutation")
	})

	t.Run("WithReplacementFallback", func(t *testing.T) {
		s := New(42)

		idxs, replaced, err := s.Draw(10, 5, 3)
		require.NoError(t, err)
		assert.True(t, replaced)
		require.Len(t, idxs, 10)
		for _, idx := range idxs {
			assert.GreaterOrEqual(t, idx, 5)
			assert.Less(t, idx, 8)
		}
	})

	t.Run("Deterministic", func(t *testing.T) {
		a, _, err := New(7).Draw(4, 0, 100)
		require.NoError(t, err)
		b, _, err := New(7).Draw(4, 0, 100)
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})

	t.Run("ZeroCount", func(t *testing.T) {
		idxs, replaced, err := New(1).Draw(0, 0, 5)
		require.NoError(t, err)
		assert.False(t, replaced)
		assert.Empty(t, idxs)
		assert.NotNil(t, idxs)
	})

	t.Run("NegativeCount", func(t *testing.T) {
		_, _, err := New(1).Draw(-1, 0, 5)
		require.ErrorIs(t, err, ErrNegativeCount)
	})

	t.Run("EmptyRange", func(t *testing.T) {
		_, _, err := New(1).Draw(1, 0, 0)
		require.ErrorIs(t, err, ErrEmptyRange)
	})
}

func TestSeed(t *testing.T) {
	s := New(99)
	assert.Equal(t, int64(99), s.Seed())
}
