// Package sample implements uniform index sampling over catalog windows.
//
// Draws inside a window [start, start+length) are uniform with weight 1 per
// position. A draw larger than the window falls back to sampling with
// replacement instead of failing; the caller decides how to surface that.
package sample

import (
	"errors"
	"math/rand"
	"sync"
)

var (
	// ErrNegativeCount is returned when a draw requests a negative count.
	ErrNegativeCount = errors.New("sample: count must not be negative")

	// ErrEmptyRange is returned when a positive draw targets an empty window.
	ErrEmptyRange = errors.New("sample: cannot draw from an empty range")
)

// Sampler draws uniform random indices. It is safe for concurrent use.
type Sampler struct {
	mu   sync.Mutex
	rand *rand.Rand
	seed int64
}

// New creates a Sampler with the specified seed.
// The same seed reproduces the same draw sequence.
func New(seed int64) *Sampler {
	return &Sampler{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Seed returns the seed the Sampler was created with.
func (s *Sampler) Seed() int64 { return s.seed }

// Draw samples count indices from the window [start, start+length).
//
// If count <= length, the result holds count distinct positions (uniform
// without replacement). If count > length, positions are drawn with
// replacement instead and replaced is true.
func (s *Sampler) Draw(count, start, length int) (idxs []int, replaced bool, err error) {
	if count < 0 {
		return nil, false, ErrNegativeCount
	}
	if count == 0 {
		return []int{}, false, nil
	}
	if length <= 0 {
		return nil, false, ErrEmptyRange
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idxs = make([]int, count)
	if count > length {
		for i := range idxs {
			idxs[i] = start + s.rand.Intn(length)
		}
		return idxs, true, nil
	}

	for i, p := range s.rand.Perm(length)[:count] {
		idxs[i] = start + p
	}
	return idxs, false, nil
}
