package testutil

import (
	"fmt"
	"math/rand"
	"sort"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), //nolint:gosec // deterministic test data
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand = rand.New(rand.NewSource(r.seed)) //nolint:gosec // deterministic test data
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// PageCounts returns n request sizes drawn uniformly from [0, maxPages].
func (r *RNG) PageCounts(n, maxPages int) []uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	counts := make([]uint64, n)
	for i := range counts {
		counts[i] = uint64(r.rand.Intn(maxPages + 1))
	}
	return counts
}

// Span is a half-open byte range [Start, End) handed out by an allocator.
type Span struct {
	Start int
	End   int
}

// CheckSpans verifies that spans are pairwise disjoint and lie strictly
// inside a buffer of capacity bytes. Empty spans are only bounds-checked.
func CheckSpans(spans []Span, capacity int) error {
	sorted := make([]Span, 0, len(spans))
	for _, s := range spans {
		if s.Start < 0 || s.End < s.Start || s.End >= capacity {
			return fmt.Errorf("span [%d, %d) outside buffer of %d bytes", s.Start, s.End, capacity)
		}
		if s.End > s.Start {
			sorted = append(sorted, s)
		}
	}

	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Start < sorted[i-1].End {
			return fmt.Errorf("span [%d, %d) overlaps [%d, %d)",
				sorted[i].Start, sorted[i].End, sorted[i-1].Start, sorted[i-1].End)
		}
	}
	return nil
}
