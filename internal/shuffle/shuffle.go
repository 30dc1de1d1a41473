// Package shuffle provides the randomness used during team assignment.
// The Source interface is the only entropy the assigner consumes, so tests
// can substitute a deterministic implementation and production code gets an
// unbiased one seeded from the operating system.
package shuffle

import (
	cryptorand "crypto/rand"
	"fmt"
	"math/rand/v2"
)

// Source supplies the two random operations the assigner needs: an unbiased
// permutation and uniform sampling without replacement. Implementations must
// make every valid outcome equally likely.
type Source interface {
	// Shuffle randomizes the order of n elements using the provided swap
	// function, exactly like rand.Shuffle.
	Shuffle(n int, swap func(i, j int))

	// Sample returns k distinct indices drawn uniformly from [0, n).
	// The order of the returned indices is itself uniformly random.
	// Sample panics if k < 0 or k > n; callers validate bounds first.
	Sample(n, k int) []int
}

// randSource implements Source on top of a math/rand/v2 generator.
type randSource struct {
	r *rand.Rand
}

// New returns a Source seeded from the operating system's entropy pool.
// Each call produces an independent stream; no seed is exposed.
func New() Source {
	var seed [32]byte
	if _, err := cryptorand.Read(seed[:]); err != nil {
		// crypto/rand.Read never fails on supported platforms.
		panic(fmt.Sprintf("shuffle: reading entropy: %v", err))
	}
	return &randSource{r: rand.New(rand.NewChaCha8(seed))}
}

// NewSeeded returns a deterministic Source for reproducible runs and tests.
// The same seed pair always yields the same sequence of results.
func NewSeeded(seed1, seed2 uint64) Source {
	return &randSource{r: rand.New(rand.NewPCG(seed1, seed2))}
}

func (s *randSource) Shuffle(n int, swap func(i, j int)) {
	s.r.Shuffle(n, swap)
}

func (s *randSource) Sample(n, k int) []int {
	if k < 0 || k > n {
		panic(fmt.Sprintf("shuffle: Sample(%d, %d) out of range", n, k))
	}

	// Partial Fisher-Yates: after k swaps the prefix holds a uniform
	// k-subset in uniform order.
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	for i := 0; i < k; i++ {
		j := i + s.r.IntN(n-i)
		idx[i], idx[j] = idx[j], idx[i]
	}
	return idx[:k]
}
