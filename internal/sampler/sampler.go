package sampler

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

// Seed is the constant every generator returned by New starts from. It is
// deliberately not configurable: changing it changes every sample ever taken.
const Seed uint64 = 0

// ErrNegativeSize is returned when a negative sample size is requested.
var ErrNegativeSize = errors.New("sample size must not be negative")

// SampleSizeError reports a request for more items than the population holds.
type SampleSizeError struct {
	Requested int
	Available int
}

// Error implements the error interface for SampleSizeError.
func (e *SampleSizeError) Error() string {
	return fmt.Sprintf("sample larger than population (requested %d, available %d)", e.Requested, e.Available)
}

// New returns a generator seeded with Seed. Each call starts a fresh,
// identical sequence.
func New() *rand.Rand {
	return rand.New(rand.NewPCG(Seed, Seed))
}

// Indices returns k distinct positions from [0, n) in the order a partial
// Fisher-Yates shuffle selects them.
func Indices(r *rand.Rand, n, k int) ([]int, error) {
	if k < 0 {
		return nil, ErrNegativeSize
	}
	if k > n {
		return nil, &SampleSizeError{Requested: k, Available: n}
	}

	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	for i := 0; i < k; i++ {
		j := i + r.IntN(n-i)
		perm[i], perm[j] = perm[j], perm[i]
	}
	return perm[:k:k], nil
}

// Sample returns k items of population chosen without replacement. The
// population itself is left untouched.
func Sample[T any](r *rand.Rand, population []T, k int) ([]T, error) {
	idx, err := Indices(r, len(population), k)
	if err != nil {
		return nil, err
	}

	out := make([]T, len(idx))
	for i, p := range idx {
		out[i] = population[p]
	}
	return out, nil
}
