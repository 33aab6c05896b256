// Package rng provides the injectable randomness source used by the algebra
// packages. All sampling goes through an explicitly constructed RNG so that
// identical seeds reproduce identical vectors and tie-break decisions.
package rng

import "math/rand"

// RNG struct encapsulates the random number generator and seed.
type RNG struct {
	rand *rand.Rand
	seed int64
}

// New creates a new RNG instance with the specified seed.
func New(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Seed returns the seed this RNG was constructed with.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Float64 returns a uniform value in [0, 1).
func (r *RNG) Float64() float64 {
	return r.rand.Float64()
}

// Float32Range returns a uniform value in [min, max).
func (r *RNG) Float32Range(min, max float32) float32 {
	return min + (max-min)*r.rand.Float32()
}

// Coin returns an unbiased boolean draw.
func (r *RNG) Coin() bool {
	return r.rand.Float64() < 0.5
}

// Sample draws k distinct integers uniformly without replacement from [0, n).
// It uses Floyd's algorithm, so memory is O(k) regardless of n — important
// when n is a hypervector dimension in the millions. The result is unsorted.
// Panics if k < 0, n < 0 or k > n; callers validate first.
func (r *RNG) Sample(n, k int) []int {
	if k < 0 || n < 0 || k > n {
		panic("rng: invalid Sample arguments")
	}

	chosen := make(map[int]struct{}, k)
	out := make([]int, 0, k)
	for i := n - k; i < n; i++ {
		j := r.rand.Intn(i + 1)
		if _, ok := chosen[j]; ok {
			chosen[i] = struct{}{}
			out = append(out, i)
		} else {
			chosen[j] = struct{}{}
			out = append(out, j)
		}
	}

	return out
}
