// Package encode provides compositional encoders built from the sparse
// binary algebra: ordered sequences, role-filler records and sliding-window
// n-grams. These are the standard VSA constructions for putting structure
// into a single hypervector.
package encode

import (
	"errors"

	"github.com/hupe1980/vsago"
	"github.com/hupe1980/vsago/binary"
	"github.com/hupe1980/vsago/rng"
)

var (
	// ErrInvalidNGramSize is returned when the n-gram width is not in
	// [1, len(vectors)].
	ErrInvalidNGramSize = errors.New("n-gram size must be in [1, len(vectors)]")
)

// Pair is a role-filler pair for Record.
type Pair struct {
	Role   binary.Vector
	Filler binary.Vector
}

// Sequence encodes an ordered sequence: element i is permuted by i before
// bundling, so the same items in a different order yield a different vector.
// Binding the result's position back out (Permute by -i) recovers a vector
// similar to element i.
//
// Errors: vsago.ErrEmptyVectorList if no vectors are given, and
// *vsago.ErrVectorSizeMismatch if the inputs disagree on dimension.
func Sequence(r *rng.RNG, vectors ...binary.Vector) (binary.Vector, error) {
	if len(vectors) == 0 {
		return binary.Vector{}, vsago.ErrEmptyVectorList
	}

	permuted := make([]binary.Vector, len(vectors))
	for i, v := range vectors {
		permuted[i] = binary.Permute(v, i)
	}

	return binary.Bundle(r, permuted...)
}

// Record encodes a set of role-filler pairs: each filler is bound to its
// role and the bound pairs are bundled. Binding the result with a role
// recovers a vector similar to that role's filler.
//
// Errors: vsago.ErrEmptyVectorList if no pairs are given, and
// *vsago.ErrVectorSizeMismatch if any pair disagrees on dimension.
func Record(r *rng.RNG, pairs ...Pair) (binary.Vector, error) {
	if len(pairs) == 0 {
		return binary.Vector{}, vsago.ErrEmptyVectorList
	}

	bound := make([]binary.Vector, len(pairs))
	for i, p := range pairs {
		b, err := binary.Bind(p.Role, p.Filler)
		if err != nil {
			return binary.Vector{}, err
		}
		bound[i] = b
	}

	return binary.Bundle(r, bound...)
}

// NGrams encodes overlapping windows of width n: within a window the j-th
// element is permuted by n-1-j and the permuted elements bound together,
// then all windows are bundled.
//
// Errors: vsago.ErrEmptyVectorList if no vectors are given,
// ErrInvalidNGramSize if n is not in [1, len(vectors)], and
// *vsago.ErrVectorSizeMismatch if the inputs disagree on dimension.
func NGrams(r *rng.RNG, vectors []binary.Vector, n int) (binary.Vector, error) {
	if len(vectors) == 0 {
		return binary.Vector{}, vsago.ErrEmptyVectorList
	}
	if n < 1 || n > len(vectors) {
		return binary.Vector{}, ErrInvalidNGramSize
	}

	windows := make([]binary.Vector, 0, len(vectors)-n+1)
	for w := 0; w+n <= len(vectors); w++ {
		g := binary.Permute(vectors[w], n-1)
		for j := 1; j < n; j++ {
			var err error
			g, err = binary.Bind(g, binary.Permute(vectors[w+j], n-1-j))
			if err != nil {
				return binary.Vector{}, err
			}
		}
		windows = append(windows, g)
	}

	return binary.Bundle(r, windows...)
}
