package binary

import (
	"fmt"
	"slices"

	"github.com/hupe1980/vsago"
	"github.com/hupe1980/vsago/rng"
)

// Vector is an immutable sparse binary hypervector.
// The zero value is the empty vector of dimension 0 and is not usable with
// the operators; construct vectors via Random or FromIndices.
type Vector struct {
	dim    int
	active []int // sorted ascending, duplicate-free, each in [0, dim)
}

// Random draws a vector with exactly nActive distinct active positions,
// sampled uniformly without replacement from [0, dimension).
//
// Errors: vsago.ErrZeroDimension if dimension < 1, vsago.ErrZeroActiveElements
// if nActive < 1 (constructors never produce an empty vector; empty vectors
// arise only as operator results, e.g. Bind(a, a)), and
// vsago.ErrTooManyActiveElements if nActive > dimension.
func Random(r *rng.RNG, dimension, nActive int) (Vector, error) {
	if dimension <= 0 {
		return Vector{}, vsago.ErrZeroDimension
	}
	if nActive <= 0 {
		return Vector{}, vsago.ErrZeroActiveElements
	}
	if nActive > dimension {
		return Vector{}, &vsago.ErrTooManyActiveElements{Requested: nActive, Dimension: dimension}
	}

	active := r.Sample(dimension, nActive)
	slices.Sort(active)

	return Vector{dim: dimension, active: active}, nil
}

// FromIndices builds a vector whose active set is exactly the given index
// collection. Duplicates are deduplicated (the binary representation has no
// multiplicity) and input order is irrelevant.
//
// Errors: vsago.ErrZeroDimension if dimension < 1, vsago.ErrEmptyIndices if
// indices is empty, and *vsago.ErrVectorSizeMismatch if any index falls
// outside [0, dimension) — Expected carries the declared dimension, Actual
// the minimal dimension that could hold the offending index.
func FromIndices(dimension int, indices []int) (Vector, error) {
	if dimension <= 0 {
		return Vector{}, vsago.ErrZeroDimension
	}
	if len(indices) == 0 {
		return Vector{}, vsago.ErrEmptyIndices
	}

	active := slices.Clone(indices)
	slices.Sort(active)
	active = slices.Compact(active)

	if active[0] < 0 {
		return Vector{}, &vsago.ErrVectorSizeMismatch{Expected: dimension, Actual: active[0] + 1}
	}
	if last := active[len(active)-1]; last >= dimension {
		return Vector{}, &vsago.ErrVectorSizeMismatch{Expected: dimension, Actual: last + 1}
	}

	return Vector{dim: dimension, active: active}, nil
}

// Dim returns the vector's dimension.
func (v Vector) Dim() int { return v.dim }

// ActiveCount returns the number of active positions (the population count).
func (v Vector) ActiveCount() int { return len(v.active) }

// Active returns a copy of the sorted active index set.
func (v Vector) Active() []int {
	return slices.Clone(v.active)
}

// Contains reports whether position i is active.
func (v Vector) Contains(i int) bool {
	_, found := slices.BinarySearch(v.active, i)
	return found
}

// Equal reports whether v and other have the same dimension and active set.
func (v Vector) Equal(other Vector) bool {
	return v.dim == other.dim && slices.Equal(v.active, other.active)
}

func (v Vector) String() string {
	return fmt.Sprintf("binary.Vector(dim=%d, active=%d)", v.dim, len(v.active))
}
