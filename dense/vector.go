package dense

import (
	"slices"

	"github.com/hupe1980/vsago"
	"github.com/hupe1980/vsago/rng"
)

// Vector is an immutable dense real-valued hypervector.
// Its length is the dimension.
type Vector []float32

// RandomUniform draws a vector whose components are independent uniform
// samples over [min, max).
//
// Errors: vsago.ErrZeroDimension if dimension < 1.
func RandomUniform(r *rng.RNG, dimension int, min, max float32) (Vector, error) {
	if dimension <= 0 {
		return nil, vsago.ErrZeroDimension
	}

	v := make(Vector, dimension)
	for i := range v {
		v[i] = r.Float32Range(min, max)
	}

	return v, nil
}

// Dim returns the vector's dimension.
func (v Vector) Dim() int { return len(v) }

// Clone returns an independent copy of v.
func (v Vector) Clone() Vector {
	return slices.Clone(v)
}
