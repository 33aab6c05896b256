package dense

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/vsago"
	"github.com/hupe1980/vsago/rng"
)

func TestRandomUniform(t *testing.T) {
	t.Run("ShapeAndRange", func(t *testing.T) {
		r := rng.New(42)
		v, err := RandomUniform(r, 1000, -1, 1)
		require.NoError(t, err)

		assert.Equal(t, 1000, v.Dim())
		for _, c := range v {
			assert.GreaterOrEqual(t, c, float32(-1))
			assert.Less(t, c, float32(1))
		}
	})

	t.Run("Deterministic", func(t *testing.T) {
		a, err := RandomUniform(rng.New(7), 100, 0, 1)
		require.NoError(t, err)
		b, err := RandomUniform(rng.New(7), 100, 0, 1)
		require.NoError(t, err)

		assert.Equal(t, a, b)
	})

	t.Run("ZeroDimension", func(t *testing.T) {
		_, err := RandomUniform(rng.New(1), 0, 0, 1)
		assert.ErrorIs(t, err, vsago.ErrZeroDimension)
	})
}

func TestSuperposition(t *testing.T) {
	t.Run("ElementwiseSum", func(t *testing.T) {
		out, err := Superposition(Vector{1, 0, 0}, Vector{0, 1, 0})
		require.NoError(t, err)
		assert.Equal(t, Vector{1, 1, 0}, out)
	})

	t.Run("SumNotAverage", func(t *testing.T) {
		out, err := Superposition(Vector{1, 2}, Vector{1, 2}, Vector{1, 2})
		require.NoError(t, err)
		assert.Equal(t, Vector{3, 6}, out)
	})

	t.Run("Errors", func(t *testing.T) {
		_, err := Superposition()
		assert.ErrorIs(t, err, vsago.ErrEmptyVectorList)

		_, err = Superposition(Vector{1, 2}, Vector{1, 2, 3})
		var mismatch *vsago.ErrVectorSizeMismatch
		require.ErrorAs(t, err, &mismatch)
		assert.Equal(t, 2, mismatch.Expected)
		assert.Equal(t, 3, mismatch.Actual)
	})
}

func TestCircularConvolution(t *testing.T) {
	t.Run("DeltaShifts", func(t *testing.T) {
		// Convolving with a shifted delta cyclically shifts the operand.
		out, err := CircularConvolution(Vector{1, 0, 0}, Vector{0, 1, 0})
		require.NoError(t, err)
		assert.Equal(t, Vector{0, 1, 0}, out)
	})

	t.Run("Direct", func(t *testing.T) {
		// n=2: result[0] = a0·b0 + a1·b1, result[1] = a0·b1 + a1·b0.
		out, err := CircularConvolution(Vector{1, 2}, Vector{3, 4})
		require.NoError(t, err)
		assert.InDelta(t, 11, out[0], 1e-5)
		assert.InDelta(t, 10, out[1], 1e-5)
	})

	t.Run("Commutative", func(t *testing.T) {
		r := rng.New(3)
		a, err := RandomUniform(r, 64, -1, 1)
		require.NoError(t, err)
		b, err := RandomUniform(r, 64, -1, 1)
		require.NoError(t, err)

		ab, err := CircularConvolution(a, b)
		require.NoError(t, err)
		ba, err := CircularConvolution(b, a)
		require.NoError(t, err)

		for i := range ab {
			assert.InDelta(t, ab[i], ba[i], 1e-4)
		}
	})

	t.Run("DistributesOverSuperposition", func(t *testing.T) {
		r := rng.New(4)
		a, err := RandomUniform(r, 128, -1, 1)
		require.NoError(t, err)
		b, err := RandomUniform(r, 128, -1, 1)
		require.NoError(t, err)
		c, err := RandomUniform(r, 128, -1, 1)
		require.NoError(t, err)

		bc, err := Superposition(b, c)
		require.NoError(t, err)
		left, err := CircularConvolution(a, bc)
		require.NoError(t, err)

		ab, err := CircularConvolution(a, b)
		require.NoError(t, err)
		ac, err := CircularConvolution(a, c)
		require.NoError(t, err)
		right, err := Superposition(ab, ac)
		require.NoError(t, err)

		for i := range left {
			assert.InDelta(t, left[i], right[i], 1e-3)
		}
	})

	t.Run("ParallelPathMatchesDefinition", func(t *testing.T) {
		// Dimension above the parallel threshold; verify a handful of output
		// positions against the direct double-sum definition.
		r := rng.New(5)
		a, err := RandomUniform(r, 1024, -1, 1)
		require.NoError(t, err)
		b, err := RandomUniform(r, 1024, -1, 1)
		require.NoError(t, err)

		out, err := CircularConvolution(a, b)
		require.NoError(t, err)

		n := a.Dim()
		for _, k := range []int{0, 1, 511, 512, 1023} {
			var want float32
			for i := range n {
				want += a[i] * b[(k-i+n)%n]
			}
			assert.InDelta(t, want, out[k], 1e-3)
		}
	})

	t.Run("SizeMismatch", func(t *testing.T) {
		_, err := CircularConvolution(Vector{1, 2}, Vector{1, 2, 3})
		var mismatch *vsago.ErrVectorSizeMismatch
		assert.ErrorAs(t, err, &mismatch)
	})
}

func TestCircularCorrelation(t *testing.T) {
	t.Run("DeltaIdentity", func(t *testing.T) {
		// Correlating with the delta at position 0 returns the operand.
		out, err := CircularCorrelation(Vector{1, 2, 3}, Vector{1, 0, 0})
		require.NoError(t, err)
		assert.Equal(t, Vector{1, 2, 3}, out)
	})

	t.Run("ApproximateUnbinding", func(t *testing.T) {
		r := rng.New(6)
		a, err := RandomUniform(r, 2048, -1, 1)
		require.NoError(t, err)
		b, err := RandomUniform(r, 2048, -1, 1)
		require.NoError(t, err)

		bound, err := CircularConvolution(a, b)
		require.NoError(t, err)

		// The bound vector is dissimilar to both inputs.
		simBound, err := CosineSimilarity(bound, a)
		require.NoError(t, err)
		assert.Less(t, float64(simBound), 0.3)

		recovered, err := CircularCorrelation(bound, b)
		require.NoError(t, err)

		sim, err := CosineSimilarity(recovered, a)
		require.NoError(t, err)
		assert.Greater(t, float64(sim), 0.5, "unbinding must recover a vector close to a")

		// Unbinding with an unrelated vector recovers nothing.
		c, err := RandomUniform(r, 2048, -1, 1)
		require.NoError(t, err)
		noise, err := CircularCorrelation(bound, c)
		require.NoError(t, err)
		simNoise, err := CosineSimilarity(noise, a)
		require.NoError(t, err)
		assert.Less(t, float64(simNoise), float64(sim))
	})

	t.Run("SizeMismatch", func(t *testing.T) {
		_, err := CircularCorrelation(Vector{1, 2}, Vector{1, 2, 3})
		var mismatch *vsago.ErrVectorSizeMismatch
		assert.ErrorAs(t, err, &mismatch)
	})
}

func TestCyclicShift(t *testing.T) {
	tests := []struct {
		name  string
		in    Vector
		shift int
		want  Vector
	}{
		{"PositiveShift", Vector{1, 2, 3, 4}, 1, Vector{4, 1, 2, 3}},
		{"NegativeShift", Vector{1, 2, 3, 4}, -1, Vector{2, 3, 4, 1}},
		{"ZeroShift", Vector{1, 2, 3}, 0, Vector{1, 2, 3}},
		{"FullRotation", Vector{1, 2, 3}, 3, Vector{1, 2, 3}},
		{"WrapsAroundDim", Vector{1, 2, 3}, 4, Vector{3, 1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CyclicShift(tt.in, tt.shift))
		})
	}

	t.Run("Roundtrip", func(t *testing.T) {
		r := rng.New(8)
		v, err := RandomUniform(r, 101, -1, 1)
		require.NoError(t, err)

		for _, s := range []int{1, 7, 100, 101, -13} {
			assert.Equal(t, v, CyclicShift(CyclicShift(v, s), -s))
		}
	})
}

func TestCosineSimilarity(t *testing.T) {
	t.Run("Identical", func(t *testing.T) {
		r := rng.New(9)
		v, err := RandomUniform(r, 512, -1, 1)
		require.NoError(t, err)

		sim, err := CosineSimilarity(v, v)
		require.NoError(t, err)
		assert.InDelta(t, 1.0, sim, 1e-5)
	})

	t.Run("Orthogonal", func(t *testing.T) {
		sim, err := CosineSimilarity(Vector{1, 0}, Vector{0, 1})
		require.NoError(t, err)
		assert.InDelta(t, 0, sim, 1e-6)
	})

	t.Run("Opposite", func(t *testing.T) {
		sim, err := CosineSimilarity(Vector{1, 2, 3}, Vector{-1, -2, -3})
		require.NoError(t, err)
		assert.InDelta(t, -1.0, sim, 1e-5)
	})

	t.Run("ZeroNormIsZero", func(t *testing.T) {
		sim, err := CosineSimilarity(Vector{0, 0, 0}, Vector{1, 2, 3})
		require.NoError(t, err)
		assert.Equal(t, float32(0), sim)
	})

	t.Run("SizeMismatch", func(t *testing.T) {
		_, err := CosineSimilarity(Vector{1, 2}, Vector{1, 2, 3})
		var mismatch *vsago.ErrVectorSizeMismatch
		assert.ErrorAs(t, err, &mismatch)
	})
}

func TestBinarize(t *testing.T) {
	t.Run("Thresholding", func(t *testing.T) {
		v, err := Binarize(Vector{0.5, -0.2, 0.9, 0}, 0)
		require.NoError(t, err)

		assert.Equal(t, 4, v.Dim())
		assert.Equal(t, []int{0, 2}, v.Active())
	})

	t.Run("NothingAboveThreshold", func(t *testing.T) {
		_, err := Binarize(Vector{0.1, 0.2}, 1)
		assert.ErrorIs(t, err, vsago.ErrEmptyIndices)
	})

	t.Run("EmptyVector", func(t *testing.T) {
		_, err := Binarize(Vector{}, 0)
		assert.ErrorIs(t, err, vsago.ErrZeroDimension)
	})
}
