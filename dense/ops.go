package dense

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/vsago"
	"github.com/hupe1980/vsago/binary"
	"github.com/hupe1980/vsago/internal/math32"
)

// parallelThreshold is the dimension above which the O(n²) double sums are
// split across goroutines. Below it the spawn overhead dominates.
const parallelThreshold = 512

// Superposition returns the elementwise sum (not average) of the given
// vectors.
//
// Errors: vsago.ErrEmptyVectorList if no vectors are given, and
// *vsago.ErrVectorSizeMismatch if the inputs disagree on dimension.
func Superposition(vectors ...Vector) (Vector, error) {
	if len(vectors) == 0 {
		return nil, vsago.ErrEmptyVectorList
	}

	n := vectors[0].Dim()
	out := make(Vector, n)
	for _, v := range vectors {
		if v.Dim() != n {
			return nil, &vsago.ErrVectorSizeMismatch{Expected: n, Actual: v.Dim()}
		}
		for i := range out {
			out[i] += v[i]
		}
	}

	return out, nil
}

// CircularConvolution binds two vectors:
//
//	result[k] = Σ a[i]·b[j] over all (i, j) with (i+j) mod n == k.
//
// Each output position is an independent sum over a fixed index order, so
// large dimensions are split across goroutines without changing the result.
func CircularConvolution(a, b Vector) (Vector, error) {
	n := a.Dim()
	if n != b.Dim() {
		return nil, &vsago.ErrVectorSizeMismatch{Expected: n, Actual: b.Dim()}
	}

	out := make(Vector, n)
	forEachPosition(n, func(lo, hi int) {
		for k := lo; k < hi; k++ {
			var sum float32
			for i := range n {
				sum += a[i] * b[(k-i+n)%n]
			}
			out[k] = sum
		}
	})

	return out, nil
}

// CircularCorrelation approximately unbinds a convolution:
//
//	result[k] = Σ a[i]·b[j] over all (i, j) with (i-j) mod n == k.
//
// For vectors with independently drawn zero-mean components,
// CircularCorrelation(CircularConvolution(a, b), b) has high cosine
// similarity to a; the recovery is statistical, never exact.
func CircularCorrelation(a, b Vector) (Vector, error) {
	n := a.Dim()
	if n != b.Dim() {
		return nil, &vsago.ErrVectorSizeMismatch{Expected: n, Actual: b.Dim()}
	}

	out := make(Vector, n)
	forEachPosition(n, func(lo, hi int) {
		for k := lo; k < hi; k++ {
			var sum float32
			for i := range n {
				sum += a[i] * b[(i-k+n)%n]
			}
			out[k] = sum
		}
	})

	return out, nil
}

// CyclicShift moves every component by shift positions, modulo the
// dimension: result[(i+shift) mod n] = v[i]. Negative shifts go the
// opposite direction. CyclicShift(CyclicShift(v, s), -s) == v.
func CyclicShift(v Vector, shift int) Vector {
	n := v.Dim()
	if n == 0 {
		return v
	}

	s := shift % n
	if s < 0 {
		s += n
	}

	out := make(Vector, n)
	for i := range v {
		out[(i+s)%n] = v[i]
	}

	return out
}

// CosineSimilarity returns dot(a, b) / (‖a‖·‖b‖) in [-1, 1].
// A zero-norm operand has no direction; the similarity is defined as 0
// rather than dividing by zero.
func CosineSimilarity(a, b Vector) (float32, error) {
	if a.Dim() != b.Dim() {
		return 0, &vsago.ErrVectorSizeMismatch{Expected: a.Dim(), Actual: b.Dim()}
	}

	magA := math32.Norm(a)
	magB := math32.Norm(b)
	if magA == 0 || magB == 0 {
		return 0, nil
	}

	return math32.Dot(a, b) / (magA * magB), nil
}

// Binarize converts v to a sparse binary hypervector: positions whose
// component exceeds threshold become active. The conversion is lossy.
//
// Errors: vsago.ErrZeroDimension if v is empty, and vsago.ErrEmptyIndices if
// no component exceeds threshold.
func Binarize(v Vector, threshold float32) (binary.Vector, error) {
	if v.Dim() == 0 {
		return binary.Vector{}, vsago.ErrZeroDimension
	}

	indices := make([]int, 0, v.Dim())
	for i, c := range v {
		if c > threshold {
			indices = append(indices, i)
		}
	}

	return binary.FromIndices(v.Dim(), indices)
}

// forEachPosition runs fn over [0, n) in contiguous chunks, in parallel when
// n is large enough to pay for the goroutines.
func forEachPosition(n int, fn func(lo, hi int)) {
	if n < parallelThreshold {
		fn(0, n)
		return
	}

	workers := min(runtime.GOMAXPROCS(0), n)
	chunk := (n + workers - 1) / workers

	var g errgroup.Group
	for lo := 0; lo < n; lo += chunk {
		hi := min(lo+chunk, n)
		g.Go(func() error {
			fn(lo, hi)
			return nil
		})
	}
	_ = g.Wait() // workers never fail; Wait only joins
}
