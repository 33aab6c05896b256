package binary

import (
	"slices"

	"github.com/hupe1980/vsago"
	"github.com/hupe1980/vsago/rng"
)

// Bind associates two vectors via elementwise XOR: a position is active in
// the result iff it is active in exactly one operand. The operation is its
// own exact inverse: Bind(Bind(a, b), b) == a, and Bind(a, a) is empty.
func Bind(a, b Vector) (Vector, error) {
	if a.dim != b.dim {
		return Vector{}, &vsago.ErrVectorSizeMismatch{Expected: a.dim, Actual: b.dim}
	}

	return Vector{dim: a.dim, active: symmetricDifference(a.active, b.active)}, nil
}

// symmetricDifference merges two sorted index slices, keeping indices present
// in exactly one of them.
func symmetricDifference(x, y []int) []int {
	out := make([]int, 0, len(x)+len(y))
	i, j := 0, 0
	for i < len(x) && j < len(y) {
		switch {
		case x[i] < y[j]:
			out = append(out, x[i])
			i++
		case x[i] > y[j]:
			out = append(out, y[j])
			j++
		default:
			i++
			j++
		}
	}
	out = append(out, x[i:]...)
	out = append(out, y[j:]...)

	return out
}

// Bundle returns the consensus (majority-vote) superposition of the given
// vectors: a position is active in the result iff more inputs have it active
// than inactive. Tied positions — possible only for an even input count —
// are resolved by an unbiased coin from r, visited in ascending index order
// so that a fixed seed reproduces the same draws. r may be nil when the
// input count is odd.
//
// Errors: vsago.ErrEmptyVectorList if no vectors are given, and
// *vsago.ErrVectorSizeMismatch if the inputs disagree on dimension.
func Bundle(r *rng.RNG, vectors ...Vector) (Vector, error) {
	if len(vectors) == 0 {
		return Vector{}, vsago.ErrEmptyVectorList
	}

	dim := vectors[0].dim
	for _, v := range vectors[1:] {
		if v.dim != dim {
			return Vector{}, &vsago.ErrVectorSizeMismatch{Expected: dim, Actual: v.dim}
		}
	}

	// A position inactive in every input has net vote -len(vectors); only
	// positions active in at least one input can win or tie.
	counts := make(map[int]int)
	for _, v := range vectors {
		for _, i := range v.active {
			counts[i]++
		}
	}

	candidates := make([]int, 0, len(counts))
	for i := range counts {
		candidates = append(candidates, i)
	}
	slices.Sort(candidates)

	n := len(vectors)
	active := make([]int, 0, len(candidates))
	for _, i := range candidates {
		switch vote := 2*counts[i] - n; {
		case vote > 0:
			active = append(active, i)
		case vote == 0 && r.Coin():
			active = append(active, i)
		}
	}

	return Vector{dim: dim, active: active}, nil
}

// Permute cyclically shifts every active index by shift positions, modulo
// the dimension; negative shifts go the opposite direction. Permute is a
// bijection on the index space: Permute(Permute(v, s), -s) == v.
func Permute(v Vector, shift int) Vector {
	if v.dim == 0 || len(v.active) == 0 || shift%v.dim == 0 {
		return v
	}

	s := shift % v.dim
	if s < 0 {
		s += v.dim
	}

	// Indices below dim-s shift up by s and keep their order; the rest wrap
	// to the front. A single rotation of the sorted slice stays sorted.
	cut, _ := slices.BinarySearch(v.active, v.dim-s)
	out := make([]int, 0, len(v.active))
	for _, i := range v.active[cut:] {
		out = append(out, i+s-v.dim)
	}
	for _, i := range v.active[:cut] {
		out = append(out, i+s)
	}

	return Vector{dim: v.dim, active: out}
}

// HammingDistance counts the positions where a and b differ, computed as the
// population count of Bind(a, b). It is symmetric in its arguments.
func HammingDistance(a, b Vector) (int, error) {
	bound, err := Bind(a, b)
	if err != nil {
		return 0, err
	}

	return bound.ActiveCount(), nil
}

// Similarity returns the normalized Hamming similarity
// 1 - HammingDistance(a, b)/dimension. It is 1.0 iff a == b; the attainable
// minimum depends on the active counts of the operands.
func Similarity(a, b Vector) (float64, error) {
	d, err := HammingDistance(a, b)
	if err != nil {
		return 0, err
	}

	return 1 - float64(d)/float64(a.dim), nil
}
