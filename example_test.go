package vsago_test

import (
	"fmt"

	"github.com/hupe1980/vsago/binary"
	"github.com/hupe1980/vsago/dense"
	"github.com/hupe1980/vsago/rng"
)

func Example_bind() {
	a, _ := binary.FromIndices(10, []int{1, 3, 5})
	b, _ := binary.FromIndices(10, []int{3, 4, 5})

	bound, _ := binary.Bind(a, b)
	fmt.Println(bound.Active())

	// XOR is its own inverse: binding again with b recovers a.
	recovered, _ := binary.Bind(bound, b)
	fmt.Println(recovered.Active())
	// Output:
	// [1 4]
	// [1 3 5]
}

func Example_similarity() {
	a, _ := binary.FromIndices(10, []int{1, 3, 5})
	b, _ := binary.FromIndices(10, []int{3, 4, 5})

	d, _ := binary.HammingDistance(a, b)
	sim, _ := binary.Similarity(a, b)
	fmt.Println(d)
	fmt.Println(sim)
	// Output:
	// 2
	// 0.8
}

func Example_permute() {
	v, _ := binary.FromIndices(10, []int{1, 3, 5, 9})

	fmt.Println(binary.Permute(v, 2).Active())
	fmt.Println(binary.Permute(binary.Permute(v, 2), -2).Active())
	// Output:
	// [1 3 5 7]
	// [1 3 5 9]
}

func Example_superposition() {
	sum, _ := dense.Superposition(dense.Vector{1, 0, 0}, dense.Vector{0, 1, 0})
	fmt.Println(sum)

	conv, _ := dense.CircularConvolution(dense.Vector{1, 0, 0}, dense.Vector{0, 1, 0})
	fmt.Println(conv)
	// Output:
	// [1 1 0]
	// [0 1 0]
}

func Example_random() {
	// The same seed always reproduces the same vector.
	a, _ := binary.Random(rng.New(42), 10000, 100)
	b, _ := binary.Random(rng.New(42), 10000, 100)
	fmt.Println(a.Equal(b))
	fmt.Println(a.Dim(), a.ActiveCount())
	// Output:
	// true
	// 10000 100
}
