// Package dense implements dense real-valued hypervector algebra.
//
// A vector is a fixed-length []float32; the position of a component is its
// only addressing scheme. Binding is circular convolution, approximately
// inverted by circular correlation: for high-dimensional vectors with
// independently drawn components,
//
//	CircularCorrelation(CircularConvolution(a, b), b) ≈ a
//
// in the sense of high cosine similarity. This is a statistical property of
// random hypervectors, not an algebraic identity. Superposition (elementwise
// sum) plays the bundling role and CyclicShift the permutation role.
//
// All operators validate eagerly and return a new vector; inputs are never
// mutated.
package dense
