// Package itemmemory implements a cleanup (associative) memory for sparse
// binary hypervectors.
//
// A Memory stores named vectors of one fixed dimension. Query scans the
// stored vectors for the top-k most similar to a probe — the standard way to
// recover a clean stored vector from the noisy result of unbinding or
// bundling. Items may carry labels; a query can restrict its candidates to
// items holding all requested labels, tracked with roaring bitmaps.
//
// Unlike the algebra packages, a Memory is stateful; it is safe for
// concurrent use.
package itemmemory
