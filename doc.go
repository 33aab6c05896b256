// Package vsago provides the algebraic core of a Vector Symbolic
// Architecture (hyperdimensional computing) toolkit.
//
// Discrete information is encoded as very-high-dimensional vectors
// ("hypervectors") and combined with a small set of operators — binding,
// bundling, permutation, similarity — that form approximately-invertible,
// approximately-distributive compositional representations.
//
// Two independent algebra packages expose the same conceptual operator set
// over different representations:
//
//   - binary: sparse binary hypervectors stored as sorted active-index sets.
//     Binding is XOR (exact involution), bundling is majority vote,
//     similarity is normalized Hamming similarity.
//
//   - dense: dense real-valued hypervectors stored as []float32.
//     Binding is circular convolution (approximately inverted by circular
//     correlation), bundling is elementwise superposition, similarity is
//     cosine similarity.
//
// # Quick Start
//
//	r := rng.New(42)
//	role, _ := binary.Random(r, 10000, 100)
//	filler, _ := binary.Random(r, 10000, 100)
//
//	bound, _ := binary.Bind(role, filler)        // dissimilar to both inputs
//	recovered, _ := binary.Bind(bound, role)     // == filler, exactly
//
// # Randomness
//
// Every operator that draws randomness takes an explicit *rng.RNG. There is
// no package-level generator: the same seed always reproduces the same
// vectors, bundling tie-breaks included.
//
// # Errors
//
// Both algebras share the closed error taxonomy defined in this package.
// All validation happens before any computation; a failed call produces no
// partial result. Use errors.Is for the sentinel kinds and errors.As for
// the kinds that carry dimensions.
//
// Supporting packages: itemmemory implements a cleanup (associative) memory
// over binary hypervectors, and encode provides sequence, record and n-gram
// encoders built from the core operators.
package vsago
