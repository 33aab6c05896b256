// Package binary implements sparse binary hypervector algebra.
//
// A vector is a fixed dimension plus the sorted set of active (value-1)
// indices; all other positions are implicitly 0. At typical dimensions
// (10k-1M) with a small active fraction, set operations over the sorted
// index slices are far cheaper than dense boolean arrays.
//
// Operator laws:
//
//   - Bind is elementwise XOR and its own exact inverse:
//     Bind(Bind(a, b), b) == a and Bind(a, a) is the empty vector.
//   - Bundle is a per-position majority vote; the result is similar to
//     every input. Ties (possible only for an even input count) are
//     resolved by an unbiased coin from the injected RNG.
//   - Permute is a cyclic shift of the index space and a bijection:
//     Permute(Permute(v, s), -s) == v.
//
// All operators validate eagerly and return a new vector; inputs are never
// mutated.
package binary
