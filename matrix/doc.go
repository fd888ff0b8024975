// Package matrix offers dense storage and labelled distance matrices.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 buffer with error-returning accessors.
//   - DistanceMatrix, a square, symmetric, zero-diagonal matrix of
//     nonnegative distances indexed by unique taxon labels.
//   - Validators enforcing the distance invariants in a fixed priority:
//     nil, shape, labels, NaN/Inf, diagonal, symmetry, negativity.
//   - Whitespace (PHYLIP-like) and CSV serialization.
//
// Distance matrices are consumed by the tree package and produced by the
// distance package.
package matrix
