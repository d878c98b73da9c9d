// SPDX-License-Identifier: MIT

// Package grid provides dense 1D/2D/3D storage with row-major linear
// indexing, used as the backing store for dense gradient grids and for
// sampled noise fields.
//
// What:
//
//   - Grid1D[T], Grid2D[T], Grid3D[T] hold width×height×depth values in a
//     single flat slice (offset = x + y·w + z·w·h).
//   - At/Set are bounds-checked and return ErrOutOfRange instead of
//     reading adjacent memory.
//   - FromData* adopt an existing slice after checking its length.
//
// Errors:
//
//   - ErrInvalidDimensions: a requested size is ≤ 0.
//   - ErrOutOfRange: a coordinate lies outside [0, size) on some axis.
//   - ErrDataLength: a supplied slice does not match the product of sizes.
//
// Complexity:
//
//   - New*: O(n) zero-init; At/Set/Index: O(1).
package grid
