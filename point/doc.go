// SPDX-License-Identifier: MIT

// Package point defines the fixed-arity coordinate tuples consumed by every
// noise source in gradnoise, plus the small component-wise helpers the
// evaluators and adapters share.
//
// What:
//
//   - P1, P2, P3, P4 are value types (float64 and [N]float64) identifying an
//     evaluation point in continuous space. The same types describe
//     frequencies: the number of lattice cells spanning [0,1) per axis.
//   - Point[P] is the generic constraint over those types. It exposes the
//     arity and per-axis access so algorithms are written once, not once
//     per dimension.
//   - Apply / Apply3 / Max / Splat / Scale operate component-wise.
//   - Corner enumerates the 2^dim lattice-cell corners in x-fastest order.
//
// Why:
//
//   - Noise compositions must be uniformly evaluable whatever the arity.
//     Concrete named types keep values immutable and passed by value; the
//     constraint keeps adapters generic without reflection.
//
// Complexity:
//
//   - Every helper is O(dim) time and allocation-free.
//
// Notes:
//
//   - P2/P3/P4 share their underlying type with mgl64.Vec2/Vec3/Vec4 and
//     convert to them directly when vector algebra is needed.
package point
