// SPDX-License-Identifier: MIT

// Package gradient builds and serves the lattice gradients consumed by
// gradient noise.
//
// What:
//
//   - PermutationTable: a shuffled permutation of 0..n-1, drawn once from an
//     injected rng.Source and immutable afterward.
//   - Table[G]: a flat table of n gradients, indexed modulo n.
//   - PermutedTable[G]: a Table paired with a power-of-two PermutationTable.
//     Integer lattice coordinates are hashed by XOR-folding permutation
//     lookups per axis:
//
//     hash1(x)       = perm[x & mask]
//     hash2(x,y)     = perm[hash1(x) ^ (y & mask)]
//     hash3(x,y,z)   = perm[hash2(x,y) ^ (z & mask)]
//     hash4(x,y,z,w) = perm[hash3(x,y,z) ^ (w & mask)]
//
//   - Grid1D/2D/3D[G]: dense gradient grids with one gradient per lattice
//     vertex (N+1 vertices bound N cells). Lookups are bounds-checked and
//     report grid.ErrOutOfRange; the grids also report their Extent so noise
//     constructors can reject frequencies they cannot serve.
//   - Builders: strategies producing one gradient per call (uniform angle,
//     cube corner, unit sphere, scalar).
//   - Factories: per-octave provider construction for fractal noise.
//
// Providers:
//
//	Provider1D  Gradient1D(x int) (float64, error)
//	Provider2D  Gradient2D(x, y int) (mgl64.Vec2, error)
//	Provider3D  Gradient3D(x, y, z int) (mgl64.Vec3, error)
//
// Table[float64], PermutedTable[mgl64.Vec2], Grid3D[mgl64.Vec3] and friends
// satisfy these interfaces through their generic methods.
//
// Concurrency:
//
//   - Construction consumes the rng.Source and needs exclusive access to it.
//   - Every finished table or grid is read-only and safe for concurrent use.
//
// Complexity:
//
//   - Table construction: O(n). Hash: O(dim). Lookup: O(1).
package gradient
