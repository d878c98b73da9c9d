// SPDX-License-Identifier: MIT

// Package noise implements coherent gradient noise, fractal (octave) sums
// of it, and a few external noise sources behind one generic interface.
//
// What:
//
//   - Noise[P]: any field with ValueAt(P) float64 and Frequency() P, for
//     P in point.P1..P4. Every adapter in package adapter also satisfies it,
//     so compositions nest to any depth.
//   - Perlin1D/2D/3D: gradient noise over a gradient.Provider. The point is
//     scaled by the frequency, split into lattice cell and offset, the 2^dim
//     corner influences (gradient · offset) are computed and reduced along
//     x, then y, then z with the configured kernel. Results are multiplied
//     by 2 (1D) or √2 (2D, 3D).
//   - Octave / OctaveNoise / BuildGeometricFractal: amplitude-weighted sums
//     whose weights are normalized to total 1 at construction.
//   - Fbm1D/2D/3D: ready-made fractal Brownian motion with sane defaults.
//   - Simplex2D/3D/4D (OpenSimplex) and Classic1D/2D/3D (reference octave
//     Perlin), seeded from an injected rng.Source.
//   - Sampler: bounded concurrent evaluation of a field into grid storage.
//
// Why:
//
//   - Terrain, texture and animation pipelines need band-limited, repeatable
//     randomness that composes (warp, mix, clamp) without copying data.
//
// Errors:
//
//   - Constructors return sentinels (ErrInvalidFrequency,
//     ErrFrequencyExceedsExtent, ErrNegativeOctaves, ...); they never panic.
//   - ValueAt is total. Providers backed by dense grids can fail lookups
//     outside their lattice: Eval reports the wrapped grid.ErrOutOfRange,
//     ValueAt returns NaN.
//   - An empty OctaveNoise sums to 0; its Frequency is the zero point and
//     LeadFrequency returns ErrNoOctaves.
//
// Concurrency:
//
//   - Every type is immutable after construction and safe for concurrent
//     ValueAt calls. Randomness is consumed only by constructors.
//
// Complexity:
//
//   - Perlin ValueAt: O(dim·2^dim). OctaveNoise: O(octaves) layers.
package noise
