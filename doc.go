// SPDX-License-Identifier: MIT

// Package gradnoise is a toolkit for coherent procedural noise: gradient
// (Perlin) noise, fractal octave sums of it, and a composable algebra of
// adapters that turns noise sources into new noise sources.
//
// 🚀 What is gradnoise?
//
//	A pure-Go, allocation-light library that brings together:
//		• Lattice primitives: seeded permutation tables and gradient sets
//		• Gradient noise: 1D/2D/3D Perlin over any gradient provider
//		• Fractals: geometric octave sums and ready-made Fbm
//		• External sources: OpenSimplex (2D-4D) and classic octave Perlin
//		• Adapters: add, multiply, select, blend, scale, shift, clamp, wrap, filter,
//		  remap, extend and slice across dimensions
//		• Sampling: concurrent evaluation into dense grids
//
// ✨ Why choose gradnoise?
//
//   - Deterministic: every random choice flows from an injected rng.Source
//   - Composable: every adapter is itself a noise source
//   - Safe: fields are immutable after construction; evaluate from any goroutine
//   - Explicit: invalid parameters come back as sentinel errors
//
// Packages:
//
//	point/    coordinate types P1..P4 and per-axis helpers
//	interp/   interpolation kernels (linear, smoothstep, smootherstep)
//	rng/      random source contract, seeding and shuffles
//	grid/     dense 1D/2D/3D storage
//	gradient/ permutation tables, gradient builders, providers, factories
//	noise/    Perlin, octaves, Fbm, Simplex, Classic, Sampler
//	adapter/  the composition algebra
//
// Quick example:
//
//	f, _ := noise.NewFbm2D(rng.FromSeed(7), noise.WithOctaves(6))
//	h, _ := adapter.NewWithRange[point.P2](f, 0, 255)
//	v := h.ValueAt(point.P2{0.25, 0.75})
//
// See examples/ for a complete terrain pipeline.
//
//	go get github.com/katalvlaran/gradnoise
package gradnoise
