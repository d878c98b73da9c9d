// SPDX-License-Identifier: MIT

package noise

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/katalvlaran/gradnoise/gradient"
	"github.com/katalvlaran/gradnoise/point"
	"github.com/katalvlaran/gradnoise/rng"
)

// fbmBuild regenerates all octaves of an Fbm from a random source.
type fbmBuild[P point.Point[P]] func(src rng.Source, cfg config) (*OctaveNoise[P], error)

// Fbm is fractal Brownian motion: a geometric fractal of Perlin layers, each
// with its own freshly shuffled gradient table.
//
// Defaults: frequency 1, scaling 2, persistence 2, 8 octaves, quintic
// (Smootherstep) kernel, 256 gradients per octave table.
//
// An Fbm is immutable. Rebuild returns a new value; it regenerates every
// octave from scratch and is as expensive as the original construction.
type Fbm[P point.Point[P]] struct {
	cfg     config
	octaves *OctaveNoise[P]
	build   fbmBuild[P]
}

func newFbm[P point.Point[P]](src rng.Source, cfg config, build fbmBuild[P]) (*Fbm[P], error) {
	if src == nil {
		return nil, noiseErrorf("NewFbm", rng.ErrNilSource)
	}
	octaves, err := build(src, cfg)
	if err != nil {
		return nil, noiseErrorf("NewFbm", err)
	}

	return &Fbm[P]{cfg: cfg, octaves: octaves, build: build}, nil
}

// NewFbm1D builds 1D fractal noise. src is consumed during construction
// only. Recognized options: WithFrequency, WithScaling, WithPersistence,
// WithOctaves, WithInterpolator, WithTableSize.
func NewFbm1D(src rng.Source, opts ...Option) (*Fbm[point.P1], error) {
	return newFbm(src, newConfig(opts...), func(src rng.Source, cfg config) (*OctaveNoise[point.P1], error) {
		b, err := gradient.NewRandomBuilder1D(src)
		if err != nil {
			return nil, err
		}
		factory := gradient.RandomPermutationFactory[point.P1, float64](src, b, cfg.tableSize, 1)

		return PerlinOctaves1D(point.P1(cfg.frequency), cfg.octaves, point.P1(cfg.scaling), cfg.persistence, factory, WithInterpolator(cfg.interp))
	})
}

// NewFbm2D builds 2D fractal noise. See NewFbm1D.
func NewFbm2D(src rng.Source, opts ...Option) (*Fbm[point.P2], error) {
	return newFbm(src, newConfig(opts...), func(src rng.Source, cfg config) (*OctaveNoise[point.P2], error) {
		b, err := gradient.NewRandomBuilder2D(src)
		if err != nil {
			return nil, err
		}
		factory := gradient.RandomPermutationFactory[point.P2, mgl64.Vec2](src, b, cfg.tableSize, 1)

		return PerlinOctaves2D(point.Splat[point.P2](cfg.frequency), cfg.octaves, point.Splat[point.P2](cfg.scaling),
			cfg.persistence, factory, WithInterpolator(cfg.interp))
	})
}

// NewFbm3D builds 3D fractal noise. See NewFbm1D.
func NewFbm3D(src rng.Source, opts ...Option) (*Fbm[point.P3], error) {
	return newFbm(src, newConfig(opts...), func(src rng.Source, cfg config) (*OctaveNoise[point.P3], error) {
		b, err := gradient.NewRandomBuilder3D(src)
		if err != nil {
			return nil, err
		}
		factory := gradient.RandomPermutationFactory[point.P3, mgl64.Vec3](src, b, cfg.tableSize, 1)

		return PerlinOctaves3D(point.Splat[point.P3](cfg.frequency), cfg.octaves, point.Splat[point.P3](cfg.scaling),
			cfg.persistence, factory, WithInterpolator(cfg.interp))
	})
}

// ValueAt returns the fractal sum at p.
func (f *Fbm[P]) ValueAt(p P) float64 { return f.octaves.ValueAt(p) }

// Frequency returns the first octave's frequency (zero with no octaves).
func (f *Fbm[P]) Frequency() P { return f.octaves.Frequency() }

// Octaves returns the underlying octave sum.
func (f *Fbm[P]) Octaves() *OctaveNoise[P] { return f.octaves }

// BaseFrequency returns the configured initial frequency.
func (f *Fbm[P]) BaseFrequency() float64 { return f.cfg.frequency }

// Scaling returns the per-octave frequency multiplier.
func (f *Fbm[P]) Scaling() float64 { return f.cfg.scaling }

// Persistence returns ρ.
func (f *Fbm[P]) Persistence() float64 { return f.cfg.persistence }

// NumOctaves returns the number of layers.
func (f *Fbm[P]) NumOctaves() int { return f.octaves.Len() }

// Rebuild returns a new Fbm with opts applied on top of f's current
// settings, regenerating every octave from src. f is left untouched.
func (f *Fbm[P]) Rebuild(src rng.Source, opts ...Option) (*Fbm[P], error) {
	all := append(f.cfg.options(), opts...)

	return newFbm(src, newConfig(all...), f.build)
}

var (
	_ Noise1D = (*Fbm[point.P1])(nil)
	_ Noise2D = (*Fbm[point.P2])(nil)
	_ Noise3D = (*Fbm[point.P3])(nil)
)
