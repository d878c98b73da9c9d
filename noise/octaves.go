// SPDX-License-Identifier: MIT

package noise

import (
	"github.com/katalvlaran/gradnoise/gradient"
	"github.com/katalvlaran/gradnoise/point"
)

// PerlinOctaves1D builds a geometric fractal of Perlin1D layers. Each
// octave's gradients come from factory (a fresh permuted table, a dense
// grid sized to the octave, or one shared table).
//
// Example:
//
//	b, _ := gradient.NewRandomBuilder1D(src)
//	sum, err := noise.PerlinOctaves1D(4, 6, 2, 2, gradient.GridFactory1D[float64](b))
func PerlinOctaves1D[V gradient.Provider1D](initial point.P1, n int, scaling point.P1, persistence float64, factory gradient.Factory[point.P1, V], opts ...Option) (*OctaveNoise[point.P1], error) {
	if factory == nil {
		return nil, noiseErrorf("PerlinOctaves1D", ErrNilFactory)
	}

	return BuildGeometricFractal(initial, n, scaling, persistence, func(octave int, f point.P1, _ float64) (Noise1D, error) {
		grads, err := factory(octave, f)
		if err != nil {
			return nil, err
		}
		layer, err := NewPerlin1D(f, grads, opts...)
		if err != nil {
			return nil, err
		}

		return layer, nil
	})
}

// PerlinOctaves2D builds a geometric fractal of Perlin2D layers.
func PerlinOctaves2D[V gradient.Provider2D](initial point.P2, n int, scaling point.P2, persistence float64, factory gradient.Factory[point.P2, V], opts ...Option) (*OctaveNoise[point.P2], error) {
	if factory == nil {
		return nil, noiseErrorf("PerlinOctaves2D", ErrNilFactory)
	}

	return BuildGeometricFractal(initial, n, scaling, persistence, func(octave int, f point.P2, _ float64) (Noise2D, error) {
		grads, err := factory(octave, f)
		if err != nil {
			return nil, err
		}
		layer, err := NewPerlin2D(f, grads, opts...)
		if err != nil {
			return nil, err
		}

		return layer, nil
	})
}

// PerlinOctaves3D builds a geometric fractal of Perlin3D layers.
func PerlinOctaves3D[V gradient.Provider3D](initial point.P3, n int, scaling point.P3, persistence float64, factory gradient.Factory[point.P3, V], opts ...Option) (*OctaveNoise[point.P3], error) {
	if factory == nil {
		return nil, noiseErrorf("PerlinOctaves3D", ErrNilFactory)
	}

	return BuildGeometricFractal(initial, n, scaling, persistence, func(octave int, f point.P3, _ float64) (Noise3D, error) {
		grads, err := factory(octave, f)
		if err != nil {
			return nil, err
		}
		layer, err := NewPerlin3D(f, grads, opts...)
		if err != nil {
			return nil, err
		}

		return layer, nil
	})
}
