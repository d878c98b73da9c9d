// SPDX-License-Identifier: MIT

package gradient

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gradnoise/point"
	"github.com/katalvlaran/gradnoise/rng"
)

// Factory builds the gradient provider for one octave of fractal noise.
// F is the frequency tuple type, V the provider type it returns.
type Factory[F, V any] func(octave int, frequency F) (V, error)

// GridFactory1D returns a factory that builds a dense grid of ceil(f) cells
// (ceil(f)+1 vertices) for each octave.
func GridFactory1D[G any](b Builder[G]) Factory[point.P1, *Grid1D[G]] {
	return func(octave int, f point.P1) (*Grid1D[G], error) {
		cells, err := cellsFor(float64(f))
		if err != nil {
			return nil, wrapf(fmt.Sprintf("GridFactory1D(octave=%d)", octave), err)
		}

		return NewGrid1D(b, cells)
	}
}

// GridFactory2D returns a factory that builds a dense grid of
// ceil(fx)×ceil(fy) cells for each octave.
func GridFactory2D[G any](b Builder[G]) Factory[point.P2, *Grid2D[G]] {
	return func(octave int, f point.P2) (*Grid2D[G], error) {
		w, err := cellsFor(f[0])
		if err != nil {
			return nil, wrapf(fmt.Sprintf("GridFactory2D(octave=%d)", octave), err)
		}
		h, err := cellsFor(f[1])
		if err != nil {
			return nil, wrapf(fmt.Sprintf("GridFactory2D(octave=%d)", octave), err)
		}

		return NewGrid2D(b, w, h)
	}
}

// GridFactory3D returns a factory that builds a dense grid of
// ceil(fx)×ceil(fy)×ceil(fz) cells for each octave.
func GridFactory3D[G any](b Builder[G]) Factory[point.P3, *Grid3D[G]] {
	return func(octave int, f point.P3) (*Grid3D[G], error) {
		var cells [3]int
		var i int
		var err error
		for i = 0; i < 3; i++ {
			if cells[i], err = cellsFor(f[i]); err != nil {
				return nil, wrapf(fmt.Sprintf("GridFactory3D(octave=%d)", octave), err)
			}
		}

		return NewGrid3D(b, cells[0], cells[1], cells[2])
	}
}

// RandomPermutationFactory returns a factory that builds a fresh permuted
// table for each octave holding gridSize·int(gridScaling^octave) gradients.
// Each octave's permutation comes from rng.Derive(src, octave), so the
// factory consumes src once per octave.
func RandomPermutationFactory[F, G any](src rng.Source, b Builder[G], gridSize int, gridScaling float64) Factory[F, *PermutedTable[G]] {
	return func(octave int, _ F) (*PermutedTable[G], error) {
		size := gridSize * int(math.Pow(gridScaling, float64(octave)))

		return NewPermutedTable(rng.Derive(src, uint64(octave)), b, size)
	}
}

// SharedTableFactory returns a factory that hands the same table to every
// octave. Tables are immutable, so sharing is safe.
func SharedTableFactory[F, G any](t *PermutedTable[G]) Factory[F, *PermutedTable[G]] {
	return func(int, F) (*PermutedTable[G], error) {
		if t == nil {
			return nil, wrapf("SharedTableFactory", ErrEmptyTable)
		}

		return t, nil
	}
}

// cellsFor returns ceil(f) for a positive finite frequency.
func cellsFor(f float64) (int, error) {
	if !(f > 0) || math.IsInf(f, 0) {
		return 0, ErrInvalidFrequency
	}

	return int(math.Ceil(f)), nil
}
