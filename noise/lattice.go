// SPDX-License-Identifier: MIT

package noise

import (
	"github.com/katalvlaran/gradnoise/interp"
	"github.com/katalvlaran/gradnoise/point"
)

// maxDim is the highest arity the lattice helper supports.
const maxDim = 4

// influenceFn returns the contribution of the gradient at lattice vertex at,
// given the offset d from that vertex to the sample point.
type influenceFn func(at *[maxDim]int, d *[maxDim]float64) (float64, error)

// latticeValue evaluates gradient noise at pos (already in lattice space).
//
// Steps:
//  1. Split each axis into cell index and fractional offset.
//  2. Compute the influence of all 2^dim cell corners (x-fastest order).
//  3. Reduce pairwise along x, then y, then z (then w), lerping with the
//     kernel applied to that axis' offset.
//
// Complexity: O(dim·2^dim).
func latticeValue(dim int, pos *[maxDim]float64, k interp.Interpolator, influence influenceFn) (float64, error) {
	var (
		cell [maxDim]int
		frac [maxDim]float64
		w    [maxDim]float64
		vals [1 << maxDim]float64
		at   [maxDim]int
		d    [maxDim]float64
		a, c int
	)
	for a = 0; a < dim; a++ {
		cell[a], frac[a] = point.Split(pos[a])
		w[a] = k.Value(frac[a])
	}

	n := point.Corners(dim)
	for c = 0; c < n; c++ {
		for a = 0; a < dim; a++ {
			o := point.Corner(c, a)
			at[a] = cell[a] + o
			d[a] = frac[a] - float64(o)
		}
		v, err := influence(&at, &d)
		if err != nil {
			return 0, err
		}
		vals[c] = v
	}

	var i int
	for a = 0; a < dim; a++ {
		n >>= 1
		for i = 0; i < n; i++ {
			vals[i] = interp.Lerp(vals[2*i], vals[2*i+1], w[a])
		}
	}

	return vals[0], nil
}
