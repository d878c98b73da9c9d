// SPDX-License-Identifier: MIT

package noise

import (
	"github.com/katalvlaran/gradnoise/point"
)

// Noise is a continuous scalar field over coordinates of type P.
//
// ValueAt must be free of side effects so a composed field can be evaluated
// from many goroutines at once. Frequency reports the lattice cells per unit
// coordinate along each axis (the zero point when undefined).
type Noise[P point.Point[P]] interface {
	ValueAt(p P) float64
	Frequency() P
}

// Per-arity aliases.
type (
	Noise1D = Noise[point.P1]
	Noise2D = Noise[point.P2]
	Noise3D = Noise[point.P3]
	Noise4D = Noise[point.P4]
)

// validFrequency reports whether every component of f is finite and > 0.
func validFrequency[P point.Point[P]](f P) bool {
	return point.All(f, positiveFinite)
}
