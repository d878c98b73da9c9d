// SPDX-License-Identifier: MIT

package gradient

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/katalvlaran/gradnoise/point"
)

// Provider1D maps an integer lattice coordinate to a scalar gradient.
type Provider1D interface {
	Gradient1D(x int) (float64, error)
}

// Provider2D maps an integer lattice coordinate to a 2D gradient.
type Provider2D interface {
	Gradient2D(x, y int) (mgl64.Vec2, error)
}

// Provider3D maps an integer lattice coordinate to a 3D gradient.
type Provider3D interface {
	Gradient3D(x, y, z int) (mgl64.Vec3, error)
}

// Bounded is implemented by providers that only cover a finite lattice.
// Extent reports the number of cells per axis that can be addressed.
type Bounded[P any] interface {
	Extent() P
}

// Compile-time conformance of the concrete providers.
var (
	_ Provider1D = (*Table[float64])(nil)
	_ Provider1D = (*PermutedTable[float64])(nil)
	_ Provider2D = (*PermutedTable[mgl64.Vec2])(nil)
	_ Provider3D = (*PermutedTable[mgl64.Vec3])(nil)
	_ Provider1D = (*Grid1D[float64])(nil)
	_ Provider2D = (*Grid2D[mgl64.Vec2])(nil)
	_ Provider3D = (*Grid3D[mgl64.Vec3])(nil)

	_ Bounded[point.P1] = (*Grid1D[float64])(nil)
	_ Bounded[point.P2] = (*Grid2D[mgl64.Vec2])(nil)
	_ Bounded[point.P3] = (*Grid3D[mgl64.Vec3])(nil)
)
