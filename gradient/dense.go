// SPDX-License-Identifier: MIT

package gradient

import (
	"fmt"

	"github.com/katalvlaran/gradnoise/grid"
	"github.com/katalvlaran/gradnoise/point"
)

// Grid1D stores one gradient per lattice vertex for cells 0..N-1.
// Vertices 0..N are addressable (N+1 values).
type Grid1D[G any] struct {
	g *grid.Grid1D[G]
}

// NewGrid1D builds a dense grid covering cells lattice cells.
func NewGrid1D[G any](b Builder[G], cells int) (*Grid1D[G], error) {
	if b == nil {
		return nil, wrapf("NewGrid1D", ErrNilBuilder)
	}
	if cells <= 0 {
		return nil, wrapf(fmt.Sprintf("NewGrid1D(%d)", cells), grid.ErrInvalidDimensions)
	}
	g, err := grid.New1D[G](cells + 1)
	if err != nil {
		return nil, wrapf("NewGrid1D", err)
	}

	var x int
	for x = 0; x <= cells; x++ {
		_ = g.Set(x, b.MakeGradient())
	}

	return &Grid1D[G]{g: g}, nil
}

// Grid1DFromValues adopts values as vertices 0..len(values)-1, covering
// len(values)-1 cells. At least two vertices are required.
func Grid1DFromValues[G any](values []G) (*Grid1D[G], error) {
	if len(values) < 2 {
		return nil, wrapf("Grid1DFromValues", grid.ErrInvalidDimensions)
	}
	data := make([]G, len(values))
	copy(data, values)
	g, err := grid.FromData1D(data)
	if err != nil {
		return nil, wrapf("Grid1DFromValues", err)
	}

	return &Grid1D[G]{g: g}, nil
}

// Extent returns the number of cells covered.
func (d *Grid1D[G]) Extent() point.P1 {
	return point.P1(d.g.Width() - 1)
}

// Gradient1D returns the gradient at vertex x or a wrapped grid.ErrOutOfRange.
func (d *Grid1D[G]) Gradient1D(x int) (G, error) {
	v, err := d.g.At(x)
	if err != nil {
		return v, wrapf("gradient.Grid1D", err)
	}

	return v, nil
}

// Grid2D stores one gradient per lattice vertex of a w×h cell grid
// ((w+1)×(h+1) vertices, row-major).
type Grid2D[G any] struct {
	g *grid.Grid2D[G]
}

// NewGrid2D builds a dense grid covering width×height cells.
func NewGrid2D[G any](b Builder[G], width, height int) (*Grid2D[G], error) {
	if b == nil {
		return nil, wrapf("NewGrid2D", ErrNilBuilder)
	}
	if width <= 0 || height <= 0 {
		return nil, wrapf(fmt.Sprintf("NewGrid2D(%d,%d)", width, height), grid.ErrInvalidDimensions)
	}
	g, err := grid.New2D[G](width+1, height+1)
	if err != nil {
		return nil, wrapf("NewGrid2D", err)
	}

	var x, y int
	for y = 0; y <= height; y++ {
		for x = 0; x <= width; x++ {
			_ = g.Set(x, y, b.MakeGradient())
		}
	}

	return &Grid2D[G]{g: g}, nil
}

// Extent returns the number of cells per axis.
func (d *Grid2D[G]) Extent() point.P2 {
	return point.P2{float64(d.g.Width() - 1), float64(d.g.Height() - 1)}
}

// Gradient2D returns the gradient at vertex (x, y) or a wrapped
// grid.ErrOutOfRange.
func (d *Grid2D[G]) Gradient2D(x, y int) (G, error) {
	v, err := d.g.At(x, y)
	if err != nil {
		return v, wrapf("gradient.Grid2D", err)
	}

	return v, nil
}

// Grid3D stores one gradient per lattice vertex of a w×h×d cell grid.
type Grid3D[G any] struct {
	g *grid.Grid3D[G]
}

// NewGrid3D builds a dense grid covering width×height×depth cells.
func NewGrid3D[G any](b Builder[G], width, height, depth int) (*Grid3D[G], error) {
	if b == nil {
		return nil, wrapf("NewGrid3D", ErrNilBuilder)
	}
	if width <= 0 || height <= 0 || depth <= 0 {
		return nil, wrapf(fmt.Sprintf("NewGrid3D(%d,%d,%d)", width, height, depth), grid.ErrInvalidDimensions)
	}
	g, err := grid.New3D[G](width+1, height+1, depth+1)
	if err != nil {
		return nil, wrapf("NewGrid3D", err)
	}

	var x, y, z int
	for z = 0; z <= depth; z++ {
		for y = 0; y <= height; y++ {
			for x = 0; x <= width; x++ {
				_ = g.Set(x, y, z, b.MakeGradient())
			}
		}
	}

	return &Grid3D[G]{g: g}, nil
}

// Extent returns the number of cells per axis.
func (d *Grid3D[G]) Extent() point.P3 {
	return point.P3{float64(d.g.Width() - 1), float64(d.g.Height() - 1), float64(d.g.Depth() - 1)}
}

// Gradient3D returns the gradient at vertex (x, y, z) or a wrapped
// grid.ErrOutOfRange.
func (d *Grid3D[G]) Gradient3D(x, y, z int) (G, error) {
	v, err := d.g.At(x, y, z)
	if err != nil {
		return v, wrapf("gradient.Grid3D", err)
	}

	return v, nil
}
