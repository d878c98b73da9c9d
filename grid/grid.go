// SPDX-License-Identifier: MIT

package grid

// ---------- error context tags ----------

const (
	ctxAt1D    = "Grid1D.At"
	ctxSet1D   = "Grid1D.Set"
	ctxIndex2D = "Grid2D.Index"
	ctxIndex3D = "Grid3D.Index"
)

// Grid1D is a bounds-checked one-dimensional array.
type Grid1D[T any] struct {
	data []T
}

// New1D creates a zero-filled grid of width cells.
// Returns ErrInvalidDimensions when width <= 0.
func New1D[T any](width int) (*Grid1D[T], error) {
	if width <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Grid1D[T]{data: make([]T, width)}, nil
}

// FromData1D adopts data as a grid of len(data) cells (no copy).
func FromData1D[T any](data []T) (*Grid1D[T], error) {
	if len(data) == 0 {
		return nil, ErrInvalidDimensions
	}

	return &Grid1D[T]{data: data}, nil
}

// Width returns the number of cells.
func (g *Grid1D[T]) Width() int { return len(g.data) }

// Len returns the total number of cells.
func (g *Grid1D[T]) Len() int { return len(g.data) }

// At returns the value at x or ErrOutOfRange.
func (g *Grid1D[T]) At(x int) (T, error) {
	if x < 0 || x >= len(g.data) {
		var zero T
		return zero, gridErrorf(ctxAt1D, []int{x}, ErrOutOfRange)
	}

	return g.data[x], nil
}

// Set stores v at x or returns ErrOutOfRange.
func (g *Grid1D[T]) Set(x int, v T) error {
	if x < 0 || x >= len(g.data) {
		return gridErrorf(ctxSet1D, []int{x}, ErrOutOfRange)
	}
	g.data[x] = v

	return nil
}

// Data returns a copy of the backing slice.
func (g *Grid1D[T]) Data() []T {
	out := make([]T, len(g.data))
	copy(out, g.data)

	return out
}

// Grid2D is a bounds-checked row-major width×height array.
// Offset formula: x + y*width.
type Grid2D[T any] struct {
	w, h int
	data []T // len == w*h
}

// New2D creates a zero-filled width×height grid.
func New2D[T any](width, height int) (*Grid2D[T], error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Grid2D[T]{w: width, h: height, data: make([]T, width*height)}, nil
}

// FromData2D adopts data as a width×height grid (no copy).
func FromData2D[T any](width, height int, data []T) (*Grid2D[T], error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if len(data) != width*height {
		return nil, ErrDataLength
	}

	return &Grid2D[T]{w: width, h: height, data: data}, nil
}

// Width returns the number of columns.
func (g *Grid2D[T]) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid2D[T]) Height() int { return g.h }

// Len returns width*height.
func (g *Grid2D[T]) Len() int { return len(g.data) }

// Index returns the linear offset of (x, y) or ErrOutOfRange.
func (g *Grid2D[T]) Index(x, y int) (int, error) {
	if x < 0 || x >= g.w || y < 0 || y >= g.h {
		return 0, gridErrorf(ctxIndex2D, []int{x, y}, ErrOutOfRange)
	}

	return x + y*g.w, nil
}

// At returns the value at (x, y) or ErrOutOfRange.
func (g *Grid2D[T]) At(x, y int) (T, error) {
	idx, err := g.Index(x, y)
	if err != nil {
		var zero T
		return zero, err
	}

	return g.data[idx], nil
}

// Set stores v at (x, y) or returns ErrOutOfRange.
func (g *Grid2D[T]) Set(x, y int, v T) error {
	idx, err := g.Index(x, y)
	if err != nil {
		return err
	}
	g.data[idx] = v

	return nil
}

// Row returns a copy of row y, or ErrOutOfRange.
func (g *Grid2D[T]) Row(y int) ([]T, error) {
	start, err := g.Index(0, y)
	if err != nil {
		return nil, err
	}
	out := make([]T, g.w)
	copy(out, g.data[start:start+g.w])

	return out, nil
}

// Data returns a copy of the backing slice in row-major order.
func (g *Grid2D[T]) Data() []T {
	out := make([]T, len(g.data))
	copy(out, g.data)

	return out
}

// Grid3D is a bounds-checked width×height×depth array.
// Offset formula: x + y*width + z*width*height.
type Grid3D[T any] struct {
	w, h, d int
	data    []T // len == w*h*d
}

// New3D creates a zero-filled width×height×depth grid.
func New3D[T any](width, height, depth int) (*Grid3D[T], error) {
	if width <= 0 || height <= 0 || depth <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Grid3D[T]{w: width, h: height, d: depth, data: make([]T, width*height*depth)}, nil
}

// FromData3D adopts data as a width×height×depth grid (no copy).
func FromData3D[T any](width, height, depth int, data []T) (*Grid3D[T], error) {
	if width <= 0 || height <= 0 || depth <= 0 {
		return nil, ErrInvalidDimensions
	}
	if len(data) != width*height*depth {
		return nil, ErrDataLength
	}

	return &Grid3D[T]{w: width, h: height, d: depth, data: data}, nil
}

// Width returns the x extent.
func (g *Grid3D[T]) Width() int { return g.w }

// Height returns the y extent.
func (g *Grid3D[T]) Height() int { return g.h }

// Depth returns the z extent.
func (g *Grid3D[T]) Depth() int { return g.d }

// Len returns width*height*depth.
func (g *Grid3D[T]) Len() int { return len(g.data) }

// Index returns the linear offset of (x, y, z) or ErrOutOfRange.
func (g *Grid3D[T]) Index(x, y, z int) (int, error) {
	if x < 0 || x >= g.w || y < 0 || y >= g.h || z < 0 || z >= g.d {
		return 0, gridErrorf(ctxIndex3D, []int{x, y, z}, ErrOutOfRange)
	}

	return x + y*g.w + z*g.w*g.h, nil
}

// At returns the value at (x, y, z) or ErrOutOfRange.
func (g *Grid3D[T]) At(x, y, z int) (T, error) {
	idx, err := g.Index(x, y, z)
	if err != nil {
		var zero T
		return zero, err
	}

	return g.data[idx], nil
}

// Set stores v at (x, y, z) or returns ErrOutOfRange.
func (g *Grid3D[T]) Set(x, y, z int, v T) error {
	idx, err := g.Index(x, y, z)
	if err != nil {
		return err
	}
	g.data[idx] = v

	return nil
}

// Data returns a copy of the backing slice.
func (g *Grid3D[T]) Data() []T {
	out := make([]T, len(g.data))
	copy(out, g.data)

	return out
}
