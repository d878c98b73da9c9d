// SPDX-License-Identifier: MIT

package adapter

import (
	"github.com/katalvlaran/gradnoise/noise"
	"github.com/katalvlaran/gradnoise/point"
)

// Combine merges two sources pointwise: f(left(p), right(p)).
type Combine[P point.Point[P]] struct {
	left, right noise.Noise[P]
	fn          func(a, b float64) float64
}

// NewCombine wraps left and right with an arbitrary binary function.
// Panics on nil arguments.
func NewCombine[P point.Point[P]](left, right noise.Noise[P], fn func(a, b float64) float64) *Combine[P] {
	mustSource("NewCombine", left, right)
	if fn == nil {
		panic("adapter: NewCombine with nil function")
	}

	return &Combine[P]{left: left, right: right, fn: fn}
}

// NewAdd returns left(p) + right(p).
func NewAdd[P point.Point[P]](left, right noise.Noise[P]) *Combine[P] {
	mustSource("NewAdd", left, right)

	return &Combine[P]{left: left, right: right, fn: add}
}

// NewMultiply returns left(p) · right(p).
func NewMultiply[P point.Point[P]](left, right noise.Noise[P]) *Combine[P] {
	mustSource("NewMultiply", left, right)

	return &Combine[P]{left: left, right: right, fn: mul}
}

func add(a, b float64) float64 { return a + b }
func mul(a, b float64) float64 { return a * b }

// ValueAt returns fn(left(p), right(p)).
func (c *Combine[P]) ValueAt(p P) float64 {
	return c.fn(c.left.ValueAt(p), c.right.ValueAt(p))
}

// Frequency returns the component-wise maximum of both inputs.
func (c *Combine[P]) Frequency() P {
	return point.Max(c.left.Frequency(), c.right.Frequency())
}

// Left returns the first input.
func (c *Combine[P]) Left() noise.Noise[P] { return c.left }

// Right returns the second input.
func (c *Combine[P]) Right() noise.Noise[P] { return c.right }
