// SPDX-License-Identifier: MIT

package adapter

import (
	"github.com/katalvlaran/gradnoise/noise"
	"github.com/katalvlaran/gradnoise/point"
)

// Select picks left where criteria(p) > threshold and right otherwise.
// A criteria value equal to the threshold selects right.
type Select[P point.Point[P]] struct {
	left, right, criteria noise.Noise[P]
	threshold             float64
}

// NewSelect panics on nil sources.
func NewSelect[P point.Point[P]](left, right, criteria noise.Noise[P], threshold float64) *Select[P] {
	mustSource("NewSelect", left, right, criteria)

	return &Select[P]{left: left, right: right, criteria: criteria, threshold: threshold}
}

// ValueAt evaluates criteria first and then only the selected side.
func (s *Select[P]) ValueAt(p P) float64 {
	if s.criteria.ValueAt(p) > s.threshold {
		return s.left.ValueAt(p)
	}

	return s.right.ValueAt(p)
}

// Frequency returns the component-wise maximum of left and right.
func (s *Select[P]) Frequency() P {
	return point.Max(s.left.Frequency(), s.right.Frequency())
}

// Left returns the source chosen above the threshold.
func (s *Select[P]) Left() noise.Noise[P] { return s.left }

// Right returns the source chosen at or below the threshold.
func (s *Select[P]) Right() noise.Noise[P] { return s.right }

// Criteria returns the selector source.
func (s *Select[P]) Criteria() noise.Noise[P] { return s.criteria }

// Threshold returns the selection threshold.
func (s *Select[P]) Threshold() float64 { return s.threshold }

// BlendFunc mixes two samples by a weight t (typically the criteria value).
// interp.LinearBlend, interp.Hermite3Blend and interp.Hermite5Blend fit.
type BlendFunc func(x1, x2, t float64) float64

// Blend mixes left and right by criteria: fn(left(p), right(p), criteria(p)).
type Blend[P point.Point[P]] struct {
	left, right, criteria noise.Noise[P]
	fn                    BlendFunc
}

// NewBlend panics on nil sources or a nil fn.
func NewBlend[P point.Point[P]](left, right, criteria noise.Noise[P], fn BlendFunc) *Blend[P] {
	mustSource("NewBlend", left, right, criteria)
	if fn == nil {
		panic("adapter: NewBlend with nil function")
	}

	return &Blend[P]{left: left, right: right, criteria: criteria, fn: fn}
}

// ValueAt returns fn(left(p), right(p), criteria(p)).
func (b *Blend[P]) ValueAt(p P) float64 {
	return b.fn(b.left.ValueAt(p), b.right.ValueAt(p), b.criteria.ValueAt(p))
}

// Frequency returns the component-wise maximum of left and right.
func (b *Blend[P]) Frequency() P {
	return point.Max(b.left.Frequency(), b.right.Frequency())
}

// Left returns the first input.
func (b *Blend[P]) Left() noise.Noise[P] { return b.left }

// Right returns the second input.
func (b *Blend[P]) Right() noise.Noise[P] { return b.right }

// Criteria returns the weight source.
func (b *Blend[P]) Criteria() noise.Noise[P] { return b.criteria }
