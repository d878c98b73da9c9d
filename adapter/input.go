// SPDX-License-Identifier: MIT

package adapter

import (
	"math"

	"github.com/katalvlaran/gradnoise/noise"
	"github.com/katalvlaran/gradnoise/point"
)

// ScaleInput multiplies the coordinate by a per-axis factor before
// delegating: inner(p ⊙ scale).
type ScaleInput[P point.Point[P]] struct {
	inner noise.Noise[P]
	scale P
}

// NewScaleInput panics on a nil source.
func NewScaleInput[P point.Point[P]](inner noise.Noise[P], scale P) *ScaleInput[P] {
	mustSource("NewScaleInput", inner)

	return &ScaleInput[P]{inner: inner, scale: scale}
}

func (s *ScaleInput[P]) ValueAt(p P) float64 { return s.inner.ValueAt(point.Mul(p, s.scale)) }

// Frequency is reported unchanged from the inner source.
func (s *ScaleInput[P]) Frequency() P { return s.inner.Frequency() }

func (s *ScaleInput[P]) Inner() noise.Noise[P] { return s.inner }

func (s *ScaleInput[P]) Scale() P { return s.scale }

// ShiftInput translates the coordinate before delegating: inner(p + shift).
type ShiftInput[P point.Point[P]] struct {
	inner noise.Noise[P]
	shift P
}

// NewShiftInput panics on a nil source.
func NewShiftInput[P point.Point[P]](inner noise.Noise[P], shift P) *ShiftInput[P] {
	mustSource("NewShiftInput", inner)

	return &ShiftInput[P]{inner: inner, shift: shift}
}

func (s *ShiftInput[P]) ValueAt(p P) float64 { return s.inner.ValueAt(point.Add(p, s.shift)) }

func (s *ShiftInput[P]) Frequency() P { return s.inner.Frequency() }

func (s *ShiftInput[P]) Inner() noise.Noise[P] { return s.inner }

func (s *ShiftInput[P]) Shift() P { return s.shift }

// ClampInput clamps every coordinate axis into [low, high] before delegating.
type ClampInput[P point.Point[P]] struct {
	inner     noise.Noise[P]
	low, high P
}

// NewClampInput returns ErrInvalidRange unless low < high on every axis.
// Panics on a nil source.
func NewClampInput[P point.Point[P]](inner noise.Noise[P], low, high P) (*ClampInput[P], error) {
	mustSource("NewClampInput", inner)
	if !point.AllPairs(low, high, less) {
		return nil, rangeErrorf("NewClampInput", low, high)
	}

	return &ClampInput[P]{inner: inner, low: low, high: high}, nil
}

func (c *ClampInput[P]) ValueAt(p P) float64 {
	return c.inner.ValueAt(point.Apply3(p, c.low, c.high, clamp))
}

func (c *ClampInput[P]) Frequency() P { return c.inner.Frequency() }

func (c *ClampInput[P]) Inner() noise.Noise[P] { return c.inner }

// Bounds returns the per-axis low and high limits.
func (c *ClampInput[P]) Bounds() (low, high P) { return c.low, c.high }

// WrapInput folds every coordinate axis into [low, high) before delegating,
// so the inner field repeats with period high-low on each axis.
type WrapInput[P point.Point[P]] struct {
	inner     noise.Noise[P]
	low, high P
}

// NewWrapInput returns ErrInvalidRange unless low < high on every axis.
// Panics on a nil source.
func NewWrapInput[P point.Point[P]](inner noise.Noise[P], low, high P) (*WrapInput[P], error) {
	mustSource("NewWrapInput", inner)
	if !point.AllPairs(low, high, less) {
		return nil, rangeErrorf("NewWrapInput", low, high)
	}

	return &WrapInput[P]{inner: inner, low: low, high: high}, nil
}

func (w *WrapInput[P]) ValueAt(p P) float64 {
	return w.inner.ValueAt(point.Apply3(p, w.low, w.high, wrap))
}

func (w *WrapInput[P]) Frequency() P { return w.inner.Frequency() }

func (w *WrapInput[P]) Inner() noise.Noise[P] { return w.inner }

// Bounds returns the per-axis low and high limits.
func (w *WrapInput[P]) Bounds() (low, high P) { return w.low, w.high }

func less(a, b float64) bool { return a < b }

func clamp(v, low, high float64) float64 {
	return math.Min(math.Max(v, low), high)
}

// wrap maps v into [low, high) with a sign-corrected remainder.
func wrap(v, low, high float64) float64 {
	span := high - low
	r := math.Mod(v-low, span)
	if r < 0 {
		r += span
	}
	// r+span can round up to span itself for tiny negative r.
	if r >= span {
		r = 0
	}

	return low + r
}
