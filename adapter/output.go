// SPDX-License-Identifier: MIT

package adapter

import (
	"github.com/katalvlaran/gradnoise/noise"
	"github.com/katalvlaran/gradnoise/point"
)

// Scale multiplies the output by a constant amplitude.
type Scale[P point.Point[P]] struct {
	inner     noise.Noise[P]
	amplitude float64
}

// NewScale panics on a nil source.
func NewScale[P point.Point[P]](inner noise.Noise[P], amplitude float64) *Scale[P] {
	mustSource("NewScale", inner)

	return &Scale[P]{inner: inner, amplitude: amplitude}
}

func (s *Scale[P]) ValueAt(p P) float64 { return s.inner.ValueAt(p) * s.amplitude }

func (s *Scale[P]) Frequency() P { return s.inner.Frequency() }

func (s *Scale[P]) Inner() noise.Noise[P] { return s.inner }

func (s *Scale[P]) Amplitude() float64 { return s.amplitude }

// WithRange remaps an inner output assumed to lie in [-1, 1] onto
// [min, max]: min + (0.5 + 0.5·v)·(max - min). Values outside [-1, 1] are
// extrapolated, not clamped.
type WithRange[P point.Point[P]] struct {
	inner    noise.Noise[P]
	min, max float64
}

// NewWithRange returns ErrInvalidRange unless min < max.
func NewWithRange[P point.Point[P]](inner noise.Noise[P], lo, hi float64) (*WithRange[P], error) {
	mustSource("NewWithRange", inner)
	if !(lo < hi) {
		return nil, rangeErrorf("NewWithRange", lo, hi)
	}

	return &WithRange[P]{inner: inner, min: lo, max: hi}, nil
}

func (r *WithRange[P]) ValueAt(p P) float64 {
	return r.min + (0.5+0.5*r.inner.ValueAt(p))*(r.max-r.min)
}

func (r *WithRange[P]) Frequency() P { return r.inner.Frequency() }

func (r *WithRange[P]) Inner() noise.Noise[P] { return r.inner }

func (r *WithRange[P]) Min() float64 { return r.min }

func (r *WithRange[P]) Max() float64 { return r.max }

// Clamp limits the output to [low, high].
type Clamp[P point.Point[P]] struct {
	inner     noise.Noise[P]
	low, high float64
}

// NewClamp returns ErrInvalidRange unless low < high.
func NewClamp[P point.Point[P]](inner noise.Noise[P], low, high float64) (*Clamp[P], error) {
	mustSource("NewClamp", inner)
	if !(low < high) {
		return nil, rangeErrorf("NewClamp", low, high)
	}

	return &Clamp[P]{inner: inner, low: low, high: high}, nil
}

func (c *Clamp[P]) ValueAt(p P) float64 { return clamp(c.inner.ValueAt(p), c.low, c.high) }

func (c *Clamp[P]) Frequency() P { return c.inner.Frequency() }

func (c *Clamp[P]) Inner() noise.Noise[P] { return c.inner }

func (c *Clamp[P]) Low() float64 { return c.low }

func (c *Clamp[P]) High() float64 { return c.high }

// Negate flips the sign of the output.
type Negate[P point.Point[P]] struct {
	inner noise.Noise[P]
}

// NewNegate panics on a nil source.
func NewNegate[P point.Point[P]](inner noise.Noise[P]) *Negate[P] {
	mustSource("NewNegate", inner)

	return &Negate[P]{inner: inner}
}

func (n *Negate[P]) ValueAt(p P) float64 { return -n.inner.ValueAt(p) }

func (n *Negate[P]) Frequency() P { return n.inner.Frequency() }

func (n *Negate[P]) Inner() noise.Noise[P] { return n.inner }

// Transform post-processes each sample with access to its coordinate.
type Transform[P point.Point[P]] struct {
	inner noise.Noise[P]
	fn    func(p P, v float64) float64
}

// NewTransform panics on a nil source or nil fn.
func NewTransform[P point.Point[P]](inner noise.Noise[P], fn func(p P, v float64) float64) *Transform[P] {
	mustSource("NewTransform", inner)
	if fn == nil {
		panic("adapter: NewTransform with nil function")
	}

	return &Transform[P]{inner: inner, fn: fn}
}

func (t *Transform[P]) ValueAt(p P) float64 { return t.fn(p, t.inner.ValueAt(p)) }

func (t *Transform[P]) Frequency() P { return t.inner.Frequency() }

func (t *Transform[P]) Inner() noise.Noise[P] { return t.inner }
