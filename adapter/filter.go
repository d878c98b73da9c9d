// SPDX-License-Identifier: MIT

package adapter

import (
	"fmt"

	"github.com/katalvlaran/gradnoise/interp"
	"github.com/katalvlaran/gradnoise/noise"
	"github.com/katalvlaran/gradnoise/point"
)

// FilterKind selects which side of the band a Filter passes.
type FilterKind int

const (
	// LowPass keeps samples below start and zeroes samples above end.
	LowPass FilterKind = iota
	// HighPass zeroes samples below start and keeps samples above end.
	HighPass
)

func (k FilterKind) String() string {
	switch k {
	case LowPass:
		return "LowPass"
	case HighPass:
		return "HighPass"
	default:
		return fmt.Sprintf("FilterKind(%d)", int(k))
	}
}

// Filter is a soft threshold on the inner output. With v = inner(p) and
// baselines (x1, x2) = (v, 0) for LowPass or (0, v) for HighPass:
//
//	v <= start        -> x1
//	start < v < end   -> fn(x1, x2, (v-start)/(end-start))
//	v >= end          -> x2
type Filter[P point.Point[P]] struct {
	inner      noise.Noise[P]
	start, end float64
	kind       FilterKind
	fn         BlendFunc
}

// NewFilter returns ErrInvalidRange unless start < end. A nil fn selects
// interp.Hermite5Blend. Panics on a nil source or unknown kind.
func NewFilter[P point.Point[P]](inner noise.Noise[P], start, end float64, kind FilterKind, fn BlendFunc) (*Filter[P], error) {
	mustSource("NewFilter", inner)
	if kind != LowPass && kind != HighPass {
		panic("adapter: NewFilter with unknown " + kind.String())
	}
	if !(start < end) {
		return nil, rangeErrorf("NewFilter", start, end)
	}
	if fn == nil {
		fn = interp.Hermite5Blend
	}

	return &Filter[P]{inner: inner, start: start, end: end, kind: kind, fn: fn}, nil
}

func (f *Filter[P]) ValueAt(p P) float64 {
	v := f.inner.ValueAt(p)

	x1, x2 := v, 0.0
	if f.kind == HighPass {
		x1, x2 = 0, v
	}

	switch {
	case v > f.start && v < f.end:
		return f.fn(x1, x2, (v-f.start)/(f.end-f.start))
	case v >= f.end:
		return x2
	default:
		return x1
	}
}

func (f *Filter[P]) Frequency() P { return f.inner.Frequency() }

func (f *Filter[P]) Inner() noise.Noise[P] { return f.inner }

func (f *Filter[P]) Start() float64 { return f.start }

func (f *Filter[P]) End() float64 { return f.end }

func (f *Filter[P]) Kind() FilterKind { return f.kind }
