// SPDX-License-Identifier: MIT

package adapter

import (
	"github.com/katalvlaran/gradnoise/point"
)

// Constant yields the same value at every coordinate. Its frequency is the
// zero point, so it never widens the frequency of a composition.
type Constant[P point.Point[P]] struct {
	value float64
}

func NewConstant[P point.Point[P]](value float64) *Constant[P] {
	return &Constant[P]{value: value}
}

func (c *Constant[P]) ValueAt(P) float64 { return c.value }

func (c *Constant[P]) Frequency() P {
	var zero P
	return zero
}

func (c *Constant[P]) Value() float64 { return c.value }

// FunctionValue delegates every sample to a caller closure. The closure must
// be safe for concurrent use if the composition is sampled concurrently.
type FunctionValue[P point.Point[P]] struct {
	fn   func(p P) float64
	freq P
}

// NewFunctionValue reports the zero frequency; use NewFunctionValueWithFrequency
// when the closure has a known band. Panics on a nil fn.
func NewFunctionValue[P point.Point[P]](fn func(p P) float64) *FunctionValue[P] {
	var zero P
	return NewFunctionValueWithFrequency(fn, zero)
}

// NewFunctionValueWithFrequency is NewFunctionValue with an explicit
// reported frequency.
func NewFunctionValueWithFrequency[P point.Point[P]](fn func(p P) float64, freq P) *FunctionValue[P] {
	if fn == nil {
		panic("adapter: NewFunctionValue with nil function")
	}

	return &FunctionValue[P]{fn: fn, freq: freq}
}

func (f *FunctionValue[P]) ValueAt(p P) float64 { return f.fn(p) }

func (f *FunctionValue[P]) Frequency() P { return f.freq }
