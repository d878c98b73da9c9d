// SPDX-License-Identifier: MIT

package adapter_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gradnoise/adapter"
	"github.com/katalvlaran/gradnoise/interp"
	"github.com/katalvlaran/gradnoise/noise"
	"github.com/katalvlaran/gradnoise/point"
	"github.com/katalvlaran/gradnoise/rng"
)

func identity1D() *adapter.FunctionValue[point.P1] {
	return adapter.NewFunctionValue[point.P1](func(p point.P1) float64 { return float64(p) })
}

func constant2D(v float64) *adapter.Constant[point.P2] {
	return adapter.NewConstant[point.P2](v)
}

func TestCombine(t *testing.T) {
	a := adapter.NewFunctionValueWithFrequency[point.P2](func(p point.P2) float64 { return p[0] + 2*p[1] }, point.P2{2, 1})
	b := adapter.NewFunctionValueWithFrequency[point.P2](func(p point.P2) float64 { return p[0] * p[1] }, point.P2{1, 3})
	p := point.P2{1.5, 2}

	sum := adapter.NewAdd[point.P2](a, b)
	assert.Equal(t, 8.5, sum.ValueAt(p))
	assert.Equal(t, point.P2{2, 3}, sum.Frequency())
	assert.Same(t, a, sum.Left())
	assert.Same(t, b, sum.Right())

	prod := adapter.NewMultiply[point.P2](a, b)
	assert.Equal(t, 16.5, prod.ValueAt(p))

	hi := adapter.NewCombine[point.P2](a, b, math.Max)
	assert.Equal(t, 5.5, hi.ValueAt(p))

	assert.Panics(t, func() { adapter.NewAdd[point.P2](a, nil) })
	assert.Panics(t, func() { adapter.NewAdd[point.P2](a, (*adapter.Constant[point.P2])(nil)) })
	assert.Panics(t, func() { adapter.NewCombine[point.P2](a, b, nil) })
}

// TestComposition_Laws checks Add, Negate and Clamp against direct
// evaluation of a real fractal field.
func TestComposition_Laws(t *testing.T) {
	f, err := noise.NewFbm2D(rng.FromSeed(8), noise.WithOctaves(4))
	require.NoError(t, err)
	g, err := noise.NewFbm2D(rng.FromSeed(9), noise.WithOctaves(3))
	require.NoError(t, err)

	sum := adapter.NewAdd[point.P2](f, g)
	neg := adapter.NewNegate[point.P2](f)
	zero := adapter.NewAdd[point.P2](f, neg)
	cl, err := adapter.NewClamp[point.P2](f, -0.1, 0.1)
	require.NoError(t, err)

	var i int
	for i = 0; i < 500; i++ {
		p := point.P2{float64(i) / 97, float64(i%31) / 31}
		fv, gv := f.ValueAt(p), g.ValueAt(p)
		require.Equal(t, fv+gv, sum.ValueAt(p))
		require.Equal(t, -fv, neg.ValueAt(p))
		require.Equal(t, 0.0, zero.ValueAt(p))
		require.Equal(t, math.Min(math.Max(fv, -0.1), 0.1), cl.ValueAt(p))
	}
	assert.Equal(t, f.Frequency(), neg.Frequency())
}

func TestSelect_Boundary(t *testing.T) {
	left, right := constant2D(1), constant2D(-1)
	criteria := constant2D(0.5)

	at := adapter.NewSelect[point.P2](left, right, criteria, 0.5)
	assert.Equal(t, -1.0, at.ValueAt(point.P2{}), "equal to threshold goes right")

	below := adapter.NewSelect[point.P2](left, right, criteria, 0.4)
	assert.Equal(t, 1.0, below.ValueAt(point.P2{}))
	assert.Equal(t, 0.4, below.Threshold())
	assert.Same(t, criteria, below.Criteria())

	assert.Panics(t, func() { adapter.NewSelect[point.P2](left, right, nil, 0) })
}

func TestBlend(t *testing.T) {
	b := adapter.NewBlend[point.P2](constant2D(2), constant2D(4), constant2D(0.25), interp.LinearBlend)
	assert.Equal(t, 2.5, b.ValueAt(point.P2{7, 7}))
	assert.Equal(t, point.P2{}, b.Frequency())

	assert.Panics(t, func() { adapter.NewBlend[point.P2](constant2D(0), constant2D(0), constant2D(0), nil) })
}

func TestInputTransforms(t *testing.T) {
	diff := adapter.NewFunctionValue[point.P2](func(p point.P2) float64 { return p[0] - p[1] })

	scaled := adapter.NewScaleInput[point.P2](diff, point.P2{2, 3})
	assert.Equal(t, -1.0, scaled.ValueAt(point.P2{1, 1}))
	assert.Equal(t, point.P2{2, 3}, scaled.Scale())

	shifted := adapter.NewShiftInput[point.P2](diff, point.P2{1, -1})
	assert.Equal(t, 2.0, shifted.ValueAt(point.P2{}))
	assert.Equal(t, point.P2{1, -1}, shifted.Shift())

	clamped, err := adapter.NewClampInput[point.P2](diff, point.P2{0, 0}, point.P2{1, 1})
	require.NoError(t, err)
	assert.Equal(t, 1.0, clamped.ValueAt(point.P2{2, -3}))
	assert.Equal(t, 0.0, clamped.ValueAt(point.P2{0.5, 0.5}))
	lo, hi := clamped.Bounds()
	assert.Equal(t, point.P2{0, 0}, lo)
	assert.Equal(t, point.P2{1, 1}, hi)
}

// TestWrapInput covers negative inputs and the exclusive upper bound.
func TestWrapInput(t *testing.T) {
	code := adapter.NewFunctionValue[point.P2](func(p point.P2) float64 { return p[0]*10 + p[1] })
	w, err := adapter.NewWrapInput[point.P2](code, point.P2{0, 0}, point.P2{1, 2})
	require.NoError(t, err)
	assert.Equal(t, 4.0, w.ValueAt(point.P2{1.25, -0.5}))

	w1, err := adapter.NewWrapInput[point.P1](identity1D(), -1, 1)
	require.NoError(t, err)
	assert.Equal(t, -1.0, w1.ValueAt(3))
	assert.Equal(t, -1.0, w1.ValueAt(1), "high wraps to low")
	assert.Equal(t, 0.5, w1.ValueAt(-1.5))
	assert.Equal(t, 0.25, w1.ValueAt(0.25))

	// A wrapped field is periodic.
	f, err := noise.NewFbm1D(rng.FromSeed(4), noise.WithOctaves(3))
	require.NoError(t, err)
	per, err := adapter.NewWrapInput[point.P1](f, 0, 0.5)
	require.NoError(t, err)
	assert.InDelta(t, per.ValueAt(0.125), per.ValueAt(2.125), 1e-12)
}

func TestOutputTransforms(t *testing.T) {
	rng10 := func(v float64) float64 {
		r, err := adapter.NewWithRange[point.P2](constant2D(v), 10, 20)
		require.NoError(t, err)
		return r.ValueAt(point.P2{})
	}
	assert.Equal(t, 15.0, rng10(0))
	assert.Equal(t, 20.0, rng10(1))
	assert.Equal(t, 10.0, rng10(-1))

	s := adapter.NewScale[point.P1](identity1D(), 3)
	assert.Equal(t, 1.5, s.ValueAt(0.5))
	assert.Equal(t, 3.0, s.Amplitude())

	c, err := adapter.NewClamp[point.P1](identity1D(), -0.5, 0.5)
	require.NoError(t, err)
	assert.Equal(t, 0.5, c.ValueAt(3))
	assert.Equal(t, -0.5, c.ValueAt(-3))
	assert.Equal(t, 0.25, c.ValueAt(0.25))
	assert.Equal(t, -0.5, c.Low())
	assert.Equal(t, 0.5, c.High())

	tr := adapter.NewTransform[point.P1](identity1D(), func(p point.P1, v float64) float64 { return v*v + float64(p) })
	assert.Equal(t, 6.0, tr.ValueAt(2))
	assert.Panics(t, func() { adapter.NewTransform[point.P1](identity1D(), nil) })
}

func TestFilter(t *testing.T) {
	low, err := adapter.NewFilter[point.P1](identity1D(), 0, 1, adapter.LowPass, interp.LinearBlend)
	require.NoError(t, err)
	high, err := adapter.NewFilter[point.P1](identity1D(), 0, 1, adapter.HighPass, interp.LinearBlend)
	require.NoError(t, err)

	tests := []struct {
		in, low, high float64
	}{
		{-0.5, -0.5, 0},
		{0, 0, 0},
		{0.5, 0.25, 0.25},
		{1, 0, 1},
		{2, 0, 2},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.low, low.ValueAt(point.P1(tc.in)), "LowPass(%v)", tc.in)
		assert.Equal(t, tc.high, high.ValueAt(point.P1(tc.in)), "HighPass(%v)", tc.in)
	}
	assert.Equal(t, adapter.HighPass, high.Kind())
	assert.Equal(t, "LowPass", low.Kind().String())
	assert.Equal(t, 0.0, low.Start())
	assert.Equal(t, 1.0, low.End())

	// nil blend selects the quintic default: t=0.5 gives weight 0.5.
	def, err := adapter.NewFilter[point.P1](identity1D(), 0, 1, adapter.LowPass, nil)
	require.NoError(t, err)
	assert.InDelta(t, 0.25, def.ValueAt(0.5), 1e-15)

	assert.Panics(t, func() { _, _ = adapter.NewFilter[point.P1](identity1D(), 0, 1, adapter.FilterKind(7), nil) })
}

func TestRangeErrors(t *testing.T) {
	src := constant2D(0)

	_, err := adapter.NewClampInput[point.P2](src, point.P2{0, 1}, point.P2{1, 1})
	assert.ErrorIs(t, err, adapter.ErrInvalidRange)
	_, err = adapter.NewWrapInput[point.P2](src, point.P2{2, 0}, point.P2{1, 1})
	assert.ErrorIs(t, err, adapter.ErrInvalidRange)
	_, err = adapter.NewWithRange[point.P2](src, 1, 1)
	assert.ErrorIs(t, err, adapter.ErrInvalidRange)
	_, err = adapter.NewClamp[point.P2](src, math.NaN(), 1)
	assert.ErrorIs(t, err, adapter.ErrInvalidRange)
	_, err = adapter.NewFilter[point.P2](src, 2, 1, adapter.LowPass, nil)
	assert.ErrorIs(t, err, adapter.ErrInvalidRange)
	assert.ErrorContains(t, err, "NewFilter(low=2, high=1)")
}

func TestSources(t *testing.T) {
	k := adapter.NewConstant[point.P3](0.7)
	assert.Equal(t, 0.7, k.ValueAt(point.P3{1, 2, 3}))
	assert.Equal(t, 0.7, k.Value())
	assert.Equal(t, point.P3{}, k.Frequency())

	assert.Panics(t, func() { adapter.NewFunctionValue[point.P3](nil) })
}

func TestDimensionAdapters(t *testing.T) {
	double := adapter.NewFunctionValueWithFrequency[point.P1](func(p point.P1) float64 { return 2 * float64(p) }, 4)
	ext := adapter.NewExtension2D(double)
	assert.Equal(t, 6.0, ext.ValueAt(point.P2{3, 999}))
	assert.Equal(t, point.P2{4, 1}, ext.Frequency())

	plane := adapter.NewFunctionValueWithFrequency[point.P2](func(p point.P2) float64 { return p[0] + 10*p[1] }, point.P2{3, 5})
	ext3 := adapter.NewExtension3D(plane)
	assert.Equal(t, 21.0, ext3.ValueAt(point.P3{1, 2, -8}))
	assert.Equal(t, point.P3{3, 5, 1}, ext3.Frequency())

	line := adapter.NewSlice1D(plane, 0.5)
	assert.Equal(t, 7.0, line.ValueAt(2))
	assert.Equal(t, point.P1(3), line.Frequency())
	assert.Equal(t, 0.5, line.At())

	// Slicing an extension at any height recovers the original.
	round := adapter.NewSlice1D(ext, 123)
	assert.Equal(t, double.ValueAt(1.25), round.ValueAt(1.25))

	f3, err := noise.NewFbm3D(rng.FromSeed(5), noise.WithOctaves(2))
	require.NoError(t, err)
	s2 := adapter.NewSlice2D(f3, 0.3)
	assert.Equal(t, f3.ValueAt(point.P3{0.1, 0.2, 0.3}), s2.ValueAt(point.P2{0.1, 0.2}))
	assert.Equal(t, point.P2{2, 2}, s2.Frequency())

	s4, err := noise.NewSimplex4D(rng.FromSeed(6), point.P4{2, 3, 4, 5})
	require.NoError(t, err)
	s3 := adapter.NewSlice3D(s4, 0.75)
	assert.Equal(t, s4.ValueAt(point.P4{0.1, 0.2, 0.3, 0.75}), s3.ValueAt(point.P3{0.1, 0.2, 0.3}))
	assert.Equal(t, point.P3{2, 3, 4}, s3.Frequency())

	assert.Panics(t, func() { adapter.NewSlice2D(nil, 0) })
	assert.Panics(t, func() { adapter.NewExtension2D(nil) })
}
