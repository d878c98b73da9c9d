// SPDX-License-Identifier: MIT

// Package interp provides the interpolation kernels used by gradient noise
// and the blend helpers used by blending/filter adapters.
//
// Kernels map a blend parameter t, conceptually in [0,1], to a smoothed
// weight. They do NOT clamp: callers guarantee the range. The *Blend helpers
// clamp the (smoothed) weight to [0,1] before mixing two samples.
//
//	Linear        f(t) = t
//	Smoothstep    f(t) = t²(3−2t)             (3rd-order Hermite)
//	Smootherstep  f(t) = t³(10 + t(−15 + 6t)) (5th-order Hermite, improved Perlin)
package interp

// Interpolator maps a blend parameter t to a smoothed weight.
type Interpolator interface {
	Value(t float64) float64
}

// Func adapts a plain function to the Interpolator interface.
type Func func(t float64) float64

// Value calls f(t).
func (f Func) Value(t float64) float64 { return f(t) }

// Linear is the identity kernel.
type Linear struct{}

// Smoothstep is the 3rd-order Hermite kernel.
type Smoothstep struct{}

// Smootherstep is the 5th-order Hermite kernel used by improved Perlin noise.
type Smootherstep struct{}

var (
	_ Interpolator = Linear{}
	_ Interpolator = Smoothstep{}
	_ Interpolator = Smootherstep{}
	_ Interpolator = Func(nil)
)

// Value returns t.
func (Linear) Value(t float64) float64 { return t }

// Value returns t²(3−2t).
func (Smoothstep) Value(t float64) float64 { return t * t * (3.0 - 2.0*t) }

// Value returns t³(10 + t(−15 + 6t)).
func (Smootherstep) Value(t float64) float64 {
	return t * t * t * (10.0 + t*(-15.0+6.0*t))
}

// Lerp interpolates between a and b: a(1−t) + bt. t is not clamped.
func Lerp(a, b, t float64) float64 {
	return (1.0-t)*a + b*t
}

// LinearBlend mixes x1 and x2 by t clamped to [0,1].
func LinearBlend(x1, x2, t float64) float64 {
	t = clampUnit(t)

	return x1*(1.0-t) + x2*t
}

// Hermite3Blend mixes x1 and x2 with a smoothstep-shaped weight.
func Hermite3Blend(x1, x2, t float64) float64 {
	return LinearBlend(x1, x2, Smoothstep{}.Value(t))
}

// Hermite5Blend mixes x1 and x2 with a smootherstep-shaped weight.
func Hermite5Blend(x1, x2, t float64) float64 {
	return LinearBlend(x1, x2, Smootherstep{}.Value(t))
}

func clampUnit(t float64) float64 {
	if t > 1.0 {
		return 1.0
	}
	if t < 0.0 {
		return 0.0
	}

	return t
}
