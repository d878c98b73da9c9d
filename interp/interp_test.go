// SPDX-License-Identifier: MIT

package interp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/gradnoise/interp"
)

// TestKernels_Endpoints checks f(0)=0, f(1)=1 and the midpoint for all kernels.
func TestKernels_Endpoints(t *testing.T) {
	kernels := map[string]interp.Interpolator{
		"linear":       interp.Linear{},
		"smoothstep":   interp.Smoothstep{},
		"smootherstep": interp.Smootherstep{},
	}
	for name, k := range kernels {
		t.Run(name, func(t *testing.T) {
			assert.InDelta(t, 0.0, k.Value(0), 1e-15)
			assert.InDelta(t, 1.0, k.Value(1), 1e-15)
			assert.InDelta(t, 0.5, k.Value(0.5), 1e-15, "all kernels are symmetric around 0.5")
		})
	}
}

// TestKernels_Values locks exact polynomial values at t=0.25.
func TestKernels_Values(t *testing.T) {
	const x = 0.25
	assert.Equal(t, 0.25, interp.Linear{}.Value(x))
	assert.InDelta(t, x*x*(3-2*x), interp.Smoothstep{}.Value(x), 1e-15)
	assert.InDelta(t, 0.103515625, interp.Smootherstep{}.Value(x), 1e-15)
}

// TestKernels_NoClamp documents that kernels do not clamp out-of-range input.
func TestKernels_NoClamp(t *testing.T) {
	assert.Equal(t, 2.0, interp.Linear{}.Value(2))
	assert.InDelta(t, -4.0, interp.Smoothstep{}.Value(2), 1e-15)
}

func TestLerp(t *testing.T) {
	assert.Equal(t, 2.0, interp.Lerp(2, 6, 0))
	assert.Equal(t, 6.0, interp.Lerp(2, 6, 1))
	assert.Equal(t, 4.0, interp.Lerp(2, 6, 0.5))
	assert.Equal(t, 10.0, interp.Lerp(2, 6, 2), "lerp itself is unclamped")
}

// TestBlend_Clamps verifies the blend helpers clamp t into [0,1].
func TestBlend_Clamps(t *testing.T) {
	assert.Equal(t, 6.0, interp.LinearBlend(2, 6, 5))
	assert.Equal(t, 2.0, interp.LinearBlend(2, 6, -1))
	assert.Equal(t, 3.0, interp.LinearBlend(2, 6, 0.25))
	assert.InDelta(t, 4.0, interp.Hermite3Blend(2, 6, 0.5), 1e-15)
	assert.InDelta(t, 4.0, interp.Hermite5Blend(2, 6, 0.5), 1e-15)
	assert.Equal(t, 6.0, interp.Hermite5Blend(2, 6, 1))
}

func TestFunc(t *testing.T) {
	sq := interp.Func(func(t float64) float64 { return t * t })
	assert.Equal(t, 0.25, sq.Value(0.5))
}
