// SPDX-License-Identifier: MIT

package noise_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gradnoise/interp"
	"github.com/katalvlaran/gradnoise/noise"
	"github.com/katalvlaran/gradnoise/point"
	"github.com/katalvlaran/gradnoise/rng"
)

func TestFbm2D_Defaults(t *testing.T) {
	f, err := noise.NewFbm2D(rng.FromSeed(1))
	require.NoError(t, err)

	assert.Equal(t, noise.DefaultOctaves, f.NumOctaves())
	assert.Equal(t, noise.DefaultFrequency, f.BaseFrequency())
	assert.Equal(t, noise.DefaultScaling, f.Scaling())
	assert.Equal(t, noise.DefaultPersistence, f.Persistence())
	assert.Equal(t, point.P2{2, 2}, f.Frequency(), "first octave is initial·scaling")

	var total float64
	for _, a := range f.Octaves().Amplitudes() {
		total += a
	}
	assert.InDelta(t, 1.0, total, 1e-12)
}

// TestFbm_SameSeedSameField checks that construction is reproducible.
func TestFbm_SameSeedSameField(t *testing.T) {
	a, err := noise.NewFbm3D(rng.FromSeed(42), noise.WithOctaves(4))
	require.NoError(t, err)
	b, err := noise.NewFbm3D(rng.FromSeed(42), noise.WithOctaves(4))
	require.NoError(t, err)
	c, err := noise.NewFbm3D(rng.FromSeed(43), noise.WithOctaves(4))
	require.NoError(t, err)

	p := point.P3{0.12, 0.34, 0.56}
	assert.Equal(t, a.ValueAt(p), b.ValueAt(p))
	assert.NotEqual(t, a.ValueAt(p), c.ValueAt(p))
}

func TestFbm1D_Range(t *testing.T) {
	f, err := noise.NewFbm1D(rng.FromSeed(7), noise.WithOctaves(6), noise.WithFrequency(3))
	require.NoError(t, err)

	for i := 0; i < 5000; i++ {
		v := f.ValueAt(point.P1(float64(i) / 5000))
		require.LessOrEqual(t, math.Abs(v), 1.0+1e-9)
	}
}

// TestFbm_Rebuild verifies Rebuild keeps settings, applies overrides and
// leaves the receiver untouched.
func TestFbm_Rebuild(t *testing.T) {
	f, err := noise.NewFbm2D(rng.FromSeed(1), noise.WithOctaves(3), noise.WithPersistence(1.5))
	require.NoError(t, err)
	before := f.ValueAt(point.P2{0.3, 0.3})

	g, err := f.Rebuild(rng.FromSeed(2), noise.WithOctaves(5), noise.WithInterpolator(interp.Smoothstep{}))
	require.NoError(t, err)
	assert.Equal(t, 5, g.NumOctaves())
	assert.Equal(t, 1.5, g.Persistence())
	assert.Equal(t, 3, f.NumOctaves())
	assert.Equal(t, before, f.ValueAt(point.P2{0.3, 0.3}))

	same, err := f.Rebuild(rng.FromSeed(1))
	require.NoError(t, err)
	assert.Equal(t, before, same.ValueAt(point.P2{0.3, 0.3}))

	_, err = f.Rebuild(nil)
	assert.ErrorIs(t, err, rng.ErrNilSource)
}

func TestFbm_ZeroOctaves(t *testing.T) {
	f, err := noise.NewFbm2D(rng.FromSeed(1), noise.WithOctaves(0))
	require.NoError(t, err)
	assert.Equal(t, 0.0, f.ValueAt(point.P2{0.5, 0.5}))
	assert.Equal(t, point.P2{}, f.Frequency())
}

func TestFbm_Errors(t *testing.T) {
	_, err := noise.NewFbm2D(nil)
	assert.ErrorIs(t, err, rng.ErrNilSource)

	assert.Panics(t, func() { noise.WithFrequency(0) })
	assert.Panics(t, func() { noise.WithScaling(math.Inf(1)) })
	assert.Panics(t, func() { noise.WithPersistence(-1) })
	assert.Panics(t, func() { noise.WithOctaves(-1) })
	assert.Panics(t, func() { noise.WithTableSize(0) })
	assert.Panics(t, func() { noise.WithWorkers(-1) })
}
