// SPDX-License-Identifier: MIT

package noise_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gradnoise/noise"
	"github.com/katalvlaran/gradnoise/point"
	"github.com/katalvlaran/gradnoise/rng"
)

// TestSampler2D_MatchesDirect compares concurrent sampling with a serial
// loop over the same field.
func TestSampler2D_MatchesDirect(t *testing.T) {
	f, err := noise.NewFbm2D(rng.FromSeed(11), noise.WithOctaves(4))
	require.NoError(t, err)

	s := noise.NewSampler(noise.WithWorkers(3))
	assert.Equal(t, 3, s.Workers())

	const w, h = 37, 23
	g, err := s.Sample2D(context.Background(), f, w, h)
	require.NoError(t, err)
	require.Equal(t, w, g.Width())
	require.Equal(t, h, g.Height())

	var x, y int
	for y = 0; y < h; y++ {
		for x = 0; x < w; x++ {
			v, err := g.At(x, y)
			require.NoError(t, err)
			require.Equal(t, f.ValueAt(point.P2{float64(x) / w, float64(y) / h}), v)
		}
	}
}

func TestSampler_1Dand3D(t *testing.T) {
	f1, err := noise.NewFbm1D(rng.FromSeed(1), noise.WithOctaves(2))
	require.NoError(t, err)
	f3, err := noise.NewFbm3D(rng.FromSeed(2), noise.WithOctaves(2))
	require.NoError(t, err)

	s := noise.NewSampler()
	assert.Positive(t, s.Workers())

	g1, err := s.Sample1D(context.Background(), f1, 16)
	require.NoError(t, err)
	v, err := g1.At(5)
	require.NoError(t, err)
	assert.Equal(t, f1.ValueAt(point.P1(5.0/16)), v)

	g3, err := s.Sample3D(context.Background(), f3, 4, 5, 6)
	require.NoError(t, err)
	v, err = g3.At(3, 4, 5)
	require.NoError(t, err)
	assert.Equal(t, f3.ValueAt(point.P3{3.0 / 4, 4.0 / 5, 5.0 / 6}), v)
}

// TestSampler_ZeroValue samples with an unconfigured Sampler.
func TestSampler_ZeroValue(t *testing.T) {
	f, err := noise.NewFbm1D(rng.FromSeed(1), noise.WithOctaves(2))
	require.NoError(t, err)

	var s noise.Sampler
	assert.Positive(t, s.Workers())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	done := make(chan error, 1)
	go func() {
		_, err := s.Sample1D(ctx, f, 4)
		done <- err
	}()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-ctx.Done():
		t.Fatal("zero-value Sampler did not finish")
	}
}

func TestSampler_Errors(t *testing.T) {
	f, err := noise.NewFbm2D(rng.FromSeed(1), noise.WithOctaves(1))
	require.NoError(t, err)
	s := noise.NewSampler(noise.WithWorkers(2))

	_, err = s.Sample2D(context.Background(), f, 0, 4)
	assert.ErrorIs(t, err, noise.ErrInvalidSize)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = s.Sample2D(ctx, f, 64, 64)
	assert.ErrorIs(t, err, context.Canceled)
}

// TestValueAt_ConcurrentReaders evaluates one composed field from many
// goroutines; run with -race to check the read-only invariant.
func TestValueAt_ConcurrentReaders(t *testing.T) {
	f, err := noise.NewFbm3D(rng.FromSeed(3), noise.WithOctaves(3))
	require.NoError(t, err)

	p := point.P3{0.25, 0.5, 0.75}
	want := f.ValueAt(p)

	var wg sync.WaitGroup
	errs := make(chan float64, 64)
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if v := f.ValueAt(p); v != want {
					errs <- v
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	assert.Empty(t, errs)
}
