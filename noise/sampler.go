// SPDX-License-Identifier: MIT

package noise

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gradnoise/grid"
	"github.com/katalvlaran/gradnoise/point"
)

// Sampler evaluates a composed field over a regular grid of the unit
// square/cube using a bounded pool of goroutines. Cell (x, y) is sampled at
// (x/width, y/height).
//
// The sampled field must honor the Noise contract (ValueAt is pure); every
// type in this module does. The zero Sampler is ready to use and runs
// GOMAXPROCS workers.
type Sampler struct {
	workers int
}

// NewSampler creates a sampler. Recognized option: WithWorkers.
func NewSampler(opts ...Option) *Sampler {
	cfg := newConfig(opts...)

	return &Sampler{workers: cfg.workers}
}

// Workers returns the goroutine limit; 0 configured means GOMAXPROCS.
func (s *Sampler) Workers() int {
	if s.workers <= 0 {
		return runtime.GOMAXPROCS(0)
	}

	return s.workers
}

// Sample1D evaluates n at x/width for x in [0, width).
func (s *Sampler) Sample1D(ctx context.Context, n Noise1D, width int) (*grid.Grid1D[float64], error) {
	if width <= 0 {
		return nil, noiseErrorf(fmt.Sprintf("Sampler.Sample1D(%d)", width), ErrInvalidSize)
	}
	data := make([]float64, width)
	err := s.rows(ctx, 1, func(int) {
		var x int
		for x = 0; x < width; x++ {
			data[x] = n.ValueAt(point.P1(float64(x) / float64(width)))
		}
	})
	if err != nil {
		return nil, noiseErrorf("Sampler.Sample1D", err)
	}

	return grid.FromData1D(data)
}

// Sample2D evaluates n over a width×height grid, one row per task.
func (s *Sampler) Sample2D(ctx context.Context, n Noise2D, width, height int) (*grid.Grid2D[float64], error) {
	if width <= 0 || height <= 0 {
		return nil, noiseErrorf(fmt.Sprintf("Sampler.Sample2D(%d,%d)", width, height), ErrInvalidSize)
	}
	data := make([]float64, width*height)
	err := s.rows(ctx, height, func(y int) {
		fy := float64(y) / float64(height)
		row := data[y*width : (y+1)*width]
		var x int
		for x = 0; x < width; x++ {
			row[x] = n.ValueAt(point.P2{float64(x) / float64(width), fy})
		}
	})
	if err != nil {
		return nil, noiseErrorf("Sampler.Sample2D", err)
	}

	return grid.FromData2D(width, height, data)
}

// Sample3D evaluates n over a width×height×depth grid, one (y, z) row per
// task.
func (s *Sampler) Sample3D(ctx context.Context, n Noise3D, width, height, depth int) (*grid.Grid3D[float64], error) {
	if width <= 0 || height <= 0 || depth <= 0 {
		return nil, noiseErrorf(fmt.Sprintf("Sampler.Sample3D(%d,%d,%d)", width, height, depth), ErrInvalidSize)
	}
	data := make([]float64, width*height*depth)
	err := s.rows(ctx, height*depth, func(r int) {
		y, z := r%height, r/height
		fy := float64(y) / float64(height)
		fz := float64(z) / float64(depth)
		row := data[r*width : (r+1)*width]
		var x int
		for x = 0; x < width; x++ {
			row[x] = n.ValueAt(point.P3{float64(x) / float64(width), fy, fz})
		}
	})
	if err != nil {
		return nil, noiseErrorf("Sampler.Sample3D", err)
	}

	return grid.FromData3D(width, height, depth, data)
}

// rows runs fill(r) for r in [0, count) on at most s.Workers() goroutines.
// Rows not yet started when ctx is cancelled are skipped.
func (s *Sampler) rows(ctx context.Context, count int, fill func(r int)) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.Workers())

	var r int
	for r = 0; r < count; r++ {
		if gctx.Err() != nil {
			break
		}
		row := r
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			fill(row)

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	return ctx.Err()
}
