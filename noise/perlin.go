// SPDX-License-Identifier: MIT

package noise

import (
	"fmt"
	"math"
	"reflect"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/katalvlaran/gradnoise/gradient"
	"github.com/katalvlaran/gradnoise/interp"
	"github.com/katalvlaran/gradnoise/point"
)

// Output scale per arity so results span roughly [-1, 1].
const (
	norm1D = 2.0
	norm2D = math.Sqrt2
	norm3D = math.Sqrt2
)

// checkProvider validates freq and, for bounded providers, that freq fits
// inside the provider's extent on every axis.
func checkProvider[P point.Point[P]](method string, freq P, provider any) error {
	if isNil(provider) {
		return noiseErrorf(method, ErrNilProvider)
	}
	if !validFrequency(freq) {
		return noiseErrorf(fmt.Sprintf("%s(freq=%v)", method, freq), ErrInvalidFrequency)
	}
	if b, ok := provider.(gradient.Bounded[P]); ok {
		ext := b.Extent()
		if !point.AllPairs(freq, ext, func(f, e float64) bool { return f <= e }) {
			return noiseErrorf(fmt.Sprintf("%s(freq=%v, extent=%v)", method, freq, ext), ErrFrequencyExceedsExtent)
		}
	}

	return nil
}

// isNil reports a nil interface or an interface holding a nil pointer,
// map, slice, func or chan.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}

// Perlin1D is gradient noise over a line.
type Perlin1D struct {
	freq   point.P1
	grads  gradient.Provider1D
	interp interp.Interpolator
}

// NewPerlin1D creates 1D gradient noise with freq cells per unit length.
//
// Errors: ErrNilProvider, ErrInvalidFrequency, and
// ErrFrequencyExceedsExtent when grads is bounded and too small.
func NewPerlin1D(freq point.P1, grads gradient.Provider1D, opts ...Option) (*Perlin1D, error) {
	if err := checkProvider("NewPerlin1D", freq, grads); err != nil {
		return nil, err
	}
	cfg := newConfig(opts...)

	return &Perlin1D{freq: freq, grads: grads, interp: cfg.interp}, nil
}

// Frequency returns the configured frequency.
func (n *Perlin1D) Frequency() point.P1 { return n.freq }

// Eval returns the noise value at p, or the provider's lookup error.
func (n *Perlin1D) Eval(p point.P1) (float64, error) {
	pos := [maxDim]float64{float64(p) * float64(n.freq)}
	v, err := latticeValue(1, &pos, n.interp, func(at *[maxDim]int, d *[maxDim]float64) (float64, error) {
		g, err := n.grads.Gradient1D(at[0])
		if err != nil {
			return 0, err
		}

		return g * d[0], nil
	})
	if err != nil {
		return 0, noiseErrorf(fmt.Sprintf("Perlin1D.Eval(%v)", p), err)
	}

	return v * norm1D, nil
}

// ValueAt returns the noise value at p, or NaN if p lies outside a bounded
// provider's lattice.
func (n *Perlin1D) ValueAt(p point.P1) float64 {
	v, err := n.Eval(p)
	if err != nil {
		return math.NaN()
	}

	return v
}

// Perlin2D is gradient noise over a plane.
type Perlin2D struct {
	freq   point.P2
	grads  gradient.Provider2D
	interp interp.Interpolator
}

// NewPerlin2D creates 2D gradient noise. See NewPerlin1D for errors.
func NewPerlin2D(freq point.P2, grads gradient.Provider2D, opts ...Option) (*Perlin2D, error) {
	if err := checkProvider("NewPerlin2D", freq, grads); err != nil {
		return nil, err
	}
	cfg := newConfig(opts...)

	return &Perlin2D{freq: freq, grads: grads, interp: cfg.interp}, nil
}

// Frequency returns the configured frequency.
func (n *Perlin2D) Frequency() point.P2 { return n.freq }

// Eval returns the noise value at p, or the provider's lookup error.
func (n *Perlin2D) Eval(p point.P2) (float64, error) {
	pos := [maxDim]float64{p[0] * n.freq[0], p[1] * n.freq[1]}
	v, err := latticeValue(2, &pos, n.interp, func(at *[maxDim]int, d *[maxDim]float64) (float64, error) {
		g, err := n.grads.Gradient2D(at[0], at[1])
		if err != nil {
			return 0, err
		}

		return g.Dot(mgl64.Vec2{d[0], d[1]}), nil
	})
	if err != nil {
		return 0, noiseErrorf(fmt.Sprintf("Perlin2D.Eval(%v)", p), err)
	}

	return v * norm2D, nil
}

// ValueAt returns the noise value at p, or NaN outside a bounded lattice.
func (n *Perlin2D) ValueAt(p point.P2) float64 {
	v, err := n.Eval(p)
	if err != nil {
		return math.NaN()
	}

	return v
}

// Perlin3D is gradient noise over a volume.
//
// With unit gradients the raw 3D field peaks at √3/2, so after scaling
// by √2 values can reach about ±1.2247.
type Perlin3D struct {
	freq   point.P3
	grads  gradient.Provider3D
	interp interp.Interpolator
}

// NewPerlin3D creates 3D gradient noise. See NewPerlin1D for errors.
func NewPerlin3D(freq point.P3, grads gradient.Provider3D, opts ...Option) (*Perlin3D, error) {
	if err := checkProvider("NewPerlin3D", freq, grads); err != nil {
		return nil, err
	}
	cfg := newConfig(opts...)

	return &Perlin3D{freq: freq, grads: grads, interp: cfg.interp}, nil
}

// Frequency returns the configured frequency.
func (n *Perlin3D) Frequency() point.P3 { return n.freq }

// Eval returns the noise value at p, or the provider's lookup error.
func (n *Perlin3D) Eval(p point.P3) (float64, error) {
	pos := [maxDim]float64{p[0] * n.freq[0], p[1] * n.freq[1], p[2] * n.freq[2]}
	v, err := latticeValue(3, &pos, n.interp, func(at *[maxDim]int, d *[maxDim]float64) (float64, error) {
		g, err := n.grads.Gradient3D(at[0], at[1], at[2])
		if err != nil {
			return 0, err
		}

		return g.Dot(mgl64.Vec3{d[0], d[1], d[2]}), nil
	})
	if err != nil {
		return 0, noiseErrorf(fmt.Sprintf("Perlin3D.Eval(%v)", p), err)
	}

	return v * norm3D, nil
}

// ValueAt returns the noise value at p, or NaN outside a bounded lattice.
func (n *Perlin3D) ValueAt(p point.P3) float64 {
	v, err := n.Eval(p)
	if err != nil {
		return math.NaN()
	}

	return v
}

var (
	_ Noise1D = (*Perlin1D)(nil)
	_ Noise2D = (*Perlin2D)(nil)
	_ Noise3D = (*Perlin3D)(nil)
)
