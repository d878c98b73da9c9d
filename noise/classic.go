// SPDX-License-Identifier: MIT

package noise

import (
	"fmt"

	"github.com/aquilax/go-perlin"

	"github.com/katalvlaran/gradnoise/point"
	"github.com/katalvlaran/gradnoise/rng"
)

// Classic noise parameters: alpha is the weight divisor between octaves
// (larger is smoother), beta the harmonic scaling, n the octave count.
const (
	DefaultClassicAlpha   = 2.0
	DefaultClassicBeta    = 2.0
	DefaultClassicOctaves = 3
)

// ClassicParams configures the Bourke-style octave Perlin generator.
type ClassicParams struct {
	Alpha   float64
	Beta    float64
	Octaves int32
}

// DefaultClassicParams returns alpha=2, beta=2, 3 octaves.
func DefaultClassicParams() ClassicParams {
	return ClassicParams{Alpha: DefaultClassicAlpha, Beta: DefaultClassicBeta, Octaves: DefaultClassicOctaves}
}

func newClassic(method string, src rng.Source, params ClassicParams) (*perlin.Perlin, error) {
	if src == nil {
		return nil, noiseErrorf(method, rng.ErrNilSource)
	}
	if params.Octaves <= 0 {
		return nil, noiseErrorf(fmt.Sprintf("%s(octaves=%d)", method, params.Octaves), ErrInvalidParams)
	}
	if !positiveFinite(params.Alpha) || !positiveFinite(params.Beta) {
		return nil, noiseErrorf(fmt.Sprintf("%s(alpha=%v, beta=%v)", method, params.Alpha, params.Beta), ErrInvalidParams)
	}

	return perlin.NewPerlin(params.Alpha, params.Beta, params.Octaves, src.Int63()), nil
}

// Classic1D wraps the classic reference Perlin generator as a Noise source.
// Its output is not normalized to [-1, 1]; wrap it in adapter.Clamp or
// adapter.Scale when a bounded range matters.
type Classic1D struct {
	freq point.P1
	p    *perlin.Perlin
}

// NewClassic1D seeds a classic generator from src.
func NewClassic1D(src rng.Source, freq point.P1, params ClassicParams) (*Classic1D, error) {
	if !validFrequency(freq) {
		return nil, noiseErrorf(fmt.Sprintf("NewClassic1D(freq=%v)", freq), ErrInvalidFrequency)
	}
	p, err := newClassic("NewClassic1D", src, params)
	if err != nil {
		return nil, err
	}

	return &Classic1D{freq: freq, p: p}, nil
}

// ValueAt evaluates the generator at p·freq.
func (n *Classic1D) ValueAt(p point.P1) float64 {
	return n.p.Noise1D(float64(p) * float64(n.freq))
}

// Frequency returns the sampling frequency.
func (n *Classic1D) Frequency() point.P1 { return n.freq }

// Classic2D wraps the classic generator over a plane.
type Classic2D struct {
	freq point.P2
	p    *perlin.Perlin
}

// NewClassic2D seeds a classic generator from src.
func NewClassic2D(src rng.Source, freq point.P2, params ClassicParams) (*Classic2D, error) {
	if !validFrequency(freq) {
		return nil, noiseErrorf(fmt.Sprintf("NewClassic2D(freq=%v)", freq), ErrInvalidFrequency)
	}
	p, err := newClassic("NewClassic2D", src, params)
	if err != nil {
		return nil, err
	}

	return &Classic2D{freq: freq, p: p}, nil
}

// ValueAt evaluates the generator at p·freq.
func (n *Classic2D) ValueAt(p point.P2) float64 {
	return n.p.Noise2D(p[0]*n.freq[0], p[1]*n.freq[1])
}

// Frequency returns the sampling frequency.
func (n *Classic2D) Frequency() point.P2 { return n.freq }

// Classic3D wraps the classic generator over a volume.
type Classic3D struct {
	freq point.P3
	p    *perlin.Perlin
}

// NewClassic3D seeds a classic generator from src.
func NewClassic3D(src rng.Source, freq point.P3, params ClassicParams) (*Classic3D, error) {
	if !validFrequency(freq) {
		return nil, noiseErrorf(fmt.Sprintf("NewClassic3D(freq=%v)", freq), ErrInvalidFrequency)
	}
	p, err := newClassic("NewClassic3D", src, params)
	if err != nil {
		return nil, err
	}

	return &Classic3D{freq: freq, p: p}, nil
}

// ValueAt evaluates the generator at p·freq.
func (n *Classic3D) ValueAt(p point.P3) float64 {
	return n.p.Noise3D(p[0]*n.freq[0], p[1]*n.freq[1], p[2]*n.freq[2])
}

// Frequency returns the sampling frequency.
func (n *Classic3D) Frequency() point.P3 { return n.freq }

var (
	_ Noise1D = (*Classic1D)(nil)
	_ Noise2D = (*Classic2D)(nil)
	_ Noise3D = (*Classic3D)(nil)
)
