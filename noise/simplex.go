// SPDX-License-Identifier: MIT

package noise

import (
	"fmt"

	"github.com/ojrac/opensimplex-go"

	"github.com/katalvlaran/gradnoise/point"
	"github.com/katalvlaran/gradnoise/rng"
)

// simplexSeed draws the seed for an OpenSimplex instance from src.
func simplexSeed(method string, src rng.Source) (int64, error) {
	if src == nil {
		return 0, noiseErrorf(method, rng.ErrNilSource)
	}

	return src.Int63(), nil
}

// Simplex2D is OpenSimplex noise over a plane, sampled at p·freq.
// Output lies roughly in [-1, 1].
type Simplex2D struct {
	freq point.P2
	os   opensimplex.Noise
}

// NewSimplex2D seeds a new OpenSimplex field from src.
func NewSimplex2D(src rng.Source, freq point.P2) (*Simplex2D, error) {
	if !validFrequency(freq) {
		return nil, noiseErrorf(fmt.Sprintf("NewSimplex2D(freq=%v)", freq), ErrInvalidFrequency)
	}
	seed, err := simplexSeed("NewSimplex2D", src)
	if err != nil {
		return nil, err
	}

	return &Simplex2D{freq: freq, os: opensimplex.New(seed)}, nil
}

// ValueAt evaluates the field at p.
func (n *Simplex2D) ValueAt(p point.P2) float64 {
	return n.os.Eval2(p[0]*n.freq[0], p[1]*n.freq[1])
}

// Frequency returns the sampling frequency.
func (n *Simplex2D) Frequency() point.P2 { return n.freq }

// Simplex3D is OpenSimplex noise over a volume.
type Simplex3D struct {
	freq point.P3
	os   opensimplex.Noise
}

// NewSimplex3D seeds a new OpenSimplex field from src.
func NewSimplex3D(src rng.Source, freq point.P3) (*Simplex3D, error) {
	if !validFrequency(freq) {
		return nil, noiseErrorf(fmt.Sprintf("NewSimplex3D(freq=%v)", freq), ErrInvalidFrequency)
	}
	seed, err := simplexSeed("NewSimplex3D", src)
	if err != nil {
		return nil, err
	}

	return &Simplex3D{freq: freq, os: opensimplex.New(seed)}, nil
}

// ValueAt evaluates the field at p.
func (n *Simplex3D) ValueAt(p point.P3) float64 {
	return n.os.Eval3(p[0]*n.freq[0], p[1]*n.freq[1], p[2]*n.freq[2])
}

// Frequency returns the sampling frequency.
func (n *Simplex3D) Frequency() point.P3 { return n.freq }

// Simplex4D is OpenSimplex noise over four dimensions, useful for looping
// animations of a 3D field.
type Simplex4D struct {
	freq point.P4
	os   opensimplex.Noise
}

// NewSimplex4D seeds a new OpenSimplex field from src.
func NewSimplex4D(src rng.Source, freq point.P4) (*Simplex4D, error) {
	if !validFrequency(freq) {
		return nil, noiseErrorf(fmt.Sprintf("NewSimplex4D(freq=%v)", freq), ErrInvalidFrequency)
	}
	seed, err := simplexSeed("NewSimplex4D", src)
	if err != nil {
		return nil, err
	}

	return &Simplex4D{freq: freq, os: opensimplex.New(seed)}, nil
}

// ValueAt evaluates the field at p.
func (n *Simplex4D) ValueAt(p point.P4) float64 {
	return n.os.Eval4(p[0]*n.freq[0], p[1]*n.freq[1], p[2]*n.freq[2], p[3]*n.freq[3])
}

// Frequency returns the sampling frequency.
func (n *Simplex4D) Frequency() point.P4 { return n.freq }

var (
	_ Noise2D = (*Simplex2D)(nil)
	_ Noise3D = (*Simplex3D)(nil)
	_ Noise4D = (*Simplex4D)(nil)
)
