// SPDX-License-Identifier: MIT

package gradient

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/katalvlaran/gradnoise/rng"
)

// Builder produces one gradient per call. Builders own their random state
// and are used only during construction.
type Builder[G any] interface {
	MakeGradient() G
}

var (
	_ Builder[float64]    = (*RandomBuilder1D)(nil)
	_ Builder[float64]    = (*CubeBuilder1D)(nil)
	_ Builder[mgl64.Vec2] = (*RandomBuilder2D)(nil)
	_ Builder[mgl64.Vec2] = (*CubeBuilder2D)(nil)
	_ Builder[mgl64.Vec3] = (*RandomBuilder3D)(nil)
)

// RandomBuilder1D draws scalar gradients uniformly from [-1, 1).
type RandomBuilder1D struct{ src rng.Source }

// NewRandomBuilder1D returns a builder drawing from src.
func NewRandomBuilder1D(src rng.Source) (*RandomBuilder1D, error) {
	if src == nil {
		return nil, wrapf("NewRandomBuilder1D", rng.ErrNilSource)
	}

	return &RandomBuilder1D{src: src}, nil
}

// MakeGradient returns 2u-1 for u uniform in [0, 1).
func (b *RandomBuilder1D) MakeGradient() float64 {
	return b.src.Float64()*2.0 - 1.0
}

// CubeBuilder1D draws -1 or +1 with equal probability.
type CubeBuilder1D struct{ src rng.Source }

// NewCubeBuilder1D returns a builder drawing from src.
func NewCubeBuilder1D(src rng.Source) (*CubeBuilder1D, error) {
	if src == nil {
		return nil, wrapf("NewCubeBuilder1D", rng.ErrNilSource)
	}

	return &CubeBuilder1D{src: src}, nil
}

// MakeGradient returns ±1.
func (b *CubeBuilder1D) MakeGradient() float64 {
	if b.src.Intn(2) == 0 {
		return -1.0
	}

	return 1.0
}

// RandomBuilder2D draws unit vectors at a uniform angle in [0, 2π).
type RandomBuilder2D struct{ src rng.Source }

// NewRandomBuilder2D returns a builder drawing from src.
func NewRandomBuilder2D(src rng.Source) (*RandomBuilder2D, error) {
	if src == nil {
		return nil, wrapf("NewRandomBuilder2D", rng.ErrNilSource)
	}

	return &RandomBuilder2D{src: src}, nil
}

// MakeGradient returns (cos θ, sin θ).
func (b *RandomBuilder2D) MakeGradient() mgl64.Vec2 {
	theta := b.src.Float64() * 2.0 * math.Pi
	sin, cos := math.Sincos(theta)

	return mgl64.Vec2{cos, sin}
}

// cubeCorners2D are the four diagonal unit vectors (±1, ±1)/√2.
var cubeCorners2D = [4]mgl64.Vec2{
	{-math.Sqrt2 / 2, -math.Sqrt2 / 2},
	{math.Sqrt2 / 2, -math.Sqrt2 / 2},
	{-math.Sqrt2 / 2, math.Sqrt2 / 2},
	{math.Sqrt2 / 2, math.Sqrt2 / 2},
}

// CubeBuilder2D picks one of the four diagonal unit vectors uniformly.
type CubeBuilder2D struct{ src rng.Source }

// NewCubeBuilder2D returns a builder drawing from src.
func NewCubeBuilder2D(src rng.Source) (*CubeBuilder2D, error) {
	if src == nil {
		return nil, wrapf("NewCubeBuilder2D", rng.ErrNilSource)
	}

	return &CubeBuilder2D{src: src}, nil
}

// MakeGradient returns (±1, ±1)/√2.
func (b *CubeBuilder2D) MakeGradient() mgl64.Vec2 {
	return cubeCorners2D[b.src.Intn(len(cubeCorners2D))]
}

// RandomBuilder3D draws unit vectors from spherical angles
// θ ∈ [0, π) and φ ∈ [0, 2π).
type RandomBuilder3D struct{ src rng.Source }

// NewRandomBuilder3D returns a builder drawing from src.
func NewRandomBuilder3D(src rng.Source) (*RandomBuilder3D, error) {
	if src == nil {
		return nil, wrapf("NewRandomBuilder3D", rng.ErrNilSource)
	}

	return &RandomBuilder3D{src: src}, nil
}

// MakeGradient returns (sin θ cos φ, sin θ sin φ, cos θ).
// θ is a [0, 2π) sample halved; it is drawn before φ.
func (b *RandomBuilder3D) MakeGradient() mgl64.Vec3 {
	theta := b.src.Float64() * 2.0 * math.Pi / 2.0
	phi := b.src.Float64() * 2.0 * math.Pi

	sinT, cosT := math.Sincos(theta)
	sinP, cosP := math.Sincos(phi)

	return mgl64.Vec3{sinT * cosP, sinT * sinP, cosT}
}

// cubeTable2D is the fixed 12-entry gradient set: the four axis directions
// twice and the four diagonals.
var cubeTable2D = []mgl64.Vec2{
	{1, 0}, {0, -1}, {-1, 0}, {0, 1},
	{1, 0}, {0, -1}, {-1, 0}, {0, 1},
	{math.Sqrt2 / 2, math.Sqrt2 / 2},
	{math.Sqrt2 / 2, -math.Sqrt2 / 2},
	{-math.Sqrt2 / 2, -math.Sqrt2 / 2},
	{-math.Sqrt2 / 2, math.Sqrt2 / 2},
}

// CubeTable2D returns the fixed 12-gradient set behind a fresh permutation
// of DefaultPermutationSize entries drawn from src.
func CubeTable2D(src rng.Source) (*PermutedTable[mgl64.Vec2], error) {
	return PermutedFromValues(src, cubeTable2D)
}
