// SPDX-License-Identifier: MIT

package adapter

import (
	"github.com/katalvlaran/gradnoise/noise"
	"github.com/katalvlaran/gradnoise/point"
)

// Extension2D lifts a 1D source into 2D by ignoring the y axis.
type Extension2D struct {
	inner noise.Noise1D
}

// NewExtension2D panics on a nil source.
func NewExtension2D(inner noise.Noise1D) *Extension2D {
	mustSource("NewExtension2D", inner)

	return &Extension2D{inner: inner}
}

func (e *Extension2D) ValueAt(p point.P2) float64 { return e.inner.ValueAt(point.P1(p[0])) }

// Frequency reports 1 on the ignored axis.
func (e *Extension2D) Frequency() point.P2 {
	return point.P2{float64(e.inner.Frequency()), 1}
}

func (e *Extension2D) Inner() noise.Noise1D { return e.inner }

// Extension3D lifts a 2D source into 3D by ignoring the z axis.
type Extension3D struct {
	inner noise.Noise2D
}

// NewExtension3D panics on a nil source.
func NewExtension3D(inner noise.Noise2D) *Extension3D {
	mustSource("NewExtension3D", inner)

	return &Extension3D{inner: inner}
}

func (e *Extension3D) ValueAt(p point.P3) float64 {
	return e.inner.ValueAt(point.P2{p[0], p[1]})
}

// Frequency reports 1 on the ignored axis.
func (e *Extension3D) Frequency() point.P3 {
	f := e.inner.Frequency()
	return point.P3{f[0], f[1], 1}
}

func (e *Extension3D) Inner() noise.Noise2D { return e.inner }

// Slice1D samples a 2D source along the line y = at.
type Slice1D struct {
	inner noise.Noise2D
	at    float64
}

// NewSlice1D panics on a nil source.
func NewSlice1D(inner noise.Noise2D, at float64) *Slice1D {
	mustSource("NewSlice1D", inner)

	return &Slice1D{inner: inner, at: at}
}

func (s *Slice1D) ValueAt(p point.P1) float64 {
	return s.inner.ValueAt(point.P2{float64(p), s.at})
}

// Frequency drops the fixed axis.
func (s *Slice1D) Frequency() point.P1 { return point.P1(s.inner.Frequency()[0]) }

func (s *Slice1D) Inner() noise.Noise2D { return s.inner }

// At returns the fixed y coordinate.
func (s *Slice1D) At() float64 { return s.at }

// Slice2D samples a 3D source on the plane z = at.
type Slice2D struct {
	inner noise.Noise3D
	at    float64
}

// NewSlice2D panics on a nil source.
func NewSlice2D(inner noise.Noise3D, at float64) *Slice2D {
	mustSource("NewSlice2D", inner)

	return &Slice2D{inner: inner, at: at}
}

func (s *Slice2D) ValueAt(p point.P2) float64 {
	return s.inner.ValueAt(point.P3{p[0], p[1], s.at})
}

func (s *Slice2D) Frequency() point.P2 {
	f := s.inner.Frequency()
	return point.P2{f[0], f[1]}
}

func (s *Slice2D) Inner() noise.Noise3D { return s.inner }

func (s *Slice2D) At() float64 { return s.at }

// Slice3D samples a 4D source in the hyperplane w = at. Sweeping at over a
// 4D field animates a 3D volume.
type Slice3D struct {
	inner noise.Noise4D
	at    float64
}

// NewSlice3D panics on a nil source.
func NewSlice3D(inner noise.Noise4D, at float64) *Slice3D {
	mustSource("NewSlice3D", inner)

	return &Slice3D{inner: inner, at: at}
}

func (s *Slice3D) ValueAt(p point.P3) float64 {
	return s.inner.ValueAt(point.P4{p[0], p[1], p[2], s.at})
}

func (s *Slice3D) Frequency() point.P3 {
	f := s.inner.Frequency()
	return point.P3{f[0], f[1], f[2]}
}

func (s *Slice3D) Inner() noise.Noise4D { return s.inner }

func (s *Slice3D) At() float64 { return s.at }
