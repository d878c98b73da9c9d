// SPDX-License-Identifier: MIT
// Package: gradnoise/gradient
//
// errors.go - sentinel errors for the gradient package.
//
// Error policy:
//   • Only sentinel variables are exposed; branch with errors.Is.
//   • Context is attached at the detection site with %w.
//   • Lookups never panic; out-of-range grid access surfaces grid.ErrOutOfRange.

package gradient

import (
	"errors"
	"fmt"
)

// ErrEmptyTable indicates that a permutation or gradient table of size <= 0
// was requested.
var ErrEmptyTable = errors.New("gradient: table size must be > 0")

// ErrNotPermutation indicates that supplied values are not a bijection on
// 0..n-1.
var ErrNotPermutation = errors.New("gradient: values are not a permutation")

// ErrNotPowerOfTwo indicates that a permutation table used for lattice
// hashing does not have a power-of-two length.
var ErrNotPowerOfTwo = errors.New("gradient: permutation size must be a power of two")

// ErrOutOfRange indicates a checked table index outside [0, Len()).
var ErrOutOfRange = errors.New("gradient: index out of range")

// ErrNilBuilder indicates that a nil gradient builder was supplied.
var ErrNilBuilder = errors.New("gradient: builder is nil")

// ErrInvalidFrequency indicates a non-positive or non-finite frequency passed
// to a factory.
var ErrInvalidFrequency = errors.New("gradient: frequency must be finite and > 0")

// wrapf attaches method context to a sentinel or lower-level error.
func wrapf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
