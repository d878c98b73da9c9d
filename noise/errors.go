// SPDX-License-Identifier: MIT
// Package: gradnoise/noise
//
// errors.go - sentinel errors for the noise package.
//
// Error policy:
//   • Constructors validate and return these sentinels; they never panic.
//   • Option constructors (WithX) panic on meaningless values.
//   • ValueAt never fails; Eval reports lookup errors for bounded providers.

package noise

import (
	"errors"
	"fmt"
)

// ErrInvalidFrequency indicates a frequency component that is not finite
// and strictly positive.
var ErrInvalidFrequency = errors.New("noise: frequency must be finite and > 0")

// ErrFrequencyExceedsExtent indicates a frequency larger than the number of
// cells a bounded gradient provider can serve.
var ErrFrequencyExceedsExtent = errors.New("noise: frequency exceeds gradient extent")

// ErrNilProvider indicates a nil gradient provider.
var ErrNilProvider = errors.New("noise: gradient provider is nil")

// ErrNoOctaves indicates a query that needs at least one octave.
var ErrNoOctaves = errors.New("noise: octave sequence is empty")

// ErrNegativeOctaves indicates a negative octave count.
var ErrNegativeOctaves = errors.New("noise: octave count must be >= 0")

// ErrInvalidPersistence indicates a persistence that is not finite and > 0.
var ErrInvalidPersistence = errors.New("noise: persistence must be finite and > 0")

// ErrInvalidScaling indicates a frequency scaling component that is not
// finite and > 0.
var ErrInvalidScaling = errors.New("noise: frequency scaling must be finite and > 0")

// ErrNilFactory indicates a nil octave factory.
var ErrNilFactory = errors.New("noise: octave factory is nil")

// ErrInvalidSize indicates a non-positive sampling grid size.
var ErrInvalidSize = errors.New("noise: sample size must be > 0")

// ErrInvalidParams indicates invalid parameters for an external generator.
var ErrInvalidParams = errors.New("noise: invalid generator parameters")

// noiseErrorf attaches method context to a sentinel.
func noiseErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
