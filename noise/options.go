// SPDX-License-Identifier: MIT
// Package: gradnoise/noise
//
// options.go - functional options shared by Perlin, Fbm and Sampler
// constructors.
//
// Contract:
//   • Options are functional (type Option func(*config)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors and evaluation never panic.
//   • Each constructor reads only the fields it needs; the rest are ignored.

package noise

import (
	"math"

	"github.com/katalvlaran/gradnoise/interp"
)

// Defaults used when an option is not supplied.
const (
	DefaultFrequency   = 1.0
	DefaultScaling     = 2.0
	DefaultPersistence = 2.0
	DefaultOctaves     = 8
	DefaultTableSize   = 256
	// DefaultWorkers of 0 means runtime.GOMAXPROCS(0).
	DefaultWorkers = 0
)

// Option customizes a constructor by mutating config before use.
type Option func(*config)

type config struct {
	interp      interp.Interpolator
	frequency   float64
	scaling     float64
	persistence float64
	octaves     int
	tableSize   int
	workers     int
}

// newConfig applies opts over the defaults.
func newConfig(opts ...Option) config {
	cfg := config{
		interp:      interp.Smootherstep{},
		frequency:   DefaultFrequency,
		scaling:     DefaultScaling,
		persistence: DefaultPersistence,
		octaves:     DefaultOctaves,
		tableSize:   DefaultTableSize,
		workers:     DefaultWorkers,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// options returns cfg as a replayable option list.
func (c config) options() []Option {
	return []Option{
		WithInterpolator(c.interp),
		WithFrequency(c.frequency),
		WithScaling(c.scaling),
		WithPersistence(c.persistence),
		WithOctaves(c.octaves),
		WithTableSize(c.tableSize),
		WithWorkers(c.workers),
	}
}

// WithInterpolator sets the kernel used across each lattice cell.
// Default: interp.Smootherstep. Panics on nil.
func WithInterpolator(k interp.Interpolator) Option {
	if k == nil {
		panic("noise: WithInterpolator(nil)")
	}
	return func(c *config) {
		c.interp = k
	}
}

// WithFrequency sets the base frequency applied to every axis (Fbm).
// Panics unless f is finite and > 0.
func WithFrequency(f float64) Option {
	if !positiveFinite(f) {
		panic("noise: WithFrequency requires a finite value > 0")
	}
	return func(c *config) {
		c.frequency = f
	}
}

// WithScaling sets the per-octave frequency multiplier (Fbm).
// Panics unless s is finite and > 0.
func WithScaling(s float64) Option {
	if !positiveFinite(s) {
		panic("noise: WithScaling requires a finite value > 0")
	}
	return func(c *config) {
		c.scaling = s
	}
}

// WithPersistence sets ρ, the amplitude decay between octaves (Fbm).
// Panics unless p is finite and > 0.
func WithPersistence(p float64) Option {
	if !positiveFinite(p) {
		panic("noise: WithPersistence requires a finite value > 0")
	}
	return func(c *config) {
		c.persistence = p
	}
}

// WithOctaves sets the octave count (Fbm). Zero is allowed and yields an
// empty sum. Panics on n < 0.
func WithOctaves(n int) Option {
	if n < 0 {
		panic("noise: WithOctaves(n<0)")
	}
	return func(c *config) {
		c.octaves = n
	}
}

// WithTableSize sets the number of gradients per octave table (Fbm).
// Panics on n <= 0.
func WithTableSize(n int) Option {
	if n <= 0 {
		panic("noise: WithTableSize(n<=0)")
	}
	return func(c *config) {
		c.tableSize = n
	}
}

// WithWorkers bounds the goroutines used by Sampler. 0 means GOMAXPROCS.
// Panics on n < 0.
func WithWorkers(n int) Option {
	if n < 0 {
		panic("noise: WithWorkers(n<0)")
	}
	return func(c *config) {
		c.workers = n
	}
}

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}
