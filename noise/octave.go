// SPDX-License-Identifier: MIT

package noise

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/gradnoise/point"
)

// Octave scales one noise layer by a fixed amplitude.
type Octave[P point.Point[P]] struct {
	noise     Noise[P]
	amplitude float64
}

// NewOctave pairs n with amplitude. Panics on a nil n.
func NewOctave[P point.Point[P]](n Noise[P], amplitude float64) Octave[P] {
	if n == nil {
		panic("noise: NewOctave(nil)")
	}

	return Octave[P]{noise: n, amplitude: amplitude}
}

// ValueAt returns inner(p)·amplitude.
func (o Octave[P]) ValueAt(p P) float64 {
	return o.noise.ValueAt(p) * o.amplitude
}

// Frequency returns the inner layer's frequency.
func (o Octave[P]) Frequency() P { return o.noise.Frequency() }

// Amplitude returns the layer weight.
func (o Octave[P]) Amplitude() float64 { return o.amplitude }

// Noise returns the wrapped layer.
func (o Octave[P]) Noise() Noise[P] { return o.noise }

// String renders "Octave <freq, A=amp>".
func (o Octave[P]) String() string {
	return fmt.Sprintf("Octave <%v, A=%v>", o.Frequency(), o.amplitude)
}

// OctaveNoise sums a fixed sequence of octaves. Amplitudes are baked in at
// construction, so ValueAt performs no normalization.
type OctaveNoise[P point.Point[P]] struct {
	octaves []Octave[P]
}

// NewOctaveNoise copies octaves into a new sum. Zero octaves are allowed.
func NewOctaveNoise[P point.Point[P]](octaves ...Octave[P]) *OctaveNoise[P] {
	out := make([]Octave[P], len(octaves))
	copy(out, octaves)

	return &OctaveNoise[P]{octaves: out}
}

// ValueAt returns Σ octave(p); 0 for an empty sequence.
func (o *OctaveNoise[P]) ValueAt(p P) float64 {
	var sum float64
	for i := range o.octaves {
		sum += o.octaves[i].ValueAt(p)
	}

	return sum
}

// Frequency returns the first octave's frequency, or the zero point when the
// sequence is empty. Use LeadFrequency to tell the two apart.
func (o *OctaveNoise[P]) Frequency() P {
	f, err := o.LeadFrequency()
	if err != nil {
		var zero P
		return zero
	}

	return f
}

// LeadFrequency returns the first octave's frequency or ErrNoOctaves.
func (o *OctaveNoise[P]) LeadFrequency() (P, error) {
	if len(o.octaves) == 0 {
		var zero P
		return zero, noiseErrorf("OctaveNoise.LeadFrequency", ErrNoOctaves)
	}

	return o.octaves[0].Frequency(), nil
}

// Len returns the number of octaves.
func (o *OctaveNoise[P]) Len() int { return len(o.octaves) }

// Octaves returns a copy of the octave list.
func (o *OctaveNoise[P]) Octaves() []Octave[P] {
	out := make([]Octave[P], len(o.octaves))
	copy(out, o.octaves)

	return out
}

// Amplitudes returns the per-octave weights in order.
func (o *OctaveNoise[P]) Amplitudes() []float64 {
	out := make([]float64, len(o.octaves))
	for i := range o.octaves {
		out[i] = o.octaves[i].amplitude
	}

	return out
}

// String renders one octave per line inside "OctaveNoise [ ... ]".
func (o *OctaveNoise[P]) String() string {
	var b strings.Builder
	b.WriteString("OctaveNoise [\n")
	for i := range o.octaves {
		b.WriteString("\t")
		b.WriteString(o.octaves[i].String())
		b.WriteString(",\n")
	}
	b.WriteString("]\n")

	return b.String()
}

// OctaveFactory builds the layer for one octave given its index, frequency
// and (already normalized) amplitude.
type OctaveFactory[P point.Point[P]] func(octave int, frequency P, amplitude float64) (Noise[P], error)

// BuildGeometricFractal builds n octaves whose frequencies grow
// geometrically and whose amplitudes decay by persistence ρ:
//
//	frequency_i = initial · scaling^(i+1)        (component-wise)
//	amplitude_i = M / ρ^(i+1),  M = 1 / Σ_{j<n} 1/ρ^(j+1)
//
// so Σ amplitude_i = 1 for every n > 0 and every finite ρ > 0, however
// extreme. n == 0 yields an empty sum.
//
// Errors: ErrNegativeOctaves, ErrInvalidPersistence, ErrInvalidFrequency,
// ErrInvalidScaling, ErrNilFactory, or the factory's own error wrapped with
// the octave index.
//
// Complexity: O(n) factory calls.
func BuildGeometricFractal[P point.Point[P]](initial P, n int, scaling P, persistence float64, factory OctaveFactory[P]) (*OctaveNoise[P], error) {
	const method = "BuildGeometricFractal"
	if n < 0 {
		return nil, noiseErrorf(fmt.Sprintf("%s(n=%d)", method, n), ErrNegativeOctaves)
	}
	if !positiveFinite(persistence) {
		return nil, noiseErrorf(fmt.Sprintf("%s(persistence=%v)", method, persistence), ErrInvalidPersistence)
	}
	if !validFrequency(initial) {
		return nil, noiseErrorf(fmt.Sprintf("%s(initial=%v)", method, initial), ErrInvalidFrequency)
	}
	if !validFrequency(scaling) {
		return nil, noiseErrorf(fmt.Sprintf("%s(scaling=%v)", method, scaling), ErrInvalidScaling)
	}
	if factory == nil {
		return nil, noiseErrorf(method, ErrNilFactory)
	}

	weights := geometricWeights(n, persistence)

	var i int
	octaves := make([]Octave[P], 0, n)
	for i = 0; i < n; i++ {
		exp := float64(i + 1)
		freq := point.Apply(initial, scaling, func(f, s float64) float64 {
			return f * math.Pow(s, exp)
		})
		amp := weights[i]

		layer, err := factory(i, freq, amp)
		if err != nil {
			return nil, noiseErrorf(fmt.Sprintf("%s(octave=%d)", method, i), err)
		}
		if layer == nil {
			return nil, noiseErrorf(fmt.Sprintf("%s(octave=%d)", method, i), ErrNilFactory)
		}
		octaves = append(octaves, Octave[P]{noise: layer, amplitude: amp})
	}

	return &OctaveNoise[P]{octaves: octaves}, nil
}

// geometricWeights returns w_i ∝ ρ^-(i+1) normalized to sum 1. The
// exponents are shifted by their maximum before exponentiating so neither
// underflow nor overflow can leak Inf or NaN into the result.
func geometricWeights(n int, persistence float64) []float64 {
	weights := make([]float64, n)
	if n == 0 {
		return weights
	}

	logRho := math.Log(persistence)
	// -(i+1)·ln ρ peaks at the first octave for ρ >= 1, at the last otherwise.
	top := -logRho
	if logRho < 0 {
		top = -float64(n) * logRho
	}

	var total float64
	var i int
	for i = 0; i < n; i++ {
		weights[i] = math.Exp(-float64(i+1)*logRho - top)
		total += weights[i]
	}
	for i = range weights {
		weights[i] /= total
	}

	return weights
}

var (
	_ Noise2D = Octave[point.P2]{}
	_ Noise2D = (*OctaveNoise[point.P2])(nil)
)
