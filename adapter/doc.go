// SPDX-License-Identifier: MIT

// Package adapter composes noise sources into new noise sources.
//
// Every adapter wraps zero to three noise.Noise values and is itself a
// noise.Noise, so compositions nest freely and evaluate depth-first on each
// ValueAt call. Nothing is sampled or cached at construction.
//
// Families:
//
//   - Combine (NewAdd, NewMultiply, NewCombine), Select, Blend.
//   - Input transforms: ScaleInput, ShiftInput, ClampInput, WrapInput.
//   - Output transforms: Scale, WithRange, Clamp, Negate, Transform, Filter.
//   - Sources: Constant, FunctionValue.
//   - Dimension changes: Extension2D/3D add an ignored trailing axis,
//     Slice1D/2D/3D fix the trailing axis to a constant.
//
// Binary adapters report the component-wise maximum of their inputs'
// frequencies. Constructors with a numeric invariant (low < high) return
// ErrInvalidRange; all constructors panic on a nil source.
//
// Adapters are immutable and safe for concurrent ValueAt calls as long as
// the wrapped sources and closures are.
package adapter

import (
	"github.com/katalvlaran/gradnoise/noise"
	"github.com/katalvlaran/gradnoise/point"
)

var (
	_ noise.Noise2D = (*Combine[point.P2])(nil)
	_ noise.Noise2D = (*Select[point.P2])(nil)
	_ noise.Noise2D = (*Blend[point.P2])(nil)
	_ noise.Noise3D = (*WrapInput[point.P3])(nil)
	_ noise.Noise1D = (*Filter[point.P1])(nil)
	_ noise.Noise4D = (*Constant[point.P4])(nil)
	_ noise.Noise2D = (*Extension2D)(nil)
	_ noise.Noise3D = (*Extension3D)(nil)
	_ noise.Noise1D = (*Slice1D)(nil)
	_ noise.Noise2D = (*Slice2D)(nil)
	_ noise.Noise3D = (*Slice3D)(nil)
)
