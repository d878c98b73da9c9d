// SPDX-License-Identifier: MIT

package point

// Point is the constraint satisfied by every coordinate/frequency tuple.
// P is the concrete tuple type itself (F-bounded), so helpers can return it.
type Point[P any] interface {
	// Dim returns the arity of the tuple (1..4).
	Dim() int
	// Axis returns component i. i must be in [0, Dim()).
	Axis(i int) float64
	// WithAxis returns a copy with component i replaced by v.
	WithAxis(i int, v float64) P
}

// P1 is a one-dimensional coordinate.
type P1 float64

// P2 is a two-dimensional coordinate (x, y).
type P2 [2]float64

// P3 is a three-dimensional coordinate (x, y, z).
type P3 [3]float64

// P4 is a four-dimensional coordinate (x, y, z, w).
type P4 [4]float64

// Compile-time conformance.
var (
	_ Point[P1] = P1(0)
	_ Point[P2] = P2{}
	_ Point[P3] = P3{}
	_ Point[P4] = P4{}
)

// Dim returns 1.
func (p P1) Dim() int { return 1 }

// Axis returns the single component; i is ignored.
func (p P1) Axis(int) float64 { return float64(p) }

// WithAxis returns v as a P1; i is ignored.
func (p P1) WithAxis(_ int, v float64) P1 { return P1(v) }

// Dim returns 2.
func (p P2) Dim() int { return 2 }

// Axis returns component i.
func (p P2) Axis(i int) float64 { return p[i] }

// WithAxis returns a copy of p with component i set to v.
func (p P2) WithAxis(i int, v float64) P2 {
	p[i] = v
	return p
}

// Dim returns 3.
func (p P3) Dim() int { return 3 }

// Axis returns component i.
func (p P3) Axis(i int) float64 { return p[i] }

// WithAxis returns a copy of p with component i set to v.
func (p P3) WithAxis(i int, v float64) P3 {
	p[i] = v
	return p
}

// Dim returns 4.
func (p P4) Dim() int { return 4 }

// Axis returns component i.
func (p P4) Axis(i int) float64 { return p[i] }

// WithAxis returns a copy of p with component i set to v.
func (p P4) WithAxis(i int, v float64) P4 {
	p[i] = v
	return p
}
