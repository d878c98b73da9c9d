// SPDX-License-Identifier: MIT

package point

import "math"

// Apply combines a and b component-wise: out[i] = f(a[i], b[i]).
// Complexity: O(dim).
func Apply[P Point[P]](a, b P, f func(x, y float64) float64) P {
	var i int
	for i = 0; i < a.Dim(); i++ {
		a = a.WithAxis(i, f(a.Axis(i), b.Axis(i)))
	}

	return a
}

// Apply3 combines three tuples component-wise: out[i] = f(a[i], b[i], c[i]).
// Complexity: O(dim).
func Apply3[P Point[P]](a, b, c P, f func(x, y, z float64) float64) P {
	var i int
	for i = 0; i < a.Dim(); i++ {
		a = a.WithAxis(i, f(a.Axis(i), b.Axis(i), c.Axis(i)))
	}

	return a
}

// Map applies f to every component of p.
func Map[P Point[P]](p P, f func(x float64) float64) P {
	var i int
	for i = 0; i < p.Dim(); i++ {
		p = p.WithAxis(i, f(p.Axis(i)))
	}

	return p
}

// Max returns the component-wise maximum of a and b.
func Max[P Point[P]](a, b P) P {
	return Apply(a, b, math.Max)
}

// Mul returns the component-wise product of a and b.
func Mul[P Point[P]](a, b P) P {
	return Apply(a, b, func(x, y float64) float64 { return x * y })
}

// Add returns the component-wise sum of a and b.
func Add[P Point[P]](a, b P) P {
	return Apply(a, b, func(x, y float64) float64 { return x + y })
}

// Scale multiplies every component of p by s.
func Scale[P Point[P]](p P, s float64) P {
	return Map(p, func(x float64) float64 { return x * s })
}

// Splat returns a tuple with every component set to v.
func Splat[P Point[P]](v float64) P {
	var p P

	return Map(p, func(float64) float64 { return v })
}

// All reports whether pred holds for every component of p.
func All[P Point[P]](p P, pred func(x float64) bool) bool {
	var i int
	for i = 0; i < p.Dim(); i++ {
		if !pred(p.Axis(i)) {
			return false
		}
	}

	return true
}

// AllPairs reports whether pred(a[i], b[i]) holds for every axis.
func AllPairs[P Point[P]](a, b P, pred func(x, y float64) bool) bool {
	var i int
	for i = 0; i < a.Dim(); i++ {
		if !pred(a.Axis(i), b.Axis(i)) {
			return false
		}
	}

	return true
}

// Corner returns the 0/1 offset of lattice corner c along axis.
// Corners are numbered x-fastest: bit 0 is x, bit 1 is y, bit 2 is z.
//
//	c=0 → (0,0,0)  c=1 → (1,0,0)  c=2 → (0,1,0)  c=3 → (1,1,0) ...
func Corner(c, axis int) int {
	return (c >> axis) & 1
}

// Corners returns the number of lattice-cell corners for arity dim (2^dim).
func Corners(dim int) int {
	return 1 << dim
}

// Split separates v into its lattice cell index floor(v) and the fractional
// offset v-floor(v) in [0,1). Negative inputs round toward -Inf.
func Split(v float64) (cell int, frac float64) {
	f := math.Floor(v)

	return int(f), v - f
}
