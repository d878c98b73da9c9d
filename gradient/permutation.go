// SPDX-License-Identifier: MIT

package gradient

import (
	"fmt"

	"github.com/katalvlaran/gradnoise/rng"
)

// PermutationTable is an immutable permutation of 0..n-1.
type PermutationTable struct {
	values []int
}

// NewPermutationTable shuffles the identity permutation of the given size
// with src (Fisher–Yates).
//
// Errors:
//   - ErrEmptyTable when size <= 0.
//   - rng.ErrNilSource when src is nil.
//
// Complexity: O(size) time and space.
func NewPermutationTable(src rng.Source, size int) (*PermutationTable, error) {
	if size <= 0 {
		return nil, wrapf(fmt.Sprintf("NewPermutationTable(%d)", size), ErrEmptyTable)
	}
	if src == nil {
		return nil, wrapf("NewPermutationTable", rng.ErrNilSource)
	}
	values, err := rng.Perm(size, src)
	if err != nil {
		return nil, wrapf("NewPermutationTable", err)
	}

	return &PermutationTable{values: values}, nil
}

// PermutationFromValues adopts a copy of values after verifying that they
// form a bijection on 0..len(values)-1.
func PermutationFromValues(values []int) (*PermutationTable, error) {
	n := len(values)
	if n == 0 {
		return nil, wrapf("PermutationFromValues", ErrEmptyTable)
	}

	seen := make([]bool, n)
	var i, v int
	for i, v = range values {
		if v < 0 || v >= n || seen[v] {
			return nil, wrapf(fmt.Sprintf("PermutationFromValues[%d]=%d", i, v), ErrNotPermutation)
		}
		seen[v] = true
	}

	out := make([]int, n)
	copy(out, values)

	return &PermutationTable{values: out}, nil
}

// Len returns the number of entries.
func (t *PermutationTable) Len() int { return len(t.values) }

// At returns entry i, or ErrOutOfRange when i is outside [0, Len()).
func (t *PermutationTable) At(i int) (int, error) {
	if i < 0 || i >= len(t.values) {
		return 0, wrapf(fmt.Sprintf("PermutationTable.At(%d)", i), ErrOutOfRange)
	}

	return t.values[i], nil
}

// Wrap returns the entry at i reduced modulo Len() (sign-corrected, so
// negative indices wrap from the end).
func (t *PermutationTable) Wrap(i int) int {
	return t.values[wrapIndex(i, len(t.values))]
}

// Values returns a copy of the permutation.
func (t *PermutationTable) Values() []int {
	out := make([]int, len(t.values))
	copy(out, t.values)

	return out
}

// masked reads entry i where the caller has already reduced i with the
// power-of-two mask. Only PermutedTable calls it.
func (t *PermutationTable) masked(i int) int {
	return t.values[i]
}

// isPowerOfTwo reports whether n is a positive power of two.
func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// nextPowerOfTwo returns the smallest power of two >= n (1 for n <= 1).
func nextPowerOfTwo(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}

	return p
}

// wrapIndex maps any i into [0, n) with sign correction.
func wrapIndex(i, n int) int {
	r := i % n
	if r < 0 {
		r += n
	}

	return r
}
