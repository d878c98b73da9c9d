// SPDX-License-Identifier: MIT

package gradient

import (
	"fmt"

	"github.com/katalvlaran/gradnoise/rng"
)

// DefaultPermutationSize is the permutation length used by NewPermutedTable
// and PermutedFromValues. It must stay a power of two.
const DefaultPermutationSize = 256

// Table is a flat, immutable table of gradients indexed modulo its length.
type Table[G any] struct {
	values []G
}

// NewTable calls b.MakeGradient size times and stores the results in order.
func NewTable[G any](b Builder[G], size int) (*Table[G], error) {
	if size <= 0 {
		return nil, wrapf(fmt.Sprintf("NewTable(%d)", size), ErrEmptyTable)
	}
	if b == nil {
		return nil, wrapf("NewTable", ErrNilBuilder)
	}

	values := make([]G, size)
	var i int
	for i = 0; i < size; i++ {
		values[i] = b.MakeGradient()
	}

	return &Table[G]{values: values}, nil
}

// TableFromValues adopts a copy of values.
func TableFromValues[G any](values []G) (*Table[G], error) {
	if len(values) == 0 {
		return nil, wrapf("TableFromValues", ErrEmptyTable)
	}
	out := make([]G, len(values))
	copy(out, values)

	return &Table[G]{values: out}, nil
}

// Len returns the number of gradients.
func (t *Table[G]) Len() int { return len(t.values) }

// At returns gradient i mod Len(); negative indices wrap from the end.
func (t *Table[G]) At(i int) G {
	return t.values[wrapIndex(i, len(t.values))]
}

// Values returns a copy of the gradients.
func (t *Table[G]) Values() []G {
	out := make([]G, len(t.values))
	copy(out, t.values)

	return out
}

// Gradient1D indexes the table directly by x (mod Len()). The error is
// always nil; it exists to satisfy Provider1D.
func (t *Table[G]) Gradient1D(x int) (G, error) {
	return t.At(x), nil
}

// PermutedTable pairs a gradient Table with a power-of-two PermutationTable
// and hashes integer lattice coordinates into gradient indices.
type PermutedTable[G any] struct {
	perm  *PermutationTable
	table *Table[G]
	mask  int // perm.Len()-1
}

// NewPermutedTable builds size gradients with b and a fresh permutation of
// DefaultPermutationSize entries drawn from src.
func NewPermutedTable[G any](src rng.Source, b Builder[G], size int) (*PermutedTable[G], error) {
	perm, err := NewPermutationTable(src, DefaultPermutationSize)
	if err != nil {
		return nil, wrapf("NewPermutedTable", err)
	}
	table, err := NewTable(b, size)
	if err != nil {
		return nil, wrapf("NewPermutedTable", err)
	}

	return &PermutedTable[G]{perm: perm, table: table, mask: DefaultPermutationSize - 1}, nil
}

// PermutedFromValues pairs a copy of the given gradients with a fresh
// permutation of DefaultPermutationSize entries drawn from src.
func PermutedFromValues[G any](src rng.Source, values []G) (*PermutedTable[G], error) {
	perm, err := NewPermutationTable(src, DefaultPermutationSize)
	if err != nil {
		return nil, wrapf("PermutedFromValues", err)
	}
	table, err := TableFromValues(values)
	if err != nil {
		return nil, wrapf("PermutedFromValues", err)
	}

	return &PermutedTable[G]{perm: perm, table: table, mask: DefaultPermutationSize - 1}, nil
}

// PermutedFromParts pairs existing tables. perm must have a power-of-two
// length, otherwise ErrNotPowerOfTwo is returned.
func PermutedFromParts[G any](perm *PermutationTable, table *Table[G]) (*PermutedTable[G], error) {
	if perm == nil || table == nil {
		return nil, wrapf("PermutedFromParts", ErrEmptyTable)
	}
	if !isPowerOfTwo(perm.Len()) {
		return nil, wrapf(fmt.Sprintf("PermutedFromParts(len=%d)", perm.Len()), ErrNotPowerOfTwo)
	}

	return &PermutedTable[G]{perm: perm, table: table, mask: perm.Len() - 1}, nil
}

// WithPermutationSize returns a new table sharing t's gradients with a fresh
// permutation of at least size entries, rounded up to a power of two.
func (t *PermutedTable[G]) WithPermutationSize(src rng.Source, size int) (*PermutedTable[G], error) {
	if size <= 0 {
		return nil, wrapf(fmt.Sprintf("PermutedTable.WithPermutationSize(%d)", size), ErrEmptyTable)
	}
	n := nextPowerOfTwo(size)
	perm, err := NewPermutationTable(src, n)
	if err != nil {
		return nil, wrapf("PermutedTable.WithPermutationSize", err)
	}

	return &PermutedTable[G]{perm: perm, table: t.table, mask: n - 1}, nil
}

// Permutations returns the permutation table.
func (t *PermutedTable[G]) Permutations() *PermutationTable { return t.perm }

// Gradients returns the gradient table.
func (t *PermutedTable[G]) Gradients() *Table[G] { return t.table }

// Hash1 returns perm[x & mask].
func (t *PermutedTable[G]) Hash1(x int) int {
	return t.perm.masked(x & t.mask)
}

// Hash2 returns perm[Hash1(x) ^ (y & mask)].
// Both operands are < len(perm), a power of two, so the XOR stays in range.
func (t *PermutedTable[G]) Hash2(x, y int) int {
	return t.perm.masked(t.Hash1(x) ^ (y & t.mask))
}

// Hash3 returns perm[Hash2(x, y) ^ (z & mask)].
func (t *PermutedTable[G]) Hash3(x, y, z int) int {
	return t.perm.masked(t.Hash2(x, y) ^ (z & t.mask))
}

// Hash4 returns perm[Hash3(x, y, z) ^ (w & mask)].
func (t *PermutedTable[G]) Hash4(x, y, z, w int) int {
	return t.perm.masked(t.Hash3(x, y, z) ^ (w & t.mask))
}

// Gradient1D returns the gradient for lattice point x.
func (t *PermutedTable[G]) Gradient1D(x int) (G, error) {
	return t.table.At(t.Hash1(x)), nil
}

// Gradient2D returns the gradient for lattice point (x, y).
func (t *PermutedTable[G]) Gradient2D(x, y int) (G, error) {
	return t.table.At(t.Hash2(x, y)), nil
}

// Gradient3D returns the gradient for lattice point (x, y, z).
func (t *PermutedTable[G]) Gradient3D(x, y, z int) (G, error) {
	return t.table.At(t.Hash3(x, y, z)), nil
}

// Gradient4D returns the gradient for lattice point (x, y, z, w).
func (t *PermutedTable[G]) Gradient4D(x, y, z, w int) (G, error) {
	return t.table.At(t.Hash4(x, y, z, w)), nil
}
