// SPDX-License-Identifier: MIT

package grid

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions indicates that a requested grid size is non-positive.
	ErrInvalidDimensions = errors.New("grid: dimensions must be > 0")

	// ErrOutOfRange indicates that a coordinate is outside the grid bounds.
	// Public indexers (At/Set/Index) MUST return this, not panic.
	ErrOutOfRange = errors.New("grid: index out of range")

	// ErrDataLength indicates that adopted data does not match the grid size.
	ErrDataLength = errors.New("grid: data length does not match dimensions")
)

// gridErrorf attaches the method context and coordinates to a sentinel.
func gridErrorf(method string, coords []int, err error) error {
	return fmt.Errorf("%s%v: %w", method, coords, err)
}
