// SPDX-License-Identifier: MIT

package adapter

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrInvalidRange indicates a range-defining pair with low >= high on some
// axis (or a NaN bound).
var ErrInvalidRange = errors.New("adapter: low must be < high")

// rangeErrorf attaches the constructor and offending bounds to ErrInvalidRange.
func rangeErrorf(ctor string, low, high any) error {
	return fmt.Errorf("%s(low=%v, high=%v): %w", ctor, low, high, ErrInvalidRange)
}

// mustSource panics when an adapter is given a nil source, including an
// interface that wraps a nil pointer.
func mustSource(ctor string, sources ...any) {
	for _, s := range sources {
		if s == nil || (reflect.ValueOf(s).Kind() == reflect.Pointer && reflect.ValueOf(s).IsNil()) {
			panic("adapter: " + ctor + " with nil source")
		}
	}
}
