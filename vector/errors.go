// SPDX-License-Identifier: MIT
// Package vector: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// vector package. All operations MUST return these sentinels (or a
// buffer sentinel, propagated unchanged) and tests MUST check them via
// errors.Is. No operation panics on user-triggered error conditions;
// panics are reserved for violated caller contracts on the unchecked
// surface (Ref, Data indexing).

package vector

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "vector: ..." for consistency and easy
// grepping. Sentinels are wrapped with method context via opErrorf at
// the public boundary — callers still match them with errors.Is.

var (
	// ErrOutOfRange indicates that an index is outside the occupied
	// range: [0, size) for At/Set/Erase, [0, size] for Insert.
	// Capacity beyond size does not extend the valid range.
	ErrOutOfRange = errors.New("vector: index out of range")

	// ErrNegativeCount indicates a negative size or capacity argument
	// to a constructor, Resize, or Reserve.
	ErrNegativeCount = errors.New("vector: negative count")

	// ErrCapacityOverflow indicates that doubling the capacity would
	// exceed the int range. The vector is left untouched.
	ErrCapacityOverflow = errors.New("vector: capacity overflow")
)

// opErrorf wraps an underlying error with Vector method context.
func opErrorf(method string, arg int, err error) error {
	return fmt.Errorf("Vector.%s(%d): %w", method, arg, err)
}
