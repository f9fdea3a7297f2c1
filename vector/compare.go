// SPDX-License-Identifier: MIT
// Package vector — comparison surface.
//
// Two vectors compare over their occupied sequences only; capacity is
// invisible to every function here. Equal and Less are the two
// primitive algorithms; NotEqual, LessEqual, Greater, and GreaterEqual
// are derived from them and carry no independent logic.

package vector

import "cmp"

// Equal reports whether a and b hold element-wise equal occupied
// sequences. Differing sizes can never compare equal.
// Complexity: O(min size), O(1) on a size mismatch.
func Equal[T comparable](a, b *Vector[T]) bool {
	// Sequence length is compared implicitly through size.
	if a.size != b.size {
		return false
	}
	ar, br := a.Data(), b.Data()
	for i := range ar {
		if ar[i] != br[i] {
			return false
		}
	}

	return true
}

// NotEqual is the negation of Equal.
func NotEqual[T comparable](a, b *Vector[T]) bool {
	return !Equal(a, b)
}

// Less reports whether a's occupied sequence precedes b's
// lexicographically: the first differing element decides; a strict
// prefix precedes its extension.
// Complexity: O(min size).
func Less[T cmp.Ordered](a, b *Vector[T]) bool {
	ar, br := a.Data(), b.Data()
	n := min(len(ar), len(br))
	for i := 0; i < n; i++ {
		switch {
		case ar[i] < br[i]:
			return true
		case br[i] < ar[i]:
			return false
		}
	}

	// One sequence is a prefix of the other; the shorter one precedes.
	return len(ar) < len(br)
}

// LessEqual reports a ≤ b, derived as !(b < a).
func LessEqual[T cmp.Ordered](a, b *Vector[T]) bool {
	return !Less(b, a)
}

// Greater reports a > b, derived as b < a.
func Greater[T cmp.Ordered](a, b *Vector[T]) bool {
	return Less(b, a)
}

// GreaterEqual reports a ≥ b, derived as !(a < b).
func GreaterEqual[T cmp.Ordered](a, b *Vector[T]) bool {
	return !Less(a, b)
}
