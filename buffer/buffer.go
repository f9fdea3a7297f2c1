// Package buffer: single-owner contiguous storage.
//
// This file declares Handle, the Alloc constructor, and the sentinel
// error for invalid allocation requests.

package buffer

import "errors"

// ErrNegativeLength indicates that an allocation was requested with a
// negative slot count. Alloc MUST return this, not panic.
var ErrNegativeLength = errors.New("buffer: negative length")

// Handle exclusively owns one contiguous block of exactly Cap() slots of
// type T, or no block at all (the empty state, Cap() == 0).
//
// The block is allocated once and never grown or shrunk in place; a
// larger block is always obtained by allocating a fresh Handle and
// exchanging ownership via Swap. The zero value is an empty Handle and
// is ready to use.
type Handle[T any] struct {
	block []T // flat backing storage; len(block) is the allocated slot count
}

// Alloc reserves a block of exactly n zero-valued slots and returns the
// Handle owning it. n == 0 yields an empty Handle without allocating.
// Returns ErrNegativeLength when n < 0.
// Complexity: O(n) (runtime zero-initialization).
func Alloc[T any](n int) (Handle[T], error) {
	// Validate the requested length before touching the allocator.
	if n < 0 {
		return Handle[T]{}, ErrNegativeLength
	}
	// Zero slots means the empty state; no block is held.
	if n == 0 {
		return Handle[T]{}, nil
	}

	return Handle[T]{block: make([]T, n)}, nil
}

// Raw exposes the owned block as an addressable slice of its full
// allocated length, or nil for an empty Handle. The slice aliases the
// block: it is invalidated the moment ownership leaves this Handle
// (Swap or Release).
// Complexity: O(1).
func (h *Handle[T]) Raw() []T {
	return h.block
}

// Cap returns the allocated slot count.
// Complexity: O(1).
func (h *Handle[T]) Cap() int {
	return len(h.block)
}

// Swap exchanges block ownership with other. Neither block is copied,
// moved, or resized; only ownership changes hands.
// Complexity: O(1).
func (h *Handle[T]) Swap(other *Handle[T]) {
	h.block, other.block = other.block, h.block
}

// Release drops the owned block and reverts the Handle to the empty
// state. The block becomes unreachable through this Handle; the runtime
// reclaims it once no raw view aliases it.
// Complexity: O(1).
func (h *Handle[T]) Release() {
	h.block = nil
}
