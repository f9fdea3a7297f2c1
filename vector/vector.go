// Package vector: the Vector type and its construction variants.
//
// This file declares Vector, the ReserveHint construction input, the
// five constructors, and the value-semantics operations (Clone,
// CopyFrom, Move, MoveFrom, Swap). Mutators and accessors live in
// methods.go; comparisons in compare.go.

package vector

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/vec/buffer"
)

// Vector is a generic dynamic array: a contiguous, growable sequence of
// T with separate logical size and allocated capacity.
//
// Invariants, maintained by every operation:
//
//	size ≤ capacity;
//	positions [0, size) hold the occupied sequence;
//	positions [size, capacity) are allocated but not occupied;
//	the storage handle is exclusively owned (never aliased by another
//	Vector), and a moved-from Vector holds size 0, capacity 0, and no
//	storage.
//
// The zero value of Vector is NOT ready to use; construct with New and
// friends, which return pointers so storage ownership stays unique.
type Vector[T any] struct {
	items    buffer.Handle[T] // single-owner storage block
	size     int              // occupied prefix length
	capacity int              // allocated slot count, == items.Cap()
}

// ReserveHint is a construction-time directive: capacity to pre-allocate
// without populating logical elements. Build one with Reserve and pass
// it to NewReserved.
type ReserveHint int

// Reserve builds the ReserveHint consumed by NewReserved.
// Complexity: O(1).
func Reserve(capacity int) ReserveHint {
	return ReserveHint(capacity)
}

// New creates an empty Vector: size 0, capacity 0, no storage.
// Complexity: O(1).
func New[T any]() *Vector[T] {
	return &Vector[T]{}
}

// NewSized creates a Vector of n zero-valued elements with capacity
// exactly n. Returns ErrNegativeCount when n < 0.
// Complexity: O(n).
func NewSized[T any](n int) (*Vector[T], error) {
	// Validate the count before allocating.
	if n < 0 {
		return nil, opErrorf("NewSized", n, ErrNegativeCount)
	}
	// Alloc delivers the block already zero-filled.
	h, err := buffer.Alloc[T](n)
	if err != nil {
		return nil, err // propagate allocation failure unchanged
	}

	return &Vector[T]{items: h, size: n, capacity: n}, nil
}

// NewFilled creates a Vector of n copies of value with capacity exactly
// n. Returns ErrNegativeCount when n < 0.
// Complexity: O(n).
func NewFilled[T any](n int, value T) (*Vector[T], error) {
	if n < 0 {
		return nil, opErrorf("NewFilled", n, ErrNegativeCount)
	}
	h, err := buffer.Alloc[T](n)
	if err != nil {
		return nil, err
	}
	// Overwrite every slot with the fill value.
	raw := h.Raw()
	for i := 0; i < n; i++ {
		raw[i] = value
	}

	return &Vector[T]{items: h, size: n, capacity: n}, nil
}

// Of creates a Vector holding the given values in order, with capacity
// equal to their count.
// Complexity: O(len(values)).
func Of[T any](values ...T) *Vector[T] {
	// A variadic count is never negative, so Alloc cannot fail here.
	h, _ := buffer.Alloc[T](len(values))
	copy(h.Raw(), values)

	return &Vector[T]{items: h, size: len(values), capacity: len(values)}
}

// NewReserved creates a logically empty Vector whose capacity is
// pre-allocated to the hinted value, so a subsequent append sequence
// avoids reallocation up to that many elements. Returns
// ErrNegativeCount when the hint is negative.
// Complexity: O(hint) (zero-initialization of the block).
func NewReserved[T any](hint ReserveHint) (*Vector[T], error) {
	n := int(hint)
	if n < 0 {
		return nil, opErrorf("NewReserved", n, ErrNegativeCount)
	}
	h, err := buffer.Alloc[T](n)
	if err != nil {
		return nil, err
	}

	// Nonzero capacity, zero logical elements.
	return &Vector[T]{items: h, capacity: n}, nil
}

// Clone returns a deep copy of v: a fresh block of v's CAPACITY (not
// just its size) with the occupied prefix copied in order. The clone
// shares no storage with v.
// Complexity: O(size) copy over an O(capacity) allocation.
func (v *Vector[T]) Clone() *Vector[T] {
	// capacity is never negative, so Alloc cannot fail here.
	h, _ := buffer.Alloc[T](v.capacity)
	copy(h.Raw(), v.items.Raw()[:v.size])

	return &Vector[T]{items: h, size: v.size, capacity: v.capacity}
}

// CopyFrom replaces v's contents with a deep copy of other, mirroring
// other's size and capacity. Self-assignment is a no-op. The previous
// block is discarded only after the new one is fully populated, so a
// failed allocation would leave v unchanged.
// Complexity: O(other.Size()) copy over an O(other.Capacity()) allocation.
func (v *Vector[T]) CopyFrom(other *Vector[T]) {
	if v == other {
		return // self-assignment
	}
	// Build the replacement block first.
	h, _ := buffer.Alloc[T](other.capacity)
	copy(h.Raw(), other.items.Raw()[:other.size])
	// Exchange ownership; the temporary handle now holds the old block.
	v.items.Swap(&h)
	h.Release()
	v.size = other.size
	v.capacity = other.capacity
}

// Move transfers v's storage, size, and capacity into a new Vector and
// reverts v to the empty state (size 0, capacity 0, no storage), so the
// block never has two owners.
// Complexity: O(1).
func (v *Vector[T]) Move() *Vector[T] {
	moved := &Vector[T]{size: v.size, capacity: v.capacity}
	moved.items.Swap(&v.items) // v keeps moved's empty handle
	v.size = 0
	v.capacity = 0

	return moved
}

// MoveFrom replaces v's contents by taking other's storage, size, and
// capacity in O(1). v's previous block is discarded; other reverts to
// the empty state. Self-move is a no-op.
func (v *Vector[T]) MoveFrom(other *Vector[T]) {
	if v == other {
		return // self-move
	}
	other.items.Swap(&v.items) // other now holds v's old block
	other.items.Release()
	v.size = other.size
	v.capacity = other.capacity
	other.size = 0
	other.capacity = 0
}

// Swap exchanges storage ownership, size, and capacity between v and
// other. No element-level work is performed.
// Complexity: O(1).
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.items.Swap(&other.items)
	v.size, other.size = other.size, v.size
	v.capacity, other.capacity = other.capacity, v.capacity
}

// String implements fmt.Stringer over the occupied prefix for easy
// debugging. Slots beyond size are not rendered.
// Complexity: O(size) for string construction.
func (v *Vector[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	raw := v.items.Raw()
	for i := 0; i < v.size; i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v", raw[i])
	}
	b.WriteByte(']')

	return b.String()
}
