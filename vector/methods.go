// Package vector: accessor and mutator implementations.
//
// Every mutator follows the same control flow: ensure capacity is
// sufficient (Reserve or grow), then shift/copy the affected element
// range, then adjust size. Capacity changes always go through
// reallocate-and-swap — a fresh block is populated, ownership is
// exchanged, and the old block is discarded; nothing is ever resized in
// place. Size is only updated after the corresponding slots are
// written, so size ≤ capacity holds even if a step fails partway.

package vector

import (
	"math"

	"github.com/katalvlaran/vec/buffer"
)

// Size returns the count of logically occupied elements.
// Complexity: O(1).
func (v *Vector[T]) Size() int {
	return v.size
}

// Capacity returns the count of allocated element slots.
// Complexity: O(1).
func (v *Vector[T]) Capacity() int {
	return v.capacity
}

// IsEmpty reports whether the Vector holds no occupied elements.
// Complexity: O(1).
func (v *Vector[T]) IsEmpty() bool {
	return v.size == 0
}

// At retrieves the element at index, checked against the occupied
// range. Returns ErrOutOfRange when index is not in [0, size),
// regardless of capacity.
// Complexity: O(1).
func (v *Vector[T]) At(index int) (T, error) {
	// Validate against size, not capacity.
	if index < 0 || index >= v.size {
		var zero T
		return zero, opErrorf("At", index, ErrOutOfRange)
	}

	return v.items.Raw()[index], nil
}

// Set assigns value at index, checked against the occupied range.
// Returns ErrOutOfRange when index is not in [0, size).
// Complexity: O(1).
func (v *Vector[T]) Set(index int, value T) error {
	if index < 0 || index >= v.size {
		return opErrorf("Set", index, ErrOutOfRange)
	}
	v.items.Raw()[index] = value

	return nil
}

// Ref returns a pointer to the element at index WITHOUT a bounds check
// against size; the caller must guarantee index < Size(). An index in
// [size, capacity) silently addresses an unoccupied slot; an index
// outside the allocated block triggers a runtime panic. The pointer is
// invalidated by any reallocation or shift.
// Complexity: O(1).
func (v *Vector[T]) Ref(index int) *T {
	return &v.items.Raw()[index]
}

// Data returns the occupied prefix [0, size) as a slice sharing the
// Vector's storage: the iteration and unchecked-access surface. The
// view is raw — invalidated by any operation that reallocates or
// shifts elements — and writes through it mutate the Vector.
// Complexity: O(1).
func (v *Vector[T]) Data() []T {
	return v.items.Raw()[:v.size]
}

// Clear resets size to 0. Capacity and storage contents are untouched;
// no reallocation and no element-level work happen.
// Complexity: O(1).
func (v *Vector[T]) Clear() {
	v.size = 0
}

// Resize sets the occupied length to newSize. Shrinking only moves the
// logical end. Growing zero-fills the fresh range [old size, newSize),
// reallocating first when newSize exceeds capacity — to EXACTLY
// newSize, not to the next doubling (Resize and PushBack intentionally
// grow differently; see the package doc). Returns ErrNegativeCount for
// a negative newSize.
// Complexity: O(1) shrink; O(newSize) grow with reallocation.
func (v *Vector[T]) Resize(newSize int) error {
	if newSize < 0 {
		return opErrorf("Resize", newSize, ErrNegativeCount)
	}
	// Shrink: truncate the logical range, keep storage.
	if newSize <= v.size {
		v.size = newSize
		return nil
	}
	// Grow: exact-fit reallocation when capacity is insufficient.
	if newSize > v.capacity {
		if err := v.Reserve(newSize); err != nil {
			return err
		}
	}
	// Slots past size may hold stale values from earlier PopBack or
	// Resize-down, so the fresh range is re-zeroed explicitly.
	raw := v.items.Raw()
	var zero T
	for i := v.size; i < newSize; i++ {
		raw[i] = zero
	}
	v.size = newSize

	return nil
}

// PushBack appends value to the end of the occupied sequence, doubling
// capacity first when full (floor 1 when growing from 0). A failed
// growth leaves the Vector unchanged.
// Complexity: amortized O(1); O(size) on the appends that grow.
func (v *Vector[T]) PushBack(value T) error {
	if v.size == v.capacity {
		if err := v.grow(); err != nil {
			return err
		}
	}
	// Write the slot first, then extend the occupied range over it.
	v.items.Raw()[v.size] = value
	v.size++

	return nil
}

// PopBack removes the last occupied element by truncating the logical
// range; a no-op on an empty Vector, never an error. The slot keeps its
// old value but is no longer considered occupied.
// Complexity: O(1).
func (v *Vector[T]) PopBack() {
	if v.size > 0 {
		v.size--
	}
}

// Insert places value at index, shifting the elements at [index, size)
// one slot toward the end. index == Size() appends. Grows (doubling)
// when full; the index is an offset, so it stays valid across the
// reallocation. Returns ErrOutOfRange when index is not in [0, size];
// after a nil return the inserted element lives at index.
// Complexity: O(size - index), plus O(size) when growth triggers.
func (v *Vector[T]) Insert(index int, value T) error {
	// Insertion is valid anywhere in the occupied range or exactly at
	// the end.
	if index < 0 || index > v.size {
		return opErrorf("Insert", index, ErrOutOfRange)
	}
	if v.size == v.capacity {
		if err := v.grow(); err != nil {
			return err
		}
	}
	// Shift from the highest index down, so every source slot is read
	// before anything overwrites it.
	raw := v.items.Raw()
	for i := v.size; i > index; i-- {
		raw[i] = raw[i-1]
	}
	raw[index] = value
	v.size++

	return nil
}

// Erase removes the element at index, shifting the elements at
// (index, size) one slot toward the front. Returns ErrOutOfRange when
// index is not in [0, size); after a nil return, index addresses the
// element that followed the erased one (or the new end when the last
// element was erased).
// Complexity: O(size - index).
func (v *Vector[T]) Erase(index int) error {
	if index < 0 || index >= v.size {
		return opErrorf("Erase", index, ErrOutOfRange)
	}
	// Forward copy: each destination is written before it is next
	// needed as a source, so the overlap is safe in this direction.
	raw := v.items.Raw()
	copy(raw[index:v.size-1], raw[index+1:v.size])
	v.size--

	return nil
}

// Reserve grows capacity to exactly newCapacity: a fresh block is
// allocated, the occupied prefix is copied into it in order, and
// ownership is exchanged before the old block is discarded. A no-op
// when newCapacity ≤ capacity (capacity never shrinks); size is never
// changed. Returns ErrNegativeCount for a negative newCapacity; on any
// failure the Vector is left exactly as it was.
// Complexity: O(newCapacity) allocation + O(size) copy.
func (v *Vector[T]) Reserve(newCapacity int) error {
	if newCapacity < 0 {
		return opErrorf("Reserve", newCapacity, ErrNegativeCount)
	}
	if newCapacity <= v.capacity {
		return nil // capacity never shrinks
	}
	// Reallocate-and-swap: populate the replacement fully before the
	// old block changes hands.
	fresh, err := buffer.Alloc[T](newCapacity)
	if err != nil {
		return opErrorf("Reserve", newCapacity, err)
	}
	copy(fresh.Raw(), v.items.Raw()[:v.size])
	v.items.Swap(&fresh)
	fresh.Release() // the old block leaves with the temporary handle
	v.capacity = newCapacity

	return nil
}

// grow applies the geometric policy behind PushBack and Insert:
// capacity doubles, or becomes 1 when growing from 0. Returns
// ErrCapacityOverflow when doubling would leave the int range.
func (v *Vector[T]) grow() error {
	next := 1
	if v.capacity > 0 {
		if v.capacity > math.MaxInt/2 {
			return ErrCapacityOverflow
		}
		next = v.capacity * 2
	}

	return v.Reserve(next)
}
