// Package vector implements Vector, a generic dynamic array: a resizable,
// contiguous sequence with amortized O(1) append and explicit capacity
// management, built on the single-owner storage of package buffer.
//
// The vector package provides:
//
//   - Five construction variants: empty, sized (zero-filled), filled with
//     an explicit value, from a literal sequence (Of), and reserve-hinted
//     (pre-allocated capacity with zero logical elements).
//   - Amortized O(1) PushBack with geometric growth: capacity doubles,
//     with a floor of 1 when growing from 0. Resize grows to the exact
//     target instead (the two policies are intentionally different and
//     both are pinned by tests).
//   - Positional Insert and Erase over the occupied range, with a fixed
//     shift direction: Insert shifts from the back forward, Erase copies
//     from the front backward, so overlapping moves never clobber
//     unmoved elements.
//   - Value semantics: Clone copies elements AND capacity; Move and Swap
//     transfer storage ownership in O(1) and leave a moved-from vector
//     empty (size 0, capacity 0, no storage).
//   - Element-wise Equal and lexicographic Less, with the remaining
//     comparisons derived from those two.
//
// Capacity never shrinks: Clear and Resize down only move the logical
// end, and Reserve ignores targets at or below the current capacity.
// Every reallocation follows the same pattern: allocate a fresh block,
// copy the occupied prefix into it, exchange ownership, drop the old
// block. A failed allocation therefore leaves the vector exactly as it
// was.
//
// Data returns the occupied prefix as a plain slice. It is a raw view:
// any operation that reallocates (growth-triggering PushBack, Insert,
// Resize, Reserve) or shifts elements (Insert, Erase) invalidates it,
// as it would invalidate pointers obtained from Ref. This is a caller
// contract, not a detected condition.
//
// Errors:
//
//	ErrOutOfRange       - index outside the occupied range.
//	ErrNegativeCount    - negative size or capacity argument.
//	ErrCapacityOverflow - doubling would exceed the int range.
//
// Vectors are not safe for concurrent use; callers that share one across
// goroutines must synchronize externally.
package vector
