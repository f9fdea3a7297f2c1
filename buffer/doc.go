// Package buffer provides Handle, a single-owner handle over a contiguous
// block of typed storage.
//
// The buffer package provides:
//
//   - Alloc, which reserves a block of exactly N slots (N may be 0) and
//     never resizes it in place.
//   - Raw access to the block as an addressable slice of its full length.
//   - Swap, an O(1) exchange of block ownership between two handles —
//     the primitive behind the reallocate-and-swap growth pattern used
//     by vector.Vector.
//   - Release, which drops the block and reverts the handle to empty.
//
// A block is owned by exactly one Handle at a time. Handles are moved,
// never duplicated: copying a Handle value aliases its storage and is a
// caller error, so pass handles by pointer and transfer them with Swap.
//
// See vector for the dynamic array engine built on top of this package.
package buffer
