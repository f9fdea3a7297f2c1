// Package buffer_test contains unit tests for the Handle storage block.
package buffer_test

import (
	"testing"

	"github.com/katalvlaran/vec/buffer"
	"github.com/stretchr/testify/require"
)

// TestAllocNegativeLength ensures Alloc rejects a negative slot count.
func TestAllocNegativeLength(t *testing.T) {
	_, err := buffer.Alloc[int](-1)                   // attempt to allocate a negative-length block
	require.ErrorIs(t, err, buffer.ErrNegativeLength) // expect ErrNegativeLength
}

// TestAllocZeroIsEmpty verifies that a zero-length request yields the empty state.
func TestAllocZeroIsEmpty(t *testing.T) {
	h, err := buffer.Alloc[int](0) // allocate zero slots
	require.NoError(t, err)        // zero-length requests are valid

	require.Equal(t, 0, h.Cap()) // no slots are held
	require.Nil(t, h.Raw())      // empty handles expose no block
}

// TestAllocZeroInitialized verifies the block arrives zero-valued at full length.
func TestAllocZeroInitialized(t *testing.T) {
	h, err := buffer.Alloc[int](4) // allocate four slots
	require.NoError(t, err)        // valid length, no error

	require.Equal(t, 4, h.Cap())                 // allocated slot count matches the request
	require.Equal(t, []int{0, 0, 0, 0}, h.Raw()) // all slots are zero-valued
}

// TestRawIsAddressable ensures writes through Raw land in the owned block.
func TestRawIsAddressable(t *testing.T) {
	h, err := buffer.Alloc[string](2) // allocate two string slots
	require.NoError(t, err)           // valid length, no error

	h.Raw()[1] = "stored"                  // write through the raw view
	require.Equal(t, "stored", h.Raw()[1]) // the write is visible on re-read
}

// TestSwapExchangesOwnership verifies Swap trades blocks without copying elements.
func TestSwapExchangesOwnership(t *testing.T) {
	a, err := buffer.Alloc[int](1) // one-slot block
	require.NoError(t, err)
	b, err := buffer.Alloc[int](3) // three-slot block
	require.NoError(t, err)

	a.Raw()[0] = 7 // mark a's block
	b.Raw()[2] = 9 // mark b's block

	a.Swap(&b) // exchange ownership

	require.Equal(t, 3, a.Cap())    // a now owns the three-slot block
	require.Equal(t, 9, a.Raw()[2]) // including its contents
	require.Equal(t, 1, b.Cap())    // b now owns the one-slot block
	require.Equal(t, 7, b.Raw()[0]) // including its contents
}

// TestSwapWithEmpty verifies the empty state transfers cleanly through Swap.
func TestSwapWithEmpty(t *testing.T) {
	var empty buffer.Handle[int]      // zero value is the empty state
	full, err := buffer.Alloc[int](2) // two-slot block
	require.NoError(t, err)

	full.Swap(&empty) // hand the block to the empty handle

	require.Equal(t, 0, full.Cap())  // the donor reverts to empty
	require.Equal(t, 2, empty.Cap()) // the recipient owns the block
}

// TestReleaseEmptiesHandle ensures Release reverts a handle to the empty state.
func TestReleaseEmptiesHandle(t *testing.T) {
	h, err := buffer.Alloc[int](5) // allocate five slots
	require.NoError(t, err)

	h.Release() // drop the block

	require.Equal(t, 0, h.Cap()) // no slots remain
	require.Nil(t, h.Raw())      // no block is exposed
}
