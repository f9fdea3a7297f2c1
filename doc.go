// Package vec is a teaching-grade foundation for sequence containers:
// a generic, resizable, contiguous array with explicit capacity control
// and single-owner storage underneath higher-level data structures.
//
// 🚀 What is vec?
//
//	A small, zero-surprise library that brings together:
//		• Buffer handle: single-owner contiguous storage with O(1) ownership exchange
//		• Dynamic array: amortized O(1) append with geometric (doubling) growth
//		• Explicit capacity: reserve-hint construction, Reserve, Resize, Clear
//		• Positional editing: Insert and Erase with well-defined shift direction
//		• Value semantics: Clone (capacity-faithful copy), Move, Swap
//		• Ordering: element-wise equality and lexicographic comparison
//
// ✨ Why choose vec?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Predictable costs – every exported method documents its complexity
//   - Pure Go – no cgo, no hidden deps
//   - Honest contracts – checked accessors return sentinel errors, never panic
//
// Under the hood, everything is organized under two subpackages:
//
//	buffer/ — Handle, the single-owner contiguous storage block
//	vector/ — Vector, the dynamic array engine built on top of Handle
//
// Quick sketch:
//
//	    size ──────┐
//	    [ 1 2 3 4 ] . . . .
//	    └───────── capacity ─────────┘
//
//	occupied prefix [0, size); allocated slots [0, capacity).
//
// Dive into the package docs of vector/ for the full contract, including
// growth policy, iterator invalidation, and the error taxonomy.
//
//	go get github.com/katalvlaran/vec/vector
package vec
