// SPDX-License-Identifier: MIT

// Package ndarray provides a fixed-rank, row-major N-dimensional array.
//
// What & Why:
//
//	Array[T] owns exactly one contiguous buffer and the Shape that interprets it.
//	It is the storage substrate of the matrix package: the 2-D Grid and the
//	float64 Dense engine are built on top of it and never reach around it.
//
// Guarantees:
//   - len(buffer) == Shape.Size() at all times.
//   - Exclusive ownership: every constructor copies its input and Clone deep-copies,
//     so no two live arrays share a mutable buffer (Raw is the only, documented, escape hatch).
//   - No panics on user input: out-of-range indices, mismatched shapes and zero divisors
//     are reported through the sentinel errors in errors.go.
//
// Complexity:
//
//	Flat/At/Set run in O(rank); Clone, Fill and compound arithmetic in O(Len).
package ndarray
