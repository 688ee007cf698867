// SPDX-License-Identifier: MIT

// Package ndarray - Array storage (row-major) & safe accessors.
//
// Purpose:
//   - Own a flat buffer interpreted through a fixed-rank Shape.
//   - Map multi-indices to linear offsets with the row-major formula Σ idx[k]*stride[k].
//   - Return errors instead of panicking at the public surface.
//
// Complexity quicksheet:
//   - New/NewFilled/Wrap/Clone: O(n); Flat/SetFlat: O(1); At/Set/Offset: O(rank).

package ndarray

import "fmt"

// ---------- error context tags ----------

const (
	ctxFlat    = "Flat"
	ctxSetFlat = "SetFlat"
	ctxAt      = "At"
	ctxSet     = "Set"
	ctxOffset  = "Offset"
	ctxReshape = "Reshape"
	ctxWrap    = "Wrap"
)

// Number is the element constraint of Array: every built-in integer and float kind.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Array is a row-major N-dimensional array of T.
//   - shape fixes the rank and the extent of every dimension.
//   - data is the flat buffer; len(data) == shape.Size().
//
// The zero value is an empty array of rank 0. Copying an Array value aliases its
// buffer; use Clone for an independent copy.
type Array[T Number] struct {
	shape Shape // extents per dimension
	data  []T   // contiguous row-major storage
}

// Empty returns a zero-size array of the given rank. Nothing is allocated for data.
func Empty[T Number](rank int) *Array[T] {
	if rank < 0 {
		rank = 0
	}

	return &Array[T]{shape: make(Shape, rank)}
}

// New allocates an array of the given shape with every element set to T's zero value.
//
// Errors:
//   - ErrBadShape when the shape has rank 0 or a non-positive extent.
//
// Complexity: O(shape.Size()).
func New[T Number](shape Shape) (*Array[T], error) {
	if err := shape.validate(); err != nil {
		return nil, arrayErrorf("New", err)
	}

	return &Array[T]{shape: shape.Clone(), data: make([]T, shape.Size())}, nil
}

// NewFilled allocates an array of the given shape with every element set to v.
func NewFilled[T Number](shape Shape, v T) (*Array[T], error) {
	a, err := New[T](shape)
	if err != nil {
		return nil, err
	}
	a.Fill(v)

	return a, nil
}

// Wrap builds an array of the given shape from a flat row-major sequence.
// The sequence is copied; later changes to data do not affect the array.
//
// Errors:
//   - ErrBadShape for an invalid shape.
//   - ErrShapeMismatch when len(data) != shape.Size().
func Wrap[T Number](shape Shape, data []T) (*Array[T], error) {
	if err := shape.validate(); err != nil {
		return nil, arrayErrorf(ctxWrap, err)
	}
	if len(data) != shape.Size() {
		return nil, arrayErrorf(ctxWrap, fmt.Errorf("len %d for shape %v: %w", len(data), shape, ErrShapeMismatch))
	}
	buf := make([]T, len(data))
	copy(buf, data)

	return &Array[T]{shape: shape.Clone(), data: buf}, nil
}

// Clone returns a deep copy of the array (shape and buffer).
func (a *Array[T]) Clone() *Array[T] {
	out := &Array[T]{shape: a.shape.Clone()}
	if a.data != nil {
		out.data = make([]T, len(a.data))
		copy(out.data, a.data)
	}

	return out
}

// Shape returns a copy of the array's shape.
func (a *Array[T]) Shape() Shape { return a.shape.Clone() }

// Rank returns the number of dimensions.
func (a *Array[T]) Rank() int { return len(a.shape) }

// Dim returns the extent of dimension k, or 0 when k is not a dimension.
func (a *Array[T]) Dim(k int) int {
	if k < 0 || k >= len(a.shape) {
		return 0
	}

	return a.shape[k]
}

// Len returns the total element count.
func (a *Array[T]) Len() int { return len(a.data) }

// Empty reports whether the array holds no elements.
func (a *Array[T]) Empty() bool { return len(a.data) == 0 }

// Flat returns the element at linear index i.
func (a *Array[T]) Flat(i int) (T, error) {
	if i < 0 || i >= len(a.data) {
		var zero T
		return zero, arrayErrorf(ctxFlat, fmt.Errorf("%d not in [0,%d): %w", i, len(a.data), ErrIndexOutOfRange))
	}

	return a.data[i], nil
}

// SetFlat stores v at linear index i.
func (a *Array[T]) SetFlat(i int, v T) error {
	if i < 0 || i >= len(a.data) {
		return arrayErrorf(ctxSetFlat, fmt.Errorf("%d not in [0,%d): %w", i, len(a.data), ErrIndexOutOfRange))
	}
	a.data[i] = v

	return nil
}

// Offset maps a multi-index to its row-major linear offset.
// MAIN DESCRIPTION:
//   - Validate arity (len(idx) == rank) and every coordinate against its extent.
//   - Accumulate idx[k]*stride[k] from the innermost dimension outwards.
//
// Errors:
//   - ErrIndexOutOfRange on wrong arity or any coordinate outside [0, extent).
//
// Complexity:
//   - Time O(rank), Space O(1).
func (a *Array[T]) Offset(idx ...int) (int, error) {
	if len(idx) != len(a.shape) {
		return 0, arrayErrorf(ctxOffset, fmt.Errorf("%d coordinates for rank %d: %w", len(idx), len(a.shape), ErrIndexOutOfRange))
	}
	off, stride := 0, 1
	for k := len(idx) - 1; k >= 0; k-- {
		if idx[k] < 0 || idx[k] >= a.shape[k] {
			return 0, arrayErrorf(ctxOffset, fmt.Errorf("dim %d: %d not in [0,%d): %w", k, idx[k], a.shape[k], ErrIndexOutOfRange))
		}
		off += idx[k] * stride
		stride *= a.shape[k]
	}

	return off, nil
}

// At returns the element at the given multi-index.
func (a *Array[T]) At(idx ...int) (T, error) {
	off, err := a.Offset(idx...)
	if err != nil {
		var zero T
		return zero, arrayErrorf(ctxAt, err)
	}

	return a.data[off], nil
}

// Set stores v at the given multi-index.
func (a *Array[T]) Set(v T, idx ...int) error {
	off, err := a.Offset(idx...)
	if err != nil {
		return arrayErrorf(ctxSet, err)
	}
	a.data[off] = v

	return nil
}

// Fill assigns v to every element.
func (a *Array[T]) Fill(v T) {
	for i := range a.data {
		a.data[i] = v
	}
}

// Values returns a copy of the flat row-major buffer.
func (a *Array[T]) Values() []T {
	out := make([]T, len(a.data))
	copy(out, a.data)

	return out
}

// Raw returns the backing buffer itself. Writes through it mutate the array;
// callers must not retain it past the array's next shape change.
func (a *Array[T]) Raw() []T { return a.data }

// Reshape reinterprets the buffer under a new shape of the same size, in place.
//
// Errors:
//   - ErrBadShape for an invalid shape.
//   - ErrShapeMismatch when shape.Size() != Len().
func (a *Array[T]) Reshape(shape Shape) error {
	if err := shape.validate(); err != nil {
		return arrayErrorf(ctxReshape, err)
	}
	if shape.Size() != len(a.data) {
		return arrayErrorf(ctxReshape, fmt.Errorf("%v to %v: %w", a.shape, shape, ErrShapeMismatch))
	}
	a.shape = shape.Clone()

	return nil
}

// Equal reports whether both arrays have the same shape and identical elements.
func (a *Array[T]) Equal(b *Array[T]) bool {
	if !a.shape.Equal(b.shape) || len(a.data) != len(b.data) {
		return false
	}
	for i := range a.data {
		if a.data[i] != b.data[i] {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer.
func (a *Array[T]) String() string {
	return fmt.Sprintf("Array%v%v", a.shape, a.data)
}
