// SPDX-License-Identifier: MIT
// Package ndarray - element-wise compound arithmetic.
//
// Policy:
//   - Operands must have identical shapes (no broadcasting).
//   - The receiver is mutated only after every precondition has passed, so a
//     failed call leaves it untouched.

package ndarray

import "fmt"

// Operation tags for compound operators.
const (
	opAddInPlace = "AddInPlace"
	opSubInPlace = "SubInPlace"
	opMulInPlace = "MulInPlace"
	opDivInPlace = "DivInPlace"
)

// sameShape checks that a and b can be combined element-wise.
func (a *Array[T]) sameShape(op string, b *Array[T]) error {
	if b == nil || !a.shape.Equal(b.shape) || len(a.data) != len(b.data) {
		var other Shape
		if b != nil {
			other = b.shape
		}
		return arrayErrorf(op, fmt.Errorf("%v vs %v: %w", a.shape, other, ErrShapeMismatch))
	}

	return nil
}

// AddInPlace performs a[i] += b[i] for every element.
func (a *Array[T]) AddInPlace(b *Array[T]) error {
	if err := a.sameShape(opAddInPlace, b); err != nil {
		return err
	}
	for i := range a.data {
		a.data[i] += b.data[i]
	}

	return nil
}

// SubInPlace performs a[i] -= b[i] for every element.
func (a *Array[T]) SubInPlace(b *Array[T]) error {
	if err := a.sameShape(opSubInPlace, b); err != nil {
		return err
	}
	for i := range a.data {
		a.data[i] -= b.data[i]
	}

	return nil
}

// MulInPlace performs a[i] *= b[i] for every element (Hadamard product).
func (a *Array[T]) MulInPlace(b *Array[T]) error {
	if err := a.sameShape(opMulInPlace, b); err != nil {
		return err
	}
	for i := range a.data {
		a.data[i] *= b.data[i]
	}

	return nil
}

// DivInPlace performs a[i] /= b[i] for every element.
// Stage 1: shape check. Stage 2: scan b for zeros. Stage 3: divide.
//
// Errors:
//   - ErrShapeMismatch for differing shapes.
//   - ErrDivisionByZero when any b[i] == 0; a is not modified.
func (a *Array[T]) DivInPlace(b *Array[T]) error {
	if err := a.sameShape(opDivInPlace, b); err != nil {
		return err
	}
	for i, v := range b.data {
		if v == 0 {
			return arrayErrorf(opDivInPlace, fmt.Errorf("divisor[%d]: %w", i, ErrDivisionByZero))
		}
	}
	for i := range a.data {
		a.data[i] /= b.data[i]
	}

	return nil
}
