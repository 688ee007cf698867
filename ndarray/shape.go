// SPDX-License-Identifier: MIT

package ndarray

import (
	"fmt"
	"strings"
)

// Shape is an ordered tuple of per-dimension extents.
// The rank (len) is fixed once an Array is built from it.
type Shape []int

// NewShape validates extents and returns them as a Shape.
// Every extent must be positive; an empty extent list is rejected.
func NewShape(extents ...int) (Shape, error) {
	if len(extents) == 0 {
		return nil, fmt.Errorf("NewShape: rank 0: %w", ErrBadShape)
	}
	for i, e := range extents {
		if e <= 0 {
			return nil, fmt.Errorf("NewShape: extent[%d]=%d: %w", i, e, ErrBadShape)
		}
	}
	s := make(Shape, len(extents))
	copy(s, extents)

	return s, nil
}

// Rank returns the number of dimensions.
func (s Shape) Rank() int { return len(s) }

// Size returns the product of the extents (0 for a zero-extent shape).
func (s Shape) Size() int {
	if len(s) == 0 {
		return 0
	}
	n := 1
	for _, e := range s {
		n *= e
	}

	return n
}

// Equal reports whether both shapes have the same rank and extents.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}

	return true
}

// Clone returns an independent copy.
func (s Shape) Clone() Shape {
	out := make(Shape, len(s))
	copy(out, s)

	return out
}

// Strides returns the row-major stride of every dimension:
// stride[k] is the product of all extents after k.
func (s Shape) Strides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}
	strides[len(s)-1] = 1
	for k := len(s) - 2; k >= 0; k-- {
		strides[k] = strides[k+1] * s[k+1]
	}

	return strides
}

// String renders the shape as "(d0×d1×…)".
func (s Shape) String() string {
	parts := make([]string, len(s))
	for i, e := range s {
		parts[i] = fmt.Sprint(e)
	}

	return "(" + strings.Join(parts, "×") + ")"
}

// validate checks a shape used to allocate storage.
func (s Shape) validate() error {
	_, err := NewShape(s...)
	return err
}
