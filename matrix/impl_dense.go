// SPDX-License-Identifier: MIT

// Package matrix - Dense: the float64 linear-algebra engine.
//
// Purpose:
//   - Specialize Grid to float64 and implement the Matrix interface.
//   - Provide the conversion constructors used to ingest parsed samples
//     (flat sequence, flat sequence + row count, nested rows, arrays, grids).
//   - Guard the compound operators with shape checks before delegating to the
//     generic buffer's in-place update.
//
// Ownership:
//   - Every constructor copies its input; Clone deep-copies. Assigning a *Dense
//     shares the pointer, not a second buffer.
//   - A 0×0 Dense (NewEmpty) is the only empty shape the engine produces.
//
// Complexity quicksheet:
//   - NewDense/From*: O(r*c); At/Set: O(1); Clone: O(r*c); compound ops: O(r*c).

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/nml/ndarray"
)

// ---------- error context tags ----------

const (
	ctxFromSlice     = "FromSlice"
	ctxFromSliceRows = "FromSliceRows"
	ctxFromRows      = "FromRows"
	ctxFromArray     = "FromArray"
	ctxAddInPlace    = "AddInPlace"
	ctxSubInPlace    = "SubInPlace"
	ctxMulInPlace    = "MulInPlace"
	ctxDivInPlace    = "DivInPlace"
	ctxDivScalar     = "DivScalarInPlace"
	ctxScalar        = "Scalar"
)

// ---------- Formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
	_fmtValue    = "%g"
)

// denseErrorf wraps an error with a uniform Dense context.
func denseErrorf(method string, err error) error {
	return fmt.Errorf("Dense.%s: %w", method, err)
}

// Dense is a row-major matrix of float64 values.
type Dense struct {
	Grid[float64]
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation.
//
// Errors:
//   - ErrBadShape when rows <= 0 or cols <= 0.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	g, err := NewGrid[float64](rows, cols)
	if err != nil {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, err)
	}

	return &Dense{Grid: *g}, nil
}

// NewEmpty returns a 0×0 matrix. Nothing is allocated for data.
// It is the neutral element of Append.
func NewEmpty() *Dense { return &Dense{Grid: emptyGrid[float64]()} }

// newDense is the internal allocator: a zero rows×cols matrix, or the empty
// matrix when either extent is zero.
func newDense(rows, cols int) *Dense {
	if rows <= 0 || cols <= 0 {
		return NewEmpty()
	}
	a, _ := ndarray.New[float64](ndarray.Shape{rows, cols}) // shape is valid by the guard above

	return &Dense{Grid: Grid[float64]{Array: *a}}
}

// FromSlice interprets a flat sequence as a single row (1×L).
// The sequence is copied.
//
// Errors:
//   - ErrEmpty when len(data) == 0.
func FromSlice(data []float64) (*Dense, error) {
	if len(data) == 0 {
		return nil, denseErrorf(ctxFromSlice, ErrEmpty)
	}
	out := newDense(1, len(data))
	copy(out.Raw(), data)

	return out, nil
}

// FromSliceRows interprets a flat row-major sequence as rows×(L/rows).
// MAIN DESCRIPTION:
//   - The ingestion path for parsed samples: one flat buffer plus a row count.
//
// Errors:
//   - ErrEmpty when len(data) == 0.
//   - ErrIndivisibleReshape when rows <= 0 or L is not a multiple of rows.
//
// Complexity:
//   - Time O(L), Space O(L).
func FromSliceRows(data []float64, rows int) (*Dense, error) {
	if len(data) == 0 {
		return nil, denseErrorf(ctxFromSliceRows, ErrEmpty)
	}
	if rows <= 0 || len(data)%rows != 0 {
		return nil, denseErrorf(ctxFromSliceRows, fmt.Errorf("%d elements into %d rows: %w", len(data), rows, ErrIndivisibleReshape))
	}
	out := newDense(rows, len(data)/rows)
	copy(out.Raw(), data)

	return out, nil
}

// FromRows builds a matrix from nested rows; every row must have the same length.
//
// Errors:
//   - ErrEmpty when there are no rows or the first row is empty.
//   - ErrShapeMismatch for ragged input.
func FromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, denseErrorf(ctxFromRows, ErrEmpty)
	}
	cols := len(rows[0])
	out := newDense(len(rows), cols)
	buf := out.Raw()
	for i, r := range rows {
		if len(r) != cols {
			return nil, denseErrorf(ctxFromRows, fmt.Errorf("row %d has %d values, want %d: %w", i, len(r), cols, ErrShapeMismatch))
		}
		copy(buf[i*cols:(i+1)*cols], r)
	}

	return out, nil
}

// FromArray deep-copies a rank-2 float64 array into a Dense.
func FromArray(a *ndarray.Array[float64]) (*Dense, error) {
	g, err := GridFromArray(a)
	if err != nil {
		return nil, denseErrorf(ctxFromArray, err)
	}

	return &Dense{Grid: *g}, nil
}

// FromGrid deep-copies a float64 grid into a Dense.
func FromGrid(g *Grid[float64]) (*Dense, error) {
	if g == nil {
		return nil, denseErrorf("FromGrid", ErrNilMatrix)
	}

	return &Dense{Grid: *g.Clone()}, nil
}

// Clone returns a deep copy of the matrix.
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix { return m.Copy() }

// Copy is Clone with the concrete type.
func (m *Dense) Copy() *Dense { return &Dense{Grid: *m.Grid.Clone()} }

// Scalar returns the single value of a 1×1 matrix (the AxisAll reduction shape).
//
// Errors:
//   - ErrShapeMismatch when the matrix is not 1×1.
func (m *Dense) Scalar() (float64, error) {
	if m.Rows() != 1 || m.Cols() != 1 {
		return 0, denseErrorf(ctxScalar, fmt.Errorf("%dx%d: %w", m.Rows(), m.Cols(), ErrShapeMismatch))
	}

	return m.Raw()[0], nil
}

// RawRows returns a copy of the matrix as nested rows.
func (m *Dense) RawRows() [][]float64 {
	r, c := m.Dims()
	out := make([][]float64, r)
	buf := m.Raw()
	for i := 0; i < r; i++ {
		out[i] = make([]float64, c)
		copy(out[i], buf[i*c:(i+1)*c])
	}

	return out
}

// ---------- Compound operators ----------

// compound validates shapes on the Dense layer and delegates the in-place
// update to the generic buffer.
func (m *Dense) compound(ctx string, o *Dense, apply func(a, b *ndarray.Array[float64]) error) error {
	if err := ValidateBinarySameShape(m, o); err != nil {
		return denseErrorf(ctx, err)
	}
	if err := ValidateNonEmpty(m); err != nil {
		return denseErrorf(ctx, err)
	}
	if err := apply(&m.Array, &o.Array); err != nil {
		return denseErrorf(ctx, err)
	}

	return nil
}

// AddInPlace performs m += o element-wise.
//
// Errors: ErrNilMatrix, ErrShapeMismatch, ErrEmpty.
func (m *Dense) AddInPlace(o *Dense) error {
	return m.compound(ctxAddInPlace, o, (*ndarray.Array[float64]).AddInPlace)
}

// SubInPlace performs m -= o element-wise.
func (m *Dense) SubInPlace(o *Dense) error {
	return m.compound(ctxSubInPlace, o, (*ndarray.Array[float64]).SubInPlace)
}

// MulInPlace performs m *= o element-wise (Hadamard product, not Dot).
func (m *Dense) MulInPlace(o *Dense) error {
	return m.compound(ctxMulInPlace, o, (*ndarray.Array[float64]).MulInPlace)
}

// DivInPlace performs m /= o element-wise.
// Every element of o must be non-zero; otherwise ErrDivisionByZero is returned
// and m is left unchanged.
func (m *Dense) DivInPlace(o *Dense) error {
	return m.compound(ctxDivInPlace, o, (*ndarray.Array[float64]).DivInPlace)
}

// ScaleInPlace multiplies every element by alpha.
func (m *Dense) ScaleInPlace(alpha float64) {
	buf := m.Raw()
	for i := range buf {
		buf[i] *= alpha
	}
}

// DivScalarInPlace divides every element by s.
//
// Errors: ErrDivisionByZero when s == 0.
func (m *Dense) DivScalarInPlace(s float64) error {
	if s == 0 {
		return denseErrorf(ctxDivScalar, ErrDivisionByZero)
	}
	buf := m.Raw()
	for i := range buf {
		buf[i] /= s
	}

	return nil
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(r*c).
func (m *Dense) String() string {
	var sb strings.Builder
	r, c := m.Dims()
	buf := m.Raw()
	for i := 0; i < r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprintf(&sb, _fmtValue, buf[i*c+j])
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
