// SPDX-License-Identifier: MIT

// Package matrix - slicing, concatenation and in-place reordering.
//
// Purpose:
//   - Submat/SubmatRange/Minor: copy-based extraction of rows or columns.
//   - Append: vertical (AxisRow) or horizontal (AxisCol) concatenation.
//   - Swap/Sort: the only in-place reorderings of the engine.
//   - Reshape/T: new matrices over the same values.
//
// Determinism:
//   - Fixed i→j traversal everywhere; results never alias the receiver.

package matrix

import (
	"fmt"
	"slices"
)

// Operation name constants for unified error wrapping.
const (
	opSubmat      = "Submat"
	opSubmatRange = "SubmatRange"
	opMinor       = "Minor"
	opAppend      = "Append"
	opSwap        = "Swap"
	opSort        = "Sort"
	opReshape     = "Reshape"
	opSplitLabels = "SplitLabels"
)

// extent returns the size of the dimension addressed by axis (rows or columns).
func (m *Dense) extent(axis Axis) int {
	if axis == AxisRow {
		return m.Rows()
	}

	return m.Cols()
}

// checkIndex validates idx against the extent selected by axis.
func (m *Dense) checkIndex(idx int, axis Axis) error {
	if n := m.extent(axis); idx < 0 || idx >= n {
		return fmt.Errorf("%s index %d not in [0,%d): %w", axis, idx, n, ErrIndexOutOfRange)
	}

	return nil
}

// Submat extracts a single row (AxisRow) or column (AxisCol) as a 1×c or r×1 matrix.
// This is the per-sample access path: m.Submat(i, AxisRow) is sample i.
//
// Errors:
//   - ErrIndexOutOfRange for an invalid axis or index.
func (m *Dense) Submat(idx int, axis Axis) (*Dense, error) {
	if err := ValidateAxis(axis, false); err != nil {
		return nil, matrixErrorf(opSubmat, err)
	}
	if err := m.checkIndex(idx, axis); err != nil {
		return nil, matrixErrorf(opSubmat, err)
	}

	return m.gather(axis, []int{idx}), nil
}

// Row returns a copy of row i (1×c).
func (m *Dense) Row(i int) (*Dense, error) { return m.Submat(i, AxisRow) }

// Col returns a copy of column j (r×1).
func (m *Dense) Col(j int) (*Dense, error) { return m.Submat(j, AxisCol) }

// SubmatRange extracts every interval-th row (AxisRow) or column (AxisCol) in [begin, end).
// Implementation:
//   - Stage 1: validate axis, interval >= 1 and 0 <= begin < end <= extent.
//   - Stage 2: enumerate begin, begin+interval, … < end and gather those lanes.
//
// Behavior highlights:
//   - The result has ceil((end-begin)/interval) rows (or columns).
//   - SubmatRange(1, 4, 2, AxisRow) on a 5-row matrix returns rows {1, 3}.
//
// Errors:
//   - ErrIndexOutOfRange for an invalid axis, a non-positive interval or bounds
//     outside the selected extent.
//
// Complexity:
//   - Time O(k*w) where k is the number of visited lanes and w their length.
func (m *Dense) SubmatRange(begin, end, interval int, axis Axis) (*Dense, error) {
	if err := ValidateAxis(axis, false); err != nil {
		return nil, matrixErrorf(opSubmatRange, err)
	}
	if interval < 1 {
		return nil, matrixErrorf(opSubmatRange, fmt.Errorf("interval %d: %w", interval, ErrIndexOutOfRange))
	}
	if n := m.extent(axis); begin < 0 || end > n || begin >= end {
		return nil, matrixErrorf(opSubmatRange, fmt.Errorf("[%d,%d) within %d %ss: %w", begin, end, n, axis, ErrIndexOutOfRange))
	}
	idx := make([]int, 0, (end-begin+interval-1)/interval)
	for k := begin; k < end; k += interval {
		idx = append(idx, k)
	}

	return m.gather(axis, idx), nil
}

// Minor returns the matrix with row idx (AxisRow) or column idx (AxisCol) removed.
// Removing the last remaining row or column yields the empty matrix.
//
// Errors:
//   - ErrIndexOutOfRange for an invalid axis or index.
func (m *Dense) Minor(idx int, axis Axis) (*Dense, error) {
	if err := ValidateAxis(axis, false); err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	if err := m.checkIndex(idx, axis); err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	n := m.extent(axis)
	keep := make([]int, 0, n-1)
	for k := 0; k < n; k++ {
		if k != idx {
			keep = append(keep, k)
		}
	}

	return m.gather(axis, keep), nil
}

// gather copies the selected rows (AxisRow) or columns (AxisCol) in the given order.
// Indices must already be validated.
func (m *Dense) gather(axis Axis, idx []int) *Dense {
	r, c := m.Dims()
	src := m.Raw()
	if axis == AxisRow {
		out := newDense(len(idx), c)
		dst := out.Raw()
		for k, i := range idx {
			copy(dst[k*c:(k+1)*c], src[i*c:(i+1)*c])
		}
		return out
	}
	w := len(idx)
	out := newDense(r, w)
	dst := out.Raw()
	for i := 0; i < r; i++ {
		for k, j := range idx {
			dst[i*w+k] = src[i*c+j]
		}
	}

	return out
}

// Append concatenates o after m: below it (AxisRow) or to its right (AxisCol).
func (m *Dense) Append(o *Dense, axis Axis) (*Dense, error) {
	return Append(axis, m, o)
}

// Append concatenates two or more matrices along axis.
// Implementation:
//   - Stage 1: validate axis; reject nil operands; skip empty operands.
//   - Stage 2: check the non-stacked extent (cols for AxisRow, rows for AxisCol).
//   - Stage 3: copy operands in order into one freshly allocated result.
//
// Behavior highlights:
//   - Empty matrices are neutral, so an accumulator may start from NewEmpty().
//   - The result's stacked extent is the sum of the operands'.
//
// Errors:
//   - ErrIndexOutOfRange for an invalid axis, ErrNilMatrix for a nil operand,
//     ErrShapeMismatch when the non-stacked extents differ.
//
// Complexity:
//   - Time O(total elements), Space O(total elements).
func Append(axis Axis, ms ...*Dense) (*Dense, error) {
	if err := ValidateAxis(axis, false); err != nil {
		return nil, matrixErrorf(opAppend, err)
	}
	parts := make([]*Dense, 0, len(ms))
	for k, p := range ms {
		if p == nil {
			return nil, matrixErrorf(opAppend, fmt.Errorf("operand %d: %w", k, ErrNilMatrix))
		}
		if p.Len() == 0 {
			continue
		}
		parts = append(parts, p)
	}
	if len(parts) == 0 {
		return NewEmpty(), nil
	}

	if axis == AxisRow {
		cols, rows := parts[0].Cols(), 0
		for k, p := range parts {
			if p.Cols() != cols {
				return nil, matrixErrorf(opAppend, fmt.Errorf("operand %d has %d cols, want %d: %w", k, p.Cols(), cols, ErrShapeMismatch))
			}
			rows += p.Rows()
		}
		out := newDense(rows, cols)
		dst, off := out.Raw(), 0
		for _, p := range parts {
			off += copy(dst[off:], p.Raw())
		}
		return out, nil
	}

	rows, cols := parts[0].Rows(), 0
	for k, p := range parts {
		if p.Rows() != rows {
			return nil, matrixErrorf(opAppend, fmt.Errorf("operand %d has %d rows, want %d: %w", k, p.Rows(), rows, ErrShapeMismatch))
		}
		cols += p.Cols()
	}
	out := newDense(rows, cols)
	dst := out.Raw()
	for i := 0; i < rows; i++ {
		off := i * cols
		for _, p := range parts {
			off += copy(dst[off:], p.row(i))
		}
	}

	return out, nil
}

// Swap exchanges rows (AxisRow) or columns (AxisCol) from and to, in place.
//
// Errors:
//   - ErrIndexOutOfRange for an invalid axis or index; m is not modified.
func (m *Dense) Swap(from, to int, axis Axis) error {
	if err := ValidateAxis(axis, false); err != nil {
		return matrixErrorf(opSwap, err)
	}
	if err := m.checkIndex(from, axis); err != nil {
		return matrixErrorf(opSwap, err)
	}
	if err := m.checkIndex(to, axis); err != nil {
		return matrixErrorf(opSwap, err)
	}
	if from == to {
		return nil
	}
	r, c := m.Dims()
	buf := m.Raw()
	if axis == AxisRow {
		a, b := m.row(from), m.row(to)
		for j := 0; j < c; j++ {
			a[j], b[j] = b[j], a[j]
		}
		return nil
	}
	for i := 0; i < r; i++ {
		buf[i*c+from], buf[i*c+to] = buf[i*c+to], buf[i*c+from]
	}

	return nil
}

// Sort orders values in place: each column (AxisRow), each row (AxisCol), or the
// whole row-major buffer (AxisAll). Ascending unless desc is true.
// Stability is not guaranteed; only the sorted values are observable.
//
// Errors:
//   - ErrIndexOutOfRange for an invalid axis.
func (m *Dense) Sort(desc bool, axis Axis) error {
	if err := ValidateAxis(axis, true); err != nil {
		return matrixErrorf(opSort, err)
	}
	order := func(lane []float64) {
		slices.Sort(lane)
		if desc {
			slices.Reverse(lane)
		}
	}
	m.eachLane(axis, true, order)

	return nil
}

// Reshape returns a copy re-read with the given row count; cols = Len()/rows.
//
// Errors:
//   - ErrEmpty for an empty matrix.
//   - ErrIndivisibleReshape when rows <= 0 or Len() % rows != 0.
func (m *Dense) Reshape(rows int) (*Dense, error) {
	n := m.Len()
	if n == 0 {
		return nil, matrixErrorf(opReshape, ErrEmpty)
	}
	if rows <= 0 || n%rows != 0 {
		return nil, matrixErrorf(opReshape, fmt.Errorf("%d elements into %d rows: %w", n, rows, ErrIndivisibleReshape))
	}
	out := newDense(rows, n/rows)
	copy(out.Raw(), m.Raw())

	return out, nil
}

// T returns the transpose: out[i][j] = m[j][i]. T is an involution.
// Complexity: O(r*c).
func (m *Dense) T() *Dense {
	r, c := m.Dims()
	out := newDense(c, r)
	src, dst := m.Raw(), out.Raw()
	for i := 0; i < r; i++ {
		base := i * c
		for j := 0; j < c; j++ {
			dst[j*r+i] = src[base+j]
		}
	}

	return out
}

// SplitLabels separates the label column from the feature columns.
// The label is the last column when rear is true, else the first.
// Labels are always returned as a single column (n×1): label i is labels.At(i, 0).
//
// Errors:
//   - ErrShapeMismatch when m has fewer than two columns.
func SplitLabels(m *Dense, rear bool) (features, labels *Dense, err error) {
	if err = ValidateNonEmpty(m); err != nil {
		return nil, nil, matrixErrorf(opSplitLabels, err)
	}
	c := m.Cols()
	if c < 2 {
		return nil, nil, matrixErrorf(opSplitLabels, fmt.Errorf("%d column: %w", c, ErrShapeMismatch))
	}
	at := 0
	if rear {
		at = c - 1
	}
	if labels, err = m.Submat(at, AxisCol); err != nil {
		return nil, nil, matrixErrorf(opSplitLabels, err)
	}
	if features, err = m.Minor(at, AxisCol); err != nil {
		return nil, nil, matrixErrorf(opSplitLabels, err)
	}

	return features, labels, nil
}
