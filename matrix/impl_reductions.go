// SPDX-License-Identifier: MIT

// Package matrix - axis-aware reductions.
//
// Exposed API (all methods on *Dense, all take an Axis):
//   - Count(v, axis)          -> occurrences of v
//   - Min/Max(axis)           -> extreme values
//   - Argmin/Argmax(axis)     -> index of the first extreme in scan order
//   - Sum/Mean/Var/Std(axis)  -> elementary statistics (population variance)
//
// Result shapes:
//   - AxisAll: 1×1 (read it with Scalar()).
//   - AxisRow: 1×c, one value per column.
//   - AxisCol: r×1, one value per row.
//
// Argmin/Argmax report the position inside the lane: the row index for AxisRow,
// the column index for AxisCol, the row-major linear index for AxisAll.

package matrix

import (
	"math"
)

// Operation name constants for unified error wrapping.
const (
	opCount  = "Count"
	opMin    = "Min"
	opMax    = "Max"
	opArgmin = "Argmin"
	opArgmax = "Argmax"
	opSum    = "Sum"
	opMean   = "Mean"
	opVar    = "Var"
	opStd    = "Std"
)

// eachLane calls fn once per lane selected by axis, in fixed order:
// columns left→right for AxisRow, rows top→bottom for AxisCol, the whole
// buffer for AxisAll. Column lanes are gathered into a scratch slice; when
// writeBack is set the scratch is scattered back after fn returns.
func (m *Dense) eachLane(axis Axis, writeBack bool, fn func(lane []float64)) {
	r, c := m.Dims()
	buf := m.Raw()
	if len(buf) == 0 {
		return
	}
	switch axis {
	case AxisAll:
		fn(buf)
	case AxisCol:
		for i := 0; i < r; i++ {
			fn(buf[i*c : (i+1)*c])
		}
	case AxisRow:
		lane := make([]float64, r)
		for j := 0; j < c; j++ {
			for i := 0; i < r; i++ {
				lane[i] = buf[i*c+j]
			}
			fn(lane)
			if writeBack {
				for i := 0; i < r; i++ {
					buf[i*c+j] = lane[i]
				}
			}
		}
	}
}

// reduce folds every lane selected by axis into one value.
// Implementation:
//   - Stage 1: validate axis (AxisAll allowed) and non-emptiness.
//   - Stage 2: allocate 1×1, 1×c or r×1 and fill it lane by lane.
//
// Errors:
//   - ErrIndexOutOfRange (axis), ErrEmpty.
//
// Complexity:
//   - Time O(r*c) plus fold cost, Space O(max(r, c)).
func (m *Dense) reduce(op string, axis Axis, fold func(lane []float64) float64) (*Dense, error) {
	if err := ValidateAxis(axis, true); err != nil {
		return nil, matrixErrorf(op, err)
	}
	if err := ValidateNonEmpty(m); err != nil {
		return nil, matrixErrorf(op, err)
	}
	var out *Dense
	switch axis {
	case AxisAll:
		out = newDense(1, 1)
	case AxisRow:
		out = newDense(1, m.Cols())
	default:
		out = newDense(m.Rows(), 1)
	}
	dst := out.Raw()
	k := 0
	m.eachLane(axis, false, func(lane []float64) {
		dst[k] = fold(lane)
		k++
	})

	return out, nil
}

// Count returns how many elements equal v (exact comparison).
func (m *Dense) Count(v float64, axis Axis) (*Dense, error) {
	return m.reduce(opCount, axis, func(lane []float64) float64 {
		n := 0
		for _, x := range lane {
			if x == v {
				n++
			}
		}
		return float64(n)
	})
}

// Min returns the minimum value(s).
func (m *Dense) Min(axis Axis) (*Dense, error) {
	return m.reduce(opMin, axis, func(lane []float64) float64 { return lane[argExtreme(lane, less)] })
}

// Max returns the maximum value(s).
func (m *Dense) Max(axis Axis) (*Dense, error) {
	return m.reduce(opMax, axis, func(lane []float64) float64 { return lane[argExtreme(lane, greater)] })
}

// Argmin returns the index of the minimum; ties resolve to the first occurrence.
func (m *Dense) Argmin(axis Axis) (*Dense, error) {
	return m.reduce(opArgmin, axis, func(lane []float64) float64 { return float64(argExtreme(lane, less)) })
}

// Argmax returns the index of the maximum; ties resolve to the first occurrence.
func (m *Dense) Argmax(axis Axis) (*Dense, error) {
	return m.reduce(opArgmax, axis, func(lane []float64) float64 { return float64(argExtreme(lane, greater)) })
}

// Sum returns the sum of the elements.
func (m *Dense) Sum(axis Axis) (*Dense, error) {
	return m.reduce(opSum, axis, sum)
}

// Mean returns the arithmetic mean.
func (m *Dense) Mean(axis Axis) (*Dense, error) {
	return m.reduce(opMean, axis, mean)
}

// Var returns the population variance: Σ(x-μ)² / n.
func (m *Dense) Var(axis Axis) (*Dense, error) {
	return m.reduce(opVar, axis, variance)
}

// Std returns the population standard deviation, √Var.
func (m *Dense) Std(axis Axis) (*Dense, error) {
	return m.reduce(opStd, axis, func(lane []float64) float64 { return math.Sqrt(variance(lane)) })
}

// ---------- lane folds ----------

func less(a, b float64) bool    { return a < b }
func greater(a, b float64) bool { return a > b }

// argExtreme returns the first index whose value beats every earlier one under better.
func argExtreme(lane []float64, better func(a, b float64) bool) int {
	best := 0
	for i := 1; i < len(lane); i++ {
		if better(lane[i], lane[best]) {
			best = i
		}
	}

	return best
}

func sum(lane []float64) float64 {
	s := 0.0
	for _, x := range lane {
		s += x
	}

	return s
}

func mean(lane []float64) float64 { return sum(lane) / float64(len(lane)) }

func variance(lane []float64) float64 {
	mu := mean(lane)
	acc := 0.0
	for _, x := range lane {
		d := x - mu
		acc += d * d
	}

	return acc / float64(len(lane))
}
