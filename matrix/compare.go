// SPDX-License-Identifier: MIT

// Package matrix - approximate comparison.
//
// Almost is the single scalar predicate of the package: Equal, Inv's singularity
// check and the tests all go through it, so one Option set governs them all.

package matrix

// Almost reports whether v and target agree within the configured tolerance.
// By default the tolerance is relative: |v-target| <= 2^-30 * max(1, |v|, |target|).
// WithEpsilon switches to the absolute rule |v-target| <= eps.
//
// Behavior highlights:
//   - Exactly equal values always agree (including equal infinities).
//   - NaN agrees with nothing.
func Almost(v, target float64, opts ...Option) bool {
	return gatherOptions(opts...).close(v, target)
}

// Equal reports whether a and b have the same shape and every pair of elements
// is Almost equal. Two empty matrices are equal; nil never is.
// Complexity: O(r*c).
func Equal(a, b *Dense, opts ...Option) bool {
	if a == nil || b == nil {
		return false
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false
	}
	o := gatherOptions(opts...)
	bd := b.Raw()
	for i, v := range a.Raw() {
		if !o.close(v, bd[i]) {
			return false
		}
	}

	return true
}

// AllClose checks element-wise |a-b| <= atol + rtol*|b| for identical shapes,
// the numpy-style rule for callers that want explicit relative and absolute terms.
//
// Errors:
//   - ErrNilMatrix, ErrShapeMismatch; ErrIndexOutOfRange for NaN/Inf tolerances.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	return ewAllClose(a, b, rtol, atol)
}
