// SPDX-License-Identifier: MIT

// Package matrix: functional configuration of the numeric comparison policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Consumers: Almost, Equal and the singularity check of Dense.Inv.
package matrix

import (
	"math"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultPrecision is the number of binary digits two values must share to be
	// "almost" equal: |a-b| <= 2^-DefaultPrecision * max(1, |a|, |b|) (≈ 9.3e-10).
	DefaultPrecision = 30

	// MaxPrecision is the largest accepted precision; beyond it float64 cannot
	// distinguish values anyway.
	MaxPrecision = 52
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicPrecisionInvalid = "matrix: WithPrecision: digits must be in [1, 52]"
	panicEpsilonInvalid   = "matrix: WithEpsilon: eps must be finite, non-negative"
)

// Option mutates internal options. Constructors panic only on nonsensical values
// (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	precision int     // binary digits; DefaultPrecision
	eps       float64 // absolute tolerance override
	absolute  bool    // true once WithEpsilon was applied
}

// WithPrecision sets the number of binary digits used by relative comparisons.
// Larger values are stricter.
//
// Panics when digits is outside [1, MaxPrecision].
func WithPrecision(digits int) Option {
	if digits < 1 || digits > MaxPrecision {
		panic(panicPrecisionInvalid)
	}

	return func(o *Options) {
		o.precision = digits
		o.absolute = false
	}
}

// WithEpsilon switches comparisons to a fixed absolute tolerance: |a-b| <= eps.
// The last of WithPrecision/WithEpsilon wins.
//
// Panics when eps is NaN, ±Inf or negative.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) {
		o.eps = eps
		o.absolute = true
	}
}

// NewOptions resolves setters on top of the defaults. Exposed for callers that
// want to inspect the effective tolerance.
func NewOptions(opts ...Option) Options { return gatherOptions(opts...) }

// Precision returns the effective binary precision.
func (o Options) Precision() int { return o.precision }

// Tolerance returns the tolerance factor: eps in absolute mode, 2^-precision otherwise.
func (o Options) Tolerance() float64 {
	if o.absolute {
		return o.eps
	}

	return math.Ldexp(1, -o.precision)
}

// gatherOptions applies user setters on top of defaults (last-writer-wins).
func gatherOptions(user ...Option) Options {
	o := Options{precision: DefaultPrecision}
	for _, set := range user {
		set(&o)
	}

	return o
}

// close reports whether a and b agree under o.
// Exact equality (including equal infinities) always agrees; NaN never does.
func (o Options) close(a, b float64) bool {
	if a == b {
		return true
	}
	if math.IsNaN(a) || math.IsNaN(b) || math.IsInf(a, 0) || math.IsInf(b, 0) {
		return false
	}
	diff := math.Abs(a - b)
	if o.absolute {
		return diff <= o.eps
	}
	scale := math.Max(1, math.Max(math.Abs(a), math.Abs(b)))

	return diff <= math.Ldexp(scale, -o.precision)
}
