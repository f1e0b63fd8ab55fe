// SPDX-License-Identifier: MIT

package spline

import "math"

// DefaultMinSpacing rejects only exactly coincident knots.
const DefaultMinSpacing = 0.0

const panicMinSpacingInvalid = "spline: WithMinSpacing: h must be finite, non-negative"

// Option configures a spline builder.
type Option func(*options)

type options struct {
	minSpacing float64 // gaps ≤ minSpacing are duplicates; DefaultMinSpacing
	linear     bool    // interval lookup by linear scan
}

// WithMinSpacing rejects knot pairs with x[i+1]-x[i] ≤ h as duplicates.
// Panics if h is negative or not finite.
func WithMinSpacing(h float64) Option {
	if math.IsNaN(h) || math.IsInf(h, 0) || h < 0 {
		panic(panicMinSpacingInvalid)
	}

	return func(o *options) { o.minSpacing = h }
}

// WithLinearSearch makes Eval and Derivative scan intervals from the left.
func WithLinearSearch() Option {
	return func(o *options) { o.linear = true }
}

func gatherOptions(opts []Option) options {
	o := options{minSpacing: DefaultMinSpacing}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
