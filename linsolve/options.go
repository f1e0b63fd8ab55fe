// SPDX-License-Identifier: MIT

package linsolve

import "math"

// DefaultPivotTolerance is the absolute threshold at or below which a pivot
// counts as zero. The default treats only an exact zero as singular.
const DefaultPivotTolerance = 0.0

const panicPivotToleranceInvalid = "linsolve: WithPivotTolerance: tol must be finite, non-negative"

// Option mutates internal options.
type Option func(*options)

type options struct {
	pivotTol float64 // >= 0; DefaultPivotTolerance
}

// WithPivotTolerance treats any pivot with |p| ≤ tol as zero.
// Panics when tol is negative or not finite (programmer error).
func WithPivotTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicPivotToleranceInvalid)
	}

	return func(o *options) { o.pivotTol = tol }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts []Option) options {
	o := options{pivotTol: DefaultPivotTolerance}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
