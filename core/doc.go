// Package core defines the value types and the error taxonomy shared by every
// numcore builder: PointSet, the sentinel errors, abscissa validators, and
// small sampling helpers.
//
// 🚀 What lives here?
//
//	• PointSet    - immutable ordered (x, y) samples, copied on construction
//	• Sentinels   - ErrSizeMismatch, ErrDuplicateAbscissa, ErrSingular,
//	                ErrOutOfDomain, ErrParse, ErrNonFinite, ...
//	• Validators  - ValidateSameLen, ValidateFinite, ValidateDistinct,
//	                ValidateIncreasing
//	• Sampling    - Linspace, Evaluator, EvalAll
//
// Every builder (lsq, lagrange, newton, spline) validates through this
// package, so a caller only needs errors.Is against core sentinels:
//
//	m, err := spline.Natural(xs, ys)
//	if errors.Is(err, core.ErrDuplicateAbscissa) {
//		// report the duplicated x value
//	}
//
// Nothing in core keeps mutable package state; all functions are safe for
// concurrent use.
package core
