// SPDX-License-Identifier: MIT
// Package core: sentinel error set shared by all builders.
// Callers match failure kinds with errors.Is. Builders wrap these with an
// operation tag and the offending input value, never with array indices only.

package core

import (
	"errors"

	"github.com/katalvlaran/numcore/matrix"
)

var (
	// ErrSizeMismatch indicates x/y sequences (or matrix/vector operands) whose
	// lengths differ from what the operation requires. It is the same sentinel
	// as matrix.ErrDimensionMismatch so solver and builder errors match alike.
	ErrSizeMismatch = matrix.ErrDimensionMismatch

	// ErrSingular indicates a zero pivot after row selection: the linear
	// system has no unique solution. Alias of matrix.ErrSingular.
	ErrSingular = matrix.ErrSingular

	// ErrNonFinite indicates a NaN or ±Inf input or result. Alias of matrix.ErrNaNInf.
	ErrNonFinite = matrix.ErrNaNInf

	// ErrDuplicateAbscissa indicates two x-values coincide (or are closer than
	// the configured minimum spacing) where distinctness is required.
	ErrDuplicateAbscissa = errors.New("core: duplicate abscissa")

	// ErrNotIncreasing indicates spline knots that are not strictly increasing.
	ErrNotIncreasing = errors.New("core: abscissas not strictly increasing")

	// ErrOutOfDomain indicates a spline query outside [x_0, x_{n-1}].
	ErrOutOfDomain = errors.New("core: query outside model domain")

	// ErrTooFewPoints indicates fewer samples than the algorithm needs.
	ErrTooFewPoints = errors.New("core: too few points")

	// ErrInvalidDegree indicates a negative polynomial degree.
	ErrInvalidDegree = errors.New("core: invalid polynomial degree")

	// ErrParse indicates malformed textual input (numbers or expressions).
	ErrParse = errors.New("core: parse error")
)
