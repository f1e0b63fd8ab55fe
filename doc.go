// Package numcore is a small numerical-methods toolkit: dense linear solves,
// least-squares polynomials and one-dimensional interpolation.
//
// 🚀 What is inside?
//
//	• matrix    – Matrix interface, row-major Dense, validators, MatVec
//	• linsolve  – Gaussian elimination with partial pivoting
//	• lsq       – least-squares polynomial fit via the normal equations
//	• lagrange  – Lagrange interpolation, recomputed per query
//	• newton    – Newton divided differences, nested evaluation
//	• spline    – natural and clamped cubic splines
//	• expr      – restricted formula parser for generating samples
//	• input     – numeric list parsing, config coercion, dedup
//	• core      – PointSet, shared error sentinels, Linspace, Evaluator
//
// ✨ Guarantees:
//
//   - Pure functions: no package state, no I/O, no goroutines in the core
//   - Inputs are copied; built models are immutable and safe to share
//   - Every failure is a wrapped sentinel from core, matched with errors.Is
//
// ⚙️ Quick start:
//
//	s, err := spline.Natural([]float64{0, 1, 2, 3}, []float64{0, 1, 0, 1})
//	if err != nil { … }
//	y, err := s.Eval(1.5)
//
// The cmd/smooth tool wraps these packages in a YAML-to-CSV job runner.
package numcore
