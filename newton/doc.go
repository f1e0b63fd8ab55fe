// Package newton builds Newton divided-difference interpolants.
//
// ✨ Build computes the divided-difference coefficients in place over a copy
// of the ordinates; Model.Eval runs nested (Horner-like) multiplication
// over the model's own nodes.
//
// ⚙️ Usage:
//
//	m, err := newton.Build([]float64{0, 1, 2}, []float64{0, 1, 4})
//	v, err := m.Eval(1.5) // 2.25
//
// Newton and Lagrange forms describe the same polynomial; results over the
// same nodes agree up to round-off.
//
// Performance: Build O(n²) time, O(n) space; Eval O(n).
package newton
