// Package spline builds natural and clamped cubic splines and evaluates them.
//
// 🚀 Model:
//
//	S(x) = a_i + b_i·dx + c_i·dx² + d_i·dx³,  dx = x - x_i,  x_i ≤ x ≤ x_{i+1}
//
// ✨ Boundary conditions:
//   - Natural: S'' = 0 at both ends
//   - Clamped: S'(x_0) = fp0 and S'(x_{n-1}) = fpn
//
// Both builders share one tridiagonal forward sweep and back substitution;
// only the first and last rows differ. Models are immutable once built and
// safe for concurrent readers.
//
// ⚙️ Options:
//   - WithMinSpacing(h): reject neighbouring knots closer than h
//   - WithLinearSearch(): locate the interval by a linear scan instead of
//     binary search (same interval is chosen either way)
//
// Queries outside [x_0, x_{n-1}] fail with core.ErrOutOfDomain; there is no
// extrapolation.
package spline
