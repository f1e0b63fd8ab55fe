// Package lagrange evaluates the Lagrange interpolating polynomial
//
//	L(x) = Σ_i y_i · Π_{j≠i} (x - x_j)/(x_i - x_j)
//
// over a set of distinct nodes. Nothing is precomputed: every evaluation
// forms the full double product, O(n²) per query point.
package lagrange
