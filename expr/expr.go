// SPDX-License-Identifier: MIT

package expr

import (
	"fmt"

	"github.com/katalvlaran/numcore/core"
)

const (
	opCompile = "Compile"
	opEval    = "Expr.Eval"
	opSample  = "Sample"
)

// Expr is a compiled formula in x. It is immutable and safe for concurrent use.
type Expr struct {
	src  string
	root node
}

// Compile parses src.
// Errors: core.ErrParse naming the offending token and its byte offset.
func Compile(src string) (*Expr, error) {
	toks, err := lex(src)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opCompile, err)
	}
	p := &parser{toks: toks}
	root, err := p.parseExpr()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opCompile, err)
	}
	if t := p.peek(); t.kind != tkEOF {
		return nil, fmt.Errorf("%s: %w", opCompile, p.errorf(t, "unexpected %s", t))
	}

	return &Expr{src: src, root: root}, nil
}

// MustCompile is Compile that panics on error; for fixed formulas in code.
func MustCompile(src string) *Expr {
	e, err := Compile(src)
	if err != nil {
		panic(err)
	}

	return e
}

// Eval returns the formula's value at x.
// Returns core.ErrNonFinite if x or the result is NaN or ±Inf
// (e.g. log(0), sqrt(-1), 1/0).
func (e *Expr) Eval(x float64) (float64, error) {
	if !core.IsFinite(x) {
		return 0, fmt.Errorf("%s: x=%v: %w", opEval, x, core.ErrNonFinite)
	}
	v := e.root.eval(x)
	if !core.IsFinite(v) {
		return 0, fmt.Errorf("%s: %s at x=%g is %v: %w", opEval, e.src, x, v, core.ErrNonFinite)
	}

	return v, nil
}

// String returns the source text.
func (e *Expr) String() string { return e.src }

// Sample evaluates e at every node and returns the resulting points.
func Sample(e *Expr, xs []float64) (core.PointSet, error) {
	ys, err := core.EvalAll(e, xs)
	if err != nil {
		return core.PointSet{}, fmt.Errorf("%s: %w", opSample, err)
	}
	ps, err := core.NewPointSet(xs, ys)
	if err != nil {
		return core.PointSet{}, fmt.Errorf("%s: %w", opSample, err)
	}

	return ps, nil
}
