// SPDX-License-Identifier: MIT

package expr

import "math"

// node is a compiled sub-expression.
type node interface {
	eval(x float64) float64
}

type (
	numNode  float64
	varNode  struct{}
	negNode  struct{ arg node }
	callNode struct {
		fn  func(float64) float64
		arg node
	}
	binNode struct {
		op   byte // + - * / ^
		l, r node
	}
)

func (n numNode) eval(float64) float64   { return float64(n) }
func (varNode) eval(x float64) float64   { return x }
func (n negNode) eval(x float64) float64 { return -n.arg.eval(x) }

func (n callNode) eval(x float64) float64 { return n.fn(n.arg.eval(x)) }

func (n binNode) eval(x float64) float64 {
	l, r := n.l.eval(x), n.r.eval(x)
	switch n.op {
	case '+':
		return l + r
	case '-':
		return l - r
	case '*':
		return l * r
	case '/':
		return l / r
	default: // '^'
		return math.Pow(l, r)
	}
}

// lookupFunc resolves a whitelisted function name.
func lookupFunc(name string) (func(float64) float64, bool) {
	switch name {
	case "sin":
		return math.Sin, true
	case "cos":
		return math.Cos, true
	case "tan":
		return math.Tan, true
	case "asin":
		return math.Asin, true
	case "acos":
		return math.Acos, true
	case "atan":
		return math.Atan, true
	case "sinh":
		return math.Sinh, true
	case "cosh":
		return math.Cosh, true
	case "tanh":
		return math.Tanh, true
	case "exp":
		return math.Exp, true
	case "log":
		return math.Log, true
	case "log10":
		return math.Log10, true
	case "log2":
		return math.Log2, true
	case "sqrt":
		return math.Sqrt, true
	case "abs":
		return math.Abs, true
	case "floor":
		return math.Floor, true
	case "ceil":
		return math.Ceil, true
	}

	return nil, false
}

// lookupConst resolves a named constant.
func lookupConst(name string) (float64, bool) {
	switch name {
	case "pi":
		return math.Pi, true
	case "e":
		return math.E, true
	}

	return 0, false
}
