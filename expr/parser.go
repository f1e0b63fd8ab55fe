// SPDX-License-Identifier: MIT

package expr

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/numcore/core"
)

// maxDepth bounds parenthesis/unary nesting.
const maxDepth = 200

const mathPrefix = "math."

type parser struct {
	toks  []token
	pos   int
	depth int
}

func (p *parser) peek() token { return p.toks[p.pos] }

func (p *parser) next() token {
	t := p.toks[p.pos]
	if t.kind != tkEOF {
		p.pos++
	}

	return t
}

func (p *parser) errorf(t token, format string, args ...any) error {
	return fmt.Errorf("%s at offset %d: %w", fmt.Sprintf(format, args...), t.pos, core.ErrParse)
}

func (p *parser) enter(t token) error {
	p.depth++
	if p.depth > maxDepth {
		return p.errorf(t, "nesting deeper than %d", maxDepth)
	}

	return nil
}

func (p *parser) leave() { p.depth-- }

// expr := term (('+' | '-') term)*
func (p *parser) parseExpr() (node, error) {
	l, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for t := p.peek(); t.kind == tkOp && (t.text == "+" || t.text == "-"); t = p.peek() {
		p.next()
		r, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		l = binNode{op: t.text[0], l: l, r: r}
	}

	return l, nil
}

// term := unary (('*' | '/') unary)*
func (p *parser) parseTerm() (node, error) {
	l, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for t := p.peek(); t.kind == tkOp && (t.text == "*" || t.text == "/"); t = p.peek() {
		p.next()
		r, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		l = binNode{op: t.text[0], l: l, r: r}
	}

	return l, nil
}

// unary := ('+' | '-') unary | power
func (p *parser) parseUnary() (node, error) {
	t := p.peek()
	if t.kind != tkOp || (t.text != "+" && t.text != "-") {
		return p.parsePower()
	}
	p.next()
	if err := p.enter(t); err != nil {
		return nil, err
	}
	defer p.leave()
	arg, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	if t.text == "-" {
		return negNode{arg: arg}, nil
	}

	return arg, nil
}

// power := call (('^' | '**') unary)?
func (p *parser) parsePower() (node, error) {
	base, err := p.parseCall()
	if err != nil {
		return nil, err
	}
	if t := p.peek(); t.kind == tkOp && (t.text == "^" || t.text == "**") {
		p.next()
		if err = p.enter(t); err != nil {
			return nil, err
		}
		defer p.leave()
		exp, err := p.parseUnary()
		if err != nil {
			return nil, err
		}

		return binNode{op: '^', l: base, r: exp}, nil
	}

	return base, nil
}

// call := IDENT '(' expr ')' | primary
// primary := NUMBER | 'x' | 'pi' | 'e' | '(' expr ')'
func (p *parser) parseCall() (node, error) {
	t := p.next()
	switch t.kind {
	case tkNumber:
		return numNode(t.num), nil

	case tkLParen:
		return p.parseGroup(t)

	case tkIdent:
		name, prefixed := strings.CutPrefix(t.text, mathPrefix)
		if fn, ok := lookupFunc(name); ok {
			open := p.next()
			if open.kind != tkLParen {
				return nil, p.errorf(open, "expected ( after %s, got %s", t.text, open)
			}
			arg, err := p.parseGroup(open)
			if err != nil {
				return nil, err
			}

			return callNode{fn: fn, arg: arg}, nil
		}
		if v, ok := lookupConst(name); ok {
			return numNode(v), nil
		}
		if name == "x" && !prefixed {
			return varNode{}, nil
		}

		return nil, p.errorf(t, "unknown name %s", t)
	}

	return nil, p.errorf(t, "unexpected %s", t)
}

// parseGroup parses expr ')' after an already consumed '('.
func (p *parser) parseGroup(open token) (node, error) {
	if err := p.enter(open); err != nil {
		return nil, err
	}
	defer p.leave()
	inner, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if closing := p.next(); closing.kind != tkRParen {
		return nil, p.errorf(closing, "expected ) to close offset %d, got %s", open.pos, closing)
	}

	return inner, nil
}
