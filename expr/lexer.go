// SPDX-License-Identifier: MIT

package expr

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/numcore/core"
)

type tokenKind uint8

const (
	tkEOF tokenKind = iota
	tkNumber
	tkIdent
	tkOp     // + - * / ^ **
	tkLParen // (
	tkRParen // )
)

type token struct {
	kind tokenKind
	text string
	num  float64 // tkNumber only
	pos  int     // byte offset in the source
}

func (t token) String() string {
	if t.kind == tkEOF {
		return "end of input"
	}

	return strconv.Quote(t.text)
}

// lex splits src into tokens, ending with a tkEOF token.
func lex(src string) ([]token, error) {
	var (
		toks []token
		i    int
	)
	for i < len(src) {
		ch := src[i]
		switch {
		case ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r':
			i++
		case isDigit(ch) || (ch == '.' && i+1 < len(src) && isDigit(src[i+1])):
			t, next, err := lexNumber(src, i)
			if err != nil {
				return nil, err
			}
			toks = append(toks, t)
			i = next
		case isIdentStart(ch):
			start := i
			for i < len(src) && (isIdentPart(src[i]) || (src[i] == '.' && i+1 < len(src) && isIdentStart(src[i+1]))) {
				i++
			}
			toks = append(toks, token{kind: tkIdent, text: src[start:i], pos: start})
		case ch == '*' && i+1 < len(src) && src[i+1] == '*':
			toks = append(toks, token{kind: tkOp, text: "**", pos: i})
			i += 2
		case strings.IndexByte("+-*/^", ch) >= 0:
			toks = append(toks, token{kind: tkOp, text: string(ch), pos: i})
			i++
		case ch == '(':
			toks = append(toks, token{kind: tkLParen, text: "(", pos: i})
			i++
		case ch == ')':
			toks = append(toks, token{kind: tkRParen, text: ")", pos: i})
			i++
		default:
			return nil, fmt.Errorf("unexpected character %q at offset %d: %w", ch, i, core.ErrParse)
		}
	}
	toks = append(toks, token{kind: tkEOF, pos: len(src)})

	return toks, nil
}

// lexNumber reads digits, an optional fraction and an optional exponent.
// An 'e' not followed by digits is left for the identifier lexer.
func lexNumber(src string, start int) (token, int, error) {
	i := start
	for i < len(src) && isDigit(src[i]) {
		i++
	}
	if i < len(src) && src[i] == '.' {
		i++
		for i < len(src) && isDigit(src[i]) {
			i++
		}
	}
	if i < len(src) && (src[i] == 'e' || src[i] == 'E') {
		j := i + 1
		if j < len(src) && (src[j] == '+' || src[j] == '-') {
			j++
		}
		if j < len(src) && isDigit(src[j]) {
			for j < len(src) && isDigit(src[j]) {
				j++
			}
			i = j
		}
	}
	text := src[start:i]
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return token{}, 0, fmt.Errorf("bad number %q at offset %d: %w", text, start, core.ErrParse)
	}

	return token{kind: tkNumber, text: text, num: v, pos: start}, i, nil
}

func isDigit(ch byte) bool      { return ch >= '0' && ch <= '9' }
func isIdentStart(ch byte) bool { return ch == '_' || (ch|0x20 >= 'a' && ch|0x20 <= 'z') }
func isIdentPart(ch byte) bool  { return isIdentStart(ch) || isDigit(ch) }
