// Package expr compiles a small, whitelisted language of real functions of
// one variable x, used to generate sample ordinates from a formula.
//
// Grammar:
//
//	expr    := term (('+' | '-') term)*
//	term    := unary (('*' | '/') unary)*
//	unary   := ('+' | '-') unary | power
//	power   := call (('^' | '**') unary)?
//	call    := IDENT '(' expr ')' | primary
//	primary := NUMBER | 'x' | 'pi' | 'e' | '(' expr ')'
//
// Powers are right-associative and bind tighter than unary minus, so
// -x^2 is -(x^2) and 2^3^2 is 2^9.
//
// Functions: sin cos tan asin acos atan sinh cosh tanh exp log log10 log2
// sqrt abs floor ceil. A "math." prefix is accepted on functions and on the
// constants pi and e. Nothing outside this list is ever evaluated; unknown
// names and stray characters fail with core.ErrParse.
package expr
