package eval

import (
	"math"

	"github.com/loxi-lang/loxi/internal/diag"
	"github.com/loxi-lang/loxi/internal/types"
	"github.com/loxi-lang/loxi/internal/value"
	"github.com/loxi-lang/loxi/pkg/lexer"
)

// VisitBinary implements every non-short-circuiting binary operator. ==/!=
// always succeed structurally; the ordering operators require both operands
// be Num or both be Str; +, -, *, /, % require both operands be Num except +,
// which also accepts two Str (concatenation). Error spans follow the
// reference evaluator: the ordering operators always report the left
// operand's span; the arithmetic operators report the right operand's span
// when the left is acceptably typed and the right isn't, else the left's.
func (e *Evaluator) VisitBinary(b *types.Binary) (value.Value, error) {
	left, err := e.evaluate(b.Left)
	if err != nil {
		return nil, err
	}
	right, err := e.evaluate(b.Right)
	if err != nil {
		return nil, err
	}

	switch b.Op {
	case lexer.EqualEqual:
		return value.Bool(left.Equal(right)), nil
	case lexer.BangEqual:
		return value.Bool(!left.Equal(right)), nil
	}

	switch b.Op {
	case lexer.Less, lexer.LessEqual, lexer.Greater, lexer.GreaterEqual:
		ln, lOk := left.(value.Num)
		rn, rOk := right.(value.Num)
		if lOk && rOk {
			return value.Bool(compareNum(b.Op, float64(ln), float64(rn))), nil
		}
		ls, lsOk := left.(value.Str)
		rs, rsOk := right.(value.Str)
		if lsOk && rsOk {
			return value.Bool(compareNum(b.Op, cmpStr(string(ls), string(rs)), 0)), nil
		}
		return nil, diag.BacktraceAt("expected number or string", b.Left.Span().Start, b.Left.Span().Len)

	case lexer.Plus:
		if ln, ok := left.(value.Num); ok {
			if rn, ok := right.(value.Num); ok {
				return value.Num(float64(ln) + float64(rn)), nil
			}
			return nil, diag.BacktraceAt("expected two numbers or two strings", b.Right.Span().Start, b.Right.Span().Len)
		}
		if ls, ok := left.(value.Str); ok {
			if rs, ok := right.(value.Str); ok {
				return value.Str(string(ls) + string(rs)), nil
			}
			return nil, diag.BacktraceAt("expected two numbers or two strings", b.Right.Span().Start, b.Right.Span().Len)
		}
		return nil, diag.BacktraceAt("expected two numbers or two strings", b.Left.Span().Start, b.Left.Span().Len)

	case lexer.Minus, lexer.Star, lexer.Slash, lexer.Percent:
		ln, lOk := left.(value.Num)
		rn, rOk := right.(value.Num)
		if !lOk {
			return nil, diag.BacktraceAt("expected two numbers", b.Left.Span().Start, b.Left.Span().Len)
		}
		if !rOk {
			return nil, diag.BacktraceAt("expected two numbers", b.Right.Span().Start, b.Right.Span().Len)
		}
		switch b.Op {
		case lexer.Minus:
			return value.Num(float64(ln) - float64(rn)), nil
		case lexer.Star:
			return value.Num(float64(ln) * float64(rn)), nil
		case lexer.Slash:
			return value.Num(float64(ln) / float64(rn)), nil
		default: // Percent
			l, r := float64(ln), float64(rn)
			return value.Num(l - math.Floor(l/r)*r), nil
		}
	}

	diag.Log.Panicln("eval: Binary node carries an operator outside the parser's grammar:", b.Op)
	return nil, nil
}

func compareNum(op lexer.TokenKind, l, r float64) bool {
	switch op {
	case lexer.Less:
		return l < r
	case lexer.LessEqual:
		return l <= r
	case lexer.Greater:
		return l > r
	default: // GreaterEqual
		return l >= r
	}
}

func cmpStr(l, r string) float64 {
	switch {
	case l < r:
		return -1
	case l > r:
		return 1
	default:
		return 0
	}
}

// VisitUnary implements "!" (uniform truthiness negation, regardless of
// operand type) and "-" (arithmetic negation, Num operand only).
func (e *Evaluator) VisitUnary(u *types.Unary) (value.Value, error) {
	operand, err := e.evaluate(u.Expr)
	if err != nil {
		return nil, err
	}
	switch u.Op {
	case lexer.Bang:
		return value.Bool(!operand.Truthy()), nil
	case lexer.Minus:
		n, ok := operand.(value.Num)
		if !ok {
			return nil, diag.BacktraceAt("expected number", u.Expr.Span().Start, u.Expr.Span().Len)
		}
		return value.Num(-n), nil
	default:
		diag.Log.Panicln("eval: Unary node carries an operator outside the parser's grammar:", u.Op)
		return nil, nil
	}
}

// VisitLogical implements short-circuiting "and"/"or": the left operand's
// truthiness decides whether the right operand is evaluated at all, and the
// result is always the winning operand's actual value, not a coerced bool.
func (e *Evaluator) VisitLogical(l *types.Logical) (value.Value, error) {
	left, err := e.evaluate(l.Left)
	if err != nil {
		return nil, err
	}
	truthy := left.Truthy()
	if (l.Op == lexer.And && !truthy) || (l.Op == lexer.Or && truthy) {
		return left, nil
	}
	return e.evaluate(l.Right)
}

// VisitGrouping delegates to the parenthesized sub-expression.
func (e *Evaluator) VisitGrouping(g *types.Grouping) (value.Value, error) {
	return e.evaluate(g.Inner)
}

// VisitLiteral returns the value baked in at parse time.
func (e *Evaluator) VisitLiteral(lit *types.Literal) (value.Value, error) {
	return lit.Value, nil
}

// VisitVarGet looks up a variable through the current scope chain.
func (e *Evaluator) VisitVarGet(g *types.VarGet) (value.Value, error) {
	v, ok := e.currentScope.Get(g.Name)
	if !ok {
		return nil, diag.BacktraceAt("undefined variable", g.Span().Start, g.Span().Len)
	}
	return v, nil
}

// VisitVarSet assigns to an existing binding through the scope chain,
// returning the assigned value (so "a = b = 1" chains as expected).
// Assignment never creates a new binding — an unbound name is an error.
func (e *Evaluator) VisitVarSet(s *types.VarSet) (value.Value, error) {
	v, err := e.evaluate(s.Expr)
	if err != nil {
		return nil, err
	}
	if !e.currentScope.Set(s.Name, v) {
		return nil, diag.BacktraceAt("undefined variable", s.Span().Start, s.Span().Len)
	}
	return v, nil
}
