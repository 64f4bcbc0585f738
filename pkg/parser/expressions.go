package parser

import (
	"github.com/loxi-lang/loxi/internal/types"
	"github.com/loxi-lang/loxi/internal/value"
	"github.com/loxi-lang/loxi/pkg/lexer"
)

// expression is the grammar's entry point: assignment.
func (p *Parser) expression() types.Expr {
	return p.assignment()
}

// assignment handles "IDENT = assignment" and otherwise falls through to
// logicOr. The left-hand side is parsed as a full expression first and then
// validated as an assignable target (types.AsVarGet) once an '=' is seen —
// this is what lets "1 + 2 = 3"-shaped mistakes be rejected with an
// "invalid assignment target" diagnostic instead of failing to parse at all.
func (p *Parser) assignment() types.Expr {
	expr := p.logicOr()
	if p.errors.Flag() {
		return expr
	}
	if !p.check(lexer.Equal) {
		return expr
	}
	p.advance() // consume '='
	rhs := p.assignment()
	if p.errors.Flag() {
		return expr
	}
	target, ok := types.AsVarGet(expr)
	if !ok {
		p.errorAt("invalid assignment target", expr.Span().Start, expr.Span().Len)
		return expr
	}
	span := types.Span{Start: target.Span().Start, Len: rhs.Span().End() - target.Span().Start}
	return types.NewVarSet(span, target.Name, rhs)
}

func (p *Parser) logicOr() types.Expr {
	expr := p.logicAnd()
	if p.errors.Flag() {
		return expr
	}
	for p.check(lexer.Or) {
		op := p.advance()
		right := p.logicAnd()
		if p.errors.Flag() {
			return expr
		}
		span := types.Span{Start: expr.Span().Start, Len: right.Span().End() - expr.Span().Start}
		expr = types.NewLogical(span, expr, op.Kind, right)
	}
	return expr
}

func (p *Parser) logicAnd() types.Expr {
	expr := p.equality()
	if p.errors.Flag() {
		return expr
	}
	for p.check(lexer.And) {
		op := p.advance()
		right := p.equality()
		if p.errors.Flag() {
			return expr
		}
		span := types.Span{Start: expr.Span().Start, Len: right.Span().End() - expr.Span().Start}
		expr = types.NewLogical(span, expr, op.Kind, right)
	}
	return expr
}

func (p *Parser) equality() types.Expr {
	return p.parseLeftAssoc(p.comparison, lexer.BangEqual, lexer.EqualEqual)
}

func (p *Parser) comparison() types.Expr {
	return p.parseLeftAssoc(p.term, lexer.Less, lexer.LessEqual, lexer.Greater, lexer.GreaterEqual)
}

func (p *Parser) term() types.Expr {
	return p.parseLeftAssoc(p.factor, lexer.Minus, lexer.Plus)
}

func (p *Parser) factor() types.Expr {
	return p.parseLeftAssoc(p.unary, lexer.Star, lexer.Slash, lexer.Percent)
}

// unary parses "!" | "-" unary, otherwise falling through to call.
func (p *Parser) unary() types.Expr {
	if p.check(lexer.Bang) || p.check(lexer.Minus) {
		op := p.advance()
		operand := p.unary()
		if p.errors.Flag() {
			return operand
		}
		span := types.Span{Start: op.Start, Len: operand.Span().End() - op.Start}
		return types.NewUnary(span, op.Kind, operand)
	}
	return p.call()
}

// call parses a primary expression followed by zero or more "(" arguments? ")"
// suffixes.
func (p *Parser) call() types.Expr {
	expr := p.primary()
	if p.errors.Flag() {
		return expr
	}
	for p.check(lexer.LeftParen) {
		p.advance()
		args, closeParen, ok := p.arguments()
		if !ok {
			return expr
		}
		span := types.Span{Start: expr.Span().Start, Len: closeParen.Start + 1 - expr.Span().Start}
		expr = types.NewCall(span, expr, args)
	}
	return expr
}

func (p *Parser) arguments() ([]types.Expr, lexer.Token, bool) {
	var args []types.Expr
	if !p.check(lexer.RightParen) {
		for {
			arg := p.expression()
			if p.errors.Flag() {
				return nil, lexer.Token{}, false
			}
			args = append(args, arg)
			if !p.match(lexer.Comma) {
				break
			}
		}
	}
	closeParen, ok := p.expectAfter(lexer.RightParen, "expected ')' after arguments")
	return args, closeParen, ok
}

// primary parses literals, grouped expressions, and identifiers — the base
// case of the expression grammar.
func (p *Parser) primary() types.Expr {
	tok := p.peek()
	switch tok.Kind {
	case lexer.Literal:
		p.advance()
		return types.NewLiteral(types.Span{Start: tok.Start, Len: len(tok.Text)}, tok.Value)
	case lexer.Identifier:
		p.advance()
		return types.NewVarGet(types.Span{Start: tok.Start, Len: len(tok.Text)}, tok.Text)
	case lexer.LeftParen:
		p.advance()
		inner := p.expression()
		if p.errors.Flag() {
			return inner
		}
		closeParen, ok := p.expectAfter(lexer.RightParen, "expected ')' after expression")
		if !ok {
			return inner
		}
		span := types.Span{Start: tok.Start, Len: closeParen.Start + 1 - tok.Start}
		return types.NewGrouping(span, inner)
	default:
		p.errorAtCurrent("expected expression")
		return types.NewLiteral(types.Span{Start: tok.Start, Len: 0}, value.Nil{})
	}
}
