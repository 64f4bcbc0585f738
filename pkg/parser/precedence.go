package parser

import (
	"github.com/loxi-lang/loxi/internal/types"
	"github.com/loxi-lang/loxi/pkg/lexer"
)

// parseLeftAssoc implements the common shape of every left-associative
// binary precedence level in the grammar: one operand production (next),
// followed by zero or more (operator operand) pairs folded into a
// left-leaning Binary chain.
func (p *Parser) parseLeftAssoc(next func() types.Expr, kinds ...lexer.TokenKind) types.Expr {
	expr := next()
	if p.errors.Flag() {
		return expr
	}
	for containsKind(kinds, p.peek().Kind) {
		op := p.advance()
		right := next()
		if p.errors.Flag() {
			return expr
		}
		span := types.Span{Start: expr.Span().Start, Len: right.Span().End() - expr.Span().Start}
		expr = types.NewBinary(span, expr, op.Kind, right)
	}
	return expr
}

func containsKind(kinds []lexer.TokenKind, kind lexer.TokenKind) bool {
	for _, k := range kinds {
		if k == kind {
			return true
		}
	}
	return false
}
