package parser

import (
	"github.com/loxi-lang/loxi/internal/types"
	"github.com/loxi-lang/loxi/internal/value"
	"github.com/loxi-lang/loxi/pkg/lexer"
)

var trueValue = value.Bool(true)

// block parses the statements up to a closing '}'. The caller has already
// consumed the opening '{'.
func (p *Parser) block() types.Stmt {
	start := p.prev.Start
	var stmts []types.Stmt
	for !p.check(lexer.RightBrace) && !p.isAtEnd() {
		stmt := p.declaration()
		if p.errors.Flag() {
			return nil
		}
		if stmt != nil {
			stmts = append(stmts, stmt)
		}
	}
	closeBrace, ok := p.expectAfter(lexer.RightBrace, "expected '}' after block")
	if !ok {
		return nil
	}
	span := types.Span{Start: start, Len: closeBrace.Start + 1 - start}
	return types.NewBlockStmt(span, stmts)
}

// ifStmt parses "if" "(" expression ")" statement ( "else" statement )?.
func (p *Parser) ifStmt() types.Stmt {
	start := p.advance().Start // consume "if"
	if _, ok := p.expectAfter(lexer.LeftParen, "expected '(' after 'if'"); !ok {
		return nil
	}
	cond := p.expression()
	if p.errors.Flag() {
		return nil
	}
	if _, ok := p.expectAfter(lexer.RightParen, "expected ')' after condition"); !ok {
		return nil
	}
	then := p.statement()
	if p.errors.Flag() {
		return nil
	}
	var elseStmt types.Stmt
	end := then.Span().End()
	if p.match(lexer.Else) {
		elseStmt = p.statement()
		if p.errors.Flag() {
			return nil
		}
		end = elseStmt.Span().End()
	}
	span := types.Span{Start: start, Len: end - start}
	return types.NewIfStmt(span, cond, then, elseStmt)
}

// whileStmt parses "while" "(" expression ")" statement.
func (p *Parser) whileStmt() types.Stmt {
	start := p.advance().Start // consume "while"
	if _, ok := p.expectAfter(lexer.LeftParen, "expected '(' after 'while'"); !ok {
		return nil
	}
	cond := p.expression()
	if p.errors.Flag() {
		return nil
	}
	if _, ok := p.expectAfter(lexer.RightParen, "expected ')' after condition"); !ok {
		return nil
	}
	body := p.statement()
	if p.errors.Flag() {
		return nil
	}
	span := types.Span{Start: start, Len: body.Span().End() - start}
	return types.NewWhileStmt(span, cond, body)
}

// forStmt parses the C-style for loop and desugars it at parse time into
// "{ init ; while (cond) { body ; update ; } }". An omitted cond becomes a
// literal true. An omitted init or update gets no placeholder node: without
// init the while loop is returned unwrapped, and without update the body is
// not wrapped in a block.
func (p *Parser) forStmt() types.Stmt {
	start := p.advance().Start // consume "for"
	if _, ok := p.expectAfter(lexer.LeftParen, "expected '(' after 'for'"); !ok {
		return nil
	}

	var init types.Stmt
	switch {
	case p.match(lexer.Semicolon):
		init = nil
	case p.check(lexer.Var):
		p.advance()
		init = p.varDecl()
	default:
		stmt := p.exprStmt()
		if es, ok := types.AsExprStmt(stmt); ok {
			init = es
		} else {
			init = stmt
		}
	}
	if p.errors.Flag() {
		return nil
	}

	var cond types.Expr
	if !p.check(lexer.Semicolon) {
		cond = p.expression()
		if p.errors.Flag() {
			return nil
		}
	}
	if _, ok := p.expectAfter(lexer.Semicolon, "expected ';' after loop condition"); !ok {
		return nil
	}

	var update types.Expr
	if !p.check(lexer.RightParen) {
		update = p.expression()
		if p.errors.Flag() {
			return nil
		}
	}
	closeParen, ok := p.expectAfter(lexer.RightParen, "expected ')' after for clauses")
	if !ok {
		return nil
	}

	body := p.statement()
	if p.errors.Flag() {
		return nil
	}

	end := closeParen.Start + 1
	if bodyEnd := body.Span().End(); bodyEnd > end {
		end = bodyEnd
	}
	span := types.Span{Start: start, Len: end - start}

	if update != nil {
		updateStmt := types.NewExprStmt(update.Span(), update)
		body = types.NewBlockStmt(span, []types.Stmt{body, updateStmt})
	}

	if cond == nil {
		cond = types.NewLiteral(types.Span{Start: start, Len: 0}, trueValue)
	}
	loop := types.NewWhileStmt(span, cond, body)

	if init == nil {
		return loop
	}
	return types.NewBlockStmt(span, []types.Stmt{init, loop})
}
