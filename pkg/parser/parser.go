package parser

import (
	"github.com/loxi-lang/loxi/internal/diag"
	"github.com/loxi-lang/loxi/internal/types"
	"github.com/loxi-lang/loxi/pkg/lexer"
	"github.com/loxi-lang/loxi/pkg/npeek"
)

// Parser implements a recursive-descent, precedence-climbing parser. It
// consumes tokens from an NPeekable[lexer.Token] backed by the lexer's own
// iterator, not a hand-rolled cur/peek pair, so arbitrary lookahead is
// available to any production that needs it.
type Parser struct {
	tokens *npeek.NPeekable[lexer.Token]
	prev   lexer.Token
	errors *diag.Errors
	source string
}

// New creates a Parser over source.
func New(source string) *Parser {
	lx := lexer.New(source)
	next := func() (lexer.Token, bool) { return lx.Next() }
	return &Parser{
		tokens: npeek.New(next),
		errors: lx.Errors(),
		source: source,
	}
}

// Errors returns the collector diagnostics were pushed to during parsing.
func (p *Parser) Errors() *diag.Errors { return p.errors }

// Parse parses a full program: declaration*. Each failed declaration
// triggers panic-mode recovery (synchronize) before parsing resumes.
func (p *Parser) Parse() []types.Stmt {
	var stmts []types.Stmt
	for !p.isAtEnd() {
		stmt := p.declaration()
		if p.errors.Flag() {
			p.synchronize()
			p.errors.SetFlag(false)
			continue
		}
		if stmt != nil {
			stmts = append(stmts, stmt)
		}
	}
	return stmts
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Kind == lexer.EOF
}

// peek returns the current (not-yet-consumed) token, or a synthetic EOF
// token once the source is exhausted.
func (p *Parser) peek() lexer.Token {
	tok, ok := p.tokens.Peek()
	if !ok {
		return lexer.Token{Kind: lexer.EOF, Start: len(p.source)}
	}
	return tok
}

// advance consumes and returns the current token.
func (p *Parser) advance() lexer.Token {
	tok, ok := p.tokens.Next()
	if !ok {
		tok = lexer.Token{Kind: lexer.EOF, Start: len(p.source)}
	}
	p.prev = tok
	return tok
}

func (p *Parser) check(kind lexer.TokenKind) bool {
	return p.peek().Kind == kind
}

// match consumes and reports true if the current token is any of kinds.
func (p *Parser) match(kinds ...lexer.TokenKind) bool {
	for _, k := range kinds {
		if p.check(k) {
			p.advance()
			return true
		}
	}
	return false
}

// declaration parses "var" IDENT ("=" expression)? ";" | statement,
// returning nil if a panic-mode-triggering error occurred.
func (p *Parser) declaration() types.Stmt {
	if p.match(lexer.Var) {
		return p.varDecl()
	}
	return p.statement()
}

func (p *Parser) varDecl() types.Stmt {
	start := p.prev.Start
	nameTok, ok := p.expect(lexer.Identifier, "expected variable name")
	if !ok {
		return nil
	}
	var init types.Expr
	if p.match(lexer.Equal) {
		init = p.expression()
		if p.errors.Flag() {
			return nil
		}
	}
	semi, ok := p.expectAfter(lexer.Semicolon, "expected ';' after variable declaration")
	if !ok {
		return nil
	}
	span := types.Span{Start: start, Len: semi.Start + len(semi.Text) - start}
	return types.NewVarStmt(span, nameTok.Text, init)
}

// statement dispatches on the current token's kind to the matching
// statement production.
func (p *Parser) statement() types.Stmt {
	switch {
	case p.check(lexer.LeftBrace):
		p.advance()
		return p.block()
	case p.check(lexer.If):
		return p.ifStmt()
	case p.check(lexer.Print):
		return p.printStmt()
	case p.check(lexer.While):
		return p.whileStmt()
	case p.check(lexer.For):
		return p.forStmt()
	default:
		return p.exprStmt()
	}
}

func (p *Parser) exprStmt() types.Stmt {
	start := p.peek().Start
	expr := p.expression()
	if p.errors.Flag() {
		return nil
	}
	semi, ok := p.expectAfter(lexer.Semicolon, "expected ';' after expression")
	if !ok {
		return nil
	}
	span := types.Span{Start: start, Len: semi.Start + len(semi.Text) - start}
	return types.NewExprStmt(span, expr)
}

func (p *Parser) printStmt() types.Stmt {
	start := p.advance().Start // consume "print"
	expr := p.expression()
	if p.errors.Flag() {
		return nil
	}
	semi, ok := p.expectAfter(lexer.Semicolon, "expected ';' after value")
	if !ok {
		return nil
	}
	span := types.Span{Start: start, Len: semi.Start + len(semi.Text) - start}
	return types.NewPrintStmt(span, expr)
}

// synchronize implements panic-mode recovery: consume tokens until either a
// Semicolon is consumed, or a statement-starting keyword is peeked (not
// consumed). A for/if/print/var/while keyword already current on entry is a
// stopping point too; class/fn/return on entry are consumed first, since no
// statement production consumes them and stopping there would not advance.
func (p *Parser) synchronize() {
	switch p.peek().Kind {
	case lexer.For, lexer.If, lexer.Print, lexer.Var, lexer.While:
		return
	}
	for !p.isAtEnd() {
		if p.advance().Kind == lexer.Semicolon {
			return
		}
		switch p.peek().Kind {
		case lexer.Class, lexer.For, lexer.Fn, lexer.If, lexer.Print, lexer.Return, lexer.Var, lexer.While:
			return
		}
	}
}
