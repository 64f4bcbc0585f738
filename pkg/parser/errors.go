package parser

import (
	"github.com/loxi-lang/loxi/internal/diag"
	"github.com/loxi-lang/loxi/pkg/lexer"
)

// expect consumes the current token if it matches kind, returning it. If it
// doesn't match, a diagnostic is pushed anchored at the offending token's own
// span, the error collector's flag is set, and the zero Token is returned.
// Use this for messages that aren't of the "expected X after Y" shape (e.g.
// "expected variable name"); those anchor at Y's end instead — see
// expectAfter.
func (p *Parser) expect(kind lexer.TokenKind, message string) (lexer.Token, bool) {
	if p.check(kind) {
		return p.advance(), true
	}
	p.errorAtCurrent(message)
	return lexer.Token{}, false
}

// expectAfter consumes the current token if it matches kind, returning it.
// If it doesn't match, a diagnostic for an "expected X after Y" message is
// anchored at Y.end — the end of the previously consumed token — rather
// than at the offending token itself.
func (p *Parser) expectAfter(kind lexer.TokenKind, message string) (lexer.Token, bool) {
	if p.check(kind) {
		return p.advance(), true
	}
	p.errorAfterPrev(message)
	return lexer.Token{}, false
}

// errorAtCurrent records a diagnostic anchored at the current (unconsumed)
// token's span. At end-of-input the current token is the synthetic EOF
// token, whose Text is empty, so this naturally anchors at source.len()
// with length 0.
func (p *Parser) errorAtCurrent(message string) {
	tok := p.peek()
	p.errorAt(message, tok.Start, len(tok.Text))
}

// errorAfterPrev records a diagnostic anchored at the end of the previously
// consumed token (a zero-length span just past it).
func (p *Parser) errorAfterPrev(message string) {
	end := p.prev.Start + len(p.prev.Text)
	p.errorAt(message, end, 0)
}

// errorAt records a diagnostic anchored at an explicit span, flagging the
// collector so Parse's panic-mode recovery kicks in.
func (p *Parser) errorAt(message string, start, length int) {
	p.errors.Push(message, diag.Error, start, length, true)
}
