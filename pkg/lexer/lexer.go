package lexer

import (
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/josharian/intern"

	"github.com/loxi-lang/loxi/internal/diag"
	"github.com/loxi-lang/loxi/internal/value"
	"github.com/loxi-lang/loxi/pkg/npeek"
)

// charAt pairs a rune with its byte offset in the source, the Go analogue of
// Rust's CharIndices, and what Lexer's NPeekable is instantiated over.
type charAt struct {
	idx int
	r   rune
}

// Lexer scans source text into a stream of Tokens. Its iterator form (Next)
// skips Error tokens — they are recorded as diagnostics instead — and
// terminates at end-of-input without yielding an EOF token: pulls past the
// end simply report no more tokens.
type Lexer struct {
	source     string
	iter       *npeek.NPeekable[charAt]
	index      int
	tokenStart int
	errors     *diag.Errors
}

// New creates a Lexer over source.
func New(source string) *Lexer {
	chars := make([]charAt, 0, len(source))
	for i, r := range source {
		chars = append(chars, charAt{idx: i, r: r})
	}
	pos := 0
	next := func() (charAt, bool) {
		if pos >= len(chars) {
			return charAt{}, false
		}
		c := chars[pos]
		pos++
		return c, true
	}
	return &Lexer{
		source: source,
		iter:   npeek.New(next),
		errors: diag.NewErrors(source),
	}
}

// Errors returns the collector diagnostics were pushed to during scanning.
func (l *Lexer) Errors() *diag.Errors { return l.errors }

// Next returns the next token, or false once the source is exhausted.
func (l *Lexer) Next() (Token, bool) {
	for {
		c, ok := l.advancePastWhitespace()
		if !ok {
			return Token{}, false
		}
		kind, val := l.readToken(c)
		if kind == Error {
			continue
		}
		if kind == EOF {
			return Token{}, false
		}
		tok := Token{
			Kind:  kind,
			Start: l.tokenStart,
			Text:  l.source[l.tokenStart:l.index],
			Value: val,
		}
		if kind == Identifier {
			tok.Text = intern.String(tok.Text)
		}
		diag.Log.Debugf("lexer: produced %s %q at %d", tok.Kind, tok.Text, tok.Start)
		return tok, true
	}
}

func (l *Lexer) advance() (rune, bool) {
	c, ok := l.iter.Next()
	if !ok {
		return 0, false
	}
	l.index = c.idx + utf8.RuneLen(c.r)
	return c.r, true
}

func (l *Lexer) advancePastWhitespace() (rune, bool) {
	c, ok := l.advance()
	for ok && unicode.IsSpace(c) {
		c, ok = l.advance()
	}
	return c, ok
}

func (l *Lexer) check(want rune) bool {
	if c, ok := l.peek(); ok && c == want {
		l.advance()
		return true
	}
	return false
}

func (l *Lexer) peek() (rune, bool) {
	c, ok := l.iter.Peek()
	if !ok {
		return 0, false
	}
	return c.r, true
}

func (l *Lexer) peekNext() (rune, bool) {
	c, ok := l.iter.PeekNext()
	l.iter.ResetCursor()
	if !ok {
		return 0, false
	}
	return c.r, true
}

func (l *Lexer) readToken(c rune) (TokenKind, value.Value) {
	l.tokenStart = l.index - utf8.RuneLen(c)
	var kind TokenKind
	switch c {
	case '(':
		kind = LeftParen
	case ')':
		kind = RightParen
	case '{':
		kind = LeftBrace
	case '}':
		kind = RightBrace
	case ',':
		kind = Comma
	case '.':
		kind = Dot
	case '-':
		kind = Minus
	case '+':
		kind = Plus
	case ';':
		kind = Semicolon
	case '*':
		kind = Star
	case '%':
		kind = Percent
	case '!':
		if l.check('=') {
			kind = BangEqual
		} else {
			kind = Bang
		}
	case '=':
		if l.check('=') {
			kind = EqualEqual
		} else {
			kind = Equal
		}
	case '<':
		if l.check('=') {
			kind = LessEqual
		} else {
			kind = Less
		}
	case '>':
		if l.check('=') {
			kind = GreaterEqual
		} else {
			kind = Greater
		}
	case '"':
		if str, ok := l.string(); ok {
			return Literal, value.Str(str)
		}
		return Error, nil
	case '/':
		if l.check('/') {
			for {
				c, ok := l.advance()
				if !ok || c == '\n' {
					break
				}
			}
			next, ok := l.advancePastWhitespace()
			if !ok {
				return EOF, nil
			}
			return l.readToken(next)
		}
		kind = Slash
	default:
		switch {
		case c >= '0' && c <= '9':
			return Literal, l.number()
		case isIdentStart(c):
			return l.identifier()
		default:
			l.errors.Push("unexpected character", diag.Error, l.tokenStart, 1, false)
			return Error, nil
		}
	}
	return kind, nil
}

// string scans a "..."-delimited string literal, interpreting \r \n \t as
// the corresponding control characters and any other escaped character
// literally. Returns false (and records a diagnostic) if the closing quote
// is never found.
func (l *Lexer) string() (string, bool) {
	var sb strings.Builder
	escaped := false
	for {
		c, ok := l.advance()
		if !ok {
			l.errors.Push("unterminated string", diag.Error, l.tokenStart, l.index-l.tokenStart, false)
			return "", false
		}
		switch {
		case escaped:
			switch c {
			case 'r':
				sb.WriteRune('\r')
			case 'n':
				sb.WriteRune('\n')
			case 't':
				sb.WriteRune('\t')
			default:
				sb.WriteRune(c)
			}
			escaped = false
		case c == '\\':
			escaped = true
		case c == '"':
			return sb.String(), true
		default:
			sb.WriteRune(c)
		}
	}
}

// number scans a numeric literal: one or more digits, an optional
// fractional part ('.' followed by at least one digit), and an optional
// exponent ('e'/'E' followed by at least one digit, uniformly — unlike the
// reference scanner's operator-precedence quirk between the fraction and
// exponent guards, both guards here require a following digit).
func (l *Lexer) number() value.Value {
	l.integer()
	if c, ok := l.peek(); ok && c == '.' {
		if next, ok := l.peekNext(); ok && next >= '0' && next <= '9' {
			l.advance()
			l.integer()
		}
	}
	if c, ok := l.peek(); ok && (c == 'e' || c == 'E') {
		if next, ok := l.peekNext(); ok && next >= '0' && next <= '9' {
			l.advance()
			l.integer()
		}
	}
	text := l.source[l.tokenStart:l.index]
	n, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return value.Num(math.NaN())
	}
	return value.Num(n)
}

func (l *Lexer) integer() {
	for {
		c, ok := l.peek()
		if !ok || c < '0' || c > '9' {
			return
		}
		l.advance()
	}
}

// isIdentStart and isIdentCont implement the grammar's identifier alphabet,
// [A-Za-z_][A-Za-z_0-9]*, matching the reference scanner exactly rather than
// the broader Unicode letter classes.
func isIdentStart(c rune) bool {
	return c == '_' || (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

func isIdentCont(c rune) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}

func (l *Lexer) identifier() (TokenKind, value.Value) {
	for {
		c, ok := l.peek()
		if !ok || !isIdentCont(c) {
			break
		}
		l.advance()
	}
	text := intern.String(l.source[l.tokenStart:l.index])
	if kind, ok := keywords[text]; ok {
		switch kind {
		case True:
			return Literal, value.Bool(true)
		case False:
			return Literal, value.Bool(false)
		case Nil:
			return Literal, value.Nil{}
		default:
			return kind, nil
		}
	}
	return Identifier, nil
}
