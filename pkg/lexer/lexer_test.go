package lexer

import (
	"testing"

	"github.com/loxi-lang/loxi/internal/value"
)

func collect(source string) []Token {
	l := New(source)
	var toks []Token
	for {
		tok, ok := l.Next()
		if !ok {
			break
		}
		toks = append(toks, tok)
	}
	return toks
}

func TestNextTokenPunctuationAndOperators(t *testing.T) {
	toks := collect("(){},.-+;*%/ ! != = == < <= > >=")

	want := []TokenKind{
		LeftParen, RightParen, LeftBrace, RightBrace, Comma, Dot, Minus, Plus,
		Semicolon, Star, Percent, Slash, Bang, BangEqual, Equal, EqualEqual,
		Less, LessEqual, Greater, GreaterEqual,
	}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %+v", len(toks), len(want), toks)
	}
	for i, k := range want {
		if toks[i].Kind != k {
			t.Errorf("token %d: got %s, want %s", i, toks[i].Kind, k)
		}
	}
}

func TestNextTokenKeywordsAndIdentifiers(t *testing.T) {
	toks := collect("var x = 1; print x; while (x) fn class for if nil or return super this and else")
	kinds := make([]TokenKind, len(toks))
	for i, tok := range toks {
		kinds[i] = tok.Kind
	}
	want := []TokenKind{
		Var, Identifier, Equal, Literal, Semicolon,
		Print, Identifier, Semicolon,
		While, LeftParen, Identifier, RightParen,
		Fn, Class, For, If, Literal, Or, Return, Super, This, And, Else,
	}
	if len(kinds) != len(want) {
		t.Fatalf("got %d tokens, want %d: %+v", len(kinds), len(want), kinds)
	}
	for i, k := range want {
		if kinds[i] != k {
			t.Errorf("token %d: got %s, want %s", i, kinds[i], k)
		}
	}
}

func TestNextTokenTrueFalseNilAreLiterals(t *testing.T) {
	toks := collect("true false nil")
	if len(toks) != 3 {
		t.Fatalf("got %d tokens, want 3", len(toks))
	}
	for _, tok := range toks {
		if tok.Kind != Literal {
			t.Errorf("got kind %s, want Literal", tok.Kind)
		}
	}
	if toks[0].Value != value.Bool(true) {
		t.Errorf("true literal value = %v", toks[0].Value)
	}
	if toks[1].Value != value.Bool(false) {
		t.Errorf("false literal value = %v", toks[1].Value)
	}
	if _, ok := toks[2].Value.(value.Nil); !ok {
		t.Errorf("nil literal value = %v, want value.Nil", toks[2].Value)
	}
}

func TestNextTokenNumberFraction(t *testing.T) {
	toks := collect("1.2 123. 1e3 1E3 1.5e2 1e 1.")
	if len(toks) != 10 {
		t.Fatalf("got %d tokens, want 10: %+v", len(toks), toks)
	}
	// "123." lexes as Literal(123) followed by Dot; "1e" lexes as
	// Literal(1) followed by Identifier("e"); "1." lexes as Literal(1)
	// followed by Dot.
	checks := []struct {
		idx  int
		kind TokenKind
		num  float64
	}{
		{0, Literal, 1.2},
		{1, Literal, 123},
		{2, Dot, 0},
		{3, Literal, 1000},
		{4, Literal, 1000},
		{5, Literal, 150},
		{6, Literal, 1},
		{7, Identifier, 0},
		{8, Literal, 1},
		{9, Dot, 0},
	}
	for _, c := range checks {
		if toks[c.idx].Kind != c.kind {
			t.Errorf("token %d: got kind %s, want %s", c.idx, toks[c.idx].Kind, c.kind)
			continue
		}
		if c.kind == Literal {
			n, ok := toks[c.idx].Value.(value.Num)
			if !ok || float64(n) != c.num {
				t.Errorf("token %d: got value %v, want %v", c.idx, toks[c.idx].Value, c.num)
			}
		}
	}
}

func TestNextTokenStringEscapes(t *testing.T) {
	toks := collect(`"hello\nworld\t\r\\end"`)
	if len(toks) != 1 || toks[0].Kind != Literal {
		t.Fatalf("got %+v", toks)
	}
	s, ok := toks[0].Value.(value.Str)
	if !ok {
		t.Fatalf("value is %T, want value.Str", toks[0].Value)
	}
	want := "hello\nworld\t\r\\end"
	if string(s) != want {
		t.Errorf("got %q, want %q", s, want)
	}
}

func TestNextTokenUnterminatedStringRecordsDiagnostic(t *testing.T) {
	l := New(`"unterminated`)
	_, ok := l.Next()
	if ok {
		t.Fatalf("expected no token for unterminated string")
	}
	if !l.Errors().HasErrors() {
		t.Fatalf("expected a diagnostic for unterminated string")
	}
}

func TestNextTokenUnexpectedCharacterRecordsDiagnosticAndContinues(t *testing.T) {
	l := New("1 @ 2")
	var got []Token
	for {
		tok, ok := l.Next()
		if !ok {
			break
		}
		got = append(got, tok)
	}
	if len(got) != 2 {
		t.Fatalf("got %d tokens, want 2 (error token skipped): %+v", len(got), got)
	}
	if !l.Errors().HasErrors() {
		t.Fatalf("expected a diagnostic for '@'")
	}
}

func TestNextTokenLineComment(t *testing.T) {
	toks := collect("1 // a comment\n2")
	if len(toks) != 2 {
		t.Fatalf("got %d tokens, want 2: %+v", len(toks), toks)
	}
}
