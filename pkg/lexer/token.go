package lexer

import "github.com/loxi-lang/loxi/internal/value"

// TokenKind classifies a lexical token.
type TokenKind int

const (
	// Single-character punctuators.
	LeftParen TokenKind = iota
	RightParen
	LeftBrace
	RightBrace
	Comma
	Dot
	Minus
	Plus
	Semicolon
	Star
	Percent
	Slash

	// One- or two-character operators.
	Bang
	BangEqual
	Equal
	EqualEqual
	Less
	LessEqual
	Greater
	GreaterEqual

	// Identifier and literal.
	Identifier
	Literal

	// Keywords.
	And
	Class
	Else
	False
	Fn
	For
	If
	Nil
	Or
	Print
	Return
	Super
	This
	True
	Var
	While

	// Control tokens.
	Error
	EOF
)

var tokenNames = map[TokenKind]string{
	LeftParen: "LeftParen", RightParen: "RightParen",
	LeftBrace: "LeftBrace", RightBrace: "RightBrace",
	Comma: "Comma", Dot: "Dot", Minus: "Minus", Plus: "Plus",
	Semicolon: "Semicolon", Star: "Star", Percent: "Percent", Slash: "Slash",
	Bang: "Bang", BangEqual: "BangEqual",
	Equal: "Equal", EqualEqual: "EqualEqual",
	Less: "Less", LessEqual: "LessEqual",
	Greater: "Greater", GreaterEqual: "GreaterEqual",
	Identifier: "Identifier", Literal: "Literal",
	And: "And", Class: "Class", Else: "Else", False: "False", Fn: "Fn",
	For: "For", If: "If", Nil: "Nil", Or: "Or", Print: "Print",
	Return: "Return", Super: "Super", This: "This", True: "True",
	Var: "Var", While: "While",
	Error: "Error", EOF: "EOF",
}

func (k TokenKind) String() string {
	if name, ok := tokenNames[k]; ok {
		return name
	}
	return "Unknown"
}

// keywords maps reserved identifier text to its keyword TokenKind. true,
// false, and nil are looked up here too, but the lexer re-emits them as
// Literal tokens carrying the corresponding value rather than as bare
// keyword tokens.
var keywords = map[string]TokenKind{
	"and": And, "class": Class, "else": Else, "false": False,
	"fn": Fn, "for": For, "if": If, "nil": Nil, "or": Or,
	"print": Print, "return": Return, "super": Super, "this": This,
	"true": True, "var": Var, "while": While,
}

// Token is a single lexical token: its kind, its byte span, its exact
// source text, and (for Literal tokens) the value it carries.
type Token struct {
	Kind  TokenKind
	Start int
	Text  string
	Value value.Value
}
