// Package lexer is the first stage of the interpreter pipeline: it turns
// source text into a stream of Tokens the parser consumes.
//
// Token Recognition:
//   - Keywords: and class else false fn for if nil or print return super
//     this true var while
//   - Identifiers: [A-Za-z_][A-Za-z_0-9]*
//   - Literals: numbers (with optional fraction and e/E exponent), strings
//     (with \r \n \t escapes), and true/false/nil (re-emitted as Literal)
//   - Operators: + - * / % ! = < > (single- and two-char forms), == != <= >=
//   - Delimiters: ( ) { } , . ;
//
// Comment Handling:
//   - Single-line comments starting with "//", consuming to end of line.
//
// Lookahead:
//   - The scanner is driven through an NPeekable so the numeric scanner can
//     look two characters ahead, at a '.' or 'e'/'E' and the character
//     after it (pkg/npeek), without consuming, the only place in the grammar
//     that needs more than
//     one-character lookahead.
//
// Iterator contract:
//   - Next skips Error tokens (recorded as diagnostics instead) and returns
//     false at end-of-input without ever yielding an EOF token.
//
// Identifiers are interned (github.com/josharian/intern) so that repeated
// variable names across a source file share one backing string.
package lexer
