// Package npeek implements a multi-step lookahead iterator over any lazy
// sequence.
//
// NPeekable wraps a pull-based sequence (a func() (T, bool) that yields the
// next item, or reports that the sequence is exhausted) and layers a small
// buffer plus a cursor on top of it. The buffer holds items that have been
// pulled from the underlying sequence but not yet consumed by Next; the
// cursor is an index into that buffer tracking how far Peek/PeekNext have
// looked ahead without consuming anything.
//
// The motivating use case is the lexer's numeric-literal scanner, which must
// distinguish "1.2" (a fractional number) from "1.foo" (an integer followed
// by a selector) by looking one character past a '.' without consuming it.
// A single-step Peek cannot answer that question; NPeekable's PeekNext can.
package npeek
