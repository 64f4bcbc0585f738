// Package diag collects and renders the interpreter's diagnostics.
//
// Errors is the shared collection used by the lexer, parser, and evaluator:
// an ordered sequence of severity-tagged messages anchored to a byte span in
// the source, plus a one-bit "error raised" flag the parser uses for
// panic-mode recovery (Push is a no-op while the flag is already set, which
// dedupes cascading parse errors until the caller clears it).
//
// Backtrace is the runtime-error counterpart: a message plus an ordered list
// of call sites, innermost first, propagated as a Go error through every
// enclosing expression and statement evaluation.
//
// Neither type talks to logrus; both are user-facing language diagnostics,
// rendered through Errors.Fprint.
package diag
