package diag

import "github.com/sirupsen/logrus"

// Log is the package-level operator-facing logger, distinct from the
// user-facing Errors collection (errors.go). Ordinary lex/parse/runtime
// diagnostics never go through it; it exists for two things only:
//
//   - Panicln-class invariant violations: a Visitor switch reaching a
//     default arm, an AST node built in a shape the grammar should never
//     produce. These indicate a bug in this interpreter, not a mistake in
//     the program it's running.
//   - Debugf-class tracing (scope push/pop, token production), enabled by
//     the CLI's -v/--verbose flag.
//
// Neither Errors nor Backtrace talks to logrus; both are user-facing
// language diagnostics, reported through Errors.Fprint instead.
var Log = logrus.New()

func init() {
	Log.SetLevel(logrus.InfoLevel)
}

// SetVerbose raises or lowers the package logger to Debug level, wired to
// the CLI's -v/--verbose flag.
func SetVerbose(verbose bool) {
	if verbose {
		Log.SetLevel(logrus.DebugLevel)
	} else {
		Log.SetLevel(logrus.InfoLevel)
	}
}
