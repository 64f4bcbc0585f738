package eval

import (
	"time"

	"github.com/loxi-lang/loxi/internal/value"
)

// registerBuiltins binds the native functions into the global scope. The
// grammar has no function-literal syntax (see value.Closure), so these
// value.Builtin bindings are the only concrete way a Lox program can ever
// get its hands on a callable value — without them, VisitCall and the Fn
// interface would be dead code.
func (e *Evaluator) registerBuiltins() {
	e.currentScope.Define("clock", &value.Builtin{
		Name:  "clock",
		Arity: 0,
		Impl:  builtinClock,
	})
	e.currentScope.Define("str", &value.Builtin{
		Name:  "str",
		Arity: 1,
		Impl:  builtinStr,
	})
}

// builtinClock returns the number of seconds since the Unix epoch, the
// canonical no-argument native function used to exercise timing-sensitive
// Lox programs.
func builtinClock(args []value.Value) (value.Value, error) {
	return value.Num(float64(time.Now().UnixNano()) / 1e9), nil
}

// builtinStr converts any value to its textual form, the one built-in every
// other value variant can always be passed through.
func builtinStr(args []value.Value) (value.Value, error) {
	return value.Str(args[0].String()), nil
}
