package eval

import (
	"github.com/loxi-lang/loxi/internal/diag"
	"github.com/loxi-lang/loxi/internal/types"
	"github.com/loxi-lang/loxi/internal/value"
)

// VisitCall evaluates the callee, requires it be an Fn, evaluates every
// argument left-to-right (short-circuiting on the first argument error),
// and dispatches to Call. Arity mismatches surface as whatever error Call
// itself returns (see value.Builtin.Call).
func (e *Evaluator) VisitCall(c *types.Call) (value.Value, error) {
	callee, err := e.evaluate(c.Callee)
	if err != nil {
		return nil, err
	}
	fn, ok := callee.(value.Fn)
	if !ok {
		return nil, diag.BacktraceAt("expected callable", c.Callee.Span().Start, c.Callee.Span().Len)
	}

	args := make([]value.Value, len(c.Args))
	for i, argExpr := range c.Args {
		v, err := e.evaluate(argExpr)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	result, err := fn.Call(args)
	if err != nil {
		if _, ok := err.(*diag.Backtrace); ok {
			return nil, err
		}
		return nil, diag.BacktraceAt(err.Error(), c.Span().Start, c.Span().Len)
	}
	return result, nil
}
