package eval

import (
	"github.com/loxi-lang/loxi/internal/diag"
	"github.com/loxi-lang/loxi/internal/types"
	"github.com/loxi-lang/loxi/internal/value"
)

// VisitBlockStmt pushes a fresh scope, runs every statement in it, and pops
// on every exit path — the normal end of the loop and an early return on the
// first runtime error alike — so a scope is never leaked.
func (e *Evaluator) VisitBlockStmt(b *types.BlockStmt) error {
	e.currentScope = e.currentScope.Push()
	diag.Log.Debugln("eval: scope push")
	for _, stmt := range b.Stmts {
		if err := e.execute(stmt); err != nil {
			e.currentScope = e.currentScope.Pop()
			diag.Log.Debugln("eval: scope pop (error)")
			return err
		}
	}
	e.currentScope = e.currentScope.Pop()
	diag.Log.Debugln("eval: scope pop")
	return nil
}

// VisitExprStmt evaluates an expression and discards its value.
func (e *Evaluator) VisitExprStmt(s *types.ExprStmt) error {
	_, err := e.evaluate(s.Expr)
	return err
}

// VisitIfStmt evaluates the condition and runs Then or Else (if present)
// based on its truthiness.
func (e *Evaluator) VisitIfStmt(s *types.IfStmt) error {
	cond, err := e.evaluate(s.Cond)
	if err != nil {
		return err
	}
	if cond.Truthy() {
		return e.execute(s.Then)
	}
	if s.Else != nil {
		return e.execute(s.Else)
	}
	return nil
}

// VisitPrintStmt evaluates an expression and writes its text form followed
// by a newline.
func (e *Evaluator) VisitPrintStmt(s *types.PrintStmt) error {
	v, err := e.evaluate(s.Expr)
	if err != nil {
		return err
	}
	e.fprintln(v.String())
	return nil
}

// VisitVarStmt evaluates the initializer (or defaults to Nil) and defines
// the binding in the current scope — always a new binding, even if a
// variable of the same name already exists in an outer scope.
func (e *Evaluator) VisitVarStmt(s *types.VarStmt) error {
	var v value.Value = value.Nil{}
	if s.Init != nil {
		evaluated, err := e.evaluate(s.Init)
		if err != nil {
			return err
		}
		v = evaluated
	}
	e.currentScope.Define(s.Name, v)
	return nil
}

// VisitWhileStmt repeats Body while Cond evaluates truthy, propagating the
// first runtime error from either the condition or the body immediately.
func (e *Evaluator) VisitWhileStmt(s *types.WhileStmt) error {
	for {
		cond, err := e.evaluate(s.Cond)
		if err != nil {
			return err
		}
		if !cond.Truthy() {
			return nil
		}
		if err := e.execute(s.Body); err != nil {
			return err
		}
	}
}
