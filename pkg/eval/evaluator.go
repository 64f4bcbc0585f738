package eval

import (
	"fmt"
	"io"
	"os"

	"github.com/loxi-lang/loxi/internal/diag"
	"github.com/loxi-lang/loxi/internal/types"
	"github.com/loxi-lang/loxi/internal/value"
	"github.com/loxi-lang/loxi/pkg/parser"
)

// Evaluator is the tree-walking engine that drives the ExprVisitor/StmtVisitor
// dispatch defined in internal/types. It holds the current scope of the
// running program and the output stream print statements write to.
//
// An Evaluator is reused across a REPL session's successive lines, so the
// scope chain persists between Run calls, matching the reference
// interpreter's single long-lived VM.
type Evaluator struct {
	currentScope *value.Scope
	out          io.Writer
}

// New creates an Evaluator with a fresh top-level scope, writing print
// statement output to stdout.
func New() *Evaluator {
	e := &Evaluator{
		currentScope: value.NewScope(),
		out:          os.Stdout,
	}
	e.registerBuiltins()
	return e
}

// Run parses source and executes every resulting statement in order,
// recording a diagnostic for each runtime error immediately (rather than
// aborting the whole run), then returns the collector holding every lexer,
// parser, and runtime diagnostic — mirroring VM::run's combination of
// per-statement error recovery with a final batch of syntax diagnostics.
func (e *Evaluator) Run(source string) *diag.Errors {
	p := parser.New(source)
	stmts := p.Parse()
	errs := p.Errors()

	for _, stmt := range stmts {
		if err := e.execute(stmt); err != nil {
			if bt, ok := err.(*diag.Backtrace); ok {
				for _, site := range bt.Sites {
					errs.Push(bt.Message, diag.Error, site.Start, site.Length, false)
				}
			} else {
				errs.Push(err.Error(), diag.Error, 0, 0, false)
			}
		}
	}
	return errs
}

// execute runs a single statement through the StmtVisitor contract.
func (e *Evaluator) execute(stmt types.Stmt) error {
	return stmt.Run(e)
}

// evaluate runs a single expression through the ExprVisitor contract.
func (e *Evaluator) evaluate(expr types.Expr) (value.Value, error) {
	return expr.Run(e)
}

var _ types.ExprVisitor = (*Evaluator)(nil)
var _ types.StmtVisitor = (*Evaluator)(nil)

func (e *Evaluator) fprintln(args ...interface{}) {
	fmt.Fprintln(e.out, args...)
}
