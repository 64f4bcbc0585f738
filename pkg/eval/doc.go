// Package eval is the final stage of the interpreter pipeline: a
// tree-walking evaluator that drives the ExprVisitor/StmtVisitor dispatch
// defined in internal/types and threads a value.Scope chain through
// execution.
//
// Organization, following the reference interpreter's own split across
// vm.rs / expr/vm.rs / stmt/vm.rs:
//   - evaluator.go: the Evaluator type and the top-level Run entry point
//   - operators.go: Binary, Unary, Logical, Grouping, Literal, VarGet, VarSet
//   - control_flow.go: Block, ExprStmt, If, Print, Var, While statements
//   - functions.go: Call
//   - builtins.go: native Fn values bound into the global scope
//
// Evaluation strategy: strict, left-to-right, eager. Arguments are
// evaluated before Call; the only short-circuiting is Logical's "and"/"or".
// A Block pushes a scope before running its statements and pops it on every
// exit path, including error propagation, so a runtime error inside a block
// never leaks that block's bindings into the surrounding scope.
//
// Runtime errors are reported as *diag.Backtrace, which carries the
// originating source span; Run folds each one into the shared diag.Errors
// collector alongside whatever lexer/parser diagnostics already accumulated
// there.
package eval
