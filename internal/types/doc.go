// Package types defines the two AST sum types the parser produces and the
// evaluator walks: Expr and Stmt.
//
// Expression variants:
//   - Binary, Logical: two-operand operators; Logical is short-circuiting
//     and so evaluates its right operand conditionally, unlike Binary.
//   - Grouping: a parenthesized sub-expression.
//   - Literal: a constant value baked in at parse time.
//   - Unary: a prefix "!" or "-" operator.
//   - VarGet, VarSet: variable read and assignment.
//   - Call: a function call with a fixed argument list.
//
// Statement variants:
//   - BlockStmt, ExprStmt, IfStmt, PrintStmt, VarStmt, WhileStmt.
//
// Every node carries a Span (byte start and length) for diagnostics, and
// dispatches to the evaluator through the ExprVisitor/StmtVisitor contract:
// Run(v) calls exactly one v.VisitXxx(self) method. This replaces the
// reference interpreter's runtime-downcast style (is_varget, into_exprstmt)
// with ordinary Go type assertions (AsVarGet, AsExprStmt) over a closed set
// of concrete types.
package types
