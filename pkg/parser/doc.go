// Package parser implements a recursive-descent parser over a Pratt-style
// precedence ladder, the second stage of the interpreter pipeline.
//
// It consumes tokens from an NPeekable[lexer.Token] (see pkg/npeek) — the
// same lookahead-buffer-plus-cursor abstraction the lexer uses over
// characters — and produces the Expr/Stmt trees defined in internal/types.
//
// Grammar (highest to lowest precedence):
//
//	primary    -> NUMBER | STRING | "true" | "false" | "nil" | IDENT | "(" expression ")"
//	call       -> primary ( "(" arguments? ")" )*
//	unary      -> ( "!" | "-" ) unary | call
//	factor     -> unary ( ( "/" | "*" | "%" ) unary )*
//	term       -> factor ( ( "-" | "+" ) factor )*
//	comparison -> term ( ( "<" | "<=" | ">" | ">=" ) term )*
//	equality   -> comparison ( ( "!=" | "==" ) comparison )*
//	logic_and  -> equality ( "and" equality )*
//	logic_or   -> logic_and ( "or" logic_and )*
//	assignment -> IDENT "=" assignment | logic_or
//	expression -> assignment
//
// Statements:
//
//	declaration -> "var" IDENT ( "=" expression )? ";" | statement
//	statement   -> exprStmt | printStmt | block | ifStmt | whileStmt | forStmt
//	block       -> "{" declaration* "}"
//	ifStmt      -> "if" "(" expression ")" statement ( "else" statement )?
//	whileStmt   -> "while" "(" expression ")" statement
//	forStmt     -> "for" "(" ( varDecl | exprStmt | ";" ) expression? ";" expression? ")" statement
//
// forStmt is desugared at parse time into a block running the init clause
// once followed by a whileStmt whose body appends the update expression (an
// omitted init leaves the whileStmt unwrapped; an omitted update leaves the
// body as written), so the evaluator never needs to know for loops exist.
//
// Error recovery: a failed production sets the shared diag.Errors flag,
// which Parse notices after each top-level declaration and responds to by
// calling synchronize — discarding tokens until a consumed Semicolon or a
// statement-starting keyword — before clearing the flag and resuming. This
// bounds each syntax error to one diagnostic instead of a cascade.
package parser
