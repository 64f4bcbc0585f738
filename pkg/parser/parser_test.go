package parser

import (
	"testing"

	"github.com/loxi-lang/loxi/internal/types"
	"github.com/loxi-lang/loxi/internal/value"
	"github.com/loxi-lang/loxi/pkg/lexer"
)

func parseProgram(t *testing.T, source string) []types.Stmt {
	t.Helper()
	p := New(source)
	stmts := p.Parse()
	if p.Errors().HasErrors() {
		t.Fatalf("unexpected parse errors for %q", source)
	}
	return stmts
}

func singleExprStmt(t *testing.T, source string) types.Expr {
	t.Helper()
	stmts := parseProgram(t, source)
	if len(stmts) != 1 {
		t.Fatalf("got %d statements, want 1: %+v", len(stmts), stmts)
	}
	exprStmt, ok := stmts[0].(*types.ExprStmt)
	if !ok {
		t.Fatalf("stmt is %T, want *types.ExprStmt", stmts[0])
	}
	return exprStmt.Expr
}

func testNumberLiteral(t *testing.T, e types.Expr, want float64) bool {
	t.Helper()
	lit, ok := e.(*types.Literal)
	if !ok {
		t.Errorf("expr is %T, want *types.Literal", e)
		return false
	}
	n, ok := lit.Value.(value.Num)
	if !ok {
		t.Errorf("literal value is %T, want value.Num", lit.Value)
		return false
	}
	if float64(n) != want {
		t.Errorf("got %v, want %v", n, want)
		return false
	}
	return true
}

func testIdentifier(t *testing.T, e types.Expr, name string) bool {
	t.Helper()
	get, ok := e.(*types.VarGet)
	if !ok {
		t.Errorf("expr is %T, want *types.VarGet", e)
		return false
	}
	if get.Name != name {
		t.Errorf("got name %q, want %q", get.Name, name)
		return false
	}
	return true
}

func TestParseNumberLiteral(t *testing.T) {
	testNumberLiteral(t, singleExprStmt(t, "5;"), 5)
}

func TestParseIdentifier(t *testing.T) {
	testIdentifier(t, singleExprStmt(t, "foobar;"), "foobar")
}

func TestParseUnary(t *testing.T) {
	tests := []struct {
		input string
		op    lexer.TokenKind
	}{
		{"!true;", lexer.Bang},
		{"-15;", lexer.Minus},
	}
	for _, tt := range tests {
		expr := singleExprStmt(t, tt.input)
		u, ok := expr.(*types.Unary)
		if !ok {
			t.Fatalf("%q: expr is %T, want *types.Unary", tt.input, expr)
		}
		if u.Op != tt.op {
			t.Errorf("%q: got op %v, want %v", tt.input, u.Op, tt.op)
		}
	}
}

func TestParseBinaryPrecedence(t *testing.T) {
	// "*" binds tighter than "+", and both are left-associative, so
	// "1 + 2 * 3" must parse as "1 + (2 * 3)".
	expr := singleExprStmt(t, "1 + 2 * 3;")
	add, ok := expr.(*types.Binary)
	if !ok {
		t.Fatalf("expr is %T, want *types.Binary", expr)
	}
	if add.Op != lexer.Plus {
		t.Fatalf("got op %v, want Plus", add.Op)
	}
	testNumberLiteral(t, add.Left, 1)
	mul, ok := add.Right.(*types.Binary)
	if !ok {
		t.Fatalf("add.Right is %T, want *types.Binary", add.Right)
	}
	if mul.Op != lexer.Star {
		t.Fatalf("got op %v, want Star", mul.Op)
	}
	testNumberLiteral(t, mul.Left, 2)
	testNumberLiteral(t, mul.Right, 3)
}

func TestParseLeftAssociativity(t *testing.T) {
	// "1 - 2 - 3" must parse as "(1 - 2) - 3", not "1 - (2 - 3)".
	expr := singleExprStmt(t, "1 - 2 - 3;")
	outer, ok := expr.(*types.Binary)
	if !ok {
		t.Fatalf("expr is %T, want *types.Binary", expr)
	}
	testNumberLiteral(t, outer.Right, 3)
	inner, ok := outer.Left.(*types.Binary)
	if !ok {
		t.Fatalf("outer.Left is %T, want *types.Binary", outer.Left)
	}
	testNumberLiteral(t, inner.Left, 1)
	testNumberLiteral(t, inner.Right, 2)
}

func TestParseLogicalShortCircuitNodes(t *testing.T) {
	expr := singleExprStmt(t, "true and false or true;")
	orExpr, ok := expr.(*types.Logical)
	if !ok {
		t.Fatalf("expr is %T, want *types.Logical", expr)
	}
	if orExpr.Op != lexer.Or {
		t.Fatalf("got op %v, want Or", orExpr.Op)
	}
	andExpr, ok := orExpr.Left.(*types.Logical)
	if !ok {
		t.Fatalf("orExpr.Left is %T, want *types.Logical", orExpr.Left)
	}
	if andExpr.Op != lexer.And {
		t.Fatalf("got op %v, want And", andExpr.Op)
	}
}

func TestParseGrouping(t *testing.T) {
	expr := singleExprStmt(t, "(1 + 2) * 3;")
	mul, ok := expr.(*types.Binary)
	if !ok {
		t.Fatalf("expr is %T, want *types.Binary", expr)
	}
	group, ok := mul.Left.(*types.Grouping)
	if !ok {
		t.Fatalf("mul.Left is %T, want *types.Grouping", mul.Left)
	}
	if _, ok := group.Inner.(*types.Binary); !ok {
		t.Fatalf("group.Inner is %T, want *types.Binary", group.Inner)
	}
}

func TestParseAssignment(t *testing.T) {
	expr := singleExprStmt(t, "x = 5;")
	set, ok := expr.(*types.VarSet)
	if !ok {
		t.Fatalf("expr is %T, want *types.VarSet", expr)
	}
	if set.Name != "x" {
		t.Errorf("got name %q, want x", set.Name)
	}
	testNumberLiteral(t, set.Expr, 5)
}

func TestParseInvalidAssignmentTargetIsRecovered(t *testing.T) {
	p := New("1 + 2 = 3;")
	p.Parse()
	if !p.Errors().HasErrors() {
		t.Fatalf("expected a diagnostic for an invalid assignment target")
	}
}

func TestParseCallExpression(t *testing.T) {
	expr := singleExprStmt(t, "add(1, 2);")
	call, ok := expr.(*types.Call)
	if !ok {
		t.Fatalf("expr is %T, want *types.Call", expr)
	}
	testIdentifier(t, call.Callee, "add")
	if len(call.Args) != 2 {
		t.Fatalf("got %d args, want 2", len(call.Args))
	}
	testNumberLiteral(t, call.Args[0], 1)
	testNumberLiteral(t, call.Args[1], 2)
}

func TestParseVarDeclaration(t *testing.T) {
	stmts := parseProgram(t, "var x = 5;")
	if len(stmts) != 1 {
		t.Fatalf("got %d statements, want 1", len(stmts))
	}
	varStmt, ok := stmts[0].(*types.VarStmt)
	if !ok {
		t.Fatalf("stmt is %T, want *types.VarStmt", stmts[0])
	}
	if varStmt.Name != "x" {
		t.Errorf("got name %q, want x", varStmt.Name)
	}
	testNumberLiteral(t, varStmt.Init, 5)
}

func TestParseIfStatement(t *testing.T) {
	stmts := parseProgram(t, "if (x < y) print x; else print y;")
	if len(stmts) != 1 {
		t.Fatalf("got %d statements, want 1", len(stmts))
	}
	ifStmt, ok := stmts[0].(*types.IfStmt)
	if !ok {
		t.Fatalf("stmt is %T, want *types.IfStmt", stmts[0])
	}
	cond, ok := ifStmt.Cond.(*types.Binary)
	if !ok {
		t.Fatalf("cond is %T, want *types.Binary", ifStmt.Cond)
	}
	if cond.Op != lexer.Less {
		t.Errorf("got cond op %v, want Less", cond.Op)
	}
	if _, ok := ifStmt.Then.(*types.PrintStmt); !ok {
		t.Errorf("then is %T, want *types.PrintStmt", ifStmt.Then)
	}
	if _, ok := ifStmt.Else.(*types.PrintStmt); !ok {
		t.Errorf("else is %T, want *types.PrintStmt", ifStmt.Else)
	}
}

func TestParseWhileStatement(t *testing.T) {
	stmts := parseProgram(t, "while (x < 10) x = x + 1;")
	if len(stmts) != 1 {
		t.Fatalf("got %d statements, want 1", len(stmts))
	}
	if _, ok := stmts[0].(*types.WhileStmt); !ok {
		t.Fatalf("stmt is %T, want *types.WhileStmt", stmts[0])
	}
}

func TestParseForStatementDesugarsToBlockAndWhile(t *testing.T) {
	stmts := parseProgram(t, "for (var i = 0; i < 3; i = i + 1) print i;")
	if len(stmts) != 1 {
		t.Fatalf("got %d statements, want 1", len(stmts))
	}
	block, ok := stmts[0].(*types.BlockStmt)
	if !ok {
		t.Fatalf("desugared for-stmt is %T, want *types.BlockStmt", stmts[0])
	}
	if len(block.Stmts) != 2 {
		t.Fatalf("got %d stmts in desugared block, want 2 (init, while)", len(block.Stmts))
	}
	if _, ok := block.Stmts[0].(*types.VarStmt); !ok {
		t.Errorf("first stmt is %T, want *types.VarStmt (the init clause)", block.Stmts[0])
	}
	whileStmt, ok := block.Stmts[1].(*types.WhileStmt)
	if !ok {
		t.Fatalf("second stmt is %T, want *types.WhileStmt", block.Stmts[1])
	}
	body, ok := whileStmt.Body.(*types.BlockStmt)
	if !ok {
		t.Fatalf("while body is %T, want *types.BlockStmt (body + update)", whileStmt.Body)
	}
	if len(body.Stmts) != 2 {
		t.Fatalf("got %d stmts in while body, want 2 (body, update)", len(body.Stmts))
	}
}

func TestParseForStatementOmittedClausesDefault(t *testing.T) {
	// With every clause omitted, the condition defaults to a literal true
	// and there is no init statement wrapping the loop.
	stmts := parseProgram(t, "for (;;) print 1;")
	whileStmt, ok := stmts[0].(*types.WhileStmt)
	if !ok {
		t.Fatalf("desugared for-stmt is %T, want *types.WhileStmt", stmts[0])
	}
	lit, ok := whileStmt.Cond.(*types.Literal)
	if !ok {
		t.Fatalf("cond is %T, want *types.Literal", whileStmt.Cond)
	}
	b, ok := lit.Value.(value.Bool)
	if !ok || !bool(b) {
		t.Errorf("default cond value = %v, want true", lit.Value)
	}
}

func TestParseBlockStatement(t *testing.T) {
	stmts := parseProgram(t, "{ var x = 1; print x; }")
	if len(stmts) != 1 {
		t.Fatalf("got %d statements, want 1", len(stmts))
	}
	block, ok := stmts[0].(*types.BlockStmt)
	if !ok {
		t.Fatalf("stmt is %T, want *types.BlockStmt", stmts[0])
	}
	if len(block.Stmts) != 2 {
		t.Fatalf("got %d stmts in block, want 2", len(block.Stmts))
	}
}

func TestParseMissingSemicolonRecoversAndReportsOneDiagnostic(t *testing.T) {
	p := New("var x = 1 print x;")
	stmts := p.Parse()
	if n := len(p.Errors().List()); n != 1 {
		t.Fatalf("got %d diagnostics, want exactly one for the missing ';'", n)
	}
	// Recovery should still let the second statement parse.
	found := false
	for _, s := range stmts {
		if _, ok := s.(*types.PrintStmt); ok {
			found = true
		}
	}
	if !found {
		t.Errorf("expected the print statement to parse after recovery, got %+v", stmts)
	}
}

func TestParseUnterminatedGroupingReportsDiagnostic(t *testing.T) {
	p := New("(1 + 2;")
	p.Parse()
	if !p.Errors().HasErrors() {
		t.Fatalf("expected a diagnostic for the missing ')'")
	}
}
