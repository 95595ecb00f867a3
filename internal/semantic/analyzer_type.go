package semantic

import (
	"cminus/internal/ast"
	"cminus/internal/errors"
)

// CheckTypes is the second pass. It runs after BuildSymbolTable and assigns
// a type to every node, children before parents. A node whose own check
// fails, or whose operands are unknown, gets ast.Unknown so that a single
// mistake is reported once.
func (a *Analyzer) CheckTypes(prog *ast.Program) error {
	if prog == nil {
		return a.internal
	}
	for _, decl := range prog.Decls {
		a.checkDecl(decl)
	}
	return a.internal
}

func (a *Analyzer) checkDecl(decl ast.Decl) {
	switch d := decl.(type) {
	case *ast.ScalarDecl, *ast.ArrayDecl:
		d.SetType(ast.DeclaredType(d))

	case *ast.FuncDecl:
		for _, param := range d.Params {
			a.checkDecl(param)
		}
		if d.Body != nil {
			a.checkStmt(d.Body)
		}
		d.SetType(ast.Function)
	}
}

func (a *Analyzer) checkStmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case nil:
		return

	case *ast.CompoundStmt:
		for _, local := range s.Locals {
			a.checkDecl(local)
		}
		for _, inner := range s.Stmts {
			a.checkStmt(inner)
		}
		s.SetType(ast.Void)

	case *ast.IfStmt:
		a.checkCondition("if", s.Cond)
		a.checkStmt(s.Then)
		a.checkStmt(s.Else)
		s.SetType(ast.Void)

	case *ast.WhileStmt:
		a.checkCondition("while", s.Cond)
		a.checkStmt(s.Body)
		s.SetType(ast.Void)

	case *ast.ReturnStmt:
		a.checkReturn(s)
		s.SetType(ast.Void)

	case ast.Expr:
		a.checkExpr(s)
	}
}

func (a *Analyzer) checkCondition(stmt string, cond ast.Expr) {
	typ := a.checkExpr(cond)
	if typ != ast.Unknown && typ != ast.Integer {
		a.addCompilerError(errors.ConditionNotInteger(stmt, typ, cond.NodePos()))
	}
}

func (a *Analyzer) checkReturn(s *ast.ReturnStmt) {
	typ := a.checkExpr(s.Value)
	if s.Func == nil {
		return
	}

	switch s.Func.ReturnType {
	case ast.Integer:
		if (s.Value == nil && !s.HasValue) || (typ != ast.Unknown && typ != ast.Integer) {
			a.addCompilerError(errors.MissingReturnValue(s.Func.Name, s.Pos))
		}
	case ast.Void:
		if s.Value != nil {
			a.addCompilerError(errors.VoidReturnValue(s.Func.Name, s.Pos))
		}
	}
}

// checkExpr types expr and returns the type it was given. A nil expression
// is Unknown.
func (a *Analyzer) checkExpr(expr ast.Expr) ast.ExpType {
	if expr == nil {
		return ast.Unknown
	}

	var typ ast.ExpType
	switch e := expr.(type) {
	case *ast.LiteralExpr:
		typ = ast.Integer
	case *ast.IdentExpr:
		typ = a.checkIdent(e)
	case *ast.CallExpr:
		typ = a.checkCall(e)
	case *ast.BinaryExpr:
		typ = a.checkBinary(e)
	case *ast.AssignExpr:
		typ = a.checkAssign(e)
	default:
		a.internalError("unexpected expression node %s", expr.NodeType())
		typ = ast.Unknown
	}

	expr.SetType(typ)
	return typ
}

func (a *Analyzer) checkIdent(e *ast.IdentExpr) ast.ExpType {
	index := a.checkExpr(e.Index)

	switch d := e.Decl.(type) {
	case nil:
		return ast.Unknown

	case *ast.ScalarDecl:
		if e.Index != nil {
			a.addCompilerError(errors.IllegalIdentifierUse(e.Name, d.DataType, e.Pos))
			return ast.Unknown
		}
		return d.DataType

	case *ast.ArrayDecl:
		if e.Index == nil {
			return ast.Array
		}
		if index == ast.Unknown {
			return ast.Unknown
		}
		if index != ast.Integer {
			a.addCompilerError(errors.IndexNotInteger(e.Name, index, e.Index.NodePos()))
			return ast.Unknown
		}
		return d.ElemType

	case *ast.FuncDecl:
		if e.Index != nil {
			a.addCompilerError(errors.IllegalIdentifierUse(e.Name, ast.Function, e.Pos))
			return ast.Unknown
		}
		return ast.Function

	default:
		a.internalError("identifier %q bound to %T", e.Name, d)
		return ast.Unknown
	}
}

func (a *Analyzer) checkCall(e *ast.CallExpr) ast.ExpType {
	actual := make([]ast.ExpType, len(e.Args))
	for i, arg := range e.Args {
		actual[i] = a.checkExpr(arg)
	}

	if e.Decl == nil {
		return ast.Unknown
	}
	fn, ok := e.Decl.(*ast.FuncDecl)
	if !ok {
		a.addCompilerError(errors.NotAFunction(e.Name, e.Pos))
		return ast.Unknown
	}

	expected := make([]ast.ExpType, len(fn.Params))
	for i, param := range fn.Params {
		expected[i] = ast.DeclaredType(param)
	}

	if !argumentsMatch(expected, actual) {
		a.addCompilerError(errors.ParameterMismatch(e.Name, expected, actual, e.Pos))
		return ast.Unknown
	}
	return fn.ReturnType
}

// argumentsMatch compares positionally. Unknown arguments already carry a
// diagnostic of their own and match anything.
func argumentsMatch(expected, actual []ast.ExpType) bool {
	if len(expected) != len(actual) {
		return false
	}
	for i := range expected {
		if actual[i] != ast.Unknown && expected[i] != ast.Unknown && actual[i] != expected[i] {
			return false
		}
	}
	return true
}

func (a *Analyzer) checkBinary(e *ast.BinaryExpr) ast.ExpType {
	left := a.checkExpr(e.Left)
	right := a.checkExpr(e.Right)

	if !isOperator(e.Op) {
		a.addCompilerError(errors.UnknownOperator(e.Op, e.Pos))
		a.internalError("unknown operator %q at line %d", e.Op, e.Pos.Line)
		return ast.Unknown
	}
	if left == ast.Unknown || right == ast.Unknown {
		return ast.Unknown
	}
	if left != ast.Integer || right != ast.Integer {
		a.addCompilerError(errors.OperandsNotInteger(e.Op, left, right, e.Pos))
		return ast.Unknown
	}
	return ast.Integer
}

func (a *Analyzer) checkAssign(e *ast.AssignExpr) ast.ExpType {
	var target ast.ExpType
	if e.Target != nil {
		target = a.checkExpr(e.Target)
	}
	value := a.checkExpr(e.Value)

	if target == ast.Unknown || value == ast.Unknown {
		return ast.Unknown
	}
	if target != ast.Integer || value != ast.Integer {
		a.addCompilerError(errors.AssignmentMismatch(target, value, e.Pos))
		return ast.Unknown
	}
	return ast.Integer
}

func isOperator(op string) bool {
	switch op {
	case "+", "-", "*", "/":
		return true
	}
	return ast.IsRelational(op)
}
