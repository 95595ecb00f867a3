package semantic

import (
	"cminus/internal/ast"
	"cminus/internal/errors"
	"cminus/internal/symtab"
)

// BuildSymbolTable is the first pass: it declares every name, links each
// identifier and call to its declaration and each return to its function.
// Scopes are opened for every function and every block, so after the pass
// only the outermost scope remains.
func (a *Analyzer) BuildSymbolTable(prog *ast.Program) error {
	a.symbols.Reset()
	a.enclosing = nil

	if a.Trace != nil {
		symtab.WriteHeader(a.Trace)
	}

	for _, fn := range builtinFunctions() {
		a.declare(fn, 0)
	}

	if prog != nil {
		for _, decl := range prog.Decls {
			a.resolveDecl(decl)
		}
	}

	if a.Trace != nil {
		symtab.WriteRuler(a.Trace, "")
		a.symbols.DumpScope(a.Trace)
	}

	return a.internal
}

func (a *Analyzer) declare(d ast.Decl, line int) {
	name := d.DeclName()
	if name == "" {
		// left behind by a syntax error
		return
	}
	if err := a.symbols.Declare(name, d, line); err != nil {
		first, _ := a.symbols.LookupLocal(name)
		a.addCompilerError(errors.DuplicateIdentifier(name, d.DeclNamePos(), first.Line))
	}
}

func (a *Analyzer) exitScope() {
	if a.Trace != nil {
		a.symbols.DumpScope(a.Trace)
	}
	if err := a.symbols.ExitScope(); err != nil {
		a.internalError("%w", err)
	}
}

func (a *Analyzer) resolveDecl(decl ast.Decl) {
	switch d := decl.(type) {
	case *ast.ScalarDecl, *ast.ArrayDecl:
		a.declare(d, d.DeclNamePos().Line)

	case *ast.FuncDecl:
		a.declare(d, d.NamePos.Line)
		a.enclosing = d

		if a.Trace != nil {
			symtab.WriteRuler(a.Trace, d.Name)
		}

		a.symbols.EnterScope()
		for _, param := range d.Params {
			a.declare(param, param.DeclNamePos().Line)
		}
		if d.Body != nil {
			a.resolveStmt(d.Body)
		}
		a.exitScope()
	}
}

func (a *Analyzer) resolveStmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case nil:
		return

	case *ast.CompoundStmt:
		a.symbols.EnterScope()
		for _, local := range s.Locals {
			a.resolveDecl(local)
		}
		for _, inner := range s.Stmts {
			a.resolveStmt(inner)
		}
		a.exitScope()

	case *ast.IfStmt:
		a.resolveExpr(s.Cond)
		a.resolveStmt(s.Then)
		a.resolveStmt(s.Else)

	case *ast.WhileStmt:
		a.resolveExpr(s.Cond)
		a.resolveStmt(s.Body)

	case *ast.ReturnStmt:
		s.Func = a.enclosing
		a.resolveExpr(s.Value)

	case ast.Expr:
		a.resolveExpr(s)
	}
}

func (a *Analyzer) resolveExpr(expr ast.Expr) {
	switch e := expr.(type) {
	case nil:
		return

	case *ast.IdentExpr:
		a.resolveIdent(e)

	case *ast.CallExpr:
		if entry, ok := a.symbols.Lookup(e.Name); ok {
			e.Decl = entry.Decl
		} else {
			e.Decl = nil
			a.addUndeclaredError(e.Name, e.Pos)
		}
		for _, arg := range e.Args {
			a.resolveExpr(arg)
		}

	case *ast.BinaryExpr:
		a.resolveExpr(e.Left)
		a.resolveExpr(e.Right)

	case *ast.AssignExpr:
		if e.Target != nil {
			a.resolveIdent(e.Target)
		}
		a.resolveExpr(e.Value)
	}
}

func (a *Analyzer) resolveIdent(e *ast.IdentExpr) {
	if entry, ok := a.symbols.Lookup(e.Name); ok {
		e.Decl = entry.Decl
	} else {
		e.Decl = nil
		a.addUndeclaredError(e.Name, e.Pos)
	}
	a.resolveExpr(e.Index)
}
