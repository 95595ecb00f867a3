package ast

// Inspect traverses the tree rooted at n in depth-first, source order.
// f is called for each node; if it returns false the children of that node
// are skipped. Resolved-declaration links are never followed.
func Inspect(n Node, f func(Node) bool) {
	if n == nil || !f(n) {
		return
	}
	for _, c := range Children(n) {
		Inspect(c, f)
	}
}

// InspectProgram runs Inspect over every top-level declaration.
func InspectProgram(prog *Program, f func(Node) bool) {
	if prog == nil {
		return
	}
	for _, d := range prog.Decls {
		Inspect(d, f)
	}
}

// Children returns the owned, non-nil children of n in source order.
func Children(n Node) []Node {
	var out []Node
	add := func(c Node) {
		if c != nil {
			out = append(out, c)
		}
	}

	switch n := n.(type) {
	case *FuncDecl:
		for _, p := range n.Params {
			add(p)
		}
		if n.Body != nil {
			out = append(out, n.Body)
		}
	case *CompoundStmt:
		for _, d := range n.Locals {
			add(d)
		}
		for _, s := range n.Stmts {
			add(s)
		}
	case *IfStmt:
		add(n.Cond)
		add(n.Then)
		add(n.Else)
	case *WhileStmt:
		add(n.Cond)
		add(n.Body)
	case *ReturnStmt:
		add(n.Value)
	case *CallExpr:
		for _, a := range n.Args {
			add(a)
		}
	case *BinaryExpr:
		add(n.Left)
		add(n.Right)
	case *IdentExpr:
		add(n.Index)
	case *AssignExpr:
		if n.Target != nil {
			out = append(out, n.Target)
		}
		add(n.Value)
	}
	return out
}
