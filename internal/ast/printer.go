package ast

import (
	"strconv"
	"strings"
)

// Printer renders nodes as S-expressions. With ShowTypes set, every
// expression is suffixed with its inferred type, e.g. "(+ a b):int".
type Printer struct {
	ShowTypes bool
}

// Print renders a whole program, one top-level declaration per line.
func (p Printer) Print(prog *Program) string {
	if prog == nil {
		return ""
	}
	var b strings.Builder
	for i, d := range prog.Decls {
		if i > 0 {
			b.WriteString("\n")
		}
		p.node(&b, d)
	}
	return b.String()
}

// Node renders a single node and its owned children.
func (p Printer) Node(n Node) string {
	var b strings.Builder
	p.node(&b, n)
	return b.String()
}

func (p Printer) node(b *strings.Builder, n Node) {
	switch n := n.(type) {
	case nil:
		b.WriteString("_")

	case *ScalarDecl:
		if n.IsParam {
			b.WriteString("(param ")
		} else {
			b.WriteString("(var ")
		}
		b.WriteString(n.DataType.String() + " " + n.Name + ")")

	case *ArrayDecl:
		if n.IsParam {
			b.WriteString("(param-array " + n.ElemType.String() + " " + n.Name + ")")
		} else {
			b.WriteString("(array " + n.ElemType.String() + " " + n.Name + " " + strconv.Itoa(n.Size) + ")")
		}

	case *FuncDecl:
		b.WriteString("(func " + n.ReturnType.String() + " " + n.Name + " (params")
		for _, param := range n.Params {
			b.WriteString(" ")
			p.node(b, param)
		}
		b.WriteString(") ")
		if n.Body == nil {
			b.WriteString("_")
		} else {
			p.node(b, n.Body)
		}
		b.WriteString(")")

	case *CompoundStmt:
		b.WriteString("(block")
		for _, d := range n.Locals {
			b.WriteString(" ")
			p.node(b, d)
		}
		for _, s := range n.Stmts {
			b.WriteString(" ")
			p.node(b, s)
		}
		b.WriteString(")")

	case *IfStmt:
		b.WriteString("(if ")
		p.node(b, n.Cond)
		b.WriteString(" ")
		p.node(b, n.Then)
		if n.Else != nil {
			b.WriteString(" ")
			p.node(b, n.Else)
		}
		b.WriteString(")")

	case *WhileStmt:
		b.WriteString("(while ")
		p.node(b, n.Cond)
		b.WriteString(" ")
		p.node(b, n.Body)
		b.WriteString(")")

	case *ReturnStmt:
		b.WriteString("(return")
		if n.Value != nil {
			b.WriteString(" ")
			p.node(b, n.Value)
		}
		b.WriteString(")")

	case *CallExpr:
		b.WriteString("(call " + n.Name)
		for _, arg := range n.Args {
			b.WriteString(" ")
			p.node(b, arg)
		}
		b.WriteString(")")
		p.suffix(b, n)

	case *BinaryExpr:
		b.WriteString("(" + n.Op + " ")
		p.node(b, n.Left)
		b.WriteString(" ")
		p.node(b, n.Right)
		b.WriteString(")")
		p.suffix(b, n)

	case *LiteralExpr:
		b.WriteString(strconv.Itoa(n.Value))
		p.suffix(b, n)

	case *IdentExpr:
		if n.Index == nil {
			b.WriteString(n.Name)
		} else {
			b.WriteString("(index " + n.Name + " ")
			p.node(b, n.Index)
			b.WriteString(")")
		}
		p.suffix(b, n)

	case *AssignExpr:
		b.WriteString("(= ")
		if n.Target == nil {
			b.WriteString("_")
		} else {
			p.node(b, n.Target)
		}
		b.WriteString(" ")
		p.node(b, n.Value)
		b.WriteString(")")
		p.suffix(b, n)

	default:
		b.WriteString("?")
	}
}

func (p Printer) suffix(b *strings.Builder, n Node) {
	if p.ShowTypes {
		b.WriteString(":" + n.Type().String())
	}
}

func (d *ScalarDecl) String() string   { return Printer{}.Node(d) }
func (d *ArrayDecl) String() string    { return Printer{}.Node(d) }
func (d *FuncDecl) String() string     { return Printer{}.Node(d) }
func (s *CompoundStmt) String() string { return Printer{}.Node(s) }
func (s *IfStmt) String() string       { return Printer{}.Node(s) }
func (s *WhileStmt) String() string    { return Printer{}.Node(s) }
func (s *ReturnStmt) String() string   { return Printer{}.Node(s) }
func (c *CallExpr) String() string     { return Printer{}.Node(c) }
func (b *BinaryExpr) String() string   { return Printer{}.Node(b) }
func (l *LiteralExpr) String() string  { return Printer{}.Node(l) }
func (i *IdentExpr) String() string    { return Printer{}.Node(i) }
func (a *AssignExpr) String() string   { return Printer{}.Node(a) }

func (p *Program) String() string {
	return Printer{}.Print(p)
}
