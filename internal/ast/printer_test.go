// SPDX-License-Identifier: Apache-2.0
package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleFunction() *FuncDecl {
	// int f(int a, int b[]) { int t; t = a + b[1]; return t; }
	a := &ScalarDecl{Name: "a", DataType: Integer, IsParam: true}
	b := &ArrayDecl{Name: "b", ElemType: Integer, IsParam: true}
	t := &ScalarDecl{Name: "t", DataType: Integer}

	sum := &BinaryExpr{
		Op:    "+",
		Left:  &IdentExpr{Name: "a"},
		Right: &IdentExpr{Name: "b", Index: &LiteralExpr{Value: 1, Raw: "1"}},
	}
	fn := &FuncDecl{
		Name:       "f",
		ReturnType: Integer,
		Params:     []Decl{a, b},
		Body: &CompoundStmt{
			Locals: []Decl{t},
			Stmts: []Stmt{
				&AssignExpr{Target: &IdentExpr{Name: "t"}, Value: sum},
				&ReturnStmt{Value: &IdentExpr{Name: "t"}},
			},
		},
	}
	return fn
}

func TestPrintFunction(t *testing.T) {
	fn := sampleFunction()
	expected := "(func int f (params (param int a) (param-array int b)) " +
		"(block (var int t) (= t (+ a (index b 1))) (return t)))"
	assert.Equal(t, expected, fn.String())
}

func TestPrintControlFlow(t *testing.T) {
	ifStmt := &IfStmt{
		Cond: &BinaryExpr{Op: "<", Left: &IdentExpr{Name: "x"}, Right: &LiteralExpr{Value: 3}},
		Then: &CallExpr{Name: "output", Args: []Expr{&IdentExpr{Name: "x"}}},
	}
	assert.Equal(t, "(if (< x 3) (call output x))", ifStmt.String())

	ifStmt.Else = &ReturnStmt{}
	assert.Equal(t, "(if (< x 3) (call output x) (return))", ifStmt.String())

	loop := &WhileStmt{Cond: &IdentExpr{Name: "x"}, Body: &CompoundStmt{}}
	assert.Equal(t, "(while x (block))", loop.String())
}

func TestPrintNilSubtrees(t *testing.T) {
	bin := &BinaryExpr{Op: "*", Left: &LiteralExpr{Value: 2}}
	assert.Equal(t, "(* 2 _)", bin.String())

	fn := &FuncDecl{Name: "g", ReturnType: Void}
	assert.Equal(t, "(func void g (params) _)", fn.String())
}

func TestPrintShowTypes(t *testing.T) {
	call := &CallExpr{Name: "input"}
	call.SetType(Integer)
	assign := &AssignExpr{Target: &IdentExpr{Name: "x"}, Value: call}
	assign.Target.SetType(Integer)
	assign.SetType(Integer)

	p := Printer{ShowTypes: true}
	assert.Equal(t, "(= x:int (call input):int):int", p.Node(assign))

	unchecked := &IdentExpr{Name: "y"}
	assert.Equal(t, "y:unknown", p.Node(unchecked))
}

func TestPrintProgram(t *testing.T) {
	prog := &Program{Decls: []Decl{
		&ScalarDecl{Name: "g", DataType: Integer},
		&FuncDecl{Name: "main", ReturnType: Void, Body: &CompoundStmt{
			Locals: []Decl{&ArrayDecl{Name: "buf", ElemType: Integer, Size: 10}},
		}},
	}}
	assert.Equal(t, "(var int g)\n(func void main (params) (block (array int buf 10)))", prog.String())
	assert.NotNil(t, prog.Function("main"))
	assert.Nil(t, prog.Function("g"))
}

func TestExpTypeString(t *testing.T) {
	assert.Equal(t, "unknown", Unknown.String())
	assert.Equal(t, "void", Void.String())
	assert.Equal(t, "int", Integer.String())
	assert.Equal(t, "function", Function.String())
	assert.Equal(t, "array", Array.String())
	assert.Equal(t, "CALL", CALL.String())
}
