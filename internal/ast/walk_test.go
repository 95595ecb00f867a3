package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInspectVisitsInSourceOrder(t *testing.T) {
	fn := sampleFunction()

	var kinds []NodeType
	Inspect(fn, func(n Node) bool {
		kinds = append(kinds, n.NodeType())
		return true
	})

	assert.Equal(t, []NodeType{
		FUNC_DECL,
		SCALAR_DECL, ARRAY_DECL,
		COMPOUND_STMT,
		SCALAR_DECL,
		ASSIGN_EXPR, IDENT_EXPR, BINARY_EXPR, IDENT_EXPR, IDENT_EXPR, LITERAL_EXPR,
		RETURN_STMT, IDENT_EXPR,
	}, kinds)
}

func TestInspectSkipsChildren(t *testing.T) {
	fn := sampleFunction()

	count := 0
	Inspect(fn, func(n Node) bool {
		count++
		_, isBlock := n.(*CompoundStmt)
		return !isBlock
	})
	// func, two params, the block itself
	assert.Equal(t, 4, count)
}

func TestInspectDoesNotFollowBackReferences(t *testing.T) {
	fn := sampleFunction()
	ret := fn.Body.Stmts[1].(*ReturnStmt)
	ret.Func = fn
	ident := ret.Value.(*IdentExpr)
	ident.Decl = fn.Body.Locals[0]

	funcs := 0
	Inspect(fn, func(n Node) bool {
		if n.NodeType() == FUNC_DECL {
			funcs++
		}
		return true
	})
	assert.Equal(t, 1, funcs)
}

func TestChildrenSkipsNil(t *testing.T) {
	ifStmt := &IfStmt{Then: &ReturnStmt{}}
	assert.Len(t, Children(ifStmt), 1)
	assert.Empty(t, Children(&LiteralExpr{Value: 1}))
}

func TestDeclHelpers(t *testing.T) {
	assert.Equal(t, Integer, DeclaredType(&ScalarDecl{DataType: Integer}))
	assert.Equal(t, Array, DeclaredType(&ArrayDecl{ElemType: Integer}))
	assert.Equal(t, Function, DeclaredType(&FuncDecl{ReturnType: Void}))
	assert.True(t, IsParam(&ArrayDecl{IsParam: true}))
	assert.False(t, IsParam(&FuncDecl{}))
	assert.True(t, IsRelational("<="))
	assert.False(t, IsRelational("+"))
}
