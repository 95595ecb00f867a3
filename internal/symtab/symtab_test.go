package symtab

import (
	"bytes"
	"strings"
	"testing"

	"cminus/internal/ast"
	"github.com/nalgeon/be"
)

func scalar(name string) *ast.ScalarDecl {
	return &ast.ScalarDecl{Name: name, DataType: ast.Integer}
}

func TestDeclareAndLookup(t *testing.T) {
	tab := New()
	x := scalar("x")
	be.Err(t, tab.Declare("x", x, 1), nil)

	e, ok := tab.Lookup("x")
	be.True(t, ok)
	be.Equal(t, e.Decl, ast.Decl(x))
	be.Equal(t, e.Line, 1)

	_, ok = tab.Lookup("y")
	be.True(t, !ok)
}

func TestDuplicateKeepsFirst(t *testing.T) {
	tab := New()
	first := scalar("f")
	second := scalar("f")

	be.Err(t, tab.Declare("f", first, 1), nil)
	err := tab.Declare("f", second, 2)
	be.Err(t, err, ErrDuplicate)

	e, _ := tab.Lookup("f")
	be.Equal(t, e.Decl, ast.Decl(first))
	be.Equal(t, len(tab.CurrentScope()), 1)
}

func TestShadowingAndTeardown(t *testing.T) {
	tab := New()
	outer := scalar("x")
	inner := scalar("x")

	be.Err(t, tab.Declare("x", outer, 1), nil)
	tab.EnterScope()
	be.Err(t, tab.Declare("x", inner, 2), nil)

	e, _ := tab.Lookup("x")
	be.Equal(t, e.Decl, ast.Decl(inner))
	be.Equal(t, tab.Depth(), 2)

	be.Err(t, tab.ExitScope(), nil)
	e, _ = tab.Lookup("x")
	be.Equal(t, e.Decl, ast.Decl(outer))
	be.Equal(t, tab.Depth(), 1)
}

func TestInnerDeclarationsVanishOnExit(t *testing.T) {
	tab := New()
	tab.EnterScope()
	be.Err(t, tab.Declare("tmp", scalar("tmp"), 3), nil)
	tab.EnterScope()
	be.Err(t, tab.Declare("deeper", scalar("deeper"), 4), nil)

	be.Err(t, tab.ExitScope(), nil)
	_, ok := tab.Lookup("deeper")
	be.True(t, !ok)
	_, ok = tab.Lookup("tmp")
	be.True(t, ok)

	be.Err(t, tab.ExitScope(), nil)
	_, ok = tab.Lookup("tmp")
	be.True(t, !ok)
}

func TestExitOutermostScopeFails(t *testing.T) {
	tab := New()
	be.Err(t, tab.ExitScope(), ErrScopeUnderflow)
	be.Equal(t, tab.Depth(), 1)
}

func TestLookupLocal(t *testing.T) {
	tab := New()
	be.Err(t, tab.Declare("g", scalar("g"), 1), nil)
	tab.EnterScope()

	_, ok := tab.LookupLocal("g")
	be.True(t, !ok)
	_, ok = tab.Lookup("g")
	be.True(t, ok)

	// redeclaring in a nested scope is legal
	be.Err(t, tab.Declare("g", scalar("g"), 2), nil)
}

func TestReset(t *testing.T) {
	tab := New()
	be.Err(t, tab.Declare("a", scalar("a"), 1), nil)
	tab.EnterScope()
	tab.EnterScope()

	tab.Reset()
	be.Equal(t, tab.Depth(), 1)
	be.Equal(t, len(tab.CurrentScope()), 0)
	_, ok := tab.Lookup("a")
	be.True(t, !ok)
}

func TestCurrentScopeOrder(t *testing.T) {
	tab := New()
	for i, name := range []string{"c", "a", "b"} {
		be.Err(t, tab.Declare(name, scalar(name), i+1), nil)
	}

	var names []string
	for _, e := range tab.CurrentScope() {
		names = append(names, e.Name)
	}
	be.Equal(t, names, []string{"c", "a", "b"})
}

func TestVisible(t *testing.T) {
	tab := New()
	be.Err(t, tab.Declare("x", scalar("x"), 1), nil)
	be.Err(t, tab.Declare("y", scalar("y"), 1), nil)
	tab.EnterScope()
	be.Err(t, tab.Declare("x", scalar("x"), 2), nil)
	be.Err(t, tab.Declare("z", scalar("z"), 2), nil)

	be.Equal(t, tab.Visible(), []string{"x", "z", "y"})
}

func TestTraceOutput(t *testing.T) {
	var buf bytes.Buffer
	WriteHeader(&buf)
	WriteRuler(&buf, "gcd")

	tab := New()
	tab.EnterScope()
	be.Err(t, tab.Declare("u", &ast.ScalarDecl{Name: "u", DataType: ast.Integer, IsParam: true}, 2), nil)
	be.Err(t, tab.Declare("buf", &ast.ArrayDecl{Name: "buf", ElemType: ast.Integer, Size: 10}, 3), nil)
	tab.DumpScope(&buf)

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	be.Equal(t, len(lines), 6)
	be.Equal(t, lines[0], "---"+strings.Repeat("-", 45))
	be.Equal(t, lines[1], "Scope Identifier  Line  Is a  Symbol type")
	be.Equal(t, lines[3], "--- gcd "+strings.Repeat("-", 40))
	be.Equal(t, lines[4], "  1   u                    2     Y    Scalar of type int")
	be.Equal(t, lines[5], "  1   buf                  3     N    Array of type int with 10 elements")
}

func TestDescribe(t *testing.T) {
	be.Equal(t, Describe(&ast.FuncDecl{ReturnType: ast.Void}), "Function with return type void")
	be.Equal(t, Describe(&ast.ArrayDecl{ElemType: ast.Integer, IsParam: true}), "Array of type int")
	be.Equal(t, Describe(nil), "<<ERROR>>")
}
