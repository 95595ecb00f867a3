package semantic

import "cminus/internal/ast"

// builtinFunctions returns fresh declarations for the runtime library:
//
//	int input(void)
//	void output(int arg)
func builtinFunctions() []*ast.FuncDecl {
	input := &ast.FuncDecl{
		Name:       "input",
		ReturnType: ast.Integer,
		Builtin:    true,
	}
	output := &ast.FuncDecl{
		Name:       "output",
		ReturnType: ast.Void,
		Params: []ast.Decl{
			&ast.ScalarDecl{Name: "arg", DataType: ast.Integer, IsParam: true},
		},
		Builtin: true,
	}

	for _, fn := range []*ast.FuncDecl{input, output} {
		fn.SetType(ast.Function)
		for _, p := range fn.Params {
			p.SetType(ast.DeclaredType(p))
		}
	}
	return []*ast.FuncDecl{input, output}
}
