package ast

// Program represents one compilation unit (the entire source file)
// Example: "int x; int main(void) { return x; }"
type Program struct {
	Filename string
	Decls    []Decl // Top-level declarations in source order
}

// Position tracks location information for error reporting and tooling
type Position struct {
	Filename string
	Offset   int
	Line     int
	Column   int
}

// Function looks up a top-level function declaration by name.
func (p *Program) Function(name string) *FuncDecl {
	for _, d := range p.Decls {
		if fn, ok := d.(*FuncDecl); ok && fn.Name == name {
			return fn
		}
	}
	return nil
}
