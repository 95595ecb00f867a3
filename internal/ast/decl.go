package ast

// ScalarDecl represents a scalar variable or a scalar parameter
// Example: "int count;" or the "int a" in "int f(int a)"
type ScalarDecl struct {
	Pos      Position
	NamePos  Position
	Name     string
	DataType ExpType // Integer or Void, as written
	IsParam  bool
	typ      ExpType
}

// ArrayDecl represents a local array or an array parameter
// Example: "int buf[10];" or the "int a[]" in "int sum(int a[])"
type ArrayDecl struct {
	Pos      Position
	NamePos  Position
	Name     string
	ElemType ExpType
	Size     int // zero for parameters
	IsParam  bool
	typ      ExpType
}

// FuncDecl represents a function definition
// Example: "int gcd(int u, int v) { ... }"
type FuncDecl struct {
	Pos        Position
	NamePos    Position
	Name       string
	ReturnType ExpType
	Params     []Decl // ScalarDecl or ArrayDecl, IsParam set
	Body       *CompoundStmt
	Builtin    bool // input/output, never part of a parsed tree
	typ        ExpType
}

func (d *ScalarDecl) DeclName() string { return d.Name }
func (d *ArrayDecl) DeclName() string  { return d.Name }
func (d *FuncDecl) DeclName() string   { return d.Name }

func (d *ScalarDecl) DeclNamePos() Position { return d.NamePos }
func (d *ArrayDecl) DeclNamePos() Position  { return d.NamePos }
func (d *FuncDecl) DeclNamePos() Position   { return d.NamePos }

func (*ScalarDecl) isDecl() {}
func (*ArrayDecl) isDecl()  {}
func (*FuncDecl) isDecl()   {}

// DeclaredType is the type a declaration contributes to references of its
// name, independent of whether the checker has visited it yet.
func DeclaredType(d Decl) ExpType {
	switch d := d.(type) {
	case *ScalarDecl:
		return d.DataType
	case *ArrayDecl:
		return Array
	case *FuncDecl:
		return Function
	default:
		return Unknown
	}
}

// IsParam reports whether d is a formal parameter.
func IsParam(d Decl) bool {
	switch d := d.(type) {
	case *ScalarDecl:
		return d.IsParam
	case *ArrayDecl:
		return d.IsParam
	default:
		return false
	}
}
