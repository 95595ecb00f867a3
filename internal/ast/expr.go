package ast

// CallExpr represents a function call, either as a statement or as a value
// Example: "output(gcd(x, y))"
type CallExpr struct {
	Pos  Position
	Name string
	Args []Expr
	Decl Decl // resolved callee, set by resolution (not owned)
	typ  ExpType
}

// BinaryExpr represents arithmetic and relational operations
// Example: "a + b", "x <= 10"
type BinaryExpr struct {
	Pos   Position
	Op    string // "+", "-", "*", "/", "<", "<=", ">", ">=", "==", "!="
	Left  Expr
	Right Expr
	typ   ExpType
}

// LiteralExpr represents an integer constant
type LiteralExpr struct {
	Pos   Position
	Value int
	Raw   string // original spelling
	typ   ExpType
}

// IdentExpr represents a variable reference, optionally indexed
// Example: "x" or "a[i + 1]"
type IdentExpr struct {
	Pos   Position
	Name  string
	Index Expr // nil unless indexed
	Decl  Decl // resolved declaration, set by resolution (not owned)
	typ   ExpType
}

// AssignExpr represents an assignment; its value is the assigned value
// Example: "x = y = 0"
type AssignExpr struct {
	Pos    Position
	Target *IdentExpr
	Value  Expr
	typ    ExpType
}

func (*CallExpr) isExpr()    {}
func (*BinaryExpr) isExpr()  {}
func (*LiteralExpr) isExpr() {}
func (*IdentExpr) isExpr()   {}
func (*AssignExpr) isExpr()  {}

// IsRelational reports whether op is one of the comparison operators.
func IsRelational(op string) bool {
	switch op {
	case "<", "<=", ">", ">=", "==", "!=":
		return true
	}
	return false
}
