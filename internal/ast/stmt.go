package ast

// IfStmt represents a conditional with an optional else branch
// Example: "if (x < y) x = y; else y = x;"
type IfStmt struct {
	Pos  Position
	Cond Expr
	Then Stmt
	Else Stmt // nil when there is no else branch
	typ  ExpType
}

// WhileStmt represents a pre-tested loop
// Example: "while (i < 10) i = i + 1;"
type WhileStmt struct {
	Pos  Position
	Cond Expr
	Body Stmt
	typ  ExpType
}

// ReturnStmt represents a return with an optional value
// Example: "return;" or "return u * v;"
type ReturnStmt struct {
	Pos      Position
	Value    Expr      // nil for a bare return, or when the value failed to parse
	HasValue bool      // a value followed the keyword, even if Value is nil
	Func     *FuncDecl // enclosing function, set by resolution (not owned)
	typ      ExpType
}

// CompoundStmt represents a braced block with its own scope
// Example: "{ int i; i = 0; }"
type CompoundStmt struct {
	Pos    Position
	Locals []Decl
	Stmts  []Stmt
	typ    ExpType
}

func (*IfStmt) isStmt()       {}
func (*WhileStmt) isStmt()    {}
func (*ReturnStmt) isStmt()   {}
func (*CompoundStmt) isStmt() {}
func (*CallExpr) isStmt()     {}
func (*BinaryExpr) isStmt()   {}
func (*LiteralExpr) isStmt()  {}
func (*IdentExpr) isStmt()    {}
func (*AssignExpr) isStmt()   {}
