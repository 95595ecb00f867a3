package ast

type Node interface {
	NodePos() Position
	NodeType() NodeType
	String() string

	// Inferred type slot, filled in by the type checker
	Type() ExpType
	SetType(ExpType)
}

// Decl is a scalar, array or function declaration.
type Decl interface {
	Node
	DeclName() string
	DeclNamePos() Position
	isDecl()
}

// Stmt is anything that may appear in a statement list.
type Stmt interface {
	Node
	isStmt()
}

// Expr is an expression; every expression is also a statement.
type Expr interface {
	Stmt
	isExpr()
}

func (d *ScalarDecl) NodePos() Position { return d.Pos }
func (*ScalarDecl) NodeType() NodeType  { return SCALAR_DECL }
func (d *ScalarDecl) Type() ExpType     { return d.typ }
func (d *ScalarDecl) SetType(t ExpType) { d.typ = t }

func (d *ArrayDecl) NodePos() Position { return d.Pos }
func (*ArrayDecl) NodeType() NodeType  { return ARRAY_DECL }
func (d *ArrayDecl) Type() ExpType     { return d.typ }
func (d *ArrayDecl) SetType(t ExpType) { d.typ = t }

func (d *FuncDecl) NodePos() Position { return d.Pos }
func (*FuncDecl) NodeType() NodeType  { return FUNC_DECL }
func (d *FuncDecl) Type() ExpType     { return d.typ }
func (d *FuncDecl) SetType(t ExpType) { d.typ = t }

func (s *IfStmt) NodePos() Position { return s.Pos }
func (*IfStmt) NodeType() NodeType  { return IF_STMT }
func (s *IfStmt) Type() ExpType     { return s.typ }
func (s *IfStmt) SetType(t ExpType) { s.typ = t }

func (s *WhileStmt) NodePos() Position { return s.Pos }
func (*WhileStmt) NodeType() NodeType  { return WHILE_STMT }
func (s *WhileStmt) Type() ExpType     { return s.typ }
func (s *WhileStmt) SetType(t ExpType) { s.typ = t }

func (s *ReturnStmt) NodePos() Position { return s.Pos }
func (*ReturnStmt) NodeType() NodeType  { return RETURN_STMT }
func (s *ReturnStmt) Type() ExpType     { return s.typ }
func (s *ReturnStmt) SetType(t ExpType) { s.typ = t }

func (s *CompoundStmt) NodePos() Position { return s.Pos }
func (*CompoundStmt) NodeType() NodeType  { return COMPOUND_STMT }
func (s *CompoundStmt) Type() ExpType     { return s.typ }
func (s *CompoundStmt) SetType(t ExpType) { s.typ = t }

func (c *CallExpr) NodePos() Position { return c.Pos }
func (*CallExpr) NodeType() NodeType  { return CALL }
func (c *CallExpr) Type() ExpType     { return c.typ }
func (c *CallExpr) SetType(t ExpType) { c.typ = t }

func (b *BinaryExpr) NodePos() Position { return b.Pos }
func (*BinaryExpr) NodeType() NodeType  { return BINARY_EXPR }
func (b *BinaryExpr) Type() ExpType     { return b.typ }
func (b *BinaryExpr) SetType(t ExpType) { b.typ = t }

func (l *LiteralExpr) NodePos() Position { return l.Pos }
func (*LiteralExpr) NodeType() NodeType  { return LITERAL_EXPR }
func (l *LiteralExpr) Type() ExpType     { return l.typ }
func (l *LiteralExpr) SetType(t ExpType) { l.typ = t }

func (i *IdentExpr) NodePos() Position { return i.Pos }
func (*IdentExpr) NodeType() NodeType  { return IDENT_EXPR }
func (i *IdentExpr) Type() ExpType     { return i.typ }
func (i *IdentExpr) SetType(t ExpType) { i.typ = t }

func (a *AssignExpr) NodePos() Position { return a.Pos }
func (*AssignExpr) NodeType() NodeType  { return ASSIGN_EXPR }
func (a *AssignExpr) Type() ExpType     { return a.typ }
func (a *AssignExpr) SetType(t ExpType) { a.typ = t }
