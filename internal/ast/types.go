package ast

type NodeType int

const (
	// Special / error
	ILLEGAL NodeType = iota

	// Declarations
	SCALAR_DECL
	ARRAY_DECL
	FUNC_DECL

	// Statements
	IF_STMT
	WHILE_STMT
	RETURN_STMT
	CALL
	COMPOUND_STMT

	// Expressions
	BINARY_EXPR
	LITERAL_EXPR
	IDENT_EXPR
	ASSIGN_EXPR
)

var nodeTypeNames = [...]string{
	ILLEGAL:       "ILLEGAL",
	SCALAR_DECL:   "SCALAR_DECL",
	ARRAY_DECL:    "ARRAY_DECL",
	FUNC_DECL:     "FUNC_DECL",
	IF_STMT:       "IF_STMT",
	WHILE_STMT:    "WHILE_STMT",
	RETURN_STMT:   "RETURN_STMT",
	CALL:          "CALL",
	COMPOUND_STMT: "COMPOUND_STMT",
	BINARY_EXPR:   "BINARY_EXPR",
	LITERAL_EXPR:  "LITERAL_EXPR",
	IDENT_EXPR:    "IDENT_EXPR",
	ASSIGN_EXPR:   "ASSIGN_EXPR",
}

func (t NodeType) String() string {
	if t < 0 || int(t) >= len(nodeTypeNames) {
		return "NodeType(?)"
	}
	return nodeTypeNames[t]
}

// ExpType is the type attached to a node by the type checker.
// Unknown is the zero value: the node has not been checked yet, or a
// check on it failed and its type must not produce further diagnostics.
type ExpType int

const (
	Unknown ExpType = iota
	Void
	Integer
	Function
	Array
)

func (t ExpType) String() string {
	switch t {
	case Void:
		return "void"
	case Integer:
		return "int"
	case Function:
		return "function"
	case Array:
		return "array"
	default:
		return "unknown"
	}
}
