package parser

var KEYWORDS = map[string]TokenType{
	"if":     IF,
	"else":   ELSE,
	"int":    INT,
	"return": RETURN,
	"void":   VOID,
	"while":  WHILE,
}

var OPERATORS = map[string]TokenType{
	"+":  PLUS,
	"-":  MINUS,
	"*":  TIMES,
	"/":  DIVIDE,
	"<":  LT,
	"<=": LTE,
	">":  GT,
	">=": GTE,
	"==": EQ,
	"!=": NEQ,
	"=":  ASSIGN,
	";":  SEMI,
	",":  COMMA,
	"(":  LPAREN,
	")":  RPAREN,
	"{":  LBRACE,
	"}":  RBRACE,
	"[":  LSQUARE,
	"]":  RSQUARE,
}
