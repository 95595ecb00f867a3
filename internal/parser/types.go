package parser

import (
	"fmt"
	"strings"
)

type TokenType int

const (
	// Special tokens
	EOF TokenType = iota
	ERROR

	// Identifiers + literals
	IDENTIFIER
	NUMBER

	// Reserved words
	IF
	ELSE
	INT
	RETURN
	VOID
	WHILE

	// Operators
	PLUS
	MINUS
	TIMES
	DIVIDE
	LT
	LTE
	GT
	GTE
	EQ
	NEQ
	ASSIGN

	// Separators
	SEMI
	COMMA
	LPAREN
	RPAREN
	LBRACE
	RBRACE
	LSQUARE
	RSQUARE
)

var tokenTypeNames = [...]string{
	EOF:        "EOF",
	ERROR:      "ERROR",
	IDENTIFIER: "IDENTIFIER",
	NUMBER:     "NUMBER",
	IF:         "IF",
	ELSE:       "ELSE",
	INT:        "INT",
	RETURN:     "RETURN",
	VOID:       "VOID",
	WHILE:      "WHILE",
	PLUS:       "PLUS",
	MINUS:      "MINUS",
	TIMES:      "TIMES",
	DIVIDE:     "DIVIDE",
	LT:         "LT",
	LTE:        "LTE",
	GT:         "GT",
	GTE:        "GTE",
	EQ:         "EQ",
	NEQ:        "NEQ",
	ASSIGN:     "ASSIGN",
	SEMI:       "SEMI",
	COMMA:      "COMMA",
	LPAREN:     "LPAREN",
	RPAREN:     "RPAREN",
	LBRACE:     "LBRACE",
	RBRACE:     "RBRACE",
	LSQUARE:    "LSQUARE",
	RSQUARE:    "RSQUARE",
}

func (t TokenType) String() string {
	if t < 0 || int(t) >= len(tokenTypeNames) {
		return fmt.Sprintf("TokenType(%d)", int(t))
	}
	return tokenTypeNames[t]
}

type Position struct {
	Line   int // 1-based
	Column int // 1-based
	Offset int // 0-based absolute index in input
}

type Token struct {
	Type     TokenType
	Lexeme   string
	Position Position
}

// TokenSource hands out tokens one at a time. Once it has returned EOF it
// must keep returning EOF.
type TokenSource interface {
	NextToken() Token
}

// Describe renders the token for a diagnostic.
func (t Token) Describe() string {
	switch t.Type {
	case EOF:
		return "end of file"
	case IDENTIFIER:
		return fmt.Sprintf("identifier '%s'", t.Lexeme)
	case NUMBER:
		return fmt.Sprintf("number '%s'", t.Lexeme)
	default:
		return fmt.Sprintf("'%s'", t.Lexeme)
	}
}

// lexicalMessage explains why the scanner produced an ERROR token.
func lexicalMessage(t Token) string {
	if strings.HasPrefix(t.Lexeme, "/*") {
		return "unterminated comment"
	}
	return fmt.Sprintf("unexpected character %q", t.Lexeme)
}

func isType(tt TokenType) bool {
	return tt == INT || tt == VOID
}

func isRelational(tt TokenType) bool {
	switch tt {
	case LT, LTE, GT, GTE, EQ, NEQ:
		return true
	}
	return false
}
