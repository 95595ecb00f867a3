package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenTypes(tokens []Token) []TokenType {
	types := make([]TokenType, len(tokens))
	for i, tok := range tokens {
		types[i] = tok.Type
	}
	return types
}

func TestScanTokens(t *testing.T) {
	tokens := NewScanner("test.cm", "int x; /* c */ x <= 10 != y[3] @").ScanTokens()

	assert.Equal(t, []TokenType{
		INT, IDENTIFIER, SEMI,
		IDENTIFIER, LTE, NUMBER, NEQ, IDENTIFIER, LSQUARE, NUMBER, RSQUARE,
		ERROR, EOF,
	}, tokenTypes(tokens))

	assert.Equal(t, "x", tokens[1].Lexeme)
	assert.Equal(t, "<=", tokens[4].Lexeme)
	assert.Equal(t, "10", tokens[5].Lexeme)
	assert.Equal(t, "@", tokens[11].Lexeme)
}

func TestScanKeywordsAndOperators(t *testing.T) {
	tokens := NewScanner("test.cm", "if else int return void while + - * / < > = == ; , ( ) { } >=").ScanTokens()

	assert.Equal(t, []TokenType{
		IF, ELSE, INT, RETURN, VOID, WHILE,
		PLUS, MINUS, TIMES, DIVIDE, LT, GT, ASSIGN, EQ,
		SEMI, COMMA, LPAREN, RPAREN, LBRACE, RBRACE, GTE,
		EOF,
	}, tokenTypes(tokens))
}

func TestScanPositions(t *testing.T) {
	tokens := NewScanner("test.cm", "/* a\n b */ x\n  y").ScanTokens()
	require.Len(t, tokens, 3)

	assert.Equal(t, Position{Line: 2, Column: 7, Offset: 11}, tokens[0].Position)
	assert.Equal(t, Position{Line: 3, Column: 3, Offset: 15}, tokens[1].Position)
}

func TestScanUnterminatedComment(t *testing.T) {
	tokens := NewScanner("test.cm", "int x; /* never closed\n int y;").ScanTokens()

	assert.Equal(t, []TokenType{INT, IDENTIFIER, SEMI, ERROR, EOF}, tokenTypes(tokens))
	assert.Equal(t, "unterminated comment", lexicalMessage(tokens[3]))
}

func TestScannerKeepsReturningEOF(t *testing.T) {
	s := NewScanner("test.cm", "x")
	assert.Equal(t, IDENTIFIER, s.NextToken().Type)
	for i := 0; i < 3; i++ {
		assert.Equal(t, EOF, s.NextToken().Type)
	}
}

func TestFromTokens(t *testing.T) {
	src := FromTokens([]Token{{Type: IDENTIFIER, Lexeme: "a", Position: Position{Line: 4}}})
	assert.Equal(t, IDENTIFIER, src.NextToken().Type)

	eof := src.NextToken()
	assert.Equal(t, EOF, eof.Type)
	assert.Equal(t, 4, eof.Position.Line)
	assert.Equal(t, EOF, src.NextToken().Type)
}

func TestTokenDescribe(t *testing.T) {
	assert.Equal(t, "identifier 'abc'", Token{Type: IDENTIFIER, Lexeme: "abc"}.Describe())
	assert.Equal(t, "number '7'", Token{Type: NUMBER, Lexeme: "7"}.Describe())
	assert.Equal(t, "';'", Token{Type: SEMI, Lexeme: ";"}.Describe())
	assert.Equal(t, "end of file", Token{Type: EOF}.Describe())
	assert.Equal(t, "LSQUARE", LSQUARE.String())
}
