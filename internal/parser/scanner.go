package parser

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// Rules are tried in order at each position; the first match wins.
var cminusLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		{Name: "Comment", Pattern: `/\*([^*]|\*+[^*/])*\*+/`, Action: nil},
		{Name: "BadComment", Pattern: `/\*(?s:.*)`, Action: nil},

		{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`, Action: nil},
		{Name: "Number", Pattern: `[0-9]+`, Action: nil},

		{Name: "Operator", Pattern: `==|!=|<=|>=|[-+*/<>=;,(){}\[\]]`, Action: nil},

		{Name: "Whitespace", Pattern: `[ \t\r\n\f\v]+`, Action: nil},

		// Anything else is a lexical error
		{Name: "Error", Pattern: `.`, Action: nil},
	},
})

var symbolNames = invertSymbols(cminusLexer.Symbols())

func invertSymbols(symbols map[string]lexer.TokenType) map[lexer.TokenType]string {
	names := make(map[lexer.TokenType]string, len(symbols))
	for name, tt := range symbols {
		names[tt] = name
	}
	return names
}

// Scanner is the TokenSource for C-minus source text. Comments and
// whitespace are dropped; malformed input comes out as ERROR tokens.
type Scanner struct {
	lex lexer.Lexer
	eof *Token
}

func NewScanner(filename, source string) *Scanner {
	s := &Scanner{}
	lex, err := cminusLexer.LexString(filename, source)
	if err != nil {
		s.eof = &Token{Type: EOF, Position: Position{Line: 1, Column: 1}}
		return s
	}
	s.lex = lex
	return s
}

func (s *Scanner) NextToken() Token {
	for s.eof == nil {
		tok, err := s.lex.Next()
		if err != nil {
			// Only reachable on input the catch-all rule cannot consume.
			pos := Position{}
			if lerr, ok := err.(*lexer.Error); ok {
				pos = convertPos(lerr.Pos)
			}
			s.eof = &Token{Type: EOF, Position: pos}
			return Token{Type: ERROR, Lexeme: err.Error(), Position: pos}
		}
		if tok.EOF() {
			s.eof = &Token{Type: EOF, Position: convertPos(tok.Pos)}
			break
		}

		switch symbolNames[tok.Type] {
		case "Comment", "Whitespace":
			continue
		case "Ident":
			if kw, ok := KEYWORDS[tok.Value]; ok {
				return Token{Type: kw, Lexeme: tok.Value, Position: convertPos(tok.Pos)}
			}
			return Token{Type: IDENTIFIER, Lexeme: tok.Value, Position: convertPos(tok.Pos)}
		case "Number":
			return Token{Type: NUMBER, Lexeme: tok.Value, Position: convertPos(tok.Pos)}
		case "Operator":
			return Token{Type: OPERATORS[tok.Value], Lexeme: tok.Value, Position: convertPos(tok.Pos)}
		default:
			return Token{Type: ERROR, Lexeme: tok.Value, Position: convertPos(tok.Pos)}
		}
	}
	return *s.eof
}

// ScanTokens drains the source, returning every token up to and including EOF.
func (s *Scanner) ScanTokens() []Token {
	var tokens []Token
	for {
		tok := s.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == EOF {
			return tokens
		}
	}
}

func convertPos(pos lexer.Position) Position {
	return Position{Line: pos.Line, Column: pos.Column, Offset: pos.Offset}
}

// tokenSlice replays a fixed token list.
type tokenSlice struct {
	tokens []Token
	next   int
}

// FromTokens returns a TokenSource over tokens. An EOF is synthesised if
// the list does not end with one.
func FromTokens(tokens []Token) TokenSource {
	return &tokenSlice{tokens: tokens}
}

func (ts *tokenSlice) NextToken() Token {
	if ts.next >= len(ts.tokens) {
		var pos Position
		if n := len(ts.tokens); n > 0 {
			pos = ts.tokens[n-1].Position
		}
		return Token{Type: EOF, Position: pos}
	}
	tok := ts.tokens[ts.next]
	if tok.Type != EOF {
		ts.next++
	}
	return tok
}
