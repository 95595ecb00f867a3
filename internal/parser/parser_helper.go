package parser

import (
	"cminus/internal/ast"
	"cminus/internal/errors"
)

func (p *Parser) advance() Token {
	prev := p.tok
	if !p.isAtEnd() {
		p.tok = p.pull()
		p.consumed++
	}
	return prev
}

func (p *Parser) check(tt TokenType) bool {
	return p.tok.Type == tt
}

func (p *Parser) match(types ...TokenType) bool {
	for _, tt := range types {
		if p.check(tt) {
			p.advance()
			return true
		}
	}
	return false
}

// consume takes the expected token or reports the lookahead as unexpected.
// On a mismatch the lookahead is left in place for the caller to use.
func (p *Parser) consume(tt TokenType) (Token, bool) {
	if p.check(tt) {
		return p.advance(), true
	}
	p.errorAtCurrent()
	return p.tok, false
}

// skip reports the lookahead as unexpected and steps over it.
func (p *Parser) skip() {
	p.errorAtCurrent()
	p.advance()
}

func (p *Parser) isAtEnd() bool {
	return p.tok.Type == EOF
}

func (p *Parser) errorAtCurrent() {
	p.report(p.tok, errors.UnexpectedToken(p.tok.Describe(), p.makePos(p.tok), max(1, len(p.tok.Lexeme))))
}

// report forwards err to the sink, keeping at most one diagnostic per token
// and none at all once parsing has been halted.
func (p *Parser) report(at Token, err errors.CompilerError) {
	if p.halted {
		return
	}
	if at.Type != ERROR && at.Position.Offset == p.lastErrOffset {
		return
	}
	p.lastErrOffset = at.Position.Offset
	if p.sink != nil {
		p.sink.Report(err)
	}
}

func (p *Parser) makePos(tok Token) ast.Position {
	return ast.Position{
		Filename: p.filename,
		Offset:   tok.Position.Offset,
		Line:     tok.Position.Line,
		Column:   tok.Position.Column,
	}
}

// synchronize skips to the start of the next top-level declaration.
func (p *Parser) synchronize() {
	for !p.isAtEnd() {
		if isType(p.tok.Type) {
			return
		}
		tt := p.advance().Type
		if tt == SEMI || tt == RBRACE {
			return
		}
	}
}

// enter guards recursion depth. When the limit is exceeded the parse is
// halted: the lookahead becomes EOF so every loop unwinds.
func (p *Parser) enter() bool {
	if p.halted {
		return false
	}
	if p.depth >= p.maxDepth {
		p.report(p.tok, errors.NestingTooDeep(p.maxDepth, p.makePos(p.tok)))
		p.halted = true
		p.tok = Token{Type: EOF, Position: p.tok.Position}
		return false
	}
	p.depth++
	return true
}

func (p *Parser) leave() {
	p.depth--
}
