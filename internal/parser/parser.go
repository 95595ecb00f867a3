package parser

import (
	"cminus/internal/ast"
	"cminus/internal/errors"
)

const DefaultMaxDepth = 200

// Parser is a predictive recursive-descent parser with one token of
// lookahead. Diagnostics go straight to the sink; parsing never stops
// early except when the nesting limit is hit.
type Parser struct {
	src      TokenSource
	sink     errors.Sink
	filename string

	tok      Token // lookahead
	consumed int   // tokens taken so far, used as a progress marker

	depth    int
	maxDepth int
	halted   bool

	lastErrOffset int
}

type Option func(*Parser)

// WithFilename sets the filename recorded in node positions.
func WithFilename(name string) Option {
	return func(p *Parser) { p.filename = name }
}

// WithMaxDepth caps statement/expression nesting. Zero or negative keeps the default.
func WithMaxDepth(n int) Option {
	return func(p *Parser) {
		if n > 0 {
			p.maxDepth = n
		}
	}
}

func New(src TokenSource, sink errors.Sink, opts ...Option) *Parser {
	p := &Parser{
		src:           src,
		sink:          sink,
		maxDepth:      DefaultMaxDepth,
		lastErrOffset: -1,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.tok = p.pull()
	return p
}

// ParseSource scans and parses source in one step.
func ParseSource(filename, source string, sink errors.Sink, opts ...Option) *ast.Program {
	opts = append([]Option{WithFilename(filename)}, opts...)
	return New(NewScanner(filename, source), sink, opts...).ParseProgram()
}

// ParseProgram parses declarations until end of input.
func (p *Parser) ParseProgram() *ast.Program {
	prog := &ast.Program{Filename: p.filename}

	for !p.isAtEnd() {
		before := p.consumed
		decl := p.declaration()
		if decl != nil {
			prog.Decls = append(prog.Decls, decl)
			continue
		}
		p.synchronize()
		if p.consumed == before {
			p.advance()
		}
	}

	return prog
}

// pull fetches the next non-ERROR token from the source, reporting
// lexical errors as it skips them.
func (p *Parser) pull() Token {
	for {
		tok := p.src.NextToken()
		if tok.Type != ERROR {
			return tok
		}
		p.report(tok, errors.LexicalError(lexicalMessage(tok), p.makePos(tok), len(tok.Lexeme)))
	}
}
