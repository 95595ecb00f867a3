package parser

import (
	"strconv"

	"cminus/internal/ast"
	"cminus/internal/errors"
)

// declaration parses a top-level "type ID ;" or "type ID ( params ) compound".
// It returns nil when nothing usable could be built.
func (p *Parser) declaration() ast.Decl {
	start := p.tok
	typ := p.typeSpecifier()
	nameTok, hasName := p.consume(IDENTIFIER)
	name := ""
	if hasName {
		name = nameTok.Lexeme
	}

	switch p.tok.Type {
	case SEMI:
		p.advance()
		if !hasName {
			return nil
		}
		return &ast.ScalarDecl{
			Pos:      p.makePos(start),
			NamePos:  p.makePos(nameTok),
			Name:     name,
			DataType: typ,
		}

	case LPAREN:
		p.advance()
		fn := &ast.FuncDecl{
			Pos:        p.makePos(start),
			NamePos:    p.makePos(nameTok),
			Name:       name,
			ReturnType: typ,
		}
		fn.Params = p.params()
		p.consume(RPAREN)
		fn.Body = p.compound()
		return fn

	default:
		// includes "type ID [": arrays are only allowed inside functions
		p.skip()
		return nil
	}
}

// typeSpecifier parses "int" or "void". When neither is present it reports
// the error and returns Unknown, so the declaration that follows is kept
// but never checked against.
func (p *Parser) typeSpecifier() ast.ExpType {
	switch p.tok.Type {
	case INT:
		p.advance()
		return ast.Integer
	case VOID:
		p.advance()
		return ast.Void
	}
	p.report(p.tok, errors.ExpectedType(p.tok.Describe(), p.makePos(p.tok), max(1, len(p.tok.Lexeme))))
	return ast.Unknown
}

// params parses a parameter list; a lone "void" means no parameters.
func (p *Parser) params() []ast.Decl {
	if p.match(VOID) {
		return nil
	}

	var params []ast.Decl
	for {
		if param := p.param(); param != nil {
			params = append(params, param)
		}
		if !p.match(COMMA) {
			break
		}
	}
	return params
}

// param parses "type ID" or "type ID [ ]".
func (p *Parser) param() ast.Decl {
	start := p.tok
	typ := p.typeSpecifier()
	nameTok, ok := p.consume(IDENTIFIER)
	if !ok {
		return nil
	}

	if p.match(LSQUARE) {
		p.consume(RSQUARE)
		return &ast.ArrayDecl{
			Pos:      p.makePos(start),
			NamePos:  p.makePos(nameTok),
			Name:     nameTok.Lexeme,
			ElemType: typ,
			IsParam:  true,
		}
	}

	return &ast.ScalarDecl{
		Pos:      p.makePos(start),
		NamePos:  p.makePos(nameTok),
		Name:     nameTok.Lexeme,
		DataType: typ,
		IsParam:  true,
	}
}

// localDecl parses "type ID ;" or "type ID [ NUM ] ;" inside a block.
func (p *Parser) localDecl() ast.Decl {
	start := p.tok
	typ := p.typeSpecifier()
	nameTok, hasName := p.consume(IDENTIFIER)

	var decl ast.Decl
	switch p.tok.Type {
	case SEMI:
		p.advance()
		decl = &ast.ScalarDecl{
			Pos:      p.makePos(start),
			NamePos:  p.makePos(nameTok),
			Name:     nameTok.Lexeme,
			DataType: typ,
		}

	case LSQUARE:
		p.advance()
		size := 0
		if sizeTok, ok := p.consume(NUMBER); ok {
			size = p.literal(sizeTok).Value
		}
		p.consume(RSQUARE)
		p.consume(SEMI)
		decl = &ast.ArrayDecl{
			Pos:      p.makePos(start),
			NamePos:  p.makePos(nameTok),
			Name:     nameTok.Lexeme,
			ElemType: typ,
			Size:     size,
		}

	default:
		p.skip()
		return nil
	}

	if !hasName {
		return nil
	}
	return decl
}

// literal converts a NUMBER token that has already been consumed.
func (p *Parser) literal(tok Token) *ast.LiteralExpr {
	v, err := strconv.ParseInt(tok.Lexeme, 10, 32)
	if err != nil {
		p.report(tok, errors.LiteralOutOfRange(tok.Lexeme, p.makePos(tok)))
		v = 0
	}
	return &ast.LiteralExpr{
		Pos:   p.makePos(tok),
		Value: int(v),
		Raw:   tok.Lexeme,
	}
}
