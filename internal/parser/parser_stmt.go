package parser

import "cminus/internal/ast"

// compound parses "{ local-decls stmt-list }". A block is always returned,
// even when the braces are missing.
func (p *Parser) compound() *ast.CompoundStmt {
	start := p.tok
	block := &ast.CompoundStmt{Pos: p.makePos(start)}
	if _, ok := p.consume(LBRACE); !ok {
		return block
	}

	for isType(p.tok.Type) {
		if decl := p.localDecl(); decl != nil {
			block.Locals = append(block.Locals, decl)
		}
	}

	for !p.check(RBRACE) && !p.isAtEnd() {
		before := p.consumed
		if stmt := p.statement(); stmt != nil {
			block.Stmts = append(block.Stmts, stmt)
		}
		if p.consumed == before && !p.isAtEnd() {
			p.skip()
		}
	}

	p.consume(RBRACE)
	return block
}

func (p *Parser) statement() ast.Stmt {
	if !p.enter() {
		return nil
	}
	defer p.leave()

	switch p.tok.Type {
	case IF:
		return p.ifStatement()
	case WHILE:
		return p.whileStatement()
	case RETURN:
		return p.returnStatement()
	case LBRACE:
		return p.compound()
	case IDENTIFIER, SEMI, LPAREN, NUMBER:
		return p.expressionStatement()
	default:
		p.skip()
		return nil
	}
}

// expressionStatement parses "expr ;" or the empty statement ";".
func (p *Parser) expressionStatement() ast.Stmt {
	if p.match(SEMI) {
		return nil
	}
	expr := p.expression()
	p.consume(SEMI)
	if expr == nil {
		return nil
	}
	return expr
}

func (p *Parser) ifStatement() ast.Stmt {
	start := p.advance()
	p.consume(LPAREN)
	cond := p.expression()
	p.consume(RPAREN)
	then := p.statement()

	var els ast.Stmt
	if p.match(ELSE) {
		els = p.statement()
	}

	return &ast.IfStmt{
		Pos:  p.makePos(start),
		Cond: cond,
		Then: then,
		Else: els,
	}
}

func (p *Parser) whileStatement() ast.Stmt {
	start := p.advance()
	p.consume(LPAREN)
	cond := p.expression()
	p.consume(RPAREN)
	body := p.statement()

	return &ast.WhileStmt{
		Pos:  p.makePos(start),
		Cond: cond,
		Body: body,
	}
}

func (p *Parser) returnStatement() ast.Stmt {
	start := p.advance()
	ret := &ast.ReturnStmt{Pos: p.makePos(start)}
	if !p.check(SEMI) {
		ret.HasValue = true
		ret.Value = p.expression()
	}
	p.consume(SEMI)
	return ret
}
