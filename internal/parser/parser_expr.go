package parser

import (
	"cminus/internal/ast"
	"cminus/internal/errors"
)

// expression parses an assignment or a simple expression. An identifier
// (or call) read while looking for "=" is handed down the precedence
// levels so it becomes the leftmost operand.
func (p *Parser) expression() ast.Expr {
	if !p.enter() {
		return nil
	}
	defer p.leave()

	var lvalue ast.Expr
	if p.check(IDENTIFIER) {
		lvalue = p.identifierOrCall()
	}

	if lvalue != nil && p.check(ASSIGN) {
		target, ok := lvalue.(*ast.IdentExpr)
		if !ok {
			p.report(p.tok, errors.NotAnLvalue(p.makePos(p.tok)))
			p.advance()
			return nil
		}
		eq := p.advance()
		value := p.expression()
		return &ast.AssignExpr{
			Pos:    p.makePos(eq),
			Target: target,
			Value:  value,
		}
	}

	return p.simpleExpression(lvalue)
}

// simpleExpression allows at most one relational operator.
func (p *Parser) simpleExpression(passdown ast.Expr) ast.Expr {
	left := p.additive(passdown)

	if isRelational(p.tok.Type) {
		op := p.advance()
		right := p.additive(nil)
		return &ast.BinaryExpr{
			Pos:   p.makePos(op),
			Op:    op.Lexeme,
			Left:  left,
			Right: right,
		}
	}

	return left
}

func (p *Parser) additive(passdown ast.Expr) ast.Expr {
	expr := p.term(passdown)

	for p.check(PLUS) || p.check(MINUS) {
		op := p.advance()
		right := p.term(nil)
		expr = &ast.BinaryExpr{
			Pos:   p.makePos(op),
			Op:    op.Lexeme,
			Left:  expr,
			Right: right,
		}
	}

	return expr
}

func (p *Parser) term(passdown ast.Expr) ast.Expr {
	expr := p.factor(passdown)

	for p.check(TIMES) || p.check(DIVIDE) {
		op := p.advance()
		right := p.factor(nil)
		expr = &ast.BinaryExpr{
			Pos:   p.makePos(op),
			Op:    op.Lexeme,
			Left:  expr,
			Right: right,
		}
	}

	return expr
}

func (p *Parser) factor(passdown ast.Expr) ast.Expr {
	if passdown != nil {
		return passdown
	}

	switch p.tok.Type {
	case IDENTIFIER:
		return p.identifierOrCall()

	case LPAREN:
		p.advance()
		expr := p.expression()
		p.consume(RPAREN)
		return expr

	case NUMBER:
		return p.literal(p.advance())

	default:
		p.skip()
		return nil
	}
}

// identifierOrCall parses "ID", "ID [ expr ]" or "ID ( args )".
func (p *Parser) identifierOrCall() ast.Expr {
	name := p.advance()

	switch p.tok.Type {
	case LPAREN:
		p.advance()
		call := &ast.CallExpr{
			Pos:  p.makePos(name),
			Name: name.Lexeme,
			Args: p.args(),
		}
		p.consume(RPAREN)
		return call

	case LSQUARE:
		p.advance()
		ident := &ast.IdentExpr{
			Pos:   p.makePos(name),
			Name:  name.Lexeme,
			Index: p.expression(),
		}
		p.consume(RSQUARE)
		return ident

	default:
		return &ast.IdentExpr{
			Pos:  p.makePos(name),
			Name: name.Lexeme,
		}
	}
}

func (p *Parser) args() []ast.Expr {
	if p.check(RPAREN) {
		return nil
	}

	var args []ast.Expr
	for {
		if arg := p.expression(); arg != nil {
			args = append(args, arg)
		}
		if !p.match(COMMA) {
			break
		}
	}
	return args
}
