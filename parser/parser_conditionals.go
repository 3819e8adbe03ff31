/*
File    : pixc/parser/parser_conditionals.go
Package : parser
*/
package parser

import (
	"github.com/pixarlang/pixc/ast"
	"github.com/pixarlang/pixc/diag"
	"github.com/pixarlang/pixc/token"
)

// parseIf implements:
//
//	if-stmt := "if" "(" expression ")" block ("else" block)?
//
// else always binds to the nearest enclosing if, since both branches
// are required to be braced blocks rather than bare statements — there
// is no dangling-else ambiguity to resolve here.
func (p *Parser) parseIf() (*ast.If, *diag.Error) {
	kw, err := p.expect(token.IF)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	then, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	stmt := &ast.If{Condition: cond, Then: then, Base: ast.At(kw.Pos)}
	if p.check(token.ELSE) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		elseBlock, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		stmt.Else = elseBlock
	}
	return stmt, nil
}
