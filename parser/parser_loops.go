/*
File    : pixc/parser/parser_loops.go
Package : parser
*/
package parser

import (
	"github.com/pixarlang/pixc/ast"
	"github.com/pixarlang/pixc/diag"
	"github.com/pixarlang/pixc/token"
)

// parseWhile implements: while-stmt := "while" "(" expression ")" block
func (p *Parser) parseWhile() (*ast.While, *diag.Error) {
	kw, err := p.expect(token.WHILE)
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
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.While{Condition: cond, Body: body, Base: ast.At(kw.Pos)}, nil
}

// parseFor implements:
//
//	for-stmt := "for" "(" (let-decl | assignment) expression ";" assignment ")" block
//
// Both the initializer and the update clause are full let-decl or
// assignment productions and so each consume their own trailing ";"
// — the one explicit ";" in the grammar above separates the loop
// condition from the update, not the initializer from the condition.
//
// The code generator lowers this to { Init; while Condition { Body;
// Update } } rather than the parser building that desugared form
// directly, so the semantic analyzer can still apply its own
// for-specific scoping rule: Init's binding is visible only within
// Condition, Update, and Body.
func (p *Parser) parseFor() (*ast.For, *diag.Error) {
	kw, err := p.expect(token.FOR)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}

	var init ast.Stmt
	if p.check(token.LET) {
		init, err = p.parseLetDecl()
	} else {
		init, err = p.parseAssignment()
	}
	if err != nil {
		return nil, err
	}

	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.SEMI); err != nil {
		return nil, err
	}

	update, err := p.parseAssignment()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	return &ast.For{Init: init, Condition: cond, Update: update, Body: body, Base: ast.At(kw.Pos)}, nil
}
