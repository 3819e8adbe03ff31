/*
File    : pixc/parser/parser_statements.go
Package : parser
*/
package parser

import (
	"github.com/pixarlang/pixc/ast"
	"github.com/pixarlang/pixc/diag"
	"github.com/pixarlang/pixc/token"
)

// parseStatement implements:
//
//	statement := let-decl | assignment | if-stmt | while-stmt | for-stmt
//	           | function-def | return-stmt | block | builtin-call
//	           | expression ";"
//
// Disambiguation is by the current token's kind, plus the following
// token's kind when the current one is an IDENT (assignment vs. call).
func (p *Parser) parseStatement() (ast.Stmt, *diag.Error) {
	switch p.cur.Kind {
	case token.LET:
		return p.parseLetDecl()
	case token.IF:
		return p.parseIf()
	case token.WHILE:
		return p.parseWhile()
	case token.FOR:
		return p.parseFor()
	case token.FUN:
		return p.parseFunctionDef()
	case token.RETURN:
		return p.parseReturn()
	case token.LBRACE:
		return p.parseBlock()
	case token.PAD_READ, token.PAD_PRINT, token.PAD_DELAY, token.PAD_RANDI,
		token.PAD_WIDTH, token.PAD_HEIGHT, token.PAD_PIXEL, token.PAD_PIXELR:
		return p.parseBuiltinStatement()
	case token.IDENT:
		// IDENT "=" starts an assignment; anything else starting with
		// IDENT is a call-or-bare-reference expression statement.
		if p.next.Kind == token.ASSIGN {
			return p.parseAssignment()
		}
		return p.parseExpressionStatement()
	default:
		return nil, p.unexpectedToken(token.IDENT)
	}
}

// parseLetDecl implements:
//
//	let-decl := "let" IDENT ":" type "=" expression ";"
func (p *Parser) parseLetDecl() (*ast.Declaration, *diag.Error) {
	kw, err := p.expect(token.LET)
	if err != nil {
		return nil, err
	}
	name, err := p.expect(token.IDENT)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.COLON); err != nil {
		return nil, err
	}
	typ, err := p.parseType()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.ASSIGN); err != nil {
		return nil, err
	}
	init, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.SEMI); err != nil {
		return nil, err
	}
	return &ast.Declaration{
		DeclaredType: typ,
		Name:         name.Lexeme,
		Initializer:  init,
		Base:         ast.At(kw.Pos),
	}, nil
}

// parseType implements: type := "int" | "float" | "bool" | "colour"
func (p *Parser) parseType() (string, *diag.Error) {
	switch p.cur.Kind {
	case token.INT_TY, token.FLOAT_TY, token.BOOL_TY, token.COLR_TY:
		tok := p.cur
		if err := p.advance(); err != nil {
			return "", err
		}
		return string(tok.Kind), nil
	default:
		return "", diag.New(diag.MalformedDeclaration, p.cur.Pos, "expected a type, found %s %q", p.cur.Kind, p.cur.Lexeme)
	}
}

// parseAssignment implements: assignment := IDENT "=" expression ";"
func (p *Parser) parseAssignment() (*ast.Assignment, *diag.Error) {
	name, err := p.expect(token.IDENT)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.ASSIGN); err != nil {
		return nil, err
	}
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.SEMI); err != nil {
		return nil, err
	}
	return &ast.Assignment{Name: name.Lexeme, Expression: expr, Base: ast.At(name.Pos)}, nil
}

// parseBlock implements: block := "{" statement* "}"
func (p *Parser) parseBlock() (*ast.Block, *diag.Error) {
	lb, err := p.expect(token.LBRACE)
	if err != nil {
		return nil, err
	}
	blk := &ast.Block{Base: ast.At(lb.Pos)}
	for !p.check(token.RBRACE) {
		if p.check(token.EOF) {
			return nil, p.unexpectedToken(token.RBRACE)
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		blk.Statements = append(blk.Statements, stmt)
	}
	if _, err := p.expect(token.RBRACE); err != nil {
		return nil, err
	}
	return blk, nil
}

// parseReturn implements: return-stmt := "return" expression? ";"
func (p *Parser) parseReturn() (*ast.Return, *diag.Error) {
	kw, err := p.expect(token.RETURN)
	if err != nil {
		return nil, err
	}
	ret := &ast.Return{Base: ast.At(kw.Pos)}
	if !p.check(token.SEMI) {
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		ret.Expression = expr
	}
	if _, err := p.expect(token.SEMI); err != nil {
		return nil, err
	}
	return ret, nil
}

// parseExpressionStatement implements: expression ";" — restricted to
// a call, since a bare expression evaluated for its side effects alone
// has none here and is almost certainly a mistake.
func (p *Parser) parseExpressionStatement() (ast.Stmt, *diag.Error) {
	if p.next.Kind != token.LPAREN {
		return nil, diag.New(diag.UnexpectedToken, p.cur.Pos,
			"an expression statement must be a function call, found bare identifier %q", p.cur.Lexeme)
	}
	call, err := p.parseCall()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.SEMI); err != nil {
		return nil, err
	}
	return call, nil
}
