/*
File    : pixc/parser/parser_literals.go
Package : parser
*/
package parser

import (
	"github.com/pixarlang/pixc/ast"
	"github.com/pixarlang/pixc/diag"
	"github.com/pixarlang/pixc/token"
)

// parseBuiltinStatement parses a pad built-in used in statement
// position: __print/__delay/__pixel/__pixelr are meaningful as bare
// statements, while __read/__randi/__width/__height only produce a
// value and are rejected here (they may only appear as an operand
// inside a larger expression).
func (p *Parser) parseBuiltinStatement() (ast.Stmt, *diag.Error) {
	kw := p.cur
	expr, err := p.parseBuiltinCallExpr()
	if err != nil {
		return nil, err
	}
	stmt, ok := expr.(ast.Stmt)
	if !ok {
		return nil, diag.New(diag.UnexpectedToken, kw.Pos, "%s has no effect as a statement by itself", kw.Lexeme)
	}
	if _, err := p.expect(token.SEMI); err != nil {
		return nil, err
	}
	return stmt, nil
}

// parseBuiltinCallExpr parses one of the eight fixed-arity pad
// built-ins, each spelled as its own keyword followed by a
// parenthesized, fixed-length argument list (no variadic args, no
// user-definable built-ins).
func (p *Parser) parseBuiltinCallExpr() (ast.Expr, *diag.Error) {
	kw := p.cur
	if err := p.advance(); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}

	switch kw.Kind {
	case token.PAD_WIDTH:
		if _, err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		return &ast.Width{ExprBase: ast.ExprBase{Base: ast.At(kw.Pos)}}, nil

	case token.PAD_HEIGHT:
		if _, err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		return &ast.Height{ExprBase: ast.ExprBase{Base: ast.At(kw.Pos)}}, nil

	case token.PAD_READ:
		x, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.COMMA); err != nil {
			return nil, err
		}
		y, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		return &ast.Read{X: x, Y: y, ExprBase: ast.ExprBase{Base: ast.At(kw.Pos)}}, nil

	case token.PAD_RANDI:
		bound, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		return &ast.Randi{Bound: bound, ExprBase: ast.ExprBase{Base: ast.At(kw.Pos)}}, nil

	case token.PAD_PRINT:
		val, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		return &ast.Print{Expression: val, ExprBase: ast.ExprBase{Base: ast.At(kw.Pos)}}, nil

	case token.PAD_DELAY:
		val, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		return &ast.Delay{Expression: val, ExprBase: ast.ExprBase{Base: ast.At(kw.Pos)}}, nil

	case token.PAD_PIXEL:
		x, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.COMMA); err != nil {
			return nil, err
		}
		y, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.COMMA); err != nil {
			return nil, err
		}
		colour, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		return &ast.Pixel{X: x, Y: y, Colour: colour, ExprBase: ast.ExprBase{Base: ast.At(kw.Pos)}}, nil

	case token.PAD_PIXELR:
		x, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.COMMA); err != nil {
			return nil, err
		}
		y, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.COMMA); err != nil {
			return nil, err
		}
		w, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.COMMA); err != nil {
			return nil, err
		}
		h, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.COMMA); err != nil {
			return nil, err
		}
		colour, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		return &ast.PixelR{X: x, Y: y, W: w, H: h, Colour: colour, ExprBase: ast.ExprBase{Base: ast.At(kw.Pos)}}, nil

	default:
		return nil, diag.New(diag.UnexpectedToken, kw.Pos, "unknown pad built-in %q", kw.Lexeme)
	}
}
