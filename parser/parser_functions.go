/*
File    : pixc/parser/parser_functions.go
Package : parser
*/
package parser

import (
	"github.com/pixarlang/pixc/ast"
	"github.com/pixarlang/pixc/diag"
	"github.com/pixarlang/pixc/token"
)

// parseFunctionDef implements:
//
//	function-def := "fun" IDENT "(" params? ")" ("->" type)? block
//	params       := param ("," param)*
//	param        := IDENT ":" type
//
// A missing "-> type" clause means the function returns void. The
// parser does not restrict where a call to such a function appears;
// sema types the call as void, so it fails wherever a specific type is
// expected (it is not rejected as the argument of __print).
func (p *Parser) parseFunctionDef() (*ast.FunctionDef, *diag.Error) {
	kw, err := p.expect(token.FUN)
	if err != nil {
		return nil, err
	}
	name, err := p.expect(token.IDENT)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}

	var params []ast.Param
	if !p.check(token.RPAREN) {
		for {
			pname, err := p.expect(token.IDENT)
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(token.COLON); err != nil {
				return nil, err
			}
			ptyp, err := p.parseType()
			if err != nil {
				return nil, err
			}
			params = append(params, ast.Param{Name: pname.Lexeme, Type: ptyp})
			if !p.check(token.COMMA) {
				break
			}
			if err := p.advance(); err != nil {
				return nil, err
			}
		}
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}

	var retType string
	if p.check(token.ARROW) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		retType, err = p.parseType()
		if err != nil {
			return nil, err
		}
	}

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	return &ast.FunctionDef{
		Name:       name.Lexeme,
		Params:     params,
		ReturnType: retType,
		Body:       body,
		Base:       ast.At(kw.Pos),
	}, nil
}
