/*
File    : pixc/parser/parser.go
Package : parser
*/

// Package parser implements PixArLang's recursive-descent parser.
// Each nonterminal in the grammar has a dedicated method;
// match/expect/check give uniform token-consumption primitives. Unlike
// a Pratt-parser style (a function-table dispatched on token type),
// binary-operator precedence here is climbed through a fixed ladder of
// dedicated methods — logic-or, logic-and, equality, relational,
// additive, multiplicative, unary, primary — mirroring the grammar
// directly. Parsing is fail-fast: the first error aborts immediately,
// with no error recovery or resynchronization attempted.
package parser

import (
	"github.com/pixarlang/pixc/ast"
	"github.com/pixarlang/pixc/diag"
	"github.com/pixarlang/pixc/lexer"
	"github.com/pixarlang/pixc/token"
)

// Parser holds all per-stage parsing state: the lexer it pulls from
// and its two-token lookahead window. This state is confined to the
// Parser value and released once Parse returns.
type Parser struct {
	lex *lexer.Lexer

	cur  token.Token
	next token.Token
}

// New creates a Parser over src and primes its two-token lookahead.
// A lex error encountered while priming is returned immediately.
func New(src string) (*Parser, *diag.Error) {
	p := &Parser{lex: lexer.New(src)}
	if err := p.advance(); err != nil {
		return nil, err
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return p, nil
}

// advance pulls the next token from the lexer into cur/next.
func (p *Parser) advance() *diag.Error {
	p.cur = p.next
	tok, err := p.lex.NextToken()
	if err != nil {
		return err
	}
	p.next = tok
	return nil
}

// check is non-consuming lookahead at the current token; one token of
// lookahead is always sufficient to drive this grammar's decisions.
func (p *Parser) check(kind token.Kind) bool {
	return p.cur.Kind == kind
}

// match consumes the current token and advances if it has kind;
// otherwise it leaves the parser untouched and returns false.
func (p *Parser) match(kind token.Kind) (token.Token, bool, *diag.Error) {
	if p.cur.Kind != kind {
		return token.Token{}, false, nil
	}
	tok := p.cur
	if err := p.advance(); err != nil {
		return token.Token{}, false, err
	}
	return tok, true, nil
}

// expect is match that raises UnexpectedToken when the current token
// does not have kind.
func (p *Parser) expect(kind token.Kind) (token.Token, *diag.Error) {
	tok, ok, err := p.match(kind)
	if err != nil {
		return token.Token{}, err
	}
	if !ok {
		return token.Token{}, p.unexpectedToken(kind)
	}
	return tok, nil
}

func (p *Parser) unexpectedToken(expected token.Kind) *diag.Error {
	if p.cur.Kind == token.EOF {
		return diag.New(diag.UnexpectedEOF, p.cur.Pos, "unexpected end of input, expected %s", expected)
	}
	return diag.New(diag.UnexpectedToken, p.cur.Pos, "expected %s, found %s %q", expected, p.cur.Kind, p.cur.Lexeme)
}

// Parse parses an entire program: a sequence of statements up to EOF.
func Parse(src string) (*ast.Program, *diag.Error) {
	p, err := New(src)
	if err != nil {
		return nil, err
	}
	return p.parseProgram()
}

func (p *Parser) parseProgram() (*ast.Program, *diag.Error) {
	prog := &ast.Program{}
	for !p.check(token.EOF) {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		prog.Statements = append(prog.Statements, stmt)
	}
	return prog, nil
}
