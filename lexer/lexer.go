/*
File    : pixc/lexer/lexer.go
Package : lexer
*/

// Package lexer implements a DFA-driven scanner: an explicit
// transition function over small integer states (dfa.go), scanned
// with maximal munch. On a dead transition the scanner emits the
// token recognized at the furthest accepting state it passed through,
// rewinds the input to just past it, and resets to the start state; if
// no accept was ever reached, scanning fails.
package lexer

import (
	"strconv"

	"github.com/pixarlang/pixc/diag"
	"github.com/pixarlang/pixc/token"
)

// Lexer holds all per-stage scanning state: the source buffer, the
// current byte offset, and the running (line, column) used for
// diagnostics. This state is confined to the Lexer value and is
// released when scanning completes.
type Lexer struct {
	src string
	pos int // next unread byte offset
	len int

	line int // 1-indexed line of the next unread byte
	col  int // 1-indexed column of the next unread byte
}

// New creates a Lexer positioned at the start of src. Line endings are
// expected to already be normalized to "\n" by the caller.
func New(src string) *Lexer {
	return &Lexer{src: src, len: len(src), line: 1, col: 1}
}

func (l *Lexer) eof() bool { return l.pos >= l.len }

func (l *Lexer) peek() byte {
	if l.eof() {
		return 0
	}
	return l.src[l.pos]
}

func (l *Lexer) peekAt(off int) byte {
	if l.pos+off >= l.len {
		return 0
	}
	return l.src[l.pos+off]
}

// advance consumes and returns the current byte, updating line/column.
func (l *Lexer) advance() byte {
	c := l.src[l.pos]
	l.pos++
	if c == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return c
}

func (l *Lexer) position() diag.Position {
	return diag.Position{Line: l.line, Column: l.col, Offset: l.pos}
}

// skipTrivia consumes and discards whitespace and comments. It runs to
// a fixed point: a comment may be immediately followed by more
// whitespace or another comment.
func (l *Lexer) skipTrivia() {
	for {
		switch {
		case !l.eof() && isSpace(l.peek()):
			l.advance()
		case l.peek() == '/' && l.peekAt(1) == '/':
			for !l.eof() && l.peek() != '\n' {
				l.advance()
			}
		case l.peek() == '/' && l.peekAt(1) == '*':
			l.advance()
			l.advance()
			for !l.eof() && !(l.peek() == '*' && l.peekAt(1) == '/') {
				l.advance()
			}
			if !l.eof() {
				l.advance()
				l.advance()
			}
		default:
			return
		}
	}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

// NextToken scans and returns the next token, or a *diag.Error at the
// first unrecognized longest match. Returns an EOF token, never an
// error, once the input is exhausted.
func (l *Lexer) NextToken() (token.Token, *diag.Error) {
	l.skipTrivia()
	if l.eof() {
		return token.NewAt(token.EOF, "", l.position()), nil
	}

	startPos := l.position()
	startOffset := l.pos

	cur := stateStart
	// furthest accepting state seen so far, and the offset just past it
	bestState := stateStart
	bestOK := false
	bestOffset := startOffset
	bestLine, bestCol := l.line, l.col

	for !l.eof() {
		c := l.peek()
		next, ok := step(cur, c)
		if !ok {
			break
		}
		l.advance()
		cur = next
		if _, isAccept := accept[cur]; isAccept {
			bestState = cur
			bestOK = true
			bestOffset = l.pos
			bestLine, bestCol = l.line, l.col
		}
	}

	if !bestOK {
		return l.failNoAccept(cur, startPos, startOffset)
	}

	lexeme := l.src[startOffset:bestOffset]
	// rewind to just past the accepted match
	l.pos = bestOffset
	l.line, l.col = bestLine, bestCol

	kind := accept[bestState]
	switch kind {
	case token.IDENT:
		kind = token.LookupIdent(lexeme)
	case token.STRING_LIT:
		if err := validateEscapes(lexeme, startPos); err != nil {
			return token.Token{}, err
		}
	case token.INT_LIT:
		if _, err := strconv.ParseInt(lexeme, 10, 64); err != nil {
			return token.Token{}, diag.New(diag.InvalidNumber, startPos, "invalid integer literal %q", lexeme)
		}
	case token.FLOAT_LIT:
		if _, err := strconv.ParseFloat(lexeme, 64); err != nil {
			return token.Token{}, diag.New(diag.InvalidNumber, startPos, "invalid float literal %q", lexeme)
		}
	}

	return token.NewAt(kind, lexeme, startPos), nil
}

// failNoAccept classifies a dead-ended scan that never reached an
// accepting state into the specific §7 taxonomy kind implied by how
// far it got: inside a string literal this is always an unterminated
// string (the only ways to dead-end there are running out of input or
// reaching a newline — step() accepts every other byte inside a string
// body); partway through a
// colour literal it's an invalid colour; otherwise it is an
// unrecognized character at the start state.
func (l *Lexer) failNoAccept(cur state, startPos diag.Position, startOffset int) (token.Token, *diag.Error) {
	switch {
	case inString(cur):
		return token.Token{}, diag.New(diag.UnterminatedString, startPos, "unterminated string literal")
	case isColourState(cur):
		return token.Token{}, diag.New(diag.InvalidColour, startPos, "invalid colour literal, expected #RRGGBB")
	default:
		if l.eof() {
			return token.Token{}, diag.New(diag.UnexpectedCharacter, startPos, "unexpected end of input")
		}
		bad := l.src[startOffset]
		return token.Token{}, diag.New(diag.UnexpectedCharacter, startPos, "unexpected character %q", bad)
	}
}

func isColourState(s state) bool {
	switch s {
	case stateColourHash, stateColourHex1, stateColourHex2, stateColourHex3, stateColourHex4, stateColourHex5:
		return true
	}
	return false
}

// validEscapes is the closed set of recognized backslash escapes
// inside a PixArLang string literal: \\ \" \' \n.
var validEscapes = map[byte]bool{'\\': true, '"': true, '\'': true, 'n': true}

// validateEscapes walks a fully-scanned string lexeme (including its
// delimiting quotes) and rejects any backslash sequence outside the
// recognized escape alphabet.
func validateEscapes(lexeme string, start diag.Position) *diag.Error {
	col := start.Column
	for i := 0; i < len(lexeme); i++ {
		c := lexeme[i]
		if c == '\\' && i+1 < len(lexeme) {
			esc := lexeme[i+1]
			if !validEscapes[esc] {
				return diag.New(diag.InvalidEscape, diag.Position{Line: start.Line, Column: col, Offset: start.Offset + i},
					"invalid escape sequence \\%c", esc)
			}
			i++
			col += 2
			continue
		}
		col++
	}
	return nil
}

// Tokens scans the entire source and returns the full token stream
// terminated by EOF, or the first error encountered.
func Tokens(src string) ([]token.Token, *diag.Error) {
	l := New(src)
	var out []token.Token
	for {
		tok, err := l.NextToken()
		if err != nil {
			return nil, err
		}
		out = append(out, tok)
		if tok.Kind == token.EOF {
			return out, nil
		}
	}
}
