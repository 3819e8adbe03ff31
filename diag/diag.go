/*
File    : pixc/diag/diag.go
Package : diag
*/

// Package diag defines the shared error taxonomy used by every stage of
// the PixArLang pipeline (lexer, parser, semantic analyzer, code
// generator). Every stage fails by returning a *Error rather than by
// panicking; panics are reserved for invariants a valid build can never
// violate (see the default cases of codegen's genStmt and genExpr).
package diag

import "fmt"

// Kind is a closed taxonomy tag identifying the category and specific
// shape of a diagnostic. Kinds are grouped by the pipeline stage that
// raises them.
type Kind string

const (
	// Lexical
	UnexpectedCharacter Kind = "UnexpectedCharacter"
	InvalidEscape       Kind = "InvalidEscape"
	UnterminatedString  Kind = "UnterminatedString"
	InvalidNumber       Kind = "InvalidNumber"
	InvalidColour       Kind = "InvalidColour"

	// Syntactic
	UnexpectedToken      Kind = "UnexpectedToken"
	UnexpectedEOF        Kind = "UnexpectedEOF"
	MalformedDeclaration Kind = "MalformedDeclaration"

	// Semantic
	Undeclared           Kind = "Undeclared"
	Redeclaration        Kind = "Redeclaration"
	TypeError            Kind = "TypeError"
	ArityError           Kind = "ArityError"
	ReturnOutsideFunc    Kind = "ReturnOutsideFunction"
	InvalidAssignment    Kind = "InvalidAssignment"

	// Code generation (internal; should never fire against a typed AST)
	UnresolvedSymbol Kind = "UnresolvedSymbol"
	UnsupportedNode  Kind = "UnsupportedNode"
)

// Severity is always "error" in this pipeline: there are no warnings,
// every reported condition aborts compilation.
const Severity = "error"

// Position locates a diagnostic in the original source text.
type Position struct {
	Line   int // 1-indexed
	Column int // 1-indexed
	Offset int // 0-indexed byte offset
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Error is the single error currency threaded through every stage.
// It implements the error interface so stage functions can be written
// as ordinary (result, error) Go functions.
type Error struct {
	Kind    Kind
	Pos     Position
	Message string
}

// New builds a diagnostic of the given kind at the given position.
func New(kind Kind, pos Position, format string, args ...interface{}) *Error {
	return &Error{
		Kind:    kind,
		Pos:     pos,
		Message: fmt.Sprintf(format, args...),
	}
}

// Error renders the diagnostic in the CLI's wire format:
// <severity>:<line>:<col>: <kind>: <message>
func (e *Error) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s: %s", Severity, e.Pos.Line, e.Pos.Column, e.Kind, e.Message)
}
