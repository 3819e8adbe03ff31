/*
File    : pixc/ast/ast.go
Package : ast
*/

// Package ast defines the PixArLang abstract syntax tree as a sum
// type: a sealed Node interface with one concrete struct per node
// kind. Passes over the tree (the semantic analyzer, the code
// generator) consume it with an exhaustive type switch rather than a
// separate Accept/Visitor method per node — the idiomatic Go analogue
// of sum-type pattern matching. A type switch with no matching case
// panics (see the default cases in sema and codegen), which can only happen if
// a node kind is added to this file without updating every pass.
package ast

import (
	"github.com/pixarlang/pixc/diag"
	"github.com/pixarlang/pixc/types"
)

// Node is the base of every AST node. Pos anchors diagnostics raised
// while processing this node in a later stage.
type Node interface {
	Pos() diag.Position
}

// Expr is any node that produces a value. Every Expr carries a Type
// field the semantic analyzer fills in; it is the empty Type until
// then.
type Expr interface {
	Node
	exprNode()
	ExprType() types.Type
	SetExprType(types.Type)
}

// Stmt is any node that does not itself produce a value.
type Stmt interface {
	Node
	stmtNode()
}

// Base is embedded by every node to supply its Pos() method.
type Base struct {
	Position diag.Position
}

func (b Base) Pos() diag.Position { return b.Position }

// At builds a Base anchored at pos; used by the parser when
// constructing every node.
func At(pos diag.Position) Base { return Base{Position: pos} }

// ExprBase is embedded by every expression node; it supplies the
// typed-AST annotation slot alongside Base.
type ExprBase struct {
	Base
	Type types.Type
}

func (e *ExprBase) exprNode()                {}
func (e *ExprBase) ExprType() types.Type     { return e.Type }
func (e *ExprBase) SetExprType(t types.Type) { e.Type = t }

// ---- Program -------------------------------------------------------

// Program is the root of the tree: the top-level statement sequence,
// which may freely interleave FunctionDef with ordinary statements;
// the non-FunctionDef ones form the program's implicit start routine.
type Program struct {
	Base
	Statements []Stmt
}

// ---- Declarations and assignment -----------------------------------

// Declaration is `let name: type = initializer;`.
type Declaration struct {
	Base
	DeclaredType string // one of "int", "float", "bool", "colour"
	Name         string
	Initializer  Expr
}

func (*Declaration) stmtNode() {}

// Assignment is `name = expression;`.
type Assignment struct {
	Base
	Name       string
	Expression Expr
}

func (*Assignment) stmtNode() {}

// ---- Literals and identifiers ---------------------------------------

type IntegerLiteral struct {
	ExprBase
	Value int64
}

type FloatLiteral struct {
	ExprBase
	Value float64
}

type BooleanLiteral struct {
	ExprBase
	Value bool
}

// ColourLiteral stores the lexeme verbatim, with no case folding:
// #ff00aa and #FF00AA are distinct literals.
type ColourLiteral struct {
	ExprBase
	Hex string // 6 hex digits, no leading '#'
}

type StringLiteral struct {
	ExprBase
	Value string // already escape-decoded
}

type Identifier struct {
	ExprBase
	Name string
}

// ---- Operators --------------------------------------------------------

type BinaryOp struct {
	ExprBase
	Op    string // one of + - * / % == != < <= > >= and or
	Left  Expr
	Right Expr
}

type UnaryOp struct {
	ExprBase
	Op      string // - or not
	Operand Expr
}

// ---- Control flow ----------------------------------------------------

type If struct {
	Base
	Condition Expr
	Then      *Block
	Else      *Block // nil if there is no else clause
}

func (*If) stmtNode() {}

type While struct {
	Base
	Condition Expr
	Body      *Block
}

func (*While) stmtNode() {}

// For is lowered by the code generator to { Init; while Condition {
// Body; Update } }; the parser keeps it as a distinct node so the
// semantic analyzer can apply its own for-specific scoping rule.
type For struct {
	Base
	Init      Stmt // a *Declaration or *Assignment
	Condition Expr
	Update    *Assignment
	Body      *Block
}

func (*For) stmtNode() {}

type Block struct {
	Base
	Statements []Stmt
}

func (*Block) stmtNode() {}

// ---- Functions --------------------------------------------------------

type Param struct {
	Name string
	Type string
}

type FunctionDef struct {
	Base
	Name       string
	Params     []Param
	ReturnType string // "" means the implicit void return type
	Body       *Block
}

func (*FunctionDef) stmtNode() {}

// FunctionCall is both a Stmt (bare `f(args);`) and an Expr (used
// inside a larger expression), since the grammar allows a call to
// appear standalone as a statement or nested as an operand.
type FunctionCall struct {
	ExprBase
	Name string
	Args []Expr
}

func (*FunctionCall) stmtNode() {}

type Return struct {
	Base
	Expression Expr // nil for a bare `return;`
}

func (*Return) stmtNode() {}

// ---- Pad built-ins ----------------------------------------------------

// Print, Delay, Pixel, and PixelR are usable both as statements
// (`__print(x);`) and as expressions (`builtin-call-expr` in
// `primary`), exactly like FunctionCall above.

type Print struct {
	ExprBase
	Expression Expr
}

func (*Print) stmtNode() {}

type Delay struct {
	ExprBase
	Expression Expr
}

func (*Delay) stmtNode() {}

type Width struct{ ExprBase }

type Height struct{ ExprBase }

type Read struct {
	ExprBase
	X, Y Expr
}

type Randi struct {
	ExprBase
	Bound Expr
}

type Pixel struct {
	ExprBase
	X, Y   Expr
	Colour Expr
}

func (*Pixel) stmtNode() {}

type PixelR struct {
	ExprBase
	X, Y, W, H Expr
	Colour     Expr
}

func (*PixelR) stmtNode() {}
