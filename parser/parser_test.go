/*
File    : pixc/parser/parser_test.go
Package : parser
*/
package parser

import (
	"testing"

	"github.com/pixarlang/pixc/ast"
	"github.com/pixarlang/pixc/diag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_LetDecl(t *testing.T) {
	prog, err := Parse(`let x: int = 10 + 17;`)
	require.Nil(t, err)
	require.Len(t, prog.Statements, 1)

	decl, ok := prog.Statements[0].(*ast.Declaration)
	require.True(t, ok)
	assert.Equal(t, "x", decl.Name)
	assert.Equal(t, "int", decl.DeclaredType)

	bin, ok := decl.Initializer.(*ast.BinaryOp)
	require.True(t, ok)
	assert.Equal(t, "+", bin.Op)
}

func TestParse_Assignment(t *testing.T) {
	prog, err := Parse(`x = 1;`)
	require.Nil(t, err)
	require.Len(t, prog.Statements, 1)
	assign, ok := prog.Statements[0].(*ast.Assignment)
	require.True(t, ok)
	assert.Equal(t, "x", assign.Name)
}

func TestParse_IfElse(t *testing.T) {
	prog, err := Parse(`if (x < 1) { x = 1; } else { x = 2; }`)
	require.Nil(t, err)
	require.Len(t, prog.Statements, 1)
	ifStmt, ok := prog.Statements[0].(*ast.If)
	require.True(t, ok)
	require.NotNil(t, ifStmt.Then)
	require.NotNil(t, ifStmt.Else)
	assert.Len(t, ifStmt.Then.Statements, 1)
	assert.Len(t, ifStmt.Else.Statements, 1)
}

func TestParse_While(t *testing.T) {
	prog, err := Parse(`while (x < 10) { x = x + 1; }`)
	require.Nil(t, err)
	w, ok := prog.Statements[0].(*ast.While)
	require.True(t, ok)
	assert.NotNil(t, w.Condition)
	assert.Len(t, w.Body.Statements, 1)
}

func TestParse_For(t *testing.T) {
	prog, err := Parse(`for (let i: int = 0; i < 10; i = i + 1;) { __print(i); }`)
	require.Nil(t, err)
	f, ok := prog.Statements[0].(*ast.For)
	require.True(t, ok)

	init, ok := f.Init.(*ast.Declaration)
	require.True(t, ok)
	assert.Equal(t, "i", init.Name)
	assert.Equal(t, "i", f.Update.Name)
	assert.Len(t, f.Body.Statements, 1)
}

func TestParse_FunctionDef(t *testing.T) {
	prog, err := Parse(`fun add(a: int, b: int) -> int { return a + b; }`)
	require.Nil(t, err)
	fn, ok := prog.Statements[0].(*ast.FunctionDef)
	require.True(t, ok)
	assert.Equal(t, "add", fn.Name)
	assert.Equal(t, "int", fn.ReturnType)
	require.Len(t, fn.Params, 2)
	assert.Equal(t, ast.Param{Name: "a", Type: "int"}, fn.Params[0])
	assert.Equal(t, ast.Param{Name: "b", Type: "int"}, fn.Params[1])
}

func TestParse_FunctionDefVoidReturn(t *testing.T) {
	prog, err := Parse(`fun greet() { return; }`)
	require.Nil(t, err)
	fn, ok := prog.Statements[0].(*ast.FunctionDef)
	require.True(t, ok)
	assert.Equal(t, "", fn.ReturnType)
}

func TestParse_CallAsStatement(t *testing.T) {
	prog, err := Parse(`add(1, 2);`)
	require.Nil(t, err)
	call, ok := prog.Statements[0].(*ast.FunctionCall)
	require.True(t, ok)
	assert.Equal(t, "add", call.Name)
	assert.Len(t, call.Args, 2)
}

func TestParse_BareExpressionStatementRejected(t *testing.T) {
	_, err := Parse(`x;`)
	require.NotNil(t, err)
	assert.Equal(t, diag.UnexpectedToken, err.Kind)
}

func TestParse_OperatorPrecedence(t *testing.T) {
	prog, err := Parse(`let x: int = 1 + 2 * 3;`)
	require.Nil(t, err)
	decl := prog.Statements[0].(*ast.Declaration)
	top, ok := decl.Initializer.(*ast.BinaryOp)
	require.True(t, ok)
	assert.Equal(t, "+", top.Op)

	_, ok = top.Left.(*ast.IntegerLiteral)
	assert.True(t, ok)
	rhs, ok := top.Right.(*ast.BinaryOp)
	require.True(t, ok)
	assert.Equal(t, "*", rhs.Op)
}

func TestParse_LogicalPrecedence(t *testing.T) {
	prog, err := Parse(`let x: bool = true or false and true;`)
	require.Nil(t, err)
	decl := prog.Statements[0].(*ast.Declaration)
	top, ok := decl.Initializer.(*ast.BinaryOp)
	require.True(t, ok)
	assert.Equal(t, "or", top.Op)
	rhs, ok := top.Right.(*ast.BinaryOp)
	require.True(t, ok)
	assert.Equal(t, "and", rhs.Op)
}

func TestParse_UnaryNot(t *testing.T) {
	prog, err := Parse(`let x: bool = not true;`)
	require.Nil(t, err)
	decl := prog.Statements[0].(*ast.Declaration)
	un, ok := decl.Initializer.(*ast.UnaryOp)
	require.True(t, ok)
	assert.Equal(t, "not", un.Op)
}

func TestParse_ParenthesizedExpression(t *testing.T) {
	prog, err := Parse(`let x: int = (1 + 2) * 3;`)
	require.Nil(t, err)
	decl := prog.Statements[0].(*ast.Declaration)
	top, ok := decl.Initializer.(*ast.BinaryOp)
	require.True(t, ok)
	assert.Equal(t, "*", top.Op)
	_, ok = top.Left.(*ast.BinaryOp)
	assert.True(t, ok)
}

func TestParse_PadBuiltins(t *testing.T) {
	prog, err := Parse(`__pixel(1, 2, #FF00AA);`)
	require.Nil(t, err)
	px, ok := prog.Statements[0].(*ast.Pixel)
	require.True(t, ok)
	colour, ok := px.Colour.(*ast.ColourLiteral)
	require.True(t, ok)
	assert.Equal(t, "FF00AA", colour.Hex)
}

func TestParse_PadBuiltinExpr(t *testing.T) {
	prog, err := Parse(`let c: colour = __read(0, 0);`)
	require.Nil(t, err)
	decl := prog.Statements[0].(*ast.Declaration)
	_, ok := decl.Initializer.(*ast.Read)
	assert.True(t, ok)
}

func TestParse_PadBuiltinWithoutSideEffectRejectedAsStatement(t *testing.T) {
	_, err := Parse(`__width();`)
	require.NotNil(t, err)
	assert.Equal(t, diag.UnexpectedToken, err.Kind)
}

func TestParse_UnexpectedEOF(t *testing.T) {
	_, err := Parse(`let x: int = 1`)
	require.NotNil(t, err)
	assert.Equal(t, diag.UnexpectedEOF, err.Kind)
}

func TestParse_MalformedDeclaration(t *testing.T) {
	_, err := Parse(`let x: notatype = 1;`)
	require.NotNil(t, err)
	assert.Equal(t, diag.MalformedDeclaration, err.Kind)
}
