/*
File    : pixc/sema/expr.go
Package : sema
*/
package sema

import (
	"github.com/pixarlang/pixc/ast"
	"github.com/pixarlang/pixc/diag"
	"github.com/pixarlang/pixc/types"
)

// analyzeExpr computes expr's type, annotates it via SetExprType, and
// returns that type alongside any diagnostic raised along the way.
func (a *Analyzer) analyzeExpr(expr ast.Expr) (types.Type, *diag.Error) {
	switch e := expr.(type) {
	case *ast.IntegerLiteral:
		e.SetExprType(types.Int)
	case *ast.FloatLiteral:
		e.SetExprType(types.Float)
	case *ast.BooleanLiteral:
		e.SetExprType(types.Bool)
	case *ast.ColourLiteral:
		e.SetExprType(types.Colour)
	case *ast.StringLiteral:
		e.SetExprType(types.String)
	case *ast.Identifier:
		sym, ok := a.table.Resolve(e.Name)
		if !ok {
			return "", diag.New(diag.Undeclared, e.Pos(), "%q is not declared", e.Name)
		}
		if sym.Kind == KindFunction {
			return "", diag.New(diag.InvalidAssignment, e.Pos(), "%q names a function and cannot be used as a value", e.Name)
		}
		e.SetExprType(sym.Type)
	case *ast.BinaryOp:
		if err := a.analyzeBinaryOp(e); err != nil {
			return "", err
		}
	case *ast.UnaryOp:
		if err := a.analyzeUnaryOp(e); err != nil {
			return "", err
		}
	case *ast.FunctionCall:
		if err := a.analyzeCall(e); err != nil {
			return "", err
		}
	case *ast.Print:
		if _, err := a.analyzeExpr(e.Expression); err != nil {
			return "", err
		}
		e.SetExprType(types.Void)
	case *ast.Delay:
		if err := a.requireArgType(e.Expression, types.Int); err != nil {
			return "", err
		}
		e.SetExprType(types.Void)
	case *ast.Width:
		e.SetExprType(types.Int)
	case *ast.Height:
		e.SetExprType(types.Int)
	case *ast.Read:
		if err := a.requireArgType(e.X, types.Int); err != nil {
			return "", err
		}
		if err := a.requireArgType(e.Y, types.Int); err != nil {
			return "", err
		}
		e.SetExprType(types.Colour)
	case *ast.Randi:
		if err := a.requireArgType(e.Bound, types.Int); err != nil {
			return "", err
		}
		e.SetExprType(types.Int)
	case *ast.Pixel:
		if err := a.requireArgType(e.X, types.Int); err != nil {
			return "", err
		}
		if err := a.requireArgType(e.Y, types.Int); err != nil {
			return "", err
		}
		if err := a.requireArgType(e.Colour, types.Colour); err != nil {
			return "", err
		}
		e.SetExprType(types.Void)
	case *ast.PixelR:
		for _, arg := range []ast.Expr{e.X, e.Y, e.W, e.H} {
			if err := a.requireArgType(arg, types.Int); err != nil {
				return "", err
			}
		}
		if err := a.requireArgType(e.Colour, types.Colour); err != nil {
			return "", err
		}
		e.SetExprType(types.Void)
	default:
		panic("sema: unsupported expression node")
	}
	return expr.ExprType(), nil
}

func (a *Analyzer) requireArgType(arg ast.Expr, want types.Type) *diag.Error {
	got, err := a.analyzeExpr(arg)
	if err != nil {
		return err
	}
	if got != want {
		return diag.New(diag.TypeError, arg.Pos(), "expected %s, found %s", want, got)
	}
	return nil
}

func (a *Analyzer) analyzeBinaryOp(e *ast.BinaryOp) *diag.Error {
	lt, err := a.analyzeExpr(e.Left)
	if err != nil {
		return err
	}
	rt, err := a.analyzeExpr(e.Right)
	if err != nil {
		return err
	}

	switch e.Op {
	case "+", "-", "*", "/":
		if lt != rt || !lt.IsNumeric() {
			return diag.New(diag.TypeError, e.Pos(), "operator %q requires two identical numeric operands, found %s and %s", e.Op, lt, rt)
		}
		e.SetExprType(lt)
	case "%":
		if lt != types.Int || rt != types.Int {
			return diag.New(diag.TypeError, e.Pos(), "operator %% requires two int operands, found %s and %s", lt, rt)
		}
		e.SetExprType(types.Int)
	case "<", "<=", ">", ">=":
		if lt != rt || !lt.IsNumeric() {
			return diag.New(diag.TypeError, e.Pos(), "operator %q requires two identical numeric operands, found %s and %s", e.Op, lt, rt)
		}
		e.SetExprType(types.Bool)
	case "==", "!=":
		if lt != rt {
			return diag.New(diag.TypeError, e.Pos(), "operator %q requires two operands of the same type, found %s and %s", e.Op, lt, rt)
		}
		e.SetExprType(types.Bool)
	case "and", "or":
		if lt != types.Bool || rt != types.Bool {
			return diag.New(diag.TypeError, e.Pos(), "operator %q requires two bool operands, found %s and %s", e.Op, lt, rt)
		}
		e.SetExprType(types.Bool)
	default:
		panic("sema: unknown binary operator " + e.Op)
	}
	return nil
}

func (a *Analyzer) analyzeUnaryOp(e *ast.UnaryOp) *diag.Error {
	t, err := a.analyzeExpr(e.Operand)
	if err != nil {
		return err
	}
	switch e.Op {
	case "-":
		if !t.IsNumeric() {
			return diag.New(diag.TypeError, e.Pos(), "unary - requires a numeric operand, found %s", t)
		}
		e.SetExprType(t)
	case "not":
		if t != types.Bool {
			return diag.New(diag.TypeError, e.Pos(), "unary not requires a bool operand, found %s", t)
		}
		e.SetExprType(types.Bool)
	default:
		panic("sema: unknown unary operator " + e.Op)
	}
	return nil
}

func (a *Analyzer) analyzeCall(call *ast.FunctionCall) *diag.Error {
	sym, ok := a.table.Resolve(call.Name)
	if !ok {
		return diag.New(diag.Undeclared, call.Pos(), "function %q is not declared", call.Name)
	}
	if sym.Kind != KindFunction {
		return diag.New(diag.TypeError, call.Pos(), "%q is not a function", call.Name)
	}
	if len(call.Args) != len(sym.ParamTypes) {
		return diag.New(diag.ArityError, call.Pos(), "%q expects %d argument(s), found %d", call.Name, len(sym.ParamTypes), len(call.Args))
	}
	for i, arg := range call.Args {
		got, err := a.analyzeExpr(arg)
		if err != nil {
			return err
		}
		if got != sym.ParamTypes[i] {
			return diag.New(diag.TypeError, arg.Pos(), "argument %d of %q must be %s, found %s", i+1, call.Name, sym.ParamTypes[i], got)
		}
	}
	call.SetExprType(sym.ReturnType)
	return nil
}
