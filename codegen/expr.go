/*
File    : pixc/codegen/expr.go
Package : codegen
*/
package codegen

import (
	"strconv"

	"github.com/pixarlang/pixc/ast"
	"github.com/pixarlang/pixc/diag"
	"github.com/pixarlang/pixc/pixir"
	"github.com/pixarlang/pixc/types"
)

// genExpr lowers expr into p, leaving exactly one value on the stack
// for a value-producing expression, or none for a Void-typed one such
// as a pad builtin used for its side effect.
func (g *Generator) genExpr(p *pixir.Program, expr ast.Expr) (types.Type, *diag.Error) {
	switch e := expr.(type) {
	case *ast.IntegerLiteral:
		p.Emit(pixir.Push, pixir.FormatInt(e.Value))
	case *ast.FloatLiteral:
		p.Emit(pixir.Push, pixir.FormatFloat(e.Value))
	case *ast.BooleanLiteral:
		p.Emit(pixir.Push, pixir.FormatBool(e.Value))
	case *ast.ColourLiteral:
		p.Emit(pixir.Push, pixir.FormatColour(e.Hex))
	case *ast.StringLiteral:
		p.Emit(pixir.Push, pixir.FormatString(e.Value))
	case *ast.Identifier:
		slot, ok := g.frame.resolve(e.Name)
		if !ok {
			return "", diag.New(diag.UnresolvedSymbol, e.Pos(), "%q has no frame slot", e.Name)
		}
		p.Emit(pixir.Push, strconv.Itoa(slot))
		p.Emit(pixir.Push, "0")
		p.Emit(pixir.Ld)
	case *ast.BinaryOp:
		if err := g.genBinaryOp(p, e); err != nil {
			return "", err
		}
	case *ast.UnaryOp:
		if err := g.genUnaryOp(p, e); err != nil {
			return "", err
		}
	case *ast.FunctionCall:
		for _, arg := range e.Args {
			if _, err := g.genExpr(p, arg); err != nil {
				return "", err
			}
		}
		p.Emit(pixir.Call, e.Name, strconv.Itoa(len(e.Args)))
	case *ast.Print:
		if _, err := g.genExpr(p, e.Expression); err != nil {
			return "", err
		}
		p.Emit(pixir.PadPrint)
	case *ast.Delay:
		if _, err := g.genExpr(p, e.Expression); err != nil {
			return "", err
		}
		p.Emit(pixir.PadDelay)
	case *ast.Width:
		p.Emit(pixir.PadWidth)
	case *ast.Height:
		p.Emit(pixir.PadHeight)
	case *ast.Read:
		if _, err := g.genExpr(p, e.X); err != nil {
			return "", err
		}
		if _, err := g.genExpr(p, e.Y); err != nil {
			return "", err
		}
		p.Emit(pixir.PadRead)
	case *ast.Randi:
		if _, err := g.genExpr(p, e.Bound); err != nil {
			return "", err
		}
		p.Emit(pixir.PadRandi)
	case *ast.Pixel:
		if _, err := g.genExpr(p, e.X); err != nil {
			return "", err
		}
		if _, err := g.genExpr(p, e.Y); err != nil {
			return "", err
		}
		if _, err := g.genExpr(p, e.Colour); err != nil {
			return "", err
		}
		p.Emit(pixir.PadPixel)
	case *ast.PixelR:
		for _, arg := range []ast.Expr{e.X, e.Y, e.W, e.H} {
			if _, err := g.genExpr(p, arg); err != nil {
				return "", err
			}
		}
		if _, err := g.genExpr(p, e.Colour); err != nil {
			return "", err
		}
		p.Emit(pixir.PadPixelR)
	default:
		panic("codegen: unsupported expression node")
	}
	return expr.ExprType(), nil
}

// genBinaryOp emits the left operand, then the right, then the
// operator — source order throughout, matching how a reader would
// write the expression down.
func (g *Generator) genBinaryOp(p *pixir.Program, e *ast.BinaryOp) *diag.Error {
	if _, err := g.genExpr(p, e.Left); err != nil {
		return err
	}
	if _, err := g.genExpr(p, e.Right); err != nil {
		return err
	}
	op, ok := binaryMnemonics[e.Op]
	if !ok {
		panic("codegen: unknown binary operator " + e.Op)
	}
	p.Emit(op)
	return nil
}

var binaryMnemonics = map[string]pixir.Mnemonic{
	"+":   pixir.Add,
	"-":   pixir.Sub,
	"*":   pixir.Mul,
	"/":   pixir.Div,
	"%":   pixir.Mod,
	"<":   pixir.Lt,
	"<=":  pixir.Le,
	">":   pixir.Gt,
	">=":  pixir.Ge,
	"==":  pixir.Eq,
	"!=":  pixir.Neq,
	"and": pixir.And,
	"or":  pixir.Or,
}

// genUnaryOp lowers "not" directly to the Not opcode. Unary minus has
// no dedicated opcode, so it is built as "0 - operand", the same trick
// a hand assembler would reach for on an ISA this small.
func (g *Generator) genUnaryOp(p *pixir.Program, e *ast.UnaryOp) *diag.Error {
	switch e.Op {
	case "not":
		if _, err := g.genExpr(p, e.Operand); err != nil {
			return err
		}
		p.Emit(pixir.Not)
	case "-":
		if e.ExprType() == types.Float {
			p.Emit(pixir.Push, pixir.FormatFloat(0))
		} else {
			p.Emit(pixir.Push, pixir.FormatInt(0))
		}
		if _, err := g.genExpr(p, e.Operand); err != nil {
			return err
		}
		p.Emit(pixir.Sub)
	default:
		panic("codegen: unknown unary operator " + e.Op)
	}
	return nil
}
