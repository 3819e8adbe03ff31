/*
File    : pixc/codegen/stmt.go
Package : codegen
*/
package codegen

import (
	"strconv"

	"github.com/pixarlang/pixc/ast"
	"github.com/pixarlang/pixc/diag"
	"github.com/pixarlang/pixc/pixir"
)

// genStmt lowers one statement into p, in place.
func (g *Generator) genStmt(p *pixir.Program, stmt ast.Stmt) *diag.Error {
	switch s := stmt.(type) {
	case *ast.Declaration:
		return g.genDeclaration(p, s)
	case *ast.Assignment:
		return g.genAssignment(p, s)
	case *ast.If:
		return g.genIf(p, s)
	case *ast.While:
		return g.genWhile(p, s)
	case *ast.For:
		return g.genFor(p, s)
	case *ast.Block:
		return g.genBlock(p, s)
	case *ast.Return:
		return g.genReturn(p, s)
	case *ast.FunctionCall:
		_, err := g.genExpr(p, s)
		return err
	case *ast.Print:
		_, err := g.genExpr(p, s)
		return err
	case *ast.Delay:
		_, err := g.genExpr(p, s)
		return err
	case *ast.Pixel:
		_, err := g.genExpr(p, s)
		return err
	case *ast.PixelR:
		_, err := g.genExpr(p, s)
		return err
	case *ast.FunctionDef:
		// Nested function definitions do not reach codegen: the parser
		// accepts fun in any statement position, but sema rejects a
		// FunctionDef anywhere other than the top level, so genStmt
		// never reaches this case from emitFunction or emitStart.
		panic("codegen: unexpected nested function definition")
	default:
		panic("codegen: unsupported statement node")
	}
}

func (g *Generator) genDeclaration(p *pixir.Program, d *ast.Declaration) *diag.Error {
	if _, err := g.genExpr(p, d.Initializer); err != nil {
		return err
	}
	slot := g.frame.declare(d.Name)
	p.Emit(pixir.Push, strconv.Itoa(slot))
	p.Emit(pixir.Push, "0")
	p.Emit(pixir.St)
	return nil
}

func (g *Generator) genAssignment(p *pixir.Program, a *ast.Assignment) *diag.Error {
	if _, err := g.genExpr(p, a.Expression); err != nil {
		return err
	}
	slot, ok := g.frame.resolve(a.Name)
	if !ok {
		return diag.New(diag.UnresolvedSymbol, a.Pos(), "%q has no frame slot", a.Name)
	}
	p.Emit(pixir.Push, strconv.Itoa(slot))
	p.Emit(pixir.Push, "0")
	p.Emit(pixir.St)
	return nil
}

// genIf lowers the condition and both branches. With no else clause,
// a single label marks the end; with one, an additional label marks
// the else branch's start so the compiled-then branch can jump past it.
func (g *Generator) genIf(p *pixir.Program, s *ast.If) *diag.Error {
	if _, err := g.genExpr(p, s.Condition); err != nil {
		return err
	}
	if s.Else == nil {
		end := g.labels.fresh()
		p.Emit(pixir.CJmp, ref(end))
		if err := g.genBlock(p, s.Then); err != nil {
			return err
		}
		p.EmitLabel(end)
		return nil
	}

	elseLabel := g.labels.fresh()
	end := g.labels.fresh()
	p.Emit(pixir.CJmp, ref(elseLabel))
	if err := g.genBlock(p, s.Then); err != nil {
		return err
	}
	p.Emit(pixir.Jmp, ref(end))
	p.EmitLabel(elseLabel)
	if err := g.genBlock(p, s.Else); err != nil {
		return err
	}
	p.EmitLabel(end)
	return nil
}

func (g *Generator) genWhile(p *pixir.Program, s *ast.While) *diag.Error {
	start := g.labels.fresh()
	end := g.labels.fresh()
	p.EmitLabel(start)
	if _, err := g.genExpr(p, s.Condition); err != nil {
		return err
	}
	p.Emit(pixir.CJmp, ref(end))
	if err := g.genBlock(p, s.Body); err != nil {
		return err
	}
	p.Emit(pixir.Jmp, ref(start))
	p.EmitLabel(end)
	return nil
}

// genFor desugars { init; while cond { body; update } }, pushing one
// scope around the whole construct for the loop variable the way
// sema's analyzeFor does, so a name declared by init is not visible
// after the loop ends.
func (g *Generator) genFor(p *pixir.Program, s *ast.For) *diag.Error {
	g.frame.push()
	defer g.frame.pop()

	if err := g.genStmt(p, s.Init); err != nil {
		return err
	}

	start := g.labels.fresh()
	end := g.labels.fresh()
	p.EmitLabel(start)
	if _, err := g.genExpr(p, s.Condition); err != nil {
		return err
	}
	p.Emit(pixir.CJmp, ref(end))
	if err := g.genBlock(p, s.Body); err != nil {
		return err
	}
	if err := g.genStmt(p, s.Update); err != nil {
		return err
	}
	p.Emit(pixir.Jmp, ref(start))
	p.EmitLabel(end)
	return nil
}

func (g *Generator) genBlock(p *pixir.Program, b *ast.Block) *diag.Error {
	g.frame.push()
	defer g.frame.pop()
	for _, stmt := range b.Statements {
		if err := g.genStmt(p, stmt); err != nil {
			return err
		}
	}
	return nil
}

// genReturn always closes the function's frame before transferring
// control, so every path out of a function — explicit or the
// implicit fallthrough emitFunction appends — does so identically.
func (g *Generator) genReturn(p *pixir.Program, r *ast.Return) *diag.Error {
	if r.Expression != nil {
		if _, err := g.genExpr(p, r.Expression); err != nil {
			return err
		}
	}
	p.Emit(pixir.CFrame)
	p.Emit(pixir.Ret)
	return nil
}
