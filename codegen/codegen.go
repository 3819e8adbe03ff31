/*
File    : pixc/codegen/codegen.go
Package : codegen
*/
package codegen

import (
	"strconv"

	"github.com/pixarlang/pixc/ast"
	"github.com/pixarlang/pixc/diag"
	"github.com/pixarlang/pixc/pixir"
)

// Generator lowers one already-analyzed *ast.Program into a *pixir.Program.
// Its label allocator is shared across every function and the start
// routine so label names never collide across the whole output; its
// frame field tracks slot assignment for whichever function (or the
// start routine) is currently being emitted.
type Generator struct {
	labels labelAllocator
	frame  *frame
}

// Generate lowers prog, which must already have passed sema.Analyze, to
// PixIR. Every FunctionDef is emitted first, each under its own
// ".<name>" label; the top-level statements that are not FunctionDefs
// form the implicit start routine, emitted last under ".main".
func Generate(prog *ast.Program) (*pixir.Program, *diag.Error) {
	g := &Generator{}
	out := &pixir.Program{}

	var funcs []*ast.FunctionDef
	var top []ast.Stmt
	for _, stmt := range prog.Statements {
		if fn, ok := stmt.(*ast.FunctionDef); ok {
			funcs = append(funcs, fn)
		} else {
			top = append(top, stmt)
		}
	}

	for _, fn := range funcs {
		if err := g.emitFunction(out, fn); err != nil {
			return nil, err
		}
	}
	if err := g.emitStart(out, top); err != nil {
		return nil, err
	}
	return out, nil
}

// ref renders a label name the way a jmp/cjmp/call operand refers to
// it: the same ".name" spelling a Label definition line prints.
func ref(name string) string {
	return "." + name
}

func (g *Generator) emitFunction(out *pixir.Program, fn *ast.FunctionDef) *diag.Error {
	fr := newFrame()
	for _, p := range fn.Params {
		fr.declare(p.Name)
	}
	prev := g.frame
	g.frame = fr

	body := &pixir.Program{}
	for _, stmt := range fn.Body.Statements {
		if err := g.genStmt(body, stmt); err != nil {
			g.frame = prev
			return err
		}
	}
	if !endsInReturn(fn.Body.Statements) {
		body.Emit(pixir.CFrame)
		body.Emit(pixir.Ret)
	}

	out.EmitLabel(fn.Name)
	out.Emit(pixir.OFrame, strconv.Itoa(fr.size()))
	out.Lines = append(out.Lines, body.Lines...)

	g.frame = prev
	return nil
}

// emitStart builds the implicit entry routine from the program's
// top-level statements that are not function definitions.
func (g *Generator) emitStart(out *pixir.Program, top []ast.Stmt) *diag.Error {
	fr := newFrame()
	g.frame = fr

	body := &pixir.Program{}
	for _, stmt := range top {
		if err := g.genStmt(body, stmt); err != nil {
			return err
		}
	}

	out.EmitLabel("main")
	out.Emit(pixir.OFrame, strconv.Itoa(fr.size()))
	out.Lines = append(out.Lines, body.Lines...)
	out.Emit(pixir.CFrame)
	out.Emit(pixir.Ret)
	return nil
}

// endsInReturn reports whether the last statement of a function body is
// already a Return, so emitFunction does not append a redundant
// cframe/ret pair after an explicit one.
func endsInReturn(stmts []ast.Stmt) bool {
	if len(stmts) == 0 {
		return false
	}
	_, ok := stmts[len(stmts)-1].(*ast.Return)
	return ok
}
