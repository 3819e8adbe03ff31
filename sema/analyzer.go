/*
File    : pixc/sema/analyzer.go
Package : sema
*/

// Package sema implements PixArLang's semantic analysis pass: a
// scope-stack symbol table plus the typed-AST-producing walk that
// enforces every scoping and typing rule. The walk is in source order
// and annotates each Expr node in place via ast.Expr.SetExprType;
// there is no separate typed-tree representation.
package sema

import (
	"github.com/pixarlang/pixc/ast"
	"github.com/pixarlang/pixc/diag"
	"github.com/pixarlang/pixc/types"
)

// Analyzer holds all per-stage semantic state: the symbol table and
// the declared return type of the function currently being walked
// (nil outside any function, where a Return is illegal).
type Analyzer struct {
	table      *SymbolTable
	funcReturn *types.Type // nil when not inside a function body
	inBlock    bool        // true once analysis has descended into any block
}

// Analyze type-checks prog in place and returns the populated symbol
// table, or the first diagnostic raised.
func Analyze(prog *ast.Program) (*SymbolTable, *diag.Error) {
	a := &Analyzer{table: NewSymbolTable()}

	// Function signatures are hoisted in a first pass so a call can
	// reference a function defined later in the same program, matching
	// the code generator's "emit all FunctionDefs first" convention.
	for _, stmt := range prog.Statements {
		fn, ok := stmt.(*ast.FunctionDef)
		if !ok {
			continue
		}
		if err := a.declareFunctionSignature(fn); err != nil {
			return nil, err
		}
	}

	for _, stmt := range prog.Statements {
		if err := a.analyzeStmt(stmt); err != nil {
			return nil, err
		}
	}
	return a.table, nil
}

func (a *Analyzer) declareFunctionSignature(fn *ast.FunctionDef) *diag.Error {
	retType := types.Void
	if fn.ReturnType != "" {
		retType = types.Type(fn.ReturnType)
	}
	paramTypes := make([]types.Type, len(fn.Params))
	for i, p := range fn.Params {
		paramTypes[i] = types.Type(p.Type)
	}
	sym := &Symbol{Name: fn.Name, Type: retType, Kind: KindFunction, ParamTypes: paramTypes, ReturnType: retType}
	if a.table.Declare(sym) {
		return diag.New(diag.Redeclaration, fn.Pos(), "function %q is already declared", fn.Name)
	}
	return nil
}

func (a *Analyzer) analyzeStmt(stmt ast.Stmt) *diag.Error {
	switch s := stmt.(type) {
	case *ast.Declaration:
		return a.analyzeDeclaration(s)
	case *ast.Assignment:
		return a.analyzeAssignment(s)
	case *ast.If:
		return a.analyzeIf(s)
	case *ast.While:
		return a.analyzeWhile(s)
	case *ast.For:
		return a.analyzeFor(s)
	case *ast.Block:
		return a.analyzeBlock(s)
	case *ast.FunctionDef:
		if a.inBlock {
			return diag.New(diag.TypeError, s.Pos(), "function %q cannot be defined inside a block; functions may only be declared at the top level", s.Name)
		}
		return a.analyzeFunctionDef(s)
	case *ast.Return:
		return a.analyzeReturn(s)
	case *ast.FunctionCall:
		_, err := a.analyzeExpr(s)
		return err
	case *ast.Print:
		_, err := a.analyzeExpr(s)
		return err
	case *ast.Delay:
		_, err := a.analyzeExpr(s)
		return err
	case *ast.Pixel:
		_, err := a.analyzeExpr(s)
		return err
	case *ast.PixelR:
		_, err := a.analyzeExpr(s)
		return err
	default:
		panic("sema: unsupported statement node")
	}
}

func (a *Analyzer) analyzeDeclaration(d *ast.Declaration) *diag.Error {
	initType, err := a.analyzeExpr(d.Initializer)
	if err != nil {
		return err
	}
	declared := types.Type(d.DeclaredType)
	if initType != declared {
		return diag.New(diag.TypeError, d.Initializer.Pos(), "cannot initialize %q of type %s with a value of type %s", d.Name, declared, initType)
	}
	sym := &Symbol{Name: d.Name, Type: declared, Kind: KindVariable}
	if a.table.Declare(sym) {
		return diag.New(diag.Redeclaration, d.Pos(), "%q is already declared in this scope", d.Name)
	}
	return nil
}

func (a *Analyzer) analyzeAssignment(asg *ast.Assignment) *diag.Error {
	sym, ok := a.table.Resolve(asg.Name)
	if !ok {
		return diag.New(diag.Undeclared, asg.Pos(), "%q is not declared", asg.Name)
	}
	if sym.Kind == KindFunction {
		return diag.New(diag.InvalidAssignment, asg.Pos(), "%q names a function and cannot be assigned to", asg.Name)
	}
	exprType, err := a.analyzeExpr(asg.Expression)
	if err != nil {
		return err
	}
	if exprType != sym.Type {
		return diag.New(diag.TypeError, asg.Expression.Pos(), "cannot assign a value of type %s to %q of type %s", exprType, asg.Name, sym.Type)
	}
	return nil
}

func (a *Analyzer) analyzeIf(s *ast.If) *diag.Error {
	condType, err := a.analyzeExpr(s.Condition)
	if err != nil {
		return err
	}
	if condType != types.Bool {
		return diag.New(diag.TypeError, s.Condition.Pos(), "if condition must be bool, found %s", condType)
	}
	if err := a.analyzeBlock(s.Then); err != nil {
		return err
	}
	if s.Else != nil {
		if err := a.analyzeBlock(s.Else); err != nil {
			return err
		}
	}
	return nil
}

func (a *Analyzer) analyzeWhile(s *ast.While) *diag.Error {
	condType, err := a.analyzeExpr(s.Condition)
	if err != nil {
		return err
	}
	if condType != types.Bool {
		return diag.New(diag.TypeError, s.Condition.Pos(), "while condition must be bool, found %s", condType)
	}
	return a.analyzeBlock(s.Body)
}

// analyzeFor opens a dedicated scope for the loop variable, matching
// the scope-discipline rule that For introduces its own scope.
func (a *Analyzer) analyzeFor(s *ast.For) *diag.Error {
	a.table.Push()
	defer a.table.Pop()

	if err := a.analyzeStmt(s.Init); err != nil {
		return err
	}
	condType, err := a.analyzeExpr(s.Condition)
	if err != nil {
		return err
	}
	if condType != types.Bool {
		return diag.New(diag.TypeError, s.Condition.Pos(), "for condition must be bool, found %s", condType)
	}
	if err := a.analyzeAssignment(s.Update); err != nil {
		return err
	}
	// The body goes through analyzeBlock, which opens one more scope
	// nested inside the for-scope (the loop variable stays visible
	// there) and sets inBlock, so a FunctionDef in the body is rejected.
	return a.analyzeBlock(s.Body)
}

func (a *Analyzer) analyzeBlock(b *ast.Block) *diag.Error {
	a.table.Push()
	defer a.table.Pop()
	prevInBlock := a.inBlock
	a.inBlock = true
	defer func() { a.inBlock = prevInBlock }()
	for _, stmt := range b.Statements {
		if err := a.analyzeStmt(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (a *Analyzer) analyzeFunctionDef(fn *ast.FunctionDef) *diag.Error {
	retType := types.Void
	if fn.ReturnType != "" {
		retType = types.Type(fn.ReturnType)
	}

	a.table.Push()
	defer a.table.Pop()

	for _, p := range fn.Params {
		sym := &Symbol{Name: p.Name, Type: types.Type(p.Type), Kind: KindParameter}
		if a.table.Declare(sym) {
			return diag.New(diag.Redeclaration, fn.Pos(), "parameter %q is already declared", p.Name)
		}
	}

	prevReturn := a.funcReturn
	a.funcReturn = &retType
	defer func() { a.funcReturn = prevReturn }()

	prevInBlock := a.inBlock
	a.inBlock = true
	defer func() { a.inBlock = prevInBlock }()

	for _, stmt := range fn.Body.Statements {
		if err := a.analyzeStmt(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (a *Analyzer) analyzeReturn(ret *ast.Return) *diag.Error {
	if a.funcReturn == nil {
		return diag.New(diag.ReturnOutsideFunc, ret.Pos(), "return used outside a function body")
	}
	want := *a.funcReturn
	if ret.Expression == nil {
		if want != types.Void {
			return diag.New(diag.TypeError, ret.Pos(), "function must return a value of type %s", want)
		}
		return nil
	}
	gotType, err := a.analyzeExpr(ret.Expression)
	if err != nil {
		return err
	}
	if gotType != want {
		return diag.New(diag.TypeError, ret.Expression.Pos(), "function declared to return %s, found %s", want, gotType)
	}
	return nil
}
