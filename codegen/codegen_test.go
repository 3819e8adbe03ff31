/*
File    : pixc/codegen/codegen_test.go
Package : codegen
*/
package codegen

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pixarlang/pixc/parser"
	"github.com/pixarlang/pixc/pixir"
	"github.com/pixarlang/pixc/sema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustGenerateProgram(t *testing.T, src string) *pixir.Program {
	t.Helper()
	prog, err := parser.Parse(src)
	require.Nil(t, err)
	_, err = sema.Analyze(prog)
	require.Nil(t, err)
	out, err := Generate(prog)
	require.Nil(t, err)
	return out
}

func mustGenerate(t *testing.T, src string) string {
	t.Helper()
	return pixir.Encode(mustGenerateProgram(t, src))
}

// TestGenerate_VoidFunctionLoweringMatchesExactLineSequence pins down
// every line a trivial void function lowers to, rather than just
// substring-matching fragments of it. go-cmp gives a readable diff of
// the whole []pixir.Line if a future change to frame/label allocation
// shifts anything here.
func TestGenerate_VoidFunctionLoweringMatchesExactLineSequence(t *testing.T) {
	out := mustGenerateProgram(t, `fun greet(n: int) { __print(n); }`)

	want := []pixir.Line{
		pixir.Label{Name: "greet"},
		pixir.Instruction{Op: pixir.OFrame, Operands: []string{"1"}},
		pixir.Instruction{Op: pixir.Push, Operands: []string{"0"}},
		pixir.Instruction{Op: pixir.Push, Operands: []string{"0"}},
		pixir.Instruction{Op: pixir.Ld},
		pixir.Instruction{Op: pixir.PadPrint},
		pixir.Instruction{Op: pixir.CFrame},
		pixir.Instruction{Op: pixir.Ret},
		pixir.Label{Name: "main"},
		pixir.Instruction{Op: pixir.OFrame, Operands: []string{"0"}},
		pixir.Instruction{Op: pixir.CFrame},
		pixir.Instruction{Op: pixir.Ret},
	}

	if diff := cmp.Diff(want, out.Lines); diff != "" {
		t.Errorf("generated lines mismatch (-want +got):\n%s", diff)
	}
}

// TestGenerate_BinaryExpressionSourceOrder exercises the left-then-right
// emission order the algorithmic description of expression lowering
// calls for, for a declaration whose initializer is a sum of two
// literals.
func TestGenerate_BinaryExpressionSourceOrder(t *testing.T) {
	out := mustGenerate(t, `let x: int = 10 + 17;`)
	assert.Contains(t, out, "push 10\npush 17\nadd\npush 0\npush 0\nst")
}

// TestGenerate_AssignmentReadsThenWrites covers `x = x + 1;`: the
// right-hand side loads x's current value before the store that
// follows it.
func TestGenerate_AssignmentReadsThenWrites(t *testing.T) {
	out := mustGenerate(t, `let x: int = 5; x = x + 1;`)
	assert.Contains(t, out, "push 0\npush 0\nld\npush 1\nadd\npush 0\npush 0\nst")
}

func TestGenerate_FunctionDefAndCall(t *testing.T) {
	out := mustGenerate(t, `fun add(x: int, y: int) -> int { return x + y; } add(2, 3);`)
	assert.Contains(t, out, ".add\noframe 2")
	assert.Contains(t, out, "ret")
	assert.Contains(t, out, "push 2\npush 3\ncall add 2")
}

func TestGenerate_IfElseStructuredLabels(t *testing.T) {
	out := mustGenerate(t, `
let a: int = 1;
let b: int = 2;
let x: int = 0;
if (a < b) { x = 1; } else { x = 2; }
`)
	assert.Contains(t, out, "lt")
	assert.Contains(t, out, "cjmp .L")
	assert.Contains(t, out, "jmp .L")
	lines := strings.Split(out, "\n")
	var cjmpCount, jmpCount int
	for _, l := range lines {
		if strings.HasPrefix(l, "cjmp ") {
			cjmpCount++
		}
		if strings.HasPrefix(l, "jmp ") {
			jmpCount++
		}
	}
	assert.Equal(t, 1, cjmpCount)
	assert.Equal(t, 1, jmpCount)
}

func TestGenerate_WhileLoopBackwardJump(t *testing.T) {
	out := mustGenerate(t, `let n: int = 3; while (n > 0) { n = n - 1; }`)
	lines := strings.Split(out, "\n")

	var startLabel, endLabel string
	var cjmpCount int
	for i, l := range lines {
		if strings.HasPrefix(l, ".L") && startLabel == "" {
			startLabel = strings.TrimPrefix(l, ".")
		}
		if strings.HasPrefix(l, "cjmp ") {
			cjmpCount++
			endLabel = strings.TrimPrefix(strings.TrimPrefix(l, "cjmp "), ".")
		}
		_ = i
	}
	require.NotEmpty(t, startLabel)
	require.NotEmpty(t, endLabel)
	assert.Equal(t, 1, cjmpCount)
	assert.Contains(t, out, "jmp ."+startLabel)
	assert.Contains(t, out, "."+endLabel)
}

func TestGenerate_ForLoopDesugarsToWhile(t *testing.T) {
	out := mustGenerate(t, `for (let i: int = 0; i < 10; i = i + 1;) { __print(i); }`)
	assert.Contains(t, out, "push 0\npush 0\nst")
	assert.Contains(t, out, "lt")
	assert.Contains(t, out, "print")
}

func TestGenerate_PixelBuiltinArgumentOrder(t *testing.T) {
	out := mustGenerate(t, `let x: int = 1; let y: int = 2; __pixel(x, y, #FF00AA);`)
	assert.Contains(t, out, "push #FF00AA")
	assert.Contains(t, out, "pixel")
}

func TestGenerate_PadBuiltinsEmitDedicatedMnemonics(t *testing.T) {
	out := mustGenerate(t, `
let w: int = __width();
let h: int = __height();
let r: int = __randi(10);
__delay(5);
`)
	assert.Contains(t, out, "width")
	assert.Contains(t, out, "height")
	assert.Contains(t, out, "irnd")
	assert.Contains(t, out, "delay")
}

func TestGenerate_VoidFunctionImplicitReturn(t *testing.T) {
	out := mustGenerate(t, `fun greet() { __print(1); }`)
	assert.Contains(t, out, ".greet")
	assert.Contains(t, out, "cframe\nret")
}

func TestGenerate_FunctionExplicitReturnNotDuplicated(t *testing.T) {
	out := mustGenerate(t, `fun f() -> int { return 1; }`)
	// One ret from f's explicit return, one closing the start routine.
	assert.Equal(t, 2, strings.Count(out, "ret"))
}

func TestGenerate_UnaryMinusHasNoDedicatedOpcode(t *testing.T) {
	out := mustGenerate(t, `let x: int = -5;`)
	assert.Contains(t, out, "push 0\npush 5\nsub")
}

func TestGenerate_Determinism(t *testing.T) {
	src := `fun add(x: int, y: int) -> int { return x + y; } let z: int = add(1, 2);`
	out1 := mustGenerate(t, src)
	out2 := mustGenerate(t, src)
	assert.Equal(t, out1, out2)
}

func TestGenerate_StartRoutineUsesMainLabel(t *testing.T) {
	out := mustGenerate(t, `let x: int = 1;`)
	assert.Contains(t, out, ".main\noframe 1")
	assert.True(t, strings.HasSuffix(out, "cframe\nret"))
}
