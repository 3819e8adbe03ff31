/*
File    : pixc/vm/vm_test.go
Package : vm
*/
package vm

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pixarlang/pixc/codegen"
	"github.com/pixarlang/pixc/parser"
	"github.com/pixarlang/pixc/pixir"
	"github.com/pixarlang/pixc/sema"
)

func mustCompile(t *testing.T, src string) *pixir.Program {
	t.Helper()
	prog, err := parser.Parse(src)
	require.Nil(t, err)
	_, err = sema.Analyze(prog)
	require.Nil(t, err)
	ir, err := codegen.Generate(prog)
	require.Nil(t, err)
	return ir
}

func mustRun(t *testing.T, src string) (string, *BufferPad) {
	t.Helper()
	ir := mustCompile(t, src)
	pad := NewBufferPad(16, 16, 1)
	var out bytes.Buffer
	machine, err := New(ir, pad, &out)
	require.NoError(t, err)
	require.NoError(t, machine.Run())
	return out.String(), pad
}

func TestVM_ArithmeticAndPrint(t *testing.T) {
	out, _ := mustRun(t, `__print(10 + 17);`)
	assert.Equal(t, "27\n", out)
}

func TestVM_VariableAssignmentRoundTrips(t *testing.T) {
	out, _ := mustRun(t, `let x: int = 1; x = x + 1; __print(x);`)
	assert.Equal(t, "2\n", out)
}

func TestVM_IfElseTakesThenBranch(t *testing.T) {
	out, _ := mustRun(t, `let c: bool = true; if (c) { __print(1); } else { __print(2); }`)
	assert.Equal(t, "1\n", out)
}

func TestVM_IfElseTakesElseBranch(t *testing.T) {
	out, _ := mustRun(t, `let c: bool = false; if (c) { __print(1); } else { __print(2); }`)
	assert.Equal(t, "2\n", out)
}

func TestVM_WhileLoopCountsToThree(t *testing.T) {
	out, _ := mustRun(t, `
		let i: int = 0;
		while (i < 3) {
			__print(i);
			i = i + 1;
		}
	`)
	assert.Equal(t, "0\n1\n2\n", out)
}

func TestVM_ForLoopDesugarsAndCountsToThree(t *testing.T) {
	out, _ := mustRun(t, `
		for (let i: int = 0; i < 3; i = i + 1;) {
			__print(i);
		}
	`)
	assert.Equal(t, "0\n1\n2\n", out)
}

func TestVM_FunctionCallReturnsValue(t *testing.T) {
	out, _ := mustRun(t, `
		fun add(a: int, b: int) -> int {
			return a + b;
		}
		__print(add(3, 4));
	`)
	assert.Equal(t, "7\n", out)
}

func TestVM_FunctionCallArgumentOrderPreserved(t *testing.T) {
	out, _ := mustRun(t, `
		fun sub(a: int, b: int) -> int {
			return a - b;
		}
		__print(sub(10, 3));
	`)
	assert.Equal(t, "7\n", out)
}

func TestVM_VoidFunctionImplicitReturn(t *testing.T) {
	out, _ := mustRun(t, `
		fun greet() {
			__print(1);
		}
		greet();
	`)
	assert.Equal(t, "1\n", out)
}

func TestVM_UnaryMinusNegatesOperand(t *testing.T) {
	out, _ := mustRun(t, `let x: int = 5; __print(-x);`)
	assert.Equal(t, "-5\n", out)
}

func TestVM_LogicalNotFlipsTruthiness(t *testing.T) {
	out, _ := mustRun(t, `let c: bool = false; __print(not c);`)
	assert.Equal(t, "1\n", out)
}

func TestVM_PixelBuiltinWritesToPad(t *testing.T) {
	_, pad := mustRun(t, `__pixel(1, 2, #ff00ff);`)
	assert.Equal(t, "ff00ff", pad.ReadPixel(1, 2))
}

func TestVM_PixelRBuiltinFillsRectangle(t *testing.T) {
	_, pad := mustRun(t, `__pixelr(0, 0, 2, 2, #00ff00);`)
	assert.Equal(t, "00ff00", pad.ReadPixel(0, 0))
	assert.Equal(t, "00ff00", pad.ReadPixel(1, 1))
	assert.Equal(t, "000000", pad.ReadPixel(2, 2))
}

func TestVM_ReadBuiltinReturnsPreviouslyWrittenColour(t *testing.T) {
	out, _ := mustRun(t, `
		__pixel(3, 3, #123456);
		__print(__read(3, 3));
	`)
	assert.Equal(t, "#123456\n", out)
}

func TestVM_WidthAndHeightReflectPadDimensions(t *testing.T) {
	out, _ := mustRun(t, `__print(__width()); __print(__height());`)
	assert.Equal(t, "16\n16\n", out)
}

func TestVM_DelayRecordsDurationWithoutBlocking(t *testing.T) {
	_, pad := mustRun(t, `__delay(250);`)
	assert.Equal(t, []int64{250}, pad.Delays())
}

func TestVM_StringLiteralRoundTripsThroughPrint(t *testing.T) {
	out, _ := mustRun(t, `__print("hi");`)
	assert.Equal(t, "hi\n", out)
}

func TestVM_FloatArithmeticUsesFloatPath(t *testing.T) {
	out, _ := mustRun(t, `let x: float = 1.5; __print(x + 2.5);`)
	assert.Equal(t, "4\n", out)
}

func TestVM_NestedBlocksShareEnclosingFrame(t *testing.T) {
	out, _ := mustRun(t, `
		let total: int = 0;
		if (true) {
			total = total + 5;
		}
		__print(total);
	`)
	assert.Equal(t, "5\n", out)
}
