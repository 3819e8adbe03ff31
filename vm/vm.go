/*
File    : pixc/vm/vm.go
Package : vm
*/

// Package vm is a small reference interpreter for PixIR, the stack
// machine the pixc code generator targets. It exists for exercising
// compiled output in tests; it is not part of the CORE compile pipeline, which only emits PixIR and
// never runs it — per the external-interface contract, a downstream
// VM is free to interpret the textual format however it likes. This
// one follows the instruction semantics literally: a single operand
// stack, an explicit call stack of return addresses, and a separate
// stack of frames opened by oframe and closed by cframe.
package vm

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pixarlang/pixc/pixir"
)

// frame is one activation record: a flat slice of slots addressed by
// the (slot, level) pairs the code generator emits. PixArLang has no
// closures, so level is always 0 and every frame only ever resolves
// into itself.
type frame struct {
	slots []value
}

// VM executes one pixir.Program to completion against a Pad.
type VM struct {
	instrs []pixir.Instruction
	labels map[string]int // label name (no leading '.') -> index into instrs

	stack       []value
	frames      []*frame
	callStack   []int
	pendingArgs []value

	pad Pad
	out io.Writer
}

// New builds a VM ready to Run prog. out receives everything __print
// writes; pad receives every display-touching opcode.
func New(prog *pixir.Program, pad Pad, out io.Writer) (*VM, error) {
	v := &VM{labels: make(map[string]int), pad: pad, out: out}
	for _, line := range prog.Lines {
		switch l := line.(type) {
		case pixir.Label:
			v.labels[l.Name] = len(v.instrs)
		case pixir.Instruction:
			v.instrs = append(v.instrs, l)
		}
	}
	if _, ok := v.labels["main"]; !ok {
		return nil, fmt.Errorf("vm: program has no .main entry point")
	}
	return v, nil
}

// Run executes the program's start routine to its outermost ret.
func (v *VM) Run() error {
	pc := v.labels["main"]
	for {
		if pc >= len(v.instrs) {
			return nil
		}
		ins := v.instrs[pc]
		next, halt, err := v.step(ins, pc)
		if err != nil {
			return err
		}
		if halt {
			return nil
		}
		pc = next
	}
}

// step executes one instruction and returns the next program counter.
// halt is true only for the ret that unwinds the outermost call.
func (v *VM) step(ins pixir.Instruction, pc int) (next int, halt bool, err error) {
	next = pc + 1
	switch ins.Op {
	case pixir.Push:
		val, perr := parseOperand(ins.Operands[0])
		if perr != nil {
			return 0, false, perr
		}
		v.push(val)

	case pixir.Ld:
		level := v.popInt()
		slot := v.popInt()
		fr := v.frameAt(level)
		v.push(fr.slots[slot])

	case pixir.St:
		level := v.popInt()
		slot := v.popInt()
		val := v.pop()
		fr := v.frameAt(level)
		fr.slots[slot] = val

	case pixir.OFrame, pixir.Alloc:
		n, _ := strconv.Atoi(ins.Operands[0])
		fr := &frame{slots: make([]value, n)}
		for i, arg := range v.pendingArgs {
			if i < n {
				fr.slots[i] = arg
			}
		}
		v.pendingArgs = nil
		v.frames = append(v.frames, fr)

	case pixir.CFrame:
		v.frames = v.frames[:len(v.frames)-1]

	case pixir.Add, pixir.Sub, pixir.Mul, pixir.Div, pixir.Mod:
		if err := v.arith(ins.Op); err != nil {
			return 0, false, err
		}

	case pixir.Lt, pixir.Le, pixir.Gt, pixir.Ge, pixir.Eq, pixir.Neq:
		v.compare(ins.Op)

	case pixir.And, pixir.Or:
		b := v.pop().truthy()
		a := v.pop().truthy()
		if ins.Op == pixir.And {
			v.push(boolValue(a && b))
		} else {
			v.push(boolValue(a || b))
		}

	case pixir.Not:
		v.push(boolValue(!v.pop().truthy()))

	case pixir.Jmp:
		next = v.labels[strings.TrimPrefix(ins.Operands[0], ".")]

	case pixir.CJmp:
		if v.pop().i == 0 {
			next = v.labels[strings.TrimPrefix(ins.Operands[0], ".")]
		}

	case pixir.Call:
		name := ins.Operands[0]
		argc, _ := strconv.Atoi(ins.Operands[1])
		args := make([]value, argc)
		for i := argc - 1; i >= 0; i-- {
			args[i] = v.pop()
		}
		v.pendingArgs = args
		v.callStack = append(v.callStack, pc+1)
		next = v.labels[name]

	case pixir.Ret:
		if len(v.callStack) == 0 {
			return 0, true, nil
		}
		next = v.callStack[len(v.callStack)-1]
		v.callStack = v.callStack[:len(v.callStack)-1]

	case pixir.PadPrint:
		fmt.Fprintln(v.out, v.pop().display())
	case pixir.PadDelay:
		v.pad.Delay(v.popInt())
	case pixir.PadWidth:
		v.push(numberInt(v.pad.Width()))
	case pixir.PadHeight:
		v.push(numberInt(v.pad.Height()))
	case pixir.PadRead:
		y := v.popInt()
		x := v.popInt()
		v.push(colourValue(v.pad.ReadPixel(x, y)))
	case pixir.PadRandi:
		v.push(numberInt(v.pad.RandInt(v.popInt())))
	case pixir.PadPixel:
		c := v.pop()
		y := v.popInt()
		x := v.popInt()
		v.pad.SetPixel(x, y, c.s)
	case pixir.PadPixelR:
		c := v.pop()
		h := v.popInt()
		w := v.popInt()
		y := v.popInt()
		x := v.popInt()
		v.pad.SetPixelRect(x, y, w, h, c.s)

	default:
		return 0, false, fmt.Errorf("vm: unsupported opcode %q", ins.Op)
	}
	return next, false, nil
}

func (v *VM) push(val value) { v.stack = append(v.stack, val) }

func (v *VM) pop() value {
	n := len(v.stack) - 1
	val := v.stack[n]
	v.stack = v.stack[:n]
	return val
}

func (v *VM) popInt() int64 { return v.pop().i }

func (v *VM) frameAt(level int64) *frame {
	return v.frames[int64(len(v.frames))-1-level]
}

func (v *VM) arith(op pixir.Mnemonic) error {
	b := v.pop()
	a := v.pop()
	if op == pixir.Mod {
		if b.i == 0 {
			return fmt.Errorf("vm: modulo by zero")
		}
		v.push(numberInt(a.i % b.i))
		return nil
	}
	if a.isFloat || b.isFloat {
		af, bf := a.asFloat(), b.asFloat()
		switch op {
		case pixir.Add:
			v.push(numberFloat(af + bf))
		case pixir.Sub:
			v.push(numberFloat(af - bf))
		case pixir.Mul:
			v.push(numberFloat(af * bf))
		case pixir.Div:
			v.push(numberFloat(af / bf))
		}
		return nil
	}
	switch op {
	case pixir.Add:
		v.push(numberInt(a.i + b.i))
	case pixir.Sub:
		v.push(numberInt(a.i - b.i))
	case pixir.Mul:
		v.push(numberInt(a.i * b.i))
	case pixir.Div:
		if b.i == 0 {
			return fmt.Errorf("vm: division by zero")
		}
		v.push(numberInt(a.i / b.i))
	}
	return nil
}

func (v *VM) compare(op pixir.Mnemonic) {
	b := v.pop()
	a := v.pop()

	if a.kind == kindString || a.kind == kindColour {
		var result bool
		switch op {
		case pixir.Eq:
			result = a.s == b.s
		case pixir.Neq:
			result = a.s != b.s
		}
		v.push(boolValue(result))
		return
	}

	af, bf := a.asFloat(), b.asFloat()
	var result bool
	switch op {
	case pixir.Lt:
		result = af < bf
	case pixir.Le:
		result = af <= bf
	case pixir.Gt:
		result = af > bf
	case pixir.Ge:
		result = af >= bf
	case pixir.Eq:
		result = af == bf
	case pixir.Neq:
		result = af != bf
	}
	v.push(boolValue(result))
}

// parseOperand decodes a push operand the way pixir's encoder wrote
// it: "#RRGGBB" for a colour, a quoted comma-separated code-point list
// for a string, anything containing '.' as a float, else an int.
func parseOperand(s string) (value, error) {
	switch {
	case strings.HasPrefix(s, "#"):
		return colourValue(strings.TrimPrefix(s, "#")), nil
	case strings.HasPrefix(s, `"`):
		return stringValue(decodeCodePoints(s)), nil
	case strings.Contains(s, "."):
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return value{}, fmt.Errorf("vm: invalid float operand %q: %w", s, err)
		}
		return numberFloat(f), nil
	default:
		i, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return value{}, fmt.Errorf("vm: invalid int operand %q: %w", s, err)
		}
		return numberInt(i), nil
	}
}

func decodeCodePoints(quoted string) string {
	inner := strings.Trim(quoted, `"`)
	if inner == "" {
		return ""
	}
	var b strings.Builder
	for _, part := range strings.Split(inner, ",") {
		cp, err := strconv.Atoi(part)
		if err != nil {
			continue
		}
		b.WriteRune(rune(cp))
	}
	return b.String()
}
