/*
File    : pixc/pixir/encode.go
Package : pixir
*/
package pixir

import (
	"strconv"
	"strings"
)

// Encode renders p in PixIR's textual wire format: one instruction per
// line, labels on their own line beginning with ".", operands
// space-separated.
func Encode(p *Program) string {
	var b strings.Builder
	for i, line := range p.Lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		switch l := line.(type) {
		case Instruction:
			b.WriteString(l.String())
		case Label:
			b.WriteString(l.String())
		}
	}
	return b.String()
}

// FormatInt renders an integer literal operand in decimal.
func FormatInt(v int64) string {
	return strconv.FormatInt(v, 10)
}

// FormatFloat renders a float literal operand.
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// FormatBool renders a bool literal as its integer truth value, the
// form PixIR's arithmetic and comparison opcodes already produce.
func FormatBool(v bool) string {
	if v {
		return "1"
	}
	return "0"
}

// FormatColour renders a colour literal as "#RRGGBB".
func FormatColour(hex string) string {
	return "#" + hex
}

// FormatString renders a string literal as its decimal Unicode code
// points, comma-separated and surrounded by quotes.
func FormatString(s string) string {
	var parts []string
	for _, r := range s {
		parts = append(parts, strconv.Itoa(int(r)))
	}
	return `"` + strings.Join(parts, ",") + `"`
}
