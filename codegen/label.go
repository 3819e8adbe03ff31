/*
File    : pixc/codegen/label.go
Package : codegen
*/
package codegen

import "strconv"

// labelAllocator hands out monotonically increasing .L<n> names,
// scoped to one Generator instance so two Generate calls never share
// label numbering.
type labelAllocator struct {
	next int
}

func (l *labelAllocator) fresh() string {
	name := "L" + strconv.Itoa(l.next)
	l.next++
	return name
}
