/*
File    : pixc/cmd/pixc/main.go
Package : main
*/

// Command pixc is the PixArLang compiler: it drives the lexer, parser,
// semantic analyzer, and code generator over a source file and writes
// the resulting PixIR, or reports the first diagnostic raised along
// the way.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
