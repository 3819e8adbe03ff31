/*
File    : pixc/cmd/pixc/root.go
Package : main
*/
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/pixarlang/pixc/codegen"
	"github.com/pixarlang/pixc/diag"
	"github.com/pixarlang/pixc/parser"
	"github.com/pixarlang/pixc/pixir"
	"github.com/pixarlang/pixc/sema"
)

var (
	redColor = color.New(color.FgRed)
)

// Exit codes, one per pipeline stage that can fail, plus I/O.
const (
	exitOK = iota
	exitLexError
	exitParseError
	exitSemaError
	exitCodeGenError
	exitIOError
)

func newRootCmd() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:          "pixc <input.pix>",
		Short:        "Compile a PixArLang source file to PixIR",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			os.Exit(runCompile(args[0], outPath))
			return nil
		},
	}
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "write PixIR to this file instead of stdout")
	cmd.AddCommand(newReplCmd())
	return cmd
}

// runCompile reads input, drives the four-stage pipeline, and writes
// the emitted PixIR to outPath (or stdout when outPath is empty). It
// returns the process exit code rather than an error, since each
// pipeline stage maps to a distinct documented code.
func runCompile(inputPath, outPath string) int {
	raw, err := os.ReadFile(inputPath)
	if err != nil {
		redColor.Fprintf(os.Stderr, "error: could not read %q: %v\n", inputPath, err)
		return exitIOError
	}
	source := normalizeLineEndings(string(raw))

	prog, perr := parser.Parse(source)
	if perr != nil {
		printDiagnostic(perr)
		return exitCodeFor(perr)
	}

	if _, serr := sema.Analyze(prog); serr != nil {
		printDiagnostic(serr)
		return exitCodeFor(serr)
	}

	ir, cerr := codegen.Generate(prog)
	if cerr != nil {
		printDiagnostic(cerr)
		return exitCodeFor(cerr)
	}

	output := pixir.Encode(ir) + "\n"
	if outPath == "" {
		fmt.Print(output)
		return exitOK
	}
	if err := os.WriteFile(outPath, []byte(output), 0644); err != nil {
		redColor.Fprintf(os.Stderr, "error: could not write %q: %v\n", outPath, err)
		return exitIOError
	}
	return exitOK
}

// normalizeLineEndings reduces "\r\n" to "\n" so the lexer's column
// and line tracking never has to reason about carriage returns.
func normalizeLineEndings(src string) string {
	return strings.ReplaceAll(src, "\r\n", "\n")
}

func printDiagnostic(err *diag.Error) {
	redColor.Fprintf(os.Stderr, "%s\n", err.Error())
}

// exitCodeFor classifies a diagnostic by the taxonomy group its Kind
// belongs to, per the documented exit-code-per-stage contract.
func exitCodeFor(err *diag.Error) int {
	switch err.Kind {
	case diag.UnexpectedCharacter, diag.InvalidEscape, diag.UnterminatedString, diag.InvalidNumber, diag.InvalidColour:
		return exitLexError
	case diag.UnexpectedToken, diag.UnexpectedEOF, diag.MalformedDeclaration:
		return exitParseError
	case diag.Undeclared, diag.Redeclaration, diag.TypeError, diag.ArityError, diag.ReturnOutsideFunc, diag.InvalidAssignment:
		return exitSemaError
	case diag.UnresolvedSymbol, diag.UnsupportedNode:
		return exitCodeGenError
	default:
		return exitSemaError
	}
}
