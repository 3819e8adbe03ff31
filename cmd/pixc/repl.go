/*
File    : pixc/cmd/pixc/repl.go
Package : main
*/
package main

import (
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/pixarlang/pixc/codegen"
	"github.com/pixarlang/pixc/diag"
	"github.com/pixarlang/pixc/parser"
	"github.com/pixarlang/pixc/pixir"
	"github.com/pixarlang/pixc/sema"
)

// Color definitions for the REPL's banner and result output. This
// mirrors the coloring scheme a compiler's interactive debug aid
// would reuse from an interpreter's REPL: blue for separators, green
// for the banner, yellow for successful results, red for diagnostics.
var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

const replLine = "----------------------------------------------------------------"
const replBanner = `
 ____  _      _   _          _
|  _ \(_)_  _| |_| |    __ _ _ _  __ _
| |_) | \ \/ | __| |   / _' | '_|/ _' |
|  __/| |>  <| |_| |__| (_| | |  | (_| |
|_|   |_/_/\_\\__|_____\__,_|_|   \__, |
                                   |___/
`

func newReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:    "repl",
		Short:  "Interactively compile one program at a time to PixIR (debug aid, not part of the CORE pipeline)",
		Hidden: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			runRepl(os.Stdin, os.Stdout)
			return nil
		},
	}
}

// runRepl reads one line at a time, treating each as a complete
// program, and prints the PixIR it compiles to or the first
// diagnostic raised. It never accumulates lines across a block: a
// multi-statement program must be entered as a single line.
func runRepl(_ io.Reader, writer io.Writer) {
	printBanner(writer)

	rl, err := readline.New("pixc> ")
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good bye!\n"))
			return
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good bye!\n"))
			return
		}
		rl.SaveHistory(line)
		compileAndPrint(writer, line)
	}
}

func printBanner(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", replLine)
	greenColor.Fprintf(writer, "%s\n", replBanner)
	blueColor.Fprintf(writer, "%s\n", replLine)
	cyanColor.Fprintf(writer, "%s\n", "Type a complete PixArLang program on one line and press enter.")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit.")
	blueColor.Fprintf(writer, "%s\n", replLine)
}

func compileAndPrint(writer io.Writer, line string) {
	defer func() {
		if r := recover(); r != nil {
			redColor.Fprintf(writer, "[INTERNAL ERROR] %v\n", r)
		}
	}()

	prog, err := parser.Parse(line)
	if err != nil {
		printReplDiagnostic(writer, err)
		return
	}
	if _, err := sema.Analyze(prog); err != nil {
		printReplDiagnostic(writer, err)
		return
	}
	ir, err := codegen.Generate(prog)
	if err != nil {
		printReplDiagnostic(writer, err)
		return
	}
	yellowColor.Fprintf(writer, "%s\n", pixir.Encode(ir))
}

func printReplDiagnostic(writer io.Writer, err *diag.Error) {
	redColor.Fprintf(writer, "%s\n", err.Error())
}
