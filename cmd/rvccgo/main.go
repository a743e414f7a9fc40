// Command rvccgo compiles a single source file (or standard input) into
// RISC-V RV64I assembly text written to a file or standard output.
package main

import (
	"fmt"
	"os"

	"rvccgo/codegen"
	"rvccgo/lexer"
	"rvccgo/parser"
	"rvccgo/source"
)

const usage = `usage: rvccgo [-o <path>] <file>

  <file>       source file to compile, or "-" for standard input
  -o <path>    write assembly to <path>; "-" or omission writes to stdout
  -h, --help   print this message and exit
`

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	var inputPath, outputPath string
	haveInput := false
	haveOutput := false

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "-h" || arg == "--help":
			fmt.Fprint(os.Stderr, usage)
			return 0

		case arg == "-o":
			i++
			if i >= len(args) {
				fmt.Fprintf(os.Stderr, "💥 -o requires a path\n")
				return 1
			}
			outputPath = args[i]
			haveOutput = true

		case arg == "-" || arg == "" || arg[0] != '-':
			if haveInput {
				fmt.Fprintf(os.Stderr, "💥 unexpected argument: %s\n", arg)
				return 1
			}
			inputPath = arg
			haveInput = true

		default:
			fmt.Fprintf(os.Stderr, "💥 unknown flag: %s\n", arg)
			return 1
		}
	}

	if !haveInput {
		fmt.Fprintf(os.Stderr, "💥 no input file\n")
		return 1
	}
	if !haveOutput {
		outputPath = "-"
	}

	asm, err := compile(inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		return 1
	}

	if err := writeOutput(outputPath, asm); err != nil {
		fmt.Fprintf(os.Stderr, "💥 writing output: %s\n", err)
		return 1
	}
	return 0
}

func compile(inputPath string) (string, error) {
	buf, err := source.Load(inputPath)
	if err != nil {
		return "", err
	}

	tokens, err := lexer.Tokenize(buf)
	if err != nil {
		return "", err
	}

	globals, err := parser.New(buf, tokens).Parse()
	if err != nil {
		return "", err
	}

	return codegen.Generate(globals)
}

func writeOutput(path, asm string) error {
	if path == "-" {
		_, err := fmt.Fprint(os.Stdout, asm)
		return err
	}
	return os.WriteFile(path, []byte(asm), 0o644)
}
