// Command gjuha is the entry point for the gjuha interpreter: it starts
// an interactive REPL, or parses and evaluates a gjuha source file,
// depending on the subcommand invoked.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/urfave/cli/v3"

	"github.com/gjuha-lang/gjuha/internal/eval"
	"github.com/gjuha-lang/gjuha/internal/lexer"
	"github.com/gjuha-lang/gjuha/internal/object"
	"github.com/gjuha-lang/gjuha/internal/parser"
	"github.com/gjuha-lang/gjuha/internal/repl"
)

const version = "0.1.0"

const banner = `
  _      __                 __ __
 (_)__  / /______  _______ / /____
/ / _ \/ // / / _ \/ __/ -_) / _ \
/_/\__//_/\_, /\___/_/  \__/_//_/_/
         /___/
`

func main() {
	app := &cli.Command{
		Name:    "gjuha",
		Usage:   "a small Albanian-keyword expression interpreter",
		Version: version,
		Commands: []*cli.Command{
			replCommand,
			runCommand,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return startRepl()
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		redError := color.New(color.FgRed)
		redError.Fprintf(os.Stderr, "gjuha: %v\n", err)
		os.Exit(1)
	}
}

var replCommand = &cli.Command{
	Name:  "repl",
	Usage: "start the interactive read-eval-print loop",
	Action: func(ctx context.Context, cmd *cli.Command) error {
		return startRepl()
	},
}

var runCommand = &cli.Command{
	Name:      "run",
	Usage:     "parse and evaluate a gjuha source file",
	ArgsUsage: "<file>",
	Action: func(ctx context.Context, cmd *cli.Command) error {
		args := cmd.Args()
		if args.Len() != 1 {
			return fmt.Errorf("expected exactly one file argument, got %d", args.Len())
		}
		return runFile(args.Get(0))
	},
}

func startRepl() error {
	r := repl.New(banner, version, ">> ")
	r.Start(os.Stdin, os.Stdout)
	return nil
}

// runFile parses and evaluates the file named by path top to bottom in a
// fresh Environment. A parse error or a runtime *object.Error is printed
// to stderr and reported as a process exit code, matching the convention
// the wider interpreter-CLI ecosystem uses for non-interactive execution.
func runFile(path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	l := lexer.New(string(src))
	p := parser.New(l)
	program := p.ParseProgram()

	if errs := p.Errors(); len(errs) > 0 {
		for _, msg := range errs {
			fmt.Fprintln(os.Stderr, msg)
		}
		return fmt.Errorf("%d parse error(s) in %s", len(errs), path)
	}

	env := object.NewEnvironment()
	result := eval.Eval(program, env)

	if result == nil {
		return nil
	}

	if result.Type() == object.ERROR_OBJ {
		return fmt.Errorf("%s", result.Inspect())
	}

	fmt.Println(result.Inspect())
	return nil
}
