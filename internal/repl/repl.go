// Package repl implements gjuha's interactive Read-Eval-Print Loop: enter
// gjuha code line by line, see results immediately, and navigate history
// with the arrow keys. It uses chzyer/readline for line editing and
// fatih/color for colored feedback, mirroring the REPL conventions of the
// wider interpreter-in-Go ecosystem this package is built from.
package repl

import (
	"bufio"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/gjuha-lang/gjuha/internal/eval"
	"github.com/gjuha-lang/gjuha/internal/lexer"
	"github.com/gjuha-lang/gjuha/internal/object"
	"github.com/gjuha-lang/gjuha/internal/parser"
)

const exitCommand = ".exit"

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl is one interactive gjuha session: its banner and prompt text, plus
// the Environment that every line evaluates against. The Environment
// persists for the whole session, so a `var` bound on one line is visible
// to every line after it.
type Repl struct {
	Banner  string
	Version string
	Prompt  string
	Line    string

	env *object.Environment
}

// New creates a Repl with a fresh top-level Environment.
func New(banner, version, prompt string) *Repl {
	return &Repl{
		Banner:  banner,
		Version: version,
		Prompt:  prompt,
		Line:    strings.Repeat("-", 48),
		env:     object.NewEnvironment(),
	}
}

func (r *Repl) printBanner(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintf(writer, "gjuha %s\n", r.Version)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintln(writer, "Shkruaj kod dhe shtyp Enter.")
	cyanColor.Fprintf(writer, "Shkruaj '%s' për të dalë.\n", exitCommand)
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the REPL loop against writer until the user exits or input
// ends. It prefers chzyer/readline for history and line editing; if
// readline cannot attach to the terminal (e.g. input is piped), it falls
// back to a plain bufio.Scanner so gjuha still works in non-interactive
// pipelines.
func (r *Repl) Start(in io.Reader, out io.Writer) {
	r.printBanner(out)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:      r.Prompt,
		Stdin:       io.NopCloser(in),
		Stdout:      out,
		HistoryFile: "",
	})
	if err != nil {
		r.startScanner(in, out)
		return
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			out.Write([]byte("Mirupafshim!\n"))
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == exitCommand {
			out.Write([]byte("Mirupafshim!\n"))
			return
		}

		r.evalLine(out, line)
	}
}

func (r *Repl) startScanner(in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)
	for {
		out.Write([]byte(r.Prompt))
		if !scanner.Scan() {
			out.Write([]byte("Mirupafshim!\n"))
			return
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == exitCommand {
			out.Write([]byte("Mirupafshim!\n"))
			return
		}

		r.evalLine(out, line)
	}
}

// evalLine parses and evaluates one line of input against the session's
// persistent Environment, printing parse errors or the resulting value.
func (r *Repl) evalLine(out io.Writer, line string) {
	l := lexer.New(line)
	p := parser.New(l)
	program := p.ParseProgram()

	if errs := p.Errors(); len(errs) > 0 {
		printParserErrors(out, errs)
		return
	}

	result := eval.Eval(program, r.env)
	if result == nil {
		return
	}

	if result.Type() == object.ERROR_OBJ {
		redColor.Fprintf(out, "%s\n", result.Inspect())
		return
	}

	yellowColor.Fprintf(out, "%s\n", result.Inspect())
}

func printParserErrors(out io.Writer, errors []string) {
	redColor.Fprintln(out, "U ndesh(en) gabim(e) gjatë analizimit:")
	for _, msg := range errors {
		redColor.Fprintf(out, "\t%s\n", msg)
	}
}
