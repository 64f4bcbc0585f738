// Command loxi is the CLI entry point for the interpreter: a REPL when run
// with no arguments, a file runner when given exactly one script path.
package main

import (
	"bufio"
	"bytes"
	"fmt"
	"os"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/loxi-lang/loxi/internal/diag"
	"github.com/loxi-lang/loxi/pkg/eval"
)

var (
	errColor   = color.New(color.FgRed)
	replPrompt = color.New(color.FgCyan).Sprint("> ")
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:           "loxi [script]",
		Short:         "loxi runs a script file, or starts a REPL with none given",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 {
				return fmt.Errorf("usage: loxi [script]")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			diag.SetVerbose(verbose)
			if len(args) == 1 {
				return runFile(args[0])
			}
			runREPL()
			return nil
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug tracing")
	return cmd
}

// runFile reads source from path and executes it once, summarizing any
// diagnostics into a single error for the CLI's exit status while still
// printing each one in full through Errors.Fprint.
func runFile(path string) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	e := eval.New()
	errs := e.Run(string(source))
	if !errs.HasErrors() {
		return nil
	}

	errs.Fprint(os.Stderr)

	var result *multierror.Error
	for _, d := range errs.List() {
		result = multierror.Append(result, fmt.Errorf("%s: %s", d.Severity, d.Message))
	}
	return result
}

// runREPL starts an interactive loop that keeps one Evaluator (and its
// Scope) alive across lines, so variable bindings persist between inputs.
func runREPL() {
	rl, err := readline.New(replPrompt)
	if err != nil {
		// readline needs a real terminal; fall back to a plain line reader.
		runPlainREPL()
		return
	}
	defer rl.Close()

	e := eval.New()
	for {
		line, err := rl.Readline()
		if err != nil {
			break
		}
		if line == "" {
			continue
		}
		runLine(e, line)
	}
}

// runPlainREPL is the fallback loop used when stdin isn't a terminal
// readline can attach to (piped input, non-interactive test harnesses).
func runPlainREPL() {
	scanner := bufio.NewScanner(os.Stdin)
	e := eval.New()
	fmt.Print(replPrompt)
	for scanner.Scan() {
		line := scanner.Text()
		if line != "" {
			runLine(e, line)
		}
		fmt.Print(replPrompt)
	}
}

func runLine(e *eval.Evaluator, line string) {
	errs := e.Run(line)
	if errs.HasErrors() {
		var buf bytes.Buffer
		errs.Fprint(&buf)
		errColor.Print(buf.String())
	}
}
