package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"bigcalc/internal/bignum"
	"bigcalc/internal/calc"
)

const replHelp = `Enter RPN tokens; the stack persists between lines.
  :stack   show the whole stack
  :clear   empty the stack
  :help    list operators
  :quit    leave (Ctrl-D works too)
`

func newReplCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Interactive RPN calculator",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			interactive := isTerminal(cmd.InOrStdin())
			if interactive {
				c.info(cmd.OutOrStdout(), "bigcalc repl, :help for help\n")
			}
			return runRepl(cmd, calc.NewMachine(), interactive)
		},
	}
}

func runRepl(cmd *cobra.Command, m *calc.Machine, prompt bool) error {
	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
	sc := bufio.NewScanner(cmd.InOrStdin())
	sc.Buffer(make([]byte, 0, 64*1024), bignum.MaxTokenSize)
	for {
		if prompt {
			fmt.Fprint(out, "> ")
		}
		if !sc.Scan() {
			break
		}
		line := strings.TrimSpace(sc.Text())
		switch line {
		case "":
			continue
		case ":quit", ":q":
			return nil
		case ":help":
			fmt.Fprint(out, replHelp)
			printOperators(out)
			continue
		case ":clear":
			m.Reset()
			continue
		case ":stack":
			for i, v := range m.Stack() {
				fmt.Fprintf(out, "%d: %s\n", m.Depth()-i, v)
			}
			continue
		}
		if _, err := m.Exec(cmd.Context(), line); err != nil {
			errorColor.Fprint(errOut, "error: ")
			fmt.Fprintln(errOut, err)
			if ctxErr := cmd.Context().Err(); ctxErr != nil {
				return ctxErr
			}
			continue
		}
		if stack := m.Stack(); len(stack) > 0 {
			fmt.Fprintln(out, stack[len(stack)-1])
		}
	}
	return sc.Err()
}

func printOperators(w io.Writer) {
	for _, op := range calc.Operators() {
		fmt.Fprintf(w, "  %-8s %s\n", op.Name, op.Help)
	}
}
