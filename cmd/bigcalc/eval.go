package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"bigcalc/internal/calc"
)

func newEvalCmd(c *cli) *cobra.Command {
	var maxArg int
	cmd := &cobra.Command{
		Use:   "eval EXPR...",
		Short: "Evaluate an RPN expression",
		Long: `Evaluate a reverse Polish notation expression and print its value.

Arguments are joined with spaces, so "bigcalc eval 2 3 +" and
"bigcalc eval '2 3 +'" are equivalent. A single "-" reads the expression
from standard input.

Run "bigcalc repl" and type :help for the list of operators.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			expr := strings.Join(args, " ")
			if len(args) == 1 && args[0] == "-" {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("failed to read expression: %w", err)
				}
				expr = string(data)
			}

			end := c.timer.Begin("eval")
			m := &calc.Machine{MaxArgument: calc.ResolveMaxArgument(maxArg)}
			v, err := m.Eval(cmd.Context(), expr)
			if err != nil {
				end("failed")
				return err
			}
			end(fmt.Sprintf("%d chunks", v.Len()))
			fmt.Fprintln(cmd.OutOrStdout(), v)
			return nil
		},
	}
	cmd.Flags().IntVar(&maxArg, "max-arg", 0, maxArgUsage)
	return cmd
}
