package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"bigcalc/internal/bignum"
	"bigcalc/internal/calc"
	"bigcalc/internal/trace"
)

// maxArgUsage documents the --max-arg flag shared by every command that
// evaluates factorials, sequences or powers.
const maxArgUsage = "largest index or exponent accepted by !, fib, catalan and ^ (0 = default, negative disables)"

// parseIndex parses a machine-sized command argument no larger than limit.
func parseIndex(arg string, limit int) (int, error) {
	x, err := bignum.Parse(arg)
	if err != nil {
		return 0, err
	}
	return calc.Argument(x, limit)
}

// computeFunc computes a command's value from its arguments. limit is the
// resolved --max-arg bound, 0 when unbounded.
type computeFunc func(args []string, limit int) (bignum.BigInt, error)

// computeCmd builds a command printing the value returned by compute.
// Bounded commands get a --max-arg flag.
func computeCmd(c *cli, use, short string, nargs int, bounded bool, compute computeFunc) *cobra.Command {
	var maxArg int
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(nargs),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, span := trace.Start(cmd.Context(), trace.ScopeExpr, cmd.Name())
			end := c.timer.Begin(cmd.Name())
			v, err := compute(args, calc.ResolveMaxArgument(maxArg))
			if err != nil {
				end("failed")
				span.WithExtra("error", err.Error()).End("")
				return fmt.Errorf("%s: %w", cmd.Name(), err)
			}
			end(fmt.Sprintf("%d chunks", v.Len()))
			span.WithExtra("chunks", fmt.Sprint(v.Len())).End("")
			fmt.Fprintln(cmd.OutOrStdout(), v)
			return nil
		},
	}
	if bounded {
		cmd.Flags().IntVar(&maxArg, "max-arg", 0, maxArgUsage)
	}
	return cmd
}

func indexFunc(f func(int) (bignum.BigInt, error)) computeFunc {
	return func(args []string, limit int) (bignum.BigInt, error) {
		n, err := parseIndex(args[0], limit)
		if err != nil {
			return bignum.BigInt{}, err
		}
		return f(n)
	}
}

func newFactCmd(c *cli) *cobra.Command {
	return computeCmd(c, "fact N", "Print N!", 1, true, indexFunc(bignum.Factorial))
}

func newFibCmd(c *cli) *cobra.Command {
	return computeCmd(c, "fib N", "Print the Nth Fibonacci number (fib 0 = 0)", 1, true, indexFunc(bignum.Fibonacci))
}

func newCatalanCmd(c *cli) *cobra.Command {
	return computeCmd(c, "catalan N", "Print the Nth Catalan number", 1, true, indexFunc(bignum.Catalan))
}

func newPowCmd(c *cli) *cobra.Command {
	return computeCmd(c, "pow BASE EXP", "Print BASE raised to EXP (pow 0 0 = 1)", 2, true, func(args []string, limit int) (bignum.BigInt, error) {
		base, err := bignum.Parse(args[0])
		if err != nil {
			return bignum.BigInt{}, err
		}
		exp, err := bignum.Parse(args[1])
		if err != nil {
			return bignum.BigInt{}, err
		}
		if _, err := calc.Argument(exp, limit); err != nil {
			return bignum.BigInt{}, err
		}
		return bignum.Power(base, exp)
	})
}

func newSqrtCmd(c *cli) *cobra.Command {
	return computeCmd(c, "sqrt N", "Print the integer square root of N", 1, false, func(args []string, _ int) (bignum.BigInt, error) {
		n, err := bignum.Parse(args[0])
		if err != nil {
			return bignum.BigInt{}, err
		}
		return bignum.Sqrt(n)
	})
}

func newCmpCmd(c *cli) *cobra.Command {
	return computeCmd(c, "cmp A B", "Print -1, 0 or 1 as A is less than, equal to or greater than B", 2, false, func(args []string, _ int) (bignum.BigInt, error) {
		a, err := bignum.Parse(args[0])
		if err != nil {
			return bignum.BigInt{}, err
		}
		b, err := bignum.Parse(args[1])
		if err != nil {
			return bignum.BigInt{}, err
		}
		return bignum.New(int64(a.Cmp(b))), nil
	})
}
