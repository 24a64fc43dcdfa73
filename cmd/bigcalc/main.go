package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"bigcalc/internal/version"
)

// main builds the command tree, runs it and exits with status 1 on error.
func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	c := &cli{}
	root := newRootCmd(c)
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	c.finish(err, stderr)
	if err != nil {
		errorColor.Fprint(stderr, "error: ")
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}

var errorColor = color.New(color.FgRed, color.Bold)

func newRootCmd(c *cli) *cobra.Command {
	root := &cobra.Command{
		Use:   "bigcalc",
		Short: "Arbitrary-precision integer calculator",
		Long: `bigcalc evaluates integer expressions of any size.

Expressions use reverse Polish notation:

  bigcalc eval 2 100 ^          # 1267650600228229401496703205376
  bigcalc eval "30 ! 28 ! /"    # 870`,
		Version:           version.Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
	}

	root.AddCommand(newEvalCmd(c))
	root.AddCommand(newReplCmd(c))
	root.AddCommand(newBatchCmd(c))
	root.AddCommand(newFactCmd(c), newFibCmd(c), newCatalanCmd(c))
	root.AddCommand(newPowCmd(c), newSqrtCmd(c), newCmpCmd(c))
	root.AddCommand(newInitCmd(c))
	root.AddCommand(newCacheCmd(c))
	root.AddCommand(newVersionCmd())

	flags := root.PersistentFlags()
	flags.String("config", "", "path to bigcalc.toml (default: search upward from the working directory)")
	flags.String("color", "auto", "colorize output (auto|on|off)")
	flags.Bool("quiet", false, "suppress non-essential output")
	flags.Bool("timings", false, "print phase timings to stderr")

	flags.String("trace", "", "trace output file (- for stderr)")
	flags.String("trace-level", "", "trace level (off|error|command|expr|debug)")
	flags.String("trace-mode", "", "trace storage (stream|ring|both)")
	flags.Int("trace-ring-size", 0, "number of events kept in ring mode")
	flags.Duration("trace-heartbeat", 0, "heartbeat interval for long computations (0 disables)")

	flags.String("cpu-profile", "", "write a CPU profile to file")
	flags.String("mem-profile", "", "write a heap profile to file")
	flags.String("runtime-trace", "", "write a Go runtime trace to file")

	return root
}

// isTerminal reports whether r is an interactive terminal.
func isTerminal(r any) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
