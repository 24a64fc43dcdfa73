package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"bigcalc/internal/config"
	"bigcalc/internal/observ"
	"bigcalc/internal/trace"
)

// cli carries state shared by all commands of one invocation.
type cli struct {
	cfg      config.Config
	cfgPath  string
	quiet    bool
	timings  bool
	timer    *observ.Timer
	tracer   trace.Tracer
	span     *trace.Span
	cleanups []func()
}

// setup runs before every command: it loads the configuration, applies flag
// overrides and starts tracing and profiling.
func (c *cli) setup(cmd *cobra.Command, _ []string) error {
	c.timer = observ.NewTimer()
	c.tracer = trace.Nop

	endConfig := c.timer.Begin("config")
	if err := c.loadConfig(cmd); err != nil {
		return err
	}
	endConfig(c.cfgPath)

	flags := cmd.Root().PersistentFlags()
	if flags.Changed("quiet") {
		c.quiet, _ = flags.GetBool("quiet")
	} else {
		c.quiet = c.cfg.Output.Quiet
	}
	c.timings, _ = flags.GetBool("timings")

	colorMode := c.cfg.Output.Color
	if flags.Changed("color") {
		colorMode, _ = flags.GetString("color")
	}
	enabled, err := colorEnabled(colorMode, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	color.NoColor = !enabled

	cleanupTrace, err := setupTracing(cmd, c)
	if err != nil {
		return err
	}
	c.cleanups = append(c.cleanups, cleanupTrace)

	cleanupProf, err := setupProfiling(cmd)
	if err != nil {
		return err
	}
	c.cleanups = append(c.cleanups, cleanupProf)

	ctx, span := trace.Start(cmd.Context(), trace.ScopeCommand, cmd.CommandPath())
	c.span = span
	cmd.SetContext(ctx)
	return nil
}

func (c *cli) loadConfig(cmd *cobra.Command) error {
	path, _ := cmd.Root().PersistentFlags().GetString("config")
	if path != "" {
		cfg, err := config.Load(path)
		if err != nil {
			return err
		}
		c.cfg, c.cfgPath = cfg, path
		return nil
	}
	cfg, found, err := config.Discover(".")
	if err != nil {
		return err
	}
	c.cfg, c.cfgPath = cfg, found
	return nil
}

// finish closes the command span, dumps buffered trace events when the
// command failed, prints timings and releases tracing and profiling.
func (c *cli) finish(err error, stderr io.Writer) {
	if c.span != nil {
		if err != nil {
			c.span.WithExtra("error", err.Error())
		}
		c.span.End("")
	}
	if err != nil && c.tracer != nil {
		if d, ok := c.tracer.(trace.Dumper); ok {
			fmt.Fprintln(stderr, "trace (most recent events):")
			if dumpErr := d.Dump(stderr, trace.FormatText); dumpErr != nil {
				fmt.Fprintf(stderr, "trace: dump error: %v\n", dumpErr)
			}
		}
	}
	if c.timings && c.timer != nil {
		fmt.Fprint(stderr, c.timer.Summary())
	}
	for i := len(c.cleanups) - 1; i >= 0; i-- {
		c.cleanups[i]()
	}
	c.cleanups = nil
}

// info prints a non-essential message unless --quiet is set.
func (c *cli) info(w io.Writer, format string, args ...any) {
	if c.quiet {
		return
	}
	fmt.Fprintf(w, format, args...)
}

func colorEnabled(mode string, out io.Writer) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", "auto":
		return isTerminal(out), nil
	case "on":
		return true, nil
	case "off":
		return false, nil
	default:
		return false, fmt.Errorf("invalid --color value %q (expected auto|on|off)", mode)
	}
}
