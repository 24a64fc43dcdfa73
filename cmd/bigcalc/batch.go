package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"bigcalc/internal/batch"
	"bigcalc/internal/cache"
)

type batchOptions struct {
	jobs    int
	ui      string
	noCache bool
	maxArg  int
}

func newBatchCmd(c *cli) *cobra.Command {
	var opts batchOptions
	cmd := &cobra.Command{
		Use:   "batch FILE",
		Short: "Evaluate one expression per line of FILE in parallel",
		Long: `Evaluate every line of FILE ("-" for standard input) as an RPN expression.
Blank lines and lines starting with '#' are skipped. Results are printed in
input order; failing lines are reported on stderr and make the command fail
after all lines were evaluated.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(cmd, c, args[0], opts)
		},
	}
	cmd.Flags().IntVarP(&opts.jobs, "jobs", "j", 0, "parallel workers (default from config, 0 = GOMAXPROCS)")
	cmd.Flags().StringVar(&opts.ui, "ui", "", "progress view (auto|on|off, default from config)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "do not read or write the result cache")
	cmd.Flags().IntVar(&opts.maxArg, "max-arg", 0, maxArgUsage)
	return cmd
}

func runBatch(cmd *cobra.Command, c *cli, path string, opts batchOptions) error {
	endRead := c.timer.Begin("read")
	items, err := readBatchFile(cmd.InOrStdin(), path)
	if err != nil {
		return err
	}
	endRead(fmt.Sprintf("%d expressions", len(items)))

	req := &batch.Request{Items: items, Jobs: c.cfg.Batch.Jobs, MaxArgument: opts.maxArg}
	if cmd.Flags().Changed("jobs") {
		req.Jobs = opts.jobs
	}
	if c.cfg.Cache.Enabled && !opts.noCache {
		store, err := cache.Open(c.cfg.Cache.Dir)
		if err != nil {
			return err
		}
		req.Cache = store
	}

	modeStr := c.cfg.Batch.UI
	if cmd.Flags().Changed("ui") {
		modeStr = opts.ui
	}
	mode, err := readUIMode(modeStr)
	if err != nil {
		return err
	}

	endEval := c.timer.Begin("evaluate")
	var res batch.Result
	if shouldUseTUI(mode, cmd.ErrOrStderr()) && len(items) > 0 {
		res, err = runBatchWithUI(cmd.Context(), "bigcalc batch", cmd.ErrOrStderr(), req)
	} else {
		res, err = batch.Run(cmd.Context(), req)
	}
	endEval(fmt.Sprintf("%d failed, %d cached", res.Failed, res.Hits))
	if err != nil {
		return err
	}

	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
	for _, o := range res.Outcomes {
		if o.Err != nil {
			errorColor.Fprintf(errOut, "line %d: ", o.Line)
			fmt.Fprintln(errOut, o.Err)
			continue
		}
		fmt.Fprintln(out, o.Value)
	}
	c.info(errOut, "%d expressions, %d failed, %d from cache\n", len(res.Outcomes), res.Failed, res.Hits)
	if res.Failed > 0 {
		return fmt.Errorf("%d of %d expressions failed", res.Failed, len(res.Outcomes))
	}
	return nil
}

func readBatchFile(stdin io.Reader, path string) ([]batch.Item, error) {
	if path == "-" {
		return batch.ReadItems(stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return batch.ReadItems(f)
}
