package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"bigcalc/internal/config"
)

func newInitCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "init [DIR]",
		Short: "Write a default bigcalc.toml",
		Long: `Write a bigcalc.toml with default settings into DIR (default: the current
directory). DIR is created if it does not exist. An existing file is never
overwritten.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := "."
			if len(args) == 1 {
				target = args[0]
			}
			if st, err := os.Stat(target); err != nil {
				if !errors.Is(err, os.ErrNotExist) {
					return err
				}
				if err := os.MkdirAll(target, 0o755); err != nil {
					return fmt.Errorf("failed to create directory %q: %w", target, err)
				}
			} else if !st.IsDir() {
				return fmt.Errorf("%q is not a directory", target)
			}

			path, err := config.WriteDefault(target)
			if err != nil {
				return err
			}
			if wd, err := os.Getwd(); err == nil {
				if rel, err := filepath.Rel(wd, path); err == nil {
					path = rel
				}
			}
			c.info(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}
}
