package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"bigcalc/internal/cache"
)

func newCacheCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect or clear the result cache",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Remove every cached result",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := cache.Open(c.cfg.Cache.Dir)
			if err != nil {
				return err
			}
			n, err := store.Len()
			if err != nil {
				return err
			}
			if err := store.DropAll(); err != nil {
				return err
			}
			c.info(cmd.OutOrStdout(), "removed %d cached results from %s\n", n, store.Dir())
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "stats",
		Short: "Print the number of cached results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := cache.Open(c.cfg.Cache.Dir)
			if err != nil {
				return err
			}
			n, err := store.Len()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d cached results in %s\n", n, store.Dir())
			return nil
		},
	})
	return cmd
}
