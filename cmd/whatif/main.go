// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Command whatif runs what-if electorate simulations from the command line.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/danielhkuo/electorate/dataset"
)

// options shared by every subcommand
type options struct {
	datasetFile string
	asJSON      bool
	verbose     bool
}

func (o *options) baseline() (*dataset.Baseline, error) {
	if o.datasetFile == "" {
		return dataset.Default(), nil
	}
	b, err := dataset.LoadFile(o.datasetFile)
	if err != nil {
		return nil, err
	}
	slog.Debug("loaded dataset file", "file", o.datasetFile, "categories", b.Names())
	return b, nil
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "whatif",
		Short: "What-if estimator for a national popular vote",
		Long: `whatif shifts turnout and candidate swing for demographic groups and
recomputes the share-weighted national result.

Turnout shifts are percentage points added to a group's share of the
electorate (±10). Swing moves support from B to A within a group (±20).`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelWarn
			if opts.verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
			return nil
		},
	}

	root.PersistentFlags().StringVar(&opts.datasetFile, "dataset", "", "baseline dataset file (.yaml, .yml or .json)")
	root.PersistentFlags().BoolVar(&opts.asJSON, "json", false, "print JSON instead of text")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging to stderr")

	root.AddCommand(
		newCategoriesCmd(opts),
		newSimulateCmd(opts),
		newBatchCmd(opts),
	)

	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
