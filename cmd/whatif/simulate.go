// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/danielhkuo/electorate/simulator"
)

func newSimulateCmd(opts *options) *cobra.Command {
	var (
		category string
		turnout  []string
		swing    []string
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run one scenario",
		Example: `  whatif simulate -c gender --turnout Women=5 --swing Men=-2.5
  whatif simulate -c education --swing "Some college=4" --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			turnoutShifts, err := parseShifts("turnout", turnout)
			if err != nil {
				return err
			}
			swingShifts, err := parseShifts("swing", swing)
			if err != nil {
				return err
			}

			baseline, err := opts.baseline()
			if err != nil {
				return err
			}
			c, err := baseline.Category(category)
			if err != nil {
				return err
			}

			out, err := simulator.Run(c, turnoutShifts, swingShifts)
			if err != nil {
				return err
			}
			slog.Debug("simulation complete", "category", category, "leader", out.Result.Leader())

			report := simulator.Report(c, baseline.Candidates(), out)
			if opts.asJSON {
				return writeJSON(cmd.OutOrStdout(), report)
			}
			return writeReport(cmd.OutOrStdout(), report, turnoutShifts, swingShifts)
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "category to simulate")
	cmd.Flags().StringArrayVar(&turnout, "turnout", nil, "turnout shift as GROUP=POINTS (repeatable)")
	cmd.Flags().StringArrayVar(&swing, "swing", nil, "swing toward A as GROUP=POINTS (repeatable)")
	_ = cmd.MarkFlagRequired("category")

	return cmd
}
