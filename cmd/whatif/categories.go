// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/danielhkuo/electorate/models"
)

func newCategoriesCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List categories and their groups",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			baseline, err := opts.baseline()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if opts.asJSON {
				var summaries []models.CategorySummary
				for _, c := range baseline.Categories() {
					summaries = append(summaries, models.CategorySummary{
						Name:       c.Name,
						Groups:     c.Baseline.Names(),
						Candidates: baseline.Candidates(),
					})
				}
				return writeJSON(out, summaries)
			}

			for _, c := range baseline.Categories() {
				fmt.Fprintf(out, "%s: %s\n", c.Name, strings.Join(c.Baseline.Names(), ", "))
			}
			return nil
		},
	}
}
