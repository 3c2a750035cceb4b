// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/danielhkuo/electorate/dataset"
	"github.com/danielhkuo/electorate/models"
	"github.com/danielhkuo/electorate/simulator"
)

// Scenario is one named entry in a batch file.
type Scenario struct {
	Name     string          `yaml:"name" json:"name"`
	Category string          `yaml:"category" json:"category"`
	Turnout  models.ShiftMap `yaml:"turnout" json:"turnout_shifts,omitempty"`
	Swing    models.ShiftMap `yaml:"swing" json:"swing_shifts,omitempty"`
}

type batchFile struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

type batchResult struct {
	Scenario Scenario                `json:"scenario"`
	Report   models.SimulateResponse `json:"report"`
}

func loadScenarios(path string) ([]Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenarios: %w", err)
	}

	var f batchFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse scenarios: %w", err)
	}
	if len(f.Scenarios) == 0 {
		return nil, fmt.Errorf("%s: no scenarios", path)
	}
	for i := range f.Scenarios {
		if f.Scenarios[i].Name == "" {
			f.Scenarios[i].Name = fmt.Sprintf("scenario-%d", i+1)
		}
	}
	return f.Scenarios, nil
}

// runBatch runs every scenario concurrently against the same baseline.
// Results keep file order.
func runBatch(cmd *cobra.Command, baseline *dataset.Baseline, scenarios []Scenario) ([]batchResult, error) {
	results := make([]batchResult, len(scenarios))
	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(8)

	for i, sc := range scenarios {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			c, err := baseline.Category(sc.Category)
			if err != nil {
				return fmt.Errorf("scenario %q: %w", sc.Name, err)
			}
			out, err := simulator.Run(c, sc.Turnout, sc.Swing)
			if err != nil {
				return fmt.Errorf("scenario %q: %w", sc.Name, err)
			}

			slog.Debug("scenario complete", "scenario", sc.Name, "leader", out.Result.Leader())
			results[i] = batchResult{
				Scenario: sc,
				Report:   simulator.Report(c, baseline.Candidates(), out),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func newBatchCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "batch FILE",
		Short: "Run every scenario in a YAML file",
		Example: `  # scenarios.yaml
  scenarios:
    - name: women surge
      category: gender
      turnout: {Women: 5}
    - name: latino swing
      category: race
      swing: {Latino: -6}`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scenarios, err := loadScenarios(args[0])
			if err != nil {
				return err
			}
			baseline, err := opts.baseline()
			if err != nil {
				return err
			}

			results, err := runBatch(cmd, baseline, scenarios)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if opts.asJSON {
				return writeJSON(out, results)
			}
			for i, r := range results {
				if i > 0 {
					fmt.Fprintln(out)
				}
				fmt.Fprintf(out, "== %s ==\n", r.Scenario.Name)
				if err := writeReport(out, r.Report, r.Scenario.Turnout, r.Scenario.Swing); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
