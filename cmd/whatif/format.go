// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/electorate/models"
)

func pct(v float64) string {
	return humanize.FormatFloat("#,###.##", v) + "%"
}

func signed(v float64) string {
	s := humanize.FtoaWithDigits(v, 2)
	if v > 0 {
		s = "+" + s
	}
	return s
}

// parseShifts turns repeated GROUP=VALUE flags into a ShiftMap. The last
// '=' splits, so group names may contain one. A group may appear once.
func parseShifts(kind string, values []string) (models.ShiftMap, error) {
	shifts := models.ShiftMap{}
	for _, raw := range values {
		i := strings.LastIndex(raw, "=")
		if i <= 0 {
			return nil, fmt.Errorf("%s shift %q: want GROUP=VALUE", kind, raw)
		}
		group := strings.TrimSpace(raw[:i])
		v, err := strconv.ParseFloat(strings.TrimSpace(raw[i+1:]), 64)
		if err != nil {
			return nil, fmt.Errorf("%s shift %q: %w", kind, raw, err)
		}
		if _, dup := shifts[group]; dup {
			return nil, fmt.Errorf("%s shift for %q given more than once", kind, group)
		}
		shifts[group] = v
	}
	return shifts, nil
}

func describeShifts(shifts models.ShiftMap) string {
	if len(shifts) == 0 {
		return "none"
	}
	groups := make([]string, 0, len(shifts))
	for g := range shifts {
		groups = append(groups, g)
	}
	sort.Strings(groups)

	parts := make([]string, len(groups))
	for i, g := range groups {
		parts[i] = g + " " + signed(shifts[g])
	}
	return strings.Join(parts, ", ")
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// writeReport prints the breakdown table followed by the national result
func writeReport(w io.Writer, r models.SimulateResponse, turnout, swing models.ShiftMap) error {
	c := r.Candidates

	fmt.Fprintf(w, "%s\n", r.Category)
	fmt.Fprintf(w, "  turnout: %s\n", describeShifts(turnout))
	fmt.Fprintf(w, "  swing:   %s\n\n", describeShifts(swing))

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "GROUP\tSHARE\tADJUSTED\t%s\t%s\t%s\n", strings.ToUpper(c.A), strings.ToUpper(c.B), strings.ToUpper(c.Other))
	for _, row := range r.Breakdown {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			row.Name,
			pct(row.OriginalShare),
			pct(row.AdjustedShare),
			pct(row.After.SupportA),
			pct(row.After.SupportB),
			pct(row.After.SupportOther),
		)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\n%s %s  %s %s  %s %s  (leader: %s)\n",
		c.A, pct(r.Result.A),
		c.B, pct(r.Result.B),
		c.Other, pct(r.Result.Other),
		c.Label(r.Leader),
	)
	return nil
}
