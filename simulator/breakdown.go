// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package simulator

import (
	"math"

	"github.com/danielhkuo/electorate/models"
)

// ChangeThreshold is the smallest difference, in points, reported as a change.
const ChangeThreshold = 0.01

// Explain traces each group of the original distribution through an
// outcome: share before and after turnout, support before and after swing,
// and the group's weighted contribution to the result.
func Explain(original models.Distribution, o Outcome) []models.GroupBreakdown {
	rows := make([]models.GroupBreakdown, 0, len(original))
	for _, g := range original {
		adjusted, _ := o.TurnoutAdjusted.Get(g.Name)
		final, _ := o.Final.Get(g.Name)

		rows = append(rows, models.GroupBreakdown{
			Name:           g.Name,
			OriginalShare:  g.Share,
			AdjustedShare:  adjusted.Share,
			ShareChanged:   changed(g.Share, adjusted.Share),
			Before:         adjusted,
			After:          final,
			SupportChanged: changed(adjusted.SupportA, final.SupportA) || changed(adjusted.SupportB, final.SupportB),
			Contribution:   contribution(final),
		})
	}
	return rows
}

func changed(before, after float64) bool {
	return math.Abs(after-before) > ChangeThreshold
}

// Report assembles everything a caller needs to display one run.
func Report(c models.Category, candidates models.Candidates, o Outcome) models.SimulateResponse {
	return models.SimulateResponse{
		Category:        c.Name,
		Candidates:      candidates,
		Original:        c.Baseline,
		TurnoutAdjusted: o.TurnoutAdjusted,
		Final:           o.Final,
		Result:          o.Result,
		Proportions:     o.Result.Proportions(),
		Leader:          o.Result.Leader(),
		Breakdown:       Explain(c.Baseline, o),
	}
}
