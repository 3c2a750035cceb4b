// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package simulator

import "github.com/danielhkuo/electorate/models"

// Aggregate computes the share-weighted totals for each candidate slot.
func Aggregate(d models.Distribution) models.AggregateResult {
	var totals models.AggregateResult
	for _, g := range d {
		totals = add(totals, contribution(g.GroupStats))
	}
	return totals
}

// contribution is one group's weighted share of each slot
func contribution(s models.GroupStats) models.AggregateResult {
	weight := s.Share / 100
	return models.AggregateResult{
		A:     weight * s.SupportA,
		B:     weight * s.SupportB,
		Other: weight * s.SupportOther,
	}
}

func add(x, y models.AggregateResult) models.AggregateResult {
	return models.AggregateResult{
		A:     x.A + y.A,
		B:     x.B + y.B,
		Other: x.Other + y.Other,
	}
}
