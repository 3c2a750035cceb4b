// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package simulator

import (
	"math"

	"github.com/danielhkuo/electorate/models"
)

// AdjustTurnout applies per-group share deltas and renormalizes shares to
// sum to 100. Support splits are copied unchanged.
//
// Shares are floored at zero before summing. If every share collapses the
// result is a *DegenerateDistributionError.
func AdjustTurnout(original models.Distribution, shifts models.ShiftMap) (models.Distribution, error) {
	adjusted := make(models.Distribution, len(original))

	total := 0.0
	for i, g := range original {
		raw := math.Max(0, g.Share+shifts[g.Name])
		adjusted[i] = g
		adjusted[i].Share = raw
		total += raw
	}

	if total <= 0 {
		return nil, &DegenerateDistributionError{Stage: StageTurnout, Total: total}
	}

	for i := range adjusted {
		adjusted[i].Share = adjusted[i].Share / total * 100
	}

	return adjusted, nil
}
