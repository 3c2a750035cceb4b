// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package simulator

import (
	"github.com/danielhkuo/electorate/models"
)

// ApplySwing moves support from candidate B to candidate A within each group
// that has a nonzero swing, then renormalizes that group's split to 100.
//
// Groups without a swing are copied exactly; they are not renormalized.
// Other is never shifted directly but is rescaled with A and B. Shares are
// left alone.
func ApplySwing(d models.Distribution, shifts models.ShiftMap) (models.Distribution, error) {
	adjusted := make(models.Distribution, len(d))

	for i, g := range d {
		adjusted[i] = g

		swing := shifts[g.Name]
		if swing == 0 {
			continue
		}

		a := clamp(g.SupportA+swing, 0, 100)
		b := clamp(g.SupportB-swing, 0, 100)
		other := g.SupportOther

		total := a + b + other
		if total <= 0 {
			return nil, &DegenerateDistributionError{Stage: StageSwing, Group: g.Name, Total: total}
		}

		adjusted[i].SupportA = a / total * 100
		adjusted[i].SupportB = b / total * 100
		adjusted[i].SupportOther = other / total * 100
	}

	return adjusted, nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
