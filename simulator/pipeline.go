// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package simulator

import (
	"math"
	"sort"

	"github.com/danielhkuo/electorate/models"
)

// Accepted shift ranges, in percentage points
const (
	MaxTurnoutShift = 10.0
	MaxSwingShift   = 20.0
)

// Outcome holds the derived snapshots of one pipeline run.
type Outcome struct {
	TurnoutAdjusted models.Distribution
	Final           models.Distribution
	Result          models.AggregateResult
}

// Run validates the shifts against the category, then applies turnout,
// swing and aggregation in that order. Stage errors are returned as-is.
//
// Run holds no state; concurrent calls are safe as long as callers do not
// mutate the inputs while it runs.
func Run(c models.Category, turnout, swing models.ShiftMap) (Outcome, error) {
	if err := ValidateShifts(c, turnout, swing); err != nil {
		return Outcome{}, err
	}

	turnoutAdjusted, err := AdjustTurnout(c.Baseline, turnout)
	if err != nil {
		return Outcome{}, err
	}

	final, err := ApplySwing(turnoutAdjusted, swing)
	if err != nil {
		return Outcome{}, err
	}

	return Outcome{
		TurnoutAdjusted: turnoutAdjusted,
		Final:           final,
		Result:          Aggregate(final),
	}, nil
}

// ValidateShifts rejects shifts that are non-finite, out of range, or keyed
// by a group the category does not have. Turnout is checked before swing
// and keys are visited in sorted order so the reported error is stable.
func ValidateShifts(c models.Category, turnout, swing models.ShiftMap) error {
	if err := validateShiftMap(c.Baseline, ShiftTurnout, turnout, MaxTurnoutShift); err != nil {
		return err
	}
	return validateShiftMap(c.Baseline, ShiftSwing, swing, MaxSwingShift)
}

func validateShiftMap(d models.Distribution, kind string, shifts models.ShiftMap, limit float64) error {
	keys := make([]string, 0, len(shifts))
	for k := range shifts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, group := range keys {
		v := shifts[group]
		if _, ok := d.Get(group); !ok {
			return &InvalidShiftError{Kind: kind, Group: group, Value: v, Reason: "unknown group"}
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return &InvalidShiftError{Kind: kind, Group: group, Value: v, Reason: "not a finite number"}
		}
		if v < -limit || v > limit {
			return &InvalidShiftError{Kind: kind, Group: group, Value: v, Reason: "out of range"}
		}
	}
	return nil
}
