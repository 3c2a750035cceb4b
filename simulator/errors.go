// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package simulator

import "fmt"

// Stage names used in errors
const (
	StageTurnout = "turnout"
	StageSwing   = "swing"
)

// Shift kinds used in InvalidShiftError
const (
	ShiftTurnout = "turnout"
	ShiftSwing   = "swing"
)

// DegenerateDistributionError reports a renormalization whose denominator
// was not positive. Group is empty for the turnout stage, which normalizes
// across the whole category.
type DegenerateDistributionError struct {
	Stage string
	Group string
	Total float64
}

func (e *DegenerateDistributionError) Error() string {
	if e.Group != "" {
		return fmt.Sprintf("degenerate distribution in %s stage: group %q support collapsed to %g", e.Stage, e.Group, e.Total)
	}
	return fmt.Sprintf("degenerate distribution in %s stage: total collapsed to %g", e.Stage, e.Total)
}

// InvalidShiftError reports a shift value the pipeline refuses to apply.
type InvalidShiftError struct {
	Kind   string
	Group  string
	Value  float64
	Reason string
}

func (e *InvalidShiftError) Error() string {
	return fmt.Sprintf("invalid %s shift for group %q (%g): %s", e.Kind, e.Group, e.Value, e.Reason)
}
