// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package simulator implements the what-if pipeline: turnout renormalization,
swing redistribution and share-weighted aggregation.

# Pipeline

Run composes the stages in a fixed order:

	baseline → AdjustTurnout → ApplySwing → Aggregate

	out, err := simulator.Run(category, turnoutShifts, swingShifts)

Each stage returns a new Distribution; inputs are never mutated.

# Turnout

AdjustTurnout adds each group's delta to its share, floors at zero and
rescales all shares to sum to 100.

# Swing

ApplySwing moves support from B to A by the group's swing, clamps both to
[0, 100], then rescales A, B and Other to sum to 100. Groups with no swing
pass through untouched.

# Errors

  - *DegenerateDistributionError: a renormalization total was not positive
  - *InvalidShiftError: Run rejected a shift (unknown group, non-finite,
    turnout outside ±10, swing outside ±20)

The stage functions themselves do not range-check shifts.
*/
package simulator
