// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the domain and wire types shared by the simulator,
the HTTP handlers and the whatif command.

# Domain Types

  - GroupStats: share of the electorate plus support for A, B and Other,
    all in percentage points
  - Group, Distribution: named groups in a fixed order
  - ShiftMap: group name to shift in points
  - Category: a named baseline distribution
  - Candidates: display labels for the slots a, b and other
  - AggregateResult: share-weighted national support

# Request Types

  - SimulateRequest: category, turnout_shifts, swing_shifts

# Response Types

  - CategorySummary: name, groups, candidates
  - CategoryResponse: category, candidates
  - SimulateResponse: every pipeline stage, result, proportions, leader
    and a per-group breakdown
  - ErrorResponse: error, message

# Constants

Candidate slots:

	SlotA     = "a"
	SlotB     = "b"
	SlotOther = "other"
*/
package models
