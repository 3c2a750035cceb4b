// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the electorate API.

# Handler Types

Each handler is a struct holding the baseline dataset:

  - CategoriesHandler: category listing and baseline detail
  - SimulateHandler: what-if pipeline runs

Handlers are created via constructor functions that accept *dataset.Baseline:

	simulateHandler := handlers.NewSimulateHandler(baseline)

# Categories

	GET /categories        → ListCategories (names, groups, candidates)
	GET /categories/{name} → GetCategory (baseline distribution)

# Simulation

	POST /simulate → Simulate

The body names a category and two sparse shift maps:

	{"category": "gender", "turnout_shifts": {"Men": -2}, "swing_shifts": {"Women": 3.5}}

The response carries the original, turnout-adjusted and final
distributions, the aggregate result, bar proportions, the leading slot
and a per-group breakdown.

# Status Codes

  - 400: invalid JSON, missing category or a rejected shift
  - 404: unknown category
  - 422: a renormalization collapsed to zero
*/
package handlers
