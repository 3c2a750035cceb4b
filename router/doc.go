// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the electorate API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(baseline, cfg)

# Endpoints

Health:

	GET /health

Baseline data:

	GET /categories        - Category names, groups and candidates
	GET /categories/{name} - Baseline distribution for one category

Simulation (rate limited by cfg.RateLimit):

	POST /simulate - Run the turnout, swing and aggregation pipeline

Everything except /health and / is wrapped in request logging.
*/
package router
