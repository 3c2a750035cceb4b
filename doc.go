// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the electorate API server.

electorate is a what-if estimator for a national popular vote. It takes a
baseline of demographic groups, each with a share of the electorate and a
three-way candidate split, lets callers shift turnout and swing per group,
and recomputes the weighted national result.

# Starting the Server

With no configuration the server uses the bundled exit-poll baseline:

	go run .

Or with flags:

	go run . -p 3318 -dataset baseline.yaml -rate 20

# Configuration

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_URL (-d): Baseline store; seeded on first start
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DATASET_FILE (-dataset): YAML or JSON baseline
  - RATE_LIMIT (-rate): Simulate requests per second (default: 50)

# Architecture

  - simulator: turnout, swing and aggregation pipeline
  - dataset: baseline table, validation and file loading
  - db: baseline store (SQLite or PostgreSQL)
  - handlers: HTTP request handlers (categories, simulate)
  - router: Route definitions using Go 1.22+ routing
  - middleware: Logging, rate limiting, CORS, JSON helpers
  - models: Domain and request/response types
  - cliparse: Configuration parsing

The whatif command under cmd/whatif runs the same pipeline from the
command line.
*/
package main
