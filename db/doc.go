// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db stores the baseline dataset in SQLite or PostgreSQL.

Only the read-only baseline lives here; simulations are never persisted.

# Connecting

Open picks the driver from the database type:

	conn, err := db.Open(db.TypeSQLite, "electorate.db")
	conn, err := db.Open(db.TypePostgres, "postgres://...")

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - candidate: label for each candidate slot (a, b, other)
  - category: category names with display order
  - demographic_group: share and support split per group, with display order

# Seeding and Loading

	baseline, seeded, err := db.EnsureBaseline(conn, dataset.Default())

EnsureBaseline seeds an empty store, then loads and validates it. seeded is
false when the store already held a baseline and the fallback was ignored.
Percentages are stored as DOUBLE PRECISION so values round-trip exactly on
both drivers.
SeedBaseline replaces the stored baseline; LoadBaseline returns
ErrNoBaseline when nothing is stored.
*/
package db
