// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Supported database types
const (
	TypeSQLite   = "sqlite"
	TypePostgres = "postgres"
)

// Open connects to the baseline store and verifies the connection.
func Open(dbType, url string) (*sql.DB, error) {
	var driver string
	switch dbType {
	case TypeSQLite, "":
		driver = "sqlite"
	case TypePostgres:
		driver = "postgres"
	default:
		return nil, fmt.Errorf("unsupported database type %q", dbType)
	}

	conn, err := sql.Open(driver, url)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// In-memory sqlite gives every connection its own database
	if driver == "sqlite" && (url == ":memory:" || url == "file::memory:?cache=shared") {
		conn.SetMaxOpenConns(1)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return conn, nil
}

// CreateSchema creates all tables needed for the baseline store.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Candidate slot labels
CREATE TABLE IF NOT EXISTS candidate (
    slot TEXT PRIMARY KEY CHECK (slot IN ('a', 'b', 'other')),
    label TEXT NOT NULL
);

-- Categories
CREATE TABLE IF NOT EXISTS category (
    name TEXT PRIMARY KEY,
    ord INTEGER NOT NULL
);

-- Groups within a category
CREATE TABLE IF NOT EXISTS demographic_group (
    category TEXT NOT NULL REFERENCES category(name) ON DELETE CASCADE,
    name TEXT NOT NULL,
    ord INTEGER NOT NULL,
    share DOUBLE PRECISION NOT NULL CHECK (share >= 0),
    support_a DOUBLE PRECISION NOT NULL CHECK (support_a >= 0 AND support_a <= 100),
    support_b DOUBLE PRECISION NOT NULL CHECK (support_b >= 0 AND support_b <= 100),
    support_other DOUBLE PRECISION NOT NULL CHECK (support_other >= 0 AND support_other <= 100),
    PRIMARY KEY (category, name)
);

CREATE INDEX IF NOT EXISTS idx_demographic_group_category ON demographic_group(category);
`
