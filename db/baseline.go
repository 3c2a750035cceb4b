// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/danielhkuo/electorate/dataset"
	"github.com/danielhkuo/electorate/models"
)

// ErrNoBaseline is returned when the store holds no categories.
var ErrNoBaseline = errors.New("no baseline stored")

// SeedBaseline replaces the stored baseline with b in one transaction.
func SeedBaseline(db *sql.DB, b *dataset.Baseline) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, stmt := range []string{
		`DELETE FROM demographic_group`,
		`DELETE FROM category`,
		`DELETE FROM candidate`,
	} {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("failed to clear baseline: %w", err)
		}
	}

	candidates := b.Candidates()
	for _, c := range []struct{ slot, label string }{
		{models.SlotA, candidates.A},
		{models.SlotB, candidates.B},
		{models.SlotOther, candidates.Other},
	} {
		_, err := tx.Exec(`
			INSERT INTO candidate (slot, label) VALUES ($1, $2)
		`, c.slot, c.label)
		if err != nil {
			return fmt.Errorf("failed to insert candidate %q: %w", c.slot, err)
		}
	}

	for i, c := range b.Categories() {
		_, err := tx.Exec(`
			INSERT INTO category (name, ord) VALUES ($1, $2)
		`, c.Name, i)
		if err != nil {
			return fmt.Errorf("failed to insert category %q: %w", c.Name, err)
		}

		for j, g := range c.Baseline {
			_, err := tx.Exec(`
				INSERT INTO demographic_group (category, name, ord, share, support_a, support_b, support_other)
				VALUES ($1, $2, $3, $4, $5, $6, $7)
			`, c.Name, g.Name, j, g.Share, g.SupportA, g.SupportB, g.SupportOther)
			if err != nil {
				return fmt.Errorf("failed to insert group %q/%q: %w", c.Name, g.Name, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit baseline: %w", err)
	}
	return nil
}

// LoadBaseline reads and validates the stored baseline.
func LoadBaseline(db *sql.DB) (*dataset.Baseline, error) {
	candidates, err := loadCandidates(db)
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(`
		SELECT c.name, g.name, g.share, g.support_a, g.support_b, g.support_other
		FROM category c
		JOIN demographic_group g ON g.category = c.name
		ORDER BY c.ord, g.ord
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query baseline: %w", err)
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var category string
		var g models.Group
		if err := rows.Scan(&category, &g.Name, &g.Share, &g.SupportA, &g.SupportB, &g.SupportOther); err != nil {
			return nil, fmt.Errorf("failed to scan group: %w", err)
		}

		if n := len(categories); n == 0 || categories[n-1].Name != category {
			categories = append(categories, models.Category{Name: category})
		}
		last := &categories[len(categories)-1]
		last.Baseline = append(last.Baseline, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read baseline: %w", err)
	}

	if len(categories) == 0 {
		return nil, ErrNoBaseline
	}

	return dataset.New(candidates, categories...)
}

func loadCandidates(db *sql.DB) (models.Candidates, error) {
	rows, err := db.Query(`SELECT slot, label FROM candidate`)
	if err != nil {
		return models.Candidates{}, fmt.Errorf("failed to query candidates: %w", err)
	}
	defer rows.Close()

	candidates := dataset.DefaultCandidates
	for rows.Next() {
		var slot, label string
		if err := rows.Scan(&slot, &label); err != nil {
			return models.Candidates{}, fmt.Errorf("failed to scan candidate: %w", err)
		}
		switch slot {
		case models.SlotA:
			candidates.A = label
		case models.SlotB:
			candidates.B = label
		case models.SlotOther:
			candidates.Other = label
		}
	}
	return candidates, rows.Err()
}

// EnsureBaseline seeds the store with fallback when it is empty, then
// loads whatever the store holds. seeded reports whether fallback was written.
func EnsureBaseline(db *sql.DB, fallback *dataset.Baseline) (baseline *dataset.Baseline, seeded bool, err error) {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM category`).Scan(&count); err != nil {
		return nil, false, fmt.Errorf("failed to count categories: %w", err)
	}

	if count == 0 {
		if err := SeedBaseline(db, fallback); err != nil {
			return nil, false, err
		}
		seeded = true
	}

	baseline, err = LoadBaseline(db)
	if err != nil {
		return nil, false, err
	}
	return baseline, seeded, nil
}
