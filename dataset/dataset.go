// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package dataset

import (
	"errors"
	"fmt"
	"math"

	"github.com/danielhkuo/electorate/models"
)

var (
	ErrUnknownCategory = errors.New("unknown category")
	ErrInvalidBaseline = errors.New("invalid baseline")
)

// ShareTolerance is how far a category's shares may sum from 100.
const ShareTolerance = 1e-6

// SupportTolerance is how far a group's support split may sum from 100.
// Published exit polls are rounded to whole points, so splits of 99 or 101
// are common.
const SupportTolerance = 1.0

// Baseline is a validated, read-only set of categories. Accessors return
// copies so callers cannot change it.
type Baseline struct {
	candidates models.Candidates
	categories []models.Category
}

// New validates the categories and returns a Baseline holding private
// copies of them.
func New(candidates models.Candidates, categories ...models.Category) (*Baseline, error) {
	if len(categories) == 0 {
		return nil, fmt.Errorf("%w: no categories", ErrInvalidBaseline)
	}

	seen := make(map[string]bool, len(categories))
	owned := make([]models.Category, len(categories))
	for i, c := range categories {
		if c.Name == "" {
			return nil, fmt.Errorf("%w: category %d has no name", ErrInvalidBaseline, i)
		}
		if seen[c.Name] {
			return nil, fmt.Errorf("%w: duplicate category %q", ErrInvalidBaseline, c.Name)
		}
		seen[c.Name] = true

		if err := validateDistribution(c.Baseline); err != nil {
			return nil, fmt.Errorf("%w: category %q: %v", ErrInvalidBaseline, c.Name, err)
		}

		owned[i] = models.Category{Name: c.Name, Baseline: c.Baseline.Clone()}
	}

	return &Baseline{candidates: candidates, categories: owned}, nil
}

func validateDistribution(d models.Distribution) error {
	if len(d) == 0 {
		return errors.New("no groups")
	}

	names := make(map[string]bool, len(d))
	for _, g := range d {
		if g.Name == "" {
			return errors.New("group with empty name")
		}
		if names[g.Name] {
			return fmt.Errorf("duplicate group %q", g.Name)
		}
		names[g.Name] = true

		for _, v := range []float64{g.Share, g.SupportA, g.SupportB, g.SupportOther} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("group %q has a non-finite value", g.Name)
			}
		}
		if g.Share < 0 {
			return fmt.Errorf("group %q has negative share %g", g.Name, g.Share)
		}
		for _, v := range []float64{g.SupportA, g.SupportB, g.SupportOther} {
			if v < 0 || v > 100 {
				return fmt.Errorf("group %q has support %g outside [0, 100]", g.Name, v)
			}
		}
		if total := g.SupportTotal(); math.Abs(total-100) > SupportTolerance {
			return fmt.Errorf("group %q support sums to %g", g.Name, total)
		}
	}

	if total := d.TotalShare(); math.Abs(total-100) > ShareTolerance {
		return fmt.Errorf("shares sum to %g", total)
	}
	return nil
}

// Candidates returns the candidate labels.
func (b *Baseline) Candidates() models.Candidates {
	return b.candidates
}

// Names returns category names in dataset order.
func (b *Baseline) Names() []string {
	names := make([]string, len(b.categories))
	for i, c := range b.categories {
		names[i] = c.Name
	}
	return names
}

// Category returns a copy of the named category.
func (b *Baseline) Category(name string) (models.Category, error) {
	for _, c := range b.categories {
		if c.Name == name {
			return models.Category{Name: c.Name, Baseline: c.Baseline.Clone()}, nil
		}
	}
	return models.Category{}, fmt.Errorf("%w: %q", ErrUnknownCategory, name)
}

// Categories returns copies of every category in dataset order.
func (b *Baseline) Categories() []models.Category {
	out := make([]models.Category, len(b.categories))
	for i, c := range b.categories {
		out[i] = models.Category{Name: c.Name, Baseline: c.Baseline.Clone()}
	}
	return out
}
