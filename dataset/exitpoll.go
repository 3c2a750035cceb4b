// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package dataset

import "github.com/danielhkuo/electorate/models"

// DefaultCandidates labels the slots of the bundled exit-poll table.
var DefaultCandidates = models.Candidates{A: "Harris", B: "Trump", Other: "Other"}

func group(name string, share, a, b, other float64) models.Group {
	return models.Group{
		Name:       name,
		GroupStats: models.GroupStats{Share: share, SupportA: a, SupportB: b, SupportOther: other},
	}
}

// exitPollCategories builds the bundled table fresh on every call.
func exitPollCategories() []models.Category {
	return []models.Category{
		{
			Name: "gender",
			Baseline: models.Distribution{
				group("Men", 45, 43, 55, 2),
				group("Women", 54, 52, 46, 1),
				group("Nonbinary/Other", 1, 72, 21, 6),
			},
		},
		{
			Name: "race",
			Baseline: models.Distribution{
				group("White", 75, 42, 56, 1),
				group("Black", 10, 83, 16, 1),
				group("Latino", 10, 55, 43, 2),
				group("Other", 5, 55, 41, 3),
			},
		},
		{
			Name: "education",
			Baseline: models.Distribution{
				group("High school or less", 27, 39, 59, 1),
				group("Some college", 31, 46, 53, 1),
				group("College grad", 26, 53, 45, 2),
				group("Postgrad", 16, 61, 37, 1),
			},
		},
	}
}

// Default returns the bundled exit-poll baseline.
func Default() *Baseline {
	b, err := New(DefaultCandidates, exitPollCategories()...)
	if err != nil {
		// The literal table is fixed; failing here is a programming error.
		panic(err)
	}
	return b
}
