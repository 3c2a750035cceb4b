// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package dataset holds the baseline electorate: categories of demographic
groups, each with a share of the electorate and a candidate support split.

# Bundled Data

Default returns the exit-poll table with three categories:

  - gender: Men, Women, Nonbinary/Other
  - race: White, Black, Latino, Other
  - education: High school or less, Some college, College grad, Postgrad

Construct it once at startup and pass the *Baseline around:

	baseline := dataset.Default()
	gender, err := baseline.Category("gender")

# Files

LoadFile reads the same layout from YAML or JSON:

	candidates: {a: Harris, b: Trump, other: Other}
	categories:
	  - name: gender
	    groups:
	      - {name: Men, share: 45, support_a: 43, support_b: 55, support_other: 2}

# Validation

New rejects empty or duplicate names, negative shares, supports outside
[0, 100], shares that do not sum to 100 and support splits more than
SupportTolerance points from 100.
*/
package dataset
