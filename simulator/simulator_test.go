// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package simulator

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/electorate/dataset"
	"github.com/danielhkuo/electorate/models"
)

const tolerance = 1e-6

func genderCategory(t *testing.T) models.Category {
	t.Helper()
	c, err := dataset.Default().Category("gender")
	require.NoError(t, err)
	return c
}

// closedCategory has supports that sum to exactly 100 in every group
func closedCategory() models.Category {
	return models.Category{
		Name: "closed",
		Baseline: models.Distribution{
			{Name: "North", GroupStats: models.GroupStats{Share: 40, SupportA: 45, SupportB: 50, SupportOther: 5}},
			{Name: "South", GroupStats: models.GroupStats{Share: 35, SupportA: 38, SupportB: 60, SupportOther: 2}},
			{Name: "West", GroupStats: models.GroupStats{Share: 25, SupportA: 60, SupportB: 36, SupportOther: 4}},
		},
	}
}

func approx() cmp.Option {
	return cmpopts.EquateApprox(0, 1e-9)
}

func TestAdjustTurnout_ZeroShiftsIdempotent(t *testing.T) {
	for _, c := range dataset.Default().Categories() {
		t.Run(c.Name, func(t *testing.T) {
			for _, shifts := range []models.ShiftMap{nil, {}, {c.Baseline[0].Name: 0}} {
				adjusted, err := AdjustTurnout(c.Baseline, shifts)
				require.NoError(t, err)
				if diff := cmp.Diff(c.Baseline, adjusted, approx()); diff != "" {
					t.Errorf("zero shifts changed the distribution (-want +got):\n%s", diff)
				}
			}
		})
	}
}

func TestAdjustTurnout_SumInvariant(t *testing.T) {
	c := dataset.Default()
	race, err := c.Category("race")
	require.NoError(t, err)

	testCases := []struct {
		name   string
		shifts models.ShiftMap
	}{
		{"single increase", models.ShiftMap{"Black": 5}},
		{"single decrease", models.ShiftMap{"White": -10}},
		{"mixed", models.ShiftMap{"White": -7.5, "Latino": 4, "Other": 10}},
		{"all max", models.ShiftMap{"White": 10, "Black": 10, "Latino": 10, "Other": 10}},
		{"floor one group", models.ShiftMap{"Other": -10}},
		{"far past floor", models.ShiftMap{"Other": -500}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			adjusted, err := AdjustTurnout(race.Baseline, tc.shifts)
			require.NoError(t, err)

			assert.InDelta(t, 100, adjusted.TotalShare(), tolerance)
			for _, g := range adjusted {
				assert.GreaterOrEqual(t, g.Share, 0.0, g.Name)

				original, _ := race.Baseline.Get(g.Name)
				assert.Equal(t, original.SupportA, g.SupportA, g.Name)
				assert.Equal(t, original.SupportB, g.SupportB, g.Name)
				assert.Equal(t, original.SupportOther, g.SupportOther, g.Name)
			}
		})
	}
}

func TestAdjustTurnout_FloorsAtZero(t *testing.T) {
	d := models.Distribution{
		{Name: "Small", GroupStats: models.GroupStats{Share: 5, SupportA: 50, SupportB: 50}},
		{Name: "Large", GroupStats: models.GroupStats{Share: 95, SupportA: 40, SupportB: 60}},
	}

	adjusted, err := AdjustTurnout(d, models.ShiftMap{"Small": -10})
	require.NoError(t, err)

	small, _ := adjusted.Get("Small")
	large, _ := adjusted.Get("Large")
	assert.Equal(t, 0.0, small.Share)
	assert.InDelta(t, 100, large.Share, tolerance)
}

func TestAdjustTurnout_Renormalizes(t *testing.T) {
	d := models.Distribution{
		{Name: "A", GroupStats: models.GroupStats{Share: 50}},
		{Name: "B", GroupStats: models.GroupStats{Share: 50}},
	}

	adjusted, err := AdjustTurnout(d, models.ShiftMap{"A": 10})
	require.NoError(t, err)

	a, _ := adjusted.Get("A")
	b, _ := adjusted.Get("B")
	assert.InDelta(t, 60.0/110*100, a.Share, tolerance)
	assert.InDelta(t, 50.0/110*100, b.Share, tolerance)
}

func TestAdjustTurnout_Degenerate(t *testing.T) {
	d := models.Distribution{
		{Name: "A", GroupStats: models.GroupStats{Share: 50, SupportA: 50, SupportB: 50}},
		{Name: "B", GroupStats: models.GroupStats{Share: 50, SupportA: 50, SupportB: 50}},
	}

	adjusted, err := AdjustTurnout(d, models.ShiftMap{"A": -60, "B": -60})
	require.Error(t, err)
	assert.Nil(t, adjusted)

	var degenerate *DegenerateDistributionError
	require.True(t, errors.As(err, &degenerate))
	assert.Equal(t, StageTurnout, degenerate.Stage)
	assert.Equal(t, 0.0, degenerate.Total)
}

func TestAdjustTurnout_EmptyDistributionIsDegenerate(t *testing.T) {
	_, err := AdjustTurnout(models.Distribution{}, nil)

	var degenerate *DegenerateDistributionError
	assert.True(t, errors.As(err, &degenerate))
}

func TestAdjustTurnout_DoesNotMutateInput(t *testing.T) {
	c := genderCategory(t)
	before := c.Baseline.Clone()

	_, err := AdjustTurnout(c.Baseline, models.ShiftMap{"Men": 8, "Women": -3})
	require.NoError(t, err)

	assert.Equal(t, before, c.Baseline)
}

func TestApplySwing_ZeroSwingPassesThroughExactly(t *testing.T) {
	d := models.Distribution{
		// Supports sum to 99; renormalizing would change them.
		{Name: "Rounded", GroupStats: models.GroupStats{Share: 60, SupportA: 42, SupportB: 56, SupportOther: 1}},
		{Name: "Swung", GroupStats: models.GroupStats{Share: 40, SupportA: 50, SupportB: 48, SupportOther: 2}},
	}

	final, err := ApplySwing(d, models.ShiftMap{"Rounded": 0, "Swung": 3})
	require.NoError(t, err)

	rounded, _ := final.Get("Rounded")
	assert.Equal(t, d[0].GroupStats, rounded)
}

func TestApplySwing_Symmetry(t *testing.T) {
	group := models.GroupStats{Share: 30, SupportA: 44, SupportB: 51, SupportOther: 5}

	for _, s := range []float64{0.5, 1, 7.25, 20, -3, -20, -44} {
		d := models.Distribution{{Name: "G", GroupStats: group}}

		forward, err := ApplySwing(d, models.ShiftMap{"G": s})
		require.NoError(t, err)
		back, err := ApplySwing(forward, models.ShiftMap{"G": -s})
		require.NoError(t, err)

		got := back[0]
		assert.InDelta(t, group.SupportA, got.SupportA, tolerance, "swing %g", s)
		assert.InDelta(t, group.SupportB, got.SupportB, tolerance, "swing %g", s)
		assert.InDelta(t, group.SupportOther, got.SupportOther, tolerance, "swing %g", s)
		assert.Equal(t, group.Share, got.Share)
	}
}

func TestApplySwing_ClampThenRenormalize(t *testing.T) {
	d := models.Distribution{
		{Name: "Stronghold", GroupStats: models.GroupStats{Share: 10, SupportA: 95, SupportB: 3, SupportOther: 2}},
	}

	final, err := ApplySwing(d, models.ShiftMap{"Stronghold": 20})
	require.NoError(t, err)

	g := final[0]
	assert.InDelta(t, 98.04, g.SupportA, 0.005)
	assert.Equal(t, 0.0, g.SupportB)
	assert.InDelta(t, 1.96, g.SupportOther, 0.005)
	assert.InDelta(t, 100, g.SupportTotal(), tolerance)
	assert.Equal(t, 10.0, g.Share)
}

func TestApplySwing_SaturatesTowardB(t *testing.T) {
	d := models.Distribution{
		{Name: "G", GroupStats: models.GroupStats{Share: 10, SupportA: 3, SupportB: 95, SupportOther: 2}},
	}

	final, err := ApplySwing(d, models.ShiftMap{"G": -20})
	require.NoError(t, err)

	g := final[0]
	assert.Equal(t, 0.0, g.SupportA)
	assert.InDelta(t, 100.0/102*100, g.SupportB, tolerance)
	assert.InDelta(t, 2.0/102*100, g.SupportOther, tolerance)
}

func TestApplySwing_OtherRescaledNotShifted(t *testing.T) {
	// Supports sum to 99; after swing Other keeps its proportion of the pool.
	d := models.Distribution{
		{Name: "G", GroupStats: models.GroupStats{Share: 100, SupportA: 42, SupportB: 56, SupportOther: 1}},
	}

	final, err := ApplySwing(d, models.ShiftMap{"G": 5})
	require.NoError(t, err)

	g := final[0]
	assert.InDelta(t, 47.0/99*100, g.SupportA, tolerance)
	assert.InDelta(t, 51.0/99*100, g.SupportB, tolerance)
	assert.InDelta(t, 1.0/99*100, g.SupportOther, tolerance)
}

func TestApplySwing_Degenerate(t *testing.T) {
	d := models.Distribution{
		{Name: "Broken", GroupStats: models.GroupStats{Share: 100, SupportA: -10}},
	}

	_, err := ApplySwing(d, models.ShiftMap{"Broken": 5})

	var degenerate *DegenerateDistributionError
	require.True(t, errors.As(err, &degenerate))
	assert.Equal(t, StageSwing, degenerate.Stage)
	assert.Equal(t, "Broken", degenerate.Group)
}

func TestApplySwing_DoesNotMutateInput(t *testing.T) {
	c := closedCategory()
	before := c.Baseline.Clone()

	_, err := ApplySwing(c.Baseline, models.ShiftMap{"North": 10, "West": -4})
	require.NoError(t, err)

	assert.Equal(t, before, c.Baseline)
}

func TestAggregate_GenderBaseline(t *testing.T) {
	c := genderCategory(t)

	result := Aggregate(c.Baseline)

	// 0.45*43 + 0.54*52 + 0.01*72, and likewise for B and Other
	assert.InDelta(t, 48.15, result.A, tolerance)
	assert.InDelta(t, 49.80, result.B, tolerance)
	assert.InDelta(t, 1.50, result.Other, tolerance)
}

func TestAggregate_Closure(t *testing.T) {
	c := closedCategory()

	testCases := []struct {
		name    string
		turnout models.ShiftMap
		swing   models.ShiftMap
	}{
		{"baseline", nil, nil},
		{"turnout only", models.ShiftMap{"North": -10, "West": 6}, nil},
		{"swing only", nil, models.ShiftMap{"South": 12, "West": -20}},
		{"both", models.ShiftMap{"South": 9.5}, models.ShiftMap{"North": -2.5, "South": 20}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := Run(c, tc.turnout, tc.swing)
			require.NoError(t, err)
			assert.InDelta(t, 100, out.Result.Total(), tolerance)
		})
	}
}

func TestAggregate_Empty(t *testing.T) {
	assert.Equal(t, models.AggregateResult{}, Aggregate(nil))
}

func TestRun_StagesInOrder(t *testing.T) {
	c := genderCategory(t)
	turnout := models.ShiftMap{"Women": 5}
	swing := models.ShiftMap{"Men": -4}

	out, err := Run(c, turnout, swing)
	require.NoError(t, err)

	wantTurnout, err := AdjustTurnout(c.Baseline, turnout)
	require.NoError(t, err)
	wantFinal, err := ApplySwing(wantTurnout, swing)
	require.NoError(t, err)

	assert.Equal(t, wantTurnout, out.TurnoutAdjusted)
	assert.Equal(t, wantFinal, out.Final)
	assert.Equal(t, Aggregate(wantFinal), out.Result)

	// Swing never touches shares
	for i := range out.Final {
		assert.Equal(t, out.TurnoutAdjusted[i].Share, out.Final[i].Share)
	}
}

func TestRun_Deterministic(t *testing.T) {
	c := genderCategory(t)
	turnout := models.ShiftMap{"Men": 3, "Nonbinary/Other": -1}
	swing := models.ShiftMap{"Women": 6}

	first, err := Run(c, turnout, swing)
	require.NoError(t, err)
	second, err := Run(c, turnout, swing)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRun_RevertedShiftsMatchBaseline(t *testing.T) {
	c := genderCategory(t)

	_, err := Run(c, models.ShiftMap{"Men": 9}, models.ShiftMap{"Men": 15})
	require.NoError(t, err)

	out, err := Run(c, models.ShiftMap{"Men": 0}, models.ShiftMap{"Men": 0})
	require.NoError(t, err)

	if diff := cmp.Diff(c.Baseline, out.Final, approx()); diff != "" {
		t.Errorf("reverted shifts should reproduce the baseline (-want +got):\n%s", diff)
	}
}

func TestRun_InvalidShifts(t *testing.T) {
	c := genderCategory(t)

	testCases := []struct {
		name      string
		turnout   models.ShiftMap
		swing     models.ShiftMap
		wantKind  string
		wantGroup string
	}{
		{"turnout too high", models.ShiftMap{"Men": 10.5}, nil, ShiftTurnout, "Men"},
		{"turnout too low", models.ShiftMap{"Women": -11}, nil, ShiftTurnout, "Women"},
		{"swing too high", nil, models.ShiftMap{"Men": 20.01}, ShiftSwing, "Men"},
		{"swing too low", nil, models.ShiftMap{"Women": -25}, ShiftSwing, "Women"},
		{"unknown turnout group", models.ShiftMap{"Martians": 1}, nil, ShiftTurnout, "Martians"},
		{"unknown swing group", nil, models.ShiftMap{"Martians": 1}, ShiftSwing, "Martians"},
		{"NaN", models.ShiftMap{"Men": math.NaN()}, nil, ShiftTurnout, "Men"},
		{"infinite", nil, models.ShiftMap{"Men": math.Inf(1)}, ShiftSwing, "Men"},
		{"turnout checked first", models.ShiftMap{"Men": 50}, models.ShiftMap{"Women": 50}, ShiftTurnout, "Men"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Run(c, tc.turnout, tc.swing)

			var invalid *InvalidShiftError
			require.True(t, errors.As(err, &invalid), "got %v", err)
			assert.Equal(t, tc.wantKind, invalid.Kind)
			assert.Equal(t, tc.wantGroup, invalid.Group)
		})
	}
}

func TestRun_BoundaryShiftsAccepted(t *testing.T) {
	c := genderCategory(t)

	_, err := Run(c,
		models.ShiftMap{"Men": -10, "Women": 10},
		models.ShiftMap{"Men": 20, "Women": -20},
	)
	assert.NoError(t, err)
}

func TestRun_DegenerateTurnoutPropagates(t *testing.T) {
	baseline := make(models.Distribution, 10)
	turnout := models.ShiftMap{}
	for i := range baseline {
		name := string(rune('A' + i))
		baseline[i] = models.Group{Name: name, GroupStats: models.GroupStats{Share: 10, SupportA: 50, SupportB: 50}}
		turnout[name] = -10
	}

	out, err := Run(models.Category{Name: "tiny", Baseline: baseline}, turnout, nil)

	var degenerate *DegenerateDistributionError
	require.True(t, errors.As(err, &degenerate))
	assert.Equal(t, StageTurnout, degenerate.Stage)
	assert.Equal(t, Outcome{}, out)
}

func TestExplain(t *testing.T) {
	c := genderCategory(t)

	out, err := Run(c, models.ShiftMap{"Men": 5}, models.ShiftMap{"Women": 4})
	require.NoError(t, err)

	rows := Explain(c.Baseline, out)
	require.Len(t, rows, 3)
	assert.Equal(t, c.Baseline.Names(), []string{rows[0].Name, rows[1].Name, rows[2].Name})

	men, women, other := rows[0], rows[1], rows[2]

	assert.True(t, men.ShareChanged)
	assert.False(t, men.SupportChanged)
	assert.True(t, women.ShareChanged)
	assert.True(t, women.SupportChanged)
	assert.False(t, other.SupportChanged)

	var sum models.AggregateResult
	for _, r := range rows {
		sum.A += r.Contribution.A
		sum.B += r.Contribution.B
		sum.Other += r.Contribution.Other

		assert.InDelta(t, r.After.Share/100*r.After.SupportA, r.Contribution.A, tolerance)
	}
	assert.InDelta(t, out.Result.A, sum.A, tolerance)
	assert.InDelta(t, out.Result.B, sum.B, tolerance)
	assert.InDelta(t, out.Result.Other, sum.Other, tolerance)
}

func TestExplain_NoChanges(t *testing.T) {
	c := genderCategory(t)

	out, err := Run(c, nil, nil)
	require.NoError(t, err)

	for _, r := range Explain(c.Baseline, out) {
		assert.False(t, r.ShareChanged, r.Name)
		assert.False(t, r.SupportChanged, r.Name)
	}
}
