// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// Candidate slot keys
const (
	SlotA     = "a"
	SlotB     = "b"
	SlotOther = "other"
)

// Domain types

// GroupStats is one demographic group's share of the electorate and its
// three-way support split. All values are percentages.
type GroupStats struct {
	Share        float64 `json:"share" yaml:"share"`
	SupportA     float64 `json:"support_a" yaml:"support_a"`
	SupportB     float64 `json:"support_b" yaml:"support_b"`
	SupportOther float64 `json:"support_other" yaml:"support_other"`
}

// SupportTotal returns the sum of the three support values.
func (s GroupStats) SupportTotal() float64 {
	return s.SupportA + s.SupportB + s.SupportOther
}

// Group is a named entry of a Distribution.
type Group struct {
	Name string `json:"name" yaml:"name"`
	GroupStats `yaml:",inline"`
}

// Distribution is an ordered set of uniquely named groups. Order is kept for
// display only.
type Distribution []Group

// Get returns the stats for the named group.
func (d Distribution) Get(name string) (GroupStats, bool) {
	for _, g := range d {
		if g.Name == name {
			return g.GroupStats, true
		}
	}
	return GroupStats{}, false
}

// Names returns the group names in order.
func (d Distribution) Names() []string {
	names := make([]string, len(d))
	for i, g := range d {
		names[i] = g.Name
	}
	return names
}

// TotalShare sums every group's share.
func (d Distribution) TotalShare() float64 {
	total := 0.0
	for _, g := range d {
		total += g.Share
	}
	return total
}

// Clone returns a copy that shares no memory with d.
func (d Distribution) Clone() Distribution {
	if d == nil {
		return nil
	}
	out := make(Distribution, len(d))
	copy(out, d)
	return out
}

// ShiftMap maps group name to a signed percentage-point delta. Absent
// entries mean zero.
type ShiftMap map[string]float64

// Candidates labels the three candidate slots.
type Candidates struct {
	A     string `json:"a" yaml:"a"`
	B     string `json:"b" yaml:"b"`
	Other string `json:"other" yaml:"other"`
}

// Label returns the display name for a slot key.
func (c Candidates) Label(slot string) string {
	switch slot {
	case SlotA:
		return c.A
	case SlotB:
		return c.B
	case SlotOther:
		return c.Other
	}
	return slot
}

// Category is one named partition of the electorate.
type Category struct {
	Name     string       `json:"name" yaml:"name"`
	Baseline Distribution `json:"groups" yaml:"groups"`
}

// AggregateResult is the share-weighted national outcome per candidate slot.
type AggregateResult struct {
	A     float64 `json:"a"`
	B     float64 `json:"b"`
	Other float64 `json:"other"`
}

// Total returns A + B + Other.
func (r AggregateResult) Total() float64 {
	return r.A + r.B + r.Other
}

// Proportions rescales the result so the three values sum to 100. A zero
// total yields all zeros.
func (r AggregateResult) Proportions() AggregateResult {
	total := r.Total()
	if total <= 0 {
		return AggregateResult{}
	}
	return AggregateResult{
		A:     r.A / total * 100,
		B:     r.B / total * 100,
		Other: r.Other / total * 100,
	}
}

// Leader returns the slot key with the largest value. Ties go to the
// earlier slot in A, B, Other order.
func (r AggregateResult) Leader() string {
	leader, best := SlotA, r.A
	if r.B > best {
		leader, best = SlotB, r.B
	}
	if r.Other > best {
		leader = SlotOther
	}
	return leader
}

// Request types

type SimulateRequest struct {
	Category      string   `json:"category"`
	TurnoutShifts ShiftMap `json:"turnout_shifts"`
	SwingShifts   ShiftMap `json:"swing_shifts"`
}

// Response types

type CategorySummary struct {
	Name       string     `json:"name"`
	Groups     []string   `json:"groups"`
	Candidates Candidates `json:"candidates"`
}

type CategoryResponse struct {
	Category   Category   `json:"category"`
	Candidates Candidates `json:"candidates"`
}

// GroupBreakdown traces one group through the pipeline.
type GroupBreakdown struct {
	Name           string     `json:"name"`
	OriginalShare  float64    `json:"original_share"`
	AdjustedShare  float64    `json:"adjusted_share"`
	ShareChanged   bool       `json:"share_changed"`
	Before         GroupStats `json:"before_swing"`
	After          GroupStats `json:"after_swing"`
	SupportChanged bool       `json:"support_changed"`
	// share/100 * support for each slot
	Contribution AggregateResult `json:"contribution"`
}

type SimulateResponse struct {
	Category        string           `json:"category"`
	Candidates      Candidates       `json:"candidates"`
	Original        Distribution     `json:"original"`
	TurnoutAdjusted Distribution     `json:"turnout_adjusted"`
	Final           Distribution     `json:"final"`
	Result          AggregateResult  `json:"result"`
	Proportions     AggregateResult  `json:"proportions"`
	Leader          string           `json:"leader"`
	Breakdown       []GroupBreakdown `json:"breakdown"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
