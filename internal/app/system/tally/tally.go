// Package tally holds the status->count mapping shown by the dashboard and
// the projections derived from it.
//
// A Counts value always carries all four statuses in display order. It is
// immutable after construction; handlers derive pie/bar entries and
// percentages from it on every render.
package tally

import (
	"errors"
	"fmt"

	"github.com/dalemusser/activityboard/internal/domain/models"
)

var (
	// ErrMissingStatus means a mapping did not carry one of the four statuses.
	ErrMissingStatus = errors.New("missing status")
	// ErrNegativeCount means a count below zero was supplied.
	ErrNegativeCount = errors.New("negative count")
)

// Entry is one status and its count.
type Entry struct {
	Status models.Status
	Count  int
}

// PieEntry feeds the proportion chart.
type PieEntry struct {
	Name  models.Status `json:"name"`
	Value int           `json:"value"`
}

// BarEntry feeds the comparison chart.
type BarEntry struct {
	Name     models.Status `json:"name"`
	Cantidad int           `json:"cantidad"`
}

// Counts is an ordered status->count mapping.
type Counts struct {
	entries []Entry
}

// Default returns the literal dataset the dashboard ships with.
func Default() Counts {
	return Counts{entries: []Entry{
		{Status: models.StatusRealizado, Count: 30},
		{Status: models.StatusPendiente, Count: 3},
		{Status: models.StatusPospuesto, Count: 3},
		{Status: models.StatusSinRealizar, Count: 5},
	}}
}

// New builds Counts from m in display order. Every status must be present
// and no count may be negative. Keys outside the closed set are rejected.
func New(m map[models.Status]int) (Counts, error) {
	for st := range m {
		if !st.Valid() {
			return Counts{}, fmt.Errorf("%w: %q", models.ErrUnknownStatus, string(st))
		}
	}
	entries := make([]Entry, 0, len(m))
	for _, st := range models.AllStatuses() {
		n, ok := m[st]
		if !ok {
			return Counts{}, fmt.Errorf("%w: %s", ErrMissingStatus, st)
		}
		if n < 0 {
			return Counts{}, fmt.Errorf("%w: %s=%d", ErrNegativeCount, st, n)
		}
		entries = append(entries, Entry{Status: st, Count: n})
	}
	return Counts{entries: entries}, nil
}

// Entries returns a copy of the entries in display order.
func (c Counts) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Count returns the count for st (0 if st is unknown).
func (c Counts) Count(st models.Status) int {
	for _, e := range c.entries {
		if e.Status == st {
			return e.Count
		}
	}
	return 0
}

// Sum returns the total of all counts.
func (c Counts) Sum() int {
	total := 0
	for _, e := range c.entries {
		total += e.Count
	}
	return total
}

// Len is the number of statuses carried (four for any valid Counts).
func (c Counts) Len() int { return len(c.entries) }

// PieEntries projects the mapping for the proportion chart.
func (c Counts) PieEntries() []PieEntry {
	out := make([]PieEntry, 0, len(c.entries))
	for _, e := range c.entries {
		out = append(out, PieEntry{Name: e.Status, Value: e.Count})
	}
	return out
}

// BarEntries projects the mapping for the comparison chart.
func (c Counts) BarEntries() []BarEntry {
	out := make([]BarEntry, 0, len(c.entries))
	for _, e := range c.entries {
		out = append(out, BarEntry{Name: e.Status, Cantidad: e.Count})
	}
	return out
}
