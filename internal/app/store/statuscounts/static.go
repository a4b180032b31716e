package statuscountstore

import (
	"context"

	"github.com/dalemusser/activityboard/internal/app/system/tally"
)

// Static serves a fixed mapping without a database.
type Static struct {
	Counts tally.Counts
}

// NewStatic returns a Static source for the literal default mapping.
func NewStatic() *Static {
	return &Static{Counts: tally.Default()}
}

// List returns the fixed counts.
func (s *Static) List(ctx context.Context) (tally.Counts, error) {
	return s.Counts, nil
}
