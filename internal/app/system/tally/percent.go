package tally

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FixedTotal is the literal denominator used for every percentage on the
// board. It equals the sum of the default dataset; it does not follow the
// mapping if counts change. Use BaseSum to divide by the live total.
const FixedTotal = 41

// PercentBase selects the denominator used by a Percenter.
type PercentBase string

const (
	BaseFixed PercentBase = "fixed" // divide by the configured fixed total
	BaseSum   PercentBase = "sum"   // divide by Counts.Sum()
)

// ErrInvalidBase is returned by ParseBase for unknown values.
var ErrInvalidBase = errors.New("invalid percent base")

// ParseBase parses "fixed" or "sum" (case-insensitive). Empty means fixed.
func ParseBase(v string) (PercentBase, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", string(BaseFixed):
		return BaseFixed, nil
	case string(BaseSum):
		return BaseSum, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidBase, v)
}

// Percenter turns counts into "share of total" figures.
type Percenter struct {
	Base  PercentBase
	Fixed int // denominator for BaseFixed; <= 0 means FixedTotal
}

// DefaultPercenter divides by FixedTotal.
func DefaultPercenter() Percenter {
	return Percenter{Base: BaseFixed, Fixed: FixedTotal}
}

// Denominator returns the divisor used for c.
func (p Percenter) Denominator(c Counts) int {
	if p.Base == BaseSum {
		return c.Sum()
	}
	if p.Fixed <= 0 {
		return FixedTotal
	}
	return p.Fixed
}

// Percent returns count/denominator*100. A zero denominator yields 0.
func (p Percenter) Percent(count int, c Counts) float64 {
	d := p.Denominator(c)
	if d == 0 {
		return 0
	}
	return float64(count) / float64(d) * 100
}

// Format renders Percent to one decimal place, e.g. "73.2".
func (p Percenter) Format(count int, c Counts) string {
	return FormatOneDecimal(p.Percent(count, c))
}

// Label renders the display form, e.g. "73.2% del total".
func (p Percenter) Label(count int, c Counts) string {
	return p.Format(count, c) + "% del total"
}

// FormatOneDecimal rounds half away from zero to one decimal place.
func FormatOneDecimal(v float64) string {
	r := math.Round(v*10) / 10
	if r == 0 {
		r = 0 // normalise -0
	}
	return strconv.FormatFloat(r, 'f', 1, 64)
}
