package tally_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/dalemusser/activityboard/internal/app/system/tally"
	"github.com/dalemusser/activityboard/internal/domain/models"
)

func TestDefault_LiteralMapping(t *testing.T) {
	c := tally.Default()
	want := []tally.Entry{
		{Status: models.StatusRealizado, Count: 30},
		{Status: models.StatusPendiente, Count: 3},
		{Status: models.StatusPospuesto, Count: 3},
		{Status: models.StatusSinRealizar, Count: 5},
	}
	got := c.Entries()
	if len(got) != len(want) {
		t.Fatalf("len(Entries) = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Entries()[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
	if c.Sum() != tally.FixedTotal {
		t.Errorf("Sum() = %d, want %d", c.Sum(), tally.FixedTotal)
	}
}

func TestNew_OrdersByDisplayOrder(t *testing.T) {
	c, err := tally.New(map[models.Status]int{
		models.StatusSinRealizar: 1,
		models.StatusPospuesto:   2,
		models.StatusPendiente:   3,
		models.StatusRealizado:   4,
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	entries := c.Entries()
	for i, st := range models.AllStatuses() {
		if entries[i].Status != st {
			t.Errorf("entry %d status = %q, want %q", i, entries[i].Status, st)
		}
	}
	if c.Count(models.StatusRealizado) != 4 {
		t.Errorf("Count(Realizado) = %d, want 4", c.Count(models.StatusRealizado))
	}
}

func TestNew_Rejects(t *testing.T) {
	tests := []struct {
		name string
		in   map[models.Status]int
		want error
	}{
		{
			name: "missing status",
			in:   map[models.Status]int{models.StatusRealizado: 1},
			want: tally.ErrMissingStatus,
		},
		{
			name: "negative count",
			in: map[models.Status]int{
				models.StatusRealizado: 1, models.StatusPendiente: -1,
				models.StatusPospuesto: 0, models.StatusSinRealizar: 0,
			},
			want: tally.ErrNegativeCount,
		},
		{
			name: "unknown key",
			in: map[models.Status]int{
				models.StatusRealizado: 1, models.StatusPendiente: 1,
				models.StatusPospuesto: 0, models.StatusSinRealizar: 0,
				"Cancelado": 2,
			},
			want: models.ErrUnknownStatus,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tally.New(tt.in)
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestEntries_ReturnsCopy(t *testing.T) {
	c := tally.Default()
	e := c.Entries()
	e[0].Count = 999
	if c.Count(models.StatusRealizado) != 30 {
		t.Error("Entries exposed internal state")
	}
}

func TestProjections_FollowOrder(t *testing.T) {
	c := tally.Default()
	pie := c.PieEntries()
	bar := c.BarEntries()
	entries := c.Entries()
	if len(pie) != 4 || len(bar) != 4 {
		t.Fatalf("got %d pie / %d bar entries, want 4 each", len(pie), len(bar))
	}
	for i, e := range entries {
		if pie[i].Name != e.Status || pie[i].Value != e.Count {
			t.Errorf("pie[%d] = %+v, want %s/%d", i, pie[i], e.Status, e.Count)
		}
		if bar[i].Name != e.Status || bar[i].Cantidad != e.Count {
			t.Errorf("bar[%d] = %+v, want %s/%d", i, bar[i], e.Status, e.Count)
		}
	}
}

func TestPercenter_FixedTotal(t *testing.T) {
	c := tally.Default()
	p := tally.DefaultPercenter()
	tests := []struct {
		status models.Status
		want   string
	}{
		{models.StatusRealizado, "73.2% del total"},
		{models.StatusPendiente, "7.3% del total"},
		{models.StatusPospuesto, "7.3% del total"},
		{models.StatusSinRealizar, "12.2% del total"},
	}
	for _, tt := range tests {
		if got := p.Label(c.Count(tt.status), c); got != tt.want {
			t.Errorf("Label(%s) = %q, want %q", tt.status, got, tt.want)
		}
	}
}

func TestPercenter_FixedIgnoresMappingSum(t *testing.T) {
	c, err := tally.New(map[models.Status]int{
		models.StatusRealizado: 41, models.StatusPendiente: 41,
		models.StatusPospuesto: 0, models.StatusSinRealizar: 0,
	})
	if err != nil {
		t.Fatal(err)
	}
	p := tally.DefaultPercenter()
	if got := p.Format(41, c); got != "100.0" {
		t.Errorf("Format = %q, want 100.0 (denominator stays 41)", got)
	}
	if p.Denominator(c) != 41 {
		t.Errorf("Denominator = %d, want 41", p.Denominator(c))
	}
}

func TestPercenter_SumBaseAddsUpTo100(t *testing.T) {
	mappings := []map[models.Status]int{
		{models.StatusRealizado: 30, models.StatusPendiente: 3, models.StatusPospuesto: 3, models.StatusSinRealizar: 5},
		{models.StatusRealizado: 1, models.StatusPendiente: 1, models.StatusPospuesto: 1, models.StatusSinRealizar: 0},
		{models.StatusRealizado: 17, models.StatusPendiente: 29, models.StatusPospuesto: 8, models.StatusSinRealizar: 113},
	}
	p := tally.Percenter{Base: tally.BaseSum}
	for _, m := range mappings {
		c, err := tally.New(m)
		if err != nil {
			t.Fatal(err)
		}
		var sum float64
		for _, e := range c.Entries() {
			v, err := strconv.ParseFloat(p.Format(e.Count, c), 64)
			if err != nil {
				t.Fatal(err)
			}
			sum += v
		}
		// four values each rounded to 0.05 at most
		if sum < 99.8 || sum > 100.2 {
			t.Errorf("percentages for %v sum to %.1f, want 100 within rounding", m, sum)
		}
	}
}

func TestPercenter_ZeroDenominator(t *testing.T) {
	c, err := tally.New(map[models.Status]int{
		models.StatusRealizado: 0, models.StatusPendiente: 0,
		models.StatusPospuesto: 0, models.StatusSinRealizar: 0,
	})
	if err != nil {
		t.Fatal(err)
	}
	p := tally.Percenter{Base: tally.BaseSum}
	if got := p.Format(0, c); got != "0.0" {
		t.Errorf("Format = %q, want 0.0", got)
	}
}

func TestPercenter_NonPositiveFixedFallsBack(t *testing.T) {
	p := tally.Percenter{Base: tally.BaseFixed, Fixed: 0}
	if d := p.Denominator(tally.Default()); d != tally.FixedTotal {
		t.Errorf("Denominator = %d, want %d", d, tally.FixedTotal)
	}
}

func TestParseBase(t *testing.T) {
	tests := []struct {
		in      string
		want    tally.PercentBase
		wantErr bool
	}{
		{"", tally.BaseFixed, false},
		{"fixed", tally.BaseFixed, false},
		{"SUM", tally.BaseSum, false},
		{"mean", "", true},
	}
	for _, tt := range tests {
		got, err := tally.ParseBase(tt.in)
		if tt.wantErr {
			if !errors.Is(err, tally.ErrInvalidBase) {
				t.Errorf("ParseBase(%q) err = %v, want ErrInvalidBase", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseBase(%q) = %q, %v; want %q", tt.in, got, err, tt.want)
		}
	}
}

func TestFormatOneDecimal(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{73.17073170731707, "73.2"},
		{7.317073170731707, "7.3"},
		{12.195121951219512, "12.2"},
		{0, "0.0"},
		{100, "100.0"},
	}
	for _, tt := range tests {
		if got := tally.FormatOneDecimal(tt.in); got != tt.want {
			t.Errorf("FormatOneDecimal(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
