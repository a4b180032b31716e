package workers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dalemusser/activityboard/internal/app/system/metrics"
	"github.com/dalemusser/activityboard/internal/app/system/tally"
	"github.com/dalemusser/activityboard/internal/domain/models"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.uber.org/zap"
)

type fakeLister struct {
	counts tally.Counts
	err    error
	calls  int
}

func (f *fakeLister) List(ctx context.Context) (tally.Counts, error) {
	f.calls++
	return f.counts, f.err
}

func TestStatusGauge_Refresh(t *testing.T) {
	counts, err := tally.New(map[models.Status]int{
		models.StatusRealizado:   11,
		models.StatusPendiente:   12,
		models.StatusPospuesto:   13,
		models.StatusSinRealizar: 14,
	})
	if err != nil {
		t.Fatalf("tally.New: %v", err)
	}
	src := &fakeLister{counts: counts}

	w := NewStatusGauge(src, "fake", zap.NewNop(), time.Hour)
	w.Refresh()

	if got := testutil.ToFloat64(metrics.StatusItems.WithLabelValues(models.StatusPospuesto.Slug())); got != 13 {
		t.Errorf("pospuesto gauge = %v, want 13", got)
	}
	if got := testutil.ToFloat64(metrics.StatusItems.WithLabelValues(models.StatusSinRealizar.Slug())); got != 14 {
		t.Errorf("sin-realizar gauge = %v, want 14", got)
	}
}

func TestStatusGauge_RefreshError(t *testing.T) {
	src := &fakeLister{err: errors.New("boom")}
	before := testutil.ToFloat64(metrics.SourceErrorsTotal.WithLabelValues("failing"))

	w := NewStatusGauge(src, "failing", zap.NewNop(), time.Hour)
	w.Refresh()

	after := testutil.ToFloat64(metrics.SourceErrorsTotal.WithLabelValues("failing"))
	if after-before != 1 {
		t.Errorf("source errors delta = %v, want 1", after-before)
	}
}

func TestStatusGauge_StartStop(t *testing.T) {
	src := &fakeLister{counts: tally.Default()}

	w := NewStatusGauge(src, "fake", zap.NewNop(), time.Hour)
	w.Start()
	w.Stop()

	if src.calls != 1 {
		t.Errorf("expected one refresh on start, got %d", src.calls)
	}
}
