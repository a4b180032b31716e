// internal/app/system/workers/statusgauge.go
package workers

import (
	"context"
	"sync"
	"time"

	"github.com/dalemusser/activityboard/internal/app/system/metrics"
	"github.com/dalemusser/activityboard/internal/app/system/tally"
	"github.com/dalemusser/activityboard/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// CountsLister is the read side of a status counts source.
type CountsLister interface {
	List(ctx context.Context) (tally.Counts, error)
}

// StatusGauge is a background worker that keeps the per-status gauge
// current between page views.
type StatusGauge struct {
	source   CountsLister
	name     string
	log      *zap.Logger
	interval time.Duration
	stopCh   chan struct{}
	wg       sync.WaitGroup
}

// NewStatusGauge creates a new gauge refresh worker.
//
// Parameters:
//   - source: where the counts are read from
//   - name: source name used in the error metric ("static", "mongo")
//   - logger: zap logger for logging
//   - interval: how often to refresh (e.g., 30 seconds)
func NewStatusGauge(source CountsLister, name string, logger *zap.Logger, interval time.Duration) *StatusGauge {
	return &StatusGauge{
		source:   source,
		name:     name,
		log:      logger,
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

// Start refreshes once, then begins the background loop.
func (w *StatusGauge) Start() {
	w.Refresh()
	w.wg.Add(1)
	go w.run()
	w.log.Info("status gauge worker started",
		zap.String("source", w.name),
		zap.Duration("interval", w.interval))
}

// Stop signals the worker to stop and waits for it to finish.
func (w *StatusGauge) Stop() {
	close(w.stopCh)
	w.wg.Wait()
	w.log.Info("status gauge worker stopped")
}

func (w *StatusGauge) run() {
	defer w.wg.Done()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.stopCh:
			return
		case <-ticker.C:
			w.Refresh()
		}
	}
}

// Refresh reads the counts once and publishes them.
func (w *StatusGauge) Refresh() {
	ctx, cancel := timeouts.WithTimeout(context.Background(), timeouts.Short(), w.log, "status gauge refresh")
	defer cancel()

	counts, err := w.source.List(ctx)
	if err != nil {
		metrics.TrackSourceError(w.name)
		w.log.Error("status gauge refresh failed", zap.Error(err))
		return
	}
	metrics.ObserveCounts(counts)
}
