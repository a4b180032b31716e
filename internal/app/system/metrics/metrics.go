// internal/app/system/metrics/metrics.go
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/dalemusser/activityboard/internal/app/system/tally"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "activityboard_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "activityboard_http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"method", "route"},
	)

	ActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "activityboard_http_active_requests",
			Help: "Current number of in-flight HTTP requests",
		},
	)

	// Dashboard metrics
	StatusItems = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "activityboard_status_items",
			Help: "Item count per status as of the last render",
		},
		[]string{"status"},
	)

	RendersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "activityboard_renders_total",
			Help: "Dashboard renders by view (page, tab, export)",
		},
		[]string{"view"},
	)

	SourceErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "activityboard_source_errors_total",
			Help: "Failed reads of the status counts by source",
		},
		[]string{"source"},
	)
)

// Middleware records request count, latency and in-flight requests.
// Routes are labelled by their chi pattern so ids in URLs do not explode
// label cardinality.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ActiveRequests.Inc()
		defer ActiveRequests.Dec()

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		route := routePattern(r)
		HTTPRequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
		HTTPRequestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}

// Handler serves the Prometheus exposition format.
func Handler() http.Handler {
	return promhttp.Handler()
}

// ObserveCounts publishes the counts shown by a render.
func ObserveCounts(c tally.Counts) {
	for _, e := range c.Entries() {
		StatusItems.WithLabelValues(e.Status.Slug()).Set(float64(e.Count))
	}
}

// TrackRender increments the render counter for view.
func TrackRender(view string) {
	RendersTotal.WithLabelValues(view).Inc()
}

// TrackSourceError increments the source error counter.
func TrackSourceError(source string) {
	SourceErrorsTotal.WithLabelValues(source).Inc()
}

func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if p := rctx.RoutePattern(); p != "" {
			return p
		}
	}
	return "unmatched"
}
