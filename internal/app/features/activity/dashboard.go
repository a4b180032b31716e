// internal/app/features/activity/dashboard.go
package activity

import (
	"context"
	"net/http"

	"github.com/dalemusser/activityboard/internal/app/system/charts"
	"github.com/dalemusser/activityboard/internal/app/system/metrics"
	"github.com/dalemusser/activityboard/internal/app/system/palette"
	"github.com/dalemusser/activityboard/internal/app/system/tally"
	"github.com/dalemusser/activityboard/internal/app/system/timeouts"
	"github.com/dalemusser/activityboard/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Chart ids prefix gradient ids so the two charts never share them.
const (
	pieChartID = "pie"
	barChartID = "bar"
)

// ServeDashboard renders the full dashboard page.
// GET /?tab=charts|details
func (h *Handler) ServeDashboard(w http.ResponseWriter, r *http.Request) {
	tab, ok := ParseTab(query.Get(r, "tab"))
	if !ok {
		tab = DefaultTab
	}

	counts, err := h.loadCounts(r.Context())
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load status counts failed", err, "No se pudieron cargar los datos.", "/")
		return
	}

	data := dashboardData{
		BaseVM:      viewdata.NewBaseVM(r, pageTitle),
		Subtitle:    pageSubtitle,
		Cards:       buildCards(counts),
		Total:       counts.Sum(),
		PercentBase: string(h.Percenter.Base),
		TabsVM:      buildTabs(tab, counts, h.Percenter),
	}

	metrics.ObserveCounts(counts)
	metrics.TrackRender("page")
	h.Render.Page(w, r, "activity_dashboard", data)
}

// ServeTab renders only the tab strip and the active tab's content.
// GET /tab/{tab} (HTMX)
func (h *Handler) ServeTab(w http.ResponseWriter, r *http.Request) {
	tab, ok := ParseTab(chi.URLParam(r, "tab"))
	if !ok {
		h.ErrLog.NotFound(w, r)
		return
	}

	counts, err := h.loadCounts(r.Context())
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load status counts failed", err, "No se pudieron cargar los datos.", "/")
		return
	}

	metrics.ObserveCounts(counts)
	metrics.TrackRender("tab_" + string(tab))
	vm := buildTabs(tab, counts, h.Percenter)
	vm.ThemeReturn = "/?tab=" + string(tab)
	h.Render.Snippet(w, "activity_tabs", vm)
}

func (h *Handler) loadCounts(ctx context.Context) (tally.Counts, error) {
	ctx, cancel := timeouts.WithTimeout(ctx, timeouts.Short(), h.Log, "load status counts")
	defer cancel()

	counts, err := h.Source.List(ctx)
	if err != nil {
		metrics.TrackSourceError(h.SourceName)
		h.Log.Warn("status counts unavailable", zap.String("source", h.SourceName), zap.Error(err))
		return tally.Counts{}, err
	}
	return counts, nil
}

// buildCards maps each status to a metric card, in display order.
func buildCards(c tally.Counts) []cardVM {
	entries := c.Entries()
	out := make([]cardVM, 0, len(entries))
	for _, e := range entries {
		sw := palette.For(e.Status)
		out = append(out, cardVM{
			Label: string(e.Status),
			Slug:  e.Status.Slug(),
			Count: e.Count,
			Color: sw.Color,
			Tint:  palette.Tint(e.Status),
			Icon:  palette.StatusIcon(sw, 24),
		})
	}
	return out
}

func buildDetails(c tally.Counts, p tally.Percenter) []detailVM {
	entries := c.Entries()
	out := make([]detailVM, 0, len(entries))
	for _, e := range entries {
		sw := palette.For(e.Status)
		out = append(out, detailVM{
			Label:   string(e.Status),
			Slug:    e.Status.Slug(),
			Count:   e.Count,
			Percent: p.Label(e.Count, c),
			Color:   sw.Color,
			Tint:    palette.Tint(e.Status),
			Icon:    palette.StatusIcon(sw, 24),
		})
	}
	return out
}

// buildTabs fills exactly one content block for the active tab.
func buildTabs(active Tab, c tally.Counts, p tally.Percenter) tabsVM {
	vm := tabsVM{
		Active: string(active),
		Tabs: []tabVM{
			newTab(TabCharts, "Gráficas", palette.IconBarChart, active),
			newTab(TabDetails, "Detalles", palette.IconActivity, active),
		},
	}
	switch active {
	case TabDetails:
		vm.Details = buildDetails(c, p)
	default:
		vm.Charts = &chartsVM{
			Pie: charts.NewDonut(pieChartID, c, p, charts.DonutOptions{}),
			Bar: charts.NewBars(barChartID, c, p, charts.BarOptions{}),
		}
	}
	return vm
}

func newTab(t Tab, label string, icon palette.IconName, active Tab) tabVM {
	return tabVM{
		Value:      string(t),
		Label:      label,
		Icon:       palette.Icon(icon, "", 16),
		Active:     t == active,
		Href:       "/?tab=" + string(t),
		PartialURL: "/tab/" + string(t),
	}
}
