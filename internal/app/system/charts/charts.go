// Package charts computes server-side SVG geometry for the dashboard's
// proportion (donut) and comparison (bar) charts.
//
// The package produces plain view models: path strings, coordinates and
// labels. Templates turn them into markup, so everything here is testable
// without rendering HTML.
package charts

import (
	"math"
	"strconv"

	"github.com/dalemusser/activityboard/internal/app/system/palette"
	"github.com/dalemusser/activityboard/internal/app/system/tally"
	"github.com/dalemusser/activityboard/internal/domain/models"
)

// GradientDef is one vertical <linearGradient> declared inside a chart.
type GradientDef struct {
	ID      string
	From    string
	To      string
	Opacity string
}

// Tooltip is the shared hover content for slices and bars.
type Tooltip struct {
	Label    string // status label
	Cantidad string // "Cantidad: 30"
	Percent  string // "73.2% del total"
}

// Title joins the tooltip lines for an SVG <title> element.
func (t Tooltip) Title() string {
	return t.Label + "\n" + t.Cantidad + "\n" + t.Percent
}

// NewTooltip builds the tooltip for one status.
func NewTooltip(st models.Status, count int, c tally.Counts, p tally.Percenter) Tooltip {
	return Tooltip{
		Label:    string(st),
		Cantidad: "Cantidad: " + strconv.Itoa(count),
		Percent:  p.Label(count, c),
	}
}

// LegendItem is one swatch in a chart legend.
type LegendItem struct {
	Label string
	Slug  string
	Color string
}

// GradientID returns the DOM id of the gradient for st inside chartID.
// Prefixing by chart keeps two charts on one page from sharing ids.
func GradientID(chartID string, st models.Status) string {
	return chartID + "-gradient-" + st.Slug()
}

// gradients declares one gradient per status, in display order.
func gradients(chartID string, statuses []models.Status) []GradientDef {
	out := make([]GradientDef, 0, len(statuses))
	for _, st := range statuses {
		from, to := palette.Gradient(st)
		out = append(out, GradientDef{
			ID:      GradientID(chartID, st),
			From:    from,
			To:      to,
			Opacity: "0.8",
		})
	}
	return out
}

func legend(statuses []models.Status) []LegendItem {
	out := make([]LegendItem, 0, len(statuses))
	for _, st := range statuses {
		out = append(out, LegendItem{Label: string(st), Slug: st.Slug(), Color: palette.Color(st)})
	}
	return out
}

// num formats a coordinate with at most two decimals and no trailing zeros.
func num(v float64) string {
	v = math.Round(v*100) / 100
	if v == 0 {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
