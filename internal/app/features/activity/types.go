// internal/app/features/activity/types.go
package activity

import (
	"html/template"

	"github.com/dalemusser/activityboard/internal/app/system/charts"
	"github.com/dalemusser/activityboard/internal/app/system/viewdata"
)

// Tab identifies one of the two dashboard content blocks.
type Tab string

const (
	TabCharts  Tab = "charts"
	TabDetails Tab = "details"
)

// DefaultTab is shown when no (or an unknown) tab is requested.
const DefaultTab = TabCharts

// ParseTab reports whether v names a tab.
func ParseTab(v string) (Tab, bool) {
	switch Tab(v) {
	case TabCharts, TabDetails:
		return Tab(v), true
	}
	return "", false
}

const (
	pageTitle    = "Panel de Actividades"
	pageSubtitle = "Visualización detallada del estado de todas las actividades"
)

// cardVM is one metric card.
type cardVM struct {
	Label string
	Slug  string
	Count int
	Color string
	Tint  string
	Icon  template.HTML
}

// tabVM is one button in the tab strip.
type tabVM struct {
	Value      string
	Label      string
	Icon       template.HTML
	Active     bool
	Href       string // full-page fallback
	PartialURL string // HTMX swap target
}

// chartsVM is the content of the charts tab.
type chartsVM struct {
	Pie charts.Donut
	Bar charts.Bars
}

// detailVM is one row of the detail list.
type detailVM struct {
	Label   string
	Slug    string
	Count   int
	Percent string // "73.2% del total"
	Color   string
	Tint    string
	Icon    template.HTML
}

// tabsVM is the swappable tab region. Exactly one of Charts / Details is
// populated.
type tabsVM struct {
	Tabs    []tabVM
	Active  string
	Charts  *chartsVM
	Details []detailVM

	// ThemeReturn is set on partial responses only. It refreshes the theme
	// form's return input out of band so the toggle lands on the tab now
	// showing.
	ThemeReturn string
}

// dashboardData is the full page.
type dashboardData struct {
	viewdata.BaseVM
	Subtitle    string
	Cards       []cardVM
	Total       int
	PercentBase string
	TabsVM      tabsVM
}
