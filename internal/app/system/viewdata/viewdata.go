package viewdata

import (
	"html/template"
	"net/http"
	"sync"

	"github.com/dalemusser/activityboard/internal/app/system/htmlsanitize"
	"github.com/dalemusser/activityboard/internal/app/system/palette"
	"github.com/dalemusser/activityboard/internal/app/system/requestlog"
	"github.com/dalemusser/activityboard/internal/app/system/theme"
	"github.com/dalemusser/waffle/pantry/httpnav"
)

// DefaultSiteName is used until Init is called.
const DefaultSiteName = "Panel de Actividades"

// Site holds the site-wide settings shown on every page.
type Site struct {
	Name       string
	FooterHTML string // raw operator HTML; sanitised by Init
}

var (
	siteMu sync.RWMutex
	site   = struct {
		name   string
		footer template.HTML
	}{name: DefaultSiteName}
)

// Init sets the site settings. Call this once at startup from bootstrap.
func Init(s Site) {
	siteMu.Lock()
	defer siteMu.Unlock()
	site.name = s.Name
	if site.name == "" {
		site.name = DefaultSiteName
	}
	site.footer = htmlsanitize.SanitizeToHTML(s.FooterHTML)
}

// ThemeOption is one button of the theme toggle.
type ThemeOption struct {
	Value  string
	Label  string
	Icon   template.HTML
	Active bool
}

// BaseVM contains common fields for all view models.
// Embed this struct in your feature-specific view models.
//
// Usage:
//
//	type myPageData struct {
//	    viewdata.BaseVM
//	    // page-specific fields...
//	}
//
//	data := myPageData{
//	    BaseVM: viewdata.NewBaseVM(r, "Page Title"),
//	}
type BaseVM struct {
	SiteName   string
	FooterHTML template.HTML

	// Page context
	Title       string
	CurrentPath string
	RequestID   string

	// Theme toggle
	Theme        string
	HTMLClass    string
	ThemeOptions []ThemeOption
}

var themeLabels = []struct {
	t     theme.Theme
	label string
	icon  palette.IconName
}{
	{theme.Light, "Claro", palette.IconSun},
	{theme.Dark, "Oscuro", palette.IconMoon},
	{theme.System, "Sistema", palette.IconMonitor},
}

// NewBaseVM creates a fully populated BaseVM for a page.
func NewBaseVM(r *http.Request, title string) BaseVM {
	siteMu.RLock()
	name, footer := site.name, site.footer
	siteMu.RUnlock()

	current := theme.FromRequest(r)
	opts := make([]ThemeOption, 0, len(themeLabels))
	for _, tl := range themeLabels {
		opts = append(opts, ThemeOption{
			Value:  string(tl.t),
			Label:  tl.label,
			Icon:   palette.Icon(tl.icon, "", 16),
			Active: tl.t == current,
		})
	}

	return BaseVM{
		SiteName:     name,
		FooterHTML:   footer,
		Title:        title,
		CurrentPath:  httpnav.CurrentPath(r),
		RequestID:    requestlog.ID(r.Context()),
		Theme:        string(current),
		HTMLClass:    current.HTMLClass(),
		ThemeOptions: opts,
	}
}
