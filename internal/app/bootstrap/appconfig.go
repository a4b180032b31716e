// internal/app/bootstrap/appconfig.go
package bootstrap

import (
	"time"

	"github.com/dalemusser/activityboard/internal/app/system/tally"
)

// Data sources for the status counts.
const (
	DataSourceStatic = "static"
	DataSourceMongo  = "mongo"
)

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration (ports, TLS, log level).
type AppConfig struct {
	// Page content
	SiteName   string // shown in the header and <title>
	FooterHTML string // operator HTML, sanitised before rendering

	// Where the counts come from
	DataSource   string // "static" (built-in literal mapping) or "mongo"
	SeedDefaults bool   // insert the literal mapping into an empty collection

	// MongoDB connection configuration (only used if DataSource is "mongo")
	MongoURI         string
	MongoDatabase    string
	MongoMaxPoolSize uint64
	MongoMinPoolSize uint64

	// Percentages
	PercentBase string // "fixed" or "sum"
	FixedTotal  int    // denominator for "fixed"

	// Theme preference cookie
	SessionKey  string // Secret key for signing the cookie (must be strong in production)
	SessionName string // Cookie name (default: activityboard-theme)

	// Static assets and metrics
	StaticDir      string        // directory served under /static
	MetricsEnabled bool          // expose /metrics and record request metrics
	MetricsRefresh time.Duration // status gauge refresh period; 0 disables

	// Theme changes allowed per client IP per minute; 0 disables the limit
	ThemeRateLimit int
}

// Percenter builds the percentage calculator from PercentBase/FixedTotal.
func (c AppConfig) Percenter() (tally.Percenter, error) {
	base, err := tally.ParseBase(c.PercentBase)
	if err != nil {
		return tally.Percenter{}, err
	}
	return tally.Percenter{Base: base, Fixed: c.FixedTotal}, nil
}
