// internal/app/bootstrap/config.go
package bootstrap

import (
	"errors"
	"fmt"
	"time"

	"github.com/dalemusser/activityboard/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for the activity board.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: data_source, mongo_uri, etc.
//   - Environment variables: ACTIVITYBOARD_DATA_SOURCE, ACTIVITYBOARD_MONGO_URI, etc.
//   - Command-line flags: --data_source, --mongo_uri, etc.
var appConfigKeys = []config.AppKey{
	{Name: "site_name", Default: viewdata.DefaultSiteName, Desc: "Site name shown in the header"},
	{Name: "footer_html", Default: "", Desc: "Footer HTML (sanitised)"},

	{Name: "data_source", Default: DataSourceStatic, Desc: "Where counts come from: 'static' or 'mongo'"},
	{Name: "seed_defaults", Default: true, Desc: "Seed the default counts into an empty collection (mongo only)"},

	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "activityboard", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 20, Desc: "MongoDB max connection pool size (default: 20)"},
	{Name: "mongo_min_pool_size", Default: 0, Desc: "MongoDB min connection pool size (default: 0)"},

	{Name: "percent_base", Default: "fixed", Desc: "Percentage denominator: 'fixed' (fixed_total) or 'sum' (sum of counts)"},
	{Name: "fixed_total", Default: 41, Desc: "Denominator used when percent_base is 'fixed'"},

	{Name: "session_key", Default: "dev-only-change-me-please-0123456789ABCDEF", Desc: "Theme cookie signing key (must be strong in production)"},
	{Name: "session_name", Default: "activityboard-theme", Desc: "Theme cookie name"},

	{Name: "static_dir", Default: "public", Desc: "Directory served under /static"},
	{Name: "metrics_enabled", Default: true, Desc: "Expose Prometheus metrics at /metrics"},
	{Name: "metrics_refresh", Default: "30s", Desc: "How often the status gauge is refreshed (0 disables the worker)"},

	{Name: "theme_rate_limit", Default: 30, Desc: "Theme changes allowed per client IP per minute (0 disables)"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig merges .env files, config files,
// environment variables (WAFFLE_* for core, ACTIVITYBOARD_* for app) and
// command-line flags with precedence flags > env > files > defaults.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "ACTIVITYBOARD", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		SiteName:   appValues.String("site_name"),
		FooterHTML: appValues.String("footer_html"),

		DataSource:   appValues.String("data_source"),
		SeedDefaults: appValues.Bool("seed_defaults"),

		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		PercentBase: appValues.String("percent_base"),
		FixedTotal:  appValues.Int("fixed_total"),

		SessionKey:  appValues.String("session_key"),
		SessionName: appValues.String("session_name"),

		StaticDir:      appValues.String("static_dir"),
		MetricsEnabled: appValues.Bool("metrics_enabled"),
		MetricsRefresh: appValues.Duration("metrics_refresh", 30*time.Second),

		ThemeRateLimit: appValues.Int("theme_rate_limit"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
// The MongoDB URI is only checked when the mongo data source is selected.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	switch appCfg.DataSource {
	case DataSourceStatic:
	case DataSourceMongo:
		if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
			logger.Error("invalid MongoDB URI", zap.Error(err))
			return fmt.Errorf("invalid MongoDB URI: %w", err)
		}
		if appCfg.MongoDatabase == "" {
			return errors.New("mongo_database is required when data_source is 'mongo'")
		}
	default:
		return fmt.Errorf("data_source must be %q or %q, got %q", DataSourceStatic, DataSourceMongo, appCfg.DataSource)
	}

	if _, err := appCfg.Percenter(); err != nil {
		return fmt.Errorf("percent_base: %w", err)
	}
	if appCfg.FixedTotal <= 0 {
		return fmt.Errorf("fixed_total must be positive, got %d", appCfg.FixedTotal)
	}
	if appCfg.SessionKey == "" {
		return errors.New("session_key is required")
	}
	if appCfg.ThemeRateLimit < 0 {
		return fmt.Errorf("theme_rate_limit must not be negative, got %d", appCfg.ThemeRateLimit)
	}
	if appCfg.MetricsRefresh < 0 {
		return fmt.Errorf("metrics_refresh must not be negative, got %s", appCfg.MetricsRefresh)
	}

	return nil
}
