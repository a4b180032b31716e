// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"
	"time"

	activityfeature "github.com/dalemusser/activityboard/internal/app/features/activity"
	errorsfeature "github.com/dalemusser/activityboard/internal/app/features/errors"
	healthfeature "github.com/dalemusser/activityboard/internal/app/features/health"
	themefeature "github.com/dalemusser/activityboard/internal/app/features/theme"
	statuscountstore "github.com/dalemusser/activityboard/internal/app/store/statuscounts"
	"github.com/dalemusser/activityboard/internal/app/system/metrics"
	"github.com/dalemusser/activityboard/internal/app/system/ratelimit"
	"github.com/dalemusser/activityboard/internal/app/system/requestlog"
	"github.com/dalemusser/activityboard/internal/app/system/theme"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// themeLimiter guards POST /theme. Built by newRouter, stopped by Shutdown.
var themeLimiter *ratelimit.Limiter

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. It boots the template engine, builds
// the theme cookie manager and mounts the feature routers.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	themes, err := theme.NewManager(appCfg.SessionKey, appCfg.SessionName, secure, logger)
	if err != nil {
		logger.Error("theme manager init failed", zap.Error(err))
		return nil, err
	}

	// Initialize and boot the template engine once at startup.
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	return newRouter(appCfg, deps, themes, logger)
}

// newRouter mounts every route. Split from BuildHandler so tests can build
// the router without booting the template engine.
func newRouter(appCfg AppConfig, deps DBDeps, themes *theme.Manager, logger *zap.Logger) (http.Handler, error) {
	percenter, err := appCfg.Percenter()
	if err != nil {
		return nil, err
	}
	src, srcName := countsSource(deps)

	errLog := errorsfeature.NewErrorLogger(logger)
	errorsHandler := errorsfeature.NewHandler()

	r := chi.NewRouter()
	r.Use(requestlog.Middleware(logger))
	r.Use(middleware.Recoverer)
	if appCfg.MetricsEnabled {
		r.Use(metrics.Middleware)
	}
	// Theme preference on every request so page shells can render it.
	r.Use(themes.Load)

	r.NotFound(errorsHandler.NotFound)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, srcName, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	if appCfg.MetricsEnabled {
		r.Handle("/metrics", metrics.Handler())
	}

	// Static assets with pre-compressed file support (gzip/brotli)
	staticDir := appCfg.StaticDir
	if staticDir == "" {
		staticDir = "public"
	}
	r.Handle("/static/*", fileserver.Handler("/static", staticDir))

	themeHandler := themefeature.NewHandler(themes, logger)
	stopThemeLimiter()
	r.Group(func(r chi.Router) {
		if appCfg.ThemeRateLimit > 0 {
			themeLimiter = ratelimit.New(appCfg.ThemeRateLimit, time.Minute)
			r.Use(ratelimit.Middleware(themeLimiter, logger))
		}
		r.Mount("/theme", themefeature.Routes(themeHandler))
	})

	// Dashboard, tab partials and exports
	activityHandler := activityfeature.NewHandler(src, srcName, percenter, errLog, logger)
	r.Mount("/", activityfeature.Routes(activityHandler))

	return r, nil
}

func stopThemeLimiter() {
	if themeLimiter != nil {
		themeLimiter.Stop()
		themeLimiter = nil
	}
}

// countsSource picks the Mongo store when a database is connected and the
// built-in literal mapping otherwise.
func countsSource(deps DBDeps) (activityfeature.CountsSource, string) {
	if deps.MongoDatabase != nil {
		return statuscountstore.New(deps.MongoDatabase), DataSourceMongo
	}
	return statuscountstore.NewStatic(), DataSourceStatic
}
