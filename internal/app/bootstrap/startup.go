// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/activityboard/internal/app/resources"
	"github.com/dalemusser/activityboard/internal/app/system/viewdata"
	"github.com/dalemusser/activityboard/internal/app/system/workers"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// gaugeWorker is started by Startup and stopped by Shutdown.
var gaugeWorker *workers.StatusGauge

// Startup runs one-time application initialization after DB connections and
// schema setup are complete, but before the HTTP handler is built.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	// Shared page chrome must be registered before the engine boots.
	resources.LoadSharedTemplates()

	viewdata.Init(viewdata.Site{
		Name:       appCfg.SiteName,
		FooterHTML: appCfg.FooterHTML,
	})

	if appCfg.MetricsEnabled && appCfg.MetricsRefresh > 0 {
		src, name := countsSource(deps)
		gaugeWorker = workers.NewStatusGauge(src, name, logger, appCfg.MetricsRefresh)
		gaugeWorker.Start()
	}

	logger.Info("activity board starting",
		zap.String("data_source", appCfg.DataSource),
		zap.String("percent_base", appCfg.PercentBase),
		zap.Int("fixed_total", appCfg.FixedTotal),
	)
	return nil
}
