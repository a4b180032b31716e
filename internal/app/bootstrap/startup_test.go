package bootstrap

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dalemusser/activityboard/internal/app/system/viewdata"
)

func TestStartupShutdown_GaugeWorker(t *testing.T) {
	cfg := validConfig()
	cfg.SiteName = "Tablero de prueba"
	cfg.MetricsEnabled = true
	cfg.MetricsRefresh = time.Hour

	if err := Startup(context.Background(), nil, cfg, DBDeps{}, testLogger()); err != nil {
		t.Fatalf("Startup: %v", err)
	}
	if gaugeWorker == nil {
		t.Fatal("expected gauge worker to be started")
	}
	if got := viewdata.NewBaseVM(httptest.NewRequest("GET", "/", nil), "x").SiteName; got != "Tablero de prueba" {
		t.Errorf("site name = %q", got)
	}

	if err := Shutdown(context.Background(), nil, cfg, DBDeps{}, testLogger()); err != nil {
		t.Fatalf("Shutdown: %v", err)
	}
	if gaugeWorker != nil {
		t.Error("expected gauge worker to be cleared")
	}
}

func TestStartup_MetricsDisabledSkipsWorker(t *testing.T) {
	cfg := validConfig()
	cfg.MetricsEnabled = false
	cfg.MetricsRefresh = time.Hour

	if err := Startup(context.Background(), nil, cfg, DBDeps{}, testLogger()); err != nil {
		t.Fatalf("Startup: %v", err)
	}
	if gaugeWorker != nil {
		t.Error("worker should not start when metrics are disabled")
	}
}
