package palette_test

import (
	"strings"
	"testing"

	"github.com/dalemusser/activityboard/internal/app/system/palette"
	"github.com/dalemusser/activityboard/internal/domain/models"
)

func TestValidate(t *testing.T) {
	if err := palette.Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}
}

func TestColors(t *testing.T) {
	tests := []struct {
		status   models.Status
		color    string
		from, to string
		icon     palette.IconName
	}{
		{models.StatusRealizado, "#10b981", "#10b981", "#059669", palette.IconCheckCircle},
		{models.StatusPendiente, "#f59e0b", "#f59e0b", "#d97706", palette.IconClock},
		{models.StatusPospuesto, "#ef4444", "#ef4444", "#dc2626", palette.IconAlertCircle},
		{models.StatusSinRealizar, "#6b7280", "#fff", "#ffffff", palette.IconXCircle},
	}
	for _, tt := range tests {
		sw := palette.For(tt.status)
		if sw.Color != tt.color {
			t.Errorf("%s color = %q, want %q", tt.status, sw.Color, tt.color)
		}
		from, to := palette.Gradient(tt.status)
		if from != tt.from || to != tt.to {
			t.Errorf("%s gradient = %s->%s, want %s->%s", tt.status, from, to, tt.from, tt.to)
		}
		if sw.Icon != tt.icon {
			t.Errorf("%s icon = %q, want %q", tt.status, sw.Icon, tt.icon)
		}
	}
}

func TestTint(t *testing.T) {
	if got := palette.Tint(models.StatusRealizado); got != "#10b98115" {
		t.Errorf("Tint(Realizado) = %q, want #10b98115", got)
	}
}

func TestFor_UnknownStatusIsNeutral(t *testing.T) {
	sw := palette.For("Cancelado")
	if sw.Color != palette.Muted {
		t.Errorf("unknown status color = %q, want %q", sw.Color, palette.Muted)
	}
}

func TestIcon(t *testing.T) {
	html := string(palette.Icon(palette.IconClock, "#f59e0b", 24))
	if !strings.Contains(html, `stroke="#f59e0b"`) {
		t.Errorf("icon missing stroke color: %s", html)
	}
	if !strings.Contains(html, `width="24"`) {
		t.Errorf("icon missing size: %s", html)
	}
	if palette.Icon("nope", "", 16) != "" {
		t.Error("unknown icon should render empty")
	}
	if !strings.Contains(string(palette.Icon(palette.IconMoon, "", 16)), "currentColor") {
		t.Error("empty color should default to currentColor")
	}
}
