package viewdata_test

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dalemusser/activityboard/internal/app/system/requestlog"
	"github.com/dalemusser/activityboard/internal/app/system/theme"
	"github.com/dalemusser/activityboard/internal/app/system/viewdata"
)

func TestNewBaseVM_Defaults(t *testing.T) {
	viewdata.Init(viewdata.Site{})
	req := httptest.NewRequest("GET", "/?tab=details", nil)

	vm := viewdata.NewBaseVM(req, "Panel")

	if vm.SiteName != viewdata.DefaultSiteName {
		t.Errorf("SiteName = %q", vm.SiteName)
	}
	if vm.Theme != "system" || vm.HTMLClass != "" {
		t.Errorf("Theme = %q, HTMLClass = %q", vm.Theme, vm.HTMLClass)
	}
	if len(vm.ThemeOptions) != 3 {
		t.Fatalf("expected 3 theme options, got %d", len(vm.ThemeOptions))
	}
	if !vm.ThemeOptions[2].Active {
		t.Error("system option should be active")
	}
}

func TestNewBaseVM_DarkTheme(t *testing.T) {
	req := theme.WithTheme(httptest.NewRequest("GET", "/", nil), theme.Dark)
	vm := viewdata.NewBaseVM(req, "")
	if vm.HTMLClass != "dark" {
		t.Errorf("HTMLClass = %q, want dark", vm.HTMLClass)
	}
	if !vm.ThemeOptions[1].Active || vm.ThemeOptions[0].Active {
		t.Error("only the dark option should be active")
	}
}

func TestNewBaseVM_RequestID(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	req = req.WithContext(requestlog.WithID(req.Context(), "abc"))
	if vm := viewdata.NewBaseVM(req, ""); vm.RequestID != "abc" {
		t.Errorf("RequestID = %q", vm.RequestID)
	}
}

func TestInit_SanitisesFooter(t *testing.T) {
	t.Cleanup(func() { viewdata.Init(viewdata.Site{}) })
	viewdata.Init(viewdata.Site{
		Name:       "Operaciones",
		FooterHTML: `<p>Equipo</p><script>alert(1)</script>`,
	})

	vm := viewdata.NewBaseVM(httptest.NewRequest("GET", "/", nil), "")
	if vm.SiteName != "Operaciones" {
		t.Errorf("SiteName = %q", vm.SiteName)
	}
	if strings.Contains(string(vm.FooterHTML), "script") {
		t.Errorf("footer not sanitised: %q", vm.FooterHTML)
	}
}
