package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dalemusser/activityboard/internal/app/system/tally"
	"github.com/dalemusser/activityboard/internal/domain/models"
)

func testModel() Model {
	return NewModel(ModelConfig{
		Counts:    tally.Default(),
		Percenter: tally.DefaultPercenter(),
	})
}

func TestNewModel_Defaults(t *testing.T) {
	model := testModel()

	if model.ActiveTab() != TabCharts {
		t.Errorf("expected charts tab, got %v", model.ActiveTab())
	}
	if model.title != "Panel de Actividades" {
		t.Errorf("unexpected title %q", model.title)
	}
}

func TestUpdate_TabCycles(t *testing.T) {
	model := testModel()

	newModel, _ := model.Update(tea.KeyMsg{Type: tea.KeyTab})
	m := newModel.(Model)
	if m.ActiveTab() != TabDetails {
		t.Fatalf("expected details after tab, got %v", m.ActiveTab())
	}

	newModel, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = newModel.(Model)
	if m.ActiveTab() != TabCharts {
		t.Errorf("expected tab to wrap to charts, got %v", m.ActiveTab())
	}
}

func TestUpdate_ShiftTabCyclesBack(t *testing.T) {
	model := testModel()

	newModel, _ := model.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if newModel.(Model).ActiveTab() != TabDetails {
		t.Errorf("expected details after shift+tab")
	}
}

func TestUpdate_DirectSelection(t *testing.T) {
	model := testModel()

	newModel, _ := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("d")})
	m := newModel.(Model)
	if m.ActiveTab() != TabDetails {
		t.Fatalf("expected details after 'd'")
	}

	// Selecting the active tab again is a no-op.
	newModel, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("d")})
	m = newModel.(Model)
	if m.ActiveTab() != TabDetails {
		t.Fatalf("expected details to stay active")
	}

	newModel, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c")})
	if newModel.(Model).ActiveTab() != TabCharts {
		t.Errorf("expected charts after 'c'")
	}
}

func TestUpdate_Quit(t *testing.T) {
	model := testModel()

	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune("q")},
		{Type: tea.KeyCtrlC},
	} {
		_, cmd := model.Update(key)
		if cmd == nil {
			t.Fatalf("%s: expected quit command", key.String())
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%s: expected tea.QuitMsg", key.String())
		}
	}
}

func TestUpdate_WindowSize(t *testing.T) {
	model := testModel()

	newModel, _ := model.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m := newModel.(Model)
	if m.width != 120 || m.height != 40 {
		t.Errorf("expected 120x40, got %dx%d", m.width, m.height)
	}
}

func TestView_ChartsTabOnly(t *testing.T) {
	view := testModel().View()

	for _, want := range []string{"Panel de Actividades", chartsTitle, proportionHead, "Realizado", "Sin Realizar"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected view to contain %q", want)
		}
	}
	if strings.Contains(view, detailsTitle) {
		t.Error("charts view should not contain the details body")
	}
}

func TestView_DetailsTabOnly(t *testing.T) {
	newModel, _ := testModel().Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("d")})
	view := newModel.(Model).View()

	if !strings.Contains(view, detailsTitle) {
		t.Errorf("expected details body")
	}
	if strings.Contains(view, chartsTitle) {
		t.Error("details view should not contain the charts body")
	}
	for _, want := range []string{"73.2% del total", "7.3% del total", "12.2% del total"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected view to contain %q", want)
		}
	}
}

func TestView_SumBase(t *testing.T) {
	c, err := tally.New(map[models.Status]int{
		models.StatusRealizado:   1,
		models.StatusPendiente:   1,
		models.StatusPospuesto:   1,
		models.StatusSinRealizar: 1,
	})
	if err != nil {
		t.Fatalf("tally.New: %v", err)
	}
	view := Render("x", c, tally.Percenter{Base: tally.BaseSum}, TabDetails, 80)
	if got := strings.Count(view, "25.0% del total"); got != 4 {
		t.Errorf("expected 4 rows at 25.0%%, got %d", got)
	}
}

func TestProportions(t *testing.T) {
	tests := []struct {
		name   string
		counts map[models.Status]int
		width  int
		want   []int
	}{
		{
			name:  "default data fills width",
			width: 41,
			want:  []int{30, 3, 3, 5},
		},
		{
			name: "all zero",
			counts: map[models.Status]int{
				models.StatusRealizado:   0,
				models.StatusPendiente:   0,
				models.StatusPospuesto:   0,
				models.StatusSinRealizar: 0,
			},
			width:  40,
			want:   []int{0, 0, 0, 0},
		},
		{
			name: "remainders distributed",
			counts: map[models.Status]int{
				models.StatusRealizado:   1,
				models.StatusPendiente:   1,
				models.StatusPospuesto:   1,
				models.StatusSinRealizar: 0,
			},
			width: 10,
			want:  []int{4, 3, 3, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := tally.Default()
			if tt.counts != nil {
				var err error
				c, err = tally.New(tt.counts)
				if err != nil {
					t.Fatalf("tally.New: %v", err)
				}
			}
			got := proportions(c, tt.width)
			if len(got) != len(tt.want) {
				t.Fatalf("len = %d, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("proportions = %v, want %v", got, tt.want)
					break
				}
			}
		})
	}
}

func TestBarLength(t *testing.T) {
	if got := barLength(0, 30, 40); got != 0 {
		t.Errorf("zero value: got %d", got)
	}
	if got := barLength(30, 30, 40); got != 40 {
		t.Errorf("max value: got %d", got)
	}
	if got := barLength(1, 1000, 40); got != 1 {
		t.Errorf("tiny value should get one cell, got %d", got)
	}
}

func TestParseTab(t *testing.T) {
	if ParseTab("details") != TabDetails {
		t.Error("details")
	}
	if ParseTab("bogus") != TabCharts {
		t.Error("unknown should fall back to charts")
	}
	if TabDetails.String() != "details" || TabCharts.String() != "charts" {
		t.Error("String round trip")
	}
}
