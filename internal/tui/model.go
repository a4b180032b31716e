package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dalemusser/activityboard/internal/app/system/tally"
)

// Tab selects which body the dashboard shows
type Tab int

const (
	TabCharts Tab = iota
	TabDetails
)

const tabCount = 2

// String returns the tab's query-string name.
func (t Tab) String() string {
	if t == TabDetails {
		return "details"
	}
	return "charts"
}

// ParseTab maps "charts"/"details" to a Tab; anything else is TabCharts.
func ParseTab(s string) Tab {
	if s == "details" {
		return TabDetails
	}
	return TabCharts
}

// Model is the terminal dashboard model
type Model struct {
	// Data
	title     string
	counts    tally.Counts
	percenter tally.Percenter

	// UI state
	width     int
	height    int
	activeTab Tab
}

// ModelConfig holds initial data for the TUI model
type ModelConfig struct {
	Title      string
	Counts     tally.Counts
	Percenter  tally.Percenter
	InitialTab Tab
}

// NewModel creates a new TUI model
func NewModel(cfg ModelConfig) Model {
	title := cfg.Title
	if title == "" {
		title = "Panel de Actividades"
	}
	return Model{
		title:     title,
		counts:    cfg.Counts,
		percenter: cfg.Percenter,
		activeTab: cfg.InitialTab,
		width:     80,
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// ActiveTab returns the tab currently shown
func (m Model) ActiveTab() Tab {
	return m.activeTab
}
