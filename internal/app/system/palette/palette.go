// Package palette maps each status to its display colors and icon.
//
// Everything here is a configuration constant. Colors are validated once at
// package init; a malformed hex value is a programming error and panics.
package palette

import (
	"fmt"

	"github.com/dalemusser/activityboard/internal/domain/models"
	"github.com/lucasb-eyer/go-colorful"
)

// Muted is the axis/tick color used by the charts.
const Muted = "#6b7280"

// Swatch is the static styling for one status.
type Swatch struct {
	Status       models.Status
	Color        string // solid color for text, strokes and borders
	GradientFrom string // top stop of the chart fill
	GradientTo   string // bottom stop of the chart fill
	Icon         IconName
}

var swatches = map[models.Status]Swatch{
	models.StatusRealizado: {
		Status:       models.StatusRealizado,
		Color:        "#10b981",
		GradientFrom: "#10b981",
		GradientTo:   "#059669",
		Icon:         IconCheckCircle,
	},
	models.StatusPendiente: {
		Status:       models.StatusPendiente,
		Color:        "#f59e0b",
		GradientFrom: "#f59e0b",
		GradientTo:   "#d97706",
		Icon:         IconClock,
	},
	models.StatusPospuesto: {
		Status:       models.StatusPospuesto,
		Color:        "#ef4444",
		GradientFrom: "#ef4444",
		GradientTo:   "#dc2626",
		Icon:         IconAlertCircle,
	},
	models.StatusSinRealizar: {
		Status:       models.StatusSinRealizar,
		Color:        "#6b7280",
		GradientFrom: "#fff",
		GradientTo:   "#ffffff",
		Icon:         IconXCircle,
	},
}

func init() {
	if err := Validate(); err != nil {
		panic(err)
	}
}

// Validate checks that every status has a swatch with parseable colors.
func Validate() error {
	for _, st := range models.AllStatuses() {
		sw, ok := swatches[st]
		if !ok {
			return fmt.Errorf("palette: no swatch for %q", st)
		}
		for _, hex := range []string{sw.Color, sw.GradientFrom, sw.GradientTo} {
			if _, err := colorful.Hex(hex); err != nil {
				return fmt.Errorf("palette: %s: bad color %q: %w", st, hex, err)
			}
		}
	}
	return nil
}

// For returns the swatch for st. Unknown statuses get a neutral swatch.
func For(st models.Status) Swatch {
	if sw, ok := swatches[st]; ok {
		return sw
	}
	return Swatch{Status: st, Color: Muted, GradientFrom: Muted, GradientTo: Muted, Icon: IconXCircle}
}

// Color returns the solid color for st.
func Color(st models.Status) string { return For(st).Color }

// Gradient returns the top and bottom gradient stops for st.
func Gradient(st models.Status) (string, string) {
	sw := For(st)
	return sw.GradientFrom, sw.GradientTo
}

// Tint returns the status color at 15 hex alpha ("#10b98115"), used behind
// icons.
func Tint(st models.Status) string {
	return normalize(Color(st)) + "15"
}

// Terminal returns a six-digit hex color suitable for lipgloss.
func Terminal(st models.Status) string {
	return normalize(Color(st))
}

// normalize expands shorthand hex ("#fff") to six digits.
func normalize(hex string) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return hex
	}
	return c.Hex()
}
