package tui

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dalemusser/activityboard/internal/app/system/palette"
	"github.com/dalemusser/activityboard/internal/app/system/tally"
	"github.com/dalemusser/activityboard/internal/domain/models"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(palette.Muted)).
			Padding(0, 1)

	sectionStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	sectionTitleStyle = lipgloss.NewStyle().Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(palette.Muted))

	tabActiveStyle = lipgloss.NewStyle().
			Bold(true).
			Underline(true)

	tabInactiveStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("244"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// Section headings shared with the web dashboard.
const (
	subtitle       = "Visualización detallada del estado de todas las actividades"
	chartsTitle    = "Comparativa de Estados"
	proportionHead = "Distribución de Estados"
	detailsTitle   = "Detalles de Actividades"
	detailsDesc    = "Información detallada de todas las actividades"
)

// Glyphs for the status icons.
var statusGlyphs = map[palette.IconName]string{
	palette.IconCheckCircle: "✔",
	palette.IconClock:       "◷",
	palette.IconAlertCircle: "!",
	palette.IconXCircle:     "✖",
}

func statusStyle(st models.Status) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(palette.Terminal(st)))
}

// View renders the model
func (m Model) View() string {
	return Render(m.title, m.counts, m.percenter, m.activeTab, m.width) +
		"\n" + helpStyle.Render("tab: cambiar · c: gráficas · d: detalles · q: salir")
}

// Render draws the whole dashboard for one tab. Used by View and by the
// non-interactive print command.
func Render(title string, c tally.Counts, p tally.Percenter, tab Tab, width int) string {
	if width <= 0 {
		width = 80
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render(subtitle))
	b.WriteString("\n\n")
	b.WriteString(renderCards(c))
	b.WriteString("\n")
	b.WriteString(renderTabs(tab))
	b.WriteString("\n")
	if tab == TabDetails {
		b.WriteString(renderDetails(c, p))
	} else {
		b.WriteString(renderCharts(c, p, width))
	}
	return b.String()
}

func renderCards(c tally.Counts) string {
	cards := make([]string, 0, c.Len())
	for _, e := range c.Entries() {
		sw := palette.For(e.Status)
		st := statusStyle(e.Status)
		body := mutedStyle.Render(string(e.Status)) + "\n" +
			st.Bold(true).Render(strconv.Itoa(e.Count)) + "  " + st.Render(statusGlyphs[sw.Icon])
		cards = append(cards, sectionStyle.
			BorderForeground(lipgloss.Color(palette.Terminal(e.Status))).
			Render(body))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func renderTabs(active Tab) string {
	labels := []struct {
		tab   Tab
		label string
	}{
		{TabCharts, "▮ Gráficas"},
		{TabDetails, "∿ Detalles"},
	}
	parts := make([]string, 0, len(labels))
	for _, l := range labels {
		if l.tab == active {
			parts = append(parts, tabActiveStyle.Render(l.label))
		} else {
			parts = append(parts, tabInactiveStyle.Render(l.label))
		}
	}
	return " " + strings.Join(parts, "   ")
}

func renderCharts(c tally.Counts, p tally.Percenter, width int) string {
	entries := c.Entries()

	labelW := 0
	maxVal := 0
	for _, e := range entries {
		if n := lipgloss.Width(string(e.Status)); n > labelW {
			labelW = n
		}
		if e.Count > maxVal {
			maxVal = e.Count
		}
	}

	barW := width - labelW - 16
	if barW < 10 {
		barW = 10
	}

	var bars strings.Builder
	bars.WriteString(sectionTitleStyle.Render(chartsTitle))
	for _, e := range entries {
		n := barLength(e.Count, maxVal, barW)
		fmt.Fprintf(&bars, "\n%-*s %s %d", labelW, string(e.Status),
			statusStyle(e.Status).Render(strings.Repeat("█", n)), e.Count)
	}

	var strip strings.Builder
	strip.WriteString(sectionTitleStyle.Render(proportionHead))
	strip.WriteString("\n")
	segments := proportions(c, barW+labelW)
	for i, e := range entries {
		strip.WriteString(statusStyle(e.Status).Render(strings.Repeat("▇", segments[i])))
	}
	for _, e := range entries {
		fmt.Fprintf(&strip, "\n%s %s %s", statusStyle(e.Status).Render("■"), string(e.Status),
			mutedStyle.Render(p.Label(e.Count, c)))
	}

	return sectionStyle.Render(bars.String()) + "\n" + sectionStyle.Render(strip.String())
}

func renderDetails(c tally.Counts, p tally.Percenter) string {
	var b strings.Builder
	b.WriteString(sectionTitleStyle.Render(detailsTitle))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(detailsDesc))
	for _, e := range c.Entries() {
		sw := palette.For(e.Status)
		st := statusStyle(e.Status)
		fmt.Fprintf(&b, "\n%s %s  %s  %s",
			st.Render(statusGlyphs[sw.Icon]),
			st.Render(fmt.Sprintf("%-12s", string(e.Status))),
			lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("%3d", e.Count)),
			mutedStyle.Render(p.Label(e.Count, c)))
	}
	return sectionStyle.Render(b.String())
}

// barLength scales v against maxVal into at most width cells; any non-zero
// value gets at least one cell.
func barLength(v, maxVal, width int) int {
	if v <= 0 || maxVal <= 0 {
		return 0
	}
	n := int(math.Round(float64(v) / float64(maxVal) * float64(width)))
	if n < 1 {
		n = 1
	}
	return n
}

// proportions splits width cells across the entries by count using the
// largest remainder method, so the segments always add up to width (or to
// zero when every count is zero).
func proportions(c tally.Counts, width int) []int {
	entries := c.Entries()
	out := make([]int, len(entries))
	total := c.Sum()
	if total == 0 || width <= 0 {
		return out
	}

	type rem struct {
		i    int
		frac float64
	}
	rems := make([]rem, 0, len(entries))
	used := 0
	for i, e := range entries {
		exact := float64(e.Count) / float64(total) * float64(width)
		out[i] = int(math.Floor(exact))
		used += out[i]
		rems = append(rems, rem{i: i, frac: exact - float64(out[i])})
	}
	for left := width - used; left > 0; left-- {
		best := -1
		for j, r := range rems {
			if best < 0 || r.frac > rems[best].frac {
				best = j
			}
		}
		out[rems[best].i]++
		rems[best].frac = -1
	}
	return out
}
