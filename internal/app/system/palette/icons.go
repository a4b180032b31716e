package palette

import (
	"fmt"
	"html/template"
)

// IconName identifies one of the inline line icons.
type IconName string

const (
	IconCheckCircle IconName = "check-circle"
	IconClock       IconName = "clock"
	IconAlertCircle IconName = "alert-circle"
	IconXCircle     IconName = "x-circle"
	IconBarChart    IconName = "bar-chart-2"
	IconActivity    IconName = "activity"
	IconSun         IconName = "sun"
	IconMoon        IconName = "moon"
	IconMonitor     IconName = "monitor"
)

// 24x24 stroke icons (lucide geometry).
var iconBodies = map[IconName]string{
	IconCheckCircle: `<path d="M22 11.08V12a10 10 0 1 1-5.93-9.14"/><polyline points="22 4 12 14.01 9 11.01"/>`,
	IconClock:       `<circle cx="12" cy="12" r="10"/><polyline points="12 6 12 12 16 14"/>`,
	IconAlertCircle: `<circle cx="12" cy="12" r="10"/><line x1="12" x2="12" y1="8" y2="12"/><line x1="12" x2="12.01" y1="16" y2="16"/>`,
	IconXCircle:     `<circle cx="12" cy="12" r="10"/><path d="m15 9-6 6"/><path d="m9 9 6 6"/>`,
	IconBarChart:    `<line x1="18" x2="18" y1="20" y2="10"/><line x1="12" x2="12" y1="20" y2="4"/><line x1="6" x2="6" y1="20" y2="14"/>`,
	IconActivity:    `<path d="M22 12h-4l-3 9L9 3l-3 9H2"/>`,
	IconSun:         `<circle cx="12" cy="12" r="4"/><path d="M12 2v2"/><path d="M12 20v2"/><path d="m4.93 4.93 1.41 1.41"/><path d="m17.66 17.66 1.41 1.41"/><path d="M2 12h2"/><path d="M20 12h2"/><path d="m6.34 17.66-1.41 1.41"/><path d="m19.07 4.93-1.41 1.41"/>`,
	IconMoon:        `<path d="M12 3a6 6 0 0 0 9 9 9 9 0 1 1-9-9Z"/>`,
	IconMonitor:     `<rect width="20" height="14" x="2" y="3" rx="2"/><line x1="8" x2="16" y1="21" y2="21"/><line x1="12" x2="12" y1="17" y2="21"/>`,
}

// Icon renders an inline SVG icon of the given pixel size. An empty color
// uses currentColor. Unknown names render an empty string.
func Icon(name IconName, color string, size int) template.HTML {
	body, ok := iconBodies[name]
	if !ok {
		return ""
	}
	if color == "" {
		color = "currentColor"
	}
	// color comes from the swatch table or a caller constant, never from input
	return template.HTML(fmt.Sprintf(
		`<svg class="icon icon-%s" xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 24 24" fill="none" stroke="%s" stroke-width="2" stroke-linecap="round" stroke-linejoin="round" aria-hidden="true">%s</svg>`,
		name, size, size, template.HTMLEscapeString(color), body))
}

// StatusIcon renders the icon for a status tinted with its color.
func StatusIcon(sw Swatch, size int) template.HTML {
	return Icon(sw.Icon, sw.Color, size)
}
