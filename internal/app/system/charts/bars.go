package charts

import (
	"math"
	"strconv"
	"strings"

	"github.com/dalemusser/activityboard/internal/app/system/palette"
	"github.com/dalemusser/activityboard/internal/app/system/tally"
	"github.com/dalemusser/activityboard/internal/domain/models"
)

// BarOptions controls bar chart geometry. Zero values take the defaults.
type BarOptions struct {
	Width        float64 // default 500
	Height       float64 // default 400
	MarginTop    float64 // default 20
	MarginRight  float64 // default 10
	MarginBottom float64 // default 30
	MarginLeft   float64 // default 40
	Radius       float64 // top corner radius (default 4)
	TickCount    int     // target number of y ticks (default 5)
	CategoryGap  float64 // fraction of each band left empty (default 0.2)
}

func (o BarOptions) withDefaults() BarOptions {
	if o.Width <= 0 {
		o.Width = 500
	}
	if o.Height <= 0 {
		o.Height = 400
	}
	if o.MarginTop <= 0 {
		o.MarginTop = 20
	}
	if o.MarginRight <= 0 {
		o.MarginRight = 10
	}
	if o.MarginBottom <= 0 {
		o.MarginBottom = 30
	}
	if o.MarginLeft <= 0 {
		o.MarginLeft = 40
	}
	if o.Radius <= 0 {
		o.Radius = 4
	}
	if o.TickCount < 2 {
		o.TickCount = 5
	}
	if o.CategoryGap <= 0 || o.CategoryGap >= 1 {
		o.CategoryGap = 0.2
	}
	return o
}

// Bar is one column of the comparison chart.
type Bar struct {
	Label   string
	Slug    string
	Value   int
	X, Y    float64
	W, H    float64
	Path    string // empty when the value is zero
	Fill    string
	LabelX  string
	LabelY  string
	Tooltip Tooltip
}

// Tick is one y-axis label.
type Tick struct {
	Value int
	Y     string
	Label string
}

// Bars is the comparison chart view model.
type Bars struct {
	ID         string
	Width      string
	Height     string
	Gradients  []GradientDef
	Bars       []Bar
	Ticks      []Tick
	TickX      string
	TickColor  string
	FontSize   int
	AxisMax    int
	PlotTop    float64
	PlotBottom float64
}

// NewBars lays out one bar per status in display order over a y axis whose
// maximum is rounded up to a "nice" integer step.
func NewBars(id string, c tally.Counts, p tally.Percenter, opts BarOptions) Bars {
	o := opts.withDefaults()
	entries := c.Entries()

	maxVal := 0
	for _, e := range entries {
		if e.Count > maxVal {
			maxVal = e.Count
		}
	}
	step, axisMax := niceScale(maxVal, o.TickCount)

	top := o.MarginTop
	bottom := o.Height - o.MarginBottom
	left := o.MarginLeft
	plotW := o.Width - o.MarginLeft - o.MarginRight
	plotH := bottom - top

	b := Bars{
		ID:         id,
		Width:      num(o.Width),
		Height:     num(o.Height),
		Gradients:  gradients(id, statusesOf(entries)),
		TickX:      num(left - 8),
		TickColor:  palette.Muted,
		FontSize:   12,
		AxisMax:    axisMax,
		PlotTop:    top,
		PlotBottom: bottom,
	}

	for v := 0; v <= axisMax; v += step {
		y := bottom - plotH*float64(v)/float64(axisMax)
		b.Ticks = append(b.Ticks, Tick{Value: v, Y: num(y), Label: strconv.Itoa(v)})
	}

	if len(entries) == 0 {
		return b
	}
	band := plotW / float64(len(entries))
	barW := band * (1 - o.CategoryGap)
	for i, e := range entries {
		h := plotH * float64(e.Count) / float64(axisMax)
		x := left + band*float64(i) + (band-barW)/2
		y := bottom - h
		bar := Bar{
			Label:   string(e.Status),
			Slug:    e.Status.Slug(),
			Value:   e.Count,
			X:       x,
			Y:       y,
			W:       barW,
			H:       h,
			Fill:    "url(#" + GradientID(id, e.Status) + ")",
			LabelX:  num(x + barW/2),
			LabelY:  num(bottom + 18),
			Tooltip: NewTooltip(e.Status, e.Count, c, p),
		}
		if h > 0 {
			bar.Path = roundedTopRect(x, y, barW, h, o.Radius)
		}
		b.Bars = append(b.Bars, bar)
	}
	return b
}

// niceScale picks an integer tick step and an axis maximum that is a
// multiple of it and covers maxVal. An all-zero dataset still gets an axis.
func niceScale(maxVal, tickCount int) (step, axisMax int) {
	if maxVal <= 0 {
		return 1, tickCount - 1
	}
	rough := float64(maxVal) / float64(tickCount-1)
	mag := math.Pow(10, math.Floor(math.Log10(rough)))
	var nice float64
	switch r := rough / mag; {
	case r <= 1:
		nice = 1
	case r <= 2:
		nice = 2
	case r <= 5:
		nice = 5
	default:
		nice = 10
	}
	step = int(math.Ceil(nice * mag))
	if step < 1 {
		step = 1
	}
	axisMax = step * int(math.Ceil(float64(maxVal)/float64(step)))
	return step, axisMax
}

// roundedTopRect draws a rectangle whose top two corners are rounded.
func roundedTopRect(x, y, w, h, r float64) string {
	r = math.Min(r, math.Min(w/2, h))
	var b strings.Builder
	b.WriteString("M" + num(x) + "," + num(y+h))
	b.WriteString(" L" + num(x) + "," + num(y+r))
	b.WriteString(" Q" + num(x) + "," + num(y) + " " + num(x+r) + "," + num(y))
	b.WriteString(" L" + num(x+w-r) + "," + num(y))
	b.WriteString(" Q" + num(x+w) + "," + num(y) + " " + num(x+w) + "," + num(y+r))
	b.WriteString(" L" + num(x+w) + "," + num(y+h))
	b.WriteString(" Z")
	return b.String()
}

func statusesOf(entries []tally.Entry) []models.Status {
	out := make([]models.Status, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Status)
	}
	return out
}
