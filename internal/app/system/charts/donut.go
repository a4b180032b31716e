package charts

import (
	"math"
	"strings"

	"github.com/dalemusser/activityboard/internal/app/system/palette"
	"github.com/dalemusser/activityboard/internal/app/system/tally"
)

// DonutOptions controls donut geometry. Zero values take the defaults.
type DonutOptions struct {
	Width        float64 // viewBox width (default 400)
	Height       float64 // viewBox height including legend (default 400)
	LegendHeight float64 // space reserved under the ring (default 36)
	InnerRadius  float64 // default 60
	OuterRadius  float64 // default 120
	PaddingAngle float64 // degrees between adjacent slices (default 5)
}

func (o DonutOptions) withDefaults() DonutOptions {
	if o.Width <= 0 {
		o.Width = 400
	}
	if o.Height <= 0 {
		o.Height = 400
	}
	if o.LegendHeight <= 0 {
		o.LegendHeight = 36
	}
	if o.InnerRadius <= 0 {
		o.InnerRadius = 60
	}
	if o.OuterRadius <= 0 {
		o.OuterRadius = 120
	}
	if o.PaddingAngle < 0 {
		o.PaddingAngle = 0
	} else if o.PaddingAngle == 0 {
		o.PaddingAngle = 5
	}
	return o
}

// Slice is one annular sector of the donut.
type Slice struct {
	Label       string
	Slug        string
	Value       int
	StartAngle  float64 // degrees counter-clockwise from 3 o'clock
	EndAngle    float64
	Path        string
	Fill        string // url(#<gradient id>)
	Stroke      string
	StrokeWidth int
	Tooltip     Tooltip
}

// Sweep is the angular size of the slice in degrees.
func (s Slice) Sweep() float64 { return s.EndAngle - s.StartAngle }

// Donut is the proportion chart view model.
type Donut struct {
	ID          string
	Width       string
	Height      string
	CX, CY      string
	InnerRadius string
	OuterRadius string
	Gradients   []GradientDef
	Slices      []Slice
	Legend      []LegendItem
	LegendY     string
	Empty       bool // all counts are zero; template draws a placeholder ring
	EmptyPath   string
}

// NewDonut lays out one slice per non-zero entry, starting at 3 o'clock and
// running counter-clockwise. Padding follows every non-zero slice, a lone
// slice included, since the ring closes on itself; the remaining angle is
// split proportionally to value.
func NewDonut(id string, c tally.Counts, p tally.Percenter, opts DonutOptions) Donut {
	o := opts.withDefaults()
	cx := o.Width / 2
	cy := (o.Height - o.LegendHeight) / 2

	entries := c.Entries()
	statuses := statusesOf(entries)

	d := Donut{
		ID:          id,
		Width:       num(o.Width),
		Height:      num(o.Height),
		CX:          num(cx),
		CY:          num(cy),
		InnerRadius: num(o.InnerRadius),
		OuterRadius: num(o.OuterRadius),
		Gradients:   gradients(id, statuses),
		Legend:      legend(statuses),
		LegendY:     num(o.Height - o.LegendHeight/2),
	}

	total := c.Sum()
	nonZero := 0
	for _, e := range entries {
		if e.Count > 0 {
			nonZero++
		}
	}
	if total == 0 || nonZero == 0 {
		d.Empty = true
		d.EmptyPath = ringPath(cx, cy, o.InnerRadius, o.OuterRadius)
		return d
	}

	padding := o.PaddingAngle
	available := 360 - padding*float64(nonZero)
	if available < 0 {
		available = 0
	}

	angle := 0.0
	for _, e := range entries {
		if e.Count == 0 {
			continue
		}
		sweep := available * float64(e.Count) / float64(total)
		start, end := angle, angle+sweep
		sw := palette.For(e.Status)

		path := sectorPath(cx, cy, o.InnerRadius, o.OuterRadius, start, end)

		d.Slices = append(d.Slices, Slice{
			Label:       string(e.Status),
			Slug:        e.Status.Slug(),
			Value:       e.Count,
			StartAngle:  start,
			EndAngle:    end,
			Path:        path,
			Fill:        "url(#" + GradientID(id, e.Status) + ")",
			Stroke:      sw.Color,
			StrokeWidth: 2,
			Tooltip:     NewTooltip(e.Status, e.Count, c, p),
		})
		angle = end + padding
	}
	return d
}

// polar converts an angle (degrees counter-clockwise from 3 o'clock) to a
// point. SVG y grows downward.
func polar(cx, cy, r, deg float64) (float64, float64) {
	rad := deg * math.Pi / 180
	return cx + r*math.Cos(rad), cy - r*math.Sin(rad)
}

// sectorPath draws an annular sector between two angles. The outer arc runs
// counter-clockwise (sweep flag 0) and the inner arc returns clockwise.
func sectorPath(cx, cy, inner, outer, start, end float64) string {
	large := "0"
	if end-start > 180 {
		large = "1"
	}
	ox1, oy1 := polar(cx, cy, outer, start)
	ox2, oy2 := polar(cx, cy, outer, end)
	ix2, iy2 := polar(cx, cy, inner, end)
	ix1, iy1 := polar(cx, cy, inner, start)

	var b strings.Builder
	b.WriteString("M" + num(ox1) + "," + num(oy1))
	b.WriteString(" A" + num(outer) + "," + num(outer) + " 0 " + large + " 0 " + num(ox2) + "," + num(oy2))
	b.WriteString(" L" + num(ix2) + "," + num(iy2))
	b.WriteString(" A" + num(inner) + "," + num(inner) + " 0 " + large + " 1 " + num(ix1) + "," + num(iy1))
	b.WriteString(" Z")
	return b.String()
}

// ringPath draws a full annulus as two half-circle arcs per radius with the
// even-odd rule cutting out the hole.
func ringPath(cx, cy, inner, outer float64) string {
	var b strings.Builder
	b.WriteString("M" + num(cx) + "," + num(cy-outer))
	b.WriteString(" A" + num(outer) + "," + num(outer) + " 0 1 1 " + num(cx) + "," + num(cy+outer))
	b.WriteString(" A" + num(outer) + "," + num(outer) + " 0 1 1 " + num(cx) + "," + num(cy-outer))
	b.WriteString(" Z")
	b.WriteString(" M" + num(cx) + "," + num(cy-inner))
	b.WriteString(" A" + num(inner) + "," + num(inner) + " 0 1 0 " + num(cx) + "," + num(cy+inner))
	b.WriteString(" A" + num(inner) + "," + num(inner) + " 0 1 0 " + num(cx) + "," + num(cy-inner))
	b.WriteString(" Z")
	return b.String()
}
