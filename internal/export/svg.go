// Package export renders built diagrams to files: vector SVG and a
// PNG raster of the terminal canvas.
package export

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/GerhardMe/spacetime/internal/diagram"
	"github.com/GerhardMe/spacetime/internal/relativity"
	"github.com/GerhardMe/spacetime/internal/viz"
)

const svgMargin = 24.0

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

// svgMapper converts observer-frame coordinates to SVG pixel space,
// with time running up the page.
type svgMapper struct {
	w             diagram.Window
	width, height float64
}

func (m svgMapper) point(e relativity.Event) (x, y float64) {
	sx := (m.width - 2*svgMargin) / (m.w.XMax - m.w.XMin)
	sy := (m.height - 2*svgMargin) / (m.w.TMax - m.w.TMin)
	x = svgMargin + (e.X-m.w.XMin)*sx
	y = m.height - svgMargin - (e.T-m.w.TMin)*sy
	return x, y
}

func (m svgMapper) line(b *strings.Builder, a, c relativity.Event, stroke string, width float64, dash string) {
	x1, y1 := m.point(a)
	x2, y2 := m.point(c)
	dashAttr := ""
	if dash != "" {
		dashAttr = fmt.Sprintf(` stroke-dasharray="%s"`, dash)
	}
	fmt.Fprintf(b, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="%.1f"%s/>`+"\n",
		x1, y1, x2, y2, stroke, width, dashAttr)
}

func (m svgMapper) segment(b *strings.Builder, seg []relativity.Event, stroke string, width float64, dash string) {
	if len(seg) < 2 {
		return
	}
	m.line(b, seg[0], seg[1], stroke, width, dash)
}

// DiagramToSVG renders one diagram as a standalone SVG document sized
// width x height pixels. Line work is clipped to the diagram window;
// traces flagged at infinity carry no geometry and leave no marks.
// A nil diagram or degenerate window yields an empty string.
func DiagramToSVG(d *diagram.Diagram, width, height int, th viz.Theme, grid bool) string {
	if d == nil || width <= 0 || height <= 0 {
		return ""
	}
	w := d.Window
	if w.XMax <= w.XMin || w.TMax <= w.TMin {
		return ""
	}
	m := svgMapper{w: w, width: float64(width), height: float64(height)}
	colors := viz.ClassColors(th, d)

	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		width, height, width, height)
	fmt.Fprintf(&b, `<rect width="100%%" height="100%%" fill="%s"/>`+"\n", th.Background)
	fmt.Fprintf(&b, `<defs><clipPath id="plot"><rect x="%.1f" y="%.1f" width="%.1f" height="%.1f"/></clipPath></defs>`+"\n",
		svgMargin, svgMargin, m.width-2*svgMargin, m.height-2*svgMargin)
	b.WriteString(`<g clip-path="url(#plot)">` + "\n")

	if grid {
		span := math.Max(w.XMax-w.XMin, w.TMax-w.TMin)
		step := viz.NiceStep(span / 10)
		for x := math.Ceil(w.XMin/step) * step; x <= w.XMax; x += step {
			m.line(&b, relativity.Event{X: x, T: w.TMin}, relativity.Event{X: x, T: w.TMax},
				string(th.Grid), 0.5, "2,4")
		}
		for t := math.Ceil(w.TMin/step) * step; t <= w.TMax; t += step {
			m.line(&b, relativity.Event{X: w.XMin, T: t}, relativity.Event{X: w.XMax, T: t},
				string(th.Grid), 0.5, "2,4")
		}
	}

	if w.XMin <= 0 && 0 <= w.XMax {
		m.line(&b, relativity.Event{X: 0, T: w.TMin}, relativity.Event{X: 0, T: w.TMax},
			string(th.Axis), 1, "")
	}
	if w.TMin <= 0 && 0 <= w.TMax {
		m.line(&b, relativity.Event{X: w.XMin}, relativity.Event{X: w.XMax},
			string(th.Axis), 1, "")
	}

	for _, tr := range d.Objects {
		m.segment(&b, tr.ConeLeft, string(th.Cone), 1, "6,4")
		m.segment(&b, tr.ConeRight, string(th.Cone), 1, "6,4")
	}
	m.segment(&b, d.Present, string(th.Present), 1, "")

	for i, tr := range d.Objects {
		col := objColor(colors, th, i)
		m.segment(&b, tr.Simultaneity, col, 1, "4,6")
		m.segment(&b, tr.World, col, 2, "")
		for _, tick := range tr.Ticks {
			x, y := m.point(tick)
			fmt.Fprintf(&b, `<circle cx="%.1f" cy="%.1f" r="2.5" fill="%s"/>`+"\n", x, y, col)
		}
	}
	m.segment(&b, d.Observer, string(th.Observer), 2, "")
	b.WriteString("</g>\n")

	for i, tr := range d.Objects {
		if tr.AtInfinity || len(tr.World) < 2 {
			continue
		}
		x, y := m.point(tr.World[len(tr.World)-1])
		x = math.Max(svgMargin, math.Min(m.width-svgMargin, x)) + 6
		y = math.Max(svgMargin+12, math.Min(m.height-svgMargin, y))
		fmt.Fprintf(&b, `<text x="%.1f" y="%.1f" fill="%s" font-family="monospace" font-size="12">%s</text>`+"\n",
			x, y, objColor(colors, th, i), xmlEscaper.Replace(tr.Object.Name))
	}

	b.WriteString("</svg>\n")
	return b.String()
}

// objColor looks up the class color for the i-th object, falling back
// to the theme palette when the class table was truncated.
func objColor(colors []lipgloss.Color, th viz.Theme, i int) string {
	idx := int(viz.ClassObject) + i
	if idx < len(colors) {
		return string(colors[idx])
	}
	return string(th.ObjectColor(i))
}
