package viz

import (
	"math"

	"github.com/charmbracelet/lipgloss"

	"github.com/GerhardMe/spacetime/internal/diagram"
	"github.com/GerhardMe/spacetime/internal/relativity"
)

// Color classes stamped on canvas cells. Object world lines start at
// ClassObject; object i uses ObjectClass(i).
const (
	ClassText uint8 = iota
	ClassGrid
	ClassAxis
	ClassCone
	ClassPresent
	ClassObserver
	ClassObject
)

// maxObjectClasses keeps object classes inside the byte range left
// above the fixed classes.
const maxObjectClasses = 256 - int(ClassObject)

// ObjectClass returns the color class for the i-th object trace.
func ObjectClass(i int) uint8 {
	return ClassObject + uint8(i%maxObjectClasses)
}

// ClassColors returns the color of every class a render of d can emit,
// indexed by class byte: the theme's fixed roles followed by one entry
// per object trace, honoring per-object color overrides.
func ClassColors(th Theme, d *diagram.Diagram) []lipgloss.Color {
	colors := []lipgloss.Color{
		th.Text, th.Grid, th.Axis, th.Cone, th.Present, th.Observer,
	}
	for i, tr := range d.Objects {
		if i >= maxObjectClasses {
			break
		}
		c := th.ObjectColor(i)
		if tr.Object.Color != "" {
			c = lipgloss.Color(tr.Object.Color)
		}
		colors = append(colors, c)
	}
	return colors
}

// Palette builds the per-class style slice Canvas.Styled consumes.
func Palette(th Theme, d *diagram.Diagram) []lipgloss.Style {
	colors := ClassColors(th, d)
	styles := make([]lipgloss.Style, len(colors))
	for i, c := range colors {
		styles[i] = lipgloss.NewStyle().Foreground(c)
	}
	return styles
}

// gridMinDots is the smallest spacing between grid lines before the
// step widens to the next nice value.
const gridMinDots = 12.0

// NiceStep rounds raw up to the next 1, 2 or 5 times a power of ten.
func NiceStep(raw float64) float64 {
	if raw <= 0 || math.IsInf(raw, 0) || math.IsNaN(raw) {
		return 1
	}
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	for _, m := range []float64{1, 2, 5} {
		if mag*m >= raw {
			return mag * m
		}
	}
	return mag * 10
}

// GridStep returns the world spacing between grid lines at the
// viewport's current zoom.
func GridStep(vp Viewport) float64 {
	return NiceStep(gridMinDots / vp.Scale)
}

// Render rasterizes one diagram onto the canvas: grid and axes first,
// then lightcones, simultaneity and present lines, world lines, ticks
// and finally the observer line, so the layers that matter most win
// each cell's color class. Traces flagged at infinity carry no
// geometry and are skipped without comment.
func Render(c *Canvas, d *diagram.Diagram, vp Viewport, grid bool) {
	c.Clear()
	if grid {
		drawGrid(c, vp)
	}
	drawAxes(c, vp)

	for _, tr := range d.Objects {
		drawDashed(c, vp, tr.ConeLeft, 3, 2, ClassCone)
		drawDashed(c, vp, tr.ConeRight, 3, 2, ClassCone)
	}
	if d.Present != nil {
		drawSegment(c, vp, d.Present, ClassPresent)
	}
	for i, tr := range d.Objects {
		class := ObjectClass(i)
		drawDashed(c, vp, tr.Simultaneity, 2, 3, class)
		drawSegment(c, vp, tr.World, class)
		for _, tick := range tr.Ticks {
			drawTick(c, vp, tick, class)
		}
	}
	drawSegment(c, vp, d.Observer, ClassObserver)
}

func drawGrid(c *Canvas, vp Viewport) {
	w := vp.Window()
	step := GridStep(vp)
	for x := math.Ceil(w.XMin/step) * step; x <= w.XMax; x += step {
		a := relativity.Event{X: x, T: w.TMin}
		b := relativity.Event{X: x, T: w.TMax}
		drawDashed(c, vp, []relativity.Event{a, b}, 1, 3, ClassGrid)
	}
	for t := math.Ceil(w.TMin/step) * step; t <= w.TMax; t += step {
		a := relativity.Event{X: w.XMin, T: t}
		b := relativity.Event{X: w.XMax, T: t}
		drawDashed(c, vp, []relativity.Event{a, b}, 1, 3, ClassGrid)
	}
}

func drawAxes(c *Canvas, vp Viewport) {
	w := vp.Window()
	if w.XMin <= 0 && 0 <= w.XMax {
		seg := []relativity.Event{{X: 0, T: w.TMin}, {X: 0, T: w.TMax}}
		drawSegment(c, vp, seg, ClassAxis)
	}
	if w.TMin <= 0 && 0 <= w.TMax {
		seg := []relativity.Event{{X: w.XMin, T: 0}, {X: w.XMax, T: 0}}
		drawSegment(c, vp, seg, ClassAxis)
	}
}

func drawSegment(c *Canvas, vp Viewport, seg []relativity.Event, class uint8) {
	if len(seg) < 2 {
		return
	}
	a, b, ok := vp.ClipSegment(seg[0], seg[1])
	if !ok {
		return
	}
	x0, y0 := vp.ToScreen(a)
	x1, y1 := vp.ToScreen(b)
	c.DrawLineColored(x0, y0, x1, y1, class)
}

func drawDashed(c *Canvas, vp Viewport, seg []relativity.Event, on, off int, class uint8) {
	if len(seg) < 2 {
		return
	}
	a, b, ok := vp.ClipSegment(seg[0], seg[1])
	if !ok {
		return
	}
	x0, y0 := vp.ToScreen(a)
	x1, y1 := vp.ToScreen(b)
	c.DrawLineDashed(x0, y0, x1, y1, on, off, class)
}

// drawTick marks a clock tick as a small cross so it stays readable on
// top of the world line it sits on.
func drawTick(c *Canvas, vp Viewport, e relativity.Event, class uint8) {
	w := vp.Window()
	if e.X < w.XMin || e.X > w.XMax || e.T < w.TMin || e.T > w.TMax {
		return
	}
	x, y := vp.ToScreen(e)
	c.SetColored(x, y, class)
	c.SetColored(x-1, y, class)
	c.SetColored(x+1, y, class)
	c.SetColored(x, y-1, class)
	c.SetColored(x, y+1, class)
}
