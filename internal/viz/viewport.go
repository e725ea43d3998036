package viz

import (
	"math"

	"github.com/GerhardMe/spacetime/internal/diagram"
	"github.com/GerhardMe/spacetime/internal/relativity"
)

const (
	// DefaultScale is the starting zoom in dots per world unit.
	DefaultScale = 8.0
	zoomFactor   = 1.25
	minScale     = 0.05
	maxScale     = 512.0
)

// Viewport maps observer-frame coordinates onto canvas dots. Space runs
// right and time runs up, with (CenterX, CenterT) pinned to the middle
// of the canvas. Width and Height are in cells; the dot grid is twice
// as wide and four times as tall.
type Viewport struct {
	CenterX float64
	CenterT float64
	Scale   float64
	Width   int
	Height  int
}

func NewViewport(width, height int) Viewport {
	return Viewport{Scale: DefaultScale, Width: width, Height: height}
}

func (v Viewport) dotsWide() float64 { return float64(v.Width * 2) }
func (v Viewport) dotsHigh() float64 { return float64(v.Height * 4) }

// ToScreen converts an observer-frame event to dot coordinates.
func (v Viewport) ToScreen(e relativity.Event) (x, y int) {
	x = int(math.Round(v.dotsWide()/2 + (e.X-v.CenterX)*v.Scale))
	y = int(math.Round(v.dotsHigh()/2 - (e.T-v.CenterT)*v.Scale))
	return x, y
}

// FromScreen converts dot coordinates back to an observer-frame event
// at the dot's center.
func (v Viewport) FromScreen(x, y int) relativity.Event {
	return relativity.Event{
		X: v.CenterX + (float64(x)-v.dotsWide()/2)/v.Scale,
		T: v.CenterT - (float64(y)-v.dotsHigh()/2)/v.Scale,
	}
}

// Window returns the observer-frame region the canvas covers, handed
// to the diagram builder each render pass.
func (v Viewport) Window() diagram.Window {
	halfX := v.dotsWide() / (2 * v.Scale)
	halfT := v.dotsHigh() / (2 * v.Scale)
	return diagram.Window{
		TMin: v.CenterT - halfT, TMax: v.CenterT + halfT,
		XMin: v.CenterX - halfX, XMax: v.CenterX + halfX,
	}
}

// Pan shifts the view center by world-unit deltas.
func (v *Viewport) Pan(dx, dt float64) {
	v.CenterX += dx
	v.CenterT += dt
}

func (v *Viewport) ZoomIn() {
	v.Scale = math.Min(maxScale, v.Scale*zoomFactor)
}

func (v *Viewport) ZoomOut() {
	v.Scale = math.Max(minScale, v.Scale/zoomFactor)
}

// Reset recenters on the origin at the default zoom.
func (v *Viewport) Reset() {
	v.CenterX, v.CenterT, v.Scale = 0, 0, DefaultScale
}

// FitWindow centers the view on w and zooms so the whole window is
// visible. The canvas aspect ratio rarely matches the window's, so the
// looser axis shows some margin.
func (v *Viewport) FitWindow(w diagram.Window) {
	spanX := w.XMax - w.XMin
	spanT := w.TMax - w.TMin
	if spanX <= 0 || spanT <= 0 {
		v.Reset()
		return
	}
	v.CenterX = (w.XMin + w.XMax) / 2
	v.CenterT = (w.TMin + w.TMax) / 2
	scale := math.Min(v.dotsWide()/spanX, v.dotsHigh()/spanT)
	v.Scale = math.Max(minScale, math.Min(maxScale, scale))
}

// ClipSegment clips the segment a-b to the viewport window
// (Liang-Barsky), so rasterizing stays O(canvas) no matter how far a
// near-light world line runs. ok is false when nothing is visible.
func (v Viewport) ClipSegment(a, b relativity.Event) (ca, cb relativity.Event, ok bool) {
	w := v.Window()
	dx := b.X - a.X
	dt := b.T - a.T
	u0, u1 := 0.0, 1.0

	clip := func(p, q float64) bool {
		if p == 0 {
			return q >= 0
		}
		r := q / p
		if p < 0 {
			if r > u1 {
				return false
			}
			if r > u0 {
				u0 = r
			}
		} else {
			if r < u0 {
				return false
			}
			if r < u1 {
				u1 = r
			}
		}
		return true
	}

	if !clip(-dx, a.X-w.XMin) || !clip(dx, w.XMax-a.X) ||
		!clip(-dt, a.T-w.TMin) || !clip(dt, w.TMax-a.T) {
		return relativity.Event{}, relativity.Event{}, false
	}
	ca = relativity.Event{X: a.X + u0*dx, T: a.T + u0*dt}
	cb = relativity.Event{X: a.X + u1*dx, T: a.T + u1*dt}
	return ca, cb, true
}
