// Package diagram turns a scene and a viewport window into the line
// work a renderer draws: world lines, lightcones, simultaneity lines
// and proper-time ticks, all expressed in the observer frame.
package diagram

import (
	"github.com/GerhardMe/spacetime/internal/relativity"
	"github.com/GerhardMe/spacetime/internal/scene"
)

// Window is the observer-frame region one render pass covers, supplied
// fresh from the current pan/zoom state.
type Window struct {
	TMin, TMax float64
	XMin, XMax float64
}

// Options select the optional line work computed with each pass.
type Options struct {
	LightCones   bool
	Simultaneity bool
	Present      bool
	Ticks        bool
	TickSpacing  float64
}

// ObjectTrace is the drawable geometry of one object in the observer
// frame. When the frame pushes the object's zero-time crossing to
// infinity, AtInfinity is set, the geometry slices are empty and
// renderers skip the object silently.
type ObjectTrace struct {
	Object       scene.Object
	VPrime       float64
	Gamma        float64
	AtInfinity   bool
	World        []relativity.Event
	ConeLeft     []relativity.Event
	ConeRight    []relativity.Event
	Simultaneity []relativity.Event
	Ticks        []relativity.Event
}

// Diagram is one complete render pass worth of geometry.
type Diagram struct {
	Frame    relativity.Frame
	Mode     scene.FrameMode
	Window   Window
	Options  Options
	Objects  []ObjectTrace
	Observer []relativity.Event
	Present  []relativity.Event
}

// Build computes every trace for one scene in a single synchronous
// pass. It never fails: degenerate objects come back flagged so status
// panels can still show them.
func Build(s *scene.Scene, w Window, opts Options) *Diagram {
	return build(s.Objects(), s.Frame(), s.FrameMode(), w, opts)
}

func build(objects []scene.Object, frame relativity.Frame, mode scene.FrameMode, w Window, opts Options) *Diagram {
	d := &Diagram{
		Frame:    frame,
		Mode:     mode,
		Window:   w,
		Options:  opts,
		Observer: relativity.ObserverWorldLine(w.TMin, w.TMax),
	}
	if opts.Present {
		d.Present = relativity.SimultaneityLine(relativity.Event{}, 0, w.XMin, w.XMax)
	}
	for _, obj := range objects {
		d.Objects = append(d.Objects, traceObject(obj, frame, w, opts))
	}
	return d
}

func traceObject(obj scene.Object, frame relativity.Frame, w Window, opts Options) ObjectTrace {
	vp := frame.VelocityOf(obj.V)
	tr := ObjectTrace{
		Object: obj,
		VPrime: vp,
		Gamma:  relativity.Gamma(vp),
	}
	xp, ok := frame.Locate(obj.X0, obj.V)
	if !ok {
		tr.AtInfinity = true
		return tr
	}
	tr.World = frame.WorldLine(obj.X0, obj.V, w.TMin, w.TMax)
	apex := relativity.Event{X: xp}
	if opts.LightCones {
		tr.ConeLeft, tr.ConeRight = relativity.LightCone(apex, w.TMin, w.TMax)
	}
	if opts.Simultaneity {
		tr.Simultaneity = relativity.SimultaneityLine(apex, vp, w.XMin, w.XMax)
	}
	if opts.Ticks {
		tr.Ticks = relativity.ProperTimeTicks(apex, vp, w.TMin, w.TMax, opts.TickSpacing)
	}
	return tr
}
