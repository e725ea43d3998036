package relativity

import "math"

// Frame is an inertial observer frame: V is its velocity relative to
// the lab and X0 its lab position at lab time zero. The zero value is
// the lab frame itself. A frame comoving with an object carries that
// object's velocity and position, which places the object at the
// frame's spatial origin.
type Frame struct {
	V  float64
	X0 float64
}

// ToFrame expresses a lab-frame event in this frame. The frame origin,
// X0 at lab time zero, maps to (0, 0).
func (f Frame) ToFrame(e Event) Event {
	return Boost(Event{X: e.X - f.X0, T: e.T}, f.V)
}

// FromFrame expresses a frame event in lab coordinates, inverting
// ToFrame.
func (f Frame) FromFrame(e Event) Event {
	lab := Boost(e, -f.V)
	return Event{X: lab.X + f.X0, T: lab.T}
}

// VelocityOf returns the frame velocity of an object moving at u in
// the lab.
func (f Frame) VelocityOf(u float64) float64 {
	return ComposeVelocity(u, f.V)
}

// Locate returns the frame position, at frame time zero, of the
// inertial world line x(t) = x0 + v*t. Solving t' = 0 against the line
// gives the lab crossing at (x0-X0)/den from the frame origin, at lab
// time V*(x0-X0)/den, with den = 1 - v*V. ok is false when |den| falls
// below DenominatorEpsilon, which pushes the crossing to infinity.
func (f Frame) Locate(x0, v float64) (xPrime float64, ok bool) {
	den := 1 - v*f.V
	if math.Abs(den) < DenominatorEpsilon {
		return 0, false
	}
	rel := (x0 - f.X0) / den
	cross := f.ToFrame(Event{X: f.X0 + rel, T: f.V * rel})
	return cross.X, true
}

// WorldLine returns the two endpoint events, at frame times tMin and
// tMax, of the object's world line as seen in this frame. Motion is
// uniform, so two endpoints carry the whole segment. Returns nil when
// Locate reports the line degenerate; callers treat nil as nothing to
// draw.
func (f Frame) WorldLine(x0, v, tMin, tMax float64) []Event {
	xp, ok := f.Locate(x0, v)
	if !ok {
		return nil
	}
	vp := f.VelocityOf(v)
	return []Event{
		{X: xp + vp*tMin, T: tMin},
		{X: xp + vp*tMax, T: tMax},
	}
}

// ObserverWorldLine returns the observer's own world line over
// [tMin, tMax] in the observer's frame. It is x' = 0 for every frame,
// by definition of the frame.
func ObserverWorldLine(tMin, tMax float64) []Event {
	return []Event{{X: 0, T: tMin}, {X: 0, T: tMax}}
}
