package relativity

import "math"

// maxTicks caps the events returned by ProperTimeTicks so a tiny
// spacing cannot stall a render pass.
const maxTicks = 512

// LightCone returns the two light rays through apex, each as a
// two-endpoint segment spanning frame times [tMin, tMax]. Ray slopes
// are +1 and -1 in every inertial frame, so cones may be computed
// directly in whichever frame is being rendered.
func LightCone(apex Event, tMin, tMax float64) (left, right []Event) {
	left = []Event{
		{X: apex.X - (tMin - apex.T), T: tMin},
		{X: apex.X - (tMax - apex.T), T: tMax},
	}
	right = []Event{
		{X: apex.X + (tMin - apex.T), T: tMin},
		{X: apex.X + (tMax - apex.T), T: tMax},
	}
	return left, right
}

// SimultaneityLine returns the locus of events a clock moving at frame
// velocity u judges simultaneous with through, as a segment over
// [xMin, xMax]. In the rendering frame the line is
// t = through.T + u*(x - through.X); the u = 0 case is the observer's
// own present. Returns nil for |u| >= 1, where simultaneity collapses
// onto the lightcone.
func SimultaneityLine(through Event, u, xMin, xMax float64) []Event {
	if u*u >= 1 {
		return nil
	}
	return []Event{
		{X: xMin, T: through.T + u*(xMin-through.X)},
		{X: xMax, T: through.T + u*(xMax-through.X)},
	}
}

// ProperTimeTicks returns clock-tick events along the world line
// through anchor with frame velocity u, one tick per spacing units of
// proper time, covering frame times [tMin, tMax]. Ticks sit
// spacing*Gamma(u) apart in frame time, with one tick anchored at
// anchor itself. A unit-speed world line carries no proper time and
// yields nil, as does a non-positive spacing. At most maxTicks events
// are returned.
func ProperTimeTicks(anchor Event, u, tMin, tMax, spacing float64) []Event {
	g := Gamma(u)
	if math.IsInf(g, 1) || spacing <= 0 || tMax < tMin {
		return nil
	}
	step := spacing * g
	first := anchor.T + math.Ceil((tMin-anchor.T)/step)*step
	var ticks []Event
	for t := first; t <= tMax && len(ticks) < maxTicks; t += step {
		ticks = append(ticks, Event{X: anchor.X + u*(t-anchor.T), T: t})
	}
	return ticks
}
