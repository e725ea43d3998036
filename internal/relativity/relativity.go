package relativity

import "math"

// DenominatorEpsilon is the threshold below which the world-line
// reconstruction denominator 1 - v*V counts as zero and the line is
// reported as unreachable. The value is a tunable, not physics; it
// only needs to sit well below anything a clamped velocity pair can
// produce.
const DenominatorEpsilon = 1e-10

// LightlikeEpsilon bounds the squared-interval band that Classify
// reports as lightlike. The comparison is absolute, so it suits the
// coordinate scales of a diagram window rather than arbitrary input.
const LightlikeEpsilon = 1e-12

// Event is a point in 1+1 spacetime. X is the spatial coordinate and T
// the time coordinate, both in the same frame.
type Event struct {
	X float64
	T float64
}

// Gamma returns the Lorentz factor 1/sqrt(1-v*v). For |v| >= 1 it
// returns +Inf rather than NaN so downstream arithmetic degrades to
// infinities instead of poisoning every coordinate.
func Gamma(v float64) float64 {
	if v*v >= 1 {
		return math.Inf(1)
	}
	return 1 / math.Sqrt(1-v*v)
}

// Boost expresses a lab-frame event in the frame moving at velocity v
// relative to the lab:
//
//	x' = g(v) * (x - v*t)
//	t' = g(v) * (t - v*x)
//
// Boosting by -v inverts the transform. Components become non-finite
// when |v| >= 1, inherited from Gamma.
func Boost(e Event, v float64) Event {
	g := Gamma(v)
	return Event{
		X: g * (e.X - v*e.T),
		T: g * (e.T - v*e.X),
	}
}

// ComposeVelocity returns the velocity, as measured in a frame moving
// at v relative to the lab, of an object moving at u in the lab:
// (u - v) / (1 - u*v). Strictly sub-unit u and v compose to a strictly
// sub-unit result, and u of +1 or -1 maps to itself for any |v| < 1.
// The quotient is undefined at u*v = 1 and yields NaN there.
func ComposeVelocity(u, v float64) float64 {
	return (u - v) / (1 - u*v)
}

// Interval returns the squared spacetime interval (dt)^2 - (dx)^2
// between two events. The interval is invariant under Boost for any
// |v| < 1.
func Interval(a, b Event) float64 {
	dx := b.X - a.X
	dt := b.T - a.T
	return dt*dt - dx*dx
}

// Separation classifies the causal relation between two events.
type Separation int

const (
	Spacelike Separation = iota
	Lightlike
	Timelike
)

func (s Separation) String() string {
	switch s {
	case Lightlike:
		return "lightlike"
	case Timelike:
		return "timelike"
	default:
		return "spacelike"
	}
}

// Classify reports whether two events are timelike, lightlike or
// spacelike separated. Squared intervals within LightlikeEpsilon of
// zero count as lightlike.
func Classify(a, b Event) Separation {
	s := Interval(a, b)
	switch {
	case math.Abs(s) < LightlikeEpsilon:
		return Lightlike
	case s > 0:
		return Timelike
	default:
		return Spacelike
	}
}
