package scene

import (
	"fmt"
	"math"

	"github.com/google/uuid"
)

// MaxSpeed bounds every stored velocity as a fraction of light speed.
// Clamping here keeps gamma factors finite and the world-line
// denominator well away from zero for every object/frame pairing.
const MaxSpeed = 0.999

// Object is a point particle on an inertial world line, defined in the
// lab frame. X0 is its position at lab time zero, V its velocity.
// Color is opaque display data. Objects are immutable once stored;
// editing one means removing it and adding a replacement.
type Object struct {
	ID    string
	Name  string
	X0    float64
	V     float64
	Color string
}

func newID() string {
	return fmt.Sprintf("obj-%s", uuid.NewString()[:8])
}

// ClampVelocity bounds v to [-MaxSpeed, MaxSpeed]. NaN clamps to zero.
func ClampVelocity(v float64) float64 {
	switch {
	case math.IsNaN(v):
		return 0
	case v > MaxSpeed:
		return MaxSpeed
	case v < -MaxSpeed:
		return -MaxSpeed
	}
	return v
}
