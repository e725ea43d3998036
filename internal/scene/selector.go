package scene

import "github.com/GerhardMe/spacetime/internal/relativity"

// FrameMode names the observer-frame selection modes.
type FrameMode int

const (
	// ModeLab renders in the frame the objects are defined in.
	ModeLab FrameMode = iota
	// ModeComoving renders in the frame of one registry object,
	// carrying both its velocity and its position.
	ModeComoving
	// ModeFreeform renders in a frame whose velocity and offset are
	// set directly.
	ModeFreeform
)

func (m FrameMode) String() string {
	switch m {
	case ModeComoving:
		return "comoving"
	case ModeFreeform:
		return "freeform"
	default:
		return "lab"
	}
}

// FrameSelector tracks which frame the diagram renders in. A selector
// always resolves to a concrete frame: lab mode resolves to the zero
// frame, and so does a comoving reference that no longer exists in the
// registry.
type FrameSelector struct {
	mode     FrameMode
	objectID string
	freeV    float64
	freeX0   float64
}

// SelectLab switches to the lab frame.
func (s *FrameSelector) SelectLab() {
	s.mode = ModeLab
	s.objectID = ""
}

// SelectComoving switches to the frame comoving with the object id.
func (s *FrameSelector) SelectComoving(id string) {
	s.mode = ModeComoving
	s.objectID = id
}

// SetFreeform switches to a frame with the given velocity and lab
// offset. The velocity is clamped like any other.
func (s *FrameSelector) SetFreeform(v, x0 float64) {
	s.mode = ModeFreeform
	s.objectID = ""
	s.freeV = ClampVelocity(v)
	s.freeX0 = x0
}

// Match copies obj's velocity and position into the freeform fields
// and switches to freeform mode. The copy is one-shot: the frame keeps
// these values even if the object later changes or disappears.
func (s *FrameSelector) Match(obj Object) {
	s.SetFreeform(obj.V, obj.X0)
}

// Mode returns the current selection mode.
func (s *FrameSelector) Mode() FrameMode { return s.mode }

// ObjectID returns the comoving reference id, or "" outside comoving
// mode.
func (s *FrameSelector) ObjectID() string {
	if s.mode != ModeComoving {
		return ""
	}
	return s.objectID
}

// Freeform returns the freeform velocity and offset fields. They are
// retained across mode switches so freeform mode resumes where it
// left off.
func (s *FrameSelector) Freeform() (v, x0 float64) {
	return s.freeV, s.freeX0
}

// Resolve returns the effective observer frame against reg.
func (s *FrameSelector) Resolve(reg *Registry) relativity.Frame {
	switch s.mode {
	case ModeComoving:
		if obj, ok := reg.Get(s.objectID); ok {
			return relativity.Frame{V: obj.V, X0: obj.X0}
		}
		return relativity.Frame{}
	case ModeFreeform:
		return relativity.Frame{V: s.freeV, X0: s.freeX0}
	default:
		return relativity.Frame{}
	}
}
