package scene

import (
	"testing"

	"github.com/GerhardMe/spacetime/internal/relativity"
)

func TestSelectorDefaultsToLab(t *testing.T) {
	var s FrameSelector
	var r Registry
	if s.Mode() != ModeLab {
		t.Errorf("zero selector mode = %v, want lab", s.Mode())
	}
	if f := s.Resolve(&r); f != (relativity.Frame{}) {
		t.Errorf("zero selector resolves to %+v, want zero frame", f)
	}
}

func TestSelectorComoving(t *testing.T) {
	var r Registry
	obj := r.Add(Object{Name: "ship", X0: 2, V: 0.6})

	var s FrameSelector
	s.SelectComoving(obj.ID)
	f := s.Resolve(&r)
	if f.V != 0.6 || f.X0 != 2 {
		t.Errorf("comoving frame = %+v, want V=0.6 X0=2", f)
	}
	if s.ObjectID() != obj.ID {
		t.Errorf("ObjectID() = %q, want %q", s.ObjectID(), obj.ID)
	}
}

func TestSelectorStaleComovingResolvesLab(t *testing.T) {
	var r Registry
	obj := r.Add(Object{Name: "ship", V: 0.6})

	var s FrameSelector
	s.SelectComoving(obj.ID)
	r.Remove(obj.ID)
	if f := s.Resolve(&r); f != (relativity.Frame{}) {
		t.Errorf("stale comoving resolves to %+v, want zero frame", f)
	}
}

func TestSelectorFreeform(t *testing.T) {
	var s FrameSelector
	var r Registry
	s.SetFreeform(0.4, -1.5)
	if s.Mode() != ModeFreeform {
		t.Fatalf("mode = %v, want freeform", s.Mode())
	}
	f := s.Resolve(&r)
	if f.V != 0.4 || f.X0 != -1.5 {
		t.Errorf("freeform frame = %+v", f)
	}
}

func TestSelectorFreeformClamps(t *testing.T) {
	var s FrameSelector
	s.SetFreeform(5, 0)
	if v, _ := s.Freeform(); v != MaxSpeed {
		t.Errorf("freeform velocity %v, want %v", v, MaxSpeed)
	}
}

func TestSelectorMatchIsOneShot(t *testing.T) {
	var r Registry
	obj := r.Add(Object{Name: "ship", X0: 3, V: 0.5})

	var s FrameSelector
	s.Match(obj)
	if s.Mode() != ModeFreeform {
		t.Fatalf("match left mode %v, want freeform", s.Mode())
	}
	// Replacing the object must not move the frame.
	r.Remove(obj.ID)
	r.Add(Object{Name: "ship", X0: 9, V: -0.9})
	f := s.Resolve(&r)
	if f.V != 0.5 || f.X0 != 3 {
		t.Errorf("matched frame moved to %+v, want V=0.5 X0=3", f)
	}
}

func TestSelectorObjectIDOutsideComoving(t *testing.T) {
	var s FrameSelector
	s.SelectComoving("obj-1")
	s.SetFreeform(0.1, 0)
	if id := s.ObjectID(); id != "" {
		t.Errorf("ObjectID() = %q outside comoving mode, want empty", id)
	}
}

func TestFrameModeString(t *testing.T) {
	if ModeLab.String() != "lab" || ModeComoving.String() != "comoving" || ModeFreeform.String() != "freeform" {
		t.Error("unexpected FrameMode names")
	}
}
