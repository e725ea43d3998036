package scene

import "github.com/GerhardMe/spacetime/internal/relativity"

// Observer receives change notifications from a Scene. SceneChanged
// fires synchronously after each mutation settles; implementations
// must not mutate the scene from inside it.
type Observer interface {
	SceneChanged()
}

// Scene owns one object registry and one frame selector and is the
// single mutation point for both.
type Scene struct {
	registry Registry
	selector FrameSelector
	nextSub  int
	subs     map[int]Observer
}

// New returns an empty scene in the lab frame.
func New() *Scene {
	return &Scene{subs: make(map[int]Observer)}
}

// Subscribe registers obs for change notifications and returns a
// function that removes the registration.
func (s *Scene) Subscribe(obs Observer) (unsubscribe func()) {
	id := s.nextSub
	s.nextSub++
	s.subs[id] = obs
	return func() { delete(s.subs, id) }
}

func (s *Scene) notify() {
	for _, obs := range s.subs {
		obs.SceneChanged()
	}
}

// AddObject creates an object from the given fields and stores it,
// returning the stored value with its assigned id. A velocity outside
// the clamp range yields the fastest legal object rather than an
// error.
func (s *Scene) AddObject(name string, x0, v float64, color string) Object {
	obj := s.registry.Add(Object{Name: name, X0: x0, V: v, Color: color})
	s.notify()
	return obj
}

// RemoveObject deletes the object with the given id. When that object
// is the comoving frame reference, the frame falls back to the lab
// frame in the same step. An absent id reports false and notifies
// nobody.
func (s *Scene) RemoveObject(id string) bool {
	if !s.registry.Remove(id) {
		return false
	}
	if s.selector.ObjectID() == id {
		s.selector.SelectLab()
	}
	s.notify()
	return true
}

// SelectLab switches rendering to the lab frame.
func (s *Scene) SelectLab() {
	s.selector.SelectLab()
	s.notify()
}

// SelectComoving switches rendering to the frame of the object with
// the given id. Reports false and stays put when the id is unknown.
func (s *Scene) SelectComoving(id string) bool {
	if _, ok := s.registry.Get(id); !ok {
		return false
	}
	s.selector.SelectComoving(id)
	s.notify()
	return true
}

// SetFreeform switches rendering to a frame with the given velocity
// and lab offset.
func (s *Scene) SetFreeform(v, x0 float64) {
	s.selector.SetFreeform(v, x0)
	s.notify()
}

// MatchObject copies the object's velocity and position into the
// freeform frame, one-shot. Reports false when the id is unknown.
func (s *Scene) MatchObject(id string) bool {
	obj, ok := s.registry.Get(id)
	if !ok {
		return false
	}
	s.selector.Match(obj)
	s.notify()
	return true
}

// Objects returns the registry contents in insertion order.
func (s *Scene) Objects() []Object { return s.registry.List() }

// Object returns the object with the given id.
func (s *Scene) Object(id string) (Object, bool) { return s.registry.Get(id) }

// Len returns the number of objects.
func (s *Scene) Len() int { return s.registry.Len() }

// Frame returns the effective observer frame.
func (s *Scene) Frame() relativity.Frame { return s.selector.Resolve(&s.registry) }

// FrameMode returns the current selection mode.
func (s *Scene) FrameMode() FrameMode { return s.selector.Mode() }

// FrameObjectID returns the comoving reference id, or "" outside
// comoving mode.
func (s *Scene) FrameObjectID() string { return s.selector.ObjectID() }

// Freeform returns the freeform frame fields.
func (s *Scene) Freeform() (v, x0 float64) { return s.selector.Freeform() }
