package scene

// Registry is an ordered collection of objects. Insertion order is
// preserved and drives display order and frame-selection candidates.
// Not safe for concurrent use; the application mutates it from a
// single event loop.
type Registry struct {
	objects []Object
}

// Add stores obj, assigning a fresh ID when it carries none, and
// returns the stored value. The velocity is clamped to
// [-MaxSpeed, MaxSpeed] on the way in.
func (r *Registry) Add(obj Object) Object {
	if obj.ID == "" {
		obj.ID = newID()
	}
	obj.V = ClampVelocity(obj.V)
	r.objects = append(r.objects, obj)
	return obj
}

// Remove deletes the object with the given id, preserving the order of
// the rest. Removing an absent id reports false and changes nothing.
func (r *Registry) Remove(id string) bool {
	for i, o := range r.objects {
		if o.ID == id {
			r.objects = append(r.objects[:i], r.objects[i+1:]...)
			return true
		}
	}
	return false
}

// Get returns the object with the given id.
func (r *Registry) Get(id string) (Object, bool) {
	for _, o := range r.objects {
		if o.ID == id {
			return o, true
		}
	}
	return Object{}, false
}

// List returns the objects in insertion order. The slice is a copy and
// safe to hold across later mutations.
func (r *Registry) List() []Object {
	out := make([]Object, len(r.objects))
	copy(out, r.objects)
	return out
}

// Len returns the number of stored objects.
func (r *Registry) Len() int { return len(r.objects) }
