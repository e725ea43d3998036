package scene

import "testing"

func TestRegistryOrder(t *testing.T) {
	var r Registry
	names := []string{"alice", "bob", "carol", "dave"}
	for i, name := range names {
		r.Add(Object{Name: name, X0: float64(i)})
	}
	got := r.List()
	if len(got) != len(names) {
		t.Fatalf("expected %d objects, got %d", len(names), len(got))
	}
	for i, obj := range got {
		if obj.Name != names[i] {
			t.Errorf("position %d holds %q, want %q", i, obj.Name, names[i])
		}
	}
}

func TestRegistryOrderAfterRemove(t *testing.T) {
	var r Registry
	a := r.Add(Object{Name: "a"})
	b := r.Add(Object{Name: "b"})
	c := r.Add(Object{Name: "c"})

	if !r.Remove(b.ID) {
		t.Fatal("remove of existing id reported false")
	}
	got := r.List()
	if len(got) != 2 || got[0].ID != a.ID || got[1].ID != c.ID {
		t.Errorf("unexpected order after remove: %v", got)
	}
}

func TestRegistryRemoveAbsent(t *testing.T) {
	var r Registry
	r.Add(Object{Name: "a"})
	if r.Remove("no-such-id") {
		t.Error("remove of absent id reported true")
	}
	if r.Len() != 1 {
		t.Errorf("registry mutated by absent remove, len=%d", r.Len())
	}
}

func TestRegistryAssignsID(t *testing.T) {
	var r Registry
	a := r.Add(Object{Name: "a"})
	b := r.Add(Object{Name: "b"})
	if a.ID == "" || b.ID == "" {
		t.Fatal("added objects missing ids")
	}
	if a.ID == b.ID {
		t.Errorf("ids not unique: %q", a.ID)
	}
	kept := r.Add(Object{ID: "custom-7", Name: "c"})
	if kept.ID != "custom-7" {
		t.Errorf("supplied id replaced with %q", kept.ID)
	}
}

func TestRegistryClampsOnAdd(t *testing.T) {
	var r Registry
	obj := r.Add(Object{Name: "fast", V: 3})
	if obj.V != MaxSpeed {
		t.Errorf("stored velocity %v, want %v", obj.V, MaxSpeed)
	}
	stored, ok := r.Get(obj.ID)
	if !ok || stored.V != MaxSpeed {
		t.Errorf("registry holds velocity %v, want %v", stored.V, MaxSpeed)
	}
}

func TestRegistryGet(t *testing.T) {
	var r Registry
	added := r.Add(Object{Name: "a", X0: 1.5, V: -0.25})
	got, ok := r.Get(added.ID)
	if !ok {
		t.Fatal("added object not found")
	}
	if got != added {
		t.Errorf("Get returned %v, want %v", got, added)
	}
	if _, ok := r.Get("missing"); ok {
		t.Error("found an object that was never added")
	}
}

func TestRegistryListIsCopy(t *testing.T) {
	var r Registry
	r.Add(Object{Name: "a"})
	list := r.List()
	list[0].Name = "mutated"
	if got := r.List()[0].Name; got != "a" {
		t.Errorf("mutating the listed copy reached the registry: %q", got)
	}
}
