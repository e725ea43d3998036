package tui

import (
	"strings"
	"testing"
)

func TestAddObjectViaForm(t *testing.T) {
	m := press(t, testModel(t), "a")
	if m.state != stateForm {
		t.Fatal("a did not open the form")
	}
	if !strings.Contains(m.View(), "ADD OBJECT") {
		t.Error("form view missing title")
	}
	if m.form.values[0] != "obj3" {
		t.Errorf("default name = %q, want obj3", m.form.values[0])
	}
	m = press(t, m, "s")
	if m.state != stateDiagram {
		t.Fatal("submit did not return to the diagram")
	}
	if m.scene.Len() != 3 {
		t.Fatalf("scene has %d objects, want 3", m.scene.Len())
	}
	if m.cursor != 2 {
		t.Errorf("cursor = %d, want the new object selected", m.cursor)
	}
}

func TestFormNudgeAndEdit(t *testing.T) {
	m := press(t, testModel(t), "a", "down", "l")
	if m.form.values[1] != "0.10" {
		t.Errorf("x0 after nudge = %q, want 0.10", m.form.values[1])
	}
	m = press(t, m, "down", "enter", "backspace", "0", ".", "8", "enter", "s")
	objs := m.scene.Objects()
	last := objs[len(objs)-1]
	if last.V != 0.8 {
		t.Errorf("v = %v, want 0.8", last.V)
	}
	if last.X0 != 0.1 {
		t.Errorf("x0 = %v, want 0.1", last.X0)
	}
}

func TestFormClampsVelocity(t *testing.T) {
	m := press(t, testModel(t), "a", "down", "down", "enter", "backspace", "2", "enter", "s")
	objs := m.scene.Objects()
	if v := objs[len(objs)-1].V; v != 0.999 {
		t.Errorf("v = %v, want clamped 0.999", v)
	}
}

func TestFormCancel(t *testing.T) {
	m := press(t, testModel(t), "a", "esc")
	if m.state != stateDiagram {
		t.Error("esc did not cancel the form")
	}
	if m.scene.Len() != 2 {
		t.Errorf("cancel changed the scene, %d objects", m.scene.Len())
	}
}

func TestFormEditEscapeReverts(t *testing.T) {
	m := press(t, testModel(t), "a", "enter", "backspace", "z", "esc")
	if m.form.values[0] != "obj3" {
		t.Errorf("escaped edit changed value to %q", m.form.values[0])
	}
	if m.form.editing {
		t.Error("esc left the field in edit mode")
	}
}

func TestFormParse(t *testing.T) {
	f := newObjectForm(0)
	f.values = []string{"  ", "abc", "xyz", " #ff0000 "}
	name, x0, v, color := f.parse()
	if name != "object" {
		t.Errorf("name = %q, want fallback", name)
	}
	if x0 != 0 || v != 0 {
		t.Errorf("unparsable numbers = (%v,%v), want zeros", x0, v)
	}
	if color != "#ff0000" {
		t.Errorf("color = %q", color)
	}
}
