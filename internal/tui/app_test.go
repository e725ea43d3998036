package tui

import (
	"math"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/GerhardMe/spacetime/internal/config"
	"github.com/GerhardMe/spacetime/internal/scene"
	"github.com/GerhardMe/spacetime/internal/viz"
)

func testConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Title = "test"
	cfg.Objects = []config.ObjectConfig{
		{Name: "ship", X0: 1, V: 0.5},
		{Name: "probe", X0: -2, V: -0.25},
	}
	return cfg
}

func testModel(t *testing.T) Model {
	t.Helper()
	m, err := NewModel(testConfig(), t.TempDir())
	if err != nil {
		t.Fatalf("new model: %v", err)
	}
	return m
}

func key(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(key(k))
		m = next.(Model)
	}
	return m
}

func TestQuitKey(t *testing.T) {
	m := testModel(t)
	_, cmd := m.Update(key("q"))
	if cmd == nil {
		t.Fatal("q produced no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q did not quit")
	}
}

func TestPanAndZoom(t *testing.T) {
	m := testModel(t)
	startX, startT, startScale := m.vp.CenterX, m.vp.CenterT, m.vp.Scale

	m = press(t, m, "l")
	if m.vp.CenterX <= startX {
		t.Error("l did not pan right")
	}
	m = press(t, m, "k")
	if m.vp.CenterT <= startT {
		t.Error("k did not pan up")
	}
	m = press(t, m, "+")
	if m.vp.Scale <= startScale {
		t.Error("+ did not zoom in")
	}
	m = press(t, m, "0")
	if m.vp.CenterX != 0 || m.vp.CenterT != 0 {
		t.Errorf("0 did not recenter, at (%v,%v)", m.vp.CenterX, m.vp.CenterT)
	}
}

func TestSelectionCycle(t *testing.T) {
	m := testModel(t)
	if m.cursor != 0 {
		t.Fatalf("initial cursor = %d", m.cursor)
	}
	m = press(t, m, "tab")
	if m.cursor != 1 {
		t.Errorf("cursor after tab = %d, want 1", m.cursor)
	}
	m = press(t, m, "tab")
	if m.cursor != 0 {
		t.Errorf("cursor did not wrap, at %d", m.cursor)
	}
	m = press(t, m, "shift+tab")
	if m.cursor != 1 {
		t.Errorf("cursor after shift+tab = %d, want 1", m.cursor)
	}
}

func TestFrameCycle(t *testing.T) {
	m := testModel(t)
	if m.scene.FrameMode() != scene.ModeLab {
		t.Fatal("expected lab start")
	}
	m = press(t, m, "f")
	if m.scene.FrameMode() != scene.ModeComoving {
		t.Fatalf("mode after f = %v", m.scene.FrameMode())
	}
	if v := m.scene.Frame().V; v != 0.5 {
		t.Errorf("comoving frame v = %v, want ship's 0.5", v)
	}
	m = press(t, m, "f")
	if m.scene.FrameMode() != scene.ModeFreeform {
		t.Fatalf("mode after second f = %v", m.scene.FrameMode())
	}
	m = press(t, m, "f")
	if m.scene.FrameMode() != scene.ModeLab {
		t.Errorf("mode after third f = %v, want lab", m.scene.FrameMode())
	}
}

func TestMatchKey(t *testing.T) {
	m := press(t, testModel(t), "m")
	if m.scene.FrameMode() != scene.ModeFreeform {
		t.Fatalf("mode after m = %v", m.scene.FrameMode())
	}
	v, x0 := m.scene.Freeform()
	if v != 0.5 || x0 != 1 {
		t.Errorf("freeform = (%v,%v), want ship's (0.5,1)", v, x0)
	}
}

func TestFreeformNudge(t *testing.T) {
	m := press(t, testModel(t), "[", "[")
	v, _ := m.scene.Freeform()
	if math.Abs(v+0.1) > 1e-12 {
		t.Errorf("v = %v, want -0.1", v)
	}
	m = press(t, m, "}", "}")
	_, x0 := m.scene.Freeform()
	if x0 != 1.0 {
		t.Errorf("x0 = %v, want 1.0", x0)
	}
}

func TestToggleKeys(t *testing.T) {
	m := testModel(t)
	cones, grid, ticks := m.opts.LightCones, m.grid, m.opts.Ticks
	m = press(t, m, "c", "g", "T")
	if m.opts.LightCones == cones || m.grid == grid || m.opts.Ticks == ticks {
		t.Error("toggle keys did not flip state")
	}
}

func TestThemeCycle(t *testing.T) {
	m := testModel(t)
	first := m.theme.Name
	m = press(t, m, "t")
	if m.theme.Name == first {
		t.Error("t did not change theme")
	}
	for i := 0; i < len(viz.ThemeNames())-1; i++ {
		m = press(t, m, "t")
	}
	if m.theme.Name != first {
		t.Errorf("theme cycle did not wrap, at %q", m.theme.Name)
	}
}

func TestDeleteSelectionFallsBack(t *testing.T) {
	m := press(t, testModel(t), "f") // comoving with ship
	m = press(t, m, "d")
	if m.scene.Len() != 1 {
		t.Fatalf("scene has %d objects, want 1", m.scene.Len())
	}
	if m.scene.FrameMode() != scene.ModeLab {
		t.Errorf("frame mode after deleting reference = %v, want lab", m.scene.FrameMode())
	}
	if m.cursor != 0 {
		t.Errorf("cursor = %d after delete", m.cursor)
	}
}

func TestDiagramCacheRebuilds(t *testing.T) {
	m := testModel(t)
	d1 := m.currentDiagram()
	if d2 := m.currentDiagram(); d2 != d1 {
		t.Error("unchanged scene rebuilt the diagram")
	}
	m.scene.AddObject("late", 0, 0, "")
	d3 := m.currentDiagram()
	if d3 == d1 {
		t.Error("scene change did not invalidate the cache")
	}
	if len(d3.Objects) != 3 {
		t.Errorf("rebuilt diagram has %d traces, want 3", len(d3.Objects))
	}
	m = press(t, m, "l")
	if d4 := m.currentDiagram(); d4 == d3 {
		t.Error("viewport change did not rebuild")
	}
}

func TestWindowResize(t *testing.T) {
	m := testModel(t)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(Model)
	if m.canvas.Width != 76 || m.canvas.Height != 38 {
		t.Errorf("canvas = %dx%d, want 76x38", m.canvas.Width, m.canvas.Height)
	}
	if m.vp.Width != m.canvas.Width || m.vp.Height != m.canvas.Height {
		t.Error("viewport dims out of sync with canvas")
	}
}

func TestSaveSceneKey(t *testing.T) {
	m := press(t, testModel(t), "w")
	if !strings.HasPrefix(m.status, "saved ") {
		t.Fatalf("status = %q", m.status)
	}
	scenes, err := m.store.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(scenes) != 1 || scenes[0].Objects != 2 {
		t.Errorf("stored scenes = %+v", scenes)
	}
}

func TestViewStates(t *testing.T) {
	m := testModel(t)
	view := m.View()
	for _, want := range []string{"FRAME", "OBJECTS", "ship", "probe"} {
		if !strings.Contains(view, want) {
			t.Errorf("diagram view missing %q", want)
		}
	}
	m = press(t, m, "?")
	if !strings.Contains(m.View(), "KEYBOARD SHORTCUTS") {
		t.Error("help view missing title")
	}
	m = press(t, m, "x")
	if m.state != stateDiagram {
		t.Error("help did not dismiss")
	}
}
