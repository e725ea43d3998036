// Package tui is the interactive spacetime diagram: one bubbletea
// model over a scene, redrawn after every key. There are no timers;
// the diagram is static geometry and only input changes it.
package tui

import (
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/GerhardMe/spacetime/internal/config"
	"github.com/GerhardMe/spacetime/internal/diagram"
	"github.com/GerhardMe/spacetime/internal/export"
	"github.com/GerhardMe/spacetime/internal/relativity"
	"github.com/GerhardMe/spacetime/internal/scene"
	"github.com/GerhardMe/spacetime/internal/storage"
	"github.com/GerhardMe/spacetime/internal/viz"
)

const (
	stateDiagram = iota
	stateForm
	stateHelp
)

const (
	defaultCanvasWidth  = 80
	defaultCanvasHeight = 24
	panelWidth          = 38
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(0, 1)
	panelStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(0, 2).Width(panelWidth)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(10)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("114")).MarginTop(1)
)

// sceneCache marks the built diagram stale across model copies.
// bubbletea passes the model by value, so the scene subscription holds
// this shared pointer instead of the model itself.
type sceneCache struct {
	dirty bool
	d     *diagram.Diagram
}

func (c *sceneCache) SceneChanged() { c.dirty = true }

// Model is the interactive diagram application.
type Model struct {
	scene  *scene.Scene
	cache  *sceneCache
	vp     viz.Viewport
	canvas *viz.Canvas
	opts   diagram.Options
	grid   bool
	theme  viz.Theme
	store  *storage.Store
	title  string
	home   diagram.Window

	state         int
	cursor        int
	form          objectForm
	status        string
	width, height int
}

// NewModel builds the application state from a scene config.
func NewModel(cfg *config.Config, dataDir string) (Model, error) {
	s, err := cfg.BuildScene()
	if err != nil {
		return Model{}, err
	}
	m := Model{
		scene:  s,
		cache:  &sceneCache{dirty: true},
		vp:     viz.NewViewport(defaultCanvasWidth, defaultCanvasHeight),
		canvas: viz.NewCanvas(defaultCanvasWidth, defaultCanvasHeight),
		opts:   cfg.BuildOptions(),
		grid:   cfg.Appearance.Grid,
		theme:  viz.GetTheme(cfg.Appearance.Theme),
		store:  storage.New(dataDir),
		title:  cfg.Title,
		home:   cfg.BuildWindow(),
	}
	m.vp.FitWindow(m.home)
	s.Subscribe(m.cache)
	return m, nil
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		cw := msg.Width - panelWidth - 6
		ch := msg.Height - 2
		if cw < 20 {
			cw = 20
		}
		if ch < 10 {
			ch = 10
		}
		m.canvas = viz.NewCanvas(cw, ch)
		m.vp.Width, m.vp.Height = cw, ch
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.state {
	case stateForm:
		return m.formKey(msg)
	case stateHelp:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}
		m.state = stateDiagram
		return m, nil
	}
	return m.diagramKey(msg)
}

func (m Model) diagramKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	w := m.vp.Window()
	stepX := (w.XMax - w.XMin) / 10
	stepT := (w.TMax - w.TMin) / 10

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "left", "h":
		m.vp.Pan(-stepX, 0)
	case "right", "l":
		m.vp.Pan(stepX, 0)
	case "up", "k":
		m.vp.Pan(0, stepT)
	case "down", "j":
		m.vp.Pan(0, -stepT)
	case "+", "=":
		m.vp.ZoomIn()
	case "-", "_":
		m.vp.ZoomOut()
	case "0":
		m.vp.FitWindow(m.home)
	case "tab":
		m.moveCursor(1)
	case "shift+tab":
		m.moveCursor(-1)
	case "a":
		m.form = newObjectForm(m.scene.Len())
		m.state = stateForm
	case "d":
		if obj, ok := m.selectedObject(); ok {
			m.scene.RemoveObject(obj.ID)
			m.clampCursor()
		}
	case "f":
		m.cycleFrame()
	case "m":
		if obj, ok := m.selectedObject(); ok {
			m.scene.MatchObject(obj.ID)
		}
	case "[":
		v, x0 := m.scene.Freeform()
		m.scene.SetFreeform(v-0.05, x0)
	case "]":
		v, x0 := m.scene.Freeform()
		m.scene.SetFreeform(v+0.05, x0)
	case "{":
		v, x0 := m.scene.Freeform()
		m.scene.SetFreeform(v, x0-0.5)
	case "}":
		v, x0 := m.scene.Freeform()
		m.scene.SetFreeform(v, x0+0.5)
	case "c":
		m.opts.LightCones = !m.opts.LightCones
	case "s":
		m.opts.Simultaneity = !m.opts.Simultaneity
	case "p":
		m.opts.Present = !m.opts.Present
	case "g":
		m.grid = !m.grid
	case "T":
		m.opts.Ticks = !m.opts.Ticks
	case "t":
		m.theme = nextTheme(m.theme)
	case "w":
		m.saveScene()
	case "e":
		m.exportSVG()
	case "?":
		m.state = stateHelp
	}
	return m, nil
}

// currentDiagram rebuilds lazily: scene mutations raise the dirty flag
// through the subscription, viewport and option changes show up as a
// window or options mismatch.
func (m Model) currentDiagram() *diagram.Diagram {
	w := m.vp.Window()
	if m.cache.dirty || m.cache.d == nil || m.cache.d.Window != w || m.cache.d.Options != m.opts {
		m.cache.d = diagram.Build(m.scene, w, m.opts)
		m.cache.dirty = false
	}
	return m.cache.d
}

func (m Model) selectedObject() (scene.Object, bool) {
	objs := m.scene.Objects()
	if len(objs) == 0 {
		return scene.Object{}, false
	}
	i := m.cursor
	if i >= len(objs) {
		i = len(objs) - 1
	}
	return objs[i], true
}

func (m *Model) moveCursor(delta int) {
	n := m.scene.Len()
	if n == 0 {
		m.cursor = 0
		return
	}
	m.cursor = ((m.cursor+delta)%n + n) % n
}

func (m *Model) clampCursor() {
	n := m.scene.Len()
	if n == 0 {
		m.cursor = 0
	} else if m.cursor >= n {
		m.cursor = n - 1
	}
}

// cycleFrame walks lab -> comoving with the selection -> freeform.
// With nothing to select, comoving is skipped.
func (m *Model) cycleFrame() {
	switch m.scene.FrameMode() {
	case scene.ModeLab:
		if obj, ok := m.selectedObject(); ok {
			m.scene.SelectComoving(obj.ID)
			return
		}
		v, x0 := m.scene.Freeform()
		m.scene.SetFreeform(v, x0)
	case scene.ModeComoving:
		v, x0 := m.scene.Freeform()
		m.scene.SetFreeform(v, x0)
	default:
		m.scene.SelectLab()
	}
}

func nextTheme(cur viz.Theme) viz.Theme {
	names := viz.ThemeNames()
	for i, name := range names {
		if name == cur.Name {
			return viz.GetTheme(names[(i+1)%len(names)])
		}
	}
	return viz.DefaultTheme
}

func (m *Model) appearance() config.AppearanceConfig {
	return config.AppearanceConfig{
		Theme:        m.theme.Name,
		Grid:         m.grid,
		LightCones:   m.opts.LightCones,
		Simultaneity: m.opts.Simultaneity,
		Present:      m.opts.Present,
		Ticks:        m.opts.Ticks,
		TickSpacing:  m.opts.TickSpacing,
	}
}

func (m *Model) saveScene() {
	if err := m.store.Init(); err != nil {
		m.status = "save failed: " + err.Error()
		return
	}
	cfg := config.FromScene(m.title, m.scene, m.vp.Window(), m.appearance())
	id, err := m.store.Save(m.title, cfg, m.currentDiagram())
	if err != nil {
		m.status = "save failed: " + err.Error()
		return
	}
	m.status = "saved " + id
}

func (m *Model) exportSVG() {
	svg := export.DiagramToSVG(m.currentDiagram(), 960, 720, m.theme, m.grid)
	path := fmt.Sprintf("diagram_%d.svg", time.Now().Unix())
	if err := os.WriteFile(path, []byte(svg), 0644); err != nil {
		m.status = "export failed: " + err.Error()
		return
	}
	m.status = "exported " + path
}

func (m Model) View() string {
	switch m.state {
	case stateForm:
		return m.viewForm()
	case stateHelp:
		return m.viewHelp()
	}
	return m.viewDiagram()
}

func (m Model) viewDiagram() string {
	d := m.currentDiagram()
	viz.Render(m.canvas, d, m.vp, m.grid)
	canvasView := canvasStyle.Render(m.canvas.Styled(viz.Palette(m.theme, d)))
	panelView := panelStyle.Render(m.panel(d))
	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, panelView)
}

func (m Model) panel(d *diagram.Diagram) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("SPACETIME") + " " + dimStyle.Render(m.title) + "\n\n")

	b.WriteString(headerStyle.Render("FRAME") + "\n")
	b.WriteString(labelStyle.Render("mode") + valueStyle.Render(d.Mode.String()) + "\n")
	b.WriteString(labelStyle.Render("v") + valueStyle.Render(fmt.Sprintf("%+.3fc", d.Frame.V)) + "\n")
	b.WriteString(labelStyle.Render("gamma") + valueStyle.Render(formatGamma(relativity.Gamma(d.Frame.V))) + "\n")
	b.WriteString(labelStyle.Render("x0") + valueStyle.Render(fmt.Sprintf("%+.2f", d.Frame.X0)) + "\n\n")

	b.WriteString(headerStyle.Render("OBJECTS") + "\n")
	if len(d.Objects) == 0 {
		b.WriteString(dimStyle.Render("  none (press a to add)") + "\n")
	}
	sel := m.cursor
	if sel >= len(d.Objects) && len(d.Objects) > 0 {
		sel = len(d.Objects) - 1
	}
	for i, tr := range d.Objects {
		mark := "  "
		if i == sel {
			mark = cursorStyle.Render("▸") + " "
		}
		swatchColor := m.theme.ObjectColor(i)
		if tr.Object.Color != "" {
			swatchColor = lipgloss.Color(tr.Object.Color)
		}
		swatch := lipgloss.NewStyle().Foreground(swatchColor).Render("●")
		inFrame := fmt.Sprintf("v'=%+.3f", tr.VPrime)
		if tr.AtInfinity {
			inFrame = warnStyle.Render("∞")
		}
		b.WriteString(fmt.Sprintf("%s%s %s %s %s\n",
			mark, swatch,
			valueStyle.Render(fmt.Sprintf("%-8s", trim(tr.Object.Name, 8))),
			dimStyle.Render(fmt.Sprintf("x0=%+.2f v=%+.3f", tr.Object.X0, tr.Object.V)),
			valueStyle.Render(inFrame)))
	}

	b.WriteString("\n" + headerStyle.Render("SHOW") + "\n")
	b.WriteString("  " + toggleLabel("c cones", m.opts.LightCones) + "  " + toggleLabel("s simul", m.opts.Simultaneity) + "\n")
	b.WriteString("  " + toggleLabel("p present", m.opts.Present) + " " + toggleLabel("g grid", m.grid) + "\n")
	b.WriteString("  " + toggleLabel("T ticks", m.opts.Ticks) + "   " + dimStyle.Render("t theme: "+m.theme.Name) + "\n")

	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status) + "\n")
	}
	b.WriteString(dimStyle.Render("\n──────────────────────\nhjkl:Pan +/-:Zoom 0:Home\ntab:Select f:Frame m:Match\na:Add d:Del w:Save e:SVG\n?:Help q:Quit"))
	return b.String()
}

func (m Model) viewHelp() string {
	return `
╔══════════════════════════════════════════╗
║            KEYBOARD SHORTCUTS            ║
╠══════════════════════════════════════════╣
║  h/j/k/l, arrows - Pan                   ║
║  + / -           - Zoom in / out         ║
║  0               - Fit configured window ║
║  tab / shift+tab - Select object         ║
║  a               - Add object            ║
║  d               - Delete selection      ║
║  f               - Cycle frame mode      ║
║  m               - Match freeform frame  ║
║  [ / ]           - Frame velocity ∓0.05  ║
║  { / }           - Frame offset ∓0.5     ║
║  c s p g T       - Toggle line work      ║
║  t               - Cycle theme           ║
║  w               - Save scene to store   ║
║  e               - Export SVG            ║
║  q               - Quit                  ║
╚══════════════════════════════════════════╝
           press any key to return
`
}

func formatGamma(g float64) string {
	if math.IsInf(g, 1) {
		return "∞"
	}
	return fmt.Sprintf("%.3f", g)
}

func toggleLabel(name string, on bool) string {
	if on {
		return valueStyle.Render("[x] " + name)
	}
	return dimStyle.Render("[ ] " + name)
}

func trim(s string, n int) string {
	if len(s) > n {
		return s[:n-1] + "…"
	}
	return s
}

// Run starts the interactive diagram over the scene described by cfg.
func Run(cfg *config.Config, dataDir string) error {
	m, err := NewModel(cfg, dataDir)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
