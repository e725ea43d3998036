package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// objectForm is the add-object entry state. Numeric fields move in
// 0.1 steps with h/l; enter opens a typed buffer for any field.
type objectForm struct {
	fields  []string
	values  []string
	cursor  int
	editing bool
	buf     string
}

func newObjectForm(existing int) objectForm {
	return objectForm{
		fields: []string{"name", "x0", "v", "color"},
		values: []string{fmt.Sprintf("obj%d", existing+1), "0", "0", ""},
	}
}

func (f *objectForm) nudge(delta float64) {
	switch f.fields[f.cursor] {
	case "x0", "v":
		val, _ := strconv.ParseFloat(f.values[f.cursor], 64)
		f.values[f.cursor] = strconv.FormatFloat(val+delta, 'f', 2, 64)
	}
}

// parse reads the form fields; unparsable numbers come back zero and
// an empty name gets a placeholder. The scene clamps the velocity.
func (f objectForm) parse() (name string, x0, v float64, color string) {
	name = strings.TrimSpace(f.values[0])
	if name == "" {
		name = "object"
	}
	x0, _ = strconv.ParseFloat(f.values[1], 64)
	v, _ = strconv.ParseFloat(f.values[2], 64)
	color = strings.TrimSpace(f.values[3])
	return name, x0, v, color
}

func (m Model) formKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.form.editing {
		switch msg.String() {
		case "enter":
			m.form.values[m.form.cursor] = strings.TrimSpace(m.form.buf)
			m.form.editing, m.form.buf = false, ""
		case "esc", "escape":
			m.form.editing, m.form.buf = false, ""
		case "backspace":
			if len(m.form.buf) > 0 {
				m.form.buf = m.form.buf[:len(m.form.buf)-1]
			}
		default:
			if len(msg.String()) == 1 {
				m.form.buf += msg.String()
			}
		}
		return m, nil
	}

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc", "escape", "q":
		m.state = stateDiagram
	case "up", "k":
		if m.form.cursor > 0 {
			m.form.cursor--
		}
	case "down", "j":
		if m.form.cursor < len(m.form.fields)-1 {
			m.form.cursor++
		}
	case "enter", " ":
		m.form.editing, m.form.buf = true, m.form.values[m.form.cursor]
	case "left", "h":
		m.form.nudge(-0.1)
	case "right", "l":
		m.form.nudge(0.1)
	case "s":
		name, x0, v, color := m.form.parse()
		m.scene.AddObject(name, x0, v, color)
		m.cursor = m.scene.Len() - 1
		m.state = stateDiagram
	}
	return m, nil
}

func (m Model) viewForm() string {
	var b strings.Builder
	b.WriteString("\n\n    " + headerStyle.Render("ADD OBJECT") + "\n    " + dimStyle.Render("─────────────────────") + "\n\n")
	for i, field := range m.form.fields {
		val := m.form.values[i]
		if m.form.editing && i == m.form.cursor {
			val = m.form.buf + "_"
		} else if val == "" {
			val = "auto"
		}
		if i == m.form.cursor {
			b.WriteString(fmt.Sprintf("    %s %s %s\n",
				cursorStyle.Render("▸"),
				valueStyle.Render(fmt.Sprintf("%-8s", field)),
				cursorStyle.Render(val)))
		} else {
			b.WriteString(fmt.Sprintf("      %s %s\n",
				dimStyle.Render(fmt.Sprintf("%-8s", field)),
				dimStyle.Render(val)))
		}
	}
	b.WriteString("\n    " + dimStyle.Render("j/k select  h/l nudge  enter edit  s add  esc cancel") + "\n")
	return b.String()
}
