package viz

import "github.com/charmbracelet/lipgloss"

// Theme assigns a color to each diagram role. Objects is the palette
// cycled over registry order; an object's own color setting overrides
// its palette slot.
type Theme struct {
	Name       string
	Background lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Accent     lipgloss.Color
	Grid       lipgloss.Color
	Axis       lipgloss.Color
	Cone       lipgloss.Color
	Present    lipgloss.Color
	Observer   lipgloss.Color
	Warning    lipgloss.Color
	Objects    []lipgloss.Color
}

// ObjectColor returns the palette color for the i-th object.
func (t Theme) ObjectColor(i int) lipgloss.Color {
	return t.Objects[i%len(t.Objects)]
}

// Available themes
var (
	ThemeClassic = Theme{
		Name:       "classic",
		Background: lipgloss.Color("#0a0a12"),
		Text:       lipgloss.Color("#d0d0e0"),
		Muted:      lipgloss.Color("#555577"),
		Accent:     lipgloss.Color("#00ccff"),
		Grid:       lipgloss.Color("#2a2a3a"),
		Axis:       lipgloss.Color("#666688"),
		Cone:       lipgloss.Color("#ccaa00"),
		Present:    lipgloss.Color("#00aa88"),
		Observer:   lipgloss.Color("#00ccff"),
		Warning:    lipgloss.Color("#ff8800"),
		Objects: []lipgloss.Color{
			lipgloss.Color("#ff5f87"), // rose
			lipgloss.Color("#5fd7ff"), // sky
			lipgloss.Color("#87ff5f"), // lime
			lipgloss.Color("#ffaf5f"), // amber
			lipgloss.Color("#af87ff"), // violet
			lipgloss.Color("#ffff5f"), // lemon
		},
	}

	ThemeRetroGreen = Theme{
		Name:       "retro",
		Background: lipgloss.Color("#001100"),
		Text:       lipgloss.Color("#00ff00"),
		Muted:      lipgloss.Color("#005500"),
		Accent:     lipgloss.Color("#88ff88"),
		Grid:       lipgloss.Color("#003300"),
		Axis:       lipgloss.Color("#00aa00"),
		Cone:       lipgloss.Color("#55cc55"),
		Present:    lipgloss.Color("#88ff88"),
		Observer:   lipgloss.Color("#ccffcc"),
		Warning:    lipgloss.Color("#ffff00"),
		Objects: []lipgloss.Color{
			lipgloss.Color("#00ff00"),
			lipgloss.Color("#88ff88"),
			lipgloss.Color("#00cc00"),
			lipgloss.Color("#ccffcc"),
		},
	}

	ThemeMinimal = Theme{
		Name:       "minimal",
		Background: lipgloss.Color("#000000"),
		Text:       lipgloss.Color("#ffffff"),
		Muted:      lipgloss.Color("#888888"),
		Accent:     lipgloss.Color("#0088ff"),
		Grid:       lipgloss.Color("#333333"),
		Axis:       lipgloss.Color("#777777"),
		Cone:       lipgloss.Color("#aaaaaa"),
		Present:    lipgloss.Color("#cccccc"),
		Observer:   lipgloss.Color("#0088ff"),
		Warning:    lipgloss.Color("#ffaa00"),
		Objects: []lipgloss.Color{
			lipgloss.Color("#ffffff"),
			lipgloss.Color("#bbbbbb"),
			lipgloss.Color("#0088ff"),
			lipgloss.Color("#66bbff"),
		},
	}

	ThemeOcean = Theme{
		Name:       "ocean",
		Background: lipgloss.Color("#001a33"),
		Text:       lipgloss.Color("#e0f0ff"),
		Muted:      lipgloss.Color("#4488aa"),
		Accent:     lipgloss.Color("#ffd700"),
		Grid:       lipgloss.Color("#003355"),
		Axis:       lipgloss.Color("#3377aa"),
		Cone:       lipgloss.Color("#ffd700"),
		Present:    lipgloss.Color("#00ff88"),
		Observer:   lipgloss.Color("#00a8cc"),
		Warning:    lipgloss.Color("#ffcc00"),
		Objects: []lipgloss.Color{
			lipgloss.Color("#00a8cc"),
			lipgloss.Color("#66ddee"),
			lipgloss.Color("#ffd700"),
			lipgloss.Color("#88ffcc"),
			lipgloss.Color("#ff8866"),
		},
	}

	ThemeSunset = Theme{
		Name:       "sunset",
		Background: lipgloss.Color("#2d1b2e"),
		Text:       lipgloss.Color("#fff5f5"),
		Muted:      lipgloss.Color("#8b6b8c"),
		Accent:     lipgloss.Color("#ff9ff3"),
		Grid:       lipgloss.Color("#45304a"),
		Axis:       lipgloss.Color("#9b7b9c"),
		Cone:       lipgloss.Color("#feca57"),
		Present:    lipgloss.Color("#5fd068"),
		Observer:   lipgloss.Color("#ff9ff3"),
		Warning:    lipgloss.Color("#ffc048"),
		Objects: []lipgloss.Color{
			lipgloss.Color("#ff6b6b"),
			lipgloss.Color("#feca57"),
			lipgloss.Color("#ff9ff3"),
			lipgloss.Color("#54a0ff"),
			lipgloss.Color("#5fd068"),
		},
	}

	// DefaultTheme is used when a requested theme name is unknown.
	DefaultTheme = ThemeClassic

	// All available themes
	Themes = []Theme{
		ThemeClassic,
		ThemeRetroGreen,
		ThemeMinimal,
		ThemeOcean,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name, falling back to the default.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return DefaultTheme
}

// ThemeNames returns the available theme names in cycling order.
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
