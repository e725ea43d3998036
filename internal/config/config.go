package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/GerhardMe/spacetime/internal/diagram"
	"github.com/GerhardMe/spacetime/internal/scene"
)

const (
	DefaultSpan        = 5.0
	DefaultTheme       = "classic"
	DefaultTickSpacing = 1.0
)

type Config struct {
	Title      string           `yaml:"title"`
	Frame      FrameConfig      `yaml:"frame"`
	Window     WindowConfig     `yaml:"window"`
	Objects    []ObjectConfig   `yaml:"objects"`
	Appearance AppearanceConfig `yaml:"appearance"`
}

type FrameConfig struct {
	Mode   string  `yaml:"mode"`
	Object string  `yaml:"object,omitempty"`
	V      float64 `yaml:"v,omitempty"`
	X0     float64 `yaml:"x0,omitempty"`
}

type WindowConfig struct {
	TMin float64 `yaml:"tmin"`
	TMax float64 `yaml:"tmax"`
	XMin float64 `yaml:"xmin"`
	XMax float64 `yaml:"xmax"`
}

type ObjectConfig struct {
	Name  string  `yaml:"name"`
	X0    float64 `yaml:"x0"`
	V     float64 `yaml:"v"`
	Color string  `yaml:"color,omitempty"`
}

type AppearanceConfig struct {
	Theme        string  `yaml:"theme"`
	Grid         bool    `yaml:"grid"`
	LightCones   bool    `yaml:"lightcones"`
	Simultaneity bool    `yaml:"simultaneity"`
	Present      bool    `yaml:"present"`
	Ticks        bool    `yaml:"ticks"`
	TickSpacing  float64 `yaml:"tick_spacing"`
}

func DefaultConfig() *Config {
	return &Config{
		Title: "untitled",
		Frame: FrameConfig{Mode: "lab"},
		Window: WindowConfig{
			TMin: -DefaultSpan, TMax: DefaultSpan,
			XMin: -DefaultSpan, XMax: DefaultSpan,
		},
		Appearance: AppearanceConfig{
			Theme:       DefaultTheme,
			Grid:        true,
			Present:     true,
			TickSpacing: DefaultTickSpacing,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// BuildScene constructs a scene from the config. Velocities are
// clamped on the way in. A comoving frame references its object by
// name; the first object with that name wins, and an unknown name or
// frame mode is an error.
func (c *Config) BuildScene() (*scene.Scene, error) {
	s := scene.New()
	byName := make(map[string]string)
	for _, oc := range c.Objects {
		obj := s.AddObject(oc.Name, oc.X0, oc.V, oc.Color)
		if _, seen := byName[oc.Name]; !seen {
			byName[oc.Name] = obj.ID
		}
	}
	switch c.Frame.Mode {
	case "", "lab":
	case "comoving":
		id, ok := byName[c.Frame.Object]
		if !ok {
			return nil, fmt.Errorf("config: frame object %q not defined", c.Frame.Object)
		}
		s.SelectComoving(id)
	case "freeform":
		s.SetFreeform(c.Frame.V, c.Frame.X0)
	default:
		return nil, fmt.Errorf("config: unknown frame mode %q", c.Frame.Mode)
	}
	return s, nil
}

// BuildWindow returns the configured window, falling back to the
// default span on an empty or inverted range.
func (c *Config) BuildWindow() diagram.Window {
	w := diagram.Window{
		TMin: c.Window.TMin, TMax: c.Window.TMax,
		XMin: c.Window.XMin, XMax: c.Window.XMax,
	}
	if w.TMax <= w.TMin {
		w.TMin, w.TMax = -DefaultSpan, DefaultSpan
	}
	if w.XMax <= w.XMin {
		w.XMin, w.XMax = -DefaultSpan, DefaultSpan
	}
	return w
}

// BuildOptions maps the appearance settings to diagram options.
func (c *Config) BuildOptions() diagram.Options {
	spacing := c.Appearance.TickSpacing
	if spacing <= 0 {
		spacing = DefaultTickSpacing
	}
	return diagram.Options{
		LightCones:   c.Appearance.LightCones,
		Simultaneity: c.Appearance.Simultaneity,
		Present:      c.Appearance.Present,
		Ticks:        c.Appearance.Ticks,
		TickSpacing:  spacing,
	}
}

// FromScene snapshots a live scene back into a config, the inverse of
// BuildScene. A comoving frame is recorded by object name, so scenes
// with duplicate names round-trip to the first holder of the name.
func FromScene(title string, s *scene.Scene, w diagram.Window, app AppearanceConfig) *Config {
	cfg := DefaultConfig()
	cfg.Title = title
	cfg.Window = WindowConfig{TMin: w.TMin, TMax: w.TMax, XMin: w.XMin, XMax: w.XMax}
	cfg.Appearance = app
	for _, obj := range s.Objects() {
		cfg.Objects = append(cfg.Objects, ObjectConfig{
			Name: obj.Name, X0: obj.X0, V: obj.V, Color: obj.Color,
		})
	}
	switch s.FrameMode() {
	case scene.ModeComoving:
		if obj, ok := s.Object(s.FrameObjectID()); ok {
			cfg.Frame = FrameConfig{Mode: "comoving", Object: obj.Name}
		}
	case scene.ModeFreeform:
		v, x0 := s.Freeform()
		cfg.Frame = FrameConfig{Mode: "freeform", V: v, X0: x0}
	default:
		cfg.Frame = FrameConfig{Mode: "lab"}
	}
	return cfg
}
