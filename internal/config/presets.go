package config

import "sort"

// Presets are the built-in demo scenes. Each is a complete config and
// renders without further input.
var Presets = map[string]*Config{
	"rest": {
		Title: "objects at rest",
		Frame: FrameConfig{Mode: "lab"},
		Window: WindowConfig{
			TMin: -5, TMax: 5, XMin: -5, XMax: 5,
		},
		Objects: []ObjectConfig{
			{Name: "station", X0: 0, V: 0},
			{Name: "buoy", X0: 3, V: 0},
			{Name: "drifter", X0: -2, V: 0.3},
		},
		Appearance: AppearanceConfig{
			Theme: DefaultTheme, Grid: true, Present: true, TickSpacing: 1,
		},
	},
	"race": {
		Title: "slow ship vs fast ship",
		Frame: FrameConfig{Mode: "lab"},
		Window: WindowConfig{
			TMin: -1, TMax: 9, XMin: -2, XMax: 8,
		},
		Objects: []ObjectConfig{
			{Name: "tortoise", X0: 0, V: 0.5},
			{Name: "hare", X0: 0, V: 0.9},
		},
		Appearance: AppearanceConfig{
			Theme: DefaultTheme, Grid: true, LightCones: true, Present: true, TickSpacing: 1,
		},
	},
	"twins": {
		Title: "traveller seen from home",
		Frame: FrameConfig{Mode: "comoving", Object: "traveller"},
		Window: WindowConfig{
			TMin: -2, TMax: 8, XMin: -6, XMax: 6,
		},
		Objects: []ObjectConfig{
			{Name: "home", X0: 0, V: 0},
			{Name: "traveller", X0: 0, V: 0.8},
		},
		Appearance: AppearanceConfig{
			Theme: DefaultTheme, Grid: true, Present: true, Ticks: true, TickSpacing: 1,
		},
	},
	"fleet": {
		Title: "three ships in formation",
		Frame: FrameConfig{Mode: "comoving", Object: "flagship"},
		Window: WindowConfig{
			TMin: -5, TMax: 5, XMin: -6, XMax: 6,
		},
		Objects: []ObjectConfig{
			{Name: "vanguard", X0: 2, V: 0.6},
			{Name: "flagship", X0: 0, V: 0.6},
			{Name: "rearguard", X0: -2, V: 0.6},
		},
		Appearance: AppearanceConfig{
			Theme: DefaultTheme, Grid: true, Simultaneity: true, Present: true, TickSpacing: 1,
		},
	},
	"probe": {
		Title: "offset observer watching traffic",
		Frame: FrameConfig{Mode: "freeform", V: 0.5, X0: 2},
		Window: WindowConfig{
			TMin: -6, TMax: 6, XMin: -8, XMax: 8,
		},
		Objects: []ObjectConfig{
			{Name: "outbound", X0: 0, V: 0.7},
			{Name: "inbound", X0: 5, V: -0.9},
			{Name: "beacon", X0: -3, V: 0},
		},
		Appearance: AppearanceConfig{
			Theme: DefaultTheme, Grid: true, LightCones: true, Present: true, TickSpacing: 1,
		},
	},
}

// DefaultPreset is the scene loaded when nothing else is asked for.
const DefaultPreset = "rest"

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
