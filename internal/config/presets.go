package config

import (
	"fmt"
	"math"
	"sort"

	"github.com/san-kum/orrery/internal/orbit"
	"github.com/san-kum/orrery/internal/orrery"
)

// Presets are named starting scenes. GetPreset hands out copies.
var Presets = map[string]*Config{
	"solar": DefaultConfig(),
	"inner": func() *Config {
		c := DefaultConfig()
		c.Preset = "inner"
		c.Bodies = c.Bodies[:5]
		c.Camera.Distance = 2
		c.Camera.AngleX = 0.4
		return c
	}(),
	"binary": func() *Config {
		c := DefaultConfig()
		c.Preset = "binary"
		c.Bodies = FromBodies([]orbit.Body{
			orbit.NewBody("Alpha", 0.12, 0.3, 0.05, orrery.Color{R: 1, G: 0.8, B: 0.4}),
			orbit.NewBody("Beta", 0.09, 0.3, 0.05, orrery.Color{R: 0.6, G: 0.7, B: 1}).WithPhase(math.Pi),
			orbit.NewBody("Wanderer", 0.05, 1.8, 0.01, orrery.Color{R: 0.5, G: 0.9, B: 0.6}),
		})
		c.Camera.Distance = 2.5
		c.Camera.AngleX = 0.6
		return c
	}(),
	"frozen": func() *Config {
		c := DefaultConfig()
		c.Preset = "frozen"
		c.TimeScale = 0
		return c
	}(),
	"retrograde": func() *Config {
		c := DefaultConfig()
		c.Preset = "retrograde"
		c.TimeScale = -1
		c.Camera.AngleX = 0.5
		return c
	}(),
}

// GetPreset returns a copy of the named preset, or an error wrapping
// orrery.ErrUnknownPreset.
func GetPreset(name string) (*Config, error) {
	cfg, ok := Presets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", orrery.ErrUnknownPreset, name)
	}
	return cfg.Clone(), nil
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
