package config

import "sort"

func collisionGalaxies() []GalaxyConfig {
	return []GalaxyConfig{
		{X: 20, Y: 20, VX: 6, VY: 0, CenterMass: 100000, Stars: 600},
		{X: 80, Y: 50, VX: -3, VY: -5.5, CenterMass: 100000, Stars: 200},
	}
}

var Presets = map[string]func() *Config{
	"collision": DefaultConfig,
	"single": func() *Config {
		cfg := base()
		cfg.Galaxies = []GalaxyConfig{
			{X: 75, Y: 37.5, CenterMass: 100000, Stars: 800, MaxRadius: 30},
		}
		return cfg
	},
	"binary": func() *Config {
		cfg := base()
		cfg.Galaxies = []GalaxyConfig{
			{X: 55, Y: 37.5, VY: -2, CenterMass: 80000, Stars: 300, MaxRadius: 14},
			{X: 95, Y: 37.5, VY: 2, CenterMass: 80000, Stars: 300, MaxRadius: 14},
		}
		return cfg
	},
	"cluster": func() *Config {
		cfg := base()
		cfg.Physics.MassCutoff = 0
		cfg.Physics.Parallel = true
		cfg.Galaxies = []GalaxyConfig{
			{X: 75, Y: 37.5, CenterMass: 50000, Stars: 400, StarMass: 20, MaxRadius: 25},
		}
		return cfg
	},
	"orbit": func() *Config {
		cfg := base()
		cfg.Bodies = []BodyConfig{
			{X: 75, Y: 37.5, Mass: 100000},
			{X: 95, Y: 37.5, VY: 10, Mass: 1},
			{X: 45, Y: 37.5, VY: -8.16496580927726, Mass: 1},
		}
		return cfg
	},
}

// GetPreset returns a fresh copy of the named preset, or nil.
func GetPreset(name string) *Config {
	fn, ok := Presets[name]
	if !ok {
		return nil
	}
	return fn()
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
