package config

import (
	"fmt"
	"math"
	"math/rand"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/galaxsim/internal/dynamo"
	"github.com/san-kum/galaxsim/internal/galaxy"
	"github.com/san-kum/galaxsim/internal/integrators"
	"github.com/san-kum/galaxsim/internal/physics"
	"github.com/san-kum/galaxsim/internal/raster"
	"github.com/san-kum/galaxsim/internal/sim"
)

const (
	DefaultDt        = sim.DefaultDt
	DefaultTimeSpeed = 1.0
	DefaultPreset    = "collision"
)

type Config struct {
	Dt         float64        `yaml:"dt"`
	TimeSpeed  float64        `yaml:"time_speed"`
	Seed       int64          `yaml:"seed"`
	Integrator string         `yaml:"integrator"`
	Steps      int            `yaml:"steps"`
	Theme      string         `yaml:"theme,omitempty"`
	Screen     ScreenConfig   `yaml:"screen"`
	Physics    PhysicsConfig  `yaml:"physics"`
	Galaxies   []GalaxyConfig `yaml:"galaxies,omitempty"`
	Bodies     []BodyConfig   `yaml:"bodies,omitempty"`
}

type ScreenConfig struct {
	Width         int     `yaml:"width"`
	Height        int     `yaml:"height"`
	YSquish       float64 `yaml:"y_squish"`
	DensityFactor float64 `yaml:"density_factor"`
	Ramp          string  `yaml:"ramp"`
}

type PhysicsConfig struct {
	G                  float64 `yaml:"g"`
	ProximityThreshold float64 `yaml:"proximity_threshold"`
	MassCutoff         float64 `yaml:"mass_cutoff"`
	Parallel           bool    `yaml:"parallel"`
}

type GalaxyConfig struct {
	X          float64 `yaml:"x"`
	Y          float64 `yaml:"y"`
	VX         float64 `yaml:"vx"`
	VY         float64 `yaml:"vy"`
	CenterMass float64 `yaml:"center_mass"`
	Stars      int     `yaml:"stars"`
	MinRadius  float64 `yaml:"min_radius,omitempty"`
	MaxRadius  float64 `yaml:"max_radius,omitempty"`
	StarMass   float64 `yaml:"star_mass,omitempty"`
}

type BodyConfig struct {
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
	VX   float64 `yaml:"vx"`
	VY   float64 `yaml:"vy"`
	Mass float64 `yaml:"mass"`
}

// DefaultConfig returns the collision scene with the stock screen and
// physics settings.
func DefaultConfig() *Config {
	cfg := base()
	cfg.Galaxies = collisionGalaxies()
	return cfg
}

func base() *Config {
	return &Config{
		Dt:         DefaultDt,
		TimeSpeed:  DefaultTimeSpeed,
		Integrator: integrators.Default,
		Screen: ScreenConfig{
			Width:         raster.DefaultWidth,
			Height:        raster.DefaultHeight,
			YSquish:       raster.DefaultYSquish,
			DensityFactor: raster.DefaultDensityFactor,
			Ramp:          raster.DefaultRamp,
		},
		Physics: PhysicsConfig{
			G:                  physics.DefaultG,
			ProximityThreshold: physics.DefaultProximityThreshold,
			MassCutoff:         physics.DefaultMassCutoff,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := base()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(cfg.Galaxies) == 0 && len(cfg.Bodies) == 0 {
		cfg.Galaxies = collisionGalaxies()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
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

func (c *Config) Validate() error {
	if !(c.TimeSpeed > 0) || math.IsInf(c.TimeSpeed, 0) {
		return dynamo.InvalidField("time speed", c.TimeSpeed, dynamo.ErrInvalidParams)
	}
	if c.Steps < 0 {
		return dynamo.InvalidField("steps", float64(c.Steps), dynamo.ErrInvalidParams)
	}
	if len(c.Galaxies) == 0 && len(c.Bodies) == 0 {
		return dynamo.ErrNoBodies
	}
	for i, g := range c.Galaxies {
		if err := g.Spec().Validate(); err != nil {
			return fmt.Errorf("galaxy %d: %w", i, err)
		}
	}
	for i, b := range c.Bodies {
		if err := b.Body().Validate(); err != nil {
			return fmt.Errorf("body %d: %w", i, err)
		}
	}
	// Constructing the simulation validates dt, grid and physics params.
	if _, err := sim.New(c.SimConfig()); err != nil {
		return err
	}
	return nil
}

func (c *Config) SimConfig() sim.Config {
	return sim.Config{
		Dt:         c.Dt,
		Integrator: c.Integrator,
		Physics: physics.Params{
			G:                  c.Physics.G,
			ProximityThreshold: c.Physics.ProximityThreshold,
			MassCutoff:         c.Physics.MassCutoff,
			Parallel:           c.Physics.Parallel,
		},
		Raster: raster.Params{
			Width:         c.Screen.Width,
			Height:        c.Screen.Height,
			YSquish:       c.Screen.YSquish,
			DensityFactor: c.Screen.DensityFactor,
			Ramp:          []rune(c.Screen.Ramp),
		},
	}
}

// InitialBodies lists explicit bodies first, then every galaxy seeded from
// c.Seed.
func (c *Config) InitialBodies() ([]dynamo.Body, error) {
	bodies := make([]dynamo.Body, 0, len(c.Bodies))
	for _, b := range c.Bodies {
		bodies = append(bodies, b.Body())
	}

	specs := make([]galaxy.Spec, len(c.Galaxies))
	for i, g := range c.Galaxies {
		specs[i] = g.Spec()
	}

	rng := rand.New(rand.NewSource(c.Seed))
	stars, err := galaxy.GenerateAll(rng, c.Physics.G, specs)
	if err != nil {
		return nil, err
	}
	return append(bodies, stars...), nil
}

func (g GalaxyConfig) Spec() galaxy.Spec {
	s := galaxy.Spec{
		Center:     dynamo.Vec2{X: g.X, Y: g.Y},
		Velocity:   dynamo.Vec2{X: g.VX, Y: g.VY},
		CenterMass: g.CenterMass,
		Stars:      g.Stars,
		MinRadius:  g.MinRadius,
		MaxRadius:  g.MaxRadius,
		StarMass:   g.StarMass,
	}
	if s.MinRadius == 0 {
		s.MinRadius = galaxy.DefaultMinRadius
	}
	if s.MaxRadius == 0 {
		s.MaxRadius = galaxy.DefaultMaxRadius
	}
	if s.StarMass == 0 {
		s.StarMass = galaxy.DefaultStarMass
	}
	return s
}

func (b BodyConfig) Body() dynamo.Body {
	return dynamo.NewBody(dynamo.Vec2{X: b.X, Y: b.Y}, dynamo.Vec2{X: b.VX, Y: b.VY}, b.Mass)
}
