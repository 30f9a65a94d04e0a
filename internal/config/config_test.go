package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/galaxsim/internal/dynamo"
	"github.com/san-kum/galaxsim/internal/raster"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Dt <= 0 {
		t.Error("dt should be positive")
	}
	if cfg.Screen.Width != 150 || cfg.Screen.Height != 45 {
		t.Errorf("expected 150x45 screen, got %dx%d", cfg.Screen.Width, cfg.Screen.Height)
	}
	if cfg.Screen.Ramp != ".,:ilw@" {
		t.Errorf("unexpected ramp %q", cfg.Screen.Ramp)
	}
	if len(cfg.Galaxies) != 2 {
		t.Errorf("expected 2 galaxies, got %d", len(cfg.Galaxies))
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestPresets(t *testing.T) {
	names := ListPresets()
	if len(names) == 0 {
		t.Fatal("expected presets")
	}

	for _, name := range names {
		cfg := GetPreset(name)
		if cfg == nil {
			t.Fatalf("preset %s: got nil", name)
		}
		if err := cfg.Validate(); err != nil {
			t.Errorf("preset %s invalid: %v", name, err)
		}
		bodies, err := cfg.InitialBodies()
		if err != nil {
			t.Errorf("preset %s: %v", name, err)
		}
		if len(bodies) == 0 {
			t.Errorf("preset %s: no bodies", name)
		}
	}

	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestGetPreset_ReturnsCopy(t *testing.T) {
	a := GetPreset("single")
	a.Galaxies[0].Stars = 1

	b := GetPreset("single")
	if b.Galaxies[0].Stars == 1 {
		t.Error("preset mutation leaked into the next lookup")
	}
}

func TestInitialBodies(t *testing.T) {
	cfg := DefaultConfig()
	bodies, err := cfg.InitialBodies()
	if err != nil {
		t.Fatalf("initial bodies: %v", err)
	}

	// 600 + 200 stars and two cores.
	if len(bodies) != 802 {
		t.Errorf("expected 802 bodies, got %d", len(bodies))
	}

	again, _ := cfg.InitialBodies()
	for i := range bodies {
		if bodies[i] != again[i] {
			t.Fatalf("body %d differs for the same seed", i)
		}
	}

	cfg.Bodies = []BodyConfig{{X: 1, Y: 1, Mass: 5}}
	bodies, _ = cfg.InitialBodies()
	if bodies[0].Mass != 5 {
		t.Errorf("expected explicit body first, got mass %f", bodies[0].Mass)
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "galaxsim.yaml")

	cfg := GetPreset("binary")
	cfg.Seed = 42
	cfg.Screen.Width = 100
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Seed != 42 || loaded.Screen.Width != 100 {
		t.Errorf("round trip lost values: seed %d width %d", loaded.Seed, loaded.Screen.Width)
	}
	if len(loaded.Galaxies) != 2 || loaded.Galaxies[1].VY != 2 {
		t.Errorf("unexpected galaxies %+v", loaded.Galaxies)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	data := "dt: 0.01\nscreen:\n  width: 80\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Dt != 0.01 || cfg.Screen.Width != 80 {
		t.Errorf("overrides not applied: dt %f width %d", cfg.Dt, cfg.Screen.Width)
	}
	if cfg.Screen.Height != raster.DefaultHeight || cfg.Physics.G == 0 {
		t.Error("unspecified fields lost their defaults")
	}
	if len(cfg.Galaxies) != 2 {
		t.Errorf("expected default scene, got %d galaxies", len(cfg.Galaxies))
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
		err  error
	}{
		{"negative dt", "dt: -1\n", dynamo.ErrInvalidDelta},
		{"zero width", "screen:\n  width: 0\n", dynamo.ErrInvalidGrid},
		{"zero mass body", "bodies:\n  - {x: 1, y: 1, mass: 0}\n", dynamo.ErrInvalidMass},
		{"zero time speed", "time_speed: 0\n", dynamo.ErrInvalidParams},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.yaml")
			if err := os.WriteFile(path, []byte(tt.data), 0644); err != nil {
				t.Fatal(err)
			}
			_, err := Load(path)
			if !errors.Is(err, tt.err) {
				t.Errorf("expected %v, got %v", tt.err, err)
			}
		})
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestSimConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Physics.MassCutoff = 0
	sc := cfg.SimConfig()

	if sc.Physics.MassCutoff != 0 || sc.Physics.G != cfg.Physics.G {
		t.Errorf("physics params not mapped: %+v", sc.Physics)
	}
	if string(sc.Raster.Ramp) != cfg.Screen.Ramp || sc.Raster.YSquish != cfg.Screen.YSquish {
		t.Errorf("raster params not mapped: %+v", sc.Raster)
	}
}
