package main

import (
	"path/filepath"
	"testing"

	"github.com/san-kum/galaxsim/internal/config"
	"github.com/spf13/cobra"
)

func newSceneCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "test"}
	addSceneFlags(cmd)
	return cmd
}

func TestLoadScene_Preset(t *testing.T) {
	cmd := newSceneCmd()
	if err := cmd.ParseFlags([]string{"--preset", "orbit", "--seed", "9", "--integrator", "euler"}); err != nil {
		t.Fatal(err)
	}

	cfg, name, err := loadScene(cmd)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if name != "orbit" {
		t.Errorf("expected name orbit, got %s", name)
	}
	if cfg.Seed != 9 || cfg.Integrator != "euler" {
		t.Errorf("expected flags applied, got seed=%d integrator=%s", cfg.Seed, cfg.Integrator)
	}
	if cfg.Dt != config.DefaultDt {
		t.Errorf("expected unchanged dt, got %f", cfg.Dt)
	}
}

func TestLoadScene_UnknownPreset(t *testing.T) {
	cmd := newSceneCmd()
	cmd.ParseFlags([]string{"--preset", "nope"})
	defer func() { preset = config.DefaultPreset }()

	if _, _, err := loadScene(cmd); err == nil {
		t.Error("expected error for unknown preset")
	}
}

func TestLoadScene_InvalidOverride(t *testing.T) {
	cmd := newSceneCmd()
	cmd.ParseFlags([]string{"--preset", "orbit", "--dt", "-1"})

	if _, _, err := loadScene(cmd); err == nil {
		t.Error("expected validation error for negative dt")
	}
}

func TestLoadScene_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	if err := config.Save(path, config.GetPreset("binary")); err != nil {
		t.Fatal(err)
	}

	cmd := newSceneCmd()
	cmd.ParseFlags([]string{"--config", path})
	defer func() { configFile = "" }()

	cfg, name, err := loadScene(cmd)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if name != "scene" {
		t.Errorf("expected name from file, got %s", name)
	}
	if len(cfg.Galaxies) != 2 {
		t.Errorf("expected 2 galaxies, got %d", len(cfg.Galaxies))
	}
}

func TestParseSweep(t *testing.T) {
	names, ranges, err := parseSweep([]string{"dt=0.01, 0.02", "g=0.02"})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(names) != 2 || names[0] != "dt" || names[1] != "g" {
		t.Errorf("unexpected names %v", names)
	}
	if len(ranges[0]) != 2 || ranges[0][1] != 0.02 {
		t.Errorf("unexpected dt range %v", ranges[0])
	}

	invalid := [][]string{
		nil,
		{"dt"},
		{"=1"},
		{"dt=abc"},
	}
	for _, specs := range invalid {
		if _, _, err := parseSweep(specs); err == nil {
			t.Errorf("expected error for %v", specs)
		}
	}
}
