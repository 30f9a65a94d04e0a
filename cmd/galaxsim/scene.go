package main

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/san-kum/galaxsim/internal/config"
	"github.com/san-kum/galaxsim/internal/dynamo"
	"github.com/san-kum/galaxsim/internal/optim"
	"github.com/san-kum/galaxsim/internal/storage"
	"github.com/spf13/cobra"
)

// loadScene resolves --config or --preset and applies any flags the user
// set explicitly. It returns the scene name used in titles and run IDs.
func loadScene(cmd *cobra.Command) (*config.Config, string, error) {
	var (
		cfg  *config.Config
		name string
		err  error
	)

	if configFile != "" {
		cfg, err = config.Load(configFile)
		if err != nil {
			return nil, "", err
		}
		name = strings.TrimSuffix(filepath.Base(configFile), filepath.Ext(configFile))
	} else {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, "", fmt.Errorf("unknown preset %q (available: %s)",
				preset, strings.Join(config.ListPresets(), ", "))
		}
		name = preset
	}

	applyFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}
	return cfg, name, nil
}

func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	f := cmd.Flags()
	if f.Changed("seed") {
		cfg.Seed = seed
	}
	if f.Changed("dt") {
		cfg.Dt = dt
	}
	if f.Changed("integrator") {
		cfg.Integrator = integrator
	}
	if f.Changed("theme") {
		cfg.Theme = theme
	}
	if f.Changed("speed") {
		cfg.TimeSpeed = timeSpeed
	}
	if f.Changed("steps") {
		cfg.Steps = steps
	}
}

// sceneBodies returns the stored bodies of --resume, or the scene's own.
func sceneBodies(cfg *config.Config) ([]dynamo.Body, error) {
	if resume == "" {
		return cfg.InitialBodies()
	}
	bodies, err := storage.New(dataDir).LoadBodies(resume)
	if err != nil {
		return nil, fmt.Errorf("resume %s: %w", resume, err)
	}
	return bodies, nil
}

// parseSweep turns "knob=v1,v2" specs into grid search axes.
func parseSweep(specs []string) ([]string, [][]float64, error) {
	if len(specs) == 0 {
		return nil, nil, fmt.Errorf("at least one --param is required (knobs: %s)",
			strings.Join(optim.KnobNames(), ", "))
	}

	names := make([]string, 0, len(specs))
	ranges := make([][]float64, 0, len(specs))
	for _, spec := range specs {
		name, list, ok := strings.Cut(spec, "=")
		if !ok || name == "" || list == "" {
			return nil, nil, fmt.Errorf("invalid --param %q, want knob=v1,v2", spec)
		}

		var vals []float64
		for _, s := range strings.Split(list, ",") {
			v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
			if err != nil {
				return nil, nil, fmt.Errorf("invalid value %q for %s: %w", s, name, err)
			}
			vals = append(vals, v)
		}
		names = append(names, name)
		ranges = append(ranges, vals)
	}
	return names, ranges, nil
}
