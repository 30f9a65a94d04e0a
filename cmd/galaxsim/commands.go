package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/galaxsim/internal/config"
	"github.com/san-kum/galaxsim/internal/experiment"
	"github.com/san-kum/galaxsim/internal/export"
	"github.com/san-kum/galaxsim/internal/integrators"
	"github.com/san-kum/galaxsim/internal/metrics"
	"github.com/san-kum/galaxsim/internal/optim"
	"github.com/san-kum/galaxsim/internal/sim"
	"github.com/san-kum/galaxsim/internal/storage"
	"github.com/san-kum/galaxsim/internal/viz"
	"github.com/spf13/cobra"
)

const (
	defaultHeadlessSteps = 600
	defaultBenchSteps    = 300
)

func runLive(cmd *cobra.Command, args []string) error {
	cfg, name, err := loadScene(cmd)
	if err != nil {
		return err
	}
	bodies, err := sceneBodies(cfg)
	if err != nil {
		return err
	}

	s, err := sim.New(cfg.SimConfig())
	if err != nil {
		return err
	}
	if err := s.Initialize(bodies); err != nil {
		return err
	}
	worldH := float64(cfg.Screen.Height) / cfg.Screen.YSquish
	for _, m := range metrics.Defaults(s.Gravity(), float64(cfg.Screen.Width), worldH) {
		s.AddMetric(m)
	}

	fps := frameRate
	if !cmd.Flags().Changed("fps") {
		fps = int(math.Round(1 / (cfg.Dt * cfg.TimeSpeed)))
	}

	log.Printf("live: %s with %d bodies at %d fps", name, len(bodies), fps)
	model := viz.NewLiveModel(s, name, cfg.Theme, fps)
	_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, name, err := loadScene(cmd)
	if err != nil {
		return err
	}
	bodies, err := sceneBodies(cfg)
	if err != nil {
		return err
	}

	exp, err := experiment.NewWithBodies(cfg, bodies)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Printf("run: %s with %d bodies, sink=%s", name, len(bodies), sinkName)
	result, err := play(ctx, exp, cfg)
	if err != nil {
		return err
	}

	fmt.Printf("%s: %d steps in %v (%.0f steps/sec)\n",
		name, result.Steps, result.Elapsed.Round(time.Millisecond), result.StepsPerSec())
	printMetrics(result.Metrics)

	if !save {
		return nil
	}
	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(exp.Record(name, result))
	if err != nil {
		return err
	}
	fmt.Printf("saved run: %s\n", runID)
	return nil
}

// play runs exp against the sink named by --sink. The terminal is restored
// before it returns.
func play(ctx context.Context, exp *experiment.Experiment, cfg *config.Config) (*experiment.Result, error) {
	pacer := sim.NewSleepPacer(cfg.Dt, cfg.TimeSpeed)
	ramp := exp.Simulation().Frame().Params().Ramp

	switch sinkName {
	case "none":
		n := cfg.Steps
		if n == 0 {
			n = defaultHeadlessSteps
		}
		res, err := exp.Run(ctx, n)
		if errors.Is(err, context.Canceled) {
			err = nil
		}
		return res, err

	case "ansi":
		sink := viz.NewANSISink(os.Stdout)
		defer sink.Close()
		return exp.Play(ctx, sink, pacer, cfg.Steps)

	case "tcell":
		screen, err := viz.OpenTerminal()
		if err != nil {
			return nil, err
		}
		defer screen.Fini()

		ctx, cancel := context.WithCancel(ctx)
		defer cancel()
		go viz.WatchQuit(screen, cancel)

		sink := viz.NewTcellSink(screen, ramp, viz.GetTheme(cfg.Theme))
		return exp.Play(ctx, sink, pacer, cfg.Steps)
	}
	return nil, fmt.Errorf("unknown sink %q (want ansi, tcell or none)", sinkName)
}

func printMetrics(vals map[string]float64) {
	names := make([]string, 0, len(vals))
	for k := range vals {
		names = append(names, k)
	}
	sort.Strings(names)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, k := range names {
		fmt.Fprintf(w, "  %s\t%.6g\n", k, vals[k])
	}
	w.Flush()
}

func benchScene(cmd *cobra.Command, args []string) error {
	cfg, name, err := loadScene(cmd)
	if err != nil {
		return err
	}
	n := cfg.Steps
	if n == 0 {
		n = defaultBenchSteps
	}

	fmt.Printf("benchmarking %s\n\n", name)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "INTEGRATOR\tPARALLEL\tBODIES\tSTEPS\tTIME\tSTEPS/SEC")

	for _, integ := range integrators.Names() {
		for _, parallel := range []bool{false, true} {
			c := *cfg
			c.Integrator = integ
			c.Physics.Parallel = parallel

			exp, err := experiment.New(&c)
			if err != nil {
				return err
			}
			result, err := exp.Run(cmd.Context(), n)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "%s\t%v\t%d\t%d\t%v\t%.0f\n",
				integ, parallel, len(result.Final), result.Steps,
				result.Elapsed.Round(time.Millisecond), result.StepsPerSec())
		}
	}

	return w.Flush()
}

func compareIntegrators(cmd *cobra.Command, args []string) error {
	cfg, name, err := loadScene(cmd)
	if err != nil {
		return err
	}
	n := cfg.Steps
	if n == 0 {
		n = defaultBenchSteps
	}

	names := integrators.Names()
	series := make([][]float64, 0, len(names))

	fmt.Printf("comparing integrators on %s (%d steps)\n\n", name, n)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "INTEGRATOR\tENERGY DRIFT\tMOMENTUM DRIFT\tRETENTION\tTIME")

	for _, integ := range names {
		c := *cfg
		c.Integrator = integ

		exp, err := experiment.New(&c)
		if err != nil {
			return err
		}
		result, err := exp.Run(cmd.Context(), n)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%.4e\t%.4e\t%.2f\t%v\n",
			integ,
			result.Metrics["energy_drift"],
			result.Metrics["momentum_drift"],
			result.Metrics["retention"],
			result.Elapsed.Round(time.Millisecond),
		)
		series = append(series, result.Energy)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(asciigraph.PlotMany(series,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.SeriesColors(asciigraph.Green, asciigraph.Red),
		asciigraph.Caption(fmt.Sprintf("total energy: %v", names)),
	))
	return nil
}

func sweepScene(cmd *cobra.Command, args []string) error {
	names, ranges, err := parseSweep(sweepSpecs)
	if err != nil {
		return err
	}
	gs, err := optim.NewGridSearch(names, ranges)
	if err != nil {
		return err
	}

	base, sceneName, err := loadScene(cmd)
	if err != nil {
		return err
	}
	n := base.Steps
	if n == 0 {
		n = defaultBenchSteps
	}
	fresh := func() *config.Config {
		c := *base
		return &c
	}

	best, trials, err := gs.Search(cmd.Context(), fresh, n, metricName)

	fmt.Printf("sweeping %s over %v (%d steps)\n\n", sceneName, names, n)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, k := range names {
		fmt.Fprintf(w, "%s\t", k)
	}
	fmt.Fprintln(w, metricName)
	for _, tr := range trials {
		for _, k := range names {
			fmt.Fprintf(w, "%g\t", tr.Params[k])
		}
		if tr.Err != nil {
			fmt.Fprintf(w, "error: %v\n", tr.Err)
			continue
		}
		fmt.Fprintf(w, "%.6g\n", tr.Value)
	}
	w.Flush()

	if err != nil {
		return err
	}
	fmt.Printf("\nbest %s=%.6g at %v\n", metricName, best.Value, best.Params)
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tGALAXIES\tBODIES\tMASS CUTOFF\tPARALLEL")
	for _, name := range config.ListPresets() {
		cfg := config.GetPreset(name)
		n := len(cfg.Bodies)
		for _, g := range cfg.Galaxies {
			n += g.Stars + 1
		}
		fmt.Fprintf(w, "%s\t%d\t%d\t%g\t%v\n",
			name, len(cfg.Galaxies), n, cfg.Physics.MassCutoff, cfg.Physics.Parallel)
	}
	return w.Flush()
}

func initConfig(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadScene(cmd)
	if err != nil {
		return err
	}
	if err := config.Save(args[0], cfg); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", args[0])
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPRESET\tTIME\tSTEPS\tBODIES\tDT\tINTEG\tDRIFT")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%.4fs\t%s\t%.3e\n",
			run.ID,
			run.Preset,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Steps,
			run.Bodies,
			run.Dt,
			run.Integrator,
			run.Metrics["energy_drift"],
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	_, energy, err := st.LoadEnergy(runID)
	if err != nil {
		return err
	}
	if len(energy) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("preset: %s\n", meta.Preset)
	fmt.Printf("samples: %d\n\n", len(energy))

	fmt.Println(asciigraph.Plot(energy,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("total energy vs step"),
	))
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	return storage.New(dataDir).ExportJSON(os.Stdout, args[0])
}

func svgRun(cmd *cobra.Command, args []string) error {
	runID, out := args[0], args[1]
	st := storage.New(dataDir)

	var doc string
	if svgEnergy {
		_, energy, err := st.LoadEnergy(runID)
		if err != nil {
			return err
		}
		doc = export.SeriesToSVG(energy, 800, 300, "#00ff88")
		if doc == "" {
			return fmt.Errorf("no data to plot")
		}
	} else {
		bodies, err := st.LoadBodies(runID)
		if err != nil {
			return err
		}
		screen := config.DefaultConfig().Screen
		doc = export.BodiesToSVG(bodies, float64(screen.Width), float64(screen.Height)/screen.YSquish, 6)
	}

	if err := os.WriteFile(out, []byte(doc), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", out)
	return nil
}
