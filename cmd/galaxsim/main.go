package main

import (
	"fmt"
	"os"

	"github.com/san-kum/galaxsim/internal/config"
	"github.com/spf13/cobra"
)

var (
	dataDir    string
	debug      bool
	preset     string
	configFile string
	seed       int64
	dt         float64
	integrator string
	theme      string
	timeSpeed  float64
	steps      int
	frameRate  int
	sinkName   string
	save       bool
	resume     string
	metricName string
	sweepSpecs []string
	svgEnergy  bool
)

// main registers the galaxsim commands. With no subcommand it opens the live
// view of the default scene.
func main() {
	var logFile *os.File

	rootCmd := &cobra.Command{
		Use:   "galaxsim",
		Short: "n-body galaxy collisions rendered as ascii art",
		RunE:  runLive,
	}
	rootCmd.SilenceUsage = true
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		logFile = setupLogging(debug)
	}
	rootCmd.PersistentPostRun = func(cmd *cobra.Command, args []string) {
		if logFile != nil {
			logFile.Close()
		}
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".galaxsim", "data directory")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "write logs to "+logDir+"/"+logFileName)
	addSceneFlags(rootCmd)

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "interactive view with stats panel",
		RunE:  runLive,
	}
	addSceneFlags(liveCmd)
	liveCmd.Flags().IntVar(&frameRate, "fps", 0, "ticks per second (default 1/(dt*time_speed))")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run simulation to a terminal sink",
		RunE:  runSimulation,
	}
	addSceneFlags(runCmd)
	runCmd.Flags().StringVar(&sinkName, "sink", "ansi", "frame sink: ansi, tcell or none")
	runCmd.Flags().BoolVar(&save, "save", false, "store the run under the data directory")
	runCmd.Flags().StringVar(&resume, "resume", "", "start from the final bodies of a stored run")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "measure steps per second for each integrator",
		RunE:  benchScene,
	}
	addSceneFlags(benchCmd)

	compareCmd := &cobra.Command{
		Use:   "compare",
		Short: "compare energy drift across integrators",
		RunE:  compareIntegrators,
	}
	addSceneFlags(compareCmd)

	sweepCmd := &cobra.Command{
		Use:     "sweep",
		Short:   "grid search physics knobs for the lowest metric",
		Example: "  galaxsim sweep --preset orbit --param dt=0.008,0.016 --param proximity_threshold=0.5,1 --steps 300",
		RunE:    sweepScene,
	}
	addSceneFlags(sweepCmd)
	sweepCmd.Flags().StringArrayVar(&sweepSpecs, "param", nil, "knob=v1,v2,... (repeatable)")
	sweepCmd.Flags().StringVar(&metricName, "metric", "energy_drift", "metric to minimise")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list built-in scenes",
		RunE:  listPresets,
	}

	initCmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "write a scene as an editable yaml config",
		Args:  cobra.ExactArgs(1),
		RunE:  initConfig,
	}
	addSceneFlags(initCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot the energy of a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "print a stored run as json",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	svgCmd := &cobra.Command{
		Use:   "svg [run_id] [out.svg]",
		Short: "draw the final bodies of a stored run as svg",
		Args:  cobra.ExactArgs(2),
		RunE:  svgRun,
	}
	svgCmd.Flags().BoolVar(&svgEnergy, "energy", false, "draw the energy curve instead")

	rootCmd.AddCommand(liveCmd, runCmd, benchCmd, compareCmd, sweepCmd,
		presetsCmd, initCmd, listCmd, plotCmd, exportCmd, svgCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func addSceneFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&preset, "preset", config.DefaultPreset, "built-in scene")
	f.StringVar(&configFile, "config", "", "yaml config file (overrides --preset)")
	f.Int64Var(&seed, "seed", 0, "galaxy generator seed")
	f.Float64Var(&dt, "dt", 0, "timestep")
	f.StringVar(&integrator, "integrator", "", "integrator: symplectic or euler")
	f.StringVar(&theme, "theme", "", "colour theme")
	f.Float64Var(&timeSpeed, "speed", 0, "playback slowdown factor")
	f.IntVar(&steps, "steps", 0, "number of steps")
}
