package experiment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/san-kum/galaxsim/internal/config"
	"github.com/san-kum/galaxsim/internal/dynamo"
	"github.com/san-kum/galaxsim/internal/metrics"
	"github.com/san-kum/galaxsim/internal/sim"
	"github.com/san-kum/galaxsim/internal/storage"
)

const logEvery = 120

// traceCapacity bounds the energy history kept for a result. Longer runs
// keep the most recent samples.
var traceCapacity = 100000

// Result of a headless run.
type Result struct {
	Steps   int
	Elapsed time.Duration
	Times   []float64
	Energy  []float64
	Final   []dynamo.Body
	Metrics map[string]float64
}

func (r *Result) StepsPerSec() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.Steps) / r.Elapsed.Seconds()
}

// Experiment runs a configured scene without a display. Frames are still
// rasterised and cleared each step so timings match a live run.
type Experiment struct {
	cfg   *config.Config
	sim   *sim.Simulation
	trace *metrics.Trace
}

func New(cfg *config.Config) (*Experiment, error) {
	bodies, err := cfg.InitialBodies()
	if err != nil {
		return nil, err
	}
	return NewWithBodies(cfg, bodies)
}

// NewWithBodies uses bodies instead of the scene described by cfg.
func NewWithBodies(cfg *config.Config, bodies []dynamo.Body) (*Experiment, error) {
	s, err := sim.New(cfg.SimConfig())
	if err != nil {
		return nil, err
	}
	if err := s.Initialize(bodies); err != nil {
		return nil, err
	}

	worldH := float64(cfg.Screen.Height) / cfg.Screen.YSquish
	var drift *metrics.EnergyDrift
	for _, m := range metrics.Defaults(s.Gravity(), float64(cfg.Screen.Width), worldH) {
		if d, ok := m.(*metrics.EnergyDrift); ok {
			drift = d
		}
		s.AddMetric(m)
	}

	var trace *metrics.Trace
	if drift != nil {
		trace = metrics.NewDriftTrace(drift, traceCapacity)
	} else {
		trace = metrics.NewTrace(s.Gravity(), traceCapacity)
	}
	s.AddObserver(trace)

	return &Experiment{cfg: cfg, sim: s, trace: trace}, nil
}

// Run advances steps times, or until ctx is done. A cancelled run still
// returns what was computed.
func (e *Experiment) Run(ctx context.Context, steps int) (*Result, error) {
	if steps <= 0 {
		return nil, fmt.Errorf("steps must be positive, got %d", steps)
	}

	start := time.Now()
	var runErr error
	for i := 0; i < steps; i++ {
		if err := ctx.Err(); err != nil {
			runErr = err
			break
		}
		if err := e.sim.Step(); err != nil {
			return nil, err
		}
		e.sim.ClearFrame()
	}

	return e.result(time.Since(start)), runErr
}

// Play drives the simulation through sink at the pacer's rate. steps of
// zero plays until ctx is done; cancellation is not reported as an error.
func (e *Experiment) Play(ctx context.Context, sink dynamo.Sink, pacer sim.Pacer, steps int) (*Result, error) {
	loop := &sim.Loop{
		Sim:       e.sim,
		Sink:      sink,
		Pacer:     pacer,
		MaxFrames: steps,
		LogEvery:  logEvery,
	}
	stats, err := loop.Run(ctx)
	if errors.Is(err, context.Canceled) {
		err = nil
	}
	return e.result(stats.Elapsed), err
}

func (e *Experiment) result(elapsed time.Duration) *Result {
	return &Result{
		Steps:   e.sim.Steps(),
		Elapsed: elapsed,
		Times:   append([]float64(nil), e.trace.Times()...),
		Energy:  append([]float64(nil), e.trace.Values()...),
		Final:   e.sim.Bodies(),
		Metrics: e.sim.Metrics(),
	}
}

// Simulation returns the underlying simulation for adding observers.
func (e *Experiment) Simulation() *sim.Simulation {
	return e.sim
}

// Record turns a result into a storable run.
func (e *Experiment) Record(preset string, r *Result) storage.Run {
	return storage.Run{
		Meta: storage.RunMetadata{
			Preset:     preset,
			Seed:       e.cfg.Seed,
			Dt:         e.cfg.Dt,
			Steps:      r.Steps,
			Bodies:     len(r.Final),
			Integrator: e.cfg.Integrator,
			Metrics:    r.Metrics,
		},
		Times:  r.Times,
		Energy: r.Energy,
		Final:  r.Final,
	}
}
