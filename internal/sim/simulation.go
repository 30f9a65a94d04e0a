package sim

import (
	"fmt"

	"github.com/san-kum/galaxsim/internal/dynamo"
	"github.com/san-kum/galaxsim/internal/integrators"
	"github.com/san-kum/galaxsim/internal/physics"
	"github.com/san-kum/galaxsim/internal/raster"
)

type Config struct {
	Dt         float64
	Integrator string
	Physics    physics.Params
	Raster     raster.Params
}

func DefaultConfig() Config {
	return Config{
		Dt:         DefaultDt,
		Integrator: integrators.Default,
		Physics:    physics.DefaultParams(),
		Raster:     raster.DefaultParams(),
	}
}

// Simulation owns the body collection and the frame it is drawn into.
type Simulation struct {
	clock     *Clock
	gravity   *physics.Gravity
	integ     dynamo.Integrator
	frame     *raster.FrameBuffer
	bodies    []dynamo.Body
	initial   []dynamo.Body
	snap      dynamo.Snapshot
	steps     int
	metrics   []dynamo.Metric
	observers []dynamo.Observer
}

func New(cfg Config) (*Simulation, error) {
	clock, err := NewClock(cfg.Dt)
	if err != nil {
		return nil, err
	}

	gravity, err := physics.NewGravity(cfg.Physics)
	if err != nil {
		return nil, err
	}

	frame, err := raster.New(cfg.Raster)
	if err != nil {
		return nil, err
	}

	name := cfg.Integrator
	if name == "" {
		name = integrators.Default
	}
	integ, err := integrators.Get(name)
	if err != nil {
		return nil, err
	}

	return &Simulation{
		clock:   clock,
		gravity: gravity,
		integ:   integ,
		frame:   frame,
	}, nil
}

func (s *Simulation) AddMetric(m dynamo.Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulation) AddObserver(o dynamo.Observer) { s.observers = append(s.observers, o) }

// Initialize replaces the body collection. Every body is validated before
// any state changes.
func (s *Simulation) Initialize(bodies []dynamo.Body) error {
	if len(bodies) == 0 {
		return dynamo.ErrNoBodies
	}
	for i := range bodies {
		if err := bodies[i].Validate(); err != nil {
			return fmt.Errorf("body %d: %w", i, err)
		}
	}

	s.bodies = dynamo.CloneBodies(bodies)
	for i := range s.bodies {
		s.bodies[i].ResetForce()
	}
	s.initial = dynamo.CloneBodies(s.bodies)
	s.snap = make(dynamo.Snapshot, 0, len(bodies))
	s.reset()
	return nil
}

// Reset restores the bodies passed to Initialize.
func (s *Simulation) Reset() {
	s.bodies = dynamo.CloneBodies(s.initial)
	s.reset()
}

func (s *Simulation) reset() {
	s.steps = 0
	s.clock.Reset()
	s.frame.Clear()
	for _, m := range s.metrics {
		m.Reset()
	}
}

// Step advances the simulation by one clock delta. The delta is Config.Dt,
// fixed at construction; callers never pass a timestep. Forces are
// computed against a snapshot taken before any body moves, and the frame
// is drawn from that same snapshot.
func (s *Simulation) Step() error {
	if len(s.bodies) == 0 {
		return dynamo.ErrNotInitialized
	}

	s.clock.Tick()
	dt := s.clock.Delta()

	s.snap = dynamo.Capture(s.bodies, s.snap)
	s.gravity.Accumulate(s.bodies, s.snap)
	integrators.IntegrateAll(s.integ, s.bodies, dt, s.gravity.Params().Parallel)

	for _, pm := range s.snap {
		s.frame.Draw(pm.Pos.X, pm.Pos.Y, pm.Mass)
	}

	s.steps++
	t := s.clock.Now()
	for _, m := range s.metrics {
		m.Observe(s.bodies, t)
	}
	for _, o := range s.observers {
		o.OnStep(s.bodies, t)
	}
	return nil
}

// Render hands the current frame to sink.
func (s *Simulation) Render(sink dynamo.Sink) error {
	return sink.Present(s.frame.Rows())
}

func (s *Simulation) ClearFrame() {
	s.frame.Clear()
}

// Bodies returns a copy of the current body states.
func (s *Simulation) Bodies() []dynamo.Body {
	return dynamo.CloneBodies(s.bodies)
}

func (s *Simulation) Len() int                      { return len(s.bodies) }
func (s *Simulation) Time() float64                 { return s.clock.Now() }
func (s *Simulation) Dt() float64                   { return s.clock.Delta() }
func (s *Simulation) Steps() int                    { return s.steps }
func (s *Simulation) Frame() *raster.FrameBuffer    { return s.frame }
func (s *Simulation) Gravity() *physics.Gravity     { return s.gravity }
func (s *Simulation) Integrator() dynamo.Integrator { return s.integ }

// Energy returns the total energy of the current configuration.
func (s *Simulation) Energy() float64 {
	return s.gravity.Energy(s.bodies)
}

func (s *Simulation) Metrics() map[string]float64 {
	out := make(map[string]float64, len(s.metrics))
	for _, m := range s.metrics {
		out[m.Name()] = m.Value()
	}
	return out
}
