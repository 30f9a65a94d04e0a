package metrics

import (
	"math"

	"github.com/san-kum/galaxsim/internal/dynamo"
	"github.com/san-kum/galaxsim/internal/physics"
)

type EnergyFunc func(bodies []dynamo.Body) float64

// EnergyDrift tracks the largest relative departure from the energy seen at
// the first observation.
type EnergyDrift struct {
	name          string
	energy        EnergyFunc
	initialEnergy float64
	currentEnergy float64
	maxDrift      float64
	samples       int
}

func NewEnergyDrift(g *physics.Gravity) *EnergyDrift {
	return &EnergyDrift{
		name:   "energy_drift",
		energy: g.Energy,
	}
}

func (e *EnergyDrift) Name() string { return e.name }

func (e *EnergyDrift) Observe(bodies []dynamo.Body, t float64) {
	energy := e.energy(bodies)

	if e.samples == 0 {
		e.initialEnergy = energy
	}

	e.currentEnergy = energy
	e.samples++

	if e.initialEnergy != 0 {
		drift := math.Abs(energy-e.initialEnergy) / math.Abs(e.initialEnergy)
		e.maxDrift = math.Max(e.maxDrift, drift)
	}
}

func (e *EnergyDrift) Value() float64   { return e.maxDrift }
func (e *EnergyDrift) Current() float64 { return e.currentEnergy }

func (e *EnergyDrift) Reset() {
	e.initialEnergy = 0
	e.currentEnergy = 0
	e.maxDrift = 0
	e.samples = 0
}

// MomentumDrift reports the magnitude of the change in total linear
// momentum since the first observation. The mass cutoff makes forces
// asymmetric, so this is not expected to stay at zero.
type MomentumDrift struct {
	initial dynamo.Vec2
	current dynamo.Vec2
	samples int
}

func NewMomentumDrift() *MomentumDrift {
	return &MomentumDrift{}
}

func (m *MomentumDrift) Name() string { return "momentum_drift" }

func (m *MomentumDrift) Observe(bodies []dynamo.Body, t float64) {
	p := physics.Momentum(bodies)
	if m.samples == 0 {
		m.initial = p
	}
	m.current = p
	m.samples++
}

func (m *MomentumDrift) Value() float64 {
	return m.current.Sub(m.initial).Norm()
}

func (m *MomentumDrift) Reset() {
	m.initial = dynamo.Vec2{}
	m.current = dynamo.Vec2{}
	m.samples = 0
}

// Trace records a bounded history of total energy for plotting.
type Trace struct {
	energy   EnergyFunc
	capacity int
	times    []float64
	values   []float64
}

func NewTrace(g *physics.Gravity, capacity int) *Trace {
	return &Trace{
		energy:   g.Energy,
		capacity: capacity,
		times:    make([]float64, 0, capacity),
		values:   make([]float64, 0, capacity),
	}
}

// NewDriftTrace records the energy d measured on the same step instead of
// evaluating it again. d must be registered as a metric on the simulation,
// since metrics observe a step before observers do.
func NewDriftTrace(d *EnergyDrift, capacity int) *Trace {
	return &Trace{
		energy:   func([]dynamo.Body) float64 { return d.Current() },
		capacity: capacity,
		times:    make([]float64, 0, capacity),
		values:   make([]float64, 0, capacity),
	}
}

func (tr *Trace) OnStep(bodies []dynamo.Body, t float64) {
	tr.times = append(tr.times, t)
	tr.values = append(tr.values, tr.energy(bodies))
	if tr.capacity > 0 && len(tr.values) > tr.capacity {
		tr.times = tr.times[1:]
		tr.values = tr.values[1:]
	}
}

func (tr *Trace) Values() []float64 { return tr.values }
func (tr *Trace) Times() []float64  { return tr.times }

func (tr *Trace) Reset() {
	tr.times = tr.times[:0]
	tr.values = tr.values[:0]
}
