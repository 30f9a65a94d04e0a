package metrics

import (
	"github.com/san-kum/galaxsim/internal/dynamo"
	"github.com/san-kum/galaxsim/internal/physics"
)

// Stability is the fraction of observations in which every body still had
// a finite position and velocity.
type Stability struct {
	violations int
	samples    int
}

func NewStability() *Stability {
	return &Stability{}
}

func (s *Stability) Name() string { return "stability" }

func (s *Stability) Observe(bodies []dynamo.Body, t float64) {
	s.samples++
	for i := range bodies {
		if !bodies[i].Pos.IsValid() || !bodies[i].Vel.IsValid() {
			s.violations++
			break
		}
	}
}

func (s *Stability) Value() float64 {
	if s.samples == 0 {
		return 1.0
	}
	return 1.0 - float64(s.violations)/float64(s.samples)
}

func (s *Stability) Reset() {
	s.violations = 0
	s.samples = 0
}

// Retention is the fraction of bodies inside the drawable world area at
// the latest observation.
type Retention struct {
	width, height float64
	value         float64
}

// NewRetention takes the world-space extent of the screen: width columns by
// height/ySquish units.
func NewRetention(width, height float64) *Retention {
	return &Retention{width: width, height: height, value: 1}
}

func (r *Retention) Name() string { return "retention" }

func (r *Retention) Observe(bodies []dynamo.Body, t float64) {
	if len(bodies) == 0 {
		r.value = 0
		return
	}
	inside := 0
	for i := range bodies {
		p := bodies[i].Pos
		if p.X > 0 && p.X < r.width && p.Y > 0 && p.Y < r.height {
			inside++
		}
	}
	r.value = float64(inside) / float64(len(bodies))
}

func (r *Retention) Value() float64 { return r.value }
func (r *Retention) Reset()         { r.value = 1 }

// Defaults returns the metrics attached to every CLI run.
func Defaults(g *physics.Gravity, worldWidth, worldHeight float64) []dynamo.Metric {
	return []dynamo.Metric{
		NewEnergyDrift(g),
		NewMomentumDrift(),
		NewStability(),
		NewRetention(worldWidth, worldHeight),
	}
}
