package physics

import (
	"github.com/san-kum/galaxsim/internal/dynamo"
)

// parallelChunk is the smallest body range worth a goroutine.
const parallelChunk = 64

type Gravity struct {
	params Params
}

func NewGravity(p Params) (*Gravity, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &Gravity{params: p}, nil
}

func (g *Gravity) Params() Params { return g.params }

// Accumulate adds the attraction of every significant body in snap to the
// force of every body. Positions are read from snap only, so the result does
// not depend on the order bodies are visited in.
func (g *Gravity) Accumulate(bodies []dynamo.Body, snap dynamo.Snapshot) {
	n := len(bodies)
	if len(snap) < n {
		n = len(snap)
	}

	pass := func(start, end int) {
		for i := start; i < end; i++ {
			on := snap[i]
			for j := range snap {
				if j == i {
					continue
				}
				if f, ok := g.PairForce(on, snap[j]); ok {
					bodies[i].ApplyForce(f)
				}
			}
		}
	}

	if g.params.Parallel {
		dynamo.ParallelFor(n, parallelChunk, pass)
		return
	}
	pass(0, n)
}

// PairForce returns the force exerted by `by` on `on`. ok is false when the
// pair is filtered out by the mass cutoff or the proximity threshold.
func (g *Gravity) PairForce(on, by dynamo.PosMass) (f dynamo.Vec2, ok bool) {
	if by.Mass < g.params.MassCutoff {
		return dynamo.Vec2{}, false
	}

	d := by.Pos.Sub(on.Pos)
	if d.Manhattan() <= g.params.ProximityThreshold {
		return dynamo.Vec2{}, false
	}

	r := d.Norm()
	mag := g.params.G * on.Mass * by.Mass / (r * r)
	return d.Scale(mag / r), true
}
