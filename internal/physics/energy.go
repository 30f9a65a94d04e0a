package physics

import (
	"github.com/san-kum/galaxsim/internal/dynamo"
)

// Energy returns kinetic plus gravitational potential energy. Pairs the
// solver skips contribute no potential.
func (g *Gravity) Energy(bodies []dynamo.Body) float64 {
	ke := 0.0
	pe := 0.0

	for i := range bodies {
		ke += bodies[i].KineticEnergy()

		for j := i + 1; j < len(bodies); j++ {
			if bodies[i].Mass < g.params.MassCutoff && bodies[j].Mass < g.params.MassCutoff {
				continue
			}
			d := bodies[j].Pos.Sub(bodies[i].Pos)
			if d.Manhattan() <= g.params.ProximityThreshold {
				continue
			}
			pe -= g.params.G * bodies[i].Mass * bodies[j].Mass / d.Norm()
		}
	}

	return ke + pe
}

func Momentum(bodies []dynamo.Body) dynamo.Vec2 {
	var p dynamo.Vec2
	for i := range bodies {
		p = p.Add(bodies[i].Vel.Scale(bodies[i].Mass))
	}
	return p
}

func AngularMomentum(bodies []dynamo.Body) float64 {
	L := 0.0
	for i := range bodies {
		L += bodies[i].Mass * bodies[i].Pos.Cross(bodies[i].Vel)
	}
	return L
}

func CenterOfMass(bodies []dynamo.Body) dynamo.Vec2 {
	var c dynamo.Vec2
	total := 0.0
	for i := range bodies {
		c = c.Add(bodies[i].Pos.Scale(bodies[i].Mass))
		total += bodies[i].Mass
	}
	if total == 0 {
		return dynamo.Vec2{}
	}
	return c.Scale(1 / total)
}
