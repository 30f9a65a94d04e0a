package integrators

import "github.com/san-kum/galaxsim/internal/dynamo"

// SemiImplicitEuler updates velocity first and moves the body with the new
// velocity. It is symplectic, which keeps orbits closed over long runs.
type SemiImplicitEuler struct{}

func NewSemiImplicitEuler() *SemiImplicitEuler {
	return &SemiImplicitEuler{}
}

func (e *SemiImplicitEuler) Integrate(b *dynamo.Body, dt float64) {
	b.Vel = b.Vel.Add(b.Force.Scale(dt / b.Mass))
	b.Pos = b.Pos.Add(b.Vel.Scale(dt))
	b.ResetForce()
}

// ExplicitEuler moves the body with the velocity it had at the start of the
// step. Orbits spiral outward; kept for comparison runs only.
type ExplicitEuler struct{}

func NewExplicitEuler() *ExplicitEuler {
	return &ExplicitEuler{}
}

func (e *ExplicitEuler) Integrate(b *dynamo.Body, dt float64) {
	b.Pos = b.Pos.Add(b.Vel.Scale(dt))
	b.Vel = b.Vel.Add(b.Force.Scale(dt / b.Mass))
	b.ResetForce()
}

const parallelChunk = 4096

// IntegrateAll advances every body in order. With parallel set, large sets
// are split across goroutines; bodies are independent at this stage.
func IntegrateAll(integ dynamo.Integrator, bodies []dynamo.Body, dt float64, parallel bool) {
	pass := func(start, end int) {
		for i := start; i < end; i++ {
			integ.Integrate(&bodies[i], dt)
		}
	}
	if parallel {
		dynamo.ParallelFor(len(bodies), parallelChunk, pass)
		return
	}
	pass(0, len(bodies))
}
