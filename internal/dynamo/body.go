package dynamo

import (
	"fmt"
	"math"
)

// Body is a point mass. Force is an accumulator that is cleared once per
// step, after integration.
type Body struct {
	Pos   Vec2
	Vel   Vec2
	Mass  float64
	Force Vec2
}

func NewBody(pos, vel Vec2, mass float64) Body {
	return Body{Pos: pos, Vel: vel, Mass: mass}
}

func (b *Body) ApplyForce(f Vec2) {
	b.Force.X += f.X
	b.Force.Y += f.Y
}

func (b *Body) ResetForce() {
	b.Force = Vec2{}
}

// Validate reports whether the body can be simulated without producing
// NaN on the first step.
func (b Body) Validate() error {
	if !(b.Mass > 0) || math.IsInf(b.Mass, 0) {
		return &ConfigError{Field: "mass", Value: fmt.Sprint(b.Mass), Err: ErrInvalidMass}
	}
	if !b.Pos.IsValid() {
		return &ConfigError{Field: "position", Value: fmt.Sprint(b.Pos), Err: ErrInvalidParams}
	}
	if !b.Vel.IsValid() {
		return &ConfigError{Field: "velocity", Value: fmt.Sprint(b.Vel), Err: ErrInvalidParams}
	}
	return nil
}

func (b Body) KineticEnergy() float64 {
	return 0.5 * b.Mass * (b.Vel.X*b.Vel.X + b.Vel.Y*b.Vel.Y)
}

type PosMass struct {
	Pos  Vec2
	Mass float64
}

// Snapshot holds one PosMass per body, in body order, taken before any
// body in the step is integrated.
type Snapshot []PosMass

// Capture fills dst with the current positions and masses of bodies,
// reusing its backing array when it is large enough.
func Capture(bodies []Body, dst Snapshot) Snapshot {
	if cap(dst) < len(bodies) {
		dst = make(Snapshot, len(bodies))
	}
	dst = dst[:len(bodies)]
	for i := range bodies {
		dst[i] = PosMass{Pos: bodies[i].Pos, Mass: bodies[i].Mass}
	}
	return dst
}

func CloneBodies(bodies []Body) []Body {
	c := make([]Body, len(bodies))
	copy(c, bodies)
	return c
}
