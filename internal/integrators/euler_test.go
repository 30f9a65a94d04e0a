package integrators

import (
	"math"
	"testing"

	"github.com/san-kum/galaxsim/internal/dynamo"
)

func TestSemiImplicitEuler_UsesUpdatedVelocity(t *testing.T) {
	b := dynamo.NewBody(dynamo.Vec2{X: 1, Y: 1}, dynamo.Vec2{X: 2, Y: 0}, 4)
	b.ApplyForce(dynamo.Vec2{X: 8, Y: -4})

	NewSemiImplicitEuler().Integrate(&b, 0.5)

	// v = (2,0) + (8,-4)/4*0.5 = (3,-0.5); p = (1,1) + v*0.5
	if b.Vel != (dynamo.Vec2{X: 3, Y: -0.5}) {
		t.Errorf("expected velocity {3 -0.5}, got %v", b.Vel)
	}
	if b.Pos != (dynamo.Vec2{X: 2.5, Y: 0.75}) {
		t.Errorf("expected position {2.5 0.75}, got %v", b.Pos)
	}
	if b.Force != (dynamo.Vec2{}) {
		t.Errorf("expected force reset, got %v", b.Force)
	}
}

func TestExplicitEuler_UsesOldVelocity(t *testing.T) {
	b := dynamo.NewBody(dynamo.Vec2{X: 1, Y: 1}, dynamo.Vec2{X: 2, Y: 0}, 4)
	b.ApplyForce(dynamo.Vec2{X: 8, Y: -4})

	NewExplicitEuler().Integrate(&b, 0.5)

	if b.Pos != (dynamo.Vec2{X: 2, Y: 1}) {
		t.Errorf("expected position {2 1}, got %v", b.Pos)
	}
	if b.Vel != (dynamo.Vec2{X: 3, Y: -0.5}) {
		t.Errorf("expected velocity {3 -0.5}, got %v", b.Vel)
	}
	if b.Force != (dynamo.Vec2{}) {
		t.Errorf("expected force reset, got %v", b.Force)
	}
}

func TestSemiImplicitEuler_ZeroForceIsLinear(t *testing.T) {
	p0 := dynamo.Vec2{X: 3, Y: -2}
	v := dynamo.Vec2{X: 0.75, Y: 1.5}
	dt := 1.0 / 60.0
	steps := 600

	b := dynamo.NewBody(p0, v, 2)
	integ := NewSemiImplicitEuler()
	for i := 0; i < steps; i++ {
		integ.Integrate(&b, dt)
	}

	expected := p0.Add(v.Scale(dt * float64(steps)))
	if math.Abs(b.Pos.X-expected.X) > 1e-9 || math.Abs(b.Pos.Y-expected.Y) > 1e-9 {
		t.Errorf("expected position %v, got %v", expected, b.Pos)
	}
	if b.Vel != v {
		t.Errorf("velocity changed without force: %v", b.Vel)
	}
}

func TestIntegrateAll(t *testing.T) {
	bodies := make([]dynamo.Body, 10000)
	for i := range bodies {
		bodies[i] = dynamo.NewBody(dynamo.Vec2{}, dynamo.Vec2{X: float64(i)}, 1)
		bodies[i].ApplyForce(dynamo.Vec2{Y: 1})
	}

	for _, parallel := range []bool{false, true} {
		set := dynamo.CloneBodies(bodies)
		IntegrateAll(NewSemiImplicitEuler(), set, 1, parallel)

		for i, b := range set {
			if b.Pos.X != float64(i) || b.Pos.Y != 1 || b.Force != (dynamo.Vec2{}) {
				t.Fatalf("parallel=%v: body %d not integrated: %+v", parallel, i, b)
			}
		}
	}
}

// orderRecorder notes the order bodies are visited in. It is not safe for
// concurrent use.
type orderRecorder struct {
	visited []float64
}

func (r *orderRecorder) Integrate(b *dynamo.Body, dt float64) {
	r.visited = append(r.visited, b.Mass)
}

func TestIntegrateAll_SerialUnlessParallel(t *testing.T) {
	bodies := make([]dynamo.Body, 3*parallelChunk)
	for i := range bodies {
		bodies[i] = dynamo.NewBody(dynamo.Vec2{}, dynamo.Vec2{}, float64(i+1))
	}

	rec := &orderRecorder{}
	IntegrateAll(rec, bodies, 1, false)

	if len(rec.visited) != len(bodies) {
		t.Fatalf("expected %d visits, got %d", len(bodies), len(rec.visited))
	}
	for i, m := range rec.visited {
		if m != float64(i+1) {
			t.Fatalf("expected in-order serial pass, visit %d was body %v", i, m)
		}
	}
}

func TestRegistry(t *testing.T) {
	for _, name := range Names() {
		if _, err := Get(name); err != nil {
			t.Errorf("integrator %s: %v", name, err)
		}
	}
	if _, ok := mustGet(t, Default).(*SemiImplicitEuler); !ok {
		t.Error("default integrator is not semi-implicit Euler")
	}
	if _, err := Get("rk4"); err == nil {
		t.Error("expected error for unknown integrator")
	}
}

func mustGet(t *testing.T, name string) dynamo.Integrator {
	t.Helper()
	integ, err := Get(name)
	if err != nil {
		t.Fatalf("get %s: %v", name, err)
	}
	return integ
}
