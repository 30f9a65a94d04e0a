package galaxy

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/san-kum/galaxsim/internal/dynamo"
	"github.com/san-kum/galaxsim/internal/physics"
)

func testSpec() Spec {
	return Spec{
		Center:     dynamo.Vec2{X: 20, Y: 20},
		Velocity:   dynamo.Vec2{X: 6, Y: 0},
		CenterMass: 100000,
		Stars:      200,
		MinRadius:  DefaultMinRadius,
		MaxRadius:  DefaultMaxRadius,
		StarMass:   DefaultStarMass,
	}
}

func TestGenerate_Layout(t *testing.T) {
	spec := testSpec()
	bodies, err := Generate(rand.New(rand.NewSource(1)), physics.DefaultG, spec)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if len(bodies) != spec.Stars+1 {
		t.Fatalf("expected %d bodies, got %d", spec.Stars+1, len(bodies))
	}

	core := bodies[0]
	if core.Pos != spec.Center || core.Vel != spec.Velocity || core.Mass != spec.CenterMass {
		t.Errorf("unexpected core %+v", core)
	}

	for i, star := range bodies[1:] {
		d := star.Pos.Sub(spec.Center)
		r := d.Norm()
		if r < spec.MinRadius-1e-4 || r >= spec.MaxRadius+1e-4 {
			t.Fatalf("star %d: radius %f outside [%f, %f)", i, r, spec.MinRadius, spec.MaxRadius)
		}

		rel := star.Vel.Sub(spec.Velocity)
		expected := physics.OrbitSpeed(physics.DefaultG, r, spec.CenterMass)
		if math.Abs(rel.Norm()-expected)/expected > 1e-3 {
			t.Errorf("star %d: expected orbit speed %f, got %f", i, expected, rel.Norm())
		}

		// Tangential: perpendicular to the radius, counter-clockwise.
		if dot := d.X*rel.X + d.Y*rel.Y; math.Abs(dot)/(r*rel.Norm()) > 1e-3 {
			t.Errorf("star %d: velocity not tangential (cos=%f)", i, dot/(r*rel.Norm()))
		}
		if d.Cross(rel) <= 0 {
			t.Errorf("star %d: expected counter-clockwise orbit", i)
		}
		if star.Mass != spec.StarMass {
			t.Errorf("star %d: expected mass %f, got %f", i, spec.StarMass, star.Mass)
		}
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	a, _ := Generate(rand.New(rand.NewSource(7)), physics.DefaultG, testSpec())
	b, _ := Generate(rand.New(rand.NewSource(7)), physics.DefaultG, testSpec())

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("body %d differs between runs with the same seed", i)
		}
	}
}

func TestGenerate_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Spec)
		err    error
	}{
		{"zero center mass", func(s *Spec) { s.CenterMass = 0 }, dynamo.ErrInvalidMass},
		{"zero star mass", func(s *Spec) { s.StarMass = 0 }, dynamo.ErrInvalidMass},
		{"negative stars", func(s *Spec) { s.Stars = -1 }, dynamo.ErrInvalidParams},
		{"zero min radius", func(s *Spec) { s.MinRadius = 0 }, dynamo.ErrInvalidParams},
		{"inverted radii", func(s *Spec) { s.MaxRadius = 1 }, dynamo.ErrInvalidParams},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := testSpec()
			tt.mutate(&s)
			_, err := Generate(rand.New(rand.NewSource(1)), physics.DefaultG, s)
			if !errors.Is(err, tt.err) {
				t.Errorf("expected %v, got %v", tt.err, err)
			}
		})
	}
}

func TestGenerateAll(t *testing.T) {
	a := testSpec()
	b := testSpec()
	b.Stars = 50
	b.Center = dynamo.Vec2{X: 80, Y: 50}

	bodies, err := GenerateAll(rand.New(rand.NewSource(3)), physics.DefaultG, []Spec{a, b})
	if err != nil {
		t.Fatalf("generate all: %v", err)
	}
	if len(bodies) != a.Stars+b.Stars+2 {
		t.Fatalf("expected %d bodies, got %d", a.Stars+b.Stars+2, len(bodies))
	}
	if bodies[a.Stars+1].Pos != b.Center {
		t.Errorf("expected second core at %v, got %v", b.Center, bodies[a.Stars+1].Pos)
	}
}
