// Package galaxy seeds initial bodies: a heavy core surrounded by a disc of
// light stars on circular orbits, the whole galaxy drifting at a common
// velocity.
package galaxy

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/san-kum/galaxsim/internal/dynamo"
	"github.com/san-kum/galaxsim/internal/physics"
)

const (
	DefaultMinRadius = 2.0
	DefaultMaxRadius = 22.0
	DefaultStarMass  = 1.0
)

type Spec struct {
	Center     dynamo.Vec2
	Velocity   dynamo.Vec2
	CenterMass float64
	Stars      int
	MinRadius  float64
	MaxRadius  float64
	StarMass   float64
}

func (s Spec) Validate() error {
	if !(s.CenterMass > 0) {
		return dynamo.InvalidField("center mass", s.CenterMass, dynamo.ErrInvalidMass)
	}
	if !(s.StarMass > 0) {
		return dynamo.InvalidField("star mass", s.StarMass, dynamo.ErrInvalidMass)
	}
	if s.Stars < 0 {
		return dynamo.InvalidField("star count", float64(s.Stars), dynamo.ErrInvalidParams)
	}
	if !(s.MinRadius > 0) || s.MaxRadius < s.MinRadius {
		return &dynamo.ConfigError{
			Field: "radius range",
			Value: fmt.Sprintf("[%g, %g)", s.MinRadius, s.MaxRadius),
			Err:   dynamo.ErrInvalidParams,
		}
	}
	return nil
}

// Generate returns the core followed by s.Stars stars. Each star sits at a
// random radius in [MinRadius, MaxRadius) and moves perpendicular to the
// core at the circular orbit speed for that radius.
func Generate(rng *rand.Rand, g float64, s Spec) ([]dynamo.Body, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	bodies := make([]dynamo.Body, 0, s.Stars+1)
	bodies = append(bodies, dynamo.NewBody(s.Center, s.Velocity, s.CenterMass))

	for i := 0; i < s.Stars; i++ {
		r := (s.MaxRadius-s.MinRadius)*rng.Float64() + s.MinRadius
		theta := 2 * math.Pi * rng.Float64()
		sin, cos := dynamo.FastSinCos(theta)

		pos := s.Center.Add(dynamo.Vec2{X: cos * r, Y: sin * r})
		speed := physics.OrbitSpeed(g, r, s.CenterMass)

		// Rotate the radial unit vector by 90 degrees.
		vel := dynamo.Vec2{X: -sin * speed, Y: cos * speed}.Add(s.Velocity)

		bodies = append(bodies, dynamo.NewBody(pos, vel, s.StarMass))
	}

	return bodies, nil
}

// GenerateAll concatenates the bodies of several galaxies drawn from one
// random source.
func GenerateAll(rng *rand.Rand, g float64, specs []Spec) ([]dynamo.Body, error) {
	var bodies []dynamo.Body
	for i, s := range specs {
		b, err := Generate(rng, g, s)
		if err != nil {
			return nil, fmt.Errorf("galaxy %d: %w", i, err)
		}
		bodies = append(bodies, b...)
	}
	return bodies, nil
}
