package physics

import (
	"math"

	"github.com/san-kum/galaxsim/internal/dynamo"
)

const (
	DefaultG                  = 0.02
	DefaultProximityThreshold = 1.0
	DefaultMassCutoff         = 100.0
)

type Params struct {
	G                  float64
	ProximityThreshold float64
	MassCutoff         float64
	// Parallel fans the per-body force pass out over all CPUs.
	Parallel bool
}

func DefaultParams() Params {
	return Params{
		G:                  DefaultG,
		ProximityThreshold: DefaultProximityThreshold,
		MassCutoff:         DefaultMassCutoff,
	}
}

func (p Params) Validate() error {
	if !(p.G > 0) || math.IsInf(p.G, 0) {
		return dynamo.InvalidField("gravitational constant", p.G, dynamo.ErrInvalidParams)
	}
	if p.ProximityThreshold < 0 || math.IsNaN(p.ProximityThreshold) {
		return dynamo.InvalidField("proximity threshold", p.ProximityThreshold, dynamo.ErrInvalidParams)
	}
	if p.MassCutoff < 0 || math.IsNaN(p.MassCutoff) {
		return dynamo.InvalidField("mass cutoff", p.MassCutoff, dynamo.ErrInvalidParams)
	}
	return nil
}

// OrbitSpeed returns the speed of a circular orbit of radius r around
// centerMass.
func OrbitSpeed(g, r, centerMass float64) float64 {
	return math.Sqrt(g * centerMass / r)
}
