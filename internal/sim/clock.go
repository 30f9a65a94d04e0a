package sim

import (
	"math"

	"github.com/san-kum/galaxsim/internal/dynamo"
)

const DefaultDt = 1.0 / 60.0

// Clock advances simulation time by a fixed delta. It is independent of
// wall-clock time; pacing is the Loop's concern.
type Clock struct {
	now   float64
	delta float64
}

func NewClock(delta float64) (*Clock, error) {
	if !(delta > 0) || math.IsInf(delta, 0) {
		return nil, dynamo.InvalidField("dt", delta, dynamo.ErrInvalidDelta)
	}
	return &Clock{delta: delta}, nil
}

func (c *Clock) Tick()          { c.now += c.delta }
func (c *Clock) Now() float64   { return c.now }
func (c *Clock) Delta() float64 { return c.delta }
func (c *Clock) Reset()         { c.now = 0 }
