package dynamo

// Solver accumulates the forces acting on every body for one step. It reads
// positions and masses from snap only and writes each body's own Force.
type Solver interface {
	Accumulate(bodies []Body, snap Snapshot)
}

// Integrator advances a single body by dt using its accumulated force and
// clears the accumulator.
type Integrator interface {
	Integrate(b *Body, dt float64)
}

// Sink displays a frame. rows has one entry per grid row, each holding one
// rune per column.
type Sink interface {
	Present(rows [][]rune) error
}

type Observer interface {
	OnStep(bodies []Body, t float64)
}

type Metric interface {
	Name() string
	Observe(bodies []Body, t float64)
	Value() float64
	Reset()
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(rows [][]rune) error

func (f SinkFunc) Present(rows [][]rune) error { return f(rows) }
