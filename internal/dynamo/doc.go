// Package dynamo provides the core primitives shared by the galaxy simulation.
//
// The package defines the value types and the narrow interfaces the
// simulation loop is assembled from:
//
//   - [Vec2]: 2D vector arithmetic
//   - [Body]: point mass with position, velocity, mass and a force accumulator
//   - [Snapshot]: per-step capture of every body's position and mass
//   - [Solver]: accumulates forces into bodies from a snapshot
//   - [Integrator]: turns accumulated force into motion
//   - [Sink]: consumes a rendered character grid
//
// # Example
//
//	bodies := []dynamo.Body{dynamo.NewBody(dynamo.Vec2{X: 10, Y: 10}, dynamo.Vec2{}, 1000)}
//	snap := dynamo.Capture(bodies, nil)
//	solver.Accumulate(bodies, snap)
//
// # Thread Safety
//
// Bodies are plain values and are NOT safe for concurrent mutation. A
// [Solver] may fan out across bodies with [ParallelFor] because each body
// only ever writes its own accumulator while reading the shared snapshot.
package dynamo
