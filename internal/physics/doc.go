// Package physics provides the gravitational force model for the galaxy
// simulation.
//
//   - [Gravity]: O(n²) pairwise Newtonian attraction implementing [dynamo.Solver]
//   - [Params]: gravitational constant and the two cost/stability filters
//   - [OrbitSpeed]: circular orbit speed around a central mass
//
// [Gravity.Energy] applies the same filters as the solver so drift figures
// describe what the solver actually integrates. [Momentum],
// [AngularMomentum] and [CenterOfMass] are plain sums over all bodies.
//
// # Filters
//
// Pairs closer than [Params.ProximityThreshold] in Manhattan distance are
// skipped entirely. This is a coarse guard against near-singular forces, not
// a softening length. Contributors lighter than [Params.MassCutoff] are
// ignored; set it to zero to let every body attract every other body.
package physics
