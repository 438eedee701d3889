// Package physics provides the dynamical system behind the visualizer.
//
// [Thomas] implements [dynamo.System] and [dynamo.Configurable]; its single
// parameter "b" is the dissipation, bounded to [MinDissipation,
// MaxDissipation]:
//
//	dx/dt = sin(y) - b*x
//	dy/dt = sin(z) - b*y
//	dz/dt = sin(x) - b*z
package physics
