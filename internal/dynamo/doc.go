// Package dynamo provides the simulation primitives shared by the attractor,
// its integrator and the analysis tools.
//
// The package defines the fundamental interfaces and types for numerical
// integration of ordinary differential equations (ODEs):
//
//   - [State]: vector representing system state
//   - [System]: interface for ODE systems (dX/dt = f(X, u, t))
//   - [Integrator]: numerical stepper interface
//   - [Configurable]: runtime parameter adjustment
//
// # Example
//
//	dyn := physics.NewThomas(0.208)
//	integ := integrators.NewEuler()
//	x := dyn.DefaultState()
//	x = integ.Step(dyn, x, nil, 0, 0.05)
//
// # Thread Safety
//
// Nothing in this package is safe for concurrent mutation. A System is owned
// by the goroutine that steps it.
package dynamo
