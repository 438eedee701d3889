// Package analysis characterizes the dynamics of the Thomas system for a
// given dissipation.
//
//   - [LyapunovExponent]: largest Lyapunov exponent via two-trajectory renormalization
//   - [Probe.Classify]: fixed point, periodic or chaotic regime for a dissipation
//   - [BifurcationDiagram]: local maxima of one coordinate across a dissipation sweep
//   - [PowerSpectrum]: magnitude spectrum of a sampled coordinate
//
// # Chaos Detection
//
// A positive largest Lyapunov exponent indicates chaotic dynamics:
//
//	est := analysis.DefaultProbe().Classify(0.18)
//	if est.Regime == analysis.RegimeChaotic {
//	    // sensitive dependence on initial conditions
//	}
package analysis
