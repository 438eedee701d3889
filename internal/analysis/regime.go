package analysis

import (
	"fmt"
	"math"

	"github.com/san-kum/chaosviz/internal/dynamo"
	"github.com/san-kum/chaosviz/internal/integrators"
	"github.com/san-kum/chaosviz/internal/physics"
)

type Regime int

const (
	RegimeFixedPoint Regime = iota
	RegimePeriodic
	RegimeChaotic
)

func (r Regime) String() string {
	switch r {
	case RegimeFixedPoint:
		return "fixed point"
	case RegimePeriodic:
		return "periodic"
	case RegimeChaotic:
		return "chaotic"
	}
	return fmt.Sprintf("regime(%d)", int(r))
}

// Estimate is the outcome of probing one dissipation value.
type Estimate struct {
	Dissipation float64
	Lyapunov    float64
	// Spread is the largest distance from the final point seen over the
	// measurement window.
	Spread float64
	Regime Regime
}

func (e Estimate) String() string {
	return fmt.Sprintf("%s (λ=%+.4f)", e.Regime, e.Lyapunov)
}

// Probe holds the integration settings used to classify a dissipation value.
type Probe struct {
	X0              dynamo.State
	Dt              float64
	Transient       float64
	Duration        float64
	Perturbation    float64
	ChaosThreshold  float64
	SpreadThreshold float64
}

func DefaultProbe() Probe {
	return Probe{
		X0:              dynamo.State{0.1, 0.0, 0.0},
		Dt:              0.05,
		Transient:       200,
		Duration:        1000,
		Perturbation:    1e-8,
		ChaosThreshold:  0.01,
		SpreadThreshold: 1e-3,
	}
}

// Classify integrates past the transient, then measures the Lyapunov
// exponent and the spread of the trajectory. b is clamped to [0, 1].
func (p Probe) Classify(b float64) Estimate {
	b = math.Max(physics.MinDissipation, math.Min(physics.MaxDissipation, b))
	dyn := physics.NewThomas(b)
	est := Estimate{Dissipation: b}
	integ := integrators.NewEuler()
	if !(p.Dt > 0) {
		return est
	}

	x := p.X0.Clone()
	for t := 0.0; t < p.Transient; t += p.Dt {
		x = integ.Step(dyn, x, nil, t, p.Dt)
	}

	window := Sample(dyn, integ, x, p.Dt, 0, int(p.Duration/p.Dt))
	if len(window) > 0 {
		last := window[len(window)-1]
		for _, s := range window {
			if d := s.Sub(last).Norm(); d > est.Spread {
				est.Spread = d
			}
		}
	}

	est.Lyapunov = LyapunovExponent(dyn, integ, x, p.Dt, p.Duration, p.Perturbation)
	switch {
	case est.Lyapunov > p.ChaosThreshold:
		est.Regime = RegimeChaotic
	case est.Spread < p.SpreadThreshold:
		est.Regime = RegimeFixedPoint
	default:
		est.Regime = RegimePeriodic
	}
	return est
}

// Sample integrates from x0, discards the transient and returns n states.
// A negative n or a non-positive dt yields no states.
func Sample(dyn dynamo.System, integ dynamo.Integrator, x0 dynamo.State, dt, transient float64, n int) []dynamo.State {
	if n < 0 {
		n = 0
	}
	if !(dt > 0) {
		return []dynamo.State{}
	}
	x := x0.Clone()
	ctrl := make(dynamo.Control, dyn.ControlDim())
	t := 0.0
	for ; t < transient; t += dt {
		x = integ.Step(dyn, x, ctrl, t, dt)
	}
	out := make([]dynamo.State, 0, n)
	for i := 0; i < n; i++ {
		x = integ.Step(dyn, x, ctrl, t, dt)
		t += dt
		out = append(out, x)
	}
	return out
}
