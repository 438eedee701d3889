package analysis

import (
	"math"

	"github.com/san-kum/chaosviz/internal/dynamo"
)

// LyapunovExponent estimates the largest Lyapunov exponent by following a
// reference and a perturbed trajectory, renormalizing their separation back
// to the initial perturbation after every step. A positive value indicates
// chaos.
func LyapunovExponent(
	dyn dynamo.System,
	integ dynamo.Integrator,
	x0 dynamo.State,
	dt, duration float64,
	perturbation float64,
) float64 {
	if len(x0) == 0 || dt <= 0 || perturbation <= 0 {
		return 0
	}

	x := x0.Clone()
	xp := x0.Clone()
	xp[0] += perturbation

	ctrl := make(dynamo.Control, dyn.ControlDim())
	t := 0.0
	sumLog := 0.0
	count := 0

	for t < duration {
		x = integ.Step(dyn, x, ctrl, t, dt)
		xp = integ.Step(dyn, xp, ctrl, t, dt)
		t += dt

		sep := xp.Sub(x).Norm()
		if sep == 0 || !xp.IsValid() {
			// Separation collapsed or blew up; restart the perturbation.
			xp = x.Clone()
			xp[0] += perturbation
			continue
		}
		sumLog += math.Log(sep / perturbation)
		count++

		scale := perturbation / sep
		for i := range xp {
			xp[i] = x[i] + (xp[i]-x[i])*scale
		}
	}

	if count == 0 {
		return 0
	}
	return sumLog / (float64(count) * dt)
}
