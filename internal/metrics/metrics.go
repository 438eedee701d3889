// Package metrics summarizes a trajectory with scalar observers.
package metrics

import (
	"github.com/san-kum/chaosviz/internal/attractor"
	"github.com/san-kum/chaosviz/internal/dynamo"
)

type Metric interface {
	Name() string
	Observe(x dynamo.State, u dynamo.Control, t float64)
	Value() float64
	Reset()
}

// Trajectory returns the default set of trajectory metrics.
func Trajectory(threshold float64) []Metric {
	return []Metric{
		NewRadius(),
		NewPathLength(),
		NewConfinement(threshold),
	}
}

// ObservePoints feeds points to every metric in order, spaced dt apart.
func ObservePoints(points []attractor.Point, dt float64, ms ...Metric) {
	for i, p := range points {
		x := p.State()
		for _, m := range ms {
			m.Observe(x, nil, float64(i)*dt)
		}
	}
}
