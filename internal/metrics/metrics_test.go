package metrics

import (
	"math"
	"testing"

	"github.com/san-kum/chaosviz/internal/attractor"
	"github.com/san-kum/chaosviz/internal/dynamo"
)

func TestRadius(t *testing.T) {
	m := NewRadius()
	m.Observe(dynamo.State{3, 4, 0}, nil, 0)
	m.Observe(dynamo.State{0, 0, 1}, nil, 1)
	if got := m.Value(); math.Abs(got-3) > 1e-12 {
		t.Errorf("expected mean radius 3, got %f", got)
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("expected zero radius after reset")
	}
}

func TestPathLength(t *testing.T) {
	m := NewPathLength()
	x := dynamo.State{0, 0, 0}
	m.Observe(x, nil, 0)
	x[0] = 3 // must not affect the stored previous state
	m.Observe(dynamo.State{3, 4, 0}, nil, 1)
	m.Observe(dynamo.State{3, 4, 2}, nil, 2)
	if got := m.Value(); math.Abs(got-7) > 1e-12 {
		t.Errorf("expected length 7, got %f", got)
	}

	m.Reset()
	m.Observe(dynamo.State{10, 10, 10}, nil, 0)
	if m.Value() != 0 {
		t.Error("first observation after reset must not add length")
	}
}

func TestConfinement(t *testing.T) {
	m := NewConfinement(5)
	if m.Value() != 1 {
		t.Error("no samples should count as confined")
	}
	m.Observe(dynamo.State{1, 2, 3}, nil, 0)
	m.Observe(dynamo.State{1, -6, 3}, nil, 1)
	if got := m.Value(); got != 0.5 {
		t.Errorf("expected 0.5, got %f", got)
	}
}

func TestObservePoints(t *testing.T) {
	sim := attractor.New(0.208, attractor.DefaultOptions())
	sim.Advance()

	ms := Trajectory(10)
	ObservePoints(sim.Points(), sim.Options().Dt, ms...)

	names := map[string]float64{}
	for _, m := range ms {
		names[m.Name()] = m.Value()
	}
	if names["confinement"] != 1 {
		t.Errorf("early trajectory should stay near the seed, confinement %f", names["confinement"])
	}
	if names["path_length"] <= 0 || names["mean_radius"] <= 0 {
		t.Errorf("expected positive metrics, got %v", names)
	}
}
