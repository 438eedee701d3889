package analysis

import (
	"math"
	"strings"
	"testing"

	"github.com/san-kum/chaosviz/internal/dynamo"
	"github.com/san-kum/chaosviz/internal/integrators"
	"github.com/san-kum/chaosviz/internal/physics"
)

func TestLyapunovDissipativeIsNegative(t *testing.T) {
	dyn := physics.NewThomas(0.9)
	lambda := LyapunovExponent(dyn, integrators.NewEuler(), dynamo.State{0.1, 0, 0}, 0.05, 500, 1e-8)
	if lambda >= 0 {
		t.Errorf("expected negative exponent at b=0.9, got %f", lambda)
	}
}

func TestLyapunovChaoticIsPositive(t *testing.T) {
	p := DefaultProbe()
	est := p.Classify(0.1)
	if est.Lyapunov <= 0 {
		t.Errorf("expected positive exponent at b=0.1, got %f", est.Lyapunov)
	}
}

func TestLyapunovInvalidInput(t *testing.T) {
	dyn := physics.NewThomas(0.2)
	integ := integrators.NewEuler()
	if got := LyapunovExponent(dyn, integ, nil, 0.05, 10, 1e-8); got != 0 {
		t.Errorf("empty state: got %f", got)
	}
	if got := LyapunovExponent(dyn, integ, dynamo.State{0.1, 0, 0}, 0, 10, 1e-8); got != 0 {
		t.Errorf("zero dt: got %f", got)
	}
}

func TestClassify(t *testing.T) {
	p := DefaultProbe()

	est := p.Classify(0.9)
	if est.Regime != RegimeFixedPoint {
		t.Errorf("b=0.9: expected fixed point, got %s (spread %g)", est.Regime, est.Spread)
	}

	// Out of range values are clamped.
	if got := p.Classify(2).Dissipation; got != physics.MaxDissipation {
		t.Errorf("expected clamp to %f, got %f", physics.MaxDissipation, got)
	}
}

func TestClassifyDeterministic(t *testing.T) {
	p := DefaultProbe()
	p.Duration = 100
	a, b := p.Classify(0.208), p.Classify(0.208)
	if a != b {
		t.Errorf("classification not deterministic: %+v vs %+v", a, b)
	}
}

func TestSample(t *testing.T) {
	dyn := physics.NewThomas(0.208)
	out := Sample(dyn, integrators.NewEuler(), dynamo.State{0.1, 0, 0}, 0.05, 0, 3)
	if len(out) != 3 {
		t.Fatalf("expected 3 samples, got %d", len(out))
	}
	if math.Abs(out[0][0]-0.09896) > 1e-9 {
		t.Errorf("first sample x = %f", out[0][0])
	}
}

func TestPowerSpectrumDominant(t *testing.T) {
	const (
		dt = 0.01
		n  = 1000
	)
	samples := make([]float64, n)
	for i := range samples {
		samples[i] = 3 + math.Sin(2*math.Pi*2*float64(i)*dt)
	}

	s := PowerSpectrum(samples, dt)
	if len(s.Power) != n/2 {
		t.Fatalf("expected %d bins, got %d", n/2, len(s.Power))
	}
	freq, power := s.Dominant()
	if math.Abs(freq-2) > 1e-9 {
		t.Errorf("expected dominant 2 Hz, got %f", freq)
	}
	if power <= 0 {
		t.Errorf("expected positive power, got %f", power)
	}
	if s.Power[0] > 1e-6 {
		t.Errorf("mean not removed, DC = %g", s.Power[0])
	}
}

func TestPowerSpectrumShortInput(t *testing.T) {
	if s := PowerSpectrum([]float64{1}, 0.01); len(s.Power) != 0 {
		t.Errorf("expected empty spectrum, got %d bins", len(s.Power))
	}
}

func TestBifurcationDiagram(t *testing.T) {
	dyn := physics.NewThomas(0.3)
	data := BifurcationDiagram(dyn, integrators.NewEuler(), "b", 0.15, 0.25, 5, 0,
		dynamo.State{0.1, 0, 0}, 0.05, 100, 100)

	if len(data) != 5 {
		t.Fatalf("expected 5 points, got %d", len(data))
	}
	if dyn.Dissipation() != 0.3 {
		t.Errorf("parameter not restored: %f", dyn.Dissipation())
	}
	for _, p := range data {
		if len(p.Values) == 0 {
			t.Errorf("b=%.3f: expected oscillation maxima", p.Param)
		}
	}

	plot := BifurcationToASCII(data, 40, 10)
	if !strings.ContainsRune(plot, '•') {
		t.Error("expected plotted points")
	}
	if lines := strings.Count(plot, "\n"); lines != 10 {
		t.Errorf("expected 10 rows, got %d", lines)
	}
}

func TestBifurcationRejectsUnknownParam(t *testing.T) {
	dyn := physics.NewThomas(0.3)
	data := BifurcationDiagram(dyn, integrators.NewEuler(), "sigma", 0, 1, 3, 0,
		dynamo.State{0.1, 0, 0}, 0.05, 1, 1)
	if len(data) != 0 {
		t.Errorf("expected no points for unknown parameter, got %d", len(data))
	}
	if BifurcationToASCII(nil, 10, 10) != "" {
		t.Error("expected empty plot for no data")
	}
}

func TestRegimeString(t *testing.T) {
	tests := []struct {
		r    Regime
		want string
	}{
		{RegimeFixedPoint, "fixed point"},
		{RegimePeriodic, "periodic"},
		{RegimeChaotic, "chaotic"},
		{Regime(9), "regime(9)"},
	}
	for _, tt := range tests {
		if got := tt.r.String(); got != tt.want {
			t.Errorf("%d: got %q, want %q", tt.r, got, tt.want)
		}
	}
}

func TestNonPositiveWindows(t *testing.T) {
	dyn := physics.NewThomas(0.208)
	integ := integrators.NewEuler()
	x0 := dynamo.State{0.1, 0, 0}

	tests := []struct {
		name string
		run  func() int
	}{
		{"sample negative n", func() int { return len(Sample(dyn, integ, x0, 0.05, 1, -3)) }},
		{"sample zero dt", func() int { return len(Sample(dyn, integ, x0, 0, 1, 5)) }},
		{"classify negative duration", func() int {
			p := DefaultProbe()
			p.Transient = 1
			p.Duration = -5
			return int(p.Classify(0.208).Spread)
		}},
		{"classify zero dt", func() int {
			p := DefaultProbe()
			p.Dt = 0
			return int(p.Classify(0.208).Spread)
		}},
		{"bifurcation negative record", func() int {
			data := BifurcationDiagram(dyn, integ, "b", 0.15, 0.25, 3, 0, x0, 0.05, 1, -1)
			n := 0
			for _, p := range data {
				n += len(p.Values)
			}
			return n
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.run(); got != 0 {
				t.Errorf("expected empty result, got %d", got)
			}
		})
	}
}
