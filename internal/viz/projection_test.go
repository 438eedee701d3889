package viz

import (
	"math"
	"testing"

	"github.com/san-kum/chaosviz/internal/attractor"
)

func TestProject(t *testing.T) {
	p := attractor.Point{X: 1, Y: 2, Z: 3}

	got := Project(p, 0, 1, 50, 400, 300)
	if got.X != 450 || got.Y != 450 {
		t.Errorf("angle 0: got %+v, want {450 450}", got)
	}

	sinA, cosA := math.Sincos(math.Pi / 2)
	got = Project(p, sinA, cosA, 50, 400, 300)
	if math.Abs(got.X-300) > 1e-9 || got.Y != 450 {
		t.Errorf("angle pi/2: got %+v, want {300 450}", got)
	}
}

func TestSegments(t *testing.T) {
	points := []attractor.Point{{X: 0.1}, {X: 0.2, Y: 0.1}, {X: 0.3, Z: -0.1}}
	segs := Segments(points, 0.3, 50, 0, 0)
	if len(segs) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(segs))
	}
	if segs[0].To != segs[1].From {
		t.Errorf("segments not chained: %+v -> %+v", segs[0].To, segs[1].From)
	}

	if Segments(points[:1], 0, 50, 0, 0) != nil {
		t.Error("single point must yield no segments")
	}
	if Segments(nil, 0, 50, 0, 0) != nil {
		t.Error("no points must yield no segments")
	}
}

func TestSegmentsPeriodicInAngle(t *testing.T) {
	sim := attractor.New(0.208, attractor.DefaultOptions())
	for i := 0; i < 3; i++ {
		sim.Advance()
	}
	a := Segments(sim.Points(), 1.234, 50, 400, 300)
	b := Segments(sim.Points(), 1.234+2*math.Pi, 50, 400, 300)
	for i := range a {
		if math.Abs(a[i].To.X-b[i].To.X) > 1e-9 || math.Abs(a[i].To.Y-b[i].To.Y) > 1e-9 {
			t.Fatalf("segment %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestSegmentsDoNotMutate(t *testing.T) {
	points := []attractor.Point{{X: 0.1}, {X: 0.2, Y: 0.1}}
	before := append([]attractor.Point(nil), points...)
	Segments(points, 2, 50, 10, 10)
	for i := range points {
		if points[i] != before[i] {
			t.Errorf("point %d mutated", i)
		}
	}
}

func TestStroke(t *testing.T) {
	if StrokeWidth != 1.0 {
		t.Errorf("stroke width %f", StrokeWidth)
	}
	if StrokeColor.R != 100 || StrokeColor.G != 200 || StrokeColor.B != 255 || StrokeColor.A != 40 {
		t.Errorf("stroke color %+v", StrokeColor)
	}
}
