package attractor

import (
	"github.com/san-kum/chaosviz/internal/dynamo"
	"github.com/san-kum/chaosviz/internal/integrators"
	"github.com/san-kum/chaosviz/internal/physics"
)

// Point is one trajectory sample in attractor coordinates.
type Point struct {
	X, Y, Z float64
}

// Seed is the fixed starting point used at start-up and after reset.
var Seed = Point{0.1, 0.0, 0.0}

func (p Point) State() dynamo.State { return dynamo.State{p.X, p.Y, p.Z} }

func pointOf(s dynamo.State) Point { return Point{s[0], s[1], s[2]} }

// Step performs one explicit Euler step of the Thomas system from p.
// It is a pure function of (p, b, dt).
func Step(p Point, b, dt float64) Point {
	return pointOf(integrators.NewEuler().Step(physics.NewThomas(b), p.State(), nil, 0, dt))
}
