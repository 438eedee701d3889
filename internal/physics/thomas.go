package physics

import (
	"fmt"
	"math"

	"github.com/san-kum/chaosviz/internal/dynamo"
)

const (
	DefaultDissipation = 0.208
	MinDissipation     = 0.0
	MaxDissipation     = 1.0
)

// Thomas is Thomas' cyclically symmetric attractor. The single parameter b is
// the dissipation; chaos emerges roughly for 0.1 < b < 0.21.
type Thomas struct{ b float64 }

func NewThomas(b float64) *Thomas { return &Thomas{b} }
func (t *Thomas) StateDim() int   { return 3 }
func (t *Thomas) ControlDim() int { return 0 }

// Derive calculates the Thomas attractor derivatives.
func (t *Thomas) Derive(s dynamo.State, _ dynamo.Control, _ float64) dynamo.State {
	return dynamo.State{
		math.Sin(s[1]) - t.b*s[0],
		math.Sin(s[2]) - t.b*s[1],
		math.Sin(s[0]) - t.b*s[2],
	}
}

func (t *Thomas) DefaultState() dynamo.State { return dynamo.State{0.1, 0.0, 0.0} }
func (t *Thomas) Dissipation() float64       { return t.b }

func (t *Thomas) GetParams() map[string]float64 {
	return map[string]float64{"b": t.b}
}

func (t *Thomas) SetParam(n string, v float64) error {
	switch n {
	case "b":
		if v < MinDissipation || v > MaxDissipation || math.IsNaN(v) {
			return fmt.Errorf("thomas: b=%g: %w", v, dynamo.ErrParameterBounds)
		}
		t.b = v
		return nil
	}
	return fmt.Errorf("thomas: %q: %w", n, dynamo.ErrUnknownParameter)
}
