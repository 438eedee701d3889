package viz

import (
	"math"
	"strings"

	"github.com/san-kum/chaosviz/internal/physics"
)

// Slider maps a bounded value to keyboard steps and bar positions.
type Slider struct {
	Min, Max float64
	Step     float64
	BigStep  float64
}

func NewDissipationSlider() Slider {
	return Slider{
		Min:     physics.MinDissipation,
		Max:     physics.MaxDissipation,
		Step:    0.001,
		BigStep: 0.01,
	}
}

func (s Slider) Clamp(v float64) float64 {
	if math.IsNaN(v) {
		return s.Min
	}
	return math.Max(s.Min, math.Min(s.Max, v))
}

// Nudge moves v by n steps (big steps if big is set) and snaps the result to
// the step grid.
func (s Slider) Nudge(v float64, n int, big bool) float64 {
	step := s.Step
	if big {
		step = s.BigStep
	}
	v += float64(n) * step
	if s.Step > 0 {
		v = math.Round(v/s.Step) * s.Step
	}
	return s.Clamp(v)
}

// Fraction is the position of v along the slider, in [0, 1].
func (s Slider) Fraction(v float64) float64 {
	if s.Max <= s.Min {
		return 0
	}
	return (s.Clamp(v) - s.Min) / (s.Max - s.Min)
}

// ValueAt is the inverse of Fraction; f outside [0, 1] is clamped.
func (s Slider) ValueAt(f float64) float64 {
	f = math.Max(0, math.Min(1, f))
	return s.Clamp(s.Min + f*(s.Max-s.Min))
}

// Bar renders v as a fixed width text slider such as "━━━━●─────".
func (s Slider) Bar(v float64, width int) string {
	if width < 1 {
		return ""
	}
	knob := int(s.Fraction(v)*float64(width-1) + 0.5)
	return strings.Repeat("━", knob) + "●" + strings.Repeat("─", width-1-knob)
}
