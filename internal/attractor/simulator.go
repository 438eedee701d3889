package attractor

import (
	"math"

	"github.com/san-kum/chaosviz/internal/dynamo"
	"github.com/san-kum/chaosviz/internal/integrators"
	"github.com/san-kum/chaosviz/internal/physics"
)

const (
	DefaultDt         = 0.05
	DefaultBaseBatch  = 50
	DefaultBloomBatch = 100
	DefaultMaxPoints  = 100_000
	DefaultAngleStep  = 0.01
)

// Options configures the growth policy and viewpoint rotation.
type Options struct {
	Dt         float64
	Seed       Point
	BaseBatch  int
	BloomBatch int
	MaxPoints  int
	Growth     Growth
	AngleStep  float64
	WrapAngle  bool
}

func DefaultOptions() Options {
	return Options{
		Dt:         DefaultDt,
		Seed:       Seed,
		BaseBatch:  DefaultBaseBatch,
		BloomBatch: DefaultBloomBatch,
		MaxPoints:  DefaultMaxPoints,
		Growth:     GrowthLiteral,
		AngleStep:  DefaultAngleStep,
	}
}

type Simulator struct {
	sys    *physics.Thomas
	integ  dynamo.Integrator
	opts   Options
	points []Point
	angle  float64
	frames uint64
}

// New creates a simulator with dissipation b, clamped to [0, 1], and a buffer
// holding only the seed point.
func New(b float64, opts Options) *Simulator {
	s := &Simulator{
		sys:    physics.NewThomas(physics.DefaultDissipation),
		integ:  integrators.NewEuler(),
		opts:   opts,
		points: make([]Point, 1, initialCapacity(opts)),
	}
	s.points[0] = opts.Seed
	s.SetDissipation(b)
	return s
}

func initialCapacity(opts Options) int {
	c := opts.BaseBatch + opts.BloomBatch + 1
	if c < 1024 {
		c = 1024
	}
	return c
}

func (s *Simulator) Options() Options { return s.opts }

func (s *Simulator) Dissipation() float64 { return s.sys.Dissipation() }

// SetDissipation clamps b to the slider range and applies it from the next
// integration step on. Points already in the buffer are untouched.
func (s *Simulator) SetDissipation(b float64) {
	if math.IsNaN(b) {
		return
	}
	b = math.Max(physics.MinDissipation, math.Min(physics.MaxDissipation, b))
	// b is in range, so SetParam cannot fail.
	_ = s.sys.SetParam("b", b)
}

// Advance runs one frame of integration and returns how many points were
// appended.
func (s *Simulator) Advance() int {
	before := len(s.points)
	s.grow(s.opts.BaseBatch)
	if len(s.points) < s.opts.MaxPoints {
		s.grow(s.opts.BloomBatch)
	}
	s.frames++
	return len(s.points) - before
}

func (s *Simulator) grow(n int) {
	if s.opts.Growth == GrowthHardStop {
		if room := s.opts.MaxPoints - len(s.points); n > room {
			n = room
		}
	}
	if n <= 0 {
		return
	}
	x := s.points[len(s.points)-1].State()
	for i := 0; i < n; i++ {
		x = s.integ.Step(s.sys, x, nil, 0, s.opts.Dt)
		s.points = append(s.points, pointOf(x))
	}
}

// Reset discards every point except the seed. Dissipation and angle are kept.
func (s *Simulator) Reset() {
	s.points[0] = s.opts.Seed
	s.points = s.points[:1]
}

// Points returns the trajectory in generation order. The slice aliases the
// simulator's buffer and must not be modified; it is valid until the next
// Advance or Reset.
func (s *Simulator) Points() []Point { return s.points }

func (s *Simulator) Len() int       { return len(s.points) }
func (s *Simulator) Last() Point    { return s.points[len(s.points)-1] }
func (s *Simulator) Frames() uint64 { return s.frames }
func (s *Simulator) Angle() float64 { return s.angle }

// Capped reports whether the buffer has reached MaxPoints.
func (s *Simulator) Capped() bool { return len(s.points) >= s.opts.MaxPoints }

// Rotate advances the viewpoint angle by one step and returns it.
func (s *Simulator) Rotate() float64 {
	s.angle += s.opts.AngleStep
	if s.opts.WrapAngle {
		s.angle = math.Mod(s.angle, 2*math.Pi)
	}
	return s.angle
}
