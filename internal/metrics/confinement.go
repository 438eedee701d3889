package metrics

import (
	"math"

	"github.com/san-kum/chaosviz/internal/dynamo"
)

// Confinement is the fraction of observations with every coordinate inside
// [-threshold, threshold]. Weakly damped trajectories wander off across the
// lattice of equilibria and score low.
type Confinement struct {
	name       string
	threshold  float64
	violations int
	samples    int
}

func NewConfinement(threshold float64) *Confinement {
	return &Confinement{
		name:      "confinement",
		threshold: threshold,
	}
}

func (c *Confinement) Name() string {
	return c.name
}

func (c *Confinement) Observe(x dynamo.State, u dynamo.Control, t float64) {
	c.samples++
	for _, val := range x {
		if math.Abs(val) > c.threshold {
			c.violations++
			break
		}
	}
}

func (c *Confinement) Value() float64 {
	if c.samples == 0 {
		return 1.0
	}
	return 1.0 - float64(c.violations)/float64(c.samples)
}

func (c *Confinement) Reset() {
	c.violations = 0
	c.samples = 0
}
