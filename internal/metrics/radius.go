package metrics

import "github.com/san-kum/chaosviz/internal/dynamo"

// Radius is the mean distance of the trajectory from the origin.
type Radius struct {
	name    string
	sum     float64
	samples int
}

func NewRadius() *Radius {
	return &Radius{name: "mean_radius"}
}

func (r *Radius) Name() string { return r.name }

func (r *Radius) Observe(x dynamo.State, u dynamo.Control, t float64) {
	r.sum += x.Norm()
	r.samples++
}

func (r *Radius) Value() float64 {
	if r.samples == 0 {
		return 0
	}
	return r.sum / float64(r.samples)
}

func (r *Radius) Reset() {
	r.sum = 0
	r.samples = 0
}
