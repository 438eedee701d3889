package metrics

import "github.com/san-kum/chaosviz/internal/dynamo"

// PathLength is the total distance travelled between observations.
type PathLength struct {
	name   string
	length float64
	prev   dynamo.State
}

func NewPathLength() *PathLength {
	return &PathLength{
		name: "path_length",
	}
}

func (p *PathLength) Name() string {
	return p.name
}

func (p *PathLength) Observe(x dynamo.State, u dynamo.Control, t float64) {
	if p.prev != nil {
		p.length += x.Sub(p.prev).Norm()
	}
	p.prev = x.Clone()
}

func (p *PathLength) Value() float64 {
	return p.length
}

func (p *PathLength) Reset() {
	p.length = 0
	p.prev = nil
}
