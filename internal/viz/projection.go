package viz

import (
	"image/color"
	"math"

	"github.com/san-kum/chaosviz/internal/attractor"
)

// Stroke used for every trajectory segment.
const StrokeWidth = 1.0

var StrokeColor = color.RGBA{R: 100, G: 200, B: 255, A: 40}

type Vec2 struct {
	X, Y float64
}

type Segment struct {
	From, To Vec2
}

// Project rotates p about the vertical axis and drops depth. z maps straight
// to the screen's vertical axis.
func Project(p attractor.Point, sinA, cosA, scale, cx, cy float64) Vec2 {
	return Vec2{
		X: (p.X*cosA-p.Y*sinA)*scale + cx,
		Y: p.Z*scale + cy,
	}
}

// ForEachSegment projects consecutive pairs of points and calls fn for each
// resulting segment, in order. Nothing is allocated.
func ForEachSegment(points []attractor.Point, angle, scale, cx, cy float64, fn func(Segment)) {
	if len(points) < 2 {
		return
	}
	sinA, cosA := math.Sincos(angle)
	prev := Project(points[0], sinA, cosA, scale, cx, cy)
	for _, p := range points[1:] {
		cur := Project(p, sinA, cosA, scale, cx, cy)
		fn(Segment{From: prev, To: cur})
		prev = cur
	}
}

// Segments collects the output of ForEachSegment.
func Segments(points []attractor.Point, angle, scale, cx, cy float64) []Segment {
	if len(points) < 2 {
		return nil
	}
	out := make([]Segment, 0, len(points)-1)
	ForEachSegment(points, angle, scale, cx, cy, func(s Segment) {
		out = append(out, s)
	})
	return out
}
