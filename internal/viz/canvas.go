package viz

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const brailleBlank = 0x2800

// Canvas is a grid of Braille cells. Every Set is counted per cell so that
// overlapping translucent strokes can be shaded.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
	hits          [][]int
}

func NewCanvas(w, h int) *Canvas {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
		hits:   make([][]int, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		c.hits[i] = make([]int, w)
		for j := range c.Grid[i] {
			c.Grid[i][j] = brailleBlank
		}
	}
	return c
}

// PixelSize is the canvas size in sub-pixels.
func (c *Canvas) PixelSize() (int, int) { return c.Width * 2, c.Height * 4 }

// Set sets a pixel at (x, y) where x,y are in sub-pixel coordinates.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
	c.hits[row][col]++
}

// Hits reports how many times pixels in the cell were set since the last
// Clear.
func (c *Canvas) Hits(col, row int) int {
	if col < 0 || row < 0 || col >= c.Width || row >= c.Height {
		return 0
	}
	return c.hits[row][col]
}

func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = brailleBlank
			c.hits[i][j] = 0
		}
	}
}

// DrawLine draws a line using Bresenham's algorithm. The end point is not
// set, so a polyline touches each joint once.
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for x0 != x1 || y0 != y1 {
		c.Set(x0, y0)
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// DrawSegment rasterizes a projected segment given in sub-pixel coordinates.
func (c *Canvas) DrawSegment(s Segment) {
	w, h := c.PixelSize()
	// Segments entirely on one side of the canvas would only walk
	// invisible pixels.
	if offSide(s.From.X, s.To.X, w) || offSide(s.From.Y, s.To.Y, h) {
		return
	}
	c.DrawLine(roundPixel(s.From.X), roundPixel(s.From.Y), roundPixel(s.To.X), roundPixel(s.To.Y))
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

// Render draws the canvas with one style per shade level. A cell with n hits
// has the coverage of n strokes of opacity alpha stacked on each other.
func (c *Canvas) Render(alpha float64, shades []lipgloss.Style) string {
	levels := len(shades)
	if levels == 0 {
		return c.String()
	}

	var b strings.Builder
	for i, row := range c.Grid {
		var run strings.Builder
		runLevel := -1
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if runLevel < 0 {
				b.WriteString(run.String())
			} else {
				b.WriteString(shades[runLevel].Render(run.String()))
			}
			run.Reset()
		}
		for j, r := range row {
			level := shadeLevel(c.hits[i][j], alpha, levels)
			if level != runLevel {
				flush()
				runLevel = level
			}
			run.WriteRune(r)
		}
		flush()
		b.WriteByte('\n')
	}
	return b.String()
}

// shadeLevel returns -1 for empty cells, otherwise an index into a ramp of
// levels shades.
func shadeLevel(hits int, alpha float64, levels int) int {
	if hits <= 0 {
		return -1
	}
	coverage := 1 - math.Pow(1-alpha, float64(hits))
	level := int(coverage*float64(levels-1) + 0.5)
	if level < 1 && levels > 1 {
		level = 1
	}
	if level > levels-1 {
		level = levels - 1
	}
	return level
}

func roundPixel(v float64) int {
	return int(math.Floor(v + 0.5))
}

func offSide(a, b float64, size int) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return true
	}
	return a < 0 && b < 0 || a >= float64(size) && b >= float64(size)
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
