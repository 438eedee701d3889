package gui

import rl "github.com/gen2brain/raylib-go/raylib"

const (
	panelWidth   = 280
	panelPadding = 20
)

// Layout holds the screen rectangles of the side panel widgets. The
// trajectory is centered in the area right of the panel.
type Layout struct {
	Screen rl.Rectangle
	Panel  rl.Rectangle
	Canvas rl.Rectangle
	Slider rl.Rectangle
	Button rl.Rectangle
}

func NewLayout(w, h int) Layout {
	pw := float32(panelWidth)
	if float32(w) < pw {
		pw = float32(w)
	}
	pad := float32(panelPadding)
	return Layout{
		Screen: rl.NewRectangle(0, 0, float32(w), float32(h)),
		Panel:  rl.NewRectangle(0, 0, pw, float32(h)),
		Canvas: rl.NewRectangle(pw, 0, float32(w)-pw, float32(h)),
		Slider: rl.NewRectangle(pad, 90, pw-2*pad, 6),
		Button: rl.NewRectangle(pad, 120, 72, 30),
	}
}

func (l Layout) CanvasCenter() (float64, float64) {
	return float64(l.Canvas.X + l.Canvas.Width/2), float64(l.Canvas.Y + l.Canvas.Height/2)
}

// SliderHit reports whether (x, y) grabs the slider. The hit area is taller
// than the drawn track.
func (l Layout) SliderHit(x, y float32) bool {
	grab := rl.NewRectangle(l.Slider.X-8, l.Slider.Y-10, l.Slider.Width+16, l.Slider.Height+20)
	return rl.CheckCollisionPointRec(rl.NewVector2(x, y), grab)
}

func (l Layout) ButtonHit(x, y float32) bool {
	return rl.CheckCollisionPointRec(rl.NewVector2(x, y), l.Button)
}

// SliderFraction maps a horizontal mouse position onto the slider track.
func (l Layout) SliderFraction(x float32) float64 {
	if l.Slider.Width <= 0 {
		return 0
	}
	return float64((x - l.Slider.X) / l.Slider.Width)
}

func (l Layout) Knob(fraction float64) (float32, float32) {
	return l.Slider.X + float32(fraction)*l.Slider.Width, l.Slider.Y + l.Slider.Height/2
}
