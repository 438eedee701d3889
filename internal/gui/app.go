package gui

import (
	"errors"
	"fmt"
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/chaosviz/internal/analysis"
	"github.com/san-kum/chaosviz/internal/attractor"
	"github.com/san-kum/chaosviz/internal/config"
	"github.com/san-kum/chaosviz/internal/viz"
)

const (
	Title        = "Chaos Visualizer"
	windowWidth  = 1280
	windowHeight = 720
)

// ErrNoWindow is returned when raylib could not open a window, usually
// because no display is available.
var ErrNoWindow = errors.New("gui: window could not be created")

var (
	ColBg      = rl.NewColor(10, 10, 10, 255)
	ColPanel   = rl.NewColor(24, 24, 28, 255)
	ColAccent  = rl.NewColor(180, 180, 180, 255)
	ColSelect  = rl.NewColor(255, 255, 255, 255)
	ColText    = rl.NewColor(140, 140, 140, 255)
	ColTextDim = rl.NewColor(60, 60, 60, 255)
	ColTrack   = rl.NewColor(50, 50, 56, 255)
	ColStroke  = rl.NewColor(viz.StrokeColor.R, viz.StrokeColor.G, viz.StrokeColor.B, viz.StrokeColor.A)
)

// App is the window host. It owns the simulator while the window is open.
type App struct {
	Sim    *attractor.Simulator
	Cfg    *config.Config
	Slider viz.Slider
	Layout Layout

	dragging bool
	probe    analysis.Probe
	estimate analysis.Estimate
	stale    bool
}

func NewApp(sim *attractor.Simulator, cfg *config.Config) *App {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &App{
		Sim:    sim,
		Cfg:    cfg,
		Slider: viz.NewDissipationSlider(),
		Layout: NewLayout(windowWidth, windowHeight),
		probe:  analysis.DefaultProbe(),
		stale:  true,
	}
}

// Run opens the window and blocks until it is closed.
func Run(sim *attractor.Simulator, cfg *config.Config) error {
	app := NewApp(sim, cfg)

	rl.SetTraceLogLevel(rl.LogWarning)
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(windowWidth, windowHeight, Title)
	if !rl.IsWindowReady() {
		return ErrNoWindow
	}
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(app.Cfg.FPS))
	rl.SetExitKey(rl.KeyQ)

	log.Printf("window open: b=%.3f growth=%s", sim.Dissipation(), sim.Options().Growth)
	app.RunLoop()
	log.Printf("window closed after %d frames, %d points", sim.Frames(), sim.Len())
	return nil
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() {
		a.Update()
		a.Draw()
	}
}

// Update reads input and advances the simulation by one frame.
func (a *App) Update() {
	if rl.IsWindowResized() {
		a.Layout = NewLayout(int(rl.GetScreenWidth()), int(rl.GetScreenHeight()))
	}

	a.Sim.Advance()

	mouse := rl.GetMousePosition()
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) && a.Layout.SliderHit(mouse.X, mouse.Y) {
		a.dragging = true
	}
	if rl.IsMouseButtonReleased(rl.MouseLeftButton) {
		a.dragging = false
	}
	if a.dragging {
		a.setDissipation(a.Slider.ValueAt(a.Layout.SliderFraction(mouse.X)))
	}

	big := rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift)
	if rl.IsKeyPressed(rl.KeyRight) || rl.IsKeyPressedRepeat(rl.KeyRight) {
		a.setDissipation(a.Slider.Nudge(a.Sim.Dissipation(), 1, big))
	}
	if rl.IsKeyPressed(rl.KeyLeft) || rl.IsKeyPressedRepeat(rl.KeyLeft) {
		a.setDissipation(a.Slider.Nudge(a.Sim.Dissipation(), -1, big))
	}

	resetClicked := rl.IsMouseButtonPressed(rl.MouseLeftButton) && a.Layout.ButtonHit(mouse.X, mouse.Y)
	if resetClicked || rl.IsKeyPressed(rl.KeyR) {
		a.Sim.Reset()
		log.Printf("reset at b=%.3f", a.Sim.Dissipation())
	}

	// Probing while the slider moves would stall every frame.
	if a.stale && !a.dragging {
		a.estimate = a.probe.Classify(a.Sim.Dissipation())
		a.stale = false
	}
}

func (a *App) setDissipation(b float64) {
	if b == a.Sim.Dissipation() {
		return
	}
	a.Sim.SetDissipation(b)
	a.stale = true
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	a.drawTrajectory()
	a.drawPanel()

	rl.EndDrawing()
}

func (a *App) drawTrajectory() {
	angle := a.Sim.Rotate()
	cx, cy := a.Layout.CanvasCenter()
	viz.ForEachSegment(a.Sim.Points(), angle, a.Cfg.Scale, cx, cy, func(s viz.Segment) {
		rl.DrawLineEx(
			rl.NewVector2(float32(s.From.X), float32(s.From.Y)),
			rl.NewVector2(float32(s.To.X), float32(s.To.Y)),
			viz.StrokeWidth,
			ColStroke,
		)
	})
}

func (a *App) drawPanel() {
	l := a.Layout
	rl.DrawRectangleRec(l.Panel, ColPanel)

	x := int32(l.Panel.X) + panelPadding
	rl.DrawText("Thomas Attractor", x, panelPadding, 22, ColSelect)

	b := a.Sim.Dissipation()
	rl.DrawText(fmt.Sprintf("b (Dissipation)  %.3f", b), x, int32(l.Slider.Y)-22, 16, ColText)
	rl.DrawRectangleRec(l.Slider, ColTrack)
	filled := l.Slider
	filled.Width *= float32(a.Slider.Fraction(b))
	rl.DrawRectangleRec(filled, ColAccent)
	kx, ky := l.Knob(a.Slider.Fraction(b))
	rl.DrawCircleV(rl.NewVector2(kx, ky), 7, ColSelect)

	btnCol := ColTrack
	mouse := rl.GetMousePosition()
	if l.ButtonHit(mouse.X, mouse.Y) {
		btnCol = ColTextDim
	}
	rl.DrawRectangleRec(l.Button, btnCol)
	rl.DrawRectangleLinesEx(l.Button, 1, ColAccent)
	rl.DrawText("Reset", int32(l.Button.X)+12, int32(l.Button.Y)+7, 16, ColSelect)

	y := int32(l.Button.Y+l.Button.Height) + 20
	rl.DrawText("Lower 'b' = More Chaos", x, y, 16, ColText)

	y += 40
	points := fmt.Sprintf("Points  %d", a.Sim.Len())
	if a.Sim.Capped() {
		points += " (capped)"
	}
	rl.DrawText(points, x, y, 14, ColText)
	rl.DrawText(fmt.Sprintf("Frame   %d", a.Sim.Frames()), x, y+20, 14, ColText)
	regime := "..."
	if !a.stale {
		regime = a.estimate.String()
	}
	rl.DrawText("Regime  "+regime, x, y+40, 14, ColText)

	bottom := int32(l.Panel.Height) - 28
	rl.DrawText(fmt.Sprintf("%d FPS", rl.GetFPS()), x, bottom, 14, ColTextDim)
	rl.DrawText("[<-/->] b  [R] RESET  [Q] QUIT", x, bottom-20, 12, ColTextDim)
}
