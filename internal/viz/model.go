package viz

import (
	"fmt"
	"io"
	"log"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/chaosviz/internal/analysis"
	"github.com/san-kum/chaosviz/internal/attractor"
	"github.com/san-kum/chaosviz/internal/config"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	panelWidth    = 38
	chartPoints   = 300

	// The window host draws at scale 50 into roughly 500 pixels; the
	// terminal canvas applies the same ratio to its own size.
	referenceExtent = 500.0
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(0, 1)
	panelStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(panelWidth)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(10)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// Model is the terminal host. It owns the simulator for the lifetime of the
// program.
type Model struct {
	sim      *attractor.Simulator
	cfg      *config.Config
	slider   Slider
	theme    Theme
	shades   []lipgloss.Style
	canvas   *Canvas
	running  bool
	presets  []string
	preset   int
	probe    analysis.Probe
	estimate analysis.Estimate
	// stale is set whenever b changed since the last estimate.
	stale bool
}

func NewModel(sim *attractor.Simulator, cfg *config.Config) Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	theme := GetTheme(cfg.Theme)
	return Model{
		sim:     sim,
		cfg:     cfg,
		slider:  NewDissipationSlider(),
		theme:   theme,
		shades:  theme.Shades(),
		canvas:  NewCanvas(defaultWidth-panelWidth, defaultHeight-2),
		running: true,
		presets: config.ListPresets(),
		preset:  -1,
		probe:   analysis.DefaultProbe(),
		stale:   true,
	}
}

func (m Model) tick() tea.Cmd {
	fps := m.cfg.FPS
	if fps <= 0 {
		fps = config.DefaultFPS
	}
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd { return m.tick() }

// Update handles input events and advances the simulation once per tick.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r", "R":
			m.sim.Reset()
			log.Printf("reset at b=%.3f", m.sim.Dissipation())
		case "left", "h":
			m.setDissipation(m.slider.Nudge(m.sim.Dissipation(), -1, false))
		case "right", "l":
			m.setDissipation(m.slider.Nudge(m.sim.Dissipation(), 1, false))
		case "H":
			m.setDissipation(m.slider.Nudge(m.sim.Dissipation(), -1, true))
		case "L":
			m.setDissipation(m.slider.Nudge(m.sim.Dissipation(), 1, true))
		case "p":
			m.cyclePreset()
		case "t":
			m.theme = NextTheme(m.theme)
			m.shades = m.theme.Shades()
		}
	case tea.WindowSizeMsg:
		w := msg.Width - panelWidth - 4
		h := msg.Height - 2
		if w < 10 {
			w = 10
		}
		if h < 5 {
			h = 5
		}
		m.canvas = NewCanvas(w, h)
	case TickMsg:
		if m.running {
			m.sim.Advance()
			m.sim.Rotate()
		}
		if m.stale {
			m.estimate = m.probe.Classify(m.sim.Dissipation())
			m.stale = false
		}
		m.draw()
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) setDissipation(b float64) {
	if b == m.sim.Dissipation() {
		return
	}
	m.sim.SetDissipation(b)
	m.stale = true
}

func (m *Model) cyclePreset() {
	if len(m.presets) == 0 {
		return
	}
	m.preset = (m.preset + 1) % len(m.presets)
	p, err := config.GetPreset(m.presets[m.preset])
	if err != nil {
		return
	}
	m.setDissipation(p.Dissipation)
	log.Printf("preset %s (b=%.3f)", p.Name, p.Dissipation)
}

// Scale is the projection scale for the current canvas size.
func (m Model) Scale() float64 {
	w, h := m.canvas.PixelSize()
	return m.cfg.Scale * float64(min(w, h)) / referenceExtent
}

func (m *Model) draw() {
	m.canvas.Clear()
	w, h := m.canvas.PixelSize()
	ForEachSegment(m.sim.Points(), m.sim.Angle(), m.Scale(), float64(w)/2, float64(h)/2, m.canvas.DrawSegment)
}

// View renders the canvas next to the control panel.
func (m Model) View() string {
	canvasView := canvasStyle.Render(m.canvas.Render(m.theme.Opacity(), m.shades))

	title := lipgloss.NewStyle().Foreground(m.theme.Primary).Bold(true)
	muted := lipgloss.NewStyle().Foreground(m.theme.Muted)

	var s strings.Builder
	s.WriteString(title.Render("Thomas Attractor") + "\n\n")
	b := m.sim.Dissipation()
	s.WriteString(valueStyle.Render(fmt.Sprintf("b (Dissipation)  %.3f", b)) + "\n")
	s.WriteString(lipgloss.NewStyle().Foreground(m.theme.Accent).Render(m.slider.Bar(b, panelWidth-6)) + "\n")
	s.WriteString(muted.Render("Lower 'b' = More Chaos") + "\n\n")

	status := "RUNNING"
	if !m.running {
		status = "PAUSED"
	}
	s.WriteString(status + "\n\n")

	row := func(label, value string) {
		s.WriteString(labelStyle.Render(label) + valueStyle.Render(value) + "\n")
	}
	points := fmt.Sprintf("%d", m.sim.Len())
	if m.sim.Capped() {
		points += " (capped)"
	}
	row("Points", points)
	row("Growth", m.sim.Options().Growth.String())
	row("Frame", fmt.Sprintf("%d", m.sim.Frames()))
	row("Angle", fmt.Sprintf("%.2f rad", math.Mod(m.sim.Angle(), 2*math.Pi)))
	if m.stale {
		row("Regime", "...")
	} else {
		row("Regime", m.estimate.String())
	}
	if m.preset >= 0 {
		row("Preset", m.presets[m.preset])
	}
	row("Theme", m.theme.Name)

	if zs := recentZ(m.sim.Points(), chartPoints); len(zs) > 1 {
		chart := asciigraph.Plot(zs, asciigraph.Height(5), asciigraph.Width(panelWidth-12), asciigraph.Caption("z"))
		s.WriteString("\n" + muted.Render(chart) + "\n")
	}

	s.WriteString(helpStyle.Render("←/→ b ±0.001   H/L ±0.01\nR:Reset SP:Pause P:Preset\nT:Theme Q:Quit"))

	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, panelStyle.Render(s.String()))
}

func recentZ(points []attractor.Point, n int) []float64 {
	if len(points) > n {
		points = points[len(points)-n:]
	}
	zs := make([]float64, len(points))
	for i, p := range points {
		zs[i] = p.Z
	}
	return zs
}

// Run starts the terminal host and blocks until the user quits. Diagnostic
// logging goes to logPath, or nowhere when it is empty.
func Run(sim *attractor.Simulator, cfg *config.Config, logPath string) error {
	if logPath != "" {
		f, err := tea.LogToFile(logPath, "chaosviz")
		if err != nil {
			return fmt.Errorf("tui: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	log.Printf("starting terminal host: b=%.3f growth=%s", sim.Dissipation(), sim.Options().Growth)
	if _, err := tea.NewProgram(NewModel(sim, cfg), tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
