package viz

import (
	"image/color"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Theme defines color scheme for the TUI
type Theme struct {
	Name       string
	Stroke     color.RGBA
	Primary    lipgloss.Color
	Accent     lipgloss.Color
	Background lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
}

const shadeLevels = 8

// Available themes
var (
	ThemeIce = Theme{
		Name:       "ice",
		Stroke:     StrokeColor,
		Primary:    lipgloss.Color("#64c8ff"),
		Accent:     lipgloss.Color("#ffffff"),
		Background: lipgloss.Color("#000000"),
		Text:       lipgloss.Color("#e0f0ff"),
		Muted:      lipgloss.Color("#4f6b80"),
	}

	ThemeRetroGreen = Theme{
		Name:       "retro",
		Stroke:     color.RGBA{R: 0, G: 255, B: 0, A: StrokeColor.A},
		Primary:    lipgloss.Color("#00ff00"), // Green phosphor
		Accent:     lipgloss.Color("#88ff88"),
		Background: lipgloss.Color("#001100"),
		Text:       lipgloss.Color("#00ff00"),
		Muted:      lipgloss.Color("#005500"),
	}

	ThemeOcean = Theme{
		Name:       "ocean",
		Stroke:     color.RGBA{R: 0, G: 168, B: 204, A: StrokeColor.A},
		Primary:    lipgloss.Color("#0077be"),
		Accent:     lipgloss.Color("#ffd700"),
		Background: lipgloss.Color("#001a33"),
		Text:       lipgloss.Color("#e0f0ff"),
		Muted:      lipgloss.Color("#4488aa"),
	}

	ThemeSunset = Theme{
		Name:       "sunset",
		Stroke:     color.RGBA{R: 255, G: 107, B: 107, A: StrokeColor.A},
		Primary:    lipgloss.Color("#ff6b6b"), // Coral
		Accent:     lipgloss.Color("#feca57"),
		Background: lipgloss.Color("#2d1b2e"),
		Text:       lipgloss.Color("#fff5f5"),
		Muted:      lipgloss.Color("#8b6b8c"),
	}

	Themes = []Theme{
		ThemeIce,
		ThemeRetroGreen,
		ThemeOcean,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name, falling back to ice.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeIce
}

// NextTheme returns the theme after t in Themes, wrapping around.
func NextTheme(t Theme) Theme {
	for i, th := range Themes {
		if th.Name == t.Name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// Opacity is the stroke alpha as a fraction.
func (t Theme) Opacity() float64 { return float64(t.Stroke.A) / 255 }

// Ramp blends the opaque stroke color over the background in n even steps.
// Ramp(n)[0] is the background and Ramp(n)[n-1] the full stroke color.
func (t Theme) Ramp(n int) []lipgloss.Color {
	if n < 2 {
		n = 2
	}
	bg, err := colorful.Hex(string(t.Background))
	if err != nil {
		bg = colorful.Color{}
	}
	fg := colorful.Color{
		R: float64(t.Stroke.R) / 255,
		G: float64(t.Stroke.G) / 255,
		B: float64(t.Stroke.B) / 255,
	}
	ramp := make([]lipgloss.Color, n)
	for i := range ramp {
		ramp[i] = lipgloss.Color(bg.BlendRgb(fg, float64(i)/float64(n-1)).Hex())
	}
	return ramp
}

// Shades turns Ramp into foreground styles for Canvas.Render.
func (t Theme) Shades() []lipgloss.Style {
	ramp := t.Ramp(shadeLevels)
	shades := make([]lipgloss.Style, len(ramp))
	for i, c := range ramp {
		shades[i] = lipgloss.NewStyle().Foreground(c)
	}
	return shades
}
