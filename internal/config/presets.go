package config

import (
	"errors"
	"fmt"
	"sort"
)

var ErrUnknownPreset = errors.New("config: unknown preset")

// Preset is a named dissipation regime of the Thomas system.
type Preset struct {
	Name        string
	Dissipation float64
	Description string
}

var Presets = map[string]Preset{
	"fixed-point": {Name: "fixed-point", Dissipation: 0.6, Description: "decays onto a stable equilibrium"},
	"limit-cycle": {Name: "limit-cycle", Dissipation: 0.32, Description: "periodic orbit past the Hopf bifurcation"},
	"bifurcation": {Name: "bifurcation", Dissipation: 0.208, Description: "period doubling on the edge of chaos"},
	"chaos":       {Name: "chaos", Dissipation: 0.18, Description: "strange attractor"},
	"labyrinth":   {Name: "labyrinth", Dissipation: 0.05, Description: "weak damping, chaos spreading across the lattice"},
	"random-walk": {Name: "random-walk", Dissipation: 0.0, Description: "conservative, deterministic Brownian-like motion"},
}

func GetPreset(name string) (Preset, error) {
	p, ok := Presets[name]
	if !ok {
		return Preset{}, fmt.Errorf("%w: %q (available: %v)", ErrUnknownPreset, name, ListPresets())
	}
	return p, nil
}

// ListPresets returns preset names ordered from strongest to weakest damping.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return Presets[names[i]].Dissipation > Presets[names[j]].Dissipation
	})
	return names
}

// Apply sets the preset's dissipation on cfg.
func (p Preset) Apply(cfg *Config) {
	cfg.Dissipation = p.Dissipation
}
