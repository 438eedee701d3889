package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/chaosviz/internal/attractor"
	"github.com/san-kum/chaosviz/internal/dynamo"
	"github.com/san-kum/chaosviz/internal/physics"
)

const (
	DefaultScale = 50.0
	DefaultFPS   = 60
	DefaultTheme = "ice"
)

type Config struct {
	Dissipation float64     `yaml:"dissipation"`
	Dt          float64     `yaml:"dt"`
	Seed        PointConfig `yaml:"seed"`
	BaseBatch   int         `yaml:"base_batch"`
	BloomBatch  int         `yaml:"bloom_batch"`
	MaxPoints   int         `yaml:"max_points"`
	Growth      string      `yaml:"growth"`
	AngleStep   float64     `yaml:"angle_step"`
	WrapAngle   bool        `yaml:"wrap_angle"`
	Scale       float64     `yaml:"scale"`
	FPS         int         `yaml:"fps"`
	Theme       string      `yaml:"theme"`
}

type PointConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

func DefaultConfig() *Config {
	return &Config{
		Dissipation: physics.DefaultDissipation,
		Dt:          attractor.DefaultDt,
		Seed:        PointConfig{X: attractor.Seed.X, Y: attractor.Seed.Y, Z: attractor.Seed.Z},
		BaseBatch:   attractor.DefaultBaseBatch,
		BloomBatch:  attractor.DefaultBloomBatch,
		MaxPoints:   attractor.DefaultMaxPoints,
		Growth:      attractor.GrowthLiteral.String(),
		AngleStep:   attractor.DefaultAngleStep,
		Scale:       DefaultScale,
		FPS:         DefaultFPS,
		Theme:       DefaultTheme,
	}
}

// Load reads a YAML file on top of DefaultConfig, so a file only needs the
// keys it changes.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks every field. Range errors wrap dynamo.ErrParameterBounds.
func (c *Config) Validate() error {
	switch {
	case math.IsNaN(c.Dissipation) || c.Dissipation < physics.MinDissipation || c.Dissipation > physics.MaxDissipation:
		return bounds("dissipation", c.Dissipation)
	case !(c.Dt > 0) || math.IsInf(c.Dt, 0):
		return bounds("dt", c.Dt)
	case c.BaseBatch < 0:
		return bounds("base_batch", float64(c.BaseBatch))
	case c.BloomBatch < 0:
		return bounds("bloom_batch", float64(c.BloomBatch))
	case c.MaxPoints < 1:
		return bounds("max_points", float64(c.MaxPoints))
	case !(c.Scale > 0):
		return bounds("scale", c.Scale)
	case c.FPS < 1:
		return bounds("fps", float64(c.FPS))
	case math.IsNaN(c.AngleStep) || math.IsInf(c.AngleStep, 0):
		return bounds("angle_step", c.AngleStep)
	}
	if !(dynamo.State{c.Seed.X, c.Seed.Y, c.Seed.Z}).IsValid() {
		return fmt.Errorf("config: seed: %w", dynamo.ErrInvalidState)
	}
	if _, err := attractor.ParseGrowth(c.Growth); err != nil {
		return fmt.Errorf("config: growth: %w", err)
	}
	return nil
}

func bounds(field string, v float64) error {
	return fmt.Errorf("config: %s=%g: %w", field, v, dynamo.ErrParameterBounds)
}

// SimOptions converts the config into simulator options.
func (c *Config) SimOptions() (attractor.Options, error) {
	growth, err := attractor.ParseGrowth(c.Growth)
	if err != nil {
		return attractor.Options{}, fmt.Errorf("config: growth: %w", err)
	}
	return attractor.Options{
		Dt:         c.Dt,
		Seed:       attractor.Point{X: c.Seed.X, Y: c.Seed.Y, Z: c.Seed.Z},
		BaseBatch:  c.BaseBatch,
		BloomBatch: c.BloomBatch,
		MaxPoints:  c.MaxPoints,
		Growth:     growth,
		AngleStep:  c.AngleStep,
		WrapAngle:  c.WrapAngle,
	}, nil
}

// NewSimulator validates the config and builds a simulator from it.
func (c *Config) NewSimulator() (*attractor.Simulator, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	opts, err := c.SimOptions()
	if err != nil {
		return nil, err
	}
	return attractor.New(c.Dissipation, opts), nil
}
