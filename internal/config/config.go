package config

import (
	"fmt"
	"math"
	"os"

	"github.com/san-kum/orrery/internal/orbit"
	"github.com/san-kum/orrery/internal/orrery"
	"gopkg.in/yaml.v3"
)

const (
	DefaultDt         = 0.016
	DefaultDuration   = 60.0
	DefaultDistance   = 3.0
	DefaultTransition = 1.0
	DefaultStarCount  = 200
	DefaultStarRadius = 20.0
	DefaultStarSeed   = 1
)

type Config struct {
	Preset     string       `yaml:"preset,omitempty"`
	Dt         float64      `yaml:"dt"`
	Duration   float64      `yaml:"duration"`
	TimeScale  float64      `yaml:"time_scale"`
	Wireframe  bool         `yaml:"wireframe"`
	Background [4]float64   `yaml:"background,flow"`
	Camera     CameraConfig `yaml:"camera"`
	Stars      StarsConfig  `yaml:"stars"`
	Bodies     []BodyConfig `yaml:"bodies"`
}

type CameraConfig struct {
	Distance   float64 `yaml:"distance"`
	AngleX     float64 `yaml:"angle_x"`
	AngleY     float64 `yaml:"angle_y"`
	Follow     int     `yaml:"follow"`
	Transition float64 `yaml:"transition"`
}

type StarsConfig struct {
	Count  int     `yaml:"count"`
	Radius float64 `yaml:"radius"`
	Seed   int64   `yaml:"seed"`
}

type BodyConfig struct {
	Name        string     `yaml:"name"`
	Radius      float64    `yaml:"radius"`
	OrbitRadius float64    `yaml:"orbit_radius"`
	OrbitSpeed  float64    `yaml:"orbit_speed"`
	Phase       float64    `yaml:"phase,omitempty"`
	Color       [3]float64 `yaml:"color,flow"`
	Central     bool       `yaml:"central,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Preset:     "solar",
		Dt:         DefaultDt,
		Duration:   DefaultDuration,
		TimeScale:  1,
		Background: [4]float64{0, 0, 0, 1},
		Camera: CameraConfig{
			Distance:   DefaultDistance,
			Follow:     -1,
			Transition: DefaultTransition,
		},
		Stars: StarsConfig{
			Count:  DefaultStarCount,
			Radius: DefaultStarRadius,
			Seed:   DefaultStarSeed,
		},
		Bodies: FromBodies(orbit.SolarBodies()),
	}
}

// Load reads a scene file. A named preset is the base the file's own
// fields are applied over; otherwise the solar default is.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

func Parse(data []byte) (*Config, error) {
	var head struct {
		Preset string `yaml:"preset"`
	}
	if err := yaml.Unmarshal(data, &head); err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	if head.Preset != "" {
		p, err := GetPreset(head.Preset)
		if err != nil {
			return nil, err
		}
		cfg = p
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
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

// Validate reports the first field that cannot produce a scene, wrapped in
// orrery.ErrInvalidConfig.
func (c *Config) Validate() error {
	invalid := func(format string, args ...any) error {
		return fmt.Errorf("%w: %s", orrery.ErrInvalidConfig, fmt.Sprintf(format, args...))
	}

	if !(c.Dt > 0) || math.IsInf(c.Dt, 0) {
		return invalid("dt must be positive, got %v", c.Dt)
	}
	if !(c.Duration > 0) || math.IsInf(c.Duration, 0) {
		return invalid("duration must be positive, got %v", c.Duration)
	}
	if math.IsNaN(c.TimeScale) || math.IsInf(c.TimeScale, 0) {
		return invalid("time_scale must be finite, got %v", c.TimeScale)
	}
	if !(c.Camera.Distance > 0) {
		return invalid("camera.distance must be positive, got %v", c.Camera.Distance)
	}
	if !(c.Camera.Transition > 0) {
		return invalid("camera.transition must be positive, got %v", c.Camera.Transition)
	}
	if c.Stars.Count < 0 {
		return invalid("stars.count must not be negative, got %d", c.Stars.Count)
	}
	if c.Stars.Count > 0 && !(c.Stars.Radius > 0) {
		return invalid("stars.radius must be positive, got %v", c.Stars.Radius)
	}
	if len(c.Bodies) == 0 {
		return invalid("no bodies")
	}
	seen := make(map[string]int, len(c.Bodies))
	for i, b := range c.Bodies {
		if j, ok := seen[b.Name]; ok {
			return invalid("bodies[%d] and bodies[%d] share the name %q", j, i, b.Name)
		}
		seen[b.Name] = i
		if b.Radius < 0 || math.IsNaN(b.Radius) {
			return invalid("bodies[%d] %q: negative radius %v", i, b.Name, b.Radius)
		}
		if b.OrbitRadius < 0 || math.IsNaN(b.OrbitRadius) {
			return invalid("bodies[%d] %q: negative orbit_radius %v", i, b.Name, b.OrbitRadius)
		}
		if math.IsNaN(b.OrbitSpeed) || math.IsInf(b.OrbitSpeed, 0) {
			return invalid("bodies[%d] %q: orbit_speed must be finite", i, b.Name)
		}
	}
	if c.Camera.Follow >= len(c.Bodies) {
		return invalid("camera.follow %d out of range for %d bodies", c.Camera.Follow, len(c.Bodies))
	}
	return nil
}

// OrbitBodies converts the body list into simulation bodies.
func (c *Config) OrbitBodies() []orbit.Body {
	out := make([]orbit.Body, len(c.Bodies))
	for i, b := range c.Bodies {
		out[i] = b.Body()
	}
	return out
}

func (c *Config) BackgroundRGBA() orrery.RGBA {
	bg := c.Background
	return orrery.RGBA{R: bg[0], G: bg[1], B: bg[2], A: bg[3]}
}

// Clone returns a deep copy.
func (c *Config) Clone() *Config {
	out := *c
	out.Bodies = append([]BodyConfig(nil), c.Bodies...)
	return &out
}

func (b BodyConfig) Body() orbit.Body {
	col := orrery.Color{R: b.Color[0], G: b.Color[1], B: b.Color[2]}
	if b.Central {
		return orbit.NewCentral(b.Name, b.Radius, col)
	}
	return orbit.NewBody(b.Name, b.Radius, b.OrbitRadius, b.OrbitSpeed, col).WithPhase(b.Phase)
}

func FromBodies(bodies []orbit.Body) []BodyConfig {
	out := make([]BodyConfig, len(bodies))
	for i, b := range bodies {
		out[i] = BodyConfig{
			Name:        b.Name,
			Radius:      b.Radius,
			OrbitRadius: b.OrbitRadius,
			OrbitSpeed:  b.OrbitSpeed,
			Phase:       b.Angle,
			Color:       [3]float64{b.Color.R, b.Color.G, b.Color.B},
			Central:     b.Central,
		}
	}
	return out
}
