package control

import (
	"github.com/philipparndt/goorbit/pkg/damp"
	"github.com/philipparndt/goorbit/pkg/geometry"
)

// Channel holds the easing parameters of one animated value
type Channel struct {
	Friction  float64 `yaml:"friction"`
	Tolerance float64 `yaml:"tolerance"`
}

// Config tunes the controller. DefaultConfig returns the values the viewer ships with.
type Config struct {
	Orbit        Channel `yaml:"orbit"`
	BaseRotation Channel `yaml:"base_rotation"`
	Zoom         Channel `yaml:"zoom"`
	TexturePan   Channel `yaml:"texture_pan"`

	RotateSpeed     float64          `yaml:"rotate_speed"`
	PanThreshold    float64          `yaml:"pan_threshold"` // X offset below which vertical panning resumes
	DefaultDistance float64          `yaml:"default_distance"`
	Target          geometry.Vector3 `yaml:"target"`
	Up              geometry.Vector3 `yaml:"up"`

	// Debug reports broken preconditions (friction range, zero radius) to the log writer
	Debug bool `yaml:"debug"`
}

// DefaultConfig returns the standard tuning
func DefaultConfig() Config {
	return Config{
		Orbit:           Channel{Friction: 0.99, Tolerance: damp.DefaultTolerance},
		BaseRotation:    Channel{Friction: 0.95, Tolerance: 0.00001},
		Zoom:            Channel{Friction: 0.95, Tolerance: 0.1},
		TexturePan:      Channel{Friction: 0.9, Tolerance: 0.001},
		RotateSpeed:     0.05,
		PanThreshold:    0.001,
		DefaultDistance: 240 * 1.05,
		Up:              geometry.WorldUp,
	}
}

// ZoomDestination maps a zoom percentage to a camera distance.
// 0 is the default distance, 1 halves it, and larger values approach but never reach zero.
func ZoomDestination(defaultDistance, percentage float64) float64 {
	return defaultDistance / (1.0 + percentage)
}

// NamedChannel pairs a channel with a human-readable name
type NamedChannel struct {
	Name string
	Channel
}

// Channels lists the four channels in tick order
func (c Config) Channels() []NamedChannel {
	return []NamedChannel{
		{"orbit", c.Orbit},
		{"base rotation", c.BaseRotation},
		{"zoom", c.Zoom},
		{"texture pan", c.TexturePan},
	}
}
