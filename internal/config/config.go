// Package config provides YAML-based configuration loading and difficulty
// presets for the banana grove.
package config

import (
	"github.com/vovakirdan/banana-grove/internal/core"
	"github.com/vovakirdan/banana-grove/internal/grove"
)

// GroveConfig contains all configuration for a grove session.
type GroveConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Actor      ActorConfig      `yaml:"actor"`
	Difficulty DifficultyPreset `yaml:"difficulty"`
}

// BoardConfig defines board generation parameters.
type BoardConfig struct {
	BaseNodeCount     int     `yaml:"base_node_count"`
	MinX              float64 `yaml:"min_x"`
	MaxX              float64 `yaml:"max_x"`
	MinY              float64 `yaml:"min_y"`
	MaxY              float64 `yaml:"max_y"`
	RewardProbability float64 `yaml:"reward_probability"` // chance of a hazard
}

// ActorConfig defines the monkey's home and motion.
type ActorConfig struct {
	HomeX       float64 `yaml:"home_x"`
	HomeY       float64 `yaml:"home_y"`
	JumpSpeed   float64 `yaml:"jump_speed"`
	JumpHeight  float64 `yaml:"jump_height"`
	ReturnSpeed float64 `yaml:"return_speed"`
}

// ToGrove converts the file representation into session parameters.
func (c GroveConfig) ToGrove() grove.Config {
	return grove.Config{
		Board: grove.BoardConfig{
			BaseNodeCount:     c.Board.BaseNodeCount,
			MinX:              c.Board.MinX,
			MaxX:              c.Board.MaxX,
			MinY:              c.Board.MinY,
			MaxY:              c.Board.MaxY,
			RewardProbability: c.Board.RewardProbability,
		},
		Actor: grove.ActorConfig{
			Home:        core.V(c.Actor.HomeX, c.Actor.HomeY),
			JumpSpeed:   c.Actor.JumpSpeed,
			JumpHeight:  c.Actor.JumpHeight,
			ReturnSpeed: c.Actor.ReturnSpeed,
		},
	}
}

// Validate reports whether the configuration can start a session.
func (c GroveConfig) Validate() error {
	return c.ToGrove().Validate()
}
