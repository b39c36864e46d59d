package config

import (
	_ "embed"
)

//go:embed defaults/grove.yaml
var defaultGroveYAML []byte

// DefaultGroveConfig returns the hardcoded grove configuration.
func DefaultGroveConfig() GroveConfig {
	return GroveConfig{
		Board: BoardConfig{
			BaseNodeCount:     5,
			MinX:              -8,
			MaxX:              8,
			MinY:              -4,
			MaxY:              4,
			RewardProbability: 0.3,
		},
		Actor: ActorConfig{
			HomeX:       0,
			HomeY:       -6,
			JumpSpeed:   5,
			JumpHeight:  2,
			ReturnSpeed: 3,
		},
		Difficulty: DifficultyNormal,
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultGroveYAML
}
