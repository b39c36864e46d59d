package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed" // keep the file values as they are
)

// presetParams are the board values a preset imposes.
type presetParams struct {
	RewardProbability float64
	BaseNodeCount     int
}

var presets = map[DifficultyPreset]presetParams{
	DifficultyEasy:   {RewardProbability: 0.2, BaseNodeCount: 4},
	DifficultyNormal: {RewardProbability: 0.3, BaseNodeCount: 5},
	DifficultyHard:   {RewardProbability: 0.45, BaseNodeCount: 6},
}

// ParseDifficulty converts a flag value into a preset. An empty string
// means fixed.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return DifficultyFixed, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// IsFixedPreset returns true if the preset leaves the board untouched.
func IsFixedPreset(preset DifficultyPreset) bool {
	_, ok := presets[preset]
	return !ok
}

// ApplyGrovePreset modifies the config based on a difficulty preset.
func ApplyGrovePreset(cfg *GroveConfig, preset DifficultyPreset) {
	cfg.Difficulty = preset
	p, ok := presets[preset]
	if !ok {
		return
	}
	cfg.Board.RewardProbability = p.RewardProbability
	cfg.Board.BaseNodeCount = p.BaseNodeCount
}
