package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParseDifficulty maps a CLI value to a preset. Empty means no preset.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("%w: unknown difficulty %q", ErrInvalidConfig, s)
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyTetrisPreset modifies the config based on a difficulty preset.
// Easy starts slower; hard starts halfway to the speed floor and speeds up
// twice as often. Fixed keeps the configured speed for the whole game.
// A speed.fixed set in the config file is never cleared.
func ApplyTetrisPreset(cfg *TetrisConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Speed.Fixed = true
	}

	switch preset {
	case DifficultyEasy:
		cfg.Speed.InitialTicksPerStep += cfg.Speed.InitialTicksPerStep / 2
	case DifficultyHard:
		cfg.Speed.InitialTicksPerStep = (cfg.Speed.InitialTicksPerStep + cfg.Speed.MinTicksPerStep) / 2
		cfg.Speed.PiecesPerSpeedUp = max(1, cfg.Speed.PiecesPerSpeedUp/2)
	}
}
