// Package config provides YAML-based game configuration loading and
// difficulty presets for the tetris platform.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// TetrisConfig contains all configuration for the Tetris game.
type TetrisConfig struct {
	Board   TetrisBoard   `yaml:"board"`
	Speed   TetrisSpeed   `yaml:"speed"`
	Scoring TetrisScoring `yaml:"scoring"`
	Timing  TetrisTiming  `yaml:"timing"`
}

// TetrisBoard defines the playfield size, border included.
type TetrisBoard struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TetrisSpeed defines gravity and its progression, in driver ticks.
type TetrisSpeed struct {
	InitialTicksPerStep int  `yaml:"initial_ticks_per_step"`
	MinTicksPerStep     int  `yaml:"min_ticks_per_step"`
	PiecesPerSpeedUp    int  `yaml:"pieces_per_speed_up"`
	Fixed               bool `yaml:"fixed"` // Disables progression
}

// TetrisScoring defines the line clear bonus.
type TetrisScoring struct {
	LineBonusBase uint64 `yaml:"line_bonus_base"` // k lines score (1<<k) * base
}

// TetrisTiming defines the wall-clock length of a driver tick.
type TetrisTiming struct {
	TickMS int `yaml:"tick_ms"`
}

// TickInterval returns the configured tick length.
func (c TetrisConfig) TickInterval() time.Duration {
	return time.Duration(c.Timing.TickMS) * time.Millisecond
}

// TickRate returns driver ticks per second, at least 1.
func (c TetrisConfig) TickRate() int {
	if c.Timing.TickMS <= 0 {
		return 1
	}
	return max(1, 1000/c.Timing.TickMS)
}

// Validate checks the config against the limits the engine enforces.
func (c TetrisConfig) Validate() error {
	if c.Board.Width < tetris.MinWidth || c.Board.Height < tetris.MinHeight {
		return fmt.Errorf("%w: board %dx%d is smaller than %dx%d",
			ErrInvalidConfig, c.Board.Width, c.Board.Height, tetris.MinWidth, tetris.MinHeight)
	}
	if c.Speed.InitialTicksPerStep < 1 || c.Speed.MinTicksPerStep < 1 {
		return fmt.Errorf("%w: ticks per step must be positive", ErrInvalidConfig)
	}
	if c.Speed.MinTicksPerStep > c.Speed.InitialTicksPerStep {
		return fmt.Errorf("%w: min_ticks_per_step %d exceeds initial_ticks_per_step %d",
			ErrInvalidConfig, c.Speed.MinTicksPerStep, c.Speed.InitialTicksPerStep)
	}
	if c.Speed.PiecesPerSpeedUp < 1 {
		return fmt.Errorf("%w: pieces_per_speed_up must be positive", ErrInvalidConfig)
	}
	if c.Scoring.LineBonusBase == 0 {
		return fmt.Errorf("%w: line_bonus_base must be positive", ErrInvalidConfig)
	}
	if c.Timing.TickMS < 1 {
		return fmt.Errorf("%w: tick_ms must be positive", ErrInvalidConfig)
	}
	return nil
}

// EngineOptions converts the config into engine options. Source and Logger
// are left for the caller.
func (c TetrisConfig) EngineOptions() tetris.Options {
	return tetris.Options{
		Width:            c.Board.Width,
		Height:           c.Board.Height,
		InitialSpeed:     c.Speed.InitialTicksPerStep,
		MinSpeed:         c.Speed.MinTicksPerStep,
		PiecesPerSpeedUp: c.Speed.PiecesPerSpeedUp,
		FixedSpeed:       c.Speed.Fixed,
		LineBonusBase:    c.Scoring.LineBonusBase,
	}
}
