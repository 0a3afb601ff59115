package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the default Tetris configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Board: TetrisBoard{
			Width:  tetris.DefaultWidth,
			Height: tetris.DefaultHeight,
		},
		Speed: TetrisSpeed{
			InitialTicksPerStep: tetris.DefaultInitialSpeed,
			MinTicksPerStep:     tetris.DefaultMinSpeed,
			PiecesPerSpeedUp:    tetris.DefaultPiecesPerSpeedUp,
		},
		Scoring: TetrisScoring{
			LineBonusBase: tetris.DefaultLineBonusBase,
		},
		Timing: TetrisTiming{
			TickMS: 50,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "tetris":
		return defaultTetrisYAML
	default:
		return nil
	}
}
