package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

func TestDefaultsMatchEmbeddedYAML(t *testing.T) {
	// A developer's ~/.tetris file would be picked up first.
	if _, err := os.Stat(userConfigPath("tetris.yaml")); err == nil {
		t.Skip("user config present")
	}

	cfg, err := LoadTetris("")
	if err != nil {
		t.Fatalf("LoadTetris() error = %v", err)
	}

	if cfg != DefaultTetrisConfig() {
		t.Errorf("LoadTetris(\"\") = %+v, expected %+v", cfg, DefaultTetrisConfig())
	}
}

func TestLoadCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tetris.yaml")
	data := []byte("board:\n  width: 14\nspeed:\n  min_ticks_per_step: 5\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadTetris(path)
	if err != nil {
		t.Fatalf("LoadTetris() error = %v", err)
	}
	if cfg.Board.Width != 14 {
		t.Errorf("Board.Width = %d, expected 14", cfg.Board.Width)
	}
	if cfg.Board.Height != tetris.DefaultHeight {
		t.Errorf("Board.Height = %d, expected %d", cfg.Board.Height, tetris.DefaultHeight)
	}
	if cfg.Speed.MinTicksPerStep != 5 {
		t.Errorf("Speed.MinTicksPerStep = %d, expected 5", cfg.Speed.MinTicksPerStep)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadTetris(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("LoadTetris(missing) expected error")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("board: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadTetris(bad); err == nil {
		t.Error("LoadTetris(malformed) expected error")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("board:\n  width: 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadTetris(invalid); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("LoadTetris(invalid) error = %v, expected ErrInvalidConfig", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*TetrisConfig)
		ok     bool
	}{
		{"defaults", func(*TetrisConfig) {}, true},
		{"narrow board", func(c *TetrisConfig) { c.Board.Width = 5 }, false},
		{"short board", func(c *TetrisConfig) { c.Board.Height = 4 }, false},
		{"zero speed", func(c *TetrisConfig) { c.Speed.InitialTicksPerStep = 0 }, false},
		{"min above initial", func(c *TetrisConfig) { c.Speed.MinTicksPerStep = 30 }, false},
		{"zero pieces per speed up", func(c *TetrisConfig) { c.Speed.PiecesPerSpeedUp = 0 }, false},
		{"zero bonus", func(c *TetrisConfig) { c.Scoring.LineBonusBase = 0 }, false},
		{"zero tick", func(c *TetrisConfig) { c.Timing.TickMS = 0 }, false},
		{"min equals initial", func(c *TetrisConfig) { c.Speed.MinTicksPerStep = 20 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultTetrisConfig()
			tt.modify(&cfg)
			err := cfg.Validate()
			if (err == nil) != tt.ok {
				t.Errorf("Validate() = %v, expected ok=%v", err, tt.ok)
			}
			if err != nil && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected to wrap ErrInvalidConfig", err)
			}
		})
	}
}

func TestEngineOptionsBuildEngine(t *testing.T) {
	cfg := DefaultTetrisConfig()
	cfg.Board.Width = 10

	opts := cfg.EngineOptions()
	opts.Source = tetris.SequenceSource(tetris.PieceO)

	e, err := tetris.New(opts)
	if err != nil {
		t.Fatalf("tetris.New() error = %v", err)
	}
	if e.Width() != 10 {
		t.Errorf("Width() = %d, expected 10", e.Width())
	}
	if e.Speed() != cfg.Speed.InitialTicksPerStep {
		t.Errorf("Speed() = %d, expected %d", e.Speed(), cfg.Speed.InitialTicksPerStep)
	}
}

func TestTiming(t *testing.T) {
	cfg := DefaultTetrisConfig()
	if got := cfg.TickInterval(); got != 50*time.Millisecond {
		t.Errorf("TickInterval() = %v, expected 50ms", got)
	}
	if got := cfg.TickRate(); got != 20 {
		t.Errorf("TickRate() = %d, expected 20", got)
	}

	cfg.Timing.TickMS = 2000
	if got := cfg.TickRate(); got != 1 {
		t.Errorf("TickRate() = %d, expected 1", got)
	}
}

func TestGetDefaultYAML(t *testing.T) {
	if len(GetDefaultYAML("tetris")) == 0 {
		t.Error("GetDefaultYAML(tetris) is empty")
	}
	if GetDefaultYAML("unknown") != nil {
		t.Error("GetDefaultYAML(unknown) expected nil")
	}
}
