package main

import (
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/config"
	engine "github.com/vovakirdan/tui-tetris/internal/tetris"
)

func defaultOptions() engine.Options {
	return config.DefaultTetrisConfig().EngineOptions()
}

func TestSimulateIsDeterministic(t *testing.T) {
	a, err := simulate(defaultOptions(), 42, 3000, 0.4)
	require.NoError(t, err)
	b, err := simulate(defaultOptions(), 42, 3000, 0.4)
	require.NoError(t, err)

	assert.Equal(t, a.Board, b.Board)
	assert.Equal(t, a.Score, b.Score)
	assert.Equal(t, a.Ticks, b.Ticks)
	assert.Equal(t, a.Commands, b.Commands)
	assert.Equal(t, a.snapshot, b.snapshot)
}

func TestSimulateWithoutInputEndsInGameOver(t *testing.T) {
	// Idle play stacks pieces in the middle column until spawn is blocked
	sim, err := simulate(defaultOptions(), 7, 1_000_000, 0)
	require.NoError(t, err)

	assert.Equal(t, "game_over", sim.State)
	assert.Less(t, sim.Ticks, 1_000_000)
	assert.Zero(t, sim.Commands)
	assert.Zero(t, sim.Score)
	assert.Positive(t, sim.Pieces)
	assert.Len(t, sim.Board, engine.DefaultHeight)
	for _, row := range sim.Board {
		assert.Len(t, row, engine.DefaultWidth)
		assert.True(t, strings.HasPrefix(row, "#"), row)
	}
}

func TestSimulateStopsAtTickLimit(t *testing.T) {
	sim, err := simulate(defaultOptions(), 1, 10, 1)
	require.NoError(t, err)

	assert.Equal(t, 10, sim.Ticks)
	assert.Equal(t, 10, sim.Commands)
	assert.Equal(t, "falling", sim.State)
}

func TestSimulateRejectsBadArguments(t *testing.T) {
	_, err := simulate(defaultOptions(), 1, 0, 0.5)
	assert.Error(t, err)

	_, err = simulate(defaultOptions(), 1, 10, 1.5)
	assert.Error(t, err)

	opts := defaultOptions()
	opts.Width = 3
	_, err = simulate(opts, 1, 10, 0.5)
	assert.ErrorIs(t, err, engine.ErrInvalidDimensions)
}

func TestRandomCommand(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for range 100 {
		_, ok := randomCommand(rng, 0)
		require.False(t, ok)
	}

	seen := make(map[engine.Command]bool)
	for range 1000 {
		c, ok := randomCommand(rng, 1)
		require.True(t, ok)
		seen[c] = true
	}
	assert.Len(t, seen, len(botCommands))
	assert.False(t, seen[engine.CommandReset])
}

func TestRenderFrame(t *testing.T) {
	sim, err := simulate(defaultOptions(), 3, 5, 0)
	require.NoError(t, err)

	out := ansi.Strip(renderFrame(sim.snapshot, engine.DefaultShapes, 5))
	assert.Contains(t, out, "Score  0")
	assert.Contains(t, out, "Tick   5")
	assert.Contains(t, out, "██")
	assert.Contains(t, out, "▓▓")
	assert.NotContains(t, out, "GAME OVER")
}

func TestLoadConfigKeepsFixedSpeedFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tetris.yaml")
	require.NoError(t, os.WriteFile(path, []byte("speed:\n  fixed: true\n"), 0o600))

	oldConfig, oldDifficulty := flagConfig, flagDifficulty
	t.Cleanup(func() { flagConfig, flagDifficulty = oldConfig, oldDifficulty })
	flagConfig = path

	for _, difficulty := range []string{"", "normal", "hard"} {
		flagDifficulty = difficulty
		cfg, err := loadConfig()
		require.NoError(t, err)
		assert.True(t, cfg.Speed.Fixed, "difficulty %q", difficulty)
	}

	// A fixed-speed config never speeds up in a simulated game
	flagDifficulty = ""
	cfg, err := loadConfig()
	require.NoError(t, err)
	sim, err := simulate(cfg.EngineOptions(), 7, 1_000_000, 0)
	require.NoError(t, err)
	assert.Equal(t, cfg.Speed.InitialTicksPerStep, sim.Speed)
}
