// Package tetris provides the falling-block puzzle game for the platform.
// It adapts the engine in internal/tetris to the registry.Game interface.
package tetris

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
	engine "github.com/vovakirdan/tui-tetris/internal/tetris"
)

// GameID is the registry and score storage identifier.
const GameID = "tetris"

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// logger receives engine debug events
var logger = log.New(io.Discard)

// SetConfigPath sets the config file path used by new games.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset used by new games.
// Unknown values clear the preset.
func SetDifficultyPreset(preset string) {
	p, err := config.ParseDifficulty(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

// SetLogger routes engine debug logs. Nil discards them.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// Game implements Tetris on top of the engine. It owns gravity timing by
// calling the engine's tick driver once per Step.
type Game struct {
	cfg    config.TetrisConfig
	engine *engine.Engine
	rng    *rand.Rand

	// Screen dimensions
	screenW int
	screenH int

	// difficulty overrides the package-level preset when set
	difficulty config.DifficultyPreset

	tick       uint64
	paused     bool
	tooSmall   bool
	lastReport engine.StepReport
}

// New creates a new Tetris game. Reset must be called before Step.
func New() *Game {
	return &Game{}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tetris"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH
	g.tick = 0
	g.paused = false
	g.lastReport = engine.StepReport{}

	cfg, err := config.LoadTetris(configPath)
	if err != nil {
		logger.Warn("falling back to default config", "path", configPath, "err", err)
		cfg = config.DefaultTetrisConfig()
	}
	preset := difficultyPreset
	if g.difficulty != "" {
		preset = g.difficulty
	}
	if preset != "" {
		config.ApplyTetrisPreset(&cfg, preset)
	}
	g.cfg = cfg

	opts := cfg.EngineOptions()
	opts.Source = rand.NewSource(g.rng.Int63())
	opts.Logger = logger

	e, err := engine.New(opts)
	if err != nil {
		logger.Warn("invalid engine options, using defaults", "err", err)
		g.cfg = config.DefaultTetrisConfig()
		opts = g.cfg.EngineOptions()
		opts.Source = rand.NewSource(g.rng.Int63())
		opts.Logger = logger
		e, _ = engine.New(opts)
	}
	g.engine = e
	g.updateLayout()
}

// Step advances the game by one driver tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	g.lastReport = engine.StepReport{}

	// Restart discards the whole session, even mid-game
	if in.Has(core.ActionRestart) {
		g.engine.Reset()
		g.paused = false
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.engine.IsGameOver() {
		g.paused = !g.paused
	}

	if g.engine.IsGameOver() || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	for _, a := range in.Order {
		if cmd, ok := commandFor(a); ok {
			cmd.Apply(g.engine)
		}
	}

	g.lastReport = g.engine.Tick()
	return core.StepResult{
		State:        g.State(),
		LinesCleared: g.lastReport.LinesCleared,
		Locked:       g.lastReport.Locked,
	}
}

// commandFor maps a platform action to an engine command.
func commandFor(a core.Action) (engine.Command, bool) {
	switch a {
	case core.ActionLeft:
		return engine.CommandLeft, true
	case core.ActionRight:
		return engine.CommandRight, true
	case core.ActionDown:
		return engine.CommandSoftDrop, true
	case core.ActionRotate:
		return engine.CommandRotate, true
	default:
		return 0, false
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.engine == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    int(g.engine.Score()),
		GameOver: g.engine.IsGameOver(),
		Paused:   g.paused,
	}
}

// SetDifficulty sets the preset for this game only, taking effect on the
// next Reset. Unknown values are ignored.
func (g *Game) SetDifficulty(preset string) {
	if p, err := config.ParseDifficulty(preset); err == nil {
		g.difficulty = p
	}
}

// LinesCleared returns the rows cleared in the current session.
func (g *Game) LinesCleared() int {
	if g.engine == nil {
		return 0
	}
	return int(g.engine.LinesCleared())
}

// PiecesLocked returns the pieces locked in the current session.
func (g *Game) PiecesLocked() int {
	if g.engine == nil {
		return 0
	}
	return int(g.engine.PiecesLocked())
}

// Engine exposes the underlying engine for tests and headless tools.
func (g *Game) Engine() *engine.Engine {
	return g.engine
}

// Config returns the configuration the current session was built from.
func (g *Game) Config() config.TetrisConfig {
	return g.cfg
}
