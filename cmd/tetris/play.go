package main

import (
	"fmt"
	"os"
	"os/user"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/core"
	tetrisgame "github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game of Tetris right away.

Controls:
  Left/Right, h/l, a/d  - Move piece
  Down, j, s            - Soft drop
  Up, k, w, Space       - Rotate clockwise
  P                     - Pause
  R                     - Restart
  Enter                 - Restart after game over
  Esc/B, Q/Ctrl+C       - Quit

Difficulty options:
  easy   - Slower start, speeds up every 10 pieces
  normal - Config defaults
  hard   - Faster start, speeds up every 5 pieces
  fixed  - No speed progression

Examples:
  tetris play
  tetris play --difficulty hard
  tetris play --seed 42
  tetris play --config ./my-tetris.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

// terminalSize returns the size of stdout, or the platform default when it
// is not a terminal.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	def := core.DefaultConfig()
	return def.ScreenW, def.ScreenH
}

// playerName is the local account name recorded with scores.
func playerName() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return "player"
}

// openStore opens the scores database. The game runs without it on failure.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	width, height := terminalSize()
	rc := runtimeConfig(cfg, width, height)

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	logger.Info("starting game", "difficulty", flagDifficulty, "tick_rate", rc.TickRate, "seed", rc.Seed)
	if err := tui.Run(tetrisgame.New(), store, rc, playerName()); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
