// tetris is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	tetris play              - Play a game
//	tetris menu              - Start screen with difficulty picker and scores
//	tetris serve             - Start SSH server for remote play
//	tetris scores            - Show high scores
//	tetris simulate          - Run a headless seeded game and print the result
//	tetris watch             - Watch the engine play itself
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: from config, 20)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.tetris/scores.db)
//	--config <path>      - Custom tetris.yaml
//	--difficulty <name>  - easy, normal, hard, fixed
//
// Defaults for --db, --seed, --config, --difficulty and the SSH address can
// be set in a .env file or the environment (TETRIS_DB, TETRIS_SEED, ...).
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	tetrisgame "github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

// env holds defaults read from .env and the process environment.
var env config.Env

func main() {
	if err := config.LoadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	var err error
	if env, err = config.ReadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tetris",
		Short: "Tetris in your terminal",
		Long: `A falling-block puzzle game for the terminal.

Available commands:
  play      - Play a game directly
  menu      - Start screen with difficulty picker and scores
  serve     - Start SSH server for remote play
  scores    - View high scores
  simulate  - Run a headless game with random input
  watch     - Watch the engine play itself

Examples:
  tetris play
  tetris play --difficulty hard
  tetris menu
  tetris serve --ssh :2222
  tetris simulate --seed 42 --ticks 5000`,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if _, err := config.ParseDifficulty(flagDifficulty); err != nil {
				return err
			}
			tetrisgame.SetConfigPath(flagConfig)
			tetrisgame.SetDifficultyPreset(flagDifficulty)
			return nil
		},
	}

	dbPath := "~/.tetris/scores.db"
	if env.DB != "" {
		dbPath = env.DB
	}

	// Global persistent flags
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 0, "Tick rate (0 = from config)")
	pf.Int64Var(&flagSeed, "seed", env.Seed, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", dbPath, "Path to scores database")
	pf.StringVar(&flagConfig, "config", env.ConfigPath, "Path to custom tetris config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", env.Difficulty, "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file (interactive commands log nowhere otherwise)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(watchCmd)

	return rootCmd
}

// newLogger builds the CLI logger. Interactive commands pass interactive=true
// so that logs never draw over the game; they go to --log-file or nowhere.
// The returned close function releases the log file, if any.
func newLogger(interactive bool) (*log.Logger, func(), error) {
	var w io.Writer = os.Stderr
	closeFn := func() {}

	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	case interactive:
		w = io.Discard
	}

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("log level: %w", err)
	}

	logger := log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          "tetris",
	})
	tetrisgame.SetLogger(logger)
	return logger, closeFn, nil
}

// loadConfig resolves the tetris config with the selected difficulty applied.
func loadConfig() (config.TetrisConfig, error) {
	cfg, err := config.LoadTetris(flagConfig)
	if err != nil {
		return cfg, err
	}
	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return cfg, err
	}
	if preset != "" {
		config.ApplyTetrisPreset(&cfg, preset)
	}
	return cfg, nil
}

// runtimeConfig builds the platform config for a screen of the given size.
func runtimeConfig(cfg config.TetrisConfig, width, height int) core.RuntimeConfig {
	rate := flagFPS
	if rate <= 0 {
		rate = cfg.TickRate()
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: rate,
		Seed:     flagSeed,
	}
}
