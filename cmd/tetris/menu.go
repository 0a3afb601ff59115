package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	tetrisgame "github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start screen with difficulty picker and scores",
	Long: `Start Tetris on its start screen.

Use arrow keys or j/k to navigate, Left/Right to change the difficulty,
Enter to select. After a game ends you return to the start screen.

Controls:
  Up/Down/j/k    - Navigate menu
  Left/Right     - Change difficulty
  Enter/Space    - Select
  Tab            - Scoreboard
  Q              - Quit

Examples:
  tetris menu
  tetris menu --difficulty easy
  tetris menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
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

	player := playerName()
	difficulty := flagDifficulty

	// Menu loop
	for {
		result, err := tui.RunMenu(store, rc, tetrisgame.GameID, difficulty)
		if err != nil {
			return err
		}

		// Keep size changes and the chosen difficulty for the next round
		rc = result.Config
		difficulty = result.Difficulty

		if result.Quit {
			return nil
		}

		if result.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, tetrisgame.GameID, rc.ScreenW, rc.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			return nil
		}

		game := tetrisgame.New()
		game.SetDifficulty(difficulty)

		// A fixed --seed replays the same game every round
		if flagSeed == 0 {
			rc.Seed = time.Now().UnixNano()
		}

		logger.Info("starting game", "difficulty", difficulty, "seed", rc.Seed)
		if err := tui.Run(game, store, rc, player); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
	}
}
