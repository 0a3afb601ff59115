package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	tetrisgame "github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top high scores and lifetime statistics.

Examples:
  tetris scores
  tetris scores --limit 20
  tetris scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded scores")
}

var (
	scoresTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("51"))
	scoresHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252"))
	scoresDimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

func runScores(_ *cobra.Command, _ []string) error {
	if flagScoresLimit <= 0 {
		return errors.New("--limit must be positive")
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(tetrisgame.GameID); err != nil {
			return fmt.Errorf("clearing scores: %w", err)
		}
		fmt.Println("Scores cleared.")
		return nil
	}

	scores, err := store.TopScores(tetrisgame.GameID, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Println(scoresTitleStyle.Render("High Scores - Tetris"))
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'tetris play' to set the first high score!")
		return nil
	}

	fmt.Println(scoresHeaderStyle.Render(fmt.Sprintf("  %-4s  %-12s  %-10s  %-6s  %-6s  %s",
		"Rank", "Player", "Score", "Lines", "Pieces", "Date")))
	for i, e := range scores {
		fmt.Printf("  %-4d  %-12s  %-10d  %-6d  %-6d  %s\n",
			i+1, truncate(e.Player, 12), e.Score, e.Lines, e.Pieces, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(tetrisgame.GameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not load stats: %v\n", err)
		return nil
	}
	fmt.Println()
	fmt.Println(scoresDimStyle.Render(fmt.Sprintf(
		"Best: %d  Games: %d  Average: %.0f  Lines: %d  Pieces: %d  Most lines: %d",
		stats.HighScore, stats.GamesCount, stats.AvgScore, stats.TotalLines, stats.TotalPieces, stats.MostLines)))
	return nil
}

// truncate shortens s to n runes, marking the cut with an ellipsis.
func truncate(s string, n int) string {
	if s == "" {
		return "-"
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return strings.TrimSpace(string(r[:n-1])) + "…"
}
