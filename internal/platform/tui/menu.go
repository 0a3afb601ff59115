package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
	"github.com/vovakirdan/tui-tetris/internal/storage"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

// MenuChoice is what the user picked on the start screen.
type MenuChoice int

const (
	MenuChoiceNone MenuChoice = iota
	MenuChoicePlay
	MenuChoiceDifficulty
	MenuChoiceScores
	MenuChoiceQuit
)

// MenuItem represents a selectable line in the menu.
type MenuItem struct {
	Choice MenuChoice
	Label  string
}

// Difficulties lists the presets the menu cycles through.
var Difficulties = []string{"normal", "easy", "hard", "fixed"}

// MenuModel is the Bubble Tea model for the start screen.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	difficulty     int // Index into Difficulties
	gameID         string
	highScore      int
	width          int
	height         int
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	quitting       bool
	selected       *MenuItem // Set when user starts a game
	openScoreboard bool      // True if user asked for the scoreboard
}

// NewMenuModel creates a new menu model for the given game.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig, gameID string) MenuModel {
	m := MenuModel{
		items: []MenuItem{
			{Choice: MenuChoicePlay, Label: "Play"},
			{Choice: MenuChoiceDifficulty, Label: "Difficulty"},
			{Choice: MenuChoiceScores, Label: "High Scores"},
			{Choice: MenuChoiceQuit, Label: "Quit"},
		},
		gameID:    gameID,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}

	if store != nil {
		if high, err := store.HighScore(gameID); err == nil {
			m.highScore = high
		}
	}

	return m
}

// WithDifficulty preselects a difficulty preset. Unknown names are ignored.
func (m MenuModel) WithDifficulty(name string) MenuModel {
	for i, d := range Difficulties {
		if d == name {
			m.difficulty = i
		}
	}
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionLeft:
		if m.items[m.cursor].Choice == MenuChoiceDifficulty {
			m.difficulty = (m.difficulty + len(Difficulties) - 1) % len(Difficulties)
		}

	case MenuActionRight:
		if m.items[m.cursor].Choice == MenuChoiceDifficulty {
			m.difficulty = (m.difficulty + 1) % len(Difficulties)
		}

	case MenuActionSelect:
		switch item := m.items[m.cursor]; item.Choice {
		case MenuChoicePlay:
			m.selected = &item
			return m, tea.Quit // Exit menu to start game
		case MenuChoiceDifficulty:
			m.difficulty = (m.difficulty + 1) % len(Difficulties)
		case MenuChoiceScores:
			m.openScoreboard = true
			return m, tea.Quit
		case MenuChoiceQuit:
			m.quitting = true
			return m, tea.Quit
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit // Exit menu to show scoreboard
	}

	return m, nil
}

// logo renders the title with one piece color per letter.
func logo() string {
	letters := []rune("TETRIS")
	parts := make([]string, len(letters))
	for i, r := range letters {
		style := StyleFor(tetris.PieceKind(i % tetris.PieceCount).Color()).Bold(true)
		parts[i] = style.Render(string(r))
	}
	return strings.Join(parts, " ")
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, logo()))
	b.WriteString("\n\n")

	if m.highScore > 0 {
		b.WriteString(centerText(fmt.Sprintf("High score: %d", m.highScore), m.width))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		label := item.Label
		if item.Choice == MenuChoiceDifficulty {
			label = fmt.Sprintf("%s: < %s >", label, m.Difficulty())
		}

		b.WriteString(centerText(cursor+label, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Left/Right: Difficulty  |  Enter: Select  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// Difficulty returns the selected difficulty preset name.
func (m MenuModel) Difficulty() string {
	return Difficulties[m.difficulty]
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	n := lipgloss.Width(text)
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID          string
	Difficulty      string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the start screen and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig, gameID, difficulty string) (MenuResult, error) {
	if !registry.Exists(gameID) {
		return MenuResult{Config: cfg}, fmt.Errorf("tui: unknown game %q", gameID)
	}

	model := NewMenuModel(store, cfg, gameID).WithDifficulty(difficulty)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{
		Config:     m.Config(),
		Difficulty: m.Difficulty(),
	}

	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.IsQuitting(), m.Selected() == nil:
		result.Quit = true
	default:
		result.GameID = gameID
	}

	return result, nil
}
