package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/tui-tetris/internal/core"
	_ "github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

func menuUpdate(t *testing.T, m MenuModel, keys ...string) MenuModel {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(keyMsg(k))
		mm, ok := next.(MenuModel)
		if !ok {
			t.Fatalf("Update() returned %T, expected MenuModel", next)
		}
		m = mm
	}
	return m
}

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 20, Seed: 1}
}

func TestMenuDifficultyCycle(t *testing.T) {
	m := NewMenuModel(nil, testRuntime(), "tetris")
	if m.Difficulty() != "normal" {
		t.Fatalf("default difficulty = %q, expected normal", m.Difficulty())
	}

	// Left/right only change the difficulty on its own row
	m = menuUpdate(t, m, "right")
	if m.Difficulty() != "normal" {
		t.Errorf("right on Play changed difficulty to %q", m.Difficulty())
	}

	m = menuUpdate(t, m, "down", "right")
	if m.Difficulty() != "easy" {
		t.Errorf("difficulty = %q, expected easy", m.Difficulty())
	}
	m = menuUpdate(t, m, "left", "left")
	if m.Difficulty() != "fixed" {
		t.Errorf("difficulty = %q after wrapping left, expected fixed", m.Difficulty())
	}
	m = menuUpdate(t, m, "enter")
	if m.Difficulty() != "normal" {
		t.Errorf("difficulty = %q after enter, expected normal", m.Difficulty())
	}
}

func TestMenuWithDifficulty(t *testing.T) {
	m := NewMenuModel(nil, testRuntime(), "tetris").WithDifficulty("hard")
	if m.Difficulty() != "hard" {
		t.Errorf("Difficulty() = %q, expected hard", m.Difficulty())
	}
	m = m.WithDifficulty("nightmare")
	if m.Difficulty() != "hard" {
		t.Errorf("unknown preset changed difficulty to %q", m.Difficulty())
	}
}

func TestMenuChoices(t *testing.T) {
	m := menuUpdate(t, NewMenuModel(nil, testRuntime(), "tetris"), "enter")
	if m.Selected() == nil || m.Selected().Choice != MenuChoicePlay {
		t.Error("enter on the first row should select Play")
	}

	m = menuUpdate(t, NewMenuModel(nil, testRuntime(), "tetris"), "tab")
	if !m.WantsScoreboard() {
		t.Error("tab should open the scoreboard")
	}

	m = menuUpdate(t, NewMenuModel(nil, testRuntime(), "tetris"), "down", "down", "down", "down", "enter")
	if !m.IsQuitting() {
		t.Error("enter on Quit should quit")
	}
}

func TestMenuView(t *testing.T) {
	m := NewMenuModel(nil, testRuntime(), "tetris").WithDifficulty("easy")
	view := ansi.Strip(m.View())
	for _, want := range []string{"Play", "High Scores", "Quit", "easy"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func sessionUpdate(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update() returned %T, expected SessionModel", next)
	}
	return sm, cmd
}

func TestSessionFlow(t *testing.T) {
	m := NewSessionModel(nil, testRuntime(), "tetris", "alice").WithDifficulty("easy")

	m, cmd := sessionUpdate(t, m, keyMsg("enter"))
	if m.screen != screenGame || m.game == nil {
		t.Fatal("selecting Play should start a game")
	}
	if cmd == nil {
		t.Error("starting a game should schedule a tick")
	}

	// Back returns to the menu without ending the session
	m, _ = sessionUpdate(t, m, keyMsg("esc"))
	if m.screen != screenMenu || m.quitting {
		t.Fatalf("esc in game: screen=%v quitting=%v, expected menu", m.screen, m.quitting)
	}
	if m.menu.Difficulty() != "easy" {
		t.Errorf("menu difficulty = %q after returning, expected easy", m.menu.Difficulty())
	}

	m, _ = sessionUpdate(t, m, keyMsg("tab"))
	if m.screen != screenScores {
		t.Fatal("tab should open the scoreboard")
	}
	m, _ = sessionUpdate(t, m, keyMsg("esc"))
	if m.screen != screenMenu || m.quitting {
		t.Error("esc in scoreboard should return to the menu")
	}

	m, cmd = sessionUpdate(t, m, keyMsg("q"))
	if !m.quitting || cmd == nil {
		t.Error("q in menu should end the session")
	}
	if m.View() != "" {
		t.Error("View() should be empty after quitting")
	}
}

func TestSessionIgnoresStaleTicks(t *testing.T) {
	m := NewSessionModel(nil, testRuntime(), "tetris", "bob")
	m, _ = sessionUpdate(t, m, keyMsg("enter"))
	first := m.game.tickLoop

	m, _ = sessionUpdate(t, m, keyMsg("esc"))
	m, _ = sessionUpdate(t, m, keyMsg("enter"))
	if m.game.tickLoop == first {
		t.Fatal("a new game should start a new tick loop")
	}

	_, cmd := sessionUpdate(t, m, TickMsg{ID: first})
	if cmd != nil {
		t.Error("tick from the previous game's loop should not be rescheduled")
	}
}
