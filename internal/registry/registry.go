// Package registry maps game IDs to constructors. The tetris adapter
// registers itself from init, and the CLI and SSH server look it up by ID
// without importing the game package's types.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Game is what the platform drives: a pure simulation stepped once per tick.
// Implementations never import Bubble Tea; the platform maps keys to
// actions, owns the clock and paints the screen buffer.
type Game interface {
	// ID is the stable key used on the command line and in the scores table.
	ID() string

	// Title is shown in menus and on the scoreboard.
	Title() string

	// Reset starts a fresh session for the given screen size and seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances one tick with the actions pressed since the previous one.
	Step(in core.InputFrame) core.StepResult

	// Render paints the current state into a cleared screen buffer.
	Render(dst *core.Screen)

	// State reports score, game over and pause.
	State() core.GameState
}

// GameInfo is a listing entry for a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory builds a new, independent game instance.
type Factory func() Game

type entry struct {
	factory Factory
	title   string
}

var (
	mu    sync.RWMutex
	games = make(map[string]entry)
)

// Register makes a game available under id. Registering the same id twice
// is a programming error and panics.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, dup := games[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	games[id] = entry{factory: f, title: f().Title()}
}

// List returns every registered game ordered by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]GameInfo, 0, len(games))
	for id, e := range games {
		out = append(out, GameInfo{ID: id, Title: e.title})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Create builds a new instance of the game registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := games[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := games[id]
	return ok
}

// Title returns the display title for id, or id itself when unknown.
func Title(id string) string {
	mu.RLock()
	defer mu.RUnlock()

	if e, ok := games[id]; ok {
		return e.title
	}
	return id
}
