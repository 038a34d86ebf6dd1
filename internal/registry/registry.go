// Package registry maps mode IDs such as "swipes" (campaign) and
// "swipes_practice" (single-level practice) to game factories. Modes
// register from init(), so the menu, scoreboard and CLI find them by ID.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/binary-swipes/internal/core"
)

// ErrUnknownMode is returned by Create for an ID nobody registered.
var ErrUnknownMode = errors.New("registry: unknown mode")

// Game is what a platform drives: a fixed-tick simulation fed with
// abstract actions and drawn into a cell screen. Implementations stay
// free of Bubble Tea.
type Game interface {
	// ID is the mode ID, also the key for runs and high scores
	// ("swipes", "swipes_practice").
	ID() string

	// Title is shown in the menu and scoreboard tabs ("Binary Swipes").
	Title() string

	// Reset starts a fresh run for the given screen size and seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances one tick with the swipes and commands pressed since
	// the last one.
	Step(in core.InputFrame) core.StepResult

	// Render draws into a pre-cleared screen.
	Render(dst *core.Screen)

	// State reports score, level and whether the run is over or paused.
	State() core.GameState
}

// Resizable is implemented by games that can follow a terminal resize
// without a Reset.
type Resizable interface {
	Resize(width, height int)
}

// GameInfo describes a registered mode.
type GameInfo struct {
	ID    string
	Title string
}

// Factory builds a new game for one mode.
type Factory func() Game

var (
	mu    sync.RWMutex
	modes = make(map[string]entry)
)

type entry struct {
	factory Factory
	title   string
}

// Register adds a mode. It panics on an empty or duplicate ID.
func Register(id string, f Factory) {
	if id == "" {
		panic("registry: empty mode ID")
	}

	mu.Lock()
	defer mu.Unlock()

	if _, dup := modes[id]; dup {
		panic(fmt.Sprintf("registry: mode %q registered twice", id))
	}
	modes[id] = entry{factory: f, title: f().Title()}
}

// List returns every registered mode ordered by ID, so campaign
// ("swipes") sorts ahead of practice ("swipes_practice").
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	infos := make([]GameInfo, 0, len(modes))
	for id, e := range modes {
		infos = append(infos, GameInfo{ID: id, Title: e.title})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].ID < infos[j].ID })
	return infos
}

// Create builds a fresh game for the mode.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := modes[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownMode, id)
	}
	return e.factory(), nil
}

// Exists reports whether the mode is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := modes[id]
	return ok
}
