// Package registry keeps the game factories known to the platform.
// Game packages register themselves from init(), so the TUI and the CLI can
// look games up by ID without importing them directly.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-match3/internal/core"
)

// Game is what the platform drives. Implementations hold pure simulation
// state: the platform owns timing, input mapping and terminal output.
type Game interface {
	// ID is the stable identifier used on the command line and in stored results.
	ID() string

	// Title is the display name.
	Title() string

	// Reset deals a fresh game for the screen size and seed in cfg.
	Reset(cfg core.RuntimeConfig)

	// Step applies one frame of input and reports the resulting state.
	Step(in core.InputFrame) core.StepResult

	// Render draws into dst.
	Render(dst *core.Screen)

	State() core.GameState
}

// Resizer is implemented by games that can re-layout without a Reset.
type Resizer interface {
	Resize(w, h int)
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new game instance.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a factory under id. It panics on a duplicate id or a nil factory.
func Register(id string, f Factory) {
	if f == nil {
		panic(fmt.Sprintf("registry: nil factory for %q", id))
	}

	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	factories[id] = f
	titles[id] = f().Title()
}

// List returns all registered games sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{ID: id, Title: titles[id]})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates the game registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
