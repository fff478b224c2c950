// Package registry provides a global registry of frontends that can host a
// match. Frontends register themselves in init() functions, so the CLI can
// discover them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
)

// Env is everything a frontend needs to run a match.
type Env struct {
	Game    *pong.Game
	Runtime core.RuntimeConfig
	Logger  *log.Logger
}

// Frontend presents a game to the player and drives its tick loop.
type Frontend interface {
	// ID returns a unique identifier used on the command line (e.g. "tui").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// OwnsTerminal reports whether the frontend draws into the terminal,
	// in which case logs must not go to stdout or stderr.
	OwnsTerminal() bool

	// Run blocks until the player quits.
	Run(env Env) error
}

// FrontendInfo contains metadata about a registered frontend.
type FrontendInfo struct {
	ID           string
	Title        string
	OwnsTerminal bool
}

// Factory is a function that creates a new instance of a frontend.
type Factory func() Frontend

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]FrontendInfo)
	mu        sync.RWMutex
)

// Register adds a frontend factory to the registry.
// Panics if a frontend with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: frontend %q already registered", id))
	}

	factories[id] = f

	fe := f()
	infos[id] = FrontendInfo{ID: id, Title: fe.Title(), OwnsTerminal: fe.OwnsTerminal()}
}

// List returns information about all registered frontends, sorted by ID.
func List() []FrontendInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]FrontendInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a frontend by its ID.
func Create(id string) (Frontend, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown frontend %q", id)
	}

	return f(), nil
}

// Exists checks if a frontend with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// reset clears the registry. Tests only.
func reset() {
	mu.Lock()
	defer mu.Unlock()
	factories = make(map[string]Factory)
	infos = make(map[string]FrontendInfo)
}
