// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/flappy-arcade/internal/core"
)

// Game is the core interface that all arcade games must implement.
// Games contain pure logic with no external dependencies (especially no Bubble Tea).
// The platform handles input mapping, timing, and rendering.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "flappy").
	// Used for CLI commands and score storage.
	ID() string

	// Title returns a human-readable name for display (e.g., "Flappy Bird").
	Title() string

	// Reset initializes or resets the game state.
	// Called once at start and again when restarting after game over.
	// The RuntimeConfig provides screen dimensions and RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	// Input is abstracted to platform-level actions (Jump, Pause, etc.).
	// Returns the result of this tick including current game state.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	// The screen is pre-cleared before this call.
	Render(dst *core.Screen)

	// State returns the current game state (score, game over, paused).
	State() core.GameState
}

// HighScoreSetter is implemented by games that show the best score.
// The platform calls it before the first Step and after saving a score.
type HighScoreSetter interface {
	SetHighScore(score int)
}

// DifficultySetter is implemented by games with difficulty presets.
// The platform calls it before Reset; the preset applies from then on.
type DifficultySetter interface {
	SetDifficulty(preset string) error
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

// Catalog maps game IDs to factories. The zero value is ready to use.
type Catalog struct {
	mu      sync.RWMutex
	entries map[string]entry
}

type entry struct {
	info    GameInfo
	factory Factory
}

// Add registers f under id. The title is read from a probe instance.
func (c *Catalog) Add(id string, f Factory) error {
	if id == "" {
		return fmt.Errorf("registry: empty game id")
	}
	if f == nil {
		return fmt.Errorf("registry: nil factory for %q", id)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, dup := c.entries[id]; dup {
		return fmt.Errorf("registry: game %q already registered", id)
	}
	if c.entries == nil {
		c.entries = make(map[string]entry)
	}
	c.entries[id] = entry{info: GameInfo{ID: id, Title: f().Title()}, factory: f}
	return nil
}

// Info returns the metadata for id.
func (c *Catalog) Info(id string) (GameInfo, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[id]
	return e.info, ok
}

// List returns all entries sorted by ID.
func (c *Catalog) List() []GameInfo {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]GameInfo, 0, len(c.entries))
	for _, e := range c.entries {
		out = append(out, e.info)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Create builds a fresh game. Every call returns a separate instance, so
// concurrent sessions never share state.
func (c *Catalog) Create(id string) (Game, error) {
	c.mu.RLock()
	e, ok := c.entries[id]
	c.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}

var defaultCatalog Catalog

// Register adds a game factory to the default catalog.
// Called from a game's init(); panics on a duplicate or empty ID.
func Register(id string, f Factory) {
	if err := defaultCatalog.Add(id, f); err != nil {
		panic(err.Error())
	}
}

// List returns the games in the default catalog, sorted by ID.
func List() []GameInfo { return defaultCatalog.List() }

// Create instantiates a game from the default catalog.
func Create(id string) (Game, error) { return defaultCatalog.Create(id) }

// Exists reports whether id is in the default catalog.
func Exists(id string) bool {
	_, ok := defaultCatalog.Info(id)
	return ok
}

// Title returns the registered title for id, or id itself when unknown.
func Title(id string) string {
	if info, ok := defaultCatalog.Info(id); ok {
		return info.Title
	}
	return id
}
