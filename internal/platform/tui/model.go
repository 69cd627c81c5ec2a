package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-arcade/internal/core"
	"github.com/vovakirdan/flappy-arcade/internal/registry"
	"github.com/vovakirdan/flappy-arcade/internal/storage"
)

// GameOptions configures a GameModel.
type GameOptions struct {
	Player     string // recorded with saved scores; empty means storage.LocalPlayer
	Difficulty string // preset applied before Reset, empty keeps the config's own
	Logger     *log.Logger
	Renderer   *ScreenRenderer
	Embedded   bool   // B leaves to the parent menu instead of being ignored
	Gen        uint64 // tick generation, see TickMsg
}

// GameModel is the Bubble Tea model for running a single game.
// It is used standalone by `arcade play` and inside a SessionModel.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	opts       GameOptions
	logger     *log.Logger
	renderer   *ScreenRenderer
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	highScore  int
	quitting   bool
	backToMenu bool
	scoreSaved bool // score already recorded for the current game over
}

// NewGameModel creates a game model. The best score on record is passed to
// the game so it can show it after a crash.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts GameOptions) GameModel {
	cfg = cfg.WithDefaults(time.Now)

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	renderer := opts.Renderer
	if renderer == nil {
		renderer = NewScreenRenderer(nil)
	}

	m := GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		opts:       opts,
		logger:     logger,
		renderer:   renderer,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}

	if ds, ok := game.(registry.DifficultySetter); ok {
		if err := ds.SetDifficulty(opts.Difficulty); err != nil {
			logger.Warn("ignoring difficulty", "difficulty", opts.Difficulty, "error", err)
		}
	}

	if store != nil {
		high, err := store.HighScore(game.ID())
		if err != nil {
			logger.Warn("could not load high score", "game", game.ID(), "error", err)
		}
		m.highScore = high
	}
	m.publishHighScore()

	return m
}

// Init starts the game and its tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.opts.Gen, m.config.TickInterval())
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.keyMapper.MapMouseToFrame(msg, m.game.State(), &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		// The scene is scaled to the screen, so a resize never resets the run.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		if msg.Gen != m.opts.Gen {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	switch {
	case isQuit:
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionBack:
		if m.opts.Embedded && (m.gameState.GameOver || m.gameState.Paused) {
			m.backToMenu = true
		}
		return m, nil
	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleTick runs one simulation step and records the score on game over.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if !m.gameState.GameOver {
		m.scoreSaved = false
	} else if !m.scoreSaved {
		m.recordScore()
		m.scoreSaved = true
	}

	return m, tickCmd(m.opts.Gen, m.config.TickInterval())
}

// recordScore saves a finished run. Storage errors are logged and the
// game carries on.
func (m *GameModel) recordScore() {
	score := m.gameState.Score
	if score <= 0 {
		return
	}

	if m.store != nil {
		_, err := m.store.SaveScore(storage.ScoreEntry{
			GameID:     m.game.ID(),
			Player:     m.opts.Player,
			Difficulty: m.opts.Difficulty,
			Score:      score,
		})
		if err != nil {
			m.logger.Warn("could not save score", "game", m.game.ID(), "score", score, "error", err)
		} else {
			m.logger.Debug("score saved", "game", m.game.ID(), "player", m.opts.Player, "score", score)
		}
	}

	if score > m.highScore {
		m.highScore = score
		m.publishHighScore()
	}
}

func (m *GameModel) publishHighScore() {
	if hs, ok := m.game.(registry.HighScoreSetter); ok {
		hs.SetHighScore(m.highScore)
	}
}

// saveScreenshot writes the current frame as plain text under
// ~/.arcade/screenshots.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return m.renderer.Render(m.screen)
}

// State returns the game state seen on the last tick.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// HighScore returns the best score known to this model.
func (m GameModel) HighScore() int {
	return m.highScore
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a standalone Bubble Tea program for the given game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts GameOptions) error {
	model := NewGameModel(game, store, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // left click flaps
	)

	_, err := p.Run()
	return err
}
