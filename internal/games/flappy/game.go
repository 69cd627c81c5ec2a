// Package flappy implements a Flappy Bird-style game.
// The player flaps a bird through gaps in an endless stream of pipes.
//
// The game runs on its own frame loop: each Step delivers the frame's input
// to subscribed handlers, then ticks the loop once. The loop callback
// re-requests itself and runs the update for the current phase.
package flappy

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/flappy-arcade/internal/config"
	"github.com/vovakirdan/flappy-arcade/internal/core"
	"github.com/vovakirdan/flappy-arcade/internal/frame"
	"github.com/vovakirdan/flappy-arcade/internal/registry"
	"github.com/vovakirdan/flappy-arcade/internal/render"
)

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// Game implements the Flappy Bird game logic.
type Game struct {
	cfg       config.FlappyConfig
	fixedCfg  bool // cfg was supplied by the caller; Reset does not reload
	runtime   core.RuntimeConfig
	atlas     *render.Atlas
	diff      *config.DifficultyManager
	rng       *rand.Rand
	loop      *frame.Loop
	input     *core.Dispatcher
	wings     *frame.Throttler
	handle    frame.Handle // pending game loop request
	st        *State
	paused    bool
	highScore int
	preset    config.DifficultyPreset
}

// New creates a new Flappy Bird game instance using the loaded config.
func New() *Game {
	atlas, err := render.DefaultAtlas()
	if err != nil {
		panic(fmt.Sprintf("flappy: %v", err))
	}
	return &Game{atlas: atlas}
}

// NewWithConfig creates a game that always uses cfg.
func NewWithConfig(cfg config.FlappyConfig) *Game {
	g := New()
	g.cfg = cfg
	g.fixedCfg = true
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "flappy"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Flappy Bird"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg.WithDefaults(nil)
	if !g.fixedCfg {
		g.cfg = g.loadConfig()
	}

	g.diff = config.NewDifficultyManager(g.cfg.Difficulty)
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.loop = frame.NewLoop()
	g.input = core.NewDispatcher()
	g.wings = frame.NewThrottler(g.loop)
	g.start()
}

// loadConfig loads the config from disk, falling back to defaults.
func (g *Game) loadConfig() config.FlappyConfig {
	cfg, err := config.LoadFlappy(configPath)
	if err != nil {
		cfg = config.DefaultFlappyConfig()
	}
	config.ApplyFlappyPreset(&cfg, g.preset)
	return cfg
}

// SetDifficulty selects a preset for this instance. It takes effect on the
// next Reset. An empty name keeps the config's own difficulty.
func (g *Game) SetDifficulty(preset string) error {
	p, err := config.ParsePreset(preset)
	if err != nil {
		return err
	}
	g.preset = p
	return nil
}

// Difficulty returns the preset in effect, empty when none is applied.
func (g *Game) Difficulty() string {
	return string(g.preset)
}

// start builds a fresh session and queues its first frame.
func (g *Game) start() {
	g.st = newState(g.cfg, g.diff, g.atlas, g.rng)
	g.paused = false
	g.input.Subscribe(core.ActionPause, g.togglePause)
	g.prePlaySetup()
	g.handle = g.loop.RequestFrame(g.gameLoop)
}

// restart tears the session down and starts over at the get-ready screen.
func (g *Game) restart() {
	g.loop.Cancel(g.handle)
	g.wings.Stop()
	g.input.CancelAll()
	g.start()
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.paused {
		if in.Has(core.ActionPause) {
			g.paused = false
		}
		return core.StepResult{State: g.State()}
	}

	g.input.Dispatch(in)
	if !g.paused {
		g.loop.Tick(g.runtime.TickInterval())
	}
	return core.StepResult{State: g.State()}
}

func (g *Game) togglePause() {
	if g.st.Phase == PhasePrePlay || g.st.Phase == PhasePlay {
		g.paused = !g.paused
	}
}

// gameLoop runs once per frame.
func (g *Game) gameLoop() {
	g.handle = g.loop.RequestFrame(g.gameLoop)

	switch g.st.Phase {
	case PhasePrePlay:
		g.prePlay()
	case PhasePlay:
		g.play()
	case PhasePreLost:
		g.preLost()
	case PhaseLost:
		g.lost()
	}
	g.st.sync(g.atlas)
}

// prePlaySetup waits for the first flap. The starter fires once and then
// cancels itself; the flap handler stays until the bird crashes.
func (g *Game) prePlaySetup() {
	st := g.st
	st.Phase = PhasePrePlay
	st.starter = g.input.Subscribe(core.ActionJump, func() {
		st.Phase = PhasePlay
		st.ready.Visible = false
		st.digits.Visible = true
		st.starter.Cancel()
	})
	st.flap = g.input.Subscribe(core.ActionJump, func() {
		st.Bird.Flap(g.cfg.Physics.JumpImpulse)
	})
}

func (g *Game) prePlay() {
	st := g.st
	g.animateWings()
	st.idle++
	st.Bird.Sway(st.idle, g.cfg.Physics.IdleSway)
	st.Ground.Step(st.Tuning.Speed)
	st.Obstacles.Generate(st.Tuning.Gap, g.separation())
}

func (g *Game) play() {
	st := g.st
	g.animateWings()
	st.Bird.Step(g.cfg.Physics)
	st.Ground.Step(st.Tuning.Speed)
	st.Obstacles.Generate(st.Tuning.Gap, g.separation())
	st.Obstacles.Scroll(st.Tuning.Speed)

	if st.Score.CheckScore(st.Bird.X, st.Obstacles.Pairs) > 0 {
		RenderScore(st.digits, g.atlas, st.Score.Score, g.cfg.World.ViewWidth)
	}

	margins := Margins{Inset: g.cfg.Obstacles.CollisionInset, Leeway: g.cfg.Obstacles.CollisionLeeway}
	if CheckCollision(st.Bird, st.Obstacles.Pairs, st.Ground.Y, margins) {
		st.Bird.VY = 0
		st.Phase = PhasePreLost
		return
	}

	st.Tuning = g.diff.Advance(st.Tuning)
	st.Sky.Step()
}

// preLost freezes the world and arms the restart handler.
func (g *Game) preLost() {
	st := g.st
	st.Tuning.Speed = 0
	st.starter.Cancel()
	st.flap.Cancel()
	st.over.Visible = true
	st.restart = g.input.Subscribe(core.ActionRestart, g.restart)
	st.Phase = PhaseLost
}

// lost lets the bird drop onto the ground and rest there.
func (g *Game) lost() {
	st := g.st
	st.Bird.Step(g.cfg.Physics)
	if CheckGround(st.Bird, st.Ground.Y) {
		st.Bird.VY = 0
	}
}

func (g *Game) animateWings() {
	g.wings.Throttle(g.cfg.Animation.WingRate, g.flapWings)
}

func (g *Game) flapWings() {
	g.st.Bird.NextWingFrame(g.cfg.Animation.FlapFrameVelocity)
	g.st.sync(g.atlas)
}

// separation converts the ramped spacing fraction to pixels.
func (g *Game) separation() float64 {
	return g.st.Tuning.Separation * g.cfg.World.ViewWidth
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.st == nil {
		return
	}
	w := g.cfg.World
	v := render.FitViewport(w.ViewWidth, w.ViewHeight, dst.Width(), dst.Height())
	render.Rasterize(g.st.root, dst, v)

	mid := v.Cells.Y + v.Cells.H/2
	switch {
	case g.paused:
		drawPanel(dst, mid, []panelLine{
			{"PAUSED", core.ColorBrightWhite},
			{"Press P to resume", core.ColorWhite},
		})
	case g.st.Phase == PhaseLost:
		lines := []panelLine{{fmt.Sprintf("Score: %d", g.st.Score.Score), core.ColorBrightWhite}}
		if g.highScore > 0 {
			lines = append(lines, panelLine{fmt.Sprintf("Best: %d", g.highScore), core.ColorBrightYellow})
		}
		lines = append(lines, panelLine{"Press R to restart", core.ColorWhite})
		drawPanel(dst, mid, lines)
	}
}

type panelLine struct {
	text  string
	color core.Color
}

// drawPanel draws a blanked, boxed panel centered on row mid.
func drawPanel(dst *core.Screen, mid int, lines []panelLine) {
	inner := 0
	for _, l := range lines {
		inner = max(inner, len([]rune(l.text)))
	}
	w, h := inner+4, len(lines)+2
	r := core.NewRect((dst.Width()-w)/2, mid-h/2, w, h)

	dst.DrawRect(r, core.Cell{Rune: ' '})
	dst.DrawBox(r, core.ColorWhite)
	for i, l := range lines {
		dst.DrawTextCentered(r.Y+1+i, l.text, l.color)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.st == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.st.Score.Score,
		GameOver: g.st.Phase == PhaseLost,
		Paused:   g.paused,
		Phase:    g.st.Phase.String(),
	}
}

// SetHighScore sets the best score shown after a crash.
func (g *Game) SetHighScore(score int) {
	g.highScore = score
}

// HighScore returns the best score set by the platform.
func (g *Game) HighScore() int {
	return g.highScore
}

// Phase returns the active phase.
func (g *Game) Phase() Phase {
	return g.st.Phase
}

// Scene returns the root of the display tree.
func (g *Game) Scene() *render.Node {
	return g.st.root
}

// ViewSize returns the world size in pixels.
func (g *Game) ViewSize() (float64, float64) {
	return g.cfg.World.ViewWidth, g.cfg.World.ViewHeight
}

// Register the game with the registry
func init() {
	registry.Register("flappy", func() registry.Game {
		return New()
	})
}
