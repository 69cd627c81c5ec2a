// Package web runs arcade games on Ebitengine, natively in a window or
// compiled to WebAssembly for the browser.
package web

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/flappy-arcade/internal/core"
	"github.com/vovakirdan/flappy-arcade/internal/registry"
	"github.com/vovakirdan/flappy-arcade/internal/render"
)

// Ebitengine's debug font cell.
const (
	glyphW = 6
	glyphH = 16
)

// Playable is a game that exposes its display tree.
type Playable interface {
	registry.Game
	render.Scene
}

// Input reports the keys and pointer presses of the current tick.
type Input interface {
	KeyPressed(k ebiten.Key) bool
	Tapped() bool
}

// pointerInput reads Ebitengine's just-pressed state.
type pointerInput struct {
	touches []ebiten.TouchID
}

func (pointerInput) KeyPressed(k ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(k)
}

func (p *pointerInput) Tapped() bool {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return true
	}
	p.touches = inpututil.AppendJustPressedTouchIDs(p.touches[:0])
	return len(p.touches) > 0
}

// Game adapts a Playable to ebiten.Game.
type Game struct {
	play      Playable
	input     Input
	frame     core.InputFrame
	state     core.GameState
	pixel     *ebiten.Image
	reported  bool
	highScore int

	// OnGameOver is called once per finished run with its score.
	OnGameOver func(score int)
}

// NewGame wraps play. The game must already be Reset.
func NewGame(play Playable) *Game {
	return &Game{
		play:  play,
		input: &pointerInput{},
		frame: core.NewInputFrame(),
	}
}

// SetHighScore seeds the best score shown after a crash.
func (g *Game) SetHighScore(score int) {
	g.highScore = score
	if hs, ok := g.play.(registry.HighScoreSetter); ok {
		hs.SetHighScore(score)
	}
}

// HighScore returns the best score seen.
func (g *Game) HighScore() int {
	return g.highScore
}

// Update advances the game by one tick.
func (g *Game) Update() error {
	collectInput(g.input, g.state, &g.frame)
	g.state = g.play.Step(g.frame).State
	g.frame.Clear()

	switch {
	case !g.state.GameOver:
		g.reported = false
	case !g.reported:
		g.reported = true
		if g.state.Score > g.highScore {
			g.SetHighScore(g.state.Score)
		}
		if g.OnGameOver != nil {
			g.OnGameOver(g.state.Score)
		}
	}
	return nil
}

// collectInput maps keys and taps to actions. A tap also restarts once
// the run is over so touch screens need no keyboard.
func collectInput(in Input, st core.GameState, frame *core.InputFrame) {
	if in.KeyPressed(ebiten.KeySpace) || in.KeyPressed(ebiten.KeyArrowUp) || in.KeyPressed(ebiten.KeyW) {
		frame.Set(core.ActionJump)
	}
	if in.KeyPressed(ebiten.KeyP) || in.KeyPressed(ebiten.KeyEscape) {
		frame.Set(core.ActionPause)
	}
	if in.KeyPressed(ebiten.KeyR) {
		frame.Set(core.ActionRestart)
	}
	if in.Tapped() {
		if st.GameOver {
			frame.Set(core.ActionRestart)
		} else {
			frame.Set(core.ActionJump)
		}
	}
}

// Draw renders the display tree in world pixels.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	if g.pixel == nil {
		g.pixel = ebiten.NewImage(1, 1)
		g.pixel.Fill(color.White)
	}

	for _, op := range render.Flatten(g.play.Scene()) {
		tex := op.Texture
		b := op.Bounds()
		if tex.Point {
			drawLabel(screen, string(tex.Glyph), (b.Left+b.Right)/2, (b.Top+b.Bottom)/2)
			continue
		}

		var opts ebiten.DrawImageOptions
		opts.GeoM = spriteGeoM(op)
		opts.ColorScale.ScaleWithColor(tex.Fill)
		opts.ColorScale.ScaleAlpha(float32(op.Alpha))
		screen.DrawImage(g.pixel, &opts)

		if tex.Label != "" {
			drawLabel(screen, tex.Label, (b.Left+b.Right)/2, (b.Top+b.Bottom)/2)
		}
	}

	g.drawOverlay(screen)
}

func (g *Game) drawOverlay(screen *ebiten.Image) {
	w, h := g.play.ViewSize()
	mid := h / 2
	switch {
	case g.state.Paused:
		drawLabel(screen, "PAUSED", w/2, mid)
		drawLabel(screen, "P to resume", w/2, mid+glyphH)
	case g.state.GameOver:
		drawLabel(screen, fmt.Sprintf("Score %d", g.state.Score), w/2, mid)
		if g.highScore > 0 {
			drawLabel(screen, fmt.Sprintf("Best %d", g.highScore), w/2, mid+glyphH)
		}
		drawLabel(screen, "Tap or R", w/2, mid+2*glyphH)
	}
}

// spriteGeoM maps the unit pixel onto the sprite: scale to size, move the
// pivot to the origin, rotate, then place the pivot at its world position.
func spriteGeoM(op render.DrawOp) ebiten.GeoM {
	var m ebiten.GeoM
	m.Scale(op.Width, op.Height)
	m.Translate(-op.PivotX, -op.PivotY)
	m.Rotate(op.Rotation)
	m.Translate(op.X, op.Y)
	return m
}

// drawLabel prints s centered on (cx, cy).
func drawLabel(screen *ebiten.Image, s string, cx, cy float64) {
	x := int(cx) - len(s)*glyphW/2
	y := int(cy) - glyphH/2
	ebitenutil.DebugPrintAt(screen, s, x, y)
}

// Layout keeps the logical screen at the world size; Ebitengine scales it.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.play.ViewSize()
	return int(w), int(h)
}

// State returns the state seen on the last Update.
func (g *Game) State() core.GameState {
	return g.state
}

// Run opens a window scaled by zoom and blocks until it closes.
func Run(g *Game, title string, zoom int) error {
	w, h := g.play.ViewSize()
	ebiten.SetWindowSize(int(w)*zoom, int(h)*zoom)
	ebiten.SetWindowTitle(title)
	ebiten.SetTPS(60)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("web: %w", err)
	}
	return nil
}
