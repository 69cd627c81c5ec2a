package flappy

import (
	"math/rand"

	"github.com/vovakirdan/flappy-arcade/internal/config"
	"github.com/vovakirdan/flappy-arcade/internal/core"
	"github.com/vovakirdan/flappy-arcade/internal/render"
)

// Phase is the active stage of a session.
type Phase int

const (
	PhasePrePlay Phase = iota // waiting for the first flap
	PhasePlay
	PhasePreLost // one frame of teardown after a crash
	PhaseLost
)

var phaseNames = [...]string{"pre-play", "play", "pre-lost", "lost"}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return "unknown"
	}
	return phaseNames[p]
}

// overlayTop is the y of the get-ready and game-over banners.
const overlayTop = 60

// State is one session, from the get-ready screen to the crash.
// Restarting replaces it wholesale.
type State struct {
	Phase     Phase
	Bird      *Bird
	Ground    Ground
	Obstacles *Obstacles
	Score     ScoreTracker
	Tuning    config.Difficulty
	Sky       DayNight
	idle      int // pre-play frames, drives the sway

	// Display tree: root = [world, bird, hud];
	// world = [day, night, pairs..., floor]; hud = [digits, ready, over].
	root   *render.Node
	world  *render.Node
	hud    *render.Node
	digits *render.Node
	bird   *render.Node
	floor  *render.Node
	day    *render.Node
	night  *render.Node
	ready  *render.Node
	over   *render.Node

	starter *core.Subscription
	flap    *core.Subscription
	restart *core.Subscription
}

func newState(cfg config.FlappyConfig, diff *config.DifficultyManager, atlas *render.Atlas, rng *rand.Rand) *State {
	w := cfg.World
	st := &State{
		Phase:  PhasePrePlay,
		Ground: Ground{Y: w.GroundY, Wrap: w.GroundWrap},
		Score:  ScoreTracker{Tolerance: cfg.Obstacles.ScoreTolerance},
		Tuning: diff.Initial(),
		Sky:    NewDayNight(cfg.DayNight.Length, cfg.DayNight.FadeRate),
		root:   render.NewContainer(),
		world:  render.NewContainer(),
		hud:    render.NewContainer(),
		digits: render.NewContainer(),
	}

	st.day = render.NewSprite(atlas.Texture(render.TextureDayBackground))
	st.night = render.NewSprite(atlas.Texture(render.TextureNightBackground))
	st.night.Alpha = 0
	st.floor = render.NewSprite(atlas.Texture(render.TextureFloor))
	st.floor.Y = w.GroundY
	st.world.AddChild(st.day)
	st.world.AddChild(st.night)
	st.world.AddChild(st.floor)

	tex := atlas.Texture(wingFrames[0])
	st.Bird = NewBird(w.ViewWidth/2-tex.Width, w.GroundY/2-tex.Height/2, tex.Width, tex.Height, cfg.Physics.Gravity)
	st.bird = render.NewSprite(tex)
	st.bird.SetPivot(tex.Width/2, tex.Height/2)

	st.ready = banner(atlas.Texture(render.TextureGetReady), w.ViewWidth)
	st.over = banner(atlas.Texture(render.TextureGameOver), w.ViewWidth)
	st.over.Visible = false
	st.digits.Visible = false
	st.hud.AddChild(st.digits)
	st.hud.AddChild(st.ready)
	st.hud.AddChild(st.over)

	st.root.AddChild(st.world)
	st.root.AddChild(st.bird)
	st.root.AddChild(st.hud)

	st.Obstacles = NewObstacles(rng, w.ViewWidth, w.GroundY, atlas, st.world, st.floor)
	st.Obstacles.Seed(st.Tuning.Gap)
	RenderScore(st.digits, atlas, 0, w.ViewWidth)
	st.sync(atlas)
	return st
}

func banner(tex *render.Texture, viewW float64) *render.Node {
	n := render.NewSprite(tex)
	n.X = (viewW - tex.Width) / 2
	n.Y = overlayTop
	return n
}

// sync copies the simulation onto the display tree.
func (st *State) sync(atlas *render.Atlas) {
	st.bird.X = st.Bird.X
	st.bird.Y = st.Bird.Y
	st.bird.Rotation = st.Bird.Rotation
	st.bird.SetTexture(atlas.Texture(st.Bird.Texture()))
	st.floor.X = st.Ground.X
	st.day.Alpha = st.Sky.DayAlpha
	st.night.Alpha = st.Sky.NightAlpha
}
