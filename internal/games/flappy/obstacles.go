package flappy

import (
	"math/rand"

	"github.com/vovakirdan/flappy-arcade/internal/render"
)

// Pair is an upper and lower pipe around a gap. X is the left edge.
type Pair struct {
	Seq    int // generation order, starting at 1
	X      float64
	Center float64
	Gap    float64
	Width  float64

	node *render.Node
}

// GapTop returns the y of the upper pipe's lower edge.
func (p *Pair) GapTop() float64 {
	return p.Center - p.Gap/2
}

// GapBottom returns the y of the lower pipe's upper edge.
func (p *Pair) GapBottom() float64 {
	return p.Center + p.Gap/2
}

// Right returns the x of the trailing edge.
func (p *Pair) Right() float64 {
	return p.X + p.Width
}

// Obstacles generates, scrolls and recycles pipe pairs. Pairs are kept
// oldest first, which is also ascending X.
type Obstacles struct {
	Pairs []*Pair

	rng       *rand.Rand
	viewW     float64
	openSpace float64
	upper     *render.Texture
	lower     *render.Texture
	layer     *render.Node // receives pair containers
	ground    *render.Node // kept above every pair in layer
	nextSeq   int
}

// NewObstacles creates an empty generator drawing into layer.
func NewObstacles(rng *rand.Rand, viewW, openSpace float64, atlas *render.Atlas, layer, ground *render.Node) *Obstacles {
	return &Obstacles{
		rng:       rng,
		viewW:     viewW,
		openSpace: openSpace,
		upper:     atlas.Texture(render.TexturePipeUp),
		lower:     atlas.Texture(render.TexturePipeDown),
		layer:     layer,
		ground:    ground,
	}
}

// Seed adds the first pair, centered in the open space just off the
// right edge of the view.
func (o *Obstacles) Seed(gap float64) {
	o.add(o.viewW, o.openSpace/2, gap)
}

// Generate recycles or creates pairs. If the oldest pair has fully left the
// view it is removed and nothing else happens this call. Otherwise pairs
// are appended every separation pixels until they reach twice the view
// width.
func (o *Obstacles) Generate(gap, separation float64) {
	if len(o.Pairs) == 0 {
		o.Seed(gap)
		return
	}

	front := o.Pairs[0]
	if front.X < -front.Width {
		o.layer.RemoveChild(front.node)
		o.Pairs[0] = nil
		o.Pairs = o.Pairs[1:]
		return
	}

	if separation <= 0 {
		return
	}
	limit := 2 * o.viewW
	for next := o.last().X + separation; next < limit; next += separation {
		o.add(next, o.center(gap), gap)
	}
}

// Scroll moves every pair left by speed.
func (o *Obstacles) Scroll(speed float64) {
	for _, p := range o.Pairs {
		p.X -= speed
		p.node.X = p.X
	}
}

func (o *Obstacles) last() *Pair {
	return o.Pairs[len(o.Pairs)-1]
}

// center picks a gap center uniformly in [gap, openSpace-gap], or the
// middle of the open space when the gap is too large for that range.
func (o *Obstacles) center(gap float64) float64 {
	lo, hi := gap, o.openSpace-gap
	if hi <= lo {
		return o.openSpace / 2
	}
	return lo + o.rng.Float64()*(hi-lo)
}

func (o *Obstacles) add(x, center, gap float64) {
	o.nextSeq++
	p := &Pair{
		Seq:    o.nextSeq,
		X:      x,
		Center: center,
		Gap:    gap,
		Width:  o.upper.Width,
		node:   render.NewContainer(),
	}
	p.node.X = x

	up := render.NewSprite(o.upper)
	up.Y = p.GapTop() - up.Height
	down := render.NewSprite(o.lower)
	down.Y = p.GapBottom()
	p.node.AddChild(up)
	p.node.AddChild(down)

	o.Pairs = append(o.Pairs, p)
	o.layer.AddChild(p.node)
	o.layer.BringToFront(o.ground)
}
