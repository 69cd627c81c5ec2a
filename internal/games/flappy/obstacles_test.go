package flappy

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/flappy-arcade/internal/render"
)

func newTestObstacles(t *testing.T, seed int64) (*Obstacles, *render.Node, *render.Node) {
	t.Helper()
	atlas, err := render.DefaultAtlas()
	if err != nil {
		t.Fatalf("atlas: %v", err)
	}
	layer := render.NewContainer()
	floor := render.NewSprite(atlas.Texture(render.TextureFloor))
	layer.AddChild(floor)
	return NewObstacles(rand.New(rand.NewSource(seed)), 144, 201, atlas, layer, floor), layer, floor
}

func TestObstaclesSeed(t *testing.T) {
	o, layer, floor := newTestObstacles(t, 1)
	o.Generate(70, 72)

	if len(o.Pairs) != 1 {
		t.Fatalf("first call should only seed, got %d pairs", len(o.Pairs))
	}
	p := o.Pairs[0]
	if p.X != 144 || p.Center != 100.5 || p.Seq != 1 {
		t.Errorf("seed pair = %+v", p)
	}
	if top := layer.Children()[len(layer.Children())-1]; top != floor {
		t.Error("floor should stay the top-most element")
	}
}

func TestObstaclesFillToTwiceViewWidth(t *testing.T) {
	o, layer, floor := newTestObstacles(t, 1)
	o.Seed(70)
	o.Generate(70, 50)

	// 144 + 50 + 50 = 244 and 294 >= 288 stops the fill.
	if len(o.Pairs) != 3 {
		t.Fatalf("pairs = %d, want 3", len(o.Pairs))
	}
	for i, p := range o.Pairs {
		if want := 144 + 50*float64(i); p.X != want {
			t.Errorf("pair %d x = %v, want %v", i, p.X, want)
		}
		if p.Seq != i+1 {
			t.Errorf("pair %d seq = %d", i, p.Seq)
		}
	}
	if layer.ChildIndex(floor) != len(layer.Children())-1 {
		t.Error("floor should be re-asserted on top after insertion")
	}

	o.Generate(70, 50)
	if len(o.Pairs) != 3 {
		t.Errorf("full collection should not grow, got %d", len(o.Pairs))
	}
}

func TestObstaclesRemoveFrontOnly(t *testing.T) {
	o, layer, _ := newTestObstacles(t, 1)
	o.Seed(70)
	o.Generate(70, 50)
	front := o.Pairs[0]

	for _, p := range o.Pairs {
		p.X -= 171 // front lands at -27, past -pipeWidth
	}
	o.Generate(70, 50)

	if len(o.Pairs) != 2 {
		t.Fatalf("pairs = %d, want 2 after one removal", len(o.Pairs))
	}
	if o.Pairs[0].Seq != 2 {
		t.Errorf("front seq = %d, want 2", o.Pairs[0].Seq)
	}
	if layer.ChildIndex(front.node) != -1 {
		t.Error("removed pair still in the render layer")
	}

	o.Generate(70, 50)
	if len(o.Pairs) <= 2 {
		t.Error("next call should resume generating")
	}
}

func TestObstaclesEdgeOfRemoval(t *testing.T) {
	o, _, _ := newTestObstacles(t, 1)
	o.Seed(70)
	o.Pairs[0].X = -26
	o.Generate(70, 500)
	if len(o.Pairs) != 1 {
		t.Error("pair exactly at -pipeWidth should not be removed")
	}
}

func TestObstaclesPairGeometry(t *testing.T) {
	o, _, _ := newTestObstacles(t, 5)
	o.Seed(70)
	o.Generate(60, 30)

	for _, p := range o.Pairs {
		up, down := p.node.Children()[0], p.node.Children()[1]
		if math.Abs(up.Y+up.Height-p.GapTop()) > eps {
			t.Errorf("pair %d: upper pipe ends at %v, gap top %v", p.Seq, up.Y+up.Height, p.GapTop())
		}
		if down.Y != p.GapBottom() {
			t.Errorf("pair %d: lower pipe starts at %v, gap bottom %v", p.Seq, down.Y, p.GapBottom())
		}
		if p.node.X != p.X {
			t.Errorf("pair %d: node x %v, pair x %v", p.Seq, p.node.X, p.X)
		}
		if p.Seq > 1 && (p.Center < 60 || p.Center > 201-60) {
			t.Errorf("pair %d: center %v outside [60, 141]", p.Seq, p.Center)
		}
	}
}

func TestObstaclesCenterWithOversizedGap(t *testing.T) {
	o, _, _ := newTestObstacles(t, 1)
	if c := o.center(120); c != 100.5 {
		t.Errorf("center = %v, want middle of the open space", c)
	}
}

func TestObstaclesScroll(t *testing.T) {
	o, _, _ := newTestObstacles(t, 1)
	o.Seed(70)
	o.Scroll(1.5)
	if o.Pairs[0].X != 142.5 || o.Pairs[0].node.X != 142.5 {
		t.Errorf("scrolled x = %v / node %v", o.Pairs[0].X, o.Pairs[0].node.X)
	}
}

func TestObstaclesDeterministic(t *testing.T) {
	a, _, _ := newTestObstacles(t, 99)
	b, _, _ := newTestObstacles(t, 99)
	for _, o := range []*Obstacles{a, b} {
		o.Seed(70)
		o.Generate(70, 20)
	}
	if len(a.Pairs) != len(b.Pairs) {
		t.Fatalf("lengths differ: %d vs %d", len(a.Pairs), len(b.Pairs))
	}
	for i := range a.Pairs {
		if a.Pairs[i].Center != b.Pairs[i].Center {
			t.Errorf("pair %d: centers differ %v vs %v", i, a.Pairs[i].Center, b.Pairs[i].Center)
		}
	}
}
