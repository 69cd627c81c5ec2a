package flappy

import (
	"testing"

	"github.com/vovakirdan/flappy-arcade/internal/render"
)

func TestCheckScoreOncePerPair(t *testing.T) {
	// 60 px/s of scroll at 30 and 120 steps per second.
	for _, speed := range []float64{2, 0.5, 1.3} {
		s := ScoreTracker{Tolerance: 1}
		pair := &Pair{Seq: 1, X: 144, Width: 26}
		total := 0
		for pair.X > -40 {
			pair.X -= speed
			n := s.CheckScore(55, []*Pair{pair})
			if n > 0 && pair.Right() > 56 {
				t.Errorf("speed %v: scored before the trailing edge reached the bird (x=%v)", speed, pair.X)
			}
			total += n
		}
		if total != 1 || s.Score != 1 {
			t.Errorf("speed %v: scored %d times (score %d), want 1", speed, total, s.Score)
		}
	}
}

func TestCheckScoreSeveralPairsInOneCall(t *testing.T) {
	s := ScoreTracker{Tolerance: 1}
	pairs := []*Pair{
		{Seq: 1, X: -10, Width: 26},
		{Seq: 2, X: 20, Width: 26},
		{Seq: 3, X: 100, Width: 26},
	}
	if n := s.CheckScore(55, pairs); n != 2 {
		t.Errorf("scored %d, want 2", n)
	}
	if n := s.CheckScore(55, pairs); n != 0 {
		t.Errorf("rescored %d, want 0", n)
	}

	pairs = append(pairs, &Pair{Seq: 4, X: 25, Width: 26})
	if n := s.CheckScore(55, pairs); n != 1 || s.Score != 3 {
		t.Errorf("new pair scored %d (total %d), want 1 (3)", n, s.Score)
	}
}

func TestRenderScore(t *testing.T) {
	atlas, err := render.DefaultAtlas()
	if err != nil {
		t.Fatal(err)
	}
	digits := render.NewContainer()

	RenderScore(digits, atlas, 123, 144)
	kids := digits.Children()
	if len(kids) != 3 {
		t.Fatalf("digits = %d, want 3", len(kids))
	}
	for i, want := range []render.TextureID{render.TextureDigit1, render.TextureDigit2, render.TextureDigit3} {
		if kids[i].Texture.ID != want {
			t.Errorf("digit %d texture = %v, want %v", i, kids[i].Texture.ID, want)
		}
		if kids[i].X != float64(i*8) {
			t.Errorf("digit %d x = %v, want %d", i, kids[i].X, i*8)
		}
	}
	if digits.X != (144-23)/2.0 {
		t.Errorf("group x = %v, want centered at %v", digits.X, (144-23)/2.0)
	}

	RenderScore(digits, atlas, 7, 144)
	if len(digits.Children()) != 1 {
		t.Errorf("rebuild should clear old digits, got %d", len(digits.Children()))
	}
	if digits.X != (144-7)/2.0 {
		t.Errorf("single digit x = %v", digits.X)
	}
}
