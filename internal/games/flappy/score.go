package flappy

import (
	"strconv"

	"github.com/vovakirdan/flappy-arcade/internal/render"
)

// digitSpacing is the gap between score digits in pixels.
const digitSpacing = 1

// scoreTop is the y of the score digits.
const scoreTop = 10

// ScoreTracker counts passed pairs. Each pair scores at most once,
// whatever the scroll speed or step size.
type ScoreTracker struct {
	Score     int
	Tolerance float64

	lastSeq int
}

// CheckScore counts pairs whose trailing edge has reached the bird's
// center since the last call. It returns how many scored.
func (s *ScoreTracker) CheckScore(birdX float64, pairs []*Pair) int {
	scored := 0
	for _, p := range pairs {
		if p.Seq <= s.lastSeq {
			continue
		}
		if p.Right() <= birdX+s.Tolerance {
			s.lastSeq = p.Seq
			s.Score++
			scored++
		}
	}
	return scored
}

// RenderScore rebuilds digits as a row of digit sprites centered
// horizontally at the top of a view viewW pixels wide.
func RenderScore(digits *render.Node, atlas *render.Atlas, score int, viewW float64) {
	digits.RemoveChildren()
	if score < 0 {
		score = 0
	}

	x := 0.0
	for _, r := range strconv.Itoa(score) {
		sprite := render.NewSprite(atlas.Texture(render.DigitTexture(int(r - '0'))))
		sprite.X = x
		digits.AddChild(sprite)
		x += sprite.Width + digitSpacing
	}

	width := x - digitSpacing
	digits.X = (viewW - width) / 2
	digits.Y = scoreTop
}
