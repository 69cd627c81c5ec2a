package flappy

import "github.com/vovakirdan/flappy-arcade/internal/core"

// Margins loosen the bird's hitbox against pipes.
type Margins struct {
	Inset  float64 // trimmed off each side of the bird horizontally
	Leeway float64 // slack at the gap's top and bottom edges
}

// CheckGround reports whether the bird has sunk below groundY and, if so,
// rests it on the ground. A bird exactly touching the ground is safe.
func CheckGround(b *Bird, groundY float64) bool {
	if b.Y+b.Height/2 > groundY {
		b.Y = groundY - b.Height/2
		return true
	}
	return false
}

// CheckCollision reports whether the bird hits the ground or any pipe.
// The ground check always runs and clamps the bird.
func CheckCollision(b *Bird, pairs []*Pair, groundY float64, m Margins) bool {
	collided := CheckGround(b, groundY)

	box := b.Box()
	span := box.Inset(m.Inset, 0)
	for _, p := range pairs {
		if !span.OverlapsX(core.Box{Left: p.X, Right: p.Right()}) {
			continue
		}
		if box.Top < p.GapTop()-m.Leeway || box.Bottom > p.GapBottom()+m.Leeway {
			collided = true
		}
	}
	return collided
}
