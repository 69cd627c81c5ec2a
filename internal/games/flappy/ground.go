package flappy

// Ground is the scrolling floor strip. X stays in (Wrap, 0].
type Ground struct {
	X    float64
	Y    float64 // top edge; the playable space ends here
	Wrap float64 // negative offset of one floor tile
}

// Step scrolls the floor left and wraps it once a full tile has passed.
func (g *Ground) Step(speed float64) {
	g.X -= speed
	if g.X <= g.Wrap {
		g.X = 0
	}
}
