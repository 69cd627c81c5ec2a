package flappy

import (
	"math"

	"github.com/vovakirdan/flappy-arcade/internal/config"
	"github.com/vovakirdan/flappy-arcade/internal/core"
	"github.com/vovakirdan/flappy-arcade/internal/render"
)

// wingFrames is the flap cycle; index 1 doubles as the held flap frame.
var wingFrames = [...]render.TextureID{render.TextureBird1, render.TextureBird2, render.TextureBird3, render.TextureBird2}

const flapFrame = 1

// swayRate is the idle bob speed in radians per frame.
const swayRate = 0.1

// Bird is the player. X and Y are the center of its sprite.
type Bird struct {
	X, Y          float64
	VY, AY        float64
	Rotation      float64
	Width, Height float64
	Frame         int // index into wingFrames

	startY float64
}

// NewBird places a bird of the given size centered at (x, y).
func NewBird(x, y, w, h, gravity float64) *Bird {
	return &Bird{X: x, Y: y, AY: gravity, Width: w, Height: h, startY: y}
}

// Box returns the bird's unrotated bounding box.
func (b *Bird) Box() core.Box {
	return core.BoxAround(b.X, b.Y, b.Width, b.Height)
}

// Flap sets the upward velocity. Repeated flaps do not stack.
func (b *Bird) Flap(impulse float64) {
	b.VY = impulse
}

// Step integrates one frame of gravity and turns the bird toward its
// direction of travel. The bird never rises above the top of the view.
func (b *Bird) Step(p config.FlappyPhysics) {
	b.VY += b.AY
	b.Y += b.VY

	switch {
	case b.VY > 0 && b.Rotation < p.MaxRotation:
		b.Rotation += p.RotationFactor * b.VY
	case b.VY < 0 && b.Rotation > p.MinRotation:
		b.Rotation -= p.FlapRotation
	}
	b.Rotation = core.ClampF(b.Rotation, p.MinRotation, p.MaxRotation)

	if b.Y-b.Height/2 < 0 {
		b.Y = b.Height / 2
		b.VY = 0
	}
}

// Sway bobs the bird around its start height while waiting to play.
func (b *Bird) Sway(frame int, amplitude float64) {
	b.Y = b.startY + amplitude*math.Sin(float64(frame)*swayRate)
}

// NextWingFrame advances the flap cycle. Falling at or above
// heldVelocity keeps the wings on the flap frame.
func (b *Bird) NextWingFrame(heldVelocity float64) {
	if b.VY >= heldVelocity {
		b.Frame = flapFrame
		return
	}
	b.Frame = (b.Frame + 1) % len(wingFrames)
}

// Texture returns the texture of the current wing frame.
func (b *Bird) Texture() render.TextureID {
	return wingFrames[b.Frame]
}
