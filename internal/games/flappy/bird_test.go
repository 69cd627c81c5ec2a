package flappy

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/flappy-arcade/internal/config"
)

const eps = 1e-9

func TestBirdStepKinematics(t *testing.T) {
	phys := config.DefaultFlappyConfig().Physics
	tests := []struct {
		name   string
		vy     float64
		steps  int
		wantVY float64
		wantY  float64
	}{
		{"from rest one step", 0, 1, 0.1, 100.1},
		{"from rest ten steps", 0, 10, 1.0, 105.5},
		{"after flap", -2.5, 1, -2.4, 97.6},
		{"flap apex", -2.5, 25, 0, 100 - 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBird(55, 100, 17, 12, phys.Gravity)
			b.VY = tt.vy
			for i := 0; i < tt.steps; i++ {
				b.Step(phys)
			}
			if math.Abs(b.VY-tt.wantVY) > 1e-6 {
				t.Errorf("vy = %v, want %v", b.VY, tt.wantVY)
			}
			if math.Abs(b.Y-tt.wantY) > 1e-6 {
				t.Errorf("y = %v, want %v", b.Y, tt.wantY)
			}
		})
	}
}

func TestBirdCeilingClamp(t *testing.T) {
	phys := config.DefaultFlappyConfig().Physics
	b := NewBird(55, 7, 17, 12, phys.Gravity)
	b.Flap(phys.JumpImpulse)
	b.Step(phys)

	if b.Y != 6 {
		t.Errorf("y = %v, want bird top on the ceiling (6)", b.Y)
	}
	if b.VY != 0 {
		t.Errorf("vy = %v, want 0 after hitting the ceiling", b.VY)
	}
}

func TestBirdRotationStaysClamped(t *testing.T) {
	phys := config.DefaultFlappyConfig().Physics
	rng := rand.New(rand.NewSource(3))
	b := NewBird(55, 100, 17, 12, phys.Gravity)

	for i := 0; i < 5000; i++ {
		if rng.Intn(20) == 0 {
			b.Flap(phys.JumpImpulse)
		}
		b.Step(phys)
		if b.Rotation < phys.MinRotation-eps || b.Rotation > phys.MaxRotation+eps {
			t.Fatalf("step %d: rotation %v outside [%v, %v]", i, b.Rotation, phys.MinRotation, phys.MaxRotation)
		}
		if b.Y > 180 {
			b.Y = 100
		}
	}
}

func TestBirdRotationDirection(t *testing.T) {
	phys := config.DefaultFlappyConfig().Physics

	b := NewBird(55, 100, 17, 12, phys.Gravity)
	b.VY = 2
	b.Step(phys)
	if math.Abs(b.Rotation-0.05*2.1) > eps {
		t.Errorf("falling rotation = %v, want %v", b.Rotation, 0.05*2.1)
	}

	b = NewBird(55, 100, 17, 12, phys.Gravity)
	b.Flap(phys.JumpImpulse)
	b.Step(phys)
	if b.Rotation != phys.MinRotation {
		t.Errorf("rising rotation = %v, want clamp at %v", b.Rotation, phys.MinRotation)
	}
}

func TestBirdWingFrames(t *testing.T) {
	b := NewBird(55, 100, 17, 12, 0.1)
	want := []int{1, 2, 3, 0, 1}
	for i, w := range want {
		b.NextWingFrame(2.5)
		if b.Frame != w {
			t.Errorf("advance %d: frame = %d, want %d", i, b.Frame, w)
		}
	}
	if got := b.Texture(); got != wingFrames[1] {
		t.Errorf("texture = %v, want %v", got, wingFrames[1])
	}
}

func TestBirdWingFrameHeldWhileFalling(t *testing.T) {
	b := NewBird(55, 100, 17, 12, 0.1)
	b.Frame = 2
	b.VY = 2.5
	for i := 0; i < 3; i++ {
		b.NextWingFrame(2.5)
		if b.Frame != flapFrame {
			t.Fatalf("advance %d: frame = %d, want held flap frame", i, b.Frame)
		}
	}
}

func TestBirdSway(t *testing.T) {
	b := NewBird(55, 100, 17, 12, 0.1)
	for i := 0; i < 200; i++ {
		b.Sway(i, 2)
		if math.Abs(b.Y-100) > 2+eps {
			t.Fatalf("frame %d: sway y = %v beyond ±2 of 100", i, b.Y)
		}
	}
}

func TestGroundOffsetRange(t *testing.T) {
	for _, speed := range []float64{0.5, 1, 1.3, 7} {
		g := Ground{Y: 201, Wrap: -23}
		for i := 0; i < 2000; i++ {
			g.Step(speed)
			if g.X <= -23 || g.X > 0 {
				t.Fatalf("speed %v step %d: offset %v outside (-23, 0]", speed, i, g.X)
			}
		}
	}
}

func TestGroundWrapsAtThreshold(t *testing.T) {
	g := Ground{X: -22, Wrap: -23}
	g.Step(1)
	if g.X != 0 {
		t.Errorf("offset = %v, want wrap to 0 at the threshold", g.X)
	}
}

func TestDayNightCycle(t *testing.T) {
	d := NewDayNight(10, 0.25)
	for i := 0; i < 9; i++ {
		d.Step()
	}
	if d.Night || d.DayAlpha != 1 || d.NightAlpha != 0 {
		t.Fatalf("before switch: %+v", d)
	}

	d.Step()
	if !d.Night {
		t.Fatal("expected night after Length frames")
	}
	if d.DayAlpha != 0.75 || d.NightAlpha != 0.25 {
		t.Errorf("first fade frame: day %v night %v", d.DayAlpha, d.NightAlpha)
	}

	for i := 0; i < 5; i++ {
		d.Step()
	}
	if d.DayAlpha != 0 || d.NightAlpha != 1 {
		t.Errorf("fade should clamp: day %v night %v", d.DayAlpha, d.NightAlpha)
	}

	for i := 0; i < 5; i++ {
		d.Step()
	}
	if d.Night {
		t.Error("expected day again after two Lengths")
	}
}
