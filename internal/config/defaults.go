package config

import (
	_ "embed"
	"math"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the default Flappy Bird configuration.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		World: FlappyWorld{
			ViewWidth:  144,
			ViewHeight: 256,
			GroundY:    201,
			GroundWrap: -23,
		},
		Physics: FlappyPhysics{
			Gravity:        0.1,
			JumpImpulse:    -2.5,
			RotationFactor: 0.05,
			FlapRotation:   0.4,
			MinRotation:    -math.Pi / 10,
			MaxRotation:    math.Pi/2 - 0.2,
			IdleSway:       2,
		},
		Obstacles: FlappyObstacles{
			CollisionInset:  5,
			CollisionLeeway: 1,
			ScoreTolerance:  1,
		},
		Animation: FlappyAnimation{
			WingRate:          10,
			FlapFrameVelocity: 2.5,
		},
		DayNight: FlappyDayNight{
			Length:   1800, // 30 seconds at 60fps
			FadeRate: 0.005,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Gap:          Ramp{Start: 70, Limit: 48, Step: 0.01},
			Separation:   Ramp{Start: 1.0, Limit: 0.35, Step: 0.00035},
			Speed:        Ramp{Start: 1.0, Limit: 1.3, Step: 0.0005},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "flappy":
		return defaultFlappyYAML
	default:
		return nil
	}
}
