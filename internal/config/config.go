// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

import (
	"errors"
	"fmt"
	"math"
)

// FlappyConfig contains all configuration for the Flappy Bird game.
type FlappyConfig struct {
	World      FlappyWorld      `yaml:"world"`
	Physics    FlappyPhysics    `yaml:"physics"`
	Obstacles  FlappyObstacles  `yaml:"obstacles"`
	Animation  FlappyAnimation  `yaml:"animation"`
	DayNight   FlappyDayNight   `yaml:"day_night"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// FlappyWorld defines the world geometry in pixels.
type FlappyWorld struct {
	ViewWidth  float64 `yaml:"view_width"`
	ViewHeight float64 `yaml:"view_height"`
	GroundY    float64 `yaml:"ground_y"`    // Top of the floor; the open space above it is playable
	GroundWrap float64 `yaml:"ground_wrap"` // Floor offset at which scrolling wraps back to zero
}

// FlappyPhysics defines physics parameters for Flappy Bird.
type FlappyPhysics struct {
	Gravity        float64 `yaml:"gravity"`
	JumpImpulse    float64 `yaml:"jump_impulse"`
	RotationFactor float64 `yaml:"rotation_factor"` // Nose-down turn per unit of downward velocity
	FlapRotation   float64 `yaml:"flap_rotation"`   // Nose-up turn per frame while rising
	MinRotation    float64 `yaml:"min_rotation"`
	MaxRotation    float64 `yaml:"max_rotation"`
	IdleSway       float64 `yaml:"idle_sway"` // Amplitude of the pre-play bob
}

// FlappyObstacles defines obstacle parameters for Flappy Bird.
type FlappyObstacles struct {
	CollisionInset  float64 `yaml:"collision_inset"`  // Horizontal margin trimmed off the bird
	CollisionLeeway float64 `yaml:"collision_leeway"` // Vertical slack allowed at the gap edges
	ScoreTolerance  float64 `yaml:"score_tolerance"`
}

// FlappyAnimation defines wing-flap animation parameters.
type FlappyAnimation struct {
	WingRate          float64 `yaml:"wing_rate"`           // Wing frames per second
	FlapFrameVelocity float64 `yaml:"flap_frame_velocity"` // Falling faster than this holds the flap frame
}

// FlappyDayNight defines the background crossfade cycle.
type FlappyDayNight struct {
	Length   int     `yaml:"length"` // Play frames per day or night
	FadeRate float64 `yaml:"fade_rate"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool    `yaml:"enabled"`
	InitialLevel float64 `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Gap          Ramp    `yaml:"gap"`           // Gap size in pixels
	Separation   Ramp    `yaml:"separation"`    // Pipe spacing as a fraction of view width
	Speed        Ramp    `yaml:"speed"`         // Scroll speed in pixels per frame
}

// Validate rejects configurations the game cannot run with.
func (c FlappyConfig) Validate() error {
	var errs []error
	if c.World.ViewWidth <= 0 || c.World.ViewHeight <= 0 {
		errs = append(errs, fmt.Errorf("world: view size must be positive, got %vx%v", c.World.ViewWidth, c.World.ViewHeight))
	}
	if c.World.GroundY <= 0 || c.World.GroundY > c.World.ViewHeight {
		errs = append(errs, fmt.Errorf("world: ground_y %v outside view", c.World.GroundY))
	}
	if c.World.GroundWrap >= 0 {
		errs = append(errs, fmt.Errorf("world: ground_wrap must be negative, got %v", c.World.GroundWrap))
	}
	if c.Physics.MinRotation > c.Physics.MaxRotation {
		errs = append(errs, fmt.Errorf("physics: min_rotation %v above max_rotation %v", c.Physics.MinRotation, c.Physics.MaxRotation))
	}
	if c.DayNight.Length <= 0 {
		errs = append(errs, fmt.Errorf("day_night: length must be positive, got %d", c.DayNight.Length))
	}
	for name, r := range map[string]Ramp{
		"gap":        c.Difficulty.Gap,
		"separation": c.Difficulty.Separation,
		"speed":      c.Difficulty.Speed,
	} {
		if r.Step < 0 || math.IsNaN(r.Start) || math.IsNaN(r.Limit) {
			errs = append(errs, fmt.Errorf("difficulty.%s: invalid ramp %+v", name, r))
		}
	}
	if c.Difficulty.Gap.Limit < 0 {
		errs = append(errs, fmt.Errorf("difficulty.gap: floor must be non-negative, got %v", c.Difficulty.Gap.Limit))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ParsePreset validates a preset name. The empty string means "keep config".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}
