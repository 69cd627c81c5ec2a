package config

import "math"

// Ramp is a monotone per-frame progression from Start toward Limit.
// Limit may be above or below Start; the value never crosses it.
type Ramp struct {
	Start float64 `yaml:"start"`
	Limit float64 `yaml:"limit"`
	Step  float64 `yaml:"step"`
}

// At interpolates the ramp at level in [0, 1].
func (r Ramp) At(level float64) float64 {
	return r.Start + clampF(level, 0, 1)*(r.Limit-r.Start)
}

// Advance moves v one step toward Limit, clamped at Limit.
func (r Ramp) Advance(v float64) float64 {
	if r.Limit < r.Start {
		return math.Max(v-r.Step, r.Limit)
	}
	return math.Min(v+r.Step, r.Limit)
}

// Difficulty is the set of values the ramps drive.
type Difficulty struct {
	Gap        float64 // Gap size in pixels
	Separation float64 // Fraction of view width between pipes
	Speed      float64 // Scroll pixels per frame
}

// DifficultyManager produces starting values and per-frame progressions.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// Initial returns the values a fresh session starts with.
func (d *DifficultyManager) Initial() Difficulty {
	return Difficulty{
		Gap:        d.cfg.Gap.At(d.initialLevel),
		Separation: d.cfg.Separation.At(d.initialLevel),
		Speed:      d.cfg.Speed.At(d.initialLevel),
	}
}

// Advance returns cur moved one frame along each ramp.
// With progression disabled cur is returned unchanged.
func (d *DifficultyManager) Advance(cur Difficulty) Difficulty {
	if !d.cfg.Enabled {
		return cur
	}
	return Difficulty{
		Gap:        d.cfg.Gap.Advance(cur.Gap),
		Separation: d.cfg.Separation.Advance(cur.Separation),
		Speed:      d.cfg.Speed.Advance(cur.Speed),
	}
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
