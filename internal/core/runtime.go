package core

import "time"

// DefaultTickRate is the simulation rate used when none is configured.
const DefaultTickRate = 60

// RuntimeConfig is what the platform hands a game on Reset.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed; 0 asks the platform for a time-based one
}

// DefaultRuntime returns an 80x24 config at the default rate.
func DefaultRuntime() RuntimeConfig {
	return RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: DefaultTickRate}
}

// WithDefaults fills a missing tick rate and seed. now supplies the seed.
func (c RuntimeConfig) WithDefaults(now func() time.Time) RuntimeConfig {
	if c.TickRate <= 0 {
		c.TickRate = DefaultTickRate
	}
	if c.Seed == 0 && now != nil {
		c.Seed = now().UnixNano()
	}
	return c
}

// TickInterval is the wall time covered by one simulation tick.
func (c RuntimeConfig) TickInterval() time.Duration {
	rate := c.TickRate
	if rate <= 0 {
		rate = DefaultTickRate
	}
	return time.Second / time.Duration(rate)
}

// GameState is the status a game reports to the platform after each tick.
type GameState struct {
	Score    int    // Pipes passed this run
	GameOver bool   // The run ended and waits for a restart
	Paused   bool   // Simulation is frozen
	Phase    string // Active phase name, for display and logging
}

// StepResult is returned by Game.Step.
type StepResult struct {
	State GameState
}
