package flappy

import "github.com/vovakirdan/flappy-arcade/internal/core"

// DayNight crossfades the two backgrounds. Every Length frames the
// active background flips; the active one fades in while the other
// fades out.
type DayNight struct {
	Length int
	Rate   float64

	Night      bool
	DayAlpha   float64
	NightAlpha float64
	frames     int
}

// NewDayNight starts a cycle in full daylight.
func NewDayNight(length int, rate float64) DayNight {
	return DayNight{Length: length, Rate: rate, DayAlpha: 1}
}

// Step advances the cycle by one frame.
func (d *DayNight) Step() {
	d.frames++
	if d.Length > 0 && d.frames%d.Length == 0 {
		d.Night = !d.Night
	}

	day, night := -d.Rate, d.Rate
	if !d.Night {
		day, night = night, day
	}
	d.DayAlpha = core.ClampF(d.DayAlpha+day, 0, 1)
	d.NightAlpha = core.ClampF(d.NightAlpha+night, 0, 1)
}
