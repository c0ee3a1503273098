// Package clock advances the simulated sky clock in real time.
package clock

import (
	"time"

	"github.com/Faultbox/midgard-sky/pkg/sky"
)

// Advancer moves a sky clock forward by elapsed real time.
type Advancer interface {
	Advance(dt time.Duration)
	Clock() sky.Clock
}

// DayAdvancer drives the continuous day count of the orbital model.
// Every body reading its Clock shares the same accumulator.
type DayAdvancer struct {
	Days          float64
	DaysPerSecond float64
	Enabled       bool
}

// NewDayAdvancer returns an enabled advancer starting at days.
func NewDayAdvancer(days, daysPerSecond float64) *DayAdvancer {
	return &DayAdvancer{Days: days, DaysPerSecond: daysPerSecond, Enabled: true}
}

// Advance adds DaysPerSecond for every second of dt.
func (a *DayAdvancer) Advance(dt time.Duration) {
	if !a.Enabled || dt <= 0 {
		return
	}
	a.Days += a.DaysPerSecond * dt.Seconds()
}

// Clock returns the current day count.
func (a *DayAdvancer) Clock() sky.Clock {
	return sky.Clock{Days: a.Days}
}

// SolarClock drives the day-of-year and hour of the solar model.
// When the hour passes 24 it wraps and the day jumps by DaysPerRollover.
// Days wrap modulo 365 rather than resetting to day 1, so the rollover
// step is kept across the year boundary: day 361 plus 8 is day 4.
type SolarClock struct {
	Day             int
	Hour            float64
	HoursPerSecond  float64
	DaysPerRollover int
	Enabled         bool
}

// NewSolarClock returns an enabled clock at day and hour.
func NewSolarClock(day int, hour, hoursPerSecond float64, daysPerRollover int) *SolarClock {
	return &SolarClock{
		Day:             wrapDay(day),
		Hour:            hour,
		HoursPerSecond:  hoursPerSecond,
		DaysPerRollover: daysPerRollover,
		Enabled:         true,
	}
}

// Advance moves the hour forward and rolls the day over past midnight.
func (c *SolarClock) Advance(dt time.Duration) {
	if !c.Enabled || dt <= 0 {
		return
	}
	c.Hour += c.HoursPerSecond * dt.Seconds()
	if c.Hour > 24 {
		c.Hour = clamp(c.Hour-24, 0, 24)
		c.Day = wrapDay(c.Day + c.DaysPerRollover)
	}
}

// Clock returns the current day and hour.
func (c *SolarClock) Clock() sky.Clock {
	return sky.Clock{Day: c.Day, Hour: c.Hour}
}

// WallClock follows a real instant, scaled by Speed.
type WallClock struct {
	Now   time.Time
	Speed float64 // simulated seconds per real second
}

// Advance moves Now forward by dt scaled by Speed.
func (w *WallClock) Advance(dt time.Duration) {
	if dt <= 0 {
		return
	}
	w.Now = w.Now.Add(time.Duration(float64(dt) * w.Speed))
}

// Clock returns the current instant.
func (w *WallClock) Clock() sky.Clock {
	return sky.Clock{Time: w.Now}
}

// wrapDay folds day into 1..365.
func wrapDay(day int) int {
	d := (day - 1) % sky.DaysPerYear
	if d < 0 {
		d += sky.DaysPerYear
	}
	return d + 1
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
