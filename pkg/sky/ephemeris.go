package sky

import (
	"math"
	"time"

	"github.com/sixdouglas/suncalc"
)

// DefaultEphemerisYear is the calendar year used when a clock carries only
// day-of-year and hour.
const DefaultEphemerisYear = 2025

// EphemerisModel places the sun and moon with the suncalc ephemeris at a
// wall-clock instant.
type EphemerisModel struct {
	Year int // fallback year for Day/Hour clocks
}

// Kind implements Model.
func (EphemerisModel) Kind() Kind { return KindEphemeris }

// Sun implements Model.
func (m EphemerisModel) Sun(c Clock, obs Observer) Result {
	pos := suncalc.GetPosition(m.instant(c, obs), obs.Latitude, obs.Longitude)
	return fromSuncalc(pos.Altitude, pos.Azimuth)
}

// Moon implements Model.
func (m EphemerisModel) Moon(c Clock, obs Observer) (Result, bool) {
	pos := suncalc.GetMoonPosition(m.instant(c, obs), obs.Latitude, obs.Longitude)
	return fromSuncalc(pos.Altitude, pos.Azimuth), true
}

// MoonPhase returns the illuminated fraction (0..1) and phase (0 new,
// 0.5 full) at the clock's instant.
func (m EphemerisModel) MoonPhase(c Clock, obs Observer) (fraction, phase float64) {
	ill := suncalc.GetMoonIllumination(m.instant(c, obs))
	return ill.Fraction, ill.Phase
}

// instant resolves the clock to a time. A zero Time is rebuilt from Day and
// Hour in the observer's fixed UTC offset.
func (m EphemerisModel) instant(c Clock, obs Observer) time.Time {
	if !c.Time.IsZero() {
		return c.Time
	}
	year := m.Year
	if year == 0 {
		year = DefaultEphemerisYear
	}
	return ClockTime(year, c.Day, c.Hour, obs.Timezone)
}

// ClockTime converts day-of-year and hour in a fixed UTC offset to a time.
func ClockTime(year, day int, hour, tzHours float64) time.Time {
	zone := time.FixedZone("", int(math.Round(tzHours*3600)))
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, zone)
	offset := time.Duration(float64(day-1)*24*float64(time.Hour) + hour*float64(time.Hour))
	return start.Add(offset)
}

// fromSuncalc converts suncalc's south-based, westward azimuth.
func fromSuncalc(alt, azFromSouth float64) Result {
	az := normalizeRad(azFromSouth + math.Pi)
	h := Horizontal{Altitude: alt, Azimuth: az}
	if math.Abs(math.Cos(alt)) < degenerateEps {
		h.Indeterminate = true
		h.Azimuth = 0
	}
	return Result{Direction: horizontalToVector(h.Altitude, h.Azimuth), Horizontal: h}
}

// SunTimes are the daily solar events at a location.
type SunTimes struct {
	Sunrise   time.Time
	SolarNoon time.Time
	Sunset    time.Time
}

// ComputeSunTimes returns sunrise, solar noon and sunset for the date of t.
// Polar day or night yields zero-valued or invalid times from the
// underlying series; callers should check with IsZero.
func ComputeSunTimes(t time.Time, obs Observer) SunTimes {
	times := suncalc.GetTimes(t, obs.Latitude, obs.Longitude)
	return SunTimes{
		Sunrise:   times["sunrise"].Value,
		SolarNoon: times["solarNoon"].Value,
		Sunset:    times["sunset"].Value,
	}
}
