package sky

import (
	"math"

	skymath "github.com/Faultbox/midgard-sky/pkg/math"
)

// Lunar defaults: a circular 27-day orbit inclined 5° to the horizon plane.
const (
	DefaultLunarOrbitDays   = 27
	DefaultLunarInclination = 5.0
)

// LunarParams describes the simplified moon orbit. There is no ephemeris,
// parallax or phase offset against the sun.
type LunarParams struct {
	OrbitDays   int     `yaml:"orbit_days"`
	Inclination float64 `yaml:"inclination"` // degrees
}

// DefaultLunar returns the 27-day, 5° orbit.
func DefaultLunar() LunarParams {
	return LunarParams{OrbitDays: DefaultLunarOrbitDays, Inclination: DefaultLunarInclination}
}

// ComputeLunarDirection returns the moon direction on the default orbit.
// The result is periodic in day with period 27.
func ComputeLunarDirection(day int, hour float64) skymath.Vec3 {
	return DefaultLunar().Direction(day, hour)
}

// Direction returns the moon direction for day-of-year and hour.
// OrbitDays below 1 falls back to the default period.
func (p LunarParams) Direction(day int, hour float64) skymath.Vec3 {
	return skymath.UnitVec3(p.components(day, hour))
}

// OrbitAngle returns the position along the orbit in radians, [0, 2π) for
// hours inside one day.
func (p LunarParams) OrbitAngle(day int, hour float64) float64 {
	period := p.OrbitDays
	if period < 1 {
		period = DefaultLunarOrbitDays
	}

	// Fold into [0, period) so negative days keep the same period.
	d := day % period
	if d < 0 {
		d += period
	}

	totalHours := float64(d)*24 + hour
	progress := totalHours / (float64(period) * 24)
	return progress * twoPi
}

func (p LunarParams) components(day int, hour float64) (x, y, z float64) {
	theta := p.OrbitAngle(day, hour)
	incl := p.Inclination * deg2Rad
	return math.Cos(theta), math.Sin(theta) * math.Cos(incl), math.Sin(theta) * math.Sin(incl)
}

func (p LunarParams) result(day int, hour float64) Result {
	dir := p.Direction(day, hour)
	alt := math.Asin(clamp1(float64(dir.Y)))
	h := Horizontal{Altitude: alt}
	if math.Abs(math.Cos(alt)) < degenerateEps {
		h.Indeterminate = true
	} else {
		h.Azimuth = normalizeRad(math.Atan2(float64(dir.X), float64(dir.Z)))
	}
	return Result{Direction: dir, Horizontal: h}
}

func normalizeRad(a float64) float64 {
	a = math.Mod(a, twoPi)
	if a < 0 {
		a += twoPi
	}
	return a
}
