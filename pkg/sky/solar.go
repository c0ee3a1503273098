package sky

import (
	"math"

	skymath "github.com/Faultbox/midgard-sky/pkg/math"
)

// DaysPerYear is the year length the solar series are fitted to.
const DaysPerYear = 365

// SolarPosition holds the intermediate values of the solar model.
type SolarPosition struct {
	FractionalYear float64 // γ, radians
	Declination    float64 // δ, radians
	EquationOfTime float64 // minutes
	TrueSolarTime  float64 // minutes
	HourAngle      float64 // radians, 0 at local solar noon
	Horizontal     Horizontal
}

// ComputeSolarPosition evaluates the solar position for day-of-year day
// (1..365) at local clock hour (0..24).
func ComputeSolarPosition(day int, hour float64, obs Observer) SolarPosition {
	lat := obs.Latitude * deg2Rad

	gamma := twoPi / DaysPerYear * (float64(day-1) + (hour-12)/24)

	delta := spencerDeclination(gamma)
	eq := equationOfTime(gamma)

	timeOffset := eq + 4*obs.Longitude - 60*obs.Timezone
	tst := hour*60 + timeOffset

	H := (tst/4 - 180) * deg2Rad

	sinElev := math.Sin(lat)*math.Sin(delta) + math.Cos(lat)*math.Cos(delta)*math.Cos(H)
	elev := math.Asin(clamp1(sinElev))

	y := -math.Sin(H)
	x := math.Tan(delta)*math.Cos(lat) - math.Sin(lat)*math.Cos(H)
	az := math.Atan2(y, x)

	return SolarPosition{
		FractionalYear: gamma,
		Declination:    delta,
		EquationOfTime: eq,
		TrueSolarTime:  tst,
		HourAngle:      H,
		Horizontal:     Horizontal{Altitude: elev, Azimuth: az},
	}
}

// ComputeSolarDirection returns the unit vector toward the sun.
func ComputeSolarDirection(day int, hour float64, obs Observer) skymath.Vec3 {
	return solarResult(day, hour, obs).Direction
}

func solarResult(day int, hour float64, obs Observer) Result {
	h := ComputeSolarPosition(day, hour, obs).Horizontal
	return Result{Direction: horizontalToVector(h.Altitude, h.Azimuth), Horizontal: h}
}

// spencerDeclination is Spencer's Fourier series for solar declination.
func spencerDeclination(g float64) float64 {
	return 0.006918 -
		0.399912*math.Cos(g) +
		0.070257*math.Sin(g) -
		0.006758*math.Cos(2*g) +
		0.000907*math.Sin(2*g) -
		0.002697*math.Cos(3*g) +
		0.00148*math.Sin(3*g)
}

// equationOfTime returns the correction from mean to true solar time in
// minutes.
func equationOfTime(g float64) float64 {
	return 229.18 * (0.000075 +
		0.001868*math.Cos(g) -
		0.032077*math.Sin(g) -
		0.014615*math.Cos(2*g) -
		0.040849*math.Sin(2*g))
}
