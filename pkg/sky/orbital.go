package sky

import (
	"math"

	skymath "github.com/Faultbox/midgard-sky/pkg/math"
)

// Orbit defaults.
const (
	DefaultYearLength = 365.0
	DefaultAxialTilt  = 23.5
)

// OrbitParams describes the planet the observer stands on.
type OrbitParams struct {
	YearLength float64 `yaml:"year_length"` // days per orbit
	AxialTilt  float64 `yaml:"axial_tilt"`  // degrees
}

// DefaultOrbit returns an Earth-like orbit.
func DefaultOrbit() OrbitParams {
	return OrbitParams{YearLength: DefaultYearLength, AxialTilt: DefaultAxialTilt}
}

// OrbitalPosition holds the intermediate values of the orbital model.
// Angles are radians.
type OrbitalPosition struct {
	SelfAngle   float64 // daily rotation phase
	OrbitAngle  float64 // ecliptic longitude
	HourAngle   float64
	Declination float64
	// RawAzimuth is the acos result after the hour-angle reflection,
	// before it is mirrored into the output frame.
	RawAzimuth float64
	Horizontal Horizontal
}

// ComputeOrbitalPosition runs the orbital model for the continuous day
// count d shifted by bias.
func ComputeOrbitalPosition(d, bias float64, orbit OrbitParams, obs Observer) OrbitalPosition {
	yearLength := orbit.YearLength
	if !(yearLength > 0) || math.IsInf(yearLength, 0) {
		yearLength = DefaultYearLength
	}

	t := d + bias
	selfAngle := math.Mod(t, 1) * 360
	orbitAngle := (t / yearLength) * 360

	phi := obs.Latitude * deg2Rad
	lambda := obs.Longitude * deg2Rad
	epsilon := orbit.AxialTilt * deg2Rad
	L := orbitAngle * deg2Rad
	H := lambda - selfAngle*deg2Rad

	sigma := math.Asin(clamp1(math.Sin(epsilon) * math.Sin(L)))

	sinAlt := math.Sin(phi)*math.Sin(sigma) + math.Cos(phi)*math.Cos(sigma)*math.Cos(H)
	alt := math.Asin(clamp1(sinAlt))

	pos := OrbitalPosition{
		SelfAngle:   selfAngle * deg2Rad,
		OrbitAngle:  L,
		HourAngle:   H,
		Declination: sigma,
	}

	denom := math.Cos(alt) * math.Cos(phi)
	if math.Abs(denom) < degenerateEps {
		pos.Horizontal = Horizontal{Altitude: alt, Indeterminate: true}
		return pos
	}

	cosAz := clamp1((math.Sin(sigma) - math.Sin(alt)*math.Sin(phi)) / denom)
	az := math.Acos(cosAz)
	if math.Sin(H) > 0 {
		az = twoPi - az
	}

	pos.RawAzimuth = az
	// The model's hour angle runs opposite to the frame's east-positive
	// azimuth, so the output frame sees the mirror image.
	pos.Horizontal = Horizontal{Altitude: alt, Azimuth: math.Mod(twoPi-az, twoPi)}
	return pos
}

// ComputeOrbitalDirection returns the unit vector toward the light source
// for the continuous day count d.
func ComputeOrbitalDirection(d, bias float64, orbit OrbitParams, obs Observer) skymath.Vec3 {
	return orbitalResult(d, bias, orbit, obs).Direction
}

func orbitalResult(d, bias float64, orbit OrbitParams, obs Observer) Result {
	h := ComputeOrbitalPosition(d, bias, orbit, obs).Horizontal
	return Result{Direction: horizontalToVector(h.Altitude, h.Azimuth), Horizontal: h}
}
