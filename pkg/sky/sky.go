// Package sky computes the apparent directions of the Sun and Moon for an
// observer on a simulated clock.
//
// Every function in this package is pure: the result depends only on the
// arguments. Directions are unit vectors in a local frame with X+ east,
// Y+ up and Z+ north, pointing from the observer toward the body.
package sky

import (
	"errors"
	"fmt"
	"math"
	"time"

	skymath "github.com/Faultbox/midgard-sky/pkg/math"
)

const (
	deg2Rad = math.Pi / 180.0
	rad2Deg = 180.0 / math.Pi
	twoPi   = 2 * math.Pi

	// degenerateEps bounds cos(alt)*cos(lat) below which azimuth is
	// undefined.
	degenerateEps = 1e-9
)

// Validation errors.
var (
	ErrLatitudeRange  = errors.New("latitude out of range [-90, 90]")
	ErrLongitudeRange = errors.New("longitude out of range [-180, 180]")
	ErrTimezoneRange  = errors.New("timezone offset out of range [-14, 14]")
	ErrUnknownModel   = errors.New("unknown sky model")
)

// Observer is a location on the ground.
type Observer struct {
	Latitude  float64 `yaml:"latitude"`  // degrees, north positive
	Longitude float64 `yaml:"longitude"` // degrees, east positive
	Timezone  float64 `yaml:"timezone"`  // hours from UTC, e.g. 8 for UTC+8
}

// Validate checks that the observer lies on the globe.
func (o Observer) Validate() error {
	if math.IsNaN(o.Latitude) || o.Latitude < -90 || o.Latitude > 90 {
		return fmt.Errorf("%w: %v", ErrLatitudeRange, o.Latitude)
	}
	if math.IsNaN(o.Longitude) || o.Longitude < -180 || o.Longitude > 180 {
		return fmt.Errorf("%w: %v", ErrLongitudeRange, o.Longitude)
	}
	if math.IsNaN(o.Timezone) || o.Timezone < -14 || o.Timezone > 14 {
		return fmt.Errorf("%w: %v", ErrTimezoneRange, o.Timezone)
	}
	return nil
}

// Horizontal holds altitude and azimuth in radians.
// Azimuth is measured from north toward east. When Indeterminate is set the
// observer or the body sits on the degenerate axis and Azimuth is 0.
type Horizontal struct {
	Altitude      float64
	Azimuth       float64
	Indeterminate bool
}

// AltitudeDeg returns the altitude in degrees.
func (h Horizontal) AltitudeDeg() float64 { return h.Altitude * rad2Deg }

// AzimuthDeg returns the azimuth in degrees, normalized to [0, 360).
func (h Horizontal) AzimuthDeg() float64 { return normalize360(h.Azimuth * rad2Deg) }

// Result is a direction together with the horizontal coordinates it was
// built from.
type Result struct {
	Direction  skymath.Vec3
	Horizontal Horizontal
}

// Clock carries the time in whichever representation a model reads.
// The representations are independent: OrbitalModel uses Days,
// SolarLunarModel uses Day and Hour, EphemerisModel uses Time.
type Clock struct {
	Days float64   // continuous day count, may exceed 1
	Day  int       // day of year, 1..365
	Hour float64   // hour of day, 0..24
	Time time.Time // wall-clock instant
}

// IsFinite reports whether a direction can be applied to a transform.
func IsFinite(v skymath.Vec3) bool {
	return v.IsFinite()
}

// LightForward returns the axis a light transform looks along to shine
// from direction dir onto the observer.
func LightForward(dir skymath.Vec3) skymath.Vec3 {
	return dir.Negate()
}

// horizontalToVector converts altitude and north-based azimuth (radians)
// to an east/up/north unit vector.
func horizontalToVector(alt, az float64) skymath.Vec3 {
	x := math.Cos(alt) * math.Sin(az)
	y := math.Sin(alt)
	z := math.Cos(alt) * math.Cos(az)
	return skymath.UnitVec3(x, y, z)
}

// clamp1 limits x to [-1, 1] so asin/acos stay in their domain.
func clamp1(x float64) float64 {
	if x < -1 {
		return -1
	}
	if x > 1 {
		return 1
	}
	return x
}

func normalize360(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}
