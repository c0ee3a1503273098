// Package lighting orients directional lights from sky directions.
package lighting

import (
	"github.com/Faultbox/midgard-sky/pkg/math"
	"github.com/Faultbox/midgard-sky/pkg/sky"
)

// Light tints: low sun is orange, high sun is white.
var (
	HorizonColor = math.Vec3{X: 1.0, Y: 0.55, Z: 0.3}
	ZenithColor  = math.Vec3{X: 1.0, Y: 1.0, Z: 1.0}
)

// DirectionalLight is a light infinitely far away, such as the sun or moon.
// It looks along the negated sky direction, so its forward axis points
// from the body toward the observer.
type DirectionalLight struct {
	Name         string
	Up           math.Vec3 // reference up for the look rotation; zero means Y+
	MaxIntensity float32
	Smoothing    float32 // 0 snaps to each new direction, towards 1 lags behind
	Tinted       bool    // warm the color near the horizon

	Rotation  math.Quat
	Direction math.Vec3 // toward the body
	Altitude  float64   // radians
	Intensity float32
	Color     math.Vec3
	Visible   bool

	applied bool
}

// NewDirectionalLight creates a light that has not been oriented yet.
func NewDirectionalLight(name string, maxIntensity float32) *DirectionalLight {
	return &DirectionalLight{
		Name:         name,
		Up:           math.Up,
		MaxIntensity: maxIntensity,
		Rotation:     math.QuatIdentity(),
		Color:        ZenithColor,
	}
}

// Apply orients the light toward r. A non-finite direction is rejected and
// the previous orientation is kept; Apply then returns false.
func (l *DirectionalLight) Apply(r sky.Result) bool {
	dir := r.Direction
	if !sky.IsFinite(dir) || dir == (math.Vec3{}) {
		return false
	}

	up := l.Up
	if up == (math.Vec3{}) {
		up = math.Up
	}
	target := math.QuatLookRotation(sky.LightForward(dir), up)

	if l.applied && l.Smoothing > 0 && l.Smoothing < 1 {
		l.Rotation = l.Rotation.Slerp(target, 1-l.Smoothing)
	} else {
		l.Rotation = target
	}

	l.Direction = dir
	l.Altitude = r.Horizontal.Altitude
	l.Visible = r.Horizontal.Altitude > 0
	l.Intensity = l.MaxIntensity * clamp01(dir.Y)
	l.Color = ZenithColor
	if l.Tinted {
		l.Color = HorizonColor.Lerp(ZenithColor, clamp01(dir.Y*4))
	}
	l.applied = true
	return true
}

// Forward returns the axis the light shines along.
func (l *DirectionalLight) Forward() math.Vec3 {
	return l.Rotation.Forward()
}

// Applied reports whether the light has received a direction yet.
func (l *DirectionalLight) Applied() bool {
	return l.applied
}

func clamp01(x float32) float32 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
