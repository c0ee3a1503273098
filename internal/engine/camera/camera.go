// Package camera provides the orbiting observer camera. Its up axis is the
// reference that orients lights in the orbital sky model.
package camera

import (
	gomath "math"

	"github.com/Faultbox/midgard-sky/pkg/math"
)

var right = math.Vec3{X: 1, Y: 0, Z: 0}

// OrbitCamera orbits around a center point.
type OrbitCamera struct {
	Center math.Vec3

	// Spherical coordinates
	Distance float32 // Distance from center
	Pitch    float32 // vertical angle, radians; positive looks down
	Yaw      float32 // horizontal angle, radians

	// Constraints
	MinPitch float32
	MaxPitch float32
}

// NewOrbitCamera creates a new orbit camera with default settings.
func NewOrbitCamera() *OrbitCamera {
	return &OrbitCamera{
		Distance: 200.0,
		Pitch:    0.5,
		Yaw:      0.0,
		MinPitch: -1.5,
		MaxPitch: 1.5,
	}
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() math.Vec3 {
	cp := gomath.Cos(float64(c.Pitch))
	offset := math.Vec3{
		X: c.Distance * float32(cp*gomath.Sin(float64(c.Yaw))),
		Y: c.Distance * float32(gomath.Sin(float64(c.Pitch))),
		Z: c.Distance * float32(cp*gomath.Cos(float64(c.Yaw))),
	}
	return c.Center.Add(offset)
}

// Rotation returns the camera orientation looking at the center: a turn
// about world up by yaw, then a tilt about the camera's right axis by pitch.
func (c *OrbitCamera) Rotation() math.Quat {
	yaw := math.QuatFromAxisAngle(math.Up, c.Yaw+gomath.Pi)
	pitch := math.QuatFromAxisAngle(right, c.Pitch)
	return yaw.Mul(pitch).Normalize()
}

// Up returns the camera's up axis in world space.
func (c *OrbitCamera) Up() math.Vec3 {
	return c.Rotation().Rotate(math.Up)
}

// Orbit turns the camera around the center by the given angles in radians.
// Pitch is clamped to [MinPitch, MaxPitch].
func (c *OrbitCamera) Orbit(yaw, pitch float32) {
	c.Yaw += yaw
	c.Pitch += pitch

	if c.Pitch < c.MinPitch {
		c.Pitch = c.MinPitch
	}
	if c.Pitch > c.MaxPitch {
		c.Pitch = c.MaxPitch
	}
	c.Yaw = float32(gomath.Mod(float64(c.Yaw), 2*gomath.Pi))
}
