package lighting

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/midgard-sky/pkg/math"
	"github.com/Faultbox/midgard-sky/pkg/sky"
)

func TestApplyLooksAlongNegatedDirection(t *testing.T) {
	obs := sky.Observer{Latitude: 40}
	model := sky.SolarLunarModel{}

	for _, hour := range []float64{7, 10, 12, 15, 19} {
		r := model.Sun(sky.Clock{Day: 172, Hour: hour}, obs)

		light := NewDirectionalLight("sun", 1)
		if !light.Apply(r) {
			t.Fatalf("hour %v: Apply rejected %v", hour, r.Direction)
		}

		want := r.Direction.Negate()
		if got := light.Forward(); !got.ApproxEqual(want, 1e-5) {
			t.Errorf("hour %v: forward = %v, want %v", hour, got, want)
		}
	}
}

func TestApplyIntensityAndVisibility(t *testing.T) {
	light := NewDirectionalLight("sun", 2)

	up := sky.Result{
		Direction:  math.UnitVec3(0, 1, 1),
		Horizontal: sky.Horizontal{Altitude: gomath.Pi / 4},
	}
	light.Apply(up)
	if !light.Visible {
		t.Error("light above the horizon should be visible")
	}
	wantIntensity := float32(2 * gomath.Sin(gomath.Pi/4))
	if gomath.Abs(float64(light.Intensity-wantIntensity)) > 1e-5 {
		t.Errorf("intensity = %v, want %v", light.Intensity, wantIntensity)
	}

	down := sky.Result{
		Direction:  math.UnitVec3(1, -0.5, 0),
		Horizontal: sky.Horizontal{Altitude: -0.46},
	}
	light.Apply(down)
	if light.Visible {
		t.Error("light below the horizon should not be visible")
	}
	if light.Intensity != 0 {
		t.Errorf("intensity below horizon = %v, want 0", light.Intensity)
	}
}

func TestApplyRejectsNonFinite(t *testing.T) {
	light := NewDirectionalLight("moon", 1)
	good := sky.Result{Direction: math.Vec3{X: 0, Y: 1, Z: 0}, Horizontal: sky.Horizontal{Altitude: gomath.Pi / 2}}
	if !light.Apply(good) {
		t.Fatal("Apply rejected a valid direction")
	}
	before := light.Rotation

	nan := float32(gomath.NaN())
	for _, bad := range []math.Vec3{{X: nan, Y: 1}, {Z: float32(gomath.Inf(-1))}, {}} {
		if light.Apply(sky.Result{Direction: bad}) {
			t.Errorf("Apply accepted %v", bad)
		}
		if light.Rotation != before {
			t.Errorf("rotation changed after rejected direction %v", bad)
		}
	}
}

func TestApplyVerticalDirection(t *testing.T) {
	light := NewDirectionalLight("sun", 1)
	light.Apply(sky.Result{Direction: math.Vec3{Y: 1}, Horizontal: sky.Horizontal{Altitude: gomath.Pi / 2}})
	if got := light.Forward(); !got.ApproxEqual(math.Vec3{Y: -1}, 1e-5) {
		t.Errorf("zenith sun should shine straight down, got %v", got)
	}
}

func TestApplySmoothing(t *testing.T) {
	east := sky.Result{Direction: math.Vec3{X: 1}}
	north := sky.Result{Direction: math.Vec3{Z: 1}}

	light := NewDirectionalLight("sun", 1)
	light.Smoothing = 0.5
	light.Apply(east)
	// The first direction snaps.
	if got := light.Forward(); !got.ApproxEqual(math.Vec3{X: -1}, 1e-5) {
		t.Fatalf("first Apply should snap, forward = %v", got)
	}

	light.Apply(north)
	got := light.Forward()
	want := math.UnitVec3(-1, 0, -1)
	if !got.ApproxEqual(want, 1e-4) {
		t.Errorf("half-smoothed forward = %v, want %v", got, want)
	}
}

func TestApplyTint(t *testing.T) {
	light := NewDirectionalLight("sun", 1)
	light.Tinted = true

	light.Apply(sky.Result{Direction: math.UnitVec3(1, 0.05, 0), Horizontal: sky.Horizontal{Altitude: 0.05}})
	if light.Color.Z >= ZenithColor.Z {
		t.Errorf("low sun should be warm, got %v", light.Color)
	}

	light.Apply(sky.Result{Direction: math.UnitVec3(0, 1, 0.1), Horizontal: sky.Horizontal{Altitude: 1.47}})
	if !light.Color.ApproxEqual(ZenithColor, 1e-6) {
		t.Errorf("high sun should be white, got %v", light.Color)
	}
}
