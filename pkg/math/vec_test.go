package math

import (
	"math"
	"testing"
)

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3Negate(t *testing.T) {
	got := Vec3{1, -2, 3}.Negate()
	want := Vec3{-1, 2, -3}
	if got != want {
		t.Errorf("Vec3.Negate() = %v, want %v", got, want)
	}
}

func TestVec3Normalize(t *testing.T) {
	n := Vec3{3, 4, 12}.Normalize()
	l := n.Length()
	if l < 0.99999 || l > 1.00001 {
		t.Errorf("Vec3.Normalize().Length() = %v, want ~1", l)
	}

	if z := (Vec3{}).Normalize(); z != (Vec3{}) {
		t.Errorf("zero vector should stay zero, got %v", z)
	}
}

func TestUnitVec3(t *testing.T) {
	tests := []struct {
		name    string
		x, y, z float64
	}{
		{"axis", 0, 0, 5},
		{"tiny", 1e-20, 2e-20, 0},
		{"large", 1e30, -1e30, 1e30},
		{"mixed", 0.3, -0.7, 0.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := UnitVec3(tt.x, tt.y, tt.z)
			if l := v.Length(); math.Abs(float64(l)-1) > 1e-6 {
				t.Errorf("UnitVec3(%v, %v, %v).Length() = %v, want 1", tt.x, tt.y, tt.z, l)
			}
		})
	}
}

func TestUnitVec3NonFinite(t *testing.T) {
	v := UnitVec3(math.NaN(), 0, 1)
	if v.IsFinite() {
		t.Errorf("expected NaN input to stay non-finite, got %v", v)
	}
	if (Vec3{}).IsFinite() != true {
		t.Error("zero vector should be finite")
	}
	inf := Vec3{X: float32(math.Inf(1))}
	if inf.IsFinite() {
		t.Error("Inf component should not be finite")
	}
}

func TestVec3ApproxEqual(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{1.0000005, 2, 2.9999995}
	if !a.ApproxEqual(b, 1e-6) {
		t.Errorf("%v and %v should be approximately equal", a, b)
	}
	if a.ApproxEqual(Vec3{1, 2, 3.1}, 1e-6) {
		t.Error("vectors 0.1 apart should not be approximately equal")
	}
}

func TestVec3Lerp(t *testing.T) {
	a := Vec3{0, 0, 0}
	b := Vec3{10, 20, 30}

	result := a.Lerp(b, 0.5)
	expected := Vec3{5, 10, 15}
	if !result.ApproxEqual(expected, 0.001) {
		t.Errorf("Lerp: expected %v, got %v", expected, result)
	}
}
