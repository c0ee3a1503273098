package sky

import (
	"math"
	"testing"
	"time"
)

func TestFromSuncalcAzimuth(t *testing.T) {
	tests := []struct {
		name        string
		azFromSouth float64
		wantAzDeg   float64
	}{
		{"south", 0, 180},
		{"west", math.Pi / 2, 270},
		{"north", math.Pi, 0},
		{"east", -math.Pi / 2, 90},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := fromSuncalc(0.3, tt.azFromSouth)
			if got := r.Horizontal.AzimuthDeg(); math.Abs(got-tt.wantAzDeg) > 1e-9 && math.Abs(got-tt.wantAzDeg-360) > 1e-9 {
				t.Errorf("azimuth = %v, want %v", got, tt.wantAzDeg)
			}
			assertUnit(t, r.Direction)
		})
	}

	if r := fromSuncalc(math.Pi/2, 1.2); !r.Horizontal.Indeterminate || r.Direction.Y < 0.999 {
		t.Errorf("zenith should be indeterminate and straight up, got %+v", r)
	}
}

func TestClockTime(t *testing.T) {
	got := ClockTime(2025, 32, 6.5, 2)
	want := time.Date(2025, time.February, 1, 4, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("ClockTime = %v, want %v", got, want)
	}
}

func TestEphemerisAgreesWithSolarModel(t *testing.T) {
	obs := Observer{Latitude: 48.1, Longitude: 11.6, Timezone: 1}
	model := EphemerisModel{Year: 2025}

	for _, tc := range []struct {
		day  int
		hour float64
	}{
		{80, 9}, {172, 12}, {172, 18}, {266, 15}, {355, 11},
	} {
		clk := Clock{Day: tc.day, Hour: tc.hour}
		eph := model.Sun(clk, obs).Direction
		solar := ComputeSolarDirection(tc.day, tc.hour, obs)

		cos := float64(eph.Dot(solar))
		angle := math.Acos(math.Min(1, cos)) * rad2Deg
		if angle > 1.5 {
			t.Errorf("day=%d hour=%v: ephemeris %v and solar %v differ by %.2f°", tc.day, tc.hour, eph, solar, angle)
		}
	}
}

func TestEphemerisMoon(t *testing.T) {
	obs := Observer{Latitude: -33.9, Longitude: 151.2, Timezone: 10}
	clk := Clock{Time: time.Date(2025, time.March, 14, 6, 55, 0, 0, time.UTC)}
	model := EphemerisModel{}

	moon, ok := model.Moon(clk, obs)
	if !ok {
		t.Fatal("ephemeris model should have a moon")
	}
	assertUnit(t, moon.Direction)

	fraction, phase := model.MoonPhase(clk, obs)
	if fraction < 0 || fraction > 1 {
		t.Errorf("illuminated fraction = %v, want [0, 1]", fraction)
	}
	if phase < 0 || phase > 1 {
		t.Errorf("phase = %v, want [0, 1]", phase)
	}
}

func TestEphemerisUsesClockTime(t *testing.T) {
	obs := Observer{Latitude: 10, Longitude: 20}
	model := EphemerisModel{Year: 2030}
	at := time.Date(2030, time.July, 4, 13, 0, 0, 0, time.UTC)

	fromTime := model.Sun(Clock{Time: at, Day: 1, Hour: 0}, obs)
	fromDay := model.Sun(Clock{Day: at.YearDay(), Hour: 13}, obs)
	if !fromTime.Direction.ApproxEqual(fromDay.Direction, 1e-6) {
		t.Errorf("Time and Day/Hour clocks disagree: %v vs %v", fromTime.Direction, fromDay.Direction)
	}
}

func TestComputeSunTimes(t *testing.T) {
	obs := Observer{Latitude: 48.1, Longitude: 11.6}
	times := ComputeSunTimes(time.Date(2025, time.June, 21, 12, 0, 0, 0, time.UTC), obs)

	if !times.Sunrise.Before(times.SolarNoon) || !times.SolarNoon.Before(times.Sunset) {
		t.Errorf("expected sunrise < noon < sunset, got %v, %v, %v", times.Sunrise, times.SolarNoon, times.Sunset)
	}
	if day := times.Sunset.Sub(times.Sunrise); day < 15*time.Hour || day > 17*time.Hour {
		t.Errorf("midsummer day length at 48°N = %v, want ~16h", day)
	}
}
