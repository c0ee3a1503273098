package sim

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/Faultbox/midgard-sky/internal/clock"
	"github.com/Faultbox/midgard-sky/internal/config"
	"github.com/Faultbox/midgard-sky/pkg/sky"
)

func TestNewSolarLunar(t *testing.T) {
	cfg := config.Default()

	s, err := New(cfg)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if s.Moon == nil {
		t.Error("solar-lunar model should create a moon light")
	}
	if _, ok := s.Clock.(*clock.SolarClock); !ok {
		t.Errorf("expected *clock.SolarClock, got %T", s.Clock)
	}
}

func TestOrbitalMoonSharesClock(t *testing.T) {
	cfg := config.Default()
	cfg.Sky.Model = "orbital"
	cfg.Sky.Observer = sky.Observer{Latitude: 35}
	cfg.Sky.Bias = 0.1
	cfg.Sky.MoonOrbit = &sky.OrbitParams{YearLength: 27, AxialTilt: 5}
	cfg.Sky.MoonBias = 0.4
	cfg.Clock.Days = 2
	cfg.Clock.DaysPerSecond = 0.25

	s, err := New(cfg)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if s.Moon == nil {
		t.Fatal("orbital model with a moon orbit should create a moon light")
	}

	s.Step(time.Second)

	days := s.Clock.Clock().Days
	if days != 2.25 {
		t.Fatalf("days = %v, want 2.25", days)
	}
	sun := sky.ComputeOrbitalDirection(days, 0.1, cfg.Sky.Orbit, cfg.Sky.Observer)
	moon := sky.ComputeOrbitalDirection(days, 0.4, *cfg.Sky.MoonOrbit, cfg.Sky.Observer)
	if got := s.Sun.Forward(); !got.ApproxEqual(sun.Negate(), 1e-5) {
		t.Errorf("sun forward = %v, want %v", got, sun.Negate())
	}
	if got := s.Moon.Forward(); !got.ApproxEqual(moon.Negate(), 1e-5) {
		t.Errorf("moon forward = %v, want %v", got, moon.Negate())
	}
}

func TestNewOrbitalHasNoMoon(t *testing.T) {
	cfg := config.Default()
	cfg.Sky.Model = "orbital"

	s, err := New(cfg)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if s.Moon != nil {
		t.Error("orbital model should not create a moon light")
	}
	if _, ok := s.Clock.(*clock.DayAdvancer); !ok {
		t.Errorf("expected *clock.DayAdvancer, got %T", s.Clock)
	}
}

func TestNewRejectsBadConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Sky.Model = "sundial"
	if _, err := New(cfg); !errors.Is(err, sky.ErrUnknownModel) {
		t.Errorf("expected ErrUnknownModel, got %v", err)
	}

	cfg = config.Default()
	cfg.Sky.Observer.Latitude = 120
	if _, err := New(cfg); !errors.Is(err, sky.ErrLatitudeRange) {
		t.Errorf("expected ErrLatitudeRange, got %v", err)
	}
}

func TestNewAdvancerEphemeris(t *testing.T) {
	cfg := config.Default().Clock
	cfg.Start = "2025-06-21T12:00:00Z"
	cfg.Speed = 60

	adv, err := NewAdvancer(sky.KindEphemeris, cfg)
	if err != nil {
		t.Fatalf("NewAdvancer failed: %v", err)
	}
	adv.Advance(time.Second)

	want := time.Date(2025, 6, 21, 12, 1, 0, 0, time.UTC)
	if got := adv.Clock().Time; !got.Equal(want) {
		t.Errorf("clock time = %v, want %v", got, want)
	}

	cfg.Start = "not a time"
	if _, err := NewAdvancer(sky.KindEphemeris, cfg); err == nil {
		t.Error("expected error for bad start time")
	}
}

func TestNewAdvancerPaused(t *testing.T) {
	cfg := config.Default().Clock
	cfg.AutoProgress = false

	adv, err := NewAdvancer(sky.KindSolarLunar, cfg)
	if err != nil {
		t.Fatalf("NewAdvancer failed: %v", err)
	}
	before := adv.Clock()
	adv.Advance(10 * time.Second)
	if adv.Clock() != before {
		t.Errorf("paused clock moved from %+v to %+v", before, adv.Clock())
	}
}

func TestStepOrientsLights(t *testing.T) {
	cfg := config.Default()
	cfg.Sky.Observer = sky.Observer{Latitude: 40}
	cfg.Clock.Day = 172
	cfg.Clock.Hour = 11
	cfg.Clock.HoursPerSecond = 1

	s, err := New(cfg)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	s.Step(time.Second)

	clk := s.Clock.Clock()
	if clk.Hour != 12 {
		t.Fatalf("hour = %v, want 12", clk.Hour)
	}

	want := sky.ComputeSolarDirection(172, 12, cfg.Sky.Observer).Negate()
	if got := s.Sun.Forward(); !got.ApproxEqual(want, 1e-5) {
		t.Errorf("sun forward = %v, want %v", got, want)
	}
	if !s.Sun.Visible {
		t.Error("midsummer noon sun should be visible")
	}
	if s.Frames() != 1 {
		t.Errorf("frames = %d, want 1", s.Frames())
	}
	if s.Rejected() != 0 {
		t.Errorf("rejected = %d, want 0", s.Rejected())
	}
	if !s.Moon.Applied() {
		t.Error("moon light was not updated")
	}
}

func TestStepRejectsNonFinite(t *testing.T) {
	cfg := config.Default()
	cfg.Sky.Model = "orbital"
	cfg.Clock.Days = math.NaN()

	s, err := New(cfg)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	s.Step(time.Second)

	if s.Rejected() != 1 {
		t.Errorf("rejected = %d, want 1", s.Rejected())
	}
	if s.Sun.Applied() {
		t.Error("sun should not have been oriented from a NaN clock")
	}
}

func TestRunStopsAfterFrames(t *testing.T) {
	s, err := New(config.Default())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if err := s.Run(context.Background(), time.Millisecond, 3); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if s.Frames() != 3 {
		t.Errorf("frames = %d, want 3", s.Frames())
	}
}

func TestRunHonorsCancel(t *testing.T) {
	s, err := New(config.Default())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := s.Run(ctx, time.Hour, 0); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if s.Frames() != 0 {
		t.Errorf("frames = %d, want 0", s.Frames())
	}
}

func TestRunRejectsZeroTick(t *testing.T) {
	s, err := New(config.Default())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := s.Run(context.Background(), 0, 1); err == nil {
		t.Error("expected error for zero tick")
	}
}

func TestOrbitalLightsFollowCameraUp(t *testing.T) {
	cfg := config.Default()
	cfg.Sky.Model = "orbital"
	cfg.Camera.Pitch = 45
	cfg.Camera.YawPerSecond = 90
	cfg.Clock.Days = 0.1

	s, err := New(cfg)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	s.Step(time.Second)

	if got, want := s.Camera.Yaw, float32(math.Pi/2); math.Abs(float64(got-want)) > 1e-5 {
		t.Errorf("camera yaw = %v, want %v", got, want)
	}
	if !s.Sun.Up.ApproxEqual(s.Camera.Up(), 1e-6) {
		t.Errorf("sun up = %v, camera up = %v", s.Sun.Up, s.Camera.Up())
	}

	// The forward axis does not depend on the reference up.
	dir := sky.ComputeOrbitalDirection(s.Clock.Clock().Days, 0, cfg.Sky.Orbit, cfg.Sky.Observer)
	if got := s.Sun.Forward(); !got.ApproxEqual(dir.Negate(), 1e-5) {
		t.Errorf("sun forward = %v, want %v", got, dir.Negate())
	}
}
