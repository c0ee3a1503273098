// Package sim implements the headless sky frame loop.
package sim

import (
	"context"
	"fmt"
	gomath "math"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/midgard-sky/internal/clock"
	"github.com/Faultbox/midgard-sky/internal/config"
	"github.com/Faultbox/midgard-sky/internal/engine/camera"
	"github.com/Faultbox/midgard-sky/internal/engine/lighting"
	"github.com/Faultbox/midgard-sky/internal/logger"
	"github.com/Faultbox/midgard-sky/pkg/sky"
)

const deg2Rad = float32(gomath.Pi / 180)

// Simulation advances a sky clock and keeps the sun and moon lights
// pointed at the calculated directions.
type Simulation struct {
	Clock      clock.Advancer
	Calculator *sky.Calculator
	Sun        *lighting.DirectionalLight
	Moon       *lighting.DirectionalLight // nil when the model has no moon
	Camera     *camera.OrbitCamera

	// cameraUp orients lights against the camera's up axis instead of
	// the world's.
	cameraUp     bool
	yawPerSecond float32

	frames   int
	rejected int
	log      *zap.Logger
}

// New builds a simulation from configuration.
func New(cfg *config.Config) (*Simulation, error) {
	kind, err := sky.ParseKind(cfg.Sky.Model)
	if err != nil {
		return nil, err
	}

	model, err := sky.NewModel(kind, cfg.Sky.ModelOptions())
	if err != nil {
		return nil, fmt.Errorf("failed to create sky model: %w", err)
	}

	calc, err := sky.NewCalculator(model, cfg.Sky.Observer)
	if err != nil {
		return nil, err
	}

	adv, err := NewAdvancer(kind, cfg.Clock)
	if err != nil {
		return nil, err
	}

	s := &Simulation{
		Clock:      adv,
		Calculator: calc,
		Sun:        newLight("sun", cfg.Lights.SunIntensity, cfg.Lights),
		Camera:     newCamera(cfg.Camera),

		cameraUp:     kind == sky.KindOrbital,
		yawPerSecond: cfg.Camera.YawPerSecond * deg2Rad,
		log:          logger.Named("sim"),
	}
	s.Sun.Tinted = true
	if _, ok := calc.Moon(adv.Clock()); ok {
		s.Moon = newLight("moon", cfg.Lights.MoonIntensity, cfg.Lights)
	}

	s.log.Info("simulation created",
		zap.String("model", string(kind)),
		zap.Float64("latitude", cfg.Sky.Observer.Latitude),
		zap.Float64("longitude", cfg.Sky.Observer.Longitude),
		zap.Float64("timezone", cfg.Sky.Observer.Timezone),
		zap.Bool("moon", s.Moon != nil),
	)
	return s, nil
}

func newLight(name string, intensity float32, cfg config.LightsConfig) *lighting.DirectionalLight {
	l := lighting.NewDirectionalLight(name, intensity)
	l.Smoothing = cfg.Smoothing
	return l
}

func newCamera(cfg config.CameraConfig) *camera.OrbitCamera {
	c := camera.NewOrbitCamera()
	c.Pitch = cfg.Pitch * deg2Rad
	c.Yaw = cfg.Yaw * deg2Rad
	return c
}

// NewAdvancer returns the clock that feeds the given model kind.
func NewAdvancer(kind sky.Kind, cfg config.ClockConfig) (clock.Advancer, error) {
	switch kind {
	case sky.KindOrbital:
		a := clock.NewDayAdvancer(cfg.Days, cfg.DaysPerSecond)
		a.Enabled = cfg.AutoProgress
		return a, nil
	case sky.KindSolarLunar:
		c := clock.NewSolarClock(cfg.Day, cfg.Hour, cfg.HoursPerSecond, cfg.DaysPerRollover)
		c.Enabled = cfg.AutoProgress
		return c, nil
	case sky.KindEphemeris:
		start := time.Now()
		if cfg.Start != "" {
			t, err := time.Parse(time.RFC3339, cfg.Start)
			if err != nil {
				return nil, fmt.Errorf("clock start: %w", err)
			}
			start = t
		}
		speed := cfg.Speed
		if !cfg.AutoProgress {
			speed = 0
		}
		return &clock.WallClock{Now: start, Speed: speed}, nil
	default:
		return nil, fmt.Errorf("%w: %q", sky.ErrUnknownModel, kind)
	}
}

// Step advances the clock by dt and re-orients the lights.
func (s *Simulation) Step(dt time.Duration) {
	s.Clock.Advance(dt)
	clk := s.Clock.Clock()

	if s.yawPerSecond != 0 && dt > 0 {
		s.Camera.Orbit(s.yawPerSecond*float32(dt.Seconds()), 0)
	}
	if s.cameraUp {
		up := s.Camera.Up()
		s.Sun.Up = up
		if s.Moon != nil {
			s.Moon.Up = up
		}
	}

	if !s.Sun.Apply(s.Calculator.Sun(clk)) {
		s.rejected++
		s.log.Warn("rejected non-finite sun direction", zap.Int("frame", s.frames))
	}
	if s.Moon != nil {
		if r, ok := s.Calculator.Moon(clk); ok && !s.Moon.Apply(r) {
			s.rejected++
			s.log.Warn("rejected non-finite moon direction", zap.Int("frame", s.frames))
		}
	}
	s.frames++
}

// Frames returns how many steps have run.
func (s *Simulation) Frames() int {
	return s.frames
}

// Rejected returns how many light updates were refused.
func (s *Simulation) Rejected() int {
	return s.rejected
}

// Run steps once per tick until ctx is done or frames steps have run.
// A frames value of zero runs until ctx is done.
func (s *Simulation) Run(ctx context.Context, tick time.Duration, frames int) error {
	if tick <= 0 {
		return fmt.Errorf("tick must be positive, got %v", tick)
	}

	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	lastTime := time.Now()
	fpsTimer := lastTime
	fpsCount := 0

	s.log.Info("starting sky loop", zap.Duration("tick", tick), zap.Int("frames", frames))

	for frames == 0 || s.frames < frames {
		select {
		case <-ctx.Done():
			s.summary()
			return ctx.Err()
		case now := <-ticker.C:
			dt := now.Sub(lastTime)
			lastTime = now

			s.Step(dt)
			s.logFrame(dt)

			fpsCount++
			if now.Sub(fpsTimer) >= time.Second {
				s.log.Debug("fps", zap.Int("count", fpsCount))
				fpsCount = 0
				fpsTimer = now
			}
		}
	}

	s.summary()
	return nil
}

func (s *Simulation) logFrame(dt time.Duration) {
	if ce := s.log.Check(zap.DebugLevel, "frame"); ce != nil {
		fields := []zap.Field{
			zap.Int("frame", s.frames),
			zap.Duration("dt", dt),
			zap.Any("clock", s.Clock.Clock()),
		}
		fields = append(fields, lightFields("sun", s.Sun)...)
		if s.Moon != nil {
			fields = append(fields, lightFields("moon", s.Moon)...)
		}
		ce.Write(fields...)
	}
}

func lightFields(prefix string, l *lighting.DirectionalLight) []zap.Field {
	fwd := l.Forward()
	return []zap.Field{
		zap.Float64(prefix+"_altitude", sky.Horizontal{Altitude: l.Altitude}.AltitudeDeg()),
		zap.Bool(prefix+"_visible", l.Visible),
		zap.Float32(prefix+"_intensity", l.Intensity),
		zap.Float32s(prefix+"_forward", []float32{fwd.X, fwd.Y, fwd.Z}),
	}
}

func (s *Simulation) summary() {
	fields := []zap.Field{
		zap.Int("frames", s.frames),
		zap.Int("rejected", s.rejected),
		zap.Any("clock", s.Clock.Clock()),
	}
	fields = append(fields, lightFields("sun", s.Sun)...)
	if s.Moon != nil {
		fields = append(fields, lightFields("moon", s.Moon)...)
	}
	s.log.Info("sky loop stopped", fields...)
}
