// Package config handles sky simulation configuration loading and management.
package config

import (
	"fmt"
	"time"

	"github.com/Faultbox/midgard-sky/pkg/sky"
)

// Config holds all simulation settings.
type Config struct {
	Sky     SkyConfig     `yaml:"sky"`
	Clock   ClockConfig   `yaml:"clock"`
	Lights  LightsConfig  `yaml:"lights"`
	Camera  CameraConfig  `yaml:"camera"`
	Loop    LoopConfig    `yaml:"loop"`
	Logging LoggingConfig `yaml:"logging"`

	// Source is the file the config was read from, empty for defaults.
	Source string `yaml:"-"`
}

// SkyConfig selects the sky model and its parameters.
type SkyConfig struct {
	Model         string           `yaml:"model"` // orbital, solar-lunar or ephemeris
	Observer      sky.Observer     `yaml:"observer"`
	Orbit         sky.OrbitParams  `yaml:"orbit"`
	Bias          float64          `yaml:"bias"`                 // orbital day offset
	MoonOrbit     *sky.OrbitParams `yaml:"moon_orbit,omitempty"` // second orbital body
	MoonBias      float64          `yaml:"moon_bias"`
	Lunar         sky.LunarParams  `yaml:"lunar"`
	EphemerisYear int              `yaml:"ephemeris_year"`
}

// ClockConfig holds the starting time and how fast it advances.
type ClockConfig struct {
	AutoProgress bool `yaml:"auto_progress"`

	// Orbital clock
	Days          float64 `yaml:"days"`
	DaysPerSecond float64 `yaml:"days_per_second"`

	// Solar clock
	Day             int     `yaml:"day"`
	Hour            float64 `yaml:"hour"`
	HoursPerSecond  float64 `yaml:"hours_per_second"`
	DaysPerRollover int     `yaml:"days_per_rollover"`

	// Ephemeris clock
	Start string  `yaml:"start"` // RFC3339, empty means now
	Speed float64 `yaml:"speed"` // simulated seconds per real second
}

// LightsConfig holds the directional light settings.
type LightsConfig struct {
	SunIntensity  float32 `yaml:"sun_intensity"`
	MoonIntensity float32 `yaml:"moon_intensity"`
	Smoothing     float32 `yaml:"smoothing"` // 0 snaps, towards 1 lags
}

// CameraConfig places the observer camera. Angles are in degrees.
type CameraConfig struct {
	Pitch        float32 `yaml:"pitch"`
	Yaw          float32 `yaml:"yaw"`
	YawPerSecond float32 `yaml:"yaw_per_second"`
}

// LoopConfig holds frame loop settings.
type LoopConfig struct {
	Tick   time.Duration `yaml:"tick"`
	Frames int           `yaml:"frames"` // 0 runs until interrupted
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Sky: SkyConfig{
			Model:         string(sky.KindSolarLunar),
			Observer:      sky.Observer{Latitude: 0, Longitude: 0, Timezone: 0},
			Orbit:         sky.DefaultOrbit(),
			Lunar:         sky.DefaultLunar(),
			EphemerisYear: sky.DefaultEphemerisYear,
		},
		Clock: ClockConfig{
			AutoProgress:    true,
			DaysPerSecond:   0.25,
			Day:             1,
			Hour:            12,
			HoursPerSecond:  24,
			DaysPerRollover: 8,
			Speed:           1,
		},
		Lights: LightsConfig{
			SunIntensity:  1.0,
			MoonIntensity: 0.2,
			Smoothing:     0,
		},
		Camera: CameraConfig{
			Pitch: 30,
		},
		Loop: LoopConfig{
			Tick:   time.Second / 60,
			Frames: 0,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate checks settings that would make the simulation meaningless.
func (c *Config) Validate() error {
	if _, err := sky.ParseKind(c.Sky.Model); err != nil {
		return err
	}
	if err := c.Sky.Observer.Validate(); err != nil {
		return err
	}
	if c.Clock.Day < 1 || c.Clock.Day > sky.DaysPerYear {
		return fmt.Errorf("clock day %d out of range [1, %d]", c.Clock.Day, sky.DaysPerYear)
	}
	if c.Clock.Hour < 0 || c.Clock.Hour > 24 {
		return fmt.Errorf("clock hour %v out of range [0, 24]", c.Clock.Hour)
	}
	if c.Clock.Start != "" {
		if _, err := time.Parse(time.RFC3339, c.Clock.Start); err != nil {
			return fmt.Errorf("clock start: %w", err)
		}
	}
	if c.Camera.Pitch < -85 || c.Camera.Pitch > 85 {
		return fmt.Errorf("camera pitch %v out of range [-85, 85]", c.Camera.Pitch)
	}
	if c.Loop.Tick <= 0 {
		return fmt.Errorf("loop tick must be positive, got %v", c.Loop.Tick)
	}
	return nil
}

// ModelOptions converts the sky section for sky.NewModel.
func (s SkyConfig) ModelOptions() sky.ModelOptions {
	return sky.ModelOptions{
		Orbit:         s.Orbit,
		Bias:          s.Bias,
		MoonOrbit:     s.MoonOrbit,
		MoonBias:      s.MoonBias,
		Lunar:         s.Lunar,
		EphemerisYear: s.EphemerisYear,
	}
}
