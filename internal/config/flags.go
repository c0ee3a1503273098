package config

import (
	"flag"
	"math"
)

var (
	flagConfig = flag.String("config", "", "Path to config file")
	flagDebug  = flag.Bool("debug", false, "Enable debug logging")
	flagModel  = flag.String("model", "", "Sky model: orbital, solar-lunar or ephemeris")
	flagLat    = flag.Float64("lat", math.NaN(), "Observer latitude in degrees")
	flagLon    = flag.Float64("lon", math.NaN(), "Observer longitude in degrees")
	flagTZ     = flag.Float64("tz", math.NaN(), "Timezone offset from UTC in hours")
	flagTilt   = flag.Float64("tilt", math.NaN(), "Axial tilt in degrees (orbital model)")
	flagDay    = flag.Int("day", 0, "Starting day of year")
	flagHour   = flag.Float64("hour", math.NaN(), "Starting hour of day")
	flagFrames = flag.Int("frames", 0, "Stop after this many frames")
	flagSave   = flag.Bool("save", false, "Write the effective config to the user config directory")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// SaveRequested reports whether --save was given.
func SaveRequested() bool {
	return *flagSave
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagModel != "" {
		cfg.Sky.Model = *flagModel
	}
	if !math.IsNaN(*flagLat) {
		cfg.Sky.Observer.Latitude = *flagLat
	}
	if !math.IsNaN(*flagLon) {
		cfg.Sky.Observer.Longitude = *flagLon
	}
	if !math.IsNaN(*flagTZ) {
		cfg.Sky.Observer.Timezone = *flagTZ
	}
	if !math.IsNaN(*flagTilt) {
		cfg.Sky.Orbit.AxialTilt = *flagTilt
	}
	if *flagDay > 0 {
		cfg.Clock.Day = *flagDay
	}
	if !math.IsNaN(*flagHour) {
		cfg.Clock.Hour = *flagHour
	}
	if *flagFrames > 0 {
		cfg.Loop.Frames = *flagFrames
	}
}
