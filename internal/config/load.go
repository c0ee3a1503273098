package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// EnvConfig names the environment variable that points at a config file.
const EnvConfig = "MIDGARD_SKY_CONFIG"

// Load resolves the sky configuration: defaults, then the first config file
// found, then command-line flags. The merged result must validate.
func Load() (*Config, error) {
	cfg := Default()

	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("reading sky config %s: %w", configPath, err)
		}
		cfg.Source = configPath
	}

	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		if cfg.Source != "" {
			return nil, fmt.Errorf("sky config %s: %w", cfg.Source, err)
		}
		return nil, fmt.Errorf("sky config: %w", err)
	}

	return cfg, nil
}

// configCandidates lists the search order: $MIDGARD_SKY_CONFIG, sky.yaml
// and config.yaml in the working directory, then the user config dir.
func configCandidates() []string {
	var candidates []string
	if env := os.Getenv(EnvConfig); env != "" {
		candidates = append(candidates, env)
	}
	return append(candidates,
		"sky.yaml",
		"config.yaml",
		filepath.Join(ConfigDir(), "config.yaml"),
	)
}

// findConfigFile returns the first existing candidate, or "".
func findConfigFile() string {
	for _, path := range configCandidates() {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "MidgardSky")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "MidgardSky")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "midgard-sky")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "midgard-sky")
	}
}

// loadFromFile merges a YAML file over cfg. Unknown keys are rejected so a
// misspelled observer or orbit setting does not silently fall back to the
// default. An empty file changes nothing.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
