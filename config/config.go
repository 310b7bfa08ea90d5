// Package config loads the host/tool configuration for cmd/missionrun.
// Missions themselves are never YAML (§6.3's JSON schema is untouched);
// only this outer run configuration is.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// RunConfig is the on-disk YAML document cmd/missionrun loads.
type RunConfig struct {
	// TickRate is a tick cadence in ticks per second; Default sets 25.
	// cmd/missionrun does not use this field: its tick loop is untimed and
	// its JSON output reports interp.TickRate.
	TickRate int `yaml:"tickRate"`

	// LogLevel is one of "debug", "info", "warn", "error".
	LogLevel string `yaml:"logLevel"`

	// SaveDBPath is where cmd/missionrun's save-slot sqlite file lives.
	SaveDBPath string `yaml:"saveDbPath"`

	// Seed pre-seeds the deterministic PRNG (§4.A); zero means "derive
	// from the current time" at the call site, not here.
	Seed uint32 `yaml:"seed"`
}

// Default returns the configuration used when no file is supplied.
func Default() RunConfig {
	return RunConfig{
		TickRate:   25,
		LogLevel:   "info",
		SaveDBPath: "missionrun.db",
	}
}

// Load reads and parses a YAML RunConfig from path, starting from
// Default() so a partial file only overrides what it sets.
func Load(path string) (RunConfig, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}
