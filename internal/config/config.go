// Package config provides YAML-based runtime configuration for goldmine.
// The upgrade and achievement catalogs are fixed in code and deliberately
// not configurable; config covers timing and per-session behavior only.
package config

import "time"

// Config contains runtime settings for a game session.
type Config struct {
	Timing  TimingConfig  `yaml:"timing"`
	Session SessionConfig `yaml:"session"`
}

// TimingConfig controls the simulation clock.
type TimingConfig struct {
	TickMillis          int `yaml:"tick_ms"`           // simulation tick period
	ClickCooldownMillis int `yaml:"click_cooldown_ms"` // minimum gap between effective clicks
}

// SessionConfig controls per-run behavior.
type SessionConfig struct {
	StartingGold float64 `yaml:"starting_gold"`
	Autosave     bool    `yaml:"autosave"` // record a run summary on quit
}

// TickInterval returns the tick period, falling back to 100ms when unset
// or nonsensical.
func (c Config) TickInterval() time.Duration {
	if c.Timing.TickMillis <= 0 {
		return 100 * time.Millisecond
	}
	return time.Duration(c.Timing.TickMillis) * time.Millisecond
}

// ClickCooldown returns the click cooldown, falling back to 500ms when
// unset or nonsensical.
func (c Config) ClickCooldown() time.Duration {
	if c.Timing.ClickCooldownMillis <= 0 {
		return 500 * time.Millisecond
	}
	return time.Duration(c.Timing.ClickCooldownMillis) * time.Millisecond
}
