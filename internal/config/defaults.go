package config

import (
	_ "embed"
)

//go:embed defaults/goldmine.yaml
var defaultYAML []byte

// Default returns the hardcoded default configuration, used when the
// embedded YAML cannot be parsed.
func Default() Config {
	return Config{
		Timing: TimingConfig{
			TickMillis:          100,
			ClickCooldownMillis: 500,
		},
		Session: SessionConfig{
			StartingGold: 0,
			Autosave:     true,
		},
	}
}

// DefaultYAML returns the embedded default YAML, for printing a template.
func DefaultYAML() []byte {
	return defaultYAML
}
