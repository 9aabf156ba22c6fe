package config

import (
	_ "embed"
)

//go:embed defaults/t2048.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
// It mirrors defaults/t2048.yaml and is the fallback when no YAML parses.
func Default() Config {
	cfg := base()
	cfg.normalize()
	return cfg
}

// base is Default before inherited values are filled in. Parse decodes on
// top of it, so levels without their own probability follow whatever
// spawn.two_probability the file sets.
func base() Config {
	return Config{
		Spawn: SpawnConfig{
			TwoProbability: 0.9,
			AfterNoopMove:  false,
		},
		InitialTiles: 2,
		Campaign: CampaignConfig{
			Levels: []Level{
				{Name: "Warm-up", Target: 128},
				{Name: "Getting Started", Target: 256},
				{Name: "Building Momentum", Target: 512},
				{Name: "The Climb", Target: 1024},
				{Name: "Classic 2048", Target: 2048},
				{Name: "Beyond Limits", Target: 4096, TwoProbability: 0.88},
				{Name: "Master Class", Target: 8192, TwoProbability: 0.85},
				{Name: "Expert Challenge", Target: 8192, TwoProbability: 0.82},
				{Name: "Grandmaster", Target: 8192, TwoProbability: 0.80},
				{Name: "Ultimate Champion", Target: 8192, TwoProbability: 0.75},
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML, comments included.
func DefaultYAML() []byte {
	return defaultYAML
}
