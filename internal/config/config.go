// Package config provides YAML-based configuration for the 2048 game:
// spawn rules, the starting board and the campaign level list.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config contains all tunable game parameters.
type Config struct {
	Spawn        SpawnConfig    `yaml:"spawn"`
	InitialTiles int            `yaml:"initial_tiles"`
	Campaign     CampaignConfig `yaml:"campaign"`
}

// SpawnConfig controls random tile placement after a move.
type SpawnConfig struct {
	// TwoProbability is the chance that a spawned tile is a 2 rather than a 4.
	// Endless mode uses it directly; campaign levels inherit it unless they
	// set their own.
	TwoProbability float64 `yaml:"two_probability"`

	// AfterNoopMove spawns a tile even when a move left the board unchanged.
	AfterNoopMove bool `yaml:"after_noop_move"`
}

// CampaignConfig lists the campaign levels in play order.
type CampaignConfig struct {
	Levels []Level `yaml:"levels"`
}

// Level defines a campaign level with a target tile.
type Level struct {
	Name   string `yaml:"name"`
	Target uint32 `yaml:"target"` // Tile value that clears the level

	// TwoProbability overrides Spawn.TwoProbability for this level.
	// Zero inherits the global value.
	TwoProbability float64 `yaml:"two_probability"`
}

// LevelCount returns the number of campaign levels.
func (c Config) LevelCount() int {
	return len(c.Campaign.Levels)
}

// Level returns the level at the given index (0-based).
// Returns false if index is out of range.
func (c Config) Level(index int) (Level, bool) {
	if index < 0 || index >= len(c.Campaign.Levels) {
		return Level{}, false
	}
	return c.Campaign.Levels[index], true
}

// normalize fills inherited values.
func (c *Config) normalize() {
	for i := range c.Campaign.Levels {
		lvl := &c.Campaign.Levels[i]
		if lvl.TwoProbability == 0 {
			lvl.TwoProbability = c.Spawn.TwoProbability
		}
		if lvl.Name == "" {
			lvl.Name = fmt.Sprintf("Level %d", i+1)
		}
	}
}

// Validate checks that every value is usable by the game.
func (c Config) Validate() error {
	if c.Spawn.TwoProbability <= 0 || c.Spawn.TwoProbability > 1 {
		return fmt.Errorf("%w: spawn.two_probability %v not in (0, 1]", ErrInvalidConfig, c.Spawn.TwoProbability)
	}
	if c.InitialTiles < 1 || c.InitialTiles > 16 {
		return fmt.Errorf("%w: initial_tiles %d not in [1, 16]", ErrInvalidConfig, c.InitialTiles)
	}
	for i, lvl := range c.Campaign.Levels {
		if lvl.TwoProbability < 0 || lvl.TwoProbability > 1 {
			return fmt.Errorf("%w: level %d two_probability %v not in [0, 1]", ErrInvalidConfig, i+1, lvl.TwoProbability)
		}
		if lvl.Target < 4 || lvl.Target&(lvl.Target-1) != 0 {
			return fmt.Errorf("%w: level %d target %d is not a power of two >= 4", ErrInvalidConfig, i+1, lvl.Target)
		}
	}
	return nil
}
