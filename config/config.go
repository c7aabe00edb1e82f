// Package config loads the game settings file. Missing file or missing
// keys fall back to defaults; out-of-range values are clamped rather than
// rejected so a hand-edited file never refuses to start the game.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/bughunt/game"
)

// DefaultPath is where the game looks for settings when no flag is given
const DefaultPath = "bughunt.toml"

// Config is the on-disk settings surface
type Config struct {
	Width         int   `toml:"width"`
	Height        int   `toml:"height"`
	Bugs          int   `toml:"bugs"`
	Hints         int   `toml:"hints"`
	InitialLength int   `toml:"initial_length"`
	Speed         int   `toml:"speed"` // frames between auto-moves, 0 = move on keypress only
	Seed          int64 `toml:"seed"`  // 0 = seed from the clock
	Sound         bool  `toml:"sound"`
}

// Default returns the settings used when no file exists
func Default() Config {
	return Config{
		Width:         20,
		Height:        15,
		Bugs:          1,
		Hints:         3,
		InitialLength: 5,
		Speed:         30,
		Sound:         true,
	}
}

// Load reads the TOML file at path. A missing file is not an error; it
// yields the defaults. A file that exists but does not parse is an error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	cfg.clamp()
	return cfg, nil
}

// clamp forces hand-edited values back into the playable range
func (c *Config) clamp() {
	if c.Width < 10 {
		c.Width = 10
	}
	if c.Height < 10 {
		c.Height = 10
	}
	if c.Bugs < 1 {
		c.Bugs = 1
	}
	if c.Hints < 0 {
		c.Hints = 0
	}
	if c.InitialLength < 1 {
		c.InitialLength = 1
	}
	if c.InitialLength > c.Width {
		c.InitialLength = c.Width
	}
	if c.Speed < 0 {
		c.Speed = 0
	}
	// Leave room on the board for at least one move
	if occupied := c.InitialLength + c.Bugs + c.Hints; occupied >= c.Width*c.Height {
		c.Bugs = 1
		c.Hints = 0
	}
}

// Game maps the file settings onto a core game configuration
func (c Config) Game() game.Config {
	return game.Config{
		Width:         c.Width,
		Height:        c.Height,
		InitialLength: c.InitialLength,
		Bugs:          c.Bugs,
		Hints:         c.Hints,
		Seed:          c.Seed,
	}
}
