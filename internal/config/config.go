// Package config provides YAML-based game configuration loading.
package config

import (
	"fmt"
	"time"
)

// CatchConfig contains all configuration for the game.
type CatchConfig struct {
	Field       FieldConfig       `yaml:"field"`
	Avatar      AvatarConfig      `yaml:"avatar"`
	Targets     TargetConfig      `yaml:"targets"`
	Session     SessionConfig     `yaml:"session"`
	Input       InputConfig       `yaml:"input"`
	Leaderboard LeaderboardConfig `yaml:"leaderboard"`
}

// FieldConfig defines the play-field size in world units.
type FieldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// AvatarConfig defines the player-controlled circle.
type AvatarConfig struct {
	StartX       int  `yaml:"start_x"`
	StartY       int  `yaml:"start_y"`
	Radius       int  `yaml:"radius"`
	Reach        int  `yaml:"reach"` // Half-extent of the catch box
	Step         int  `yaml:"step"`
	ClampToField bool `yaml:"clamp_to_field"`
}

// TargetConfig defines the collectible squares.
type TargetConfig struct {
	Width    int           `yaml:"width"`
	Height   int           `yaml:"height"`
	Cap      int           `yaml:"cap"`
	Lifetime time.Duration `yaml:"lifetime"`
}

// SessionConfig defines round timing and name entry.
type SessionConfig struct {
	Budget        time.Duration `yaml:"budget"`
	PlayRate      int           `yaml:"play_rate"`
	IdleRate      int           `yaml:"idle_rate"`
	MaxNameLength int           `yaml:"max_name_length"`
}

// InputConfig defines how terminal key repeats become held keys.
type InputConfig struct {
	HoldWindow time.Duration `yaml:"hold_window"`
}

// LeaderboardConfig defines how many entries are shown after a round.
type LeaderboardConfig struct {
	Size int `yaml:"size"`
}

// Validate checks that the configuration describes a playable game.
func (c CatchConfig) Validate() error {
	switch {
	case c.Field.Width <= 0 || c.Field.Height <= 0:
		return fmt.Errorf("config: field must be positive, got %dx%d", c.Field.Width, c.Field.Height)
	case c.Targets.Width <= 0 || c.Targets.Height <= 0:
		return fmt.Errorf("config: target size must be positive, got %dx%d", c.Targets.Width, c.Targets.Height)
	case c.Targets.Width > c.Field.Width || c.Targets.Height > c.Field.Height:
		return fmt.Errorf("config: target %dx%d does not fit in field %dx%d",
			c.Targets.Width, c.Targets.Height, c.Field.Width, c.Field.Height)
	case c.Targets.Cap <= 0:
		return fmt.Errorf("config: target cap must be positive, got %d", c.Targets.Cap)
	case c.Targets.Lifetime <= 0:
		return fmt.Errorf("config: target lifetime must be positive, got %s", c.Targets.Lifetime)
	case c.Session.Budget <= 0:
		return fmt.Errorf("config: session budget must be positive, got %s", c.Session.Budget)
	case c.Session.PlayRate <= 0 || c.Session.IdleRate <= 0:
		return fmt.Errorf("config: frame rates must be positive, got %d/%d", c.Session.PlayRate, c.Session.IdleRate)
	case c.Session.MaxNameLength <= 0:
		return fmt.Errorf("config: max name length must be positive, got %d", c.Session.MaxNameLength)
	case c.Avatar.Reach < 0 || c.Avatar.Radius < 0 || c.Avatar.Step < 0:
		return fmt.Errorf("config: avatar dimensions must not be negative")
	case c.Input.HoldWindow <= 0:
		return fmt.Errorf("config: hold window must be positive, got %s", c.Input.HoldWindow)
	case c.Leaderboard.Size <= 0:
		return fmt.Errorf("config: leaderboard size must be positive, got %d", c.Leaderboard.Size)
	}
	return nil
}
