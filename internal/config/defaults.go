package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/catch.yaml
var defaultCatchYAML []byte

// DefaultCatchConfig returns the default game configuration.
func DefaultCatchConfig() CatchConfig {
	return CatchConfig{
		Field: FieldConfig{
			Width:  600,
			Height: 400,
		},
		Avatar: AvatarConfig{
			StartX: 300,
			StartY: 200,
			Radius: 25,
			Reach:  25,
			Step:   2,
		},
		Targets: TargetConfig{
			Width:    25,
			Height:   25,
			Cap:      5,
			Lifetime: 5 * time.Second,
		},
		Session: SessionConfig{
			Budget:        20 * time.Second,
			PlayRate:      100,
			IdleRate:      30,
			MaxNameLength: 16,
		},
		Input: InputConfig{
			HoldWindow: 500 * time.Millisecond,
		},
		Leaderboard: LeaderboardConfig{
			Size: 5,
		},
	}
}
