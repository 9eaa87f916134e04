package game

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/square-catch/internal/config"
	"github.com/vovakirdan/square-catch/internal/core"
)

// Target is a collectible square. Position is its top-left anchor.
type Target struct {
	Position  core.Point
	Width     int
	Height    int
	CreatedAt time.Time
}

// Rect returns the area covered by the target.
func (t Target) Rect() core.Rect {
	return core.NewRect(t.Position.X, t.Position.Y, t.Width, t.Height)
}

// Age returns how long the target has existed at now.
func (t Target) Age(now time.Time) time.Duration {
	return now.Sub(t.CreatedAt)
}

// Spawner creates targets at random positions and expires old ones.
// It never mutates the slices it is given.
type Spawner struct {
	rng      *rand.Rand
	fieldW   int
	fieldH   int
	width    int
	height   int
	cap      int
	lifetime time.Duration
}

// NewSpawner creates a spawner for the given field with its own seeded RNG.
func NewSpawner(seed int64, field config.FieldConfig, targets config.TargetConfig) *Spawner {
	return &Spawner{
		rng:      rand.New(rand.NewSource(seed)),
		fieldW:   field.Width,
		fieldH:   field.Height,
		width:    targets.Width,
		height:   targets.Height,
		cap:      targets.Cap,
		lifetime: targets.Lifetime,
	}
}

// Reset reseeds the RNG.
func (sp *Spawner) Reset(seed int64) {
	sp.rng = rand.New(rand.NewSource(seed))
}

// Cap returns the maximum number of live targets.
func (sp *Spawner) Cap() int {
	return sp.cap
}

// Lifetime returns how long a target lives before it expires.
func (sp *Spawner) Lifetime() time.Duration {
	return sp.lifetime
}

// Advance adds one target if the population is below the cap.
func (sp *Spawner) Advance(targets []Target, now time.Time) []Target {
	if len(targets) >= sp.cap {
		return targets
	}
	// Full slice expression forces a fresh backing array.
	return append(targets[:len(targets):len(targets)], sp.spawn(now))
}

// spawn places a target so its whole extent stays on the field.
func (sp *Spawner) spawn(now time.Time) Target {
	maxX := core.Max(sp.fieldW-sp.width, 0)
	maxY := core.Max(sp.fieldH-sp.height, 0)
	return Target{
		Position:  core.Pt(sp.rng.Intn(maxX+1), sp.rng.Intn(maxY+1)),
		Width:     sp.width,
		Height:    sp.height,
		CreatedAt: now,
	}
}

// Expire returns the targets younger than the lifetime.
func (sp *Spawner) Expire(targets []Target, now time.Time) []Target {
	kept := make([]Target, 0, len(targets))
	for _, t := range targets {
		if t.Age(now) < sp.lifetime {
			kept = append(kept, t)
		}
	}
	return kept
}
