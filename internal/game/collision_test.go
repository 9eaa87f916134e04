package game

import (
	"testing"
	"time"

	"github.com/vovakirdan/square-catch/internal/core"
)

func square(x, y int) Target {
	return Target{Position: core.Pt(x, y), Width: 25, Height: 25, CreatedAt: t0}
}

func TestResolveAvatarOnTarget(t *testing.T) {
	targets := []Target{square(300, 200)}

	kept, caught := Resolve(core.Pt(300, 200), 25, targets)
	if caught != 1 {
		t.Errorf("caught = %d, expected 1", caught)
	}
	if len(kept) != 0 {
		t.Errorf("Caught target should be removed, %d left", len(kept))
	}
}

func TestResolveIsIdempotent(t *testing.T) {
	targets := []Target{square(300, 200), square(10, 10)}

	kept, caught := Resolve(core.Pt(300, 200), 25, targets)
	if caught != 1 {
		t.Fatalf("first Resolve caught %d, expected 1", caught)
	}

	kept, caught = Resolve(core.Pt(300, 200), 25, kept)
	if caught != 0 {
		t.Errorf("second Resolve caught %d, expected 0", caught)
	}
	if len(kept) != 1 {
		t.Errorf("Untouched target should survive, got %d", len(kept))
	}
}

func TestResolveMultiple(t *testing.T) {
	targets := []Target{
		square(290, 190),
		square(310, 210),
		square(325, 225), // bottom-right corner of the box
		square(500, 50),
	}

	kept, caught := Resolve(core.Pt(300, 200), 25, targets)
	if caught != 3 {
		t.Errorf("caught = %d, expected 3", caught)
	}
	if len(kept) != 1 || kept[0].Position != core.Pt(500, 50) {
		t.Errorf("Expected only the far target to survive, got %+v", kept)
	}
}

func TestResolveTestsAnchorOnly(t *testing.T) {
	avatar := core.Pt(300, 200)

	tests := []struct {
		name   string
		target Target
		caught bool
	}{
		{"anchor on left edge", square(275, 200), true},
		{"anchor on top edge", square(300, 175), true},
		// Extent overlaps the box but the anchor is outside it
		{"anchor just left of box", square(274, 200), false},
		{"anchor just above box", square(300, 174), false},
		{"anchor just past right edge", square(326, 200), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, caught := Resolve(avatar, 25, []Target{tc.target})
			if (caught == 1) != tc.caught {
				t.Errorf("Resolve caught=%d, expected caught=%v", caught, tc.caught)
			}
		})
	}
}

func TestResolveDoesNotMutateInput(t *testing.T) {
	targets := []Target{square(300, 200), square(0, 0)}
	Resolve(core.Pt(300, 200), 25, targets)

	if targets[0].Position != core.Pt(300, 200) || targets[1].Position != core.Pt(0, 0) {
		t.Errorf("Resolve modified its input: %+v", targets)
	}
}

func TestTargetAge(t *testing.T) {
	tg := square(0, 0)
	if got := tg.Age(t0.Add(3 * time.Second)); got != 3*time.Second {
		t.Errorf("Age() = %s, expected 3s", got)
	}
}
