package game

import "github.com/vovakirdan/square-catch/internal/core"

// CatchBox returns the closed box around the avatar center that catches
// targets.
func CatchBox(avatar core.Point, reach int) core.Rect {
	return core.CenteredRect(avatar, reach, reach)
}

// Resolve consumes every target whose anchor lies in the avatar's catch box
// and returns the survivors with the number consumed.
//
// Only the anchor is tested, not the target's full extent, so a square
// touching the box with its far corner is not caught.
func Resolve(avatar core.Point, reach int, targets []Target) ([]Target, int) {
	box := CatchBox(avatar, reach)

	kept := make([]Target, 0, len(targets))
	caught := 0
	for _, t := range targets {
		if box.Covers(t.Position) {
			caught++
			continue
		}
		kept = append(kept, t)
	}
	return kept, caught
}
