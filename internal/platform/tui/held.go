package tui

import (
	"time"

	"github.com/vovakirdan/square-catch/internal/core"
)

// HeldKeys approximates key-held state from terminal key repeats.
// Terminals report presses but not releases, so a key counts as held
// for a short window after each press or repeat.
type HeldKeys struct {
	window time.Duration
	last   map[core.Action]time.Time
}

// NewHeldKeys creates a tracker with the given hold window.
func NewHeldKeys(window time.Duration) *HeldKeys {
	return &HeldKeys{
		window: window,
		last:   make(map[core.Action]time.Time),
	}
}

// Press records a press or repeat of a at now.
func (h *HeldKeys) Press(a core.Action, now time.Time) {
	h.last[a] = now
}

// IsHeld reports whether a was pressed within the window before now.
func (h *HeldKeys) IsHeld(a core.Action, now time.Time) bool {
	t, ok := h.last[a]
	return ok && now.Sub(t) < h.window
}

// Apply marks every held action in frame.
func (h *HeldKeys) Apply(frame *core.InputFrame, now time.Time) {
	for a := range h.last {
		if h.IsHeld(a, now) {
			frame.Set(a)
		}
	}
}

// Reset forgets all presses.
func (h *HeldKeys) Reset() {
	clear(h.last)
}
