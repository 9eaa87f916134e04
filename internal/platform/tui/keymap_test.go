package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/square-catch/internal/core"
	"github.com/vovakirdan/square-catch/internal/game"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMovement(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"w", runeKey('w'), core.ActionUp},
		{"s", runeKey('s'), core.ActionDown},
		{"a", runeKey('a'), core.ActionLeft},
		{"d", runeKey('d'), core.ActionRight},
		{"x", runeKey('x'), core.ActionNone},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keys.Movement(tt.msg); got != tt.want {
				t.Errorf("Movement(%q) = %v, want %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestPhaseHelp(t *testing.T) {
	keys := DefaultKeyMap()

	phases := []game.Phase{game.PhaseNameEntry, game.PhasePlaying, game.PhaseRoundEnd}
	for _, p := range phases {
		if len(phaseHelp{keys: keys, phase: p}.ShortHelp()) == 0 {
			t.Errorf("no help for %v", p)
		}
	}

	if got := (phaseHelp{keys: keys, phase: game.PhaseTerminated}).ShortHelp(); got != nil {
		t.Errorf("terminated help = %v, want nil", got)
	}
}
