package game

import (
	"bytes"
	"errors"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/square-catch/internal/config"
	"github.com/vovakirdan/square-catch/internal/core"
)

// memoryBoard is an in-memory Leaderboard.
type memoryBoard struct {
	entries   []LeaderboardEntry
	recordErr error
}

func (b *memoryBoard) Record(e LeaderboardEntry) error {
	if b.recordErr != nil {
		return b.recordErr
	}
	b.entries = append(b.entries, e)
	return nil
}

func (b *memoryBoard) Top(limit int) ([]LeaderboardEntry, error) {
	top := append([]LeaderboardEntry(nil), b.entries...)
	sort.SliceStable(top, func(i, j int) bool { return top[i].Score > top[j].Score })
	if len(top) > limit {
		top = top[:limit]
	}
	return top, nil
}

const frame = 10 * time.Millisecond

func newTestSession(board Leaderboard, opts ...Option) *Session {
	return NewSession(config.DefaultCatchConfig(), board, 7, opts...)
}

func input(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func typed(text string, actions ...core.Action) core.InputFrame {
	in := input(actions...)
	in.Type([]rune(text)...)
	return in
}

// startPlaying submits name at t0.
func startPlaying(t *testing.T, s *Session, name string) {
	t.Helper()
	s.Step(t0, typed(name, core.ActionConfirm))
	if s.Phase() != PhasePlaying {
		t.Fatalf("Phase = %s after submitting %q, expected playing", s.Phase(), name)
	}
}

// farTargets fills the field to the cap with targets away from the start.
func farTargets(now time.Time) []Target {
	return []Target{
		{Position: core.Pt(0, 0), Width: 25, Height: 25, CreatedAt: now},
		{Position: core.Pt(575, 0), Width: 25, Height: 25, CreatedAt: now},
		{Position: core.Pt(0, 375), Width: 25, Height: 25, CreatedAt: now},
		{Position: core.Pt(575, 375), Width: 25, Height: 25, CreatedAt: now},
	}
}

// fullField is farTargets plus one more, so the spawner stays at its cap.
func fullField(now time.Time) []Target {
	return append(farTargets(now), Target{Position: core.Pt(300, 0), Width: 25, Height: 25, CreatedAt: now})
}

func TestNameEntry(t *testing.T) {
	s := newTestSession(&memoryBoard{})

	if s.Phase() != PhaseNameEntry {
		t.Fatalf("Initial phase = %s, expected name-entry", s.Phase())
	}

	// Empty name is ignored
	s.Step(t0, input(core.ActionConfirm))
	if s.Phase() != PhaseNameEntry {
		t.Errorf("Empty name should keep name-entry, got %s", s.Phase())
	}

	// Whitespace only is also ignored
	s.Step(t0, typed("   ", core.ActionConfirm))
	if s.Phase() != PhaseNameEntry {
		t.Errorf("Blank name should keep name-entry, got %s", s.Phase())
	}

	s = newTestSession(&memoryBoard{})
	s.Step(t0, typed("Alice", core.ActionConfirm))
	if s.Phase() != PhasePlaying {
		t.Fatalf("Phase = %s, expected playing", s.Phase())
	}
	if p := s.Player(); p.Name != "Alice" || p.Score != 0 {
		t.Errorf("Player = %+v, expected {Alice 0}", p)
	}
	if s.Avatar() != core.Pt(300, 200) {
		t.Errorf("Avatar = %v, expected (300, 200)", s.Avatar())
	}
	if len(s.Targets()) != 0 {
		t.Errorf("Targets should be cleared at round start, got %d", len(s.Targets()))
	}
	if s.RoundID() == "" {
		t.Error("Round should have an ID")
	}
}

func TestNameEditing(t *testing.T) {
	s := newTestSession(nil)

	s.Step(t0, typed("Bobx"))
	s.Step(t0, typed(string(core.KeyBackspace)))
	if got := s.NameInput(); got != "Bob" {
		t.Errorf("NameInput() = %q, expected %q", got, "Bob")
	}

	// Control characters are dropped and length is capped
	s.Step(t0, typed("\x01"+strings.Repeat("z", 40)))
	if got := len([]rune(s.NameInput())); got != 16 {
		t.Errorf("Name length = %d, expected cap of 16", got)
	}

	// Backspace on an empty buffer is harmless
	s = newTestSession(nil)
	s.Step(t0, typed(string(core.KeyBackspace)))
	if s.NameInput() != "" {
		t.Errorf("NameInput() = %q, expected empty", s.NameInput())
	}
}

func TestQuitDuringNameEntry(t *testing.T) {
	board := &memoryBoard{}
	s := newTestSession(board)

	res := s.Step(t0, typed("Alice", core.ActionQuit))
	if s.Phase() != PhaseTerminated || !res.State.Terminated {
		t.Errorf("Quit should terminate, phase = %s", s.Phase())
	}
	if len(board.entries) != 0 {
		t.Error("Quit before play should not persist anything")
	}
}

func TestQuitDuringPlay(t *testing.T) {
	board := &memoryBoard{}
	var console bytes.Buffer
	s := newTestSession(board, WithConsole(&console))
	startPlaying(t, s, "Alice")

	s.Step(t0.Add(frame), input(core.ActionQuit))
	if s.Phase() != PhaseTerminated {
		t.Errorf("Phase = %s, expected terminated", s.Phase())
	}
	if s.Outcome() != OutcomeQuit {
		t.Errorf("Outcome = %s, expected quit", s.Outcome())
	}
	if len(board.entries) != 0 {
		t.Error("Quit should not persist the score")
	}
	if console.Len() != 0 {
		t.Error("Quit should not print the leaderboard")
	}

	// Further input is ignored
	s.Step(t0.Add(2*frame), input(core.ActionRestart))
	if s.Phase() != PhaseTerminated {
		t.Error("Terminated is final")
	}
}

func TestMovement(t *testing.T) {
	s := newTestSession(nil)
	startPlaying(t, s, "Alice")

	s.Step(t0.Add(frame), input(core.ActionRight, core.ActionDown))
	if s.Avatar() != core.Pt(302, 202) {
		t.Errorf("Avatar = %v, expected (302, 202)", s.Avatar())
	}

	s.Step(t0.Add(2*frame), input(core.ActionLeft, core.ActionLeft, core.ActionUp))
	if s.Avatar() != core.Pt(300, 200) {
		t.Errorf("Avatar = %v, expected (300, 200)", s.Avatar())
	}
}

func TestMovementUnclampedByDefault(t *testing.T) {
	s := newTestSession(nil)
	startPlaying(t, s, "Alice")
	s.avatar = core.Pt(0, 0)

	s.Step(t0.Add(frame), input(core.ActionLeft, core.ActionUp))
	if s.Avatar() != core.Pt(-2, -2) {
		t.Errorf("Avatar = %v, expected (-2, -2)", s.Avatar())
	}
}

func TestMovementClamped(t *testing.T) {
	cfg := config.DefaultCatchConfig()
	cfg.Avatar.ClampToField = true
	s := NewSession(cfg, nil, 1)
	startPlaying(t, s, "Alice")
	s.avatar = core.Pt(600, 400)

	s.Step(t0.Add(frame), input(core.ActionRight, core.ActionDown))
	if s.Avatar() != core.Pt(600, 400) {
		t.Errorf("Avatar = %v, expected clamp at (600, 400)", s.Avatar())
	}
}

func TestScoring(t *testing.T) {
	s := newTestSession(nil)
	startPlaying(t, s, "Alice")

	now := t0.Add(frame)
	s.targets = append(farTargets(now), Target{Position: core.Pt(300, 200), Width: 25, Height: 25, CreatedAt: now})

	s.Step(now, input())
	if s.Player().Score != 1 {
		t.Errorf("Score = %d, expected 1", s.Player().Score)
	}
	if len(s.Targets()) != 4 {
		t.Errorf("Caught target should be removed, %d left", len(s.Targets()))
	}

	// Standing still does not catch the same target twice
	s.targets = fullField(now)
	s.Step(now.Add(frame), input())
	if s.Player().Score != 1 {
		t.Errorf("Score = %d after idle frame, expected 1", s.Player().Score)
	}
}

func TestTargetsExpireDuringPlay(t *testing.T) {
	s := newTestSession(nil)
	startPlaying(t, s, "Alice")

	s.targets = farTargets(t0)
	s.Step(t0.Add(5100*time.Millisecond), input())

	for _, tg := range s.Targets() {
		if tg.CreatedAt.Equal(t0) {
			t.Errorf("Target %v created at t0 should have expired", tg.Position)
		}
	}
	if len(s.Targets()) > 5 {
		t.Errorf("Target count %d exceeds cap", len(s.Targets()))
	}
}

func TestRoundEndsWhenTimeExpires(t *testing.T) {
	board := &memoryBoard{}
	var console bytes.Buffer
	s := newTestSession(board, WithConsole(&console))
	startPlaying(t, s, "Bob")
	s.player.Score = 10

	s.targets = fullField(t0.Add(19 * time.Second))
	s.Step(t0.Add(19900*time.Millisecond), input())
	if s.Phase() != PhasePlaying {
		t.Fatalf("Phase = %s at 19.9s, expected playing", s.Phase())
	}

	res := s.Step(t0.Add(20*time.Second), input())
	if s.Phase() != PhaseRoundEnd || s.Outcome() != OutcomeTimeExpired {
		t.Fatalf("Phase/outcome = %s/%s, expected round-end/time-expired", s.Phase(), s.Outcome())
	}
	if !res.State.RoundOver || res.State.Remaining != 0 {
		t.Errorf("State = %+v, expected round over with no time left", res.State)
	}

	if len(board.entries) != 1 || board.entries[0].Name != "Bob" || board.entries[0].Score != 10 {
		t.Fatalf("Board entries = %+v, expected one {Bob 10}", board.entries)
	}
	if board.entries[0].RoundID != s.RoundID() {
		t.Error("Entry should carry the round ID")
	}

	want := "Top-5 players:\n1. Bob: 10\n"
	if console.String() != want {
		t.Errorf("Console = %q, expected %q", console.String(), want)
	}
	if len(s.Leaderboard()) != 1 {
		t.Errorf("Leaderboard() has %d entries, expected 1", len(s.Leaderboard()))
	}
}

func TestLateFrameDoesNotScore(t *testing.T) {
	board := &memoryBoard{}
	s := newTestSession(board)
	startPlaying(t, s, "Alice")

	late := t0.Add(25 * time.Second)
	s.targets = append(farTargets(late), Target{Position: core.Pt(300, 200), Width: 25, Height: 25, CreatedAt: late})

	s.Step(late, input())
	if s.Phase() != PhaseRoundEnd {
		t.Fatalf("Phase = %s, expected round-end", s.Phase())
	}
	if s.Player().Score != 0 || board.entries[0].Score != 0 {
		t.Errorf("Frame past the budget should not score, got %d", s.Player().Score)
	}
}

func TestRestartAndRepeatedScores(t *testing.T) {
	board := &memoryBoard{}
	var console bytes.Buffer
	s := newTestSession(board, WithConsole(&console))

	startPlaying(t, s, "Bob")
	s.player.Score = 10
	s.Step(t0.Add(20*time.Second), input())

	s.Step(t0.Add(21*time.Second), input(core.ActionRestart))
	if s.Phase() != PhaseNameEntry {
		t.Fatalf("Phase = %s after restart, expected name-entry", s.Phase())
	}
	if s.NameInput() != "Bob" {
		t.Errorf("Restart should pre-fill the name, got %q", s.NameInput())
	}

	// Enter reuses the name
	start := t0.Add(22 * time.Second)
	s.Step(start, input(core.ActionConfirm))
	if s.Phase() != PhasePlaying || s.Player().Name != "Bob" || s.Player().Score != 0 {
		t.Fatalf("Second round did not start cleanly: %s %+v", s.Phase(), s.Player())
	}
	s.player.Score = 7
	s.Step(start.Add(20*time.Second), input())

	top := s.Leaderboard()
	if len(top) != 2 {
		t.Fatalf("Leaderboard has %d entries, expected both rounds", len(top))
	}
	if top[0].Score != 10 || top[1].Score != 7 || top[0].Name != "Bob" || top[1].Name != "Bob" {
		t.Errorf("Leaderboard = %+v, expected Bob 10 then Bob 7", top)
	}
	if strings.Count(console.String(), "Top-5 players:") != 2 {
		t.Errorf("Console should hold a snapshot per round, got %q", console.String())
	}
}

func TestRoundEndButtons(t *testing.T) {
	tests := []struct {
		name  string
		in    core.InputFrame
		phase Phase
	}{
		{"end key", input(core.ActionEnd), PhaseTerminated},
		{"quit key", input(core.ActionQuit), PhaseTerminated},
		{"enter restarts", input(core.ActionConfirm), PhaseNameEntry},
		{"click restart", clickAt(RestartButton.Center()), PhaseNameEntry},
		{"click end", clickAt(EndButton.Center()), PhaseTerminated},
		{"click restart lower half", clickAt(core.Pt(300, 345)), PhaseNameEntry},
		{"click end lower half", clickAt(core.Pt(300, 395)), PhaseTerminated},
		{"click between buttons", clickAt(core.Pt(300, 355)), PhaseRoundEnd},
		{"click elsewhere", clickAt(core.Pt(10, 10)), PhaseRoundEnd},
		{"no input", input(), PhaseRoundEnd},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestSession(&memoryBoard{})
			startPlaying(t, s, "Alice")
			s.Step(t0.Add(20*time.Second), input())

			s.Step(t0.Add(21*time.Second), tc.in)
			if s.Phase() != tc.phase {
				t.Errorf("Phase = %s, expected %s", s.Phase(), tc.phase)
			}
		})
	}
}

func clickAt(p core.Point) core.InputFrame {
	in := core.NewInputFrame()
	in.Click(p)
	return in
}

func TestSaveErrorKeepsSessionAlive(t *testing.T) {
	board := &memoryBoard{recordErr: errors.New("disk full")}
	s := newTestSession(board)
	startPlaying(t, s, "Alice")

	s.Step(t0.Add(20*time.Second), input())
	if s.Phase() != PhaseRoundEnd {
		t.Fatalf("Phase = %s, expected round-end", s.Phase())
	}
	if s.SaveErr() == nil {
		t.Error("SaveErr() should report the record failure")
	}

	s.Step(t0.Add(21*time.Second), input(core.ActionRestart))
	if s.Phase() != PhaseNameEntry {
		t.Error("Restart should still work after a save failure")
	}
}

func TestScoreNeverDecreases(t *testing.T) {
	s := newTestSession(nil)
	startPlaying(t, s, "Alice")

	moves := []core.Action{core.ActionUp, core.ActionRight, core.ActionDown, core.ActionLeft}
	last := 0
	for i := 1; s.Phase() == PhasePlaying; i++ {
		now := t0.Add(time.Duration(i) * frame)
		s.Step(now, input(moves[(i/50)%len(moves)]))

		if got := s.Player().Score; got < last {
			t.Fatalf("Score dropped from %d to %d at frame %d", last, got, i)
		}
		last = s.Player().Score
		if len(s.Targets()) > 5 {
			t.Fatalf("Frame %d: %d targets exceed the cap", i, len(s.Targets()))
		}
		if r := s.Remaining(now); r < 0 {
			t.Fatalf("Remaining = %s, must not be negative", r)
		}
	}
	if s.Phase() != PhaseRoundEnd {
		t.Errorf("Round should end by time, got %s", s.Phase())
	}
}

func TestTickRate(t *testing.T) {
	s := newTestSession(nil)
	if s.TickRate() != 30 {
		t.Errorf("Name entry tick rate = %d, expected 30", s.TickRate())
	}
	startPlaying(t, s, "Alice")
	if s.TickRate() != 100 {
		t.Errorf("Playing tick rate = %d, expected 100", s.TickRate())
	}
}

func TestRender(t *testing.T) {
	s := newTestSession(&memoryBoard{})
	screen := core.NewScreen(80, 24)

	s.Render(screen)
	if !strings.Contains(screen.String(), namePlaceholder) {
		t.Error("Name entry should show the placeholder")
	}

	startPlaying(t, s, "Alice")
	s.targets = fullField(t0)
	s.Step(t0.Add(frame), input())
	s.Render(screen)

	out := screen.String()
	if !strings.Contains(out, "Score: 0") || !strings.Contains(out, "Time: 19 s") {
		t.Errorf("HUD missing from frame:\n%s", out)
	}
	if !strings.ContainsRune(out, TargetChar) || !strings.ContainsRune(out, AvatarChar) {
		t.Errorf("Targets or avatar missing from frame:\n%s", out)
	}

	s.Step(t0.Add(20*time.Second), input())
	s.Render(screen)
	out = screen.String()
	if !strings.Contains(out, "1. Alice: 0") || !strings.Contains(out, "Restart (R)") {
		t.Errorf("Leaderboard screen incomplete:\n%s", out)
	}
}
