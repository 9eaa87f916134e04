// Package game implements the square-catching round: target spawning and
// expiry, collision scoring, the round clock, and the session state machine
// that moves between name entry, play, and the leaderboard.
//
// The package is pure logic. Time and input arrive through Step, drawing goes
// into a core.Screen, and persistence goes through the Leaderboard interface.
package game

import (
	"io"
	"strings"
	"time"
	"unicode"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/square-catch/internal/config"
	"github.com/vovakirdan/square-catch/internal/core"
)

// Buttons shown on the leaderboard, in world coordinates.
var (
	RestartButton = core.NewRect(200, 300, 200, 50)
	EndButton     = core.NewRect(200, 360, 200, 50)
)

// Session owns all state of one game process: the current player, the
// avatar, the live targets, and the round clock.
type Session struct {
	cfg     config.CatchConfig
	board   Leaderboard
	logger  *log.Logger
	console io.Writer

	phase   Phase
	outcome Outcome
	roundID string
	name    []rune // Name-entry buffer
	player  Player
	avatar  core.Point
	targets []Target
	spawner *Spawner
	clock   *Clock
	frames  int
	now     time.Time

	top     []LeaderboardEntry
	saveErr error
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger for phase transitions and persistence errors.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		s.logger = l
	}
}

// WithConsole sets where the leaderboard snapshot is written after each
// time-expired round.
func WithConsole(w io.Writer) Option {
	return func(s *Session) {
		s.console = w
	}
}

// NewSession creates a session in the name-entry phase. board may be nil, in
// which case rounds are not persisted.
func NewSession(cfg config.CatchConfig, board Leaderboard, seed int64, opts ...Option) *Session {
	s := &Session{
		cfg:     cfg,
		board:   board,
		logger:  log.New(io.Discard),
		console: io.Discard,
		phase:   PhaseNameEntry,
		spawner: NewSpawner(seed, cfg.Field, cfg.Targets),
		clock:   NewClock(cfg.Session.Budget),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Step advances the session by one frame.
func (s *Session) Step(now time.Time, in core.InputFrame) core.StepResult {
	s.now = now

	switch s.phase {
	case PhaseNameEntry:
		s.stepNameEntry(now, in)
	case PhasePlaying:
		s.stepPlaying(now, in)
	case PhaseRoundEnd:
		s.stepRoundEnd(in)
	}

	return core.StepResult{State: s.State()}
}

func (s *Session) stepNameEntry(now time.Time, in core.InputFrame) {
	if in.Has(core.ActionQuit) {
		s.terminate("quit during name entry")
		return
	}

	for _, r := range in.Text {
		s.typeRune(r)
	}

	if in.Has(core.ActionConfirm) {
		s.SubmitName(string(s.name), now)
	}
}

// typeRune edits the name buffer.
func (s *Session) typeRune(r rune) {
	switch {
	case r == core.KeyBackspace:
		if len(s.name) > 0 {
			s.name = s.name[:len(s.name)-1]
		}
	case !unicode.IsPrint(r):
		return
	case len(s.name) >= s.cfg.Session.MaxNameLength:
		return
	default:
		s.name = append(s.name, r)
	}
}

// SubmitName starts a round if name is non-blank. It reports whether the
// round started; blank names and calls outside name entry are ignored.
func (s *Session) SubmitName(name string, now time.Time) bool {
	if s.phase != PhaseNameEntry {
		return false
	}
	name = strings.TrimSpace(name)
	if name == "" {
		s.logger.Debug("ignoring empty name")
		return false
	}

	s.startRound(name, now)
	return true
}

func (s *Session) startRound(name string, now time.Time) {
	s.roundID = uuid.NewString()
	s.player = Player{Name: name}
	s.name = []rune(name)
	s.avatar = core.Pt(s.cfg.Avatar.StartX, s.cfg.Avatar.StartY)
	s.targets = nil
	s.frames = 0
	s.top = nil
	s.saveErr = nil
	s.outcome = OutcomeNone
	s.clock.Start(now)
	s.now = now
	s.phase = PhasePlaying

	s.logger.Info("round started",
		"round", s.roundID,
		"player", name,
		"budget", s.clock.Budget(),
		"targets", s.spawner.Cap(),
		"lifetime", s.spawner.Lifetime(),
	)
}

func (s *Session) stepPlaying(now time.Time, in core.InputFrame) {
	if in.Has(core.ActionQuit) {
		s.outcome = OutcomeQuit
		s.phase = PhaseRoundEnd
		s.logger.Info("round abandoned", "round", s.roundID, "player", s.player.Name, "score", s.player.Score)
		s.terminate("quit during play")
		return
	}

	// A late frame must not score past the budget.
	if s.clock.IsExpired(now) {
		s.endRound(now)
		return
	}

	s.move(in)

	s.targets = s.spawner.Advance(s.targets, now)

	var caught int
	s.targets, caught = Resolve(s.avatar, s.cfg.Avatar.Reach, s.targets)
	s.player.award(caught)

	s.targets = s.spawner.Expire(s.targets, now)
	s.frames++

	if s.clock.IsExpired(now) {
		s.endRound(now)
	}
}

// move applies held direction keys to the avatar.
func (s *Session) move(in core.InputFrame) {
	step := s.cfg.Avatar.Step
	if in.Has(core.ActionUp) {
		s.avatar.Y -= step
	}
	if in.Has(core.ActionDown) {
		s.avatar.Y += step
	}
	if in.Has(core.ActionLeft) {
		s.avatar.X -= step
	}
	if in.Has(core.ActionRight) {
		s.avatar.X += step
	}

	if s.cfg.Avatar.ClampToField {
		s.avatar.X = core.Clamp(s.avatar.X, 0, s.cfg.Field.Width)
		s.avatar.Y = core.Clamp(s.avatar.Y, 0, s.cfg.Field.Height)
	}
}

// endRound persists the score and loads the leaderboard.
func (s *Session) endRound(now time.Time) {
	s.outcome = OutcomeTimeExpired
	s.phase = PhaseRoundEnd
	s.targets = nil

	s.logger.Info("round finished",
		"round", s.roundID,
		"player", s.player.Name,
		"score", s.player.Score,
		"frames", s.frames,
		"played", now.Sub(s.clock.StartedAt()),
	)

	if s.board == nil {
		return
	}

	entry := LeaderboardEntry{
		RoundID:   s.roundID,
		Name:      s.player.Name,
		Score:     s.player.Score,
		CreatedAt: now,
	}
	if err := s.board.Record(entry); err != nil {
		s.saveErr = err
		s.logger.Error("could not save score", "round", s.roundID, "error", err)
	}

	top, err := s.board.Top(s.cfg.Leaderboard.Size)
	if err != nil {
		if s.saveErr == nil {
			s.saveErr = err
		}
		s.logger.Error("could not load leaderboard", "error", err)
		return
	}
	s.top = top

	if err := WriteLeaderboard(s.console, s.cfg.Leaderboard.Size, top); err != nil {
		s.logger.Warn("could not write leaderboard to console", "error", err)
	}
}

func (s *Session) stepRoundEnd(in core.InputFrame) {
	if in.Has(core.ActionQuit) || in.Has(core.ActionEnd) {
		s.terminate("ended from leaderboard")
		return
	}
	if in.Has(core.ActionRestart) || in.Has(core.ActionConfirm) {
		s.restart()
		return
	}

	for _, p := range in.Clicks {
		switch {
		case RestartButton.Covers(p):
			s.restart()
			return
		case EndButton.Covers(p):
			s.terminate("ended from leaderboard")
			return
		}
	}
}

// restart returns to name entry with the last name pre-filled.
func (s *Session) restart() {
	if s.outcome != OutcomeTimeExpired {
		return
	}
	s.phase = PhaseNameEntry
	s.outcome = OutcomeNone
	s.name = []rune(s.player.Name)
	s.logger.Debug("restarting", "player", s.player.Name)
}

func (s *Session) terminate(reason string) {
	s.phase = PhaseTerminated
	s.targets = nil
	s.logger.Info("session terminated", "reason", reason)
}

// Phase returns the current phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// Outcome returns why the last round ended, or OutcomeNone.
func (s *Session) Outcome() Outcome {
	return s.outcome
}

// Player returns the current (or last) round's player.
func (s *Session) Player() Player {
	return s.player
}

// NameInput returns the text in the name-entry box.
func (s *Session) NameInput() string {
	return string(s.name)
}

// Avatar returns the avatar center in world coordinates.
func (s *Session) Avatar() core.Point {
	return s.avatar
}

// Targets returns the live targets. The slice must not be modified.
func (s *Session) Targets() []Target {
	return s.targets
}

// RoundID returns the identifier of the current (or last) round.
func (s *Session) RoundID() string {
	return s.roundID
}

// Leaderboard returns the top entries loaded when the last round ended.
func (s *Session) Leaderboard() []LeaderboardEntry {
	return s.top
}

// SaveErr returns the persistence error from the last round end, if any.
func (s *Session) SaveErr() error {
	return s.saveErr
}

// Remaining returns the time left in the round at now.
func (s *Session) Remaining(now time.Time) time.Duration {
	if s.phase != PhasePlaying {
		return 0
	}
	return s.clock.Remaining(now)
}

// TickRate returns the frame rate the platform should run at.
func (s *Session) TickRate() int {
	if s.phase == PhasePlaying {
		return s.cfg.Session.PlayRate
	}
	return s.cfg.Session.IdleRate
}

// Config returns the session configuration.
func (s *Session) Config() config.CatchConfig {
	return s.cfg
}

// State returns a summary of the session as of the last frame.
func (s *Session) State() core.GameState {
	return core.GameState{
		Score:      s.player.Score,
		Remaining:  s.Remaining(s.now),
		RoundOver:  s.phase == PhaseRoundEnd,
		Terminated: s.phase == PhaseTerminated,
	}
}
