package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/square-catch/internal/core"
	"github.com/vovakirdan/square-catch/internal/game"
)

// Options tunes the platform layer.
type Options struct {
	// HoldWindow is how long a movement key stays held after a press.
	HoldWindow time.Duration

	// ScreenshotDir is where Ctrl+S writes frames. Empty uses ~/.catch/screenshots.
	ScreenshotDir string

	Logger *log.Logger
}

// Model is the Bubble Tea model that drives a game session.
type Model struct {
	session  *game.Session
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	held     *HeldKeys
	pending  core.InputFrame // One-shot input since the last tick
	opts     Options
	now      func() time.Time
	quitting bool
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// NewModel creates a new Bubble Tea model for the given session.
func NewModel(session *game.Session, cfg core.RuntimeConfig, opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		session: session,
		screen:  core.NewScreen(cfg.ScreenW, core.Max(cfg.ScreenH-1, 1)), // Last row holds help
		keys:    DefaultKeyMap(),
		help:    h,
		held:    NewHeldKeys(opts.HoldWindow),
		pending: core.NewInputFrame(),
		opts:    opts,
		now:     time.Now,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.session.TickRate())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, core.Max(msg.Height-1, 1))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey turns key presses into pending actions or held movement.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}
	if key.Matches(msg, m.keys.Quit) {
		m.pending.Set(core.ActionQuit)
		return m, nil
	}

	switch m.session.Phase() {
	case game.PhaseNameEntry:
		switch {
		case key.Matches(msg, m.keys.Submit):
			m.pending.Set(core.ActionConfirm)
		case key.Matches(msg, m.keys.Erase):
			m.pending.Type(core.KeyBackspace)
		case msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace:
			m.pending.Type(msg.Runes...)
		}

	case game.PhasePlaying:
		if key.Matches(msg, m.keys.QuitLetter) {
			m.pending.Set(core.ActionQuit)
			return m, nil
		}
		if a := m.keys.Movement(msg); a != core.ActionNone {
			m.held.Press(a, m.now())
		}

	case game.PhaseRoundEnd:
		switch {
		case key.Matches(msg, m.keys.QuitLetter):
			m.pending.Set(core.ActionQuit)
		case key.Matches(msg, m.keys.Restart):
			m.pending.Set(core.ActionRestart)
		case key.Matches(msg, m.keys.End):
			m.pending.Set(core.ActionEnd)
		}
	}

	return m, nil
}

// handleMouse records left clicks in world coordinates.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	vp := m.session.Viewport(m.screen)
	m.pending.Click(vp.ToWorld(core.Pt(msg.X, msg.Y)))
	return m, nil
}

// handleTick runs one frame of the session.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	frame := m.pending.Clone()
	if m.session.Phase() == game.PhasePlaying {
		m.held.Apply(&frame, now)
	}

	before := m.session.Phase()
	result := m.session.Step(now, frame)
	m.pending.Clear()

	if after := m.session.Phase(); after != before {
		m.held.Reset()
		m.opts.Logger.Debug("phase changed", "from", before, "to", after)
	}

	if result.State.Terminated {
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.session.TickRate())
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.session.Render(m.screen)

	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			m.opts.Logger.Warn("cannot locate home for screenshot", "error", err)
			return
		}
		dir = filepath.Join(home, ".catch", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.opts.Logger.Warn("cannot create screenshot directory", "dir", dir, "error", err)
		return
	}

	timestamp := m.now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("catch_%s.txt", timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("cannot save screenshot", "path", path, "error", err)
		return
	}
	m.opts.Logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.session.Render(m.screen)

	bindings := phaseHelp{keys: m.keys, phase: m.session.Phase()}
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(bindings))
}

// Run starts the Bubble Tea program for the session and blocks until it
// terminates.
func Run(session *game.Session, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(session, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clickable leaderboard buttons
	)

	_, err := p.Run()
	return err
}
