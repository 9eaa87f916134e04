package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // Up arrow - held, moves the avatar up
	ActionDown           // Down arrow - held, moves the avatar down
	ActionLeft           // Left arrow - held, moves the avatar left
	ActionRight          // Right arrow - held, moves the avatar right
	ActionConfirm        // Enter - submit name
	ActionRestart        // R - start a new round from the leaderboard
	ActionEnd            // E - finish from the leaderboard
	ActionQuit           // Ctrl+C, Esc - quit signal
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	case ActionRestart:
		return "Restart"
	case ActionEnd:
		return "End"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// KeyBackspace is the rune recorded in InputFrame.Text for a backspace press.
const KeyBackspace = '\b'

// InputFrame represents the input state during one simulation frame.
// Movement actions are set for every frame the key is held; the rest are
// one-shot events collected since the previous frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Text holds characters typed since the previous frame, in order.
	// KeyBackspace deletes the character before it.
	Text []rune

	// Clicks holds mouse presses since the previous frame, in world coordinates.
	Clicks []Point
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Type appends typed characters to the frame.
func (f *InputFrame) Type(runes ...rune) {
	f.Text = append(f.Text, runes...)
}

// Click records a mouse press at p.
func (f *InputFrame) Click(p Point) {
	f.Clicks = append(f.Clicks, p)
}

// Clear resets all input for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Text = f.Text[:0]
	f.Clicks = f.Clicks[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Text = append([]rune(nil), f.Text...)
	clone.Clicks = append([]Point(nil), f.Clicks...)
	return clone
}
