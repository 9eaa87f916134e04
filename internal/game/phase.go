package game

// Phase is the session's top-level state.
type Phase int

const (
	PhaseNameEntry Phase = iota
	PhasePlaying
	PhaseRoundEnd
	PhaseTerminated
)

func (p Phase) String() string {
	switch p {
	case PhaseNameEntry:
		return "name-entry"
	case PhasePlaying:
		return "playing"
	case PhaseRoundEnd:
		return "round-end"
	case PhaseTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Outcome says why a round ended.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeTimeExpired
	OutcomeQuit
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeTimeExpired:
		return "time-expired"
	case OutcomeQuit:
		return "quit"
	default:
		return "unknown"
	}
}
