package table

// Round represents a betting round. The zero value means no hand is active.
type Round int

const (
	roundNone Round = iota
	PreFlop
	Flop
	Turn
	River
)

func (r Round) String() string {
	switch r {
	case PreFlop:
		return "pre-flop"
	case Flop:
		return "flop"
	case Turn:
		return "turn"
	case River:
		return "river"
	default:
		return "idle"
	}
}

// Action represents a player action
type Action int

const (
	Fold Action = iota
	Check
	Call
	Bet
	Raise
)

func (a Action) String() string {
	return [...]string{"fold", "check", "call", "bet", "raise"}[a]
}
