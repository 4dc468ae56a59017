package entity

type Outcome int

const (
	InProgress Outcome = iota
	XWins
	OWins
	Draw
)

func (that Outcome) String() string {
	switch that {
	case InProgress:
		return "in_progress"
	case XWins:
		return "x_wins"
	case OWins:
		return "o_wins"
	case Draw:
		return "draw"
	default:
		return "unknown"
	}
}

func (that Outcome) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

func (that Outcome) IsTerminal() bool {
	return that == XWins || that == OWins || that == Draw
}

// Winner maps a terminal outcome to the value stored in Game.Winner.
func (that Outcome) Winner() Mark {
	switch that {
	case XWins:
		return PlayerX
	case OWins:
		return PlayerO
	case Draw:
		return PlayerTie
	default:
		return EmptyCell
	}
}
