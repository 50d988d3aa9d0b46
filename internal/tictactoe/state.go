package tictactoe

import "github.com/rocketscienceinc/tictactoe-engine/internal/entity"

type Status int

const (
	StatusNotStarted Status = iota
	StatusInProgress
	StatusWon
	StatusTied
)

func (s Status) String() string {
	switch s {
	case StatusNotStarted:
		return entity.StatusNotStarted
	case StatusInProgress:
		return entity.StatusInProgress
	case StatusWon:
		return entity.StatusWon
	case StatusTied:
		return entity.StatusTied
	default:
		return "unknown"
	}
}

func parseStatus(value string) (Status, bool) {
	switch value {
	case entity.StatusNotStarted:
		return StatusNotStarted, true
	case entity.StatusInProgress:
		return StatusInProgress, true
	case entity.StatusWon:
		return StatusWon, true
	case entity.StatusTied:
		return StatusTied, true
	default:
		return 0, false
	}
}

// State is the lifecycle position of a game. The winner is only set for StatusWon.
type State struct {
	Status Status
	winner entity.Player
}

func (s State) Winner() (entity.Player, bool) {
	return s.winner, s.Status == StatusWon
}

func (s State) IsTerminal() bool {
	return s.Status == StatusWon || s.Status == StatusTied
}

// Outcome is the result of an accepted move. The zero value is never returned with a nil error.
type Outcome int

const (
	Continue Outcome = iota + 1
	Win
	Tie
)

func (o Outcome) String() string {
	switch o {
	case Continue:
		return "continue"
	case Win:
		return "win"
	case Tie:
		return "tie"
	default:
		return "unknown"
	}
}
