package entity

const (
	StatusNotStarted = "not_started"
	StatusInProgress = "in_progress"
	StatusWon        = "won"
	StatusTied       = "tied"
)

type PlayerRecord struct {
	Name string `json:"name"`
	Mark Cell   `json:"mark"`
}

// GameRecord is the stored form of a live game. Players[0] always moves first.
type GameRecord struct {
	ID      string          `json:"id"`
	Players [2]PlayerRecord `json:"players"`
	Board   [3][3]Cell      `json:"board"`
	Status  string          `json:"status"`
	Winner  string          `json:"winner,omitempty"`
}
