package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/board"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// Engine runs one game between two players. The first player always moves first.
type Engine struct {
	board   *board.Board
	players [2]entity.Player
	active  int
	state   State
}

func NewEngine(first, second entity.Player) (*Engine, error) {
	for _, player := range []entity.Player{first, second} {
		if !player.Mark().IsMark() {
			return nil, fmt.Errorf("%w: player %q", apperror.ErrInvalidMark, player.Name())
		}
	}

	if first.Mark() == second.Mark() {
		return nil, fmt.Errorf("%w: both players use %s", apperror.ErrDuplicateMark, first.Mark())
	}

	return &Engine{
		board:   board.New(),
		players: [2]entity.Player{first, second},
		state:   State{Status: StatusNotStarted},
	}, nil
}

func (that *Engine) Start() error {
	if that.state.Status != StatusNotStarted {
		return fmt.Errorf("%w: status %s", apperror.ErrAlreadyStarted, that.state.Status)
	}

	that.board.Reset()
	that.active = 0
	that.state = State{Status: StatusInProgress}

	return nil
}

// Reset drops the current board and returns the engine to StatusNotStarted with the same players.
func (that *Engine) Reset() {
	that.board = board.New()
	that.active = 0
	that.state = State{Status: StatusNotStarted}
}

func (that *Engine) ActivePlayer() (entity.Player, error) {
	if that.state.Status != StatusInProgress {
		return entity.Player{}, fmt.Errorf("%w: status %s", apperror.ErrGameNotInProgress, that.state.Status)
	}

	return that.players[that.active], nil
}

// SubmitMove places the active player's mark on (row, col).
// A rejected move changes neither the board nor the state.
func (that *Engine) SubmitMove(row, col int) (Outcome, error) {
	if that.state.Status != StatusInProgress {
		return 0, fmt.Errorf("%w: status %s", apperror.ErrGameNotInProgress, that.state.Status)
	}

	if !that.board.InBounds(row, col) {
		return 0, fmt.Errorf("%w: row %d, col %d", apperror.ErrOutOfBounds, row, col)
	}

	if that.board.At(row, col) != entity.EmptyCell {
		return 0, fmt.Errorf("%w: row %d, col %d", apperror.ErrCellOccupied, row, col)
	}

	player := that.players[that.active]
	// unreachable after the checks above, the board guards itself as well
	if err := that.board.Place(row, col, player.Mark()); err != nil {
		return 0, fmt.Errorf("failed to place mark: %w", err)
	}

	switch {
	case isWinningMove(that.board.Snapshot(), row, col, player.Mark()):
		that.state = State{Status: StatusWon, winner: player}
		return Win, nil
	case that.board.IsFull():
		that.state = State{Status: StatusTied}
		return Tie, nil
	default:
		that.switchActivePlayer()
		return Continue, nil
	}
}

func (that *Engine) switchActivePlayer() {
	that.active = 1 - that.active
}

func (that *Engine) State() State {
	return that.state
}

func (that *Engine) Snapshot() board.Snapshot {
	return that.board.Snapshot()
}

func (that *Engine) Players() (entity.Player, entity.Player) {
	return that.players[0], that.players[1]
}

func (that *Engine) Moves() int {
	return that.board.Moves()
}

// isWinningMove checks only the lines through (row, col): a line can only
// become complete through its most recently filled cell.
func isWinningMove(grid board.Snapshot, row, col int, mark entity.Cell) bool {
	if lineComplete(grid, mark, func(i int) (int, int) { return row, i }) {
		return true
	}

	if lineComplete(grid, mark, func(i int) (int, int) { return i, col }) {
		return true
	}

	// the centre lies on both diagonals, each is checked on its own
	if row == col && lineComplete(grid, mark, func(i int) (int, int) { return i, i }) {
		return true
	}

	if row+col == board.Size-1 && lineComplete(grid, mark, func(i int) (int, int) { return i, board.Size - 1 - i }) {
		return true
	}

	return false
}

func lineComplete(grid board.Snapshot, mark entity.Cell, cellAt func(i int) (int, int)) bool {
	for i := 0; i < board.Size; i++ {
		r, c := cellAt(i)
		if grid[r][c] != mark {
			return false
		}
	}

	return true
}
