package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/board"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// Record exports the engine as a stored game.
func (that *Engine) Record(id string) entity.GameRecord {
	record := entity.GameRecord{
		ID:     id,
		Board:  that.board.Snapshot(),
		Status: that.state.Status.String(),
	}

	for i, player := range that.players {
		record.Players[i] = entity.PlayerRecord{Name: player.Name(), Mark: player.Mark()}
	}

	if winner, ok := that.state.Winner(); ok {
		record.Winner = winner.Mark().String()
	}

	return record
}

// Restore rebuilds an engine from a stored game. The record must describe a
// position reachable by legal play, otherwise ErrCorruptRecord is returned.
func Restore(record entity.GameRecord) (*Engine, error) {
	var players [2]entity.Player
	for i, stored := range record.Players {
		player, err := entity.NewPlayer(stored.Name, stored.Mark)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", apperror.ErrCorruptRecord, err)
		}
		players[i] = player
	}

	engine, err := NewEngine(players[0], players[1])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperror.ErrCorruptRecord, err)
	}

	status, ok := parseStatus(record.Status)
	if !ok {
		return nil, fmt.Errorf("%w: unknown status %q", apperror.ErrCorruptRecord, record.Status)
	}

	for row := range record.Board {
		for col, cell := range record.Board[row] {
			if cell == entity.EmptyCell {
				continue
			}

			if err = engine.board.Place(row, col, cell); err != nil {
				return nil, fmt.Errorf("%w: %w", apperror.ErrCorruptRecord, err)
			}
		}
	}

	if status == StatusNotStarted {
		if engine.board.Moves() != 0 {
			return nil, fmt.Errorf("%w: game not started but board has %d marks", apperror.ErrCorruptRecord, engine.board.Moves())
		}

		return engine, nil
	}

	grid := engine.board.Snapshot()
	firstMoves, secondMoves := grid.Count(players[0].Mark()), grid.Count(players[1].Mark())
	if firstMoves != secondMoves && firstMoves != secondMoves+1 {
		return nil, fmt.Errorf("%w: %d marks against %d", apperror.ErrCorruptRecord, firstMoves, secondMoves)
	}

	// after a terminal move the last mover stays active, otherwise it is the other player's turn
	lastMover := 1
	if firstMoves > secondMoves {
		lastMover = 0
	}

	state, err := deriveState(grid, players, lastMover, engine.board.IsFull())
	if err != nil {
		return nil, err
	}

	if state.Status != status {
		return nil, fmt.Errorf("%w: stored status %s, board says %s", apperror.ErrCorruptRecord, status, state.Status)
	}

	winnerMark := ""
	if winner, won := state.Winner(); won {
		winnerMark = winner.Mark().String()
	}

	if record.Winner != winnerMark {
		return nil, fmt.Errorf("%w: stored winner %q, board says %q", apperror.ErrCorruptRecord, record.Winner, winnerMark)
	}

	engine.state = state
	engine.active = lastMover
	if state.Status == StatusInProgress {
		engine.switchActivePlayer()
	}

	return engine, nil
}

func deriveState(grid board.Snapshot, players [2]entity.Player, lastMover int, full bool) (State, error) {
	winners := map[entity.Cell]bool{}
	for row := range grid {
		for col, cell := range grid[row] {
			if cell != entity.EmptyCell && isWinningMove(grid, row, col, cell) {
				winners[cell] = true
			}
		}
	}

	switch len(winners) {
	case 0:
		if full {
			return State{Status: StatusTied}, nil
		}

		return State{Status: StatusInProgress}, nil
	case 1:
		winner := players[lastMover]
		if !winners[winner.Mark()] {
			return State{}, fmt.Errorf("%w: line completed by %s who did not move last", apperror.ErrCorruptRecord, players[1-lastMover].Mark())
		}

		return State{Status: StatusWon, winner: winner}, nil
	default:
		return State{}, fmt.Errorf("%w: both players hold a line", apperror.ErrCorruptRecord)
	}
}
