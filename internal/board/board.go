package board

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// Size is the side length of the board.
const Size = 3

// Snapshot is a copy of the grid. Changing it does not affect the board it came from.
type Snapshot [Size][Size]entity.Cell

// Board holds the grid and the number of marks placed on it.
// moves always equals the number of non-empty cells.
type Board struct {
	grid  Snapshot
	moves int
}

func New() *Board {
	b := &Board{}
	b.Reset()

	return b
}

func (that *Board) Reset() {
	that.grid = Snapshot{}
	that.moves = 0
}

// Place puts mark on (row, col). The board is left untouched on error.
func (that *Board) Place(row, col int, mark entity.Cell) error {
	if !mark.IsMark() {
		return fmt.Errorf("%w: %q", apperror.ErrInvalidMark, mark)
	}

	if !that.InBounds(row, col) {
		return fmt.Errorf("%w: row %d, col %d", apperror.ErrOutOfBounds, row, col)
	}

	if that.grid[row][col] != entity.EmptyCell {
		return fmt.Errorf("%w: row %d, col %d", apperror.ErrCellOccupied, row, col)
	}

	that.grid[row][col] = mark
	that.moves++

	return nil
}

func (that *Board) At(row, col int) entity.Cell {
	return that.grid[row][col]
}

func (that *Board) InBounds(row, col int) bool {
	return row >= 0 && row < Size && col >= 0 && col < Size
}

func (that *Board) IsFull() bool {
	return that.moves == Size*Size
}

func (that *Board) Moves() int {
	return that.moves
}

func (that *Board) Snapshot() Snapshot {
	return that.grid
}

// Count returns how many cells hold mark.
func (s Snapshot) Count(mark entity.Cell) int {
	count := 0
	for _, row := range s {
		for _, cell := range row {
			if cell == mark {
				count++
			}
		}
	}

	return count
}
