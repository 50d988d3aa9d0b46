package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/board"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const emptySymbol = "#"

// Render writes the grid one row per line, cells separated by spaces.
func Render(w io.Writer, snapshot board.Snapshot) error {
	var sb strings.Builder

	for _, row := range snapshot {
		cells := make([]string, 0, len(row))
		for _, cell := range row {
			cells = append(cells, symbol(cell))
		}

		sb.WriteString(strings.Join(cells, " "))
		sb.WriteByte('\n')
	}

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("failed to render board: %w", err)
	}

	return nil
}

func symbol(cell entity.Cell) string {
	if cell == entity.EmptyCell {
		return emptySymbol
	}

	return cell.String()
}
