package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

// Player is an immutable participant of one game.
type Player struct {
	name string
	mark Cell
}

func NewPlayer(name string, mark Cell) (Player, error) {
	if strings.TrimSpace(name) == "" {
		return Player{}, apperror.ErrEmptyName
	}

	if !mark.IsMark() {
		return Player{}, fmt.Errorf("%w: %q", apperror.ErrInvalidMark, mark)
	}

	return Player{name: name, mark: mark}, nil
}

func (that Player) Name() string {
	return that.name
}

func (that Player) Mark() Cell {
	return that.mark
}

func (that Player) String() string {
	return fmt.Sprintf("%s (%s)", that.name, that.mark)
}
