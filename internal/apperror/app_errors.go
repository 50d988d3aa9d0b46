package apperror

import "errors"

// move rejections
var (
	ErrOutOfBounds       = errors.New("cell is out of bounds")
	ErrCellOccupied      = errors.New("cell is already occupied")
	ErrGameNotInProgress = errors.New("game is not in progress")
	ErrAlreadyStarted    = errors.New("game is already started")
)

// construction and storage
var (
	ErrEmptyName     = errors.New("player name is empty")
	ErrInvalidMark   = errors.New("invalid mark")
	ErrDuplicateMark = errors.New("players must have different marks")
	ErrGameNotFound  = errors.New("game not found")
	ErrCorruptRecord = errors.New("game record is corrupt")
)
