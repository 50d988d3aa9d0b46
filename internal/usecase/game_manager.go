package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/board"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.GameRecord) error
	GetByID(ctx context.Context, id string) (*entity.GameRecord, error)
	DeleteByID(ctx context.Context, id string) error
}

// Game is a read-only view of one game for drivers and renderers.
type Game struct {
	ID       string
	State    tictactoe.State
	Active   entity.Player // zero value unless the game is in progress
	Players  [2]entity.Player
	Snapshot board.Snapshot
	Moves    int
}

// GameManager runs games stored in a repository. Finished games are removed from it.
type GameManager struct {
	logger   *slog.Logger
	gameRepo gameRepo
	newID    func() string
}

func NewGameManager(logger *slog.Logger, gameRepo gameRepo) *GameManager {
	return &GameManager{
		logger:   logger.With("component", "game_manager"),
		gameRepo: gameRepo,
		newID:    uuid.NewString,
	}
}

func (that *GameManager) NewGame(ctx context.Context, first, second entity.Player) (*Game, error) {
	engine, err := tictactoe.NewEngine(first, second)
	if err != nil {
		return nil, fmt.Errorf("failed to create engine: %w", err)
	}

	if err = engine.Start(); err != nil {
		return nil, fmt.Errorf("failed to start game: %w", err)
	}

	gameID := that.newID()
	if err = that.updateGame(ctx, gameID, engine); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	that.logger.Info("game created", "method", "NewGame", "gameID", gameID, "first", first.String(), "second", second.String())

	return newGameView(gameID, engine), nil
}

func (that *GameManager) GetGame(ctx context.Context, id string) (*Game, error) {
	engine, err := that.getEngine(ctx, id)
	if err != nil {
		return nil, err
	}

	return newGameView(id, engine), nil
}

// MakeTurn submits a move for the active player of game id. Rejected moves are
// not saved and come back with the unchanged game.
func (that *GameManager) MakeTurn(ctx context.Context, id string, row, col int) (*Game, tictactoe.Outcome, error) {
	log := that.logger.With("method", "MakeTurn", "gameID", id)

	engine, err := that.getEngine(ctx, id)
	if err != nil {
		return nil, 0, err
	}

	outcome, err := engine.SubmitMove(row, col)
	if err != nil {
		log.Debug("move rejected", "row", row, "col", col, "error", err)
		return newGameView(id, engine), 0, fmt.Errorf("failed to make turn: %w", err)
	}

	log.Debug("move accepted", "row", row, "col", col, "outcome", outcome.String())

	switch outcome {
	case tictactoe.Continue:
		if err = that.updateGame(ctx, id, engine); err != nil {
			return nil, 0, fmt.Errorf("failed to update game: %w", err)
		}
	case tictactoe.Win, tictactoe.Tie:
		that.deleteGame(ctx, id)

		attrs := []any{"outcome", outcome.String(), "moves", engine.Moves()}
		if winner, ok := engine.State().Winner(); ok {
			attrs = append(attrs, "winner", winner.String())
		}
		log.Info("game finished", attrs...)
	}

	return newGameView(id, engine), outcome, nil
}

// Abandon removes a game that is still in progress.
func (that *GameManager) Abandon(ctx context.Context, id string) error {
	if err := that.gameRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to abandon game: %w", err)
	}

	that.logger.Info("game abandoned", "method", "Abandon", "gameID", id)

	return nil
}

func (that *GameManager) getEngine(ctx context.Context, id string) (*tictactoe.Engine, error) {
	record, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	engine, err := tictactoe.Restore(*record)
	if err != nil {
		if errors.Is(err, apperror.ErrCorruptRecord) {
			that.logger.Error("stored game is corrupt", "method", "getEngine", "gameID", id, "error", err)
		}

		return nil, fmt.Errorf("failed to restore game: %w", err)
	}

	return engine, nil
}

func (that *GameManager) updateGame(ctx context.Context, id string, engine *tictactoe.Engine) error {
	record := engine.Record(id)
	if err := that.gameRepo.CreateOrUpdate(ctx, &record); err != nil {
		return fmt.Errorf("failed to save game: %w", err)
	}

	return nil
}

func (that *GameManager) deleteGame(ctx context.Context, id string) {
	if err := that.gameRepo.DeleteByID(ctx, id); err != nil {
		that.logger.Error("failed to delete game", "method", "deleteGame", "gameID", id, "error", err)
	}
}

func newGameView(id string, engine *tictactoe.Engine) *Game {
	first, second := engine.Players()
	active, _ := engine.ActivePlayer()

	return &Game{
		ID:       id,
		State:    engine.State(),
		Active:   active,
		Players:  [2]entity.Player{first, second},
		Snapshot: engine.Snapshot(),
		Moves:    engine.Moves(),
	}
}
