package repository

import (
	"context"
	"testing"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRecord(id string) *entity.GameRecord {
	x, o, e := entity.MarkA, entity.MarkB, entity.EmptyCell

	return &entity.GameRecord{
		ID: id,
		Players: [2]entity.PlayerRecord{
			{Name: "alice", Mark: x},
			{Name: "bob", Mark: o},
		},
		Board: [3][3]entity.Cell{
			{x, e, e},
			{e, o, e},
			{e, e, e},
		},
		Status: entity.StatusInProgress,
	}
}

// testGameRepository checks the behaviour every GameRepository shares.
func testGameRepository(ctx context.Context, t *testing.T, newRepo func(t *testing.T) GameRepository) {
	t.Run("GetByID_Success", func(t *testing.T) {
		gameRepo := newRepo(t)

		// Given: a stored game
		game := newRecord("123")
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, game))

		// When: GetByID is called with its id
		retrievedGame, err := gameRepo.GetByID(ctx, game.ID)

		// Then: the stored record comes back unchanged
		require.NoError(t, err)
		assert.Equal(t, game, retrievedGame)
	})

	t.Run("CreateOrUpdate_Overwrites", func(t *testing.T) {
		gameRepo := newRepo(t)

		// Given: a stored game
		game := newRecord("123")
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, game))

		// When: the game is saved again after another move
		game.Board[2][2] = entity.MarkA
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, game))

		// Then: the latest version is returned
		retrievedGame, err := gameRepo.GetByID(ctx, game.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.MarkA, retrievedGame.Board[2][2])
	})

	t.Run("GetByID_NotFound", func(t *testing.T) {
		gameRepo := newRepo(t)

		// When: GetByID is called with an unknown id
		retrievedGame, err := gameRepo.GetByID(ctx, "9999999")

		// Then: ErrGameNotFound is returned
		require.ErrorIs(t, err, apperror.ErrGameNotFound)
		assert.Nil(t, retrievedGame)
	})

	t.Run("DeleteByID_Success", func(t *testing.T) {
		gameRepo := newRepo(t)

		// Given: a stored game
		game := newRecord("123")
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, game))

		// When: DeleteByID is called with its id
		err := gameRepo.DeleteByID(ctx, game.ID)

		// Then: the game is gone
		require.NoError(t, err)
		_, err = gameRepo.GetByID(ctx, game.ID)
		require.ErrorIs(t, err, apperror.ErrGameNotFound)
	})

	t.Run("DeleteByID_NotFound", func(t *testing.T) {
		gameRepo := newRepo(t)

		// When: DeleteByID is called with an unknown id
		err := gameRepo.DeleteByID(ctx, "9999999")

		// Then: ErrGameNotFound is returned
		require.ErrorIs(t, err, apperror.ErrGameNotFound)
	})
}

func TestMemoryGameRepository(t *testing.T) {
	testGameRepository(context.Background(), t, func(_ *testing.T) GameRepository {
		return NewMemoryGameRepository()
	})

	t.Run("Returned records are copies", func(t *testing.T) {
		ctx := context.Background()
		gameRepo := NewMemoryGameRepository()

		// Given: a stored game
		game := newRecord("123")
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, game))

		// When: the caller changes both its own and a fetched record
		game.Status = entity.StatusWon
		fetched, err := gameRepo.GetByID(ctx, "123")
		require.NoError(t, err)
		fetched.Board[0][0] = entity.MarkB

		// Then: the stored record is unchanged
		stored, err := gameRepo.GetByID(ctx, "123")
		require.NoError(t, err)
		assert.Equal(t, entity.StatusInProgress, stored.Status)
		assert.Equal(t, entity.MarkA, stored.Board[0][0])
	})
}
