package service

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-solo/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solo/internal/tictactoe"
)

func newBotGame(difficulty entity.Difficulty) *entity.Game {
	game := entity.NewGame("g-1", difficulty)
	game.Players = []*entity.Player{
		{ID: "p-1", Mark: entity.PlayerX, GameID: "g-1"},
		entity.NewBotPlayer("g-1"),
	}

	return game
}

func TestBotService_MakeTurn(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)
	engine := tictactoe.NewEngine(tictactoe.WithRand(rand.New(rand.NewPCG(7, 7))))

	t.Run("Hard bot blocks the open row", func(t *testing.T) {
		// Given: X threatens the top row
		game := newBotGame(entity.HardDifficulty)
		game.Board = entity.Board{entity.PlayerX, entity.PlayerX, entity.EmptyCell, entity.EmptyCell, entity.PlayerO}
		game.Turn = entity.PlayerO
		botService := NewBotService(logger, engine, 0)

		// When: the bot moves
		cell, err := botService.MakeTurn(context.Background(), game)

		// Then: it blocks at 2 and hands the turn back
		require.NoError(t, err)
		assert.Equal(t, 2, cell)
		assert.Equal(t, entity.PlayerO, game.Board[2])
		assert.Equal(t, entity.PlayerX, game.Turn)
	})

	t.Run("Easy bot plays some empty cell", func(t *testing.T) {
		game := newBotGame(entity.EasyDifficulty)
		require.NoError(t, game.MakeTurn(entity.PlayerX, 4))
		botService := NewBotService(logger, engine, 0)

		cell, err := botService.MakeTurn(context.Background(), game)

		require.NoError(t, err)
		assert.NotEqual(t, 4, cell)
		assert.Equal(t, entity.PlayerO, game.Board[cell])
	})

	t.Run("Missing bot player", func(t *testing.T) {
		game := entity.NewGame("g-1", entity.HardDifficulty)
		botService := NewBotService(logger, engine, 0)

		_, err := botService.MakeTurn(context.Background(), game)

		require.ErrorIs(t, err, apperror.ErrBotNotFound)
	})

	t.Run("Think delay honours cancellation", func(t *testing.T) {
		// Given: a bot that would think for a minute
		game := newBotGame(entity.HardDifficulty)
		require.NoError(t, game.MakeTurn(entity.PlayerX, 4))
		botService := NewBotService(logger, engine, time.Minute)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		// When: the context is already cancelled
		_, err := botService.MakeTurn(ctx, game)

		// Then: it gives up without touching the board
		require.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, entity.PlayerO, game.Turn)
		assert.Len(t, game.Board.EmptyCells(), 8)
	})

	t.Run("Engine errors are wrapped", func(t *testing.T) {
		game := newBotGame(entity.HardDifficulty)
		require.NoError(t, game.MakeTurn(entity.PlayerX, 4))

		failing := new(mockEngine)
		failing.On("SelectMove", game.Board, entity.PlayerO, entity.HardDifficulty).Return(-1, apperror.ErrNoLegalMove)
		botService := NewBotService(logger, failing, 0)

		_, err := botService.MakeTurn(context.Background(), game)

		require.ErrorIs(t, err, apperror.ErrNoLegalMove)
		failing.AssertExpectations(t)
	})
}
