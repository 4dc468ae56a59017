package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-solo/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
)

func TestPlayerService_CreatePlayer(t *testing.T) {
	t.Run("Stores a player with a fresh session id", func(t *testing.T) {
		// Given: a repository accepting writes
		repo := new(mockPlayerRepo)
		repo.On("CreateOrUpdate", mock.Anything, mock.AnythingOfType("*entity.Player")).Return(nil)
		playerService := NewPlayerService(repo)

		// When: creating a player
		player, err := playerService.CreatePlayer(context.Background())

		// Then: the player has a uuid and no game yet
		require.NoError(t, err)
		_, err = uuid.Parse(player.ID)
		require.NoError(t, err)
		assert.Empty(t, player.GameID)
		repo.AssertExpectations(t)
	})

	t.Run("Repository failure is returned", func(t *testing.T) {
		repo := new(mockPlayerRepo)
		repo.On("CreateOrUpdate", mock.Anything, mock.Anything).Return(errors.New("connection refused"))
		playerService := NewPlayerService(repo)

		player, err := playerService.CreatePlayer(context.Background())

		require.Error(t, err)
		assert.Nil(t, player)
	})
}

func TestPlayerService_GetPlayerByID(t *testing.T) {
	repo := new(mockPlayerRepo)
	repo.On("GetByID", mock.Anything, "known").Return(&entity.Player{ID: "known"}, nil)
	repo.On("GetByID", mock.Anything, "unknown").Return(nil, apperror.ErrPlayerNotFound)
	playerService := NewPlayerService(repo)

	player, err := playerService.GetPlayerByID(context.Background(), "known")
	require.NoError(t, err)
	assert.Equal(t, "known", player.ID)

	_, err = playerService.GetPlayerByID(context.Background(), "unknown")
	require.ErrorIs(t, err, apperror.ErrPlayerNotFound)
}
