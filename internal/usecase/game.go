package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-solo/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
)

type GameUseCase interface {
	GetOrCreatePlayer(ctx context.Context, playerID string) (*entity.Player, error)

	StartGame(ctx context.Context, playerID, difficulty string) (*entity.Game, error)
	GetGame(ctx context.Context, playerID string) (*entity.Game, error)
	MakeTurn(ctx context.Context, playerID string, cell int) (*entity.Game, error)
	ResetGame(ctx context.Context, playerID string) (*entity.Game, error)
	SetDifficulty(ctx context.Context, playerID, difficulty string) (*entity.Game, error)

	Chat(message string) string
}

type playerService interface {
	CreatePlayer(ctx context.Context) (*entity.Player, error)
	GetPlayerByID(ctx context.Context, id string) (*entity.Player, error)
}

type gamePlayService interface {
	StartGame(ctx context.Context, playerID string, difficulty entity.Difficulty) (*entity.Game, error)
	GetGame(ctx context.Context, playerID string) (*entity.Game, error)
	MakeTurn(ctx context.Context, playerID string, cell int) (*entity.Game, error)
	ResetGame(ctx context.Context, playerID string) (*entity.Game, error)
	SetDifficulty(ctx context.Context, playerID string, difficulty entity.Difficulty) (*entity.Game, error)
}

type chatService interface {
	Reply(message string) string
}

type gameUseCase struct {
	logger *slog.Logger

	playerService     playerService
	gamePlayService   gamePlayService
	chatService       chatService
	defaultDifficulty entity.Difficulty
}

// NewGameUseCase builds the facade used by transports. defaultDifficulty is used when a client
// starts a game without naming a tier.
func NewGameUseCase(
	logger *slog.Logger,
	playerService playerService,
	gamePlayService gamePlayService,
	chatService chatService,
	defaultDifficulty entity.Difficulty,
) GameUseCase {
	return &gameUseCase{
		logger:            logger.With("component", "usecase"),
		playerService:     playerService,
		gamePlayService:   gamePlayService,
		chatService:       chatService,
		defaultDifficulty: defaultDifficulty,
	}
}

// GetOrCreatePlayer returns the stored player, or a new one when the id is empty or has expired.
func (that *gameUseCase) GetOrCreatePlayer(ctx context.Context, playerID string) (*entity.Player, error) {
	if playerID != "" {
		player, err := that.playerService.GetPlayerByID(ctx, playerID)
		if err == nil {
			return player, nil
		}

		if !errors.Is(err, apperror.ErrPlayerNotFound) {
			return nil, fmt.Errorf("failed to get player by id: %w", err)
		}

		that.logger.Debug("player session expired", "playerID", playerID)
	}

	player, err := that.playerService.CreatePlayer(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not create player: %w", err)
	}

	return player, nil
}

func (that *gameUseCase) StartGame(ctx context.Context, playerID, difficulty string) (*entity.Game, error) {
	tier, err := that.difficulty(difficulty)
	if err != nil {
		return nil, err
	}

	game, err := that.gamePlayService.StartGame(ctx, playerID, tier)
	if err != nil {
		return nil, fmt.Errorf("failed to start game: %w", err)
	}

	return game, nil
}

func (that *gameUseCase) GetGame(ctx context.Context, playerID string) (*entity.Game, error) {
	game, err := that.gamePlayService.GetGame(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

func (that *gameUseCase) MakeTurn(ctx context.Context, playerID string, cell int) (*entity.Game, error) {
	game, err := that.gamePlayService.MakeTurn(ctx, playerID, cell)
	if err != nil {
		return nil, fmt.Errorf("failed to make turn: %w", err)
	}

	return game, nil
}

func (that *gameUseCase) ResetGame(ctx context.Context, playerID string) (*entity.Game, error) {
	game, err := that.gamePlayService.ResetGame(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to reset game: %w", err)
	}

	return game, nil
}

func (that *gameUseCase) SetDifficulty(ctx context.Context, playerID, difficulty string) (*entity.Game, error) {
	tier, err := entity.ParseDifficulty(difficulty)
	if err != nil {
		return nil, err
	}

	game, err := that.gamePlayService.SetDifficulty(ctx, playerID, tier)
	if err != nil {
		return nil, fmt.Errorf("failed to set difficulty: %w", err)
	}

	return game, nil
}

func (that *gameUseCase) Chat(message string) string {
	return that.chatService.Reply(message)
}

func (that *gameUseCase) difficulty(value string) (entity.Difficulty, error) {
	if value == "" {
		return that.defaultDifficulty, nil
	}

	return entity.ParseDifficulty(value)
}
