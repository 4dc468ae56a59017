package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"

	"github.com/rocketscienceinc/tictactoe-solo/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
)

type GamePlayService interface {
	StartGame(ctx context.Context, playerID string, difficulty entity.Difficulty) (*entity.Game, error)
	GetGame(ctx context.Context, playerID string) (*entity.Game, error)
	MakeTurn(ctx context.Context, playerID string, cell int) (*entity.Game, error)
	ResetGame(ctx context.Context, playerID string) (*entity.Game, error)
	SetDifficulty(ctx context.Context, playerID string, difficulty entity.Difficulty) (*entity.Game, error)
}

type gamePlayService struct {
	logger *slog.Logger

	playerService PlayerService
	gameService   GameService
	botService    BotService
}

func NewGamePlayService(logger *slog.Logger, playerService PlayerService, gameService GameService, botService BotService) GamePlayService {
	return &gamePlayService{
		logger:        logger.With("component", "gameplay"),
		playerService: playerService,
		gameService:   gameService,
		botService:    botService,
	}
}

// StartGame opens a new game for the player, dropping the one they had before.
func (that *gamePlayService) StartGame(ctx context.Context, playerID string, difficulty entity.Difficulty) (*entity.Game, error) {
	ctx, span := tracer.Start(ctx, "GamePlayService.StartGame")
	defer span.End()

	log := that.logger.With("method", "StartGame", "playerID", playerID)

	if !difficulty.IsValid() {
		return nil, fmt.Errorf("%w: %q", apperror.ErrUnknownDifficulty, difficulty)
	}

	player, err := that.playerService.GetPlayerByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	if player.GameID != "" {
		if err = that.gameService.DeleteGame(ctx, player.GameID); err != nil && !errors.Is(err, apperror.ErrGameNotFound) {
			return nil, fmt.Errorf("failed to drop previous game: %w", err)
		}
		log.Debug("previous game dropped", "gameID", player.GameID)
	}

	game, err := that.gameService.CreateGame(ctx, player, difficulty)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	if err = that.playerService.UpdatePlayer(ctx, player); err != nil {
		return nil, fmt.Errorf("failed to update player: %w", err)
	}

	span.SetAttributes(attribute.String("game.id", game.ID), attribute.String("game.difficulty", string(difficulty)))
	log.Info("game started", "gameID", game.ID, "difficulty", difficulty)

	return game, nil
}

func (that *gamePlayService) GetGame(ctx context.Context, playerID string) (*entity.Game, error) {
	_, game, err := that.loadSession(ctx, playerID)
	if err != nil {
		return nil, err
	}

	return game, nil
}

// MakeTurn plays the human's move and, if the game goes on, the bot's reply.
func (that *gamePlayService) MakeTurn(ctx context.Context, playerID string, cell int) (*entity.Game, error) {
	ctx, span := tracer.Start(ctx, "GamePlayService.MakeTurn")
	defer span.End()

	player, game, err := that.loadSession(ctx, playerID)
	if err != nil {
		return nil, err
	}

	if err = game.MakeTurn(player.Mark, cell); err != nil {
		return game, fmt.Errorf("failed to make turn: %w", err)
	}

	if game.IsOngoing() {
		if _, err = that.botService.MakeTurn(ctx, game); err != nil {
			return nil, fmt.Errorf("bot failed to make turn: %w", err)
		}
	}

	if err = that.gameService.UpdateGame(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	span.SetAttributes(attribute.String("game.id", game.ID), attribute.Int("player.cell", cell))
	if game.IsFinished() {
		that.logger.Info("game finished", "method", "MakeTurn", "gameID", game.ID, "winner", game.Winner)
	}

	return game, nil
}

// ResetGame clears the board of the player's current game and keeps its difficulty.
func (that *gamePlayService) ResetGame(ctx context.Context, playerID string) (*entity.Game, error) {
	_, game, err := that.loadSession(ctx, playerID)
	if err != nil {
		return nil, err
	}

	game.Reset()
	if err = that.gameService.UpdateGame(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	return game, nil
}

// SetDifficulty changes the tier used for the bot's next moves. The board is left as is.
func (that *gamePlayService) SetDifficulty(ctx context.Context, playerID string, difficulty entity.Difficulty) (*entity.Game, error) {
	_, game, err := that.loadSession(ctx, playerID)
	if err != nil {
		return nil, err
	}

	if err = game.SetDifficulty(difficulty); err != nil {
		return nil, err
	}

	if err = that.gameService.UpdateGame(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	return game, nil
}

func (that *gamePlayService) loadSession(ctx context.Context, playerID string) (*entity.Player, *entity.Game, error) {
	player, err := that.playerService.GetPlayerByID(ctx, playerID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	if player.GameID == "" {
		return nil, nil, apperror.ErrNoActiveGame
	}

	game, err := that.gameService.GetGameByID(ctx, player.GameID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	return player, game, nil
}
