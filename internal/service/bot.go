package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/rocketscienceinc/tictactoe-solo/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
)

type BotService interface {
	MakeTurn(ctx context.Context, game *entity.Game) (int, error)
}

type moveSelector interface {
	SelectMove(board entity.Board, mark entity.Mark, difficulty entity.Difficulty) (int, error)
}

type botService struct {
	logger     *slog.Logger
	engine     moveSelector
	thinkDelay time.Duration
}

// NewBotService plays the bot's moves with engine. thinkDelay pauses before each move so the
// reply does not arrive instantly, zero disables it.
func NewBotService(logger *slog.Logger, engine moveSelector, thinkDelay time.Duration) BotService {
	return &botService{
		logger:     logger.With("component", "bot"),
		engine:     engine,
		thinkDelay: thinkDelay,
	}
}

// MakeTurn applies the bot's move to game and returns the chosen cell.
func (that *botService) MakeTurn(ctx context.Context, game *entity.Game) (int, error) {
	ctx, span := tracer.Start(ctx, "BotService.MakeTurn")
	defer span.End()

	bot := game.BotPlayer()
	if bot == nil {
		return -1, apperror.ErrBotNotFound
	}

	if err := that.think(ctx); err != nil {
		return -1, err
	}

	cell, err := that.engine.SelectMove(game.Board, bot.Mark, game.Difficulty)
	if err != nil {
		return -1, fmt.Errorf("failed to select move: %w", err)
	}

	if err = game.MakeTurn(bot.Mark, cell); err != nil {
		return -1, fmt.Errorf("bot failed to make turn: %w", err)
	}

	span.SetAttributes(
		attribute.String("game.id", game.ID),
		attribute.String("game.difficulty", string(game.Difficulty)),
		attribute.Int("bot.cell", cell),
	)
	that.logger.Debug("bot made turn", "gameID", game.ID, "difficulty", game.Difficulty, "cell", cell)

	return cell, nil
}

func (that *botService) think(ctx context.Context) error {
	if that.thinkDelay <= 0 {
		return nil
	}

	timer := time.NewTimer(that.thinkDelay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("bot interrupted: %w", ctx.Err())
	}
}
