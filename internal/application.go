package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-solo/internal/config"
	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solo/internal/repository"
	"github.com/rocketscienceinc/tictactoe-solo/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-solo/internal/service"
	"github.com/rocketscienceinc/tictactoe-solo/internal/telemetry"
	"github.com/rocketscienceinc/tictactoe-solo/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-solo/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-solo/transport/rest"
	"github.com/rocketscienceinc/tictactoe-solo/transport/websocket"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application until SIGINT/SIGTERM or a server failure.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	defaultDifficulty, err := entity.ParseDifficulty(conf.Bot.DefaultDifficulty)
	if err != nil {
		return fmt.Errorf("invalid bot.default-difficulty: %w", err)
	}

	shutdownTracer, err := telemetry.InitTracer(conf.Telemetry.Enabled, conf.Telemetry.ServiceName, os.Stdout)
	if err != nil {
		return fmt.Errorf("could not init tracing: %w", err)
	}

	defer func() {
		if err := shutdownTracer(context.Background()); err != nil {
			log.Error("could not flush traces", "error", err)
		}
	}()

	redisAddr := conf.Redis.GetRedisAddr()
	if conf.Redis.Host == "" {
		return ErrAddrNotFound
	}

	redisStorage, err := storage.NewRedisStorage(ctx, redisAddr)
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err := redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	engine := tictactoe.NewEngine(tictactoe.WithOptimalRate(conf.Bot.MediumOptimalRate))

	playerRepo := repository.NewPlayerRepository(redisStorage.Connection, conf.Redis.SessionTTL)
	gameRepo := repository.NewGameRepository(redisStorage.Connection, conf.Redis.SessionTTL)

	playerService := service.NewPlayerService(playerRepo)
	gameService := service.NewGameService(gameRepo)
	botService := service.NewBotService(logger, engine, conf.Bot.ThinkDelay)
	gamePlayService := service.NewGamePlayService(logger, playerService, gameService, botService)
	chatService := service.NewChatService(rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))) //nolint: gosec // canned replies

	gameUseCase := usecase.NewGameUseCase(logger, playerService, gamePlayService, chatService, defaultDifficulty)

	// run HTTP server
	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		httpErrCh <- rest.Start(ctx, conf.HTTPPort, rest.NewRouter(logger, engine, gameUseCase))
	}()

	// run Websocket server
	wsErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting WebSocket server", "port", conf.SocketPort)
		wsErrCh <- websocket.New(logger, gameUseCase).Start(ctx, conf.SocketPort)
	}()

	select {
	case err = <-httpErrCh:
		if err != nil {
			return fmt.Errorf("HTTP server error: %w", err)
		}
	case err = <-wsErrCh:
		if err != nil {
			return fmt.Errorf("WebSocket server error: %w", err)
		}
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
	}

	return nil
}
