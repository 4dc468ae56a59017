package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-solo/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
)

const errInternal = "internal error"

// clientErrors are reported to the client verbatim, anything else is hidden behind errInternal.
var clientErrors = []error{
	apperror.ErrInvalidMove,
	apperror.ErrGameFinished,
	apperror.ErrNotYourTurn,
	apperror.ErrNoActiveGame,
	apperror.ErrUnknownDifficulty,
	apperror.ErrPlayerNotFound,
	apperror.ErrGameNotFound,
}

func (that *Server) handleConnect(ctx context.Context, msg *Message, conn *websocket.Conn) error {
	log := that.logger.With("method", "handleConnect")

	payloadReq, err := decodePayload(msg)
	if err != nil {
		return that.sendErrorResponse(conn, msg.Action, err.Error())
	}

	player, err := that.gameUseCase.GetOrCreatePlayer(ctx, payloadReq.playerID())
	if err != nil {
		log.Error("failed to get or create player", "error", err)
		return that.sendErrorResponse(conn, msg.Action, "failed to create a new player")
	}

	payloadResp := Payload{Player: player}

	if player.GameID != "" {
		game, err := that.gameUseCase.GetGame(ctx, player.ID)
		switch {
		case err == nil:
			payloadResp.Game = maskGameDetails(game)
		case errors.Is(err, apperror.ErrGameNotFound):
			log.Debug("stored game has expired", "playerID", player.ID)
		default:
			log.Error("failed to get game", "playerID", player.ID, "error", err)
			return that.sendErrorResponse(conn, msg.Action, "failed to get the game")
		}
	}

	log.Info("player connected", "playerID", player.ID)

	return that.sendMessage(conn, msg.Action, payloadResp)
}

func (that *Server) handleNewGame(ctx context.Context, msg *Message, conn *websocket.Conn) error {
	return that.handleGameAction(msg, conn, func(payload *Payload) (*entity.Game, error) {
		return that.gameUseCase.StartGame(ctx, payload.playerID(), payload.Difficulty)
	})
}

func (that *Server) handleGameTurn(ctx context.Context, msg *Message, conn *websocket.Conn) error {
	return that.handleGameAction(msg, conn, func(payload *Payload) (*entity.Game, error) {
		if payload.Cell == nil {
			return nil, fmt.Errorf("%w: cell is required", apperror.ErrInvalidMove)
		}

		return that.gameUseCase.MakeTurn(ctx, payload.playerID(), *payload.Cell)
	})
}

func (that *Server) handleGameReset(ctx context.Context, msg *Message, conn *websocket.Conn) error {
	return that.handleGameAction(msg, conn, func(payload *Payload) (*entity.Game, error) {
		return that.gameUseCase.ResetGame(ctx, payload.playerID())
	})
}

func (that *Server) handleDifficulty(ctx context.Context, msg *Message, conn *websocket.Conn) error {
	return that.handleGameAction(msg, conn, func(payload *Payload) (*entity.Game, error) {
		return that.gameUseCase.SetDifficulty(ctx, payload.playerID(), payload.Difficulty)
	})
}

func (that *Server) handleChat(_ context.Context, msg *Message, conn *websocket.Conn) error {
	payloadReq, err := decodePayload(msg)
	if err != nil {
		return that.sendErrorResponse(conn, msg.Action, err.Error())
	}

	if payloadReq.Message == "" {
		return that.sendErrorResponse(conn, msg.Action, "message is required")
	}

	return that.sendMessage(conn, msg.Action, Payload{Reply: that.gameUseCase.Chat(payloadReq.Message)})
}

// handleGameAction decodes the payload, requires a player id, runs action and replies with the game.
func (that *Server) handleGameAction(msg *Message, conn *websocket.Conn, action func(payload *Payload) (*entity.Game, error)) error {
	log := that.logger.With("method", "handleGameAction", "action", msg.Action)

	payloadReq, err := decodePayload(msg)
	if err != nil {
		return that.sendErrorResponse(conn, msg.Action, err.Error())
	}

	if payloadReq.playerID() == "" {
		return that.sendErrorResponse(conn, msg.Action, "player is required")
	}

	log = log.With("playerID", payloadReq.playerID())

	game, err := action(payloadReq)
	if err != nil {
		log.Warn("game action failed", "error", err)
		return that.sendErrorResponse(conn, msg.Action, clientError(err))
	}

	return that.sendMessage(conn, msg.Action, Payload{Game: maskGameDetails(game)})
}

func decodePayload(msg *Message) (*Payload, error) {
	var payload Payload
	if len(msg.Payload) == 0 {
		return &payload, nil
	}

	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return nil, errors.New("malformed payload")
	}

	return &payload, nil
}

func clientError(err error) string {
	for _, known := range clientErrors {
		if errors.Is(err, known) {
			return known.Error()
		}
	}

	return errInternal
}

// maskGameDetails hides the player list from the game payload.
func maskGameDetails(game *entity.Game) *entity.Game {
	masked := *game
	masked.Players = nil

	return &masked
}
