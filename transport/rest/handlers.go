package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/rocketscienceinc/tictactoe-solo/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
)

const maxBodyBytes = 1 << 16

type moveSelector interface {
	SelectMove(board entity.Board, mark entity.Mark, difficulty entity.Difficulty) (int, error)
}

type chatReplier interface {
	Chat(message string) string
}

type Handlers interface {
	SelectMove(w http.ResponseWriter, r *http.Request)
	Outcome(w http.ResponseWriter, r *http.Request)
	Chat(w http.ResponseWriter, r *http.Request)
}

type boardRequest struct {
	Board []string `json:"board" validate:"required,len=9,dive,omitempty,oneof=X O"`
}

type moveRequest struct {
	boardRequest
	Mark       string `json:"mark" validate:"required,oneof=X O"`
	Difficulty string `json:"difficulty" validate:"required,oneof=easy medium hard"`
}

type moveResponse struct {
	Cell int `json:"cell"`
}

type outcomeResponse struct {
	Outcome entity.Outcome `json:"outcome"`
	Winner  entity.Mark    `json:"winner,omitempty"`
}

type chatRequest struct {
	Message string `json:"message" validate:"required,max=500"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type handlers struct {
	logger   *slog.Logger
	validate *validator.Validate
	engine   moveSelector
	chat     chatReplier
}

func NewHandlers(logger *slog.Logger, engine moveSelector, chat chatReplier) Handlers {
	return &handlers{
		logger:   logger.With("component", "rest"),
		validate: validator.New(validator.WithRequiredStructEnabled()),
		engine:   engine,
		chat:     chat,
	}
}

// SelectMove answers with the cell the engine would play for mark on the posted board.
func (that *handlers) SelectMove(w http.ResponseWriter, r *http.Request) {
	var req moveRequest
	if !that.decode(w, r, &req) {
		return
	}

	cell, err := that.engine.SelectMove(toBoard(req.Board), entity.Mark(req.Mark), entity.Difficulty(req.Difficulty))
	switch {
	case errors.Is(err, apperror.ErrNoLegalMove):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
		return
	case err != nil:
		that.logger.Error("failed to select move", "method", "SelectMove", "error", err)
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, moveResponse{Cell: cell})
}

func (that *handlers) Outcome(w http.ResponseWriter, r *http.Request) {
	var req boardRequest
	if !that.decode(w, r, &req) {
		return
	}

	outcome := toBoard(req.Board).Outcome()
	writeJSON(w, http.StatusOK, outcomeResponse{Outcome: outcome, Winner: outcome.Winner()})
}

func (that *handlers) Chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if !that.decode(w, r, &req) {
		return
	}

	writeJSON(w, http.StatusOK, chatResponse{Reply: that.chat.Chat(req.Message)})
}

// decode reads and validates the JSON body into dst. On failure it writes a 400 and returns false.
func (that *handlers) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "malformed request body"})
		return false
	}

	if err := that.validate.Struct(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return false
	}

	return true
}

func toBoard(cells []string) entity.Board {
	var board entity.Board
	for i, cell := range cells {
		board[i] = entity.Mark(cell)
	}

	return board
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
