package apperror

import "errors"

var (
	ErrInvalidMove       = errors.New("invalid move")
	ErrNoLegalMove       = errors.New("no legal move left")
	ErrInvalidMark       = errors.New("invalid mark")
	ErrUnknownDifficulty = errors.New("unknown difficulty")

	ErrGameFinished   = errors.New("game is already finished")
	ErrNotYourTurn    = errors.New("it's not your turn")
	ErrNoActiveGame   = errors.New("no active game")
	ErrGameNotFound   = errors.New("game not found")
	ErrPlayerNotFound = errors.New("player not found")
	ErrBotNotFound    = errors.New("bot player not found")
)
