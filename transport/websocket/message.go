package websocket

import (
	"encoding/json"

	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
)

const (
	actionConnect    = "connect"
	actionNewGame    = "game:new"
	actionTurn       = "game:turn"
	actionReset      = "game:reset"
	actionDifficulty = "game:difficulty"
	actionChat       = "chat:message"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type Payload struct {
	Player     *entity.Player `json:"player,omitempty"`
	Game       *entity.Game   `json:"game,omitempty"`
	Cell       *int           `json:"cell,omitempty"`
	Difficulty string         `json:"difficulty,omitempty"`
	Message    string         `json:"message,omitempty"`
	Reply      string         `json:"reply,omitempty"`
	Error      string         `json:"error,omitempty"`
}

func (that *Payload) playerID() string {
	if that.Player == nil {
		return ""
	}

	return that.Player.ID
}
