package entity

const BotID = "bot"

type Player struct {
	ID     string `json:"id"`
	Mark   Mark   `json:"mark,omitempty"`
	GameID string `json:"game_id,omitempty"`
}

// NewBotPlayer returns the computer opponent, which always plays O.
func NewBotPlayer(gameID string) *Player {
	return &Player{
		ID:     BotID,
		Mark:   PlayerO,
		GameID: gameID,
	}
}

func (that *Player) IsBot() bool {
	return that.ID == BotID
}
