package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-solo/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
)

type Game struct {
	ID         string     `json:"id"`
	Board      Board      `json:"board"`
	Winner     Mark       `json:"winner"`
	Status     string     `json:"status"`
	Turn       Mark       `json:"player_turn"`
	Difficulty Difficulty `json:"difficulty"`
	Players    []*Player  `json:"players,omitempty"`
}

func NewGame(id string, difficulty Difficulty) *Game {
	return &Game{
		ID:         id,
		Turn:       PlayerX,
		Status:     StatusOngoing,
		Difficulty: difficulty,
	}
}

func (that *Game) Outcome() Outcome {
	return that.Board.Outcome()
}

func (that *Game) UpdateGameState() {
	outcome := that.Board.Outcome()
	if !outcome.IsTerminal() {
		that.Status = StatusOngoing
		return
	}

	that.Winner = outcome.Winner()
	that.Status = StatusFinished
	that.Turn = EmptyCell
}

func (that *Game) MakeTurn(mark Mark, cell int) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if that.Turn != mark {
		return apperror.ErrNotYourTurn
	}

	board, err := that.Board.Apply(cell, mark)
	if err != nil {
		return err
	}

	that.Board = board
	that.Turn = mark.Opponent()
	that.UpdateGameState()

	return nil
}

// Reset clears the board for a rematch. Difficulty and players stay.
func (that *Game) Reset() {
	that.Board = Board{}
	that.Winner = EmptyCell
	that.Turn = PlayerX
	that.Status = StatusOngoing
}

func (that *Game) SetDifficulty(difficulty Difficulty) error {
	if !difficulty.IsValid() {
		return fmt.Errorf("%w: %q", apperror.ErrUnknownDifficulty, difficulty)
	}

	that.Difficulty = difficulty

	return nil
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: unknown status %q", apperror.ErrNoActiveGame, that.Status)
	}
}

func (that *Game) BotPlayer() *Player {
	for _, player := range that.Players {
		if player.IsBot() {
			return player
		}
	}

	return nil
}

func (that *Game) HumanPlayer() *Player {
	for _, player := range that.Players {
		if !player.IsBot() {
			return player
		}
	}

	return nil
}
