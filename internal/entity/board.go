package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-solo/internal/apperror"
)

// Mark is the content of a single cell: X, O or empty.
type Mark string

const (
	PlayerX   Mark = "X"
	PlayerO   Mark = "O"
	PlayerTie Mark = "-"

	EmptyCell Mark = ""
)

const BoardSize = 9

var WinCombos = [][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// IsPlayer reports whether the mark can be placed on a board.
func (that Mark) IsPlayer() bool {
	return that == PlayerX || that == PlayerO
}

// Opponent returns the other player's mark, EmptyCell for anything that is not X or O.
func (that Mark) Opponent() Mark {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return EmptyCell
	}
}

// Board is a 3x3 grid indexed row by row from 0 to 8.
type Board [BoardSize]Mark

func (that Board) Wins(mark Mark) bool {
	if !mark.IsPlayer() {
		return false
	}

	for _, combo := range WinCombos {
		if that[combo[0]] == mark && that[combo[1]] == mark && that[combo[2]] == mark {
			return true
		}
	}

	return false
}

func (that Board) IsFull() bool {
	for _, cell := range that {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}

// EmptyCells returns the free cell indices in ascending order.
func (that Board) EmptyCells() []int {
	cells := make([]int, 0, BoardSize)
	for i, cell := range that {
		if cell == EmptyCell {
			cells = append(cells, i)
		}
	}

	return cells
}

// Outcome checks X before O, so a board with two winners is reported as an X win.
func (that Board) Outcome() Outcome {
	switch {
	case that.Wins(PlayerX):
		return XWins
	case that.Wins(PlayerO):
		return OWins
	case that.IsFull():
		return Draw
	default:
		return InProgress
	}
}

// Apply returns a copy of the board with mark placed on cell. The receiver is never modified.
func (that Board) Apply(cell int, mark Mark) (Board, error) {
	if cell < 0 || cell >= BoardSize {
		return that, fmt.Errorf("%w: cell %d is out of range", apperror.ErrInvalidMove, cell)
	}

	if !mark.IsPlayer() {
		return that, fmt.Errorf("%w: mark %q can't be placed", apperror.ErrInvalidMove, mark)
	}

	if that[cell] != EmptyCell {
		return that, fmt.Errorf("%w: cell %d is already occupied", apperror.ErrInvalidMove, cell)
	}

	if that.Outcome().IsTerminal() {
		return that, fmt.Errorf("%w: board is already decided", apperror.ErrInvalidMove)
	}

	next := that
	next[cell] = mark

	return next, nil
}

func (that Board) String() string {
	cells := make([]any, 0, BoardSize)
	for _, cell := range that {
		if cell == EmptyCell {
			cells = append(cells, ".")
			continue
		}
		cells = append(cells, string(cell))
	}

	return fmt.Sprintf("%s%s%s/%s%s%s/%s%s%s", cells...)
}
