package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
)

const (
	colorX    = "#E06C75"
	colorO    = "#61AFEF"
	colorHint = "#5C6370"
)

type renderer struct {
	out *termenv.Output
}

func newRenderer(w io.Writer, opts ...termenv.OutputOption) *renderer {
	return &renderer{out: termenv.NewOutput(w, opts...)}
}

// board draws the grid with free cells numbered 1-9, the way the player types them.
func (that *renderer) board(board entity.Board) string {
	var sb strings.Builder

	for row := range 3 {
		cells := make([]string, 0, 3)
		for col := range 3 {
			cells = append(cells, that.cell(board, row*3+col))
		}

		sb.WriteString(" " + strings.Join(cells, " | ") + "\n")
		if row < 2 {
			sb.WriteString("---+---+---\n")
		}
	}

	return sb.String()
}

func (that *renderer) cell(board entity.Board, index int) string {
	switch board[index] {
	case entity.PlayerX:
		return that.out.String("X").Foreground(that.out.Color(colorX)).Bold().String()
	case entity.PlayerO:
		return that.out.String("O").Foreground(that.out.Color(colorO)).Bold().String()
	default:
		return that.out.String(strconv.Itoa(index + 1)).Foreground(that.out.Color(colorHint)).String()
	}
}

func (that *renderer) outcome(outcome entity.Outcome, human entity.Mark) string {
	switch {
	case outcome == entity.Draw:
		return "It's a draw."
	case outcome.Winner() == human:
		return that.out.String("You win!").Bold().String()
	case outcome.IsTerminal():
		return "The computer wins."
	default:
		return ""
	}
}

func (that *renderer) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(that.out, format, args...)
}
