package main

import (
	"bytes"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"

	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
)

func TestRenderer_Board(t *testing.T) {
	// Given: a plain-text terminal
	var buf bytes.Buffer
	r := newRenderer(&buf, termenv.WithProfile(termenv.Ascii))

	// When: drawing a board with one mark each
	drawn := r.board(entity.Board{entity.PlayerX, entity.EmptyCell, entity.EmptyCell, entity.EmptyCell, entity.PlayerO})

	// Then: free cells show the number to type
	assert.Equal(t, " X | 2 | 3\n---+---+---\n 4 | O | 6\n---+---+---\n 7 | 8 | 9\n", drawn)
}

func TestRenderer_Outcome(t *testing.T) {
	var buf bytes.Buffer
	r := newRenderer(&buf, termenv.WithProfile(termenv.Ascii))

	assert.Equal(t, "You win!", r.outcome(entity.XWins, entity.PlayerX))
	assert.Equal(t, "The computer wins.", r.outcome(entity.OWins, entity.PlayerX))
	assert.Equal(t, "It's a draw.", r.outcome(entity.Draw, entity.PlayerX))
	assert.Empty(t, r.outcome(entity.InProgress, entity.PlayerX))
}
