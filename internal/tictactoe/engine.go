package tictactoe

import (
	"fmt"
	"math"
	"math/rand/v2"
	"sync"

	"github.com/rocketscienceinc/tictactoe-solo/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
)

const (
	// DefaultOptimalRate is how often the medium tier plays the hard move.
	DefaultOptimalRate = 0.7

	searchDepth = 3
	winScore    = 10
)

type Option func(*Engine)

// WithRand replaces the random source used by the easy and medium tiers.
func WithRand(rnd *rand.Rand) Option {
	return func(engine *Engine) {
		engine.rnd = rnd
	}
}

// WithOptimalRate sets the medium tier's probability of playing the hard move, clamped to [0, 1].
func WithOptimalRate(rate float64) Option {
	return func(engine *Engine) {
		engine.optimalRate = min(max(rate, 0), 1)
	}
}

// Engine picks the computer's moves. It is safe for concurrent use.
type Engine struct {
	mu          sync.Mutex
	rnd         *rand.Rand
	optimalRate float64
}

func NewEngine(opts ...Option) *Engine {
	engine := &Engine{
		rnd:         rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())), //nolint: gosec // game randomness
		optimalRate: DefaultOptimalRate,
	}

	for _, opt := range opts {
		opt(engine)
	}

	return engine
}

// SelectMove returns the cell the given mark should play next at the given difficulty.
func (that *Engine) SelectMove(board entity.Board, mark entity.Mark, difficulty entity.Difficulty) (int, error) {
	if !mark.IsPlayer() {
		return -1, fmt.Errorf("%w: %q", apperror.ErrInvalidMark, mark)
	}

	if !difficulty.IsValid() {
		return -1, fmt.Errorf("%w: %q", apperror.ErrUnknownDifficulty, difficulty)
	}

	if board.Outcome().IsTerminal() {
		return -1, apperror.ErrNoLegalMove
	}

	switch difficulty {
	case entity.EasyDifficulty:
		return that.randomMove(board), nil
	case entity.MediumDifficulty:
		if that.roll() < that.optimalRate {
			return BestMove(board, mark), nil
		}
		return that.randomMove(board), nil
	default:
		return BestMove(board, mark), nil
	}
}

func (that *Engine) randomMove(board entity.Board) int {
	cells := board.EmptyCells()

	that.mu.Lock()
	defer that.mu.Unlock()

	return cells[that.rnd.IntN(len(cells))]
}

func (that *Engine) roll() float64 {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.rnd.Float64()
}

// BestMove runs a depth-limited minimax for mark and returns the lowest-indexed cell with the
// highest score. It returns -1 when the board has no empty cell.
func BestMove(board entity.Board, mark entity.Mark) int {
	bestCell, bestScore := -1, math.MinInt

	for _, cell := range board.EmptyCells() {
		board[cell] = mark
		score := minimax(&board, 0, mark, false)
		board[cell] = entity.EmptyCell

		if score > bestScore {
			bestCell, bestScore = cell, score
		}
	}

	return bestCell
}

// minimax scores the board from me's point of view. Wins found sooner score higher, and
// positions still open after searchDepth plies count as neutral.
func minimax(board *entity.Board, depth int, me entity.Mark, maximizing bool) int {
	switch {
	case board.Wins(me):
		return winScore - depth
	case board.Wins(me.Opponent()):
		return depth - winScore
	case board.IsFull():
		return 0
	case depth >= searchDepth:
		return 0
	}

	side := me.Opponent()
	best := math.MaxInt
	if maximizing {
		side = me
		best = math.MinInt
	}

	for cell := range board {
		if board[cell] != entity.EmptyCell {
			continue
		}

		board[cell] = side
		score := minimax(board, depth+1, me, !maximizing)
		board[cell] = entity.EmptyCell

		if maximizing {
			best = max(best, score)
		} else {
			best = min(best, score)
		}
	}

	return best
}
