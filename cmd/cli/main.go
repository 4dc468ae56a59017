// Command cli plays tic-tac-toe against the engine in a terminal, without Redis or a network.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-solo/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solo/internal/tictactoe"
)

func main() {
	difficultyFlag := flag.String("difficulty", string(entity.HardDifficulty), "computer strength: easy, medium or hard")
	rate := flag.Float64("medium-rate", tictactoe.DefaultOptimalRate, "how often medium plays the best move")
	selfPlay := flag.Bool("self-play", false, "let the engine play both sides")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	difficulty, err := entity.ParseDifficulty(*difficultyFlag)
	if err != nil {
		logger.Error("bad flag", "error", err)
		os.Exit(2)
	}

	cli := &session{
		engine:     tictactoe.NewEngine(tictactoe.WithOptimalRate(*rate)),
		render:     newRenderer(os.Stdout),
		input:      bufio.NewScanner(os.Stdin),
		difficulty: difficulty,
		selfPlay:   *selfPlay,
	}

	if err = cli.run(); err != nil && !errors.Is(err, io.EOF) {
		logger.Error("game aborted", "error", err)
		os.Exit(1)
	}
}

type session struct {
	engine     *tictactoe.Engine
	render     *renderer
	input      *bufio.Scanner
	difficulty entity.Difficulty
	selfPlay   bool
}

func (that *session) run() error {
	game := entity.NewGame("cli", that.difficulty)

	for {
		if err := that.play(game); err != nil {
			return err
		}

		if that.selfPlay {
			return nil
		}

		answer, err := that.ask("Play again? [y/N] ")
		if err != nil || !strings.HasPrefix(strings.ToLower(answer), "y") {
			return err
		}
		game.Reset()
	}
}

func (that *session) play(game *entity.Game) error {
	for game.IsOngoing() {
		that.render.printf("\n%s\n", that.render.board(game.Board))

		cell, err := that.nextMove(game)
		if err != nil {
			return err
		}

		if err = game.MakeTurn(game.Turn, cell); err != nil {
			that.render.printf("%v\n", err)
			continue
		}
	}

	that.render.printf("\n%s\n%s\n", that.render.board(game.Board), that.render.outcome(game.Outcome(), entity.PlayerX))

	return nil
}

func (that *session) nextMove(game *entity.Game) (int, error) {
	if that.selfPlay || game.Turn == entity.PlayerO {
		cell, err := that.engine.SelectMove(game.Board, game.Turn, game.Difficulty)
		if err != nil {
			return -1, fmt.Errorf("engine failed: %w", err)
		}

		that.render.printf("%s plays %d\n", game.Turn, cell+1)

		return cell, nil
	}

	for {
		answer, err := that.ask("Your move (1-9): ")
		if err != nil {
			return -1, err
		}

		number, err := strconv.Atoi(answer)
		if err != nil || number < 1 || number > entity.BoardSize {
			that.render.printf("%v: type a number from 1 to 9\n", apperror.ErrInvalidMove)
			continue
		}

		return number - 1, nil
	}
}

func (that *session) ask(prompt string) (string, error) {
	that.render.printf("%s", prompt)

	if !that.input.Scan() {
		if err := that.input.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", io.EOF
	}

	return strings.TrimSpace(that.input.Text()), nil
}
