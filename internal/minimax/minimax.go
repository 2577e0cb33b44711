// Package minimax scores tic-tac-toe positions by exhaustive game-tree search.
//
// Every call explores the tree down to terminal boards: there is no pruning,
// no caching and no depth limit, the 3x3 board bounds the tree at nine plies.
// Scores are taken from the point of view of one fixed player.
package minimax

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const (
	ScoreLoss = -1
	ScoreDraw = 0
	ScoreWin  = 1
)

type Option func(*Engine)

// WithParallelism bounds how many root branches are scored at once. Values below 2 search sequentially.
func WithParallelism(n int) Option {
	return func(engine *Engine) {
		engine.parallelism = max(n, 1)
	}
}

// Engine searches on behalf of a single player.
type Engine struct {
	player      entity.Player
	parallelism int
}

func New(player entity.Player, opts ...Option) *Engine {
	engine := &Engine{
		player:      player,
		parallelism: runtime.NumCPU(),
	}

	for _, opt := range opts {
		opt(engine)
	}

	return engine
}

func (that *Engine) Player() entity.Player {
	return that.player
}

// node is one child of a search position.
type node struct {
	move  entity.Move
	board entity.Board
}

// Score - returns the minimax value of the board with mover to play.
func (that *Engine) Score(board entity.Board, mover entity.Player) (int, error) {
	if winner, ok := board.Winner(); ok {
		if winner == that.player {
			return ScoreWin, nil
		}
		return ScoreLoss, nil
	}

	if board.IsDraw() {
		return ScoreDraw, nil
	}

	children, err := expand(board, mover)
	if err != nil {
		return 0, err
	}

	if len(children) == 0 {
		return 0, fmt.Errorf("%w: non-terminal board has no children:\n%s", apperror.ErrInvariantViolation, board)
	}

	maximizing := mover == that.player

	best := ScoreWin + 1
	if maximizing {
		best = ScoreLoss - 1
	}

	for _, child := range children {
		score, err := that.Score(child.board, mover.Opponent())
		if err != nil {
			return 0, err
		}

		if maximizing {
			best = max(best, score)
		} else {
			best = min(best, score)
		}
	}

	return best, nil
}

// BestMove - returns the engine player's move with the highest score.
// Equal scores resolve to the last such move in row-major order.
func (that *Engine) BestMove(board entity.Board) (entity.Move, error) {
	if !that.player.IsValid() {
		return entity.Move{}, fmt.Errorf("%w: engine plays %q", apperror.ErrUnknownPlayer, string(that.player))
	}

	if winner, ok := board.Winner(); ok {
		return entity.Move{}, fmt.Errorf("%w: won by %s", apperror.ErrBoardTerminal, winner)
	}

	if board.IsDraw() {
		return entity.Move{}, fmt.Errorf("%w: no open cells", apperror.ErrBoardTerminal)
	}

	children, err := expand(board, that.player)
	if err != nil {
		return entity.Move{}, err
	}

	// each branch writes only its own slot, the reduction below runs after Wait
	scores := make([]int, len(children))

	var group errgroup.Group
	group.SetLimit(that.parallelism)

	for i, child := range children {
		group.Go(func() error {
			score, err := that.Score(child.board, that.player.Opponent())
			if err != nil {
				return fmt.Errorf("failed to score move (%s): %w", child.move, err)
			}

			scores[i] = score

			return nil
		})
	}

	if err = group.Wait(); err != nil {
		return entity.Move{}, err
	}

	best := 0
	for i, score := range scores {
		if score >= scores[best] {
			best = i
		}
	}

	return children[best].move, nil
}

// expand - returns a child for every open cell, each on its own board copy.
func expand(board entity.Board, mover entity.Player) ([]node, error) {
	cells := board.OpenCells()
	children := make([]node, 0, len(cells))

	for _, move := range cells {
		child, err := board.ApplyMove(move, mover)
		if err != nil {
			return nil, fmt.Errorf("%w: generated child is illegal: %w", apperror.ErrInvariantViolation, err)
		}

		children = append(children, node{move: move, board: child})
	}

	return children, nil
}

// Score - returns the minimax value of the board for player ai, with mover to play.
func Score(board entity.Board, mover, ai entity.Player) (int, error) {
	return New(ai).Score(board, mover)
}

// BestMove - returns the optimal move for ai on the board.
func BestMove(board entity.Board, ai entity.Player) (entity.Move, error) {
	return New(ai).BestMove(board)
}
