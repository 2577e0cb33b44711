package agent

import (
	"math/rand/v2"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// heuristicAgent wins when it can, blocks when it must and plays at random otherwise.
type heuristicAgent struct {
	mark entity.Player
	rnd  *rand.Rand
}

func NewHeuristic(mark entity.Player, rnd *rand.Rand) Agent {
	return &heuristicAgent{
		mark: mark,
		rnd:  rnd,
	}
}

func (that *heuristicAgent) NextMove(board entity.Board) (entity.Move, error) {
	cells := board.OpenCells()

	if move, ok := findWinningMove(board, cells, that.mark); ok {
		return move, nil
	}

	if move, ok := findWinningMove(board, cells, that.mark.Opponent()); ok {
		return move, nil
	}

	return pick(that.rnd, cells)
}

// findWinningMove - returns the first open cell that completes a line for mark.
func findWinningMove(board entity.Board, cells []entity.Move, mark entity.Player) (entity.Move, bool) {
	for _, move := range cells {
		next, err := board.ApplyMove(move, mark)
		if err != nil {
			continue
		}

		if winner, ok := next.Winner(); ok && winner == mark {
			return move, true
		}
	}

	return entity.Move{}, false
}
