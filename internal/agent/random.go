package agent

import (
	"math/rand/v2"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

type randomAgent struct {
	rnd *rand.Rand
}

// NewRandom - returns an agent picking uniformly among the open cells.
func NewRandom(rnd *rand.Rand) Agent {
	return &randomAgent{rnd: rnd}
}

func (that *randomAgent) NextMove(board entity.Board) (entity.Move, error) {
	return pick(that.rnd, board.OpenCells())
}

func pick(rnd *rand.Rand, cells []entity.Move) (entity.Move, error) {
	if len(cells) == 0 {
		return entity.Move{}, apperror.ErrNoAvailableMoves
	}

	return cells[rnd.IntN(len(cells))], nil
}
