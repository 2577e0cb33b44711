package agent

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/minimax"
)

type minimaxAgent struct {
	engine *minimax.Engine
}

// NewMinimax - returns an agent playing perfectly as mark.
func NewMinimax(mark entity.Player, opts ...minimax.Option) Agent {
	return &minimaxAgent{
		engine: minimax.New(mark, opts...),
	}
}

func (that *minimaxAgent) NextMove(board entity.Board) (entity.Move, error) {
	move, err := that.engine.BestMove(board)
	if err != nil {
		return entity.Move{}, fmt.Errorf("minimax search failed: %w", err)
	}

	return move, nil
}
