package console

import (
	"errors"

	"github.com/rocketscienceinc/tictactoe-engine/internal/agent"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// humanAgent asks the console for a move until it gets one the board accepts.
type humanAgent struct {
	console *Console
}

func (that *Console) Human() agent.Agent {
	return &humanAgent{console: that}
}

func (that *humanAgent) NextMove(board entity.Board) (entity.Move, error) {
	for {
		line, err := that.console.readLine()
		if err != nil {
			return entity.Move{}, err
		}

		move, err := ParseMove(line)
		if errors.Is(err, ErrUnrecognizedInput) {
			that.console.println(msgUnrecognized)
			continue
		}
		if err != nil {
			return entity.Move{}, err
		}

		if !move.InRange() || board.Cell(move) != entity.EmptyCell {
			that.console.println(msgInvalidMove)
			continue
		}

		return move, nil
	}
}
