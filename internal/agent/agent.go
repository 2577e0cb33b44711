package agent

import (
	"fmt"
	"math/rand/v2"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/minimax"
)

const (
	KindMinimax   = "minimax"
	KindRandom    = "random"
	KindHeuristic = "heuristic"
)

// Agent chooses the next move for the player it was built for.
type Agent interface {
	NextMove(board entity.Board) (entity.Move, error)
}

// Factory builds a fresh agent for one game. Agents are not safe for concurrent use,
// so every game gets its own.
type Factory func(mark entity.Player, seed uint64) (Agent, error)

// NewFactory - returns the factory for an agent kind.
func NewFactory(kind string, opts ...minimax.Option) (Factory, error) {
	switch kind {
	case KindMinimax:
		return func(mark entity.Player, _ uint64) (Agent, error) {
			if !mark.IsValid() {
				return nil, fmt.Errorf("%w: %q", apperror.ErrUnknownPlayer, string(mark))
			}
			return NewMinimax(mark, opts...), nil
		}, nil
	case KindRandom:
		return func(_ entity.Player, seed uint64) (Agent, error) {
			return NewRandom(NewSource(seed)), nil
		}, nil
	case KindHeuristic:
		return func(mark entity.Player, seed uint64) (Agent, error) {
			if !mark.IsValid() {
				return nil, fmt.Errorf("%w: %q", apperror.ErrUnknownPlayer, string(mark))
			}
			return NewHeuristic(mark, NewSource(seed)), nil
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", apperror.ErrUnknownAgent, kind)
	}
}

// NewSource - returns a deterministic random source for the seed.
func NewSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
