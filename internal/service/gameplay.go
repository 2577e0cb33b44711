package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-engine/internal/agent"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

var ErrMissingAgent = errors.New("no agent for player")

// TurnObserver is told about every turn of a game, the console uses it to draw the board.
type TurnObserver interface {
	TurnStarted(game *entity.Game)
	TurnPlayed(game *entity.Game, player entity.Player, move entity.Move)
}

type GamePlayService interface {
	Play(ctx context.Context, game *entity.Game, agents map[entity.Player]agent.Agent) error
}

type gamePlayService struct {
	logger   *slog.Logger
	observer TurnObserver
}

// NewGamePlayService - observer may be nil.
func NewGamePlayService(logger *slog.Logger, observer TurnObserver) GamePlayService {
	return &gamePlayService{
		logger:   logger,
		observer: observer,
	}
}

// Play - asks the agents for moves in turn until the game is finished.
func (that *gamePlayService) Play(ctx context.Context, game *entity.Game, agents map[entity.Player]agent.Agent) error {
	log := that.logger.With("method", "Play", "game_id", game.ID)

	for game.IsOngoing() {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("game interrupted: %w", err)
		}

		player := game.Turn

		bot, ok := agents[player]
		if !ok || bot == nil {
			return fmt.Errorf("%w %s", ErrMissingAgent, player)
		}

		if that.observer != nil {
			that.observer.TurnStarted(game)
		}

		move, err := bot.NextMove(game.Board)
		if err != nil {
			return fmt.Errorf("%s failed to choose a move: %w", player, err)
		}

		if err = game.MakeTurn(player, move); err != nil {
			return fmt.Errorf("failed to make turn: %w", err)
		}

		log.Debug("turn played", "player", player, "move", move.String())

		if that.observer != nil {
			that.observer.TurnPlayed(game, player, move)
		}
	}

	log.Info("game finished", "winner", game.Winner.String(), "moves", len(game.Moves))

	return nil
}
