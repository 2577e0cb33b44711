package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/rocketscienceinc/tictactoe-engine/internal/agent"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository"
)

var ErrEmptySeries = errors.New("series has no games")

// Contender is one side of an arena matchup.
type Contender struct {
	Name    string
	Factory agent.Factory
}

// Series describes a run of games between two contenders.
type Series struct {
	First   Contender
	Second  Contender
	Games   int
	Workers int
	Seed    uint64
}

func (that Series) Matchup() string {
	return entity.Matchup(that.First.Name, that.Second.Name)
}

type ArenaService interface {
	Run(ctx context.Context, series Series) (*entity.Tally, error)
}

type arenaService struct {
	logger *slog.Logger

	gamePlayService  GamePlayService
	resultRepository repository.ResultRepository
}

func NewArenaService(logger *slog.Logger, gamePlayService GamePlayService, resultRepository repository.ResultRepository) ArenaService {
	return &arenaService{
		logger:           logger,
		gamePlayService:  gamePlayService,
		resultRepository: resultRepository,
	}
}

// Run - plays the series on a pool of workers and returns the tally of this run.
// Results are also added to the stored tally of the matchup.
func (that *arenaService) Run(ctx context.Context, series Series) (*entity.Tally, error) {
	if series.Games <= 0 {
		return nil, ErrEmptySeries
	}

	matchup := series.Matchup()
	log := that.logger.With("method", "Run", "matchup", matchup)

	tally := entity.NewTally(matchup)
	var mu sync.Mutex

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(max(series.Workers, 1))

	log.Info("series started", "games", series.Games, "workers", series.Workers)

	for i := range series.Games {
		if groupCtx.Err() != nil {
			break
		}

		group.Go(func() error {
			gameID := uuid.NewString()

			outcome, err := that.playOne(groupCtx, series, i, gameID)
			if err != nil {
				return fmt.Errorf("game %d (%s): %w", i, gameID, err)
			}

			if err = that.resultRepository.Record(groupCtx, matchup, outcome); err != nil {
				return fmt.Errorf("failed to record game %d (%s): %w", i, gameID, err)
			}

			log.Debug("game recorded", "game_id", gameID, "index", i, "outcome", outcome)

			mu.Lock()
			defer mu.Unlock()

			return tally.Record(outcome)
		})
	}

	err := group.Wait()

	// games finished before a cancellation stay in the tally
	if ctx.Err() != nil {
		return tally, fmt.Errorf("series interrupted after %d games: %w", tally.Games(), ctx.Err())
	}

	if err != nil {
		return tally, err
	}

	log.Info("series finished",
		"first_wins", tally.FirstWins, "second_wins", tally.SecondWins, "draws", tally.Draws)

	return tally, nil
}

// playOne - plays game i, the first contender takes X on even games.
func (that *arenaService) playOne(ctx context.Context, series Series, i int, gameID string) (entity.Outcome, error) {
	firstMark := entity.PlayerX
	if i%2 == 1 {
		firstMark = entity.PlayerO
	}

	seed := series.Seed + uint64(i)

	first, err := series.First.Factory(firstMark, seed)
	if err != nil {
		return "", fmt.Errorf("failed to build %s: %w", series.First.Name, err)
	}

	second, err := series.Second.Factory(firstMark.Opponent(), seed)
	if err != nil {
		return "", fmt.Errorf("failed to build %s: %w", series.Second.Name, err)
	}

	game := entity.NewGame(gameID, entity.PlayerX)
	agents := map[entity.Player]agent.Agent{
		firstMark:            first,
		firstMark.Opponent(): second,
	}

	if err = that.gamePlayService.Play(ctx, game, agents); err != nil {
		return "", err
	}

	switch game.Winner {
	case entity.EmptyCell:
		return entity.OutcomeDraw, nil
	case firstMark:
		return entity.OutcomeFirst, nil
	default:
		return entity.OutcomeSecond, nil
	}
}
