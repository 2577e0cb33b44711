package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-engine/internal/agent"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/minimax"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository"
)

func newContender(t *testing.T, kind string) Contender {
	t.Helper()

	factory, err := agent.NewFactory(kind, minimax.WithParallelism(2))
	require.NoError(t, err)

	return Contender{Name: kind, Factory: factory}
}

func newArena(resultRepo repository.ResultRepository) ArenaService {
	logger := discardLogger()
	return NewArenaService(logger, NewGamePlayService(logger, nil), resultRepo)
}

func TestArenaService_Run(t *testing.T) {
	ctx := context.Background()

	t.Run("Run_TallyAddsUp", func(t *testing.T) {
		// Given: a series of random agents on four workers
		resultRepo := repository.NewMemoryResultRepository()
		series := Series{
			First:   newContender(t, agent.KindRandom),
			Second:  newContender(t, agent.KindHeuristic),
			Games:   50,
			Workers: 4,
			Seed:    11,
		}

		// When: the series runs
		tally, err := newArena(resultRepo).Run(ctx, series)

		// Then: every game is counted once, here and in the repository
		require.NoError(t, err)
		assert.Equal(t, "random-vs-heuristic", tally.Matchup)
		assert.Equal(t, 50, tally.Games())

		stored, err := resultRepo.GetByMatchup(ctx, "random-vs-heuristic")
		require.NoError(t, err)
		assert.Equal(t, tally, stored)
	})

	t.Run("Run_SameSeedSameTally", func(t *testing.T) {
		series := Series{
			First:   newContender(t, agent.KindRandom),
			Second:  newContender(t, agent.KindRandom),
			Games:   30,
			Workers: 3,
			Seed:    5,
		}

		first, err := newArena(repository.NewMemoryResultRepository()).Run(ctx, series)
		require.NoError(t, err)

		series.Workers = 1
		second, err := newArena(repository.NewMemoryResultRepository()).Run(ctx, series)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("Run_MinimaxNeverLoses", func(t *testing.T) {
		// Given: minimax against random, taking X on even games
		series := Series{
			First:   newContender(t, agent.KindMinimax),
			Second:  newContender(t, agent.KindRandom),
			Games:   6,
			Workers: 2,
			Seed:    3,
		}

		// When: the series runs
		tally, err := newArena(repository.NewMemoryResultRepository()).Run(ctx, series)

		// Then: random never wins
		require.NoError(t, err)
		assert.Equal(t, 6, tally.Games())
		assert.Zero(t, tally.SecondWins)
	})

	t.Run("Run_EmptySeries", func(t *testing.T) {
		_, err := newArena(repository.NewMemoryResultRepository()).Run(ctx, Series{
			First:  newContender(t, agent.KindRandom),
			Second: newContender(t, agent.KindRandom),
		})

		require.ErrorIs(t, err, ErrEmptySeries)
	})

	t.Run("Run_FactoryError", func(t *testing.T) {
		broken := errors.New("broken factory")
		series := Series{
			First: newContender(t, agent.KindRandom),
			Second: Contender{Name: "broken", Factory: func(entity.Player, uint64) (agent.Agent, error) {
				return nil, broken
			}},
			Games:   4,
			Workers: 2,
		}

		_, err := newArena(repository.NewMemoryResultRepository()).Run(ctx, series)

		// Then: the error names the game that failed
		require.ErrorIs(t, err, broken)
		assert.Regexp(t, `game \d+ \([0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}\)`, err.Error())
	})

	t.Run("Run_CancelledMidSeries", func(t *testing.T) {
		// Given: a first contender that cancels the run when game 3 is built
		cancellable, cancel := context.WithCancel(ctx)
		defer cancel()

		random := newContender(t, agent.KindRandom)
		series := Series{
			First: Contender{Name: "random", Factory: func(mark entity.Player, seed uint64) (agent.Agent, error) {
				if seed == 3 {
					cancel()
				}
				return random.Factory(mark, seed)
			}},
			Second:  random,
			Games:   10,
			Workers: 1,
		}
		resultRepo := repository.NewMemoryResultRepository()

		// When: the series runs
		tally, err := newArena(resultRepo).Run(cancellable, series)

		// Then: the three finished games are kept
		require.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 3, tally.Games())

		stored, err := resultRepo.GetByMatchup(ctx, "random-vs-random")
		require.NoError(t, err)
		assert.Equal(t, 3, stored.Games())
	})

	t.Run("Run_Cancelled", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		series := Series{
			First:   newContender(t, agent.KindRandom),
			Second:  newContender(t, agent.KindRandom),
			Games:   10,
			Workers: 2,
		}

		tally, err := newArena(repository.NewMemoryResultRepository()).Run(cancelled, series)

		require.ErrorIs(t, err, context.Canceled)
		assert.Zero(t, tally.Games())
	})
}
