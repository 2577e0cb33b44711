package repository

import (
	"context"
	"sync"
	"testing"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryResultRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Counts concurrent records", func(t *testing.T) {
		// Given: an empty repository
		resultRepo := NewMemoryResultRepository()

		// When: many goroutines record at once
		var wg sync.WaitGroup
		for i := range 30 {
			wg.Add(1)
			go func() {
				defer wg.Done()

				outcome := []entity.Outcome{entity.OutcomeFirst, entity.OutcomeSecond, entity.OutcomeDraw}[i%3]
				assert.NoError(t, resultRepo.Record(ctx, "a-vs-b", outcome))
			}()
		}
		wg.Wait()

		// Then: no update is lost
		tally, err := resultRepo.GetByMatchup(ctx, "a-vs-b")
		require.NoError(t, err)
		assert.Equal(t, &entity.Tally{Matchup: "a-vs-b", FirstWins: 10, SecondWins: 10, Draws: 10}, tally)
	})

	t.Run("Returned tallies are copies", func(t *testing.T) {
		resultRepo := NewMemoryResultRepository()
		require.NoError(t, resultRepo.Record(ctx, "a-vs-b", entity.OutcomeDraw))

		tally, err := resultRepo.GetByMatchup(ctx, "a-vs-b")
		require.NoError(t, err)
		tally.Draws = 100

		stored, err := resultRepo.GetByMatchup(ctx, "a-vs-b")
		require.NoError(t, err)
		assert.Equal(t, 1, stored.Draws)
	})

	t.Run("Unknown outcome is rejected", func(t *testing.T) {
		resultRepo := NewMemoryResultRepository()

		require.Error(t, resultRepo.Record(ctx, "a-vs-b", entity.Outcome("forfeit")))

		_, err := resultRepo.GetByMatchup(ctx, "a-vs-b")
		require.ErrorIs(t, err, apperror.ErrMatchupNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		resultRepo := NewMemoryResultRepository()
		require.NoError(t, resultRepo.Record(ctx, "a-vs-b", entity.OutcomeFirst))

		require.NoError(t, resultRepo.DeleteByMatchup(ctx, "a-vs-b"))
		require.ErrorIs(t, resultRepo.DeleteByMatchup(ctx, "a-vs-b"), apperror.ErrMatchupNotFound)
	})
}
