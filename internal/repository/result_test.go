package repository

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultRepository_Record(t *testing.T) {
	t.Run("Record_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		resultRepo := NewResultRepository(st.Storage)

		// Given: a matchup with a few finished games
		matchup := entity.Matchup("minimax", "random")

		// When: Record is called for each outcome
		require.NoError(t, resultRepo.Record(ctx, matchup, entity.OutcomeFirst))
		require.NoError(t, resultRepo.Record(ctx, matchup, entity.OutcomeFirst))
		require.NoError(t, resultRepo.Record(ctx, matchup, entity.OutcomeDraw))

		// Then: the stored tally adds them up
		tally, err := resultRepo.GetByMatchup(ctx, matchup)
		require.NoError(t, err)
		assert.Equal(t, &entity.Tally{Matchup: matchup, FirstWins: 2, Draws: 1}, tally)
	})

	t.Run("Record_UnknownOutcome", func(t *testing.T) {
		ctx, st := suite.New(t)

		resultRepo := NewResultRepository(st.Storage)

		// When: Record is called with an outcome that does not exist
		err := resultRepo.Record(ctx, "a-vs-b", entity.Outcome("forfeit"))

		// Then: nothing is stored
		require.Error(t, err)
		_, err = resultRepo.GetByMatchup(ctx, "a-vs-b")
		require.ErrorIs(t, err, apperror.ErrMatchupNotFound)
	})
}

func TestResultRepository_GetByMatchup(t *testing.T) {
	t.Run("GetByMatchup_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		resultRepo := NewResultRepository(st.Storage)

		// When: GetByMatchup is called for a matchup never played
		tally, err := resultRepo.GetByMatchup(ctx, "nobody-vs-nobody")

		// Then: ErrMatchupNotFound is returned
		require.ErrorIs(t, err, apperror.ErrMatchupNotFound)
		assert.Nil(t, tally)
	})
}

func TestResultRepository_DeleteByMatchup(t *testing.T) {
	t.Run("DeleteByMatchup_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		resultRepo := NewResultRepository(st.Storage)

		// Given: a recorded matchup
		require.NoError(t, resultRepo.Record(ctx, "a-vs-b", entity.OutcomeSecond))

		// When: DeleteByMatchup is called
		err := resultRepo.DeleteByMatchup(ctx, "a-vs-b")

		// Then: the tally is gone
		require.NoError(t, err)
		_, err = resultRepo.GetByMatchup(ctx, "a-vs-b")
		require.ErrorIs(t, err, apperror.ErrMatchupNotFound)
	})

	t.Run("DeleteByMatchup_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		resultRepo := NewResultRepository(st.Storage)

		err := resultRepo.DeleteByMatchup(ctx, "a-vs-b")

		require.ErrorIs(t, err, apperror.ErrMatchupNotFound)
	})
}
