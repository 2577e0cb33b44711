package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

func TestRenderTally(t *testing.T) {
	t.Run("RenderTally_Success", func(t *testing.T) {
		// Given: two matchups
		tallies := []*entity.Tally{
			{Matchup: "minimax-vs-random", FirstWins: 7, Draws: 3},
			{Matchup: "random-vs-random", FirstWins: 4, SecondWins: 4, Draws: 2},
		}
		out := &bytes.Buffer{}

		// When: the report is rendered
		err := RenderTally(out, tallies...)

		// Then: the page names the chart, the matchups and the series
		require.NoError(t, err)
		html := out.String()
		assert.Contains(t, html, "<html>")
		assert.Contains(t, html, chartTitle)
		assert.Contains(t, html, "minimax-vs-random")
		assert.Contains(t, html, "random-vs-random")
		assert.Contains(t, html, "second wins")
	})

	t.Run("RenderTally_Empty", func(t *testing.T) {
		out := &bytes.Buffer{}

		err := RenderTally(out)

		require.ErrorIs(t, err, ErrNoTallies)
		assert.Zero(t, out.Len())
	})
}
