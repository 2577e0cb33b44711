// Package report renders arena tallies as a standalone HTML page.
package report

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

var ErrNoTallies = errors.New("nothing to report")

const chartTitle = "Arena results"

// RenderTally - writes one stacked bar per matchup: first wins, draws and second wins.
func RenderTally(w io.Writer, tallies ...*entity.Tally) error {
	if len(tallies) == 0 {
		return ErrNoTallies
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    chartTitle,
			Subtitle: fmt.Sprintf("%d matchups", len(tallies)),
		}),
		charts.WithInitializationOpts(opts.Initialization{
			Theme: "shine",
		}),
	)

	matchups := make([]string, 0, len(tallies))
	firstWins := make([]opts.BarData, 0, len(tallies))
	draws := make([]opts.BarData, 0, len(tallies))
	secondWins := make([]opts.BarData, 0, len(tallies))

	for _, tally := range tallies {
		matchups = append(matchups, tally.Matchup)
		firstWins = append(firstWins, opts.BarData{Value: tally.FirstWins})
		draws = append(draws, opts.BarData{Value: tally.Draws})
		secondWins = append(secondWins, opts.BarData{Value: tally.SecondWins})
	}

	bar.SetXAxis(matchups).
		AddSeries("first wins", firstWins).
		AddSeries("draws", draws).
		AddSeries("second wins", secondWins)

	page := components.NewPage()
	page.AddCharts(bar)

	if err := page.Render(w); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}

	return nil
}
