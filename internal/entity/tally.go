package entity

import "fmt"

// Outcome of one arena game, seen from the two contenders of a matchup.
type Outcome string

const (
	OutcomeFirst  Outcome = "first"
	OutcomeSecond Outcome = "second"
	OutcomeDraw   Outcome = "draw"
)

// Tally counts the outcomes of a matchup.
type Tally struct {
	Matchup    string `json:"matchup"`
	FirstWins  int    `json:"first_wins"`
	SecondWins int    `json:"second_wins"`
	Draws      int    `json:"draws"`
}

func Matchup(first, second string) string {
	return fmt.Sprintf("%s-vs-%s", first, second)
}

func NewTally(matchup string) *Tally {
	return &Tally{Matchup: matchup}
}

func (that *Tally) Record(outcome Outcome) error {
	return that.Add(outcome, 1)
}

func (that *Tally) Add(outcome Outcome, count int) error {
	switch outcome {
	case OutcomeFirst:
		that.FirstWins += count
	case OutcomeSecond:
		that.SecondWins += count
	case OutcomeDraw:
		that.Draws += count
	default:
		return fmt.Errorf("unknown outcome %q", outcome)
	}

	return nil
}

func (that *Tally) Games() int {
	return that.FirstWins + that.SecondWins + that.Draws
}
