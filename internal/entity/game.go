package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
)

// Game is the state a turn loop owns: the board, whose turn it is and how it ended.
type Game struct {
	ID     string `json:"id"`
	Board  Board  `json:"board"`
	Turn   Player `json:"player_turn"`
	Winner Player `json:"winner"`
	Status string `json:"status"`
	Moves  []Move `json:"moves,omitempty"`
}

func NewGame(id string, firstTurn Player) *Game {
	return &Game{
		ID:     id,
		Turn:   firstTurn,
		Status: StatusOngoing,
	}
}

// MakeTurn - places the player's mark, then settles the winner, the draw or the next turn.
func (that *Game) MakeTurn(player Player, move Move) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if that.Turn != player {
		return fmt.Errorf("%w: %s to move", apperror.ErrNotYourTurn, that.Turn)
	}

	board, err := that.Board.ApplyMove(move, player)
	if err != nil {
		return fmt.Errorf("failed to apply move: %w", err)
	}

	that.Board = board
	that.Moves = append(that.Moves, move)

	that.UpdateGameState()

	return nil
}

func (that *Game) UpdateGameState() {
	if winner, ok := that.Board.Winner(); ok {
		that.Winner = winner
		that.Status = StatusFinished
		return
	}

	// a full board without a line is a draw
	if that.Board.IsDraw() {
		that.Winner = EmptyCell
		that.Status = StatusFinished
		return
	}

	that.Status = StatusOngoing
	that.Turn = that.Turn.Opponent()
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsDraw() bool {
	return that.IsFinished() && that.Winner == EmptyCell
}
