package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

// Player is the mark a player puts on the board. The zero value is the empty cell.
type Player string

const (
	PlayerX Player = "X"
	PlayerO Player = "O"

	EmptyCell Player = ""
)

// Opponent - returns the other player. The empty cell has no opponent.
func (that Player) Opponent() Player {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return EmptyCell
	}
}

func (that Player) IsValid() bool {
	return that == PlayerX || that == PlayerO
}

func (that Player) String() string {
	if that == EmptyCell {
		return "-"
	}

	return string(that)
}

// ParsePlayer - parses "x" or "o" in any case, surrounding spaces are ignored.
func ParsePlayer(text string) (Player, error) {
	switch Player(strings.ToUpper(strings.TrimSpace(text))) {
	case PlayerX:
		return PlayerX, nil
	case PlayerO:
		return PlayerO, nil
	default:
		return EmptyCell, fmt.Errorf("%w: %q", apperror.ErrUnknownPlayer, text)
	}
}
