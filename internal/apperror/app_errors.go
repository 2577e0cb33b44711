package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidMove    = errors.New("invalid move")
	ErrCellOccupied   = fmt.Errorf("%w: cell is already occupied", ErrInvalidMove)
	ErrCellOutOfRange = fmt.Errorf("%w: cell is out of range", ErrInvalidMove)

	ErrPreconditionViolation = errors.New("precondition violation")
	ErrBoardTerminal         = fmt.Errorf("%w: board is already terminal", ErrPreconditionViolation)
	ErrNoAvailableMoves      = fmt.Errorf("%w: no available moves", ErrPreconditionViolation)

	ErrInvariantViolation = errors.New("internal invariant violation")

	ErrGameFinished    = errors.New("game is already finished")
	ErrNotYourTurn     = errors.New("it's not your turn")
	ErrUnknownPlayer   = errors.New("unknown player")
	ErrUnknownAgent    = errors.New("unknown agent kind")
	ErrGameAborted     = errors.New("game aborted")
	ErrMatchupNotFound = errors.New("matchup not found")
)
