package entity

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

const BoardSize = 3

var ErrMalformedBoard = errors.New("malformed board")

// lines are checked in order: rows, columns, then both diagonals.
var lines = [...][BoardSize]Move{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// Move addresses a single cell.
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Move) InRange() bool {
	return that.Row >= 0 && that.Row < BoardSize && that.Col >= 0 && that.Col < BoardSize
}

func (that Move) String() string {
	return fmt.Sprintf("%d, %d", that.Row, that.Col)
}

// Board is a value type: assigning or passing it copies every cell.
type Board [BoardSize][BoardSize]Player

func (that Board) Cell(move Move) Player {
	return that[move.Row][move.Col]
}

// ApplyMove - returns a copy of the board with the move applied. The receiver is left untouched.
func (that Board) ApplyMove(move Move, player Player) (Board, error) {
	if !player.IsValid() {
		return that, fmt.Errorf("%w: %q", apperror.ErrUnknownPlayer, string(player))
	}

	if !move.InRange() {
		return that, fmt.Errorf("%w: (%s)", apperror.ErrCellOutOfRange, move)
	}

	if occupant := that[move.Row][move.Col]; occupant != EmptyCell {
		return that, fmt.Errorf("%w: (%s) holds %s", apperror.ErrCellOccupied, move, occupant)
	}

	next := that
	next[move.Row][move.Col] = player

	return next, nil
}

// OpenCells - returns every empty cell in row-major order.
func (that Board) OpenCells() []Move {
	cells := make([]Move, 0, BoardSize*BoardSize)
	for row := range BoardSize {
		for col := range BoardSize {
			if that[row][col] == EmptyCell {
				cells = append(cells, Move{Row: row, Col: col})
			}
		}
	}

	return cells
}

// Winner - returns the owner of the first completed line.
func (that Board) Winner() (Player, bool) {
	for _, line := range lines {
		a, b, c := that.Cell(line[0]), that.Cell(line[1]), that.Cell(line[2])
		if a != EmptyCell && a == b && b == c {
			return a, true
		}
	}

	return EmptyCell, false
}

// IsDraw reports that no open cells remain. It does not look for a winner,
// so callers must check Winner first.
func (that Board) IsDraw() bool {
	for row := range BoardSize {
		for col := range BoardSize {
			if that[row][col] == EmptyCell {
				return false
			}
		}
	}

	return true
}

func (that Board) IsTerminal() bool {
	if _, ok := that.Winner(); ok {
		return true
	}

	return that.IsDraw()
}

// String renders one row per line, '#' for empty cells.
func (that Board) String() string {
	var builder strings.Builder
	builder.Grow(BoardSize * (BoardSize + 1))

	for _, row := range that {
		for _, cell := range row {
			if cell == EmptyCell {
				builder.WriteByte('#')
			} else {
				builder.WriteString(string(cell))
			}
		}
		builder.WriteByte('\n')
	}

	return builder.String()
}

// ParseBoard - parses the String form back. Rows may be separated by newlines or '/',
// and '#', '.' or '_' mark an empty cell.
func ParseBoard(text string) (Board, error) {
	rows := strings.FieldsFunc(text, func(r rune) bool {
		return r == '\n' || r == '/' || r == '\r'
	})

	var board Board
	if len(rows) != BoardSize {
		return board, fmt.Errorf("%w: want %d rows, got %d", ErrMalformedBoard, BoardSize, len(rows))
	}

	for row, line := range rows {
		line = strings.TrimSpace(line)
		if len(line) != BoardSize {
			return board, fmt.Errorf("%w: row %d has %d cells", ErrMalformedBoard, row, len(line))
		}

		for col, char := range line {
			switch char {
			case 'x', 'X':
				board[row][col] = PlayerX
			case 'o', 'O':
				board[row][col] = PlayerO
			case '#', '.', '_':
				board[row][col] = EmptyCell
			default:
				return board, fmt.Errorf("%w: unexpected %q at row %d", ErrMalformedBoard, char, row)
			}
		}
	}

	return board, nil
}

// MustParseBoard is ParseBoard for fixtures known to be well formed.
func MustParseBoard(text string) Board {
	board, err := ParseBoard(text)
	if err != nil {
		panic(err)
	}

	return board
}
