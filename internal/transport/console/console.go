// Package console plays a game against a human over a line-based text terminal.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/logrusorgru/aurora"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const quitCommand = "quit"

const (
	msgWelcome      = "Welcome to tic-tac-toe!"
	msgHowToPlay    = "You can type quit to quit at any time. Please enter your moves like so: '0,0' (this is the top left square)"
	msgAskMark      = "Are you X or O?"
	msgAskFirst     = "Who will go first?"
	msgTypeXorO     = "Please type X or O"
	msgGameID       = "Game %s"
	msgTurn         = "It's %s's turn."
	msgMachineMove  = "I choose %s"
	msgUnrecognized = "I didn't understand your move"
	msgInvalidMove  = "That move is invalid"
	msgHumanWon     = "You won!"
	msgMachineWon   = "I won! Better luck next time."
	msgDraw         = "It's a draw!"
)

var ErrUnrecognizedInput = errors.New("unrecognized input")

// Console reads the human's answers line by line and writes the game as it goes.
type Console struct {
	scanner *bufio.Scanner
	out     io.Writer
	au      aurora.Aurora

	human entity.Player
}

func New(in io.Reader, out io.Writer, colors bool) *Console {
	return &Console{
		scanner: bufio.NewScanner(in),
		out:     out,
		au:      aurora.NewAurora(colors),
	}
}

// Setup - greets the human and asks for their mark and who moves first.
func (that *Console) Setup() (human, first entity.Player, err error) {
	that.println(msgWelcome)

	if human, err = that.AskPlayer(msgAskMark); err != nil {
		return entity.EmptyCell, entity.EmptyCell, err
	}

	if first, err = that.AskPlayer(msgAskFirst); err != nil {
		return entity.EmptyCell, entity.EmptyCell, err
	}

	that.human = human
	that.println(msgHowToPlay)

	return human, first, nil
}

// AskPlayer - asks the question until the answer names exactly one of X and O.
func (that *Console) AskPlayer(question string) (entity.Player, error) {
	that.println(question)

	for {
		line, err := that.readLine()
		if err != nil {
			return entity.EmptyCell, err
		}

		player, err := ParsePlayerAnswer(line)
		if err == nil {
			return player, nil
		}

		if errors.Is(err, apperror.ErrGameAborted) {
			return entity.EmptyCell, err
		}

		that.println(msgTypeXorO)
	}
}

// Begin - names the game so it can be found in the logs later.
func (that *Console) Begin(game *entity.Game) {
	that.println(fmt.Sprintf(msgGameID, game.ID))
}

func (that *Console) TurnStarted(game *entity.Game) {
	that.println(fmt.Sprintf(msgTurn, that.mark(game.Turn)))
}

func (that *Console) TurnPlayed(game *entity.Game, player entity.Player, move entity.Move) {
	if player != that.human {
		that.println(fmt.Sprintf(msgMachineMove, move))
	}

	that.print(that.RenderBoard(game.Board))
}

// Announce - tells the human how the finished game ended.
func (that *Console) Announce(game *entity.Game) {
	switch {
	case !game.IsFinished():
		return
	case game.IsDraw():
		that.println(msgDraw)
	case game.Winner == that.human:
		that.println(msgHumanWon)
	default:
		that.println(msgMachineWon)
	}
}

// RenderBoard - the board one row per line, marks colored when colors are on.
func (that *Console) RenderBoard(board entity.Board) string {
	var builder strings.Builder

	for row := range entity.BoardSize {
		for col := range entity.BoardSize {
			cell := board.Cell(entity.Move{Row: row, Col: col})
			if cell == entity.EmptyCell {
				builder.WriteString("#")
				continue
			}

			builder.WriteString(that.mark(cell))
		}
		builder.WriteString("\n")
	}

	return builder.String()
}

func (that *Console) mark(player entity.Player) string {
	switch player {
	case entity.PlayerX:
		return that.au.Red(string(player)).String()
	case entity.PlayerO:
		return that.au.Blue(string(player)).String()
	default:
		return player.String()
	}
}

// readLine - EOF on the input ends the game like quit does.
func (that *Console) readLine() (string, error) {
	if !that.scanner.Scan() {
		if err := that.scanner.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", fmt.Errorf("%w: input closed", apperror.ErrGameAborted)
	}

	return that.scanner.Text(), nil
}

func (that *Console) println(text string) {
	_, _ = fmt.Fprintln(that.out, text)
}

func (that *Console) print(text string) {
	_, _ = fmt.Fprint(that.out, text)
}

// ParseMove - reads the first two digits of the text as row and column.
// Anything between them is ignored, so "1,2", "1 2" and "12" are the same move.
func ParseMove(text string) (entity.Move, error) {
	if isQuit(text) {
		return entity.Move{}, apperror.ErrGameAborted
	}

	digits := make([]int, 0, 2)
	for _, r := range text {
		if r >= '0' && r <= '9' {
			digits = append(digits, int(r-'0'))
			if len(digits) == 2 {
				return entity.Move{Row: digits[0], Col: digits[1]}, nil
			}
		}
	}

	return entity.Move{}, fmt.Errorf("%w: %q", ErrUnrecognizedInput, text)
}

// ParsePlayerAnswer - finds the mark named in a free-form answer.
// An answer naming both marks or neither is rejected.
func ParsePlayerAnswer(text string) (entity.Player, error) {
	if isQuit(text) {
		return entity.EmptyCell, apperror.ErrGameAborted
	}

	lower := strings.ToLower(text)
	hasX, hasO := strings.Contains(lower, "x"), strings.Contains(lower, "o")

	switch {
	case hasX && !hasO:
		return entity.PlayerX, nil
	case hasO && !hasX:
		return entity.PlayerO, nil
	default:
		return entity.EmptyCell, fmt.Errorf("%w: %q", ErrUnrecognizedInput, text)
	}
}

func isQuit(text string) bool {
	return strings.EqualFold(strings.TrimSpace(text), quitCommand)
}
