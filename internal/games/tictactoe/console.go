package tictactoe

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-classics/internal/registry"
)

// ErrMalformedInput is returned when a move is not two integers.
var ErrMalformedInput = errors.New("tictactoe: malformed input")

const rule = "-------------"

// Console plays one game over a line-oriented stream: the board is printed
// before every turn and each move is read as "row col".
type Console struct {
	In    io.Reader
	Out   io.Writer
	Board *Board
	Marks Marks
}

// NewConsole creates a console game with a fresh board.
func NewConsole(in io.Reader, out io.Writer, marks Marks) *Console {
	return &Console{In: in, Out: out, Board: NewBoard(), Marks: marks}
}

// Run plays until someone wins or the board fills. Input that is not an
// integer, or that ends mid-game, aborts with an error wrapping
// ErrMalformedInput.
func (c *Console) Run() (registry.Outcome, error) {
	if c.Board == nil {
		c.Board = NewBoard()
	}
	if c.Marks == (Marks{}) {
		c.Marks = DefaultMarks
	}
	in := bufio.NewReader(c.In)

	for {
		c.printBoard()
		player := c.Marks.Player(c.Board.CurrentPlayer())
		fmt.Fprintf(c.Out, "Player %s, enter your move (row and column): \n", player)

		row, err := readInt(in)
		if err != nil {
			return registry.Outcome{}, err
		}
		col, err := readInt(in)
		if err != nil {
			return registry.Outcome{}, err
		}
		if err := discardLine(in); err != nil {
			return registry.Outcome{}, fmt.Errorf("tictactoe: read input: %w", err)
		}

		ok := c.Board.Apply(row, col)
		log.Debug("console move", "player", player, "row", row, "col", col, "accepted", ok)
		if !ok {
			fmt.Fprintln(c.Out, "Invalid move. Try again.")
			continue
		}

		switch c.Board.Status() {
		case Won:
			c.printBoard()
			fmt.Fprintf(c.Out, "Player %s wins!\n", player)
			return registry.Outcome{Winner: player, Moves: c.Board.Moves()}, nil
		case Drawn:
			c.printBoard()
			fmt.Fprintln(c.Out, "It's a tie!")
			return registry.Outcome{Draw: true, Moves: c.Board.Moves()}, nil
		}
	}
}

func (c *Console) printBoard() {
	var sb strings.Builder
	sb.WriteString(rule + "\n")
	for r := range Size {
		sb.WriteString("| ")
		for col := range Size {
			sb.WriteString(c.Marks.Cell(c.Board.Cell(r, col), emptySymbol) + " | ")
		}
		sb.WriteString("\n" + rule + "\n")
	}
	io.WriteString(c.Out, sb.String())
}

// readInt reads the next whitespace-delimited token, crossing line breaks,
// and parses it as a decimal integer.
func readInt(in *bufio.Reader) (int, error) {
	var tok []rune
	for {
		r, _, err := in.ReadRune()
		if err != nil {
			if errors.Is(err, io.EOF) && len(tok) > 0 {
				break
			}
			if errors.Is(err, io.EOF) {
				return 0, fmt.Errorf("%w: %w", ErrMalformedInput, io.ErrUnexpectedEOF)
			}
			return 0, fmt.Errorf("tictactoe: read input: %w", err)
		}
		if unicode.IsSpace(r) {
			if len(tok) == 0 {
				continue
			}
			// Leave the delimiter for discardLine.
			_ = in.UnreadRune()
			break
		}
		tok = append(tok, r)
	}

	n, err := strconv.Atoi(string(tok))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrMalformedInput, string(tok))
	}
	return n, nil
}

// discardLine drops the remainder of the current line.
func discardLine(in *bufio.Reader) error {
	_, err := in.ReadString('\n')
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
