package tictactoe

import "github.com/vovakirdan/tui-classics/internal/config"

// emptySymbol is how an empty cell prints in the console variant.
const emptySymbol = "-"

// Marks maps players to the symbols drawn for them.
type Marks struct {
	A string
	B string
}

// DefaultMarks are X for PlayerA and O for PlayerB.
var DefaultMarks = Marks{A: "X", B: "O"}

// MarksFromConfig converts the YAML mark settings.
func MarksFromConfig(cfg config.TicTacToeConfig) Marks {
	return Marks{A: cfg.Marks.PlayerA, B: cfg.Marks.PlayerB}
}

// Player returns the symbol for p.
func (m Marks) Player(p Player) string {
	if p == PlayerA {
		return m.A
	}
	return m.B
}

// Cell returns the symbol for c, or empty for an empty cell.
func (m Marks) Cell(c Cell, empty string) string {
	switch c {
	case MarkA:
		return m.A
	case MarkB:
		return m.B
	default:
		return empty
	}
}
