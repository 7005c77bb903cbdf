// Package tictactoe implements Tic-Tac-Toe: the 3×3 board model, the arcade
// adapter with a cursor, and a line-oriented console driver.
package tictactoe

// Size is the board dimension.
const Size = 3

// Player identifies one of the two sides. PlayerA always opens.
type Player int

const (
	PlayerA Player = iota
	PlayerB
)

// Other returns the opponent.
func (p Player) Other() Player {
	if p == PlayerA {
		return PlayerB
	}
	return PlayerA
}

// Cell is the content of one board square.
type Cell int

const (
	Empty Cell = iota
	MarkA
	MarkB
)

// MarkOf returns the mark placed by p.
func MarkOf(p Player) Cell {
	if p == PlayerA {
		return MarkA
	}
	return MarkB
}

// Status is the board's position in its state machine.
type Status int

const (
	InProgress Status = iota
	Won
	Drawn
)

func (s Status) String() string {
	switch s {
	case InProgress:
		return "in_progress"
	case Won:
		return "won"
	case Drawn:
		return "drawn"
	default:
		return "unknown"
	}
}

// Board is the 3×3 grid plus whose turn it is.
//
// The primitive operations (MakeMove, CheckWinner, IsBoardFull,
// SwitchPlayer) leave sequencing to the caller; Apply runs the standard
// sequence and tracks the terminal status.
type Board struct {
	cells   [Size][Size]Cell
	current Player
	status  Status
	moves   int
}

// NewBoard returns an empty board with PlayerA to move.
func NewBoard() *Board {
	return &Board{}
}

// Reset empties the board and gives the move back to PlayerA.
func (b *Board) Reset() {
	*b = Board{}
}

// MakeMove places the current player's mark. It returns false, changing
// nothing, when the coordinates are off the board or the cell is taken.
func (b *Board) MakeMove(row, col int) bool {
	if row < 0 || row >= Size || col < 0 || col >= Size || b.cells[row][col] != Empty {
		return false
	}
	b.cells[row][col] = MarkOf(b.current)
	b.moves++
	return true
}

// CheckWinner reports whether the current player owns a full row, column
// or diagonal. Only the current player's mark is tested, so it must be
// called after that player's move and before SwitchPlayer.
func (b *Board) CheckWinner() bool {
	m := MarkOf(b.current)
	c := &b.cells

	for i := range Size {
		if (c[i][0] == m && c[i][1] == m && c[i][2] == m) ||
			(c[0][i] == m && c[1][i] == m && c[2][i] == m) {
			return true
		}
	}
	return (c[0][0] == m && c[1][1] == m && c[2][2] == m) ||
		(c[0][2] == m && c[1][1] == m && c[2][0] == m)
}

// IsBoardFull reports whether no empty cell remains.
func (b *Board) IsBoardFull() bool {
	for _, row := range b.cells {
		for _, cell := range row {
			if cell == Empty {
				return false
			}
		}
	}
	return true
}

// SwitchPlayer hands the move to the other player.
func (b *Board) SwitchPlayer() {
	b.current = b.current.Other()
}

// Apply plays one move for the current player: a win or a full board ends
// the game, otherwise the turn passes. Moves on a finished board are
// rejected until Reset.
func (b *Board) Apply(row, col int) bool {
	if b.status != InProgress || !b.MakeMove(row, col) {
		return false
	}
	switch {
	case b.CheckWinner():
		b.status = Won
	case b.IsBoardFull():
		b.status = Drawn
	default:
		b.SwitchPlayer()
	}
	return true
}

// Cells returns a copy of the grid, indexed [row][col].
func (b *Board) Cells() [Size][Size]Cell {
	return b.cells
}

// Cell returns one square; out-of-range coordinates read as Empty.
func (b *Board) Cell(row, col int) Cell {
	if row < 0 || row >= Size || col < 0 || col >= Size {
		return Empty
	}
	return b.cells[row][col]
}

// CurrentPlayer returns the player to move (or, once won, the winner).
func (b *Board) CurrentPlayer() Player {
	return b.current
}

// Status returns InProgress, Won or Drawn.
func (b *Board) Status() Status {
	return b.status
}

// Winner returns the winning player once the board is Won.
func (b *Board) Winner() (Player, bool) {
	return b.current, b.status == Won
}

// Moves returns the number of marks placed.
func (b *Board) Moves() int {
	return b.moves
}
