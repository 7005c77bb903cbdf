package tictactoe

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-classics/internal/config"
	"github.com/vovakirdan/tui-classics/internal/core"
	"github.com/vovakirdan/tui-classics/internal/registry"
)

const (
	hudHeight = 2
	gridW     = Size*4 + 1 // "│ X " per cell plus closing border
	gridH     = Size*2 + 1
)

// Game adapts Board to the arcade platform: two players share the keyboard
// and place marks with a cursor or the 1-9 keys.
type Game struct {
	board *Board
	marks Marks
	tick  uint64

	cursorRow int
	cursorCol int
	rejected  bool // Last placement attempt hit an occupied cell

	// Session tally, kept across restarts
	wins     [2]int
	draws    int
	recorded bool
}

var configPath string

// SetConfigPath sets a custom YAML config path. Empty means the default search order.
func SetConfigPath(path string) {
	configPath = path
}

// New creates a new Tic-Tac-Toe game.
func New() *Game {
	return &Game{board: NewBoard(), marks: DefaultMarks}
}

func init() {
	registry.Register("tictactoe", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "tictactoe"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tic-Tac-Toe"
}

// Reset loads the marks and starts a new session.
func (g *Game) Reset(_ core.RuntimeConfig) {
	cfg, err := config.LoadTicTacToe(configPath)
	if err != nil {
		log.Warn("using default tic-tac-toe config", "path", configPath, "error", err)
		cfg = config.DefaultTicTacToeConfig()
	}
	g.marks = MarksFromConfig(cfg)
	g.wins = [2]int{}
	g.draws = 0
	g.tick = 0
	g.newRound()
}

func (g *Game) newRound() {
	g.board.Reset()
	g.cursorRow, g.cursorCol = 1, 1
	g.rejected = false
	g.recorded = false
}

// Step applies the input collected during one platform tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.board.Status() != InProgress {
		if in.Has(core.ActionRestart) {
			g.newRound()
		}
		return core.StepResult{State: g.State()}
	}

	switch {
	case in.Has(core.ActionUp):
		g.cursorRow = core.Clamp(g.cursorRow-1, 0, Size-1)
	case in.Has(core.ActionDown):
		g.cursorRow = core.Clamp(g.cursorRow+1, 0, Size-1)
	case in.Has(core.ActionLeft):
		g.cursorCol = core.Clamp(g.cursorCol-1, 0, Size-1)
	case in.Has(core.ActionRight):
		g.cursorCol = core.Clamp(g.cursorCol+1, 0, Size-1)
	}

	for i := range Size * Size {
		if in.Has(core.CellAction(i)) {
			g.cursorRow, g.cursorCol = i/Size, i%Size
			g.place()
			return core.StepResult{State: g.State()}
		}
	}
	if in.Has(core.ActionConfirm) {
		g.place()
	}

	return core.StepResult{State: g.State()}
}

// place applies a move at the cursor and updates the tally on a result.
func (g *Game) place() {
	g.rejected = !g.board.Apply(g.cursorRow, g.cursorCol)
	if g.recorded {
		return
	}
	switch g.board.Status() {
	case Won:
		winner, _ := g.board.Winner()
		g.wins[winner]++
		g.recorded = true
	case Drawn:
		g.draws++
		g.recorded = true
	}
}

// State returns the current game state. Tic-Tac-Toe has no score; results
// are reported through Outcome.
func (g *Game) State() core.GameState {
	return core.GameState{GameOver: g.board.Status() != InProgress}
}

// Outcome implements registry.OutcomeReporter.
func (g *Game) Outcome() (registry.Outcome, bool) {
	switch g.board.Status() {
	case Won:
		winner, _ := g.board.Winner()
		return registry.Outcome{Winner: g.marks.Player(winner), Moves: g.board.Moves()}, true
	case Drawn:
		return registry.Outcome{Draw: true, Moves: g.board.Moves()}, true
	}
	return registry.Outcome{}, false
}

// Board exposes the underlying model.
func (g *Game) Board() *Board {
	return g.board
}

// Render draws the board, the HUD and any result overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	turn := fmt.Sprintf("%s to move", g.marks.Player(g.board.CurrentPlayer()))
	hud := fmt.Sprintf(" Tic-Tac-Toe — %s   %s:%d  %s:%d  draws:%d",
		turn, g.marks.A, g.wins[PlayerA], g.marks.B, g.wins[PlayerB], g.draws)
	dst.DrawText(0, 0, hud)
	for x := range dst.Width() {
		dst.SetColored(x, 1, '─', core.ColorGray)
	}

	if dst.Width() < gridW || dst.Height() < gridH+hudHeight {
		dst.DrawOverlay("Window too small")
		return
	}

	frame := core.NewRect(0, hudHeight, dst.Width(), dst.Height()-hudHeight).Centered(gridW, gridH)
	for i, line := range gridLines() {
		dst.DrawTextColored(frame.X, frame.Y+i, line, core.ColorGray)
	}

	for r := range Size {
		for c := range Size {
			x := frame.X + 1 + c*4
			y := frame.Y + 1 + r*2
			cell := g.board.Cell(r, c)
			dst.SetColored(x+1, y, []rune(g.marks.Cell(cell, " "))[0], markColor(cell))
			if r == g.cursorRow && c == g.cursorCol && g.board.Status() == InProgress {
				color := core.ColorBrightYellow
				if g.rejected {
					color = core.ColorBrightRed
				}
				dst.SetColored(x, y, '[', color)
				dst.SetColored(x+2, y, ']', color)
			}
		}
	}

	hint := "arrows move  enter place  1-9 quick place"
	dst.DrawTextCentered(min(frame.Bottom()+1, dst.Height()-1), hint)

	switch g.board.Status() {
	case Won:
		winner, _ := g.board.Winner()
		dst.DrawOverlay(fmt.Sprintf("Player %s wins!", g.marks.Player(winner)), "Press R to play again")
	case Drawn:
		dst.DrawOverlay("It's a tie!", "Press R to play again")
	}
}

func markColor(c Cell) core.Color {
	switch c {
	case MarkA:
		return core.ColorBrightCyan
	case MarkB:
		return core.ColorMagenta
	default:
		return core.ColorDefault
	}
}

// gridLines returns the box-drawn 3×3 frame.
func gridLines() []string {
	row := func(left, mid, right, fill string) string {
		parts := make([]string, Size)
		for i := range parts {
			parts[i] = fill
		}
		return left + strings.Join(parts, mid) + right
	}
	lines := []string{row("┌", "┬", "┐", "───")}
	for r := range Size {
		lines = append(lines, row("│", "│", "│", "   "))
		if r < Size-1 {
			lines = append(lines, row("├", "┼", "┤", "───"))
		}
	}
	return append(lines, row("└", "┴", "┘", "───"))
}
