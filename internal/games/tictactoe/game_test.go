package tictactoe

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-classics/internal/core"
	"github.com/vovakirdan/tui-classics/internal/registry"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	SetConfigPath("")

	g := New()
	g.Reset(core.DefaultConfig())
	return g
}

func press(g *Game, actions ...core.Action) {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	g.Step(in)
}

func TestRegistered(t *testing.T) {
	if !registry.Exists("tictactoe") {
		t.Fatal("tictactoe should be registered")
	}
	g, err := registry.Create("tictactoe")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, ok := g.(registry.OutcomeReporter); !ok {
		t.Error("tictactoe should report outcomes")
	}
}

func TestCursorClamped(t *testing.T) {
	g := newTestGame(t)

	for range 5 {
		press(g, core.ActionUp)
		press(g, core.ActionLeft)
	}
	if g.cursorRow != 0 || g.cursorCol != 0 {
		t.Errorf("cursor = (%d, %d), want (0, 0)", g.cursorRow, g.cursorCol)
	}

	for range 5 {
		press(g, core.ActionDown)
		press(g, core.ActionRight)
	}
	if g.cursorRow != Size-1 || g.cursorCol != Size-1 {
		t.Errorf("cursor = (%d, %d), want (2, 2)", g.cursorRow, g.cursorCol)
	}
}

func TestConfirmPlacesAtCursor(t *testing.T) {
	g := newTestGame(t)

	press(g, core.ActionConfirm)
	if g.board.Cell(1, 1) != MarkA {
		t.Fatal("Confirm should place X at the centre")
	}
	if g.board.CurrentPlayer() != PlayerB {
		t.Error("turn should pass to O")
	}

	press(g, core.ActionConfirm)
	if !g.rejected {
		t.Error("placing on an occupied cell should be flagged")
	}
	if g.board.CurrentPlayer() != PlayerB {
		t.Error("rejected placement should keep O to move")
	}
}

func TestCellKeys(t *testing.T) {
	g := newTestGame(t)

	press(g, core.ActionCell3)
	if g.board.Cell(0, 2) != MarkA {
		t.Error("key 3 should mark row 0, col 2")
	}
	press(g, core.ActionCell7)
	if g.board.Cell(2, 0) != MarkB {
		t.Error("key 7 should mark row 2, col 0")
	}
	if g.cursorRow != 2 || g.cursorCol != 0 {
		t.Errorf("cursor should follow the last placement, got (%d, %d)", g.cursorRow, g.cursorCol)
	}
}

func TestWinOutcomeAndRestart(t *testing.T) {
	g := newTestGame(t)

	if _, ok := g.Outcome(); ok {
		t.Fatal("no outcome while in progress")
	}

	for _, a := range []core.Action{core.ActionCell1, core.ActionCell5, core.ActionCell2, core.ActionCell9, core.ActionCell3} {
		press(g, a)
	}

	if !g.State().GameOver {
		t.Fatal("game should be over after X completes the top row")
	}
	out, ok := g.Outcome()
	if !ok || out.Winner != "X" || out.Draw || out.Moves != 5 {
		t.Errorf("Outcome() = %+v, %v", out, ok)
	}
	if g.wins[PlayerA] != 1 {
		t.Errorf("X wins = %d, want 1", g.wins[PlayerA])
	}

	// Placements are ignored once the game is over.
	press(g, core.ActionCell4)
	if g.board.Cell(1, 0) != Empty {
		t.Error("finished board accepted a move")
	}

	press(g, core.ActionRestart)
	if g.State().GameOver || g.board.Moves() != 0 {
		t.Error("Restart should start a new round")
	}
	if g.wins[PlayerA] != 1 {
		t.Error("tally should survive a restart")
	}
}

func TestDrawTally(t *testing.T) {
	g := newTestGame(t)
	for _, i := range []int{0, 1, 2, 4, 3, 5, 7, 6, 8} {
		press(g, core.CellAction(i))
	}

	out, ok := g.Outcome()
	if !ok || !out.Draw {
		t.Fatalf("Outcome() = %+v, %v; want draw", out, ok)
	}
	if g.draws != 1 {
		t.Errorf("draws = %d, want 1", g.draws)
	}

	// Extra input on the finished board must not count twice.
	press(g, core.ActionConfirm)
	if g.draws != 1 {
		t.Errorf("draws = %d after extra input, want 1", g.draws)
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t)
	press(g, core.ActionCell1)

	scr := core.NewScreen(80, 24)
	g.Render(scr)
	text := scr.String()

	for _, want := range []string{"Tic-Tac-Toe", "O to move", "┌───┬───┬───┐", "└───┴───┴───┘", "X"} {
		if !strings.Contains(text, want) {
			t.Errorf("render missing %q", want)
		}
	}
	if !strings.Contains(text, "│[X]│") {
		t.Error("cursor brackets should surround the last placement")
	}
}

func TestRenderResultOverlay(t *testing.T) {
	g := newTestGame(t)
	for _, i := range []int{0, 4, 1, 8, 2} {
		press(g, core.CellAction(i))
	}

	scr := core.NewScreen(80, 24)
	g.Render(scr)
	text := scr.String()
	if !strings.Contains(text, "Player X wins!") || !strings.Contains(text, "Press R to play again") {
		t.Errorf("missing result overlay:\n%s", text)
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := newTestGame(t)
	scr := core.NewScreen(20, 6)
	g.Render(scr)
	if !strings.Contains(scr.String(), "Window too small") {
		t.Error("expected too-small overlay")
	}
}
