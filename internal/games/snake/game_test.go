package snake

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-classics/internal/core"
)

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	t.Setenv("HOME", t.TempDir()) // keep user configs out of the way
	SetConfigPath("")
	SetDifficultyPreset("")

	g := New()
	g.Reset(core.RuntimeConfig{Seed: seed, ScreenW: 80, ScreenH: 24, TickRate: 60})
	return g
}

func TestDeterminism(t *testing.T) {
	g1 := newTestGame(t, 12345)
	g2 := newTestGame(t, 12345)

	input := core.NewInputFrame()
	for i := range 300 {
		input.Clear()
		switch i {
		case 20:
			input.Set(core.ActionDown)
		case 60:
			input.Set(core.ActionLeft)
		case 120:
			input.Set(core.ActionUp)
		}
		g1.Step(input)
		g2.Step(input)
	}

	if s1, s2 := g1.Snapshot(), g2.Snapshot(); s1 != s2 {
		t.Errorf("snapshots differ:\n%+v\n%+v", s1, s2)
	}
}

func TestMoveCadence(t *testing.T) {
	g := newTestGame(t, 1)
	g.model.food = farFood

	// 150ms at 60 ticks per second
	if g.moveEveryTicks != 9 {
		t.Fatalf("moveEveryTicks = %d, expected 9", g.moveEveryTicks)
	}

	start := g.model.Head()
	empty := core.NewInputFrame()
	for range 8 {
		g.Step(empty)
	}
	if g.model.Head() != start {
		t.Error("snake moved before its interval elapsed")
	}
	g.Step(empty)
	if g.model.Head() != (core.Point{X: start.X + 1, Y: start.Y}) {
		t.Errorf("head = %v, expected one cell right of %v", g.model.Head(), start)
	}
}

func TestNoImmediateReversal(t *testing.T) {
	g := newTestGame(t, 42)

	if g.model.Direction() != DirRight {
		t.Fatalf("Expected initial direction Right, got %v", g.model.Direction())
	}

	input := core.NewInputFrame()
	input.Set(core.ActionLeft)
	g.Step(input)
	if g.nextDir == DirLeft {
		t.Error("Should not allow immediate reversal from Right to Left")
	}

	input.Clear()
	input.Set(core.ActionDown)
	g.Step(input)
	if g.nextDir != DirDown {
		t.Errorf("Expected nextDir to be Down, got %v", g.nextDir)
	}

	// A second turn before the move is judged against the travelled heading
	input.Clear()
	input.Set(core.ActionLeft)
	g.Step(input)
	if g.nextDir != DirDown {
		t.Errorf("Left while still heading right should be ignored, nextDir = %v", g.nextDir)
	}
}

func TestGameOverAndRestart(t *testing.T) {
	g := newTestGame(t, 7)
	g.model.food = farFood
	g.model.alive = false

	state := g.Step(core.NewInputFrame()).State
	if !state.GameOver {
		t.Fatal("dead snake should report game over")
	}

	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)
	state = g.Step(restart).State
	if state.GameOver {
		t.Error("restart should clear game over")
	}
	if g.model.Len() != 1 || g.model.Head() != (core.Point{X: 5, Y: 5}) {
		t.Errorf("restart should respawn at origin, body = %v", g.model.Body())
	}
	if state.Score != 0 {
		t.Errorf("score after restart = %d, expected 0", state.Score)
	}
}

func TestScoreIsFoodEaten(t *testing.T) {
	g := newTestGame(t, 3)
	g.model.food = core.Point{X: 6, Y: 5}

	empty := core.NewInputFrame()
	for range g.moveEveryTicks {
		g.Step(empty)
	}
	if got := g.State().Score; got != 1 {
		t.Errorf("score = %d, expected 1 after eating", got)
	}
}

func TestPause(t *testing.T) {
	g := newTestGame(t, 5)
	start := g.model.Head()

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	if !g.Step(pause).State.Paused {
		t.Fatal("expected paused state")
	}
	empty := core.NewInputFrame()
	for range 30 {
		g.Step(empty)
	}
	if g.model.Head() != start {
		t.Error("snake moved while paused")
	}
	if g.Snapshot().State != StatePaused {
		t.Errorf("snapshot state = %v", g.Snapshot().State)
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t, 9)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	if !strings.Contains(out, "Snake — Score: 0") {
		t.Errorf("HUD missing:\n%s", out)
	}
	if strings.Count(out, "@") != 1 || strings.Count(out, "*") != 1 {
		t.Errorf("expected one head and one food:\n%s", out)
	}
	if !strings.Contains(out, "┌") || !strings.Contains(out, "┘") {
		t.Error("grid border missing")
	}
}

func TestRenderTooSmall(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	g := New()
	g.Reset(core.RuntimeConfig{Seed: 1, ScreenW: 20, ScreenH: 10, TickRate: 60})

	screen := core.NewScreen(20, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "too small") {
		t.Errorf("expected too-small overlay:\n%s", screen.String())
	}
	if g.Snapshot().State != StatePausedSmall {
		t.Errorf("snapshot state = %v", g.Snapshot().State)
	}
}

func TestHardPresetIsFaster(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	SetDifficultyPreset("hard")
	defer SetDifficultyPreset("")

	g := New()
	g.Reset(core.RuntimeConfig{Seed: 1, ScreenW: 80, ScreenH: 24, TickRate: 60})
	if g.moveEveryTicks >= 9 {
		t.Errorf("hard moveEveryTicks = %d, expected fewer than 9", g.moveEveryTicks)
	}
}

func TestResizeKeepsRun(t *testing.T) {
	g := newTestGame(t, 3)
	g.model.food = farFood
	for range 30 {
		g.Step(core.NewInputFrame())
	}
	head := g.model.Head()

	g.Resize(10, 10)
	if !g.tooSmall {
		t.Error("10x10 should be too small for a 20x20 grid")
	}
	g.Resize(80, 24)
	if g.tooSmall {
		t.Error("80x24 should fit")
	}
	if g.model.Head() != head {
		t.Error("Resize should not restart the snake")
	}
}
