package snake

import (
	"fmt"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-classics/internal/config"
	"github.com/vovakirdan/tui-classics/internal/core"
	"github.com/vovakirdan/tui-classics/internal/registry"
)

// hudHeight is the number of screen rows above the playfield.
const hudHeight = 2

// Game adapts Model to the arcade platform: it turns fixed-rate platform
// ticks into snake moves and draws the grid.
type Game struct {
	cfg   config.SnakeConfig
	model *Model
	rng   *rand.Rand
	tick  uint64

	moveEveryTicks int
	moveTicker     int // Counts ticks until next move
	nextDir        Direction

	screenW  int
	screenH  int
	paused   bool
	tooSmall bool
}

// Package-level settings applied on the next Reset (set by the CLI).
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
)

// SetConfigPath sets a custom YAML config path. Empty means the default search order.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the speed preset.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// New creates a new Snake game.
func New() *Game {
	return &Game{cfg: config.DefaultSnakeConfig()}
}

func init() {
	registry.Register("snake", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// Reset loads the configuration and starts a fresh snake.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	loaded, err := config.LoadSnake(configPath)
	if err != nil {
		log.Warn("using default snake config", "path", configPath, "error", err)
		loaded = config.DefaultSnakeConfig()
	}
	config.ApplySnakePreset(&loaded, difficultyPreset)
	g.cfg = loaded

	dir, err := ParseDirection(g.cfg.Start.Direction)
	if err != nil {
		dir = DirRight
	}

	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.model = NewModel(Options{
		Width:     g.cfg.Grid.Width,
		Height:    g.cfg.Grid.Height,
		Origin:    core.Point{X: g.cfg.Start.X, Y: g.cfg.Start.Y},
		Direction: dir,
	}, g.rng)

	tickRate := cfg.TickRate
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	g.moveEveryTicks = max(1, (g.cfg.Speed.MoveIntervalMs*tickRate+500)/1000)
	g.moveTicker = 0
	g.nextDir = g.model.Direction()
	g.tick = 0
	g.paused = false
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize implements registry.Resizer. The grid size is fixed by config, so
// only the too-small check depends on the terminal.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.tooSmall = g.screenW < g.cfg.Grid.Width+2 || g.screenH < g.cfg.Grid.Height+2+hudHeight
}

// Step advances the game by one platform tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	// Restart acknowledges the game over
	if !g.model.Alive() {
		if in.Has(core.ActionRestart) {
			g.model.Reset()
			g.nextDir = g.model.Direction()
			g.moveTicker = 0
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	// Buffer one turn per move, judged against the heading actually travelled
	if d, ok := directionFor(in); ok && d != g.model.Direction().Opposite() {
		g.nextDir = d
	}

	g.moveTicker++
	if g.moveTicker >= g.moveEveryTicks {
		g.moveTicker = 0
		g.model.SetDirection(g.nextDir)
		g.model.Step()
	}

	return core.StepResult{State: g.State()}
}

// Score is the number of food cells eaten.
func (g *Game) Score() int {
	return g.model.Len() - 1
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.Score(),
		GameOver: !g.model.Alive(),
		Paused:   g.paused,
	}
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	hud := fmt.Sprintf(" Snake — Score: %d  Length: %d", g.Score(), g.model.Len())
	dst.DrawText(0, 0, hud)
	for x := range dst.Width() {
		dst.SetColored(x, 1, '─', core.ColorGray)
	}

	if g.tooSmall {
		dst.DrawOverlay("Window too small",
			fmt.Sprintf("Need %dx%d", g.cfg.Grid.Width+2, g.cfg.Grid.Height+2+hudHeight))
		return
	}

	w, h := g.model.Size()
	frame := core.NewRect(0, hudHeight, dst.Width(), dst.Height()-hudHeight).Centered(w+2, h+2)
	dst.DrawBox(frame, core.ColorGray)
	ox, oy := frame.X+1, frame.Y+1

	if food := g.model.Food(); food != NoFood {
		dst.SetColored(ox+food.X, oy+food.Y, '*', core.ColorBrightRed)
	}
	for i, seg := range g.model.Body() {
		if i == 0 {
			dst.SetColored(ox+seg.X, oy+seg.Y, '@', core.ColorBrightGreen)
		} else {
			dst.SetColored(ox+seg.X, oy+seg.Y, 'o', core.ColorGreen)
		}
	}

	switch {
	case !g.model.Alive():
		dst.DrawOverlay("Game Over!", fmt.Sprintf("Your score: %d", g.Score()), "Press R to restart")
	case g.paused:
		dst.DrawOverlay("Paused", "Press P to continue")
	}
}
