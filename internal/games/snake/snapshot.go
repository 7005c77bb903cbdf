package snake

import "github.com/vovakirdan/tui-classics/internal/core"

// GameStateType represents the coarse game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the game state for determinism testing and replay.
type Snapshot struct {
	Tick           uint64
	Score          int
	SnakeLen       int
	Head           core.Point
	Dir            Direction
	Food           core.Point
	MoveEveryTicks int
	State          GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case !g.model.Alive():
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	return Snapshot{
		Tick:           g.tick,
		Score:          g.Score(),
		SnakeLen:       g.model.Len(),
		Head:           g.model.Head(),
		Dir:            g.model.Direction(),
		Food:           g.model.Food(),
		MoveEveryTicks: g.moveEveryTicks,
		State:          state,
	}
}
