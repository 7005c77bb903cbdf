// Package snake implements Snake on a wrapping grid: a pure movement model
// (Model) plus the arcade adapter that drives it from platform ticks (Game).
package snake

import (
	"math/rand"

	"github.com/vovakirdan/tui-classics/internal/core"
)

// NoFood marks the food slot when the body covers every cell.
var NoFood = core.Point{X: -1, Y: -1}

// StepEvent reports what a single Step did.
type StepEvent int

const (
	EventNone  StepEvent = iota // Snake already dead, nothing moved
	EventMoved                  // Head advanced, tail followed
	EventAte                    // Head landed on food, snake grew
	EventDied                   // Head would hit the body
)

// Options configures the grid and spawn of a Model.
type Options struct {
	Width     int
	Height    int
	Origin    core.Point
	Direction Direction
}

// Model is the snake state on a toroidal grid. It owns no timer: the
// caller advances it with Step once per movement tick.
type Model struct {
	width, height int
	origin        core.Point
	initialDir    Direction
	rng           *rand.Rand

	body      *deque[core.Point] // head at index 0
	direction Direction
	food      core.Point
	alive     bool
}

// NewModel creates a model in its initial state. Width and height must be
// positive; the origin is wrapped onto the grid.
func NewModel(opts Options, rng *rand.Rand) *Model {
	if opts.Width <= 0 || opts.Height <= 0 {
		panic("snake: grid dimensions must be positive")
	}
	m := &Model{
		width:      opts.Width,
		height:     opts.Height,
		origin:     core.WrapPoint(opts.Origin, opts.Width, opts.Height),
		initialDir: opts.Direction,
		rng:        rng,
		body:       newDeque[core.Point](min(opts.Width*opts.Height, 64)),
	}
	m.Reset()
	return m
}

// Reset restores a single-segment snake at the origin heading in the
// initial direction, with freshly sampled food.
func (m *Model) Reset() {
	m.body.Clear()
	m.body.PushFront(m.origin)
	m.direction = m.initialDir
	m.alive = true
	m.spawnFood()
}

// SetDirection changes the heading unless d is the exact reverse of the
// current one, in which case the call is ignored.
func (m *Model) SetDirection(d Direction) {
	if d == m.direction.Opposite() {
		return
	}
	m.direction = d
}

// Step moves the snake one cell. Running into any body segment that is not
// the food kills the snake and leaves the body untouched. Eating keeps the
// tail (growth) and resamples the food.
func (m *Model) Step() StepEvent {
	if !m.alive {
		return EventNone
	}

	newHead := core.WrapPoint(m.Head().Add(m.direction.Delta()), m.width, m.height)

	if m.body.Contains(newHead) && newHead != m.food {
		m.alive = false
		return EventDied
	}

	m.body.PushFront(newHead)
	if newHead == m.food {
		m.spawnFood()
		return EventAte
	}
	m.body.PopBack()
	return EventMoved
}

// spawnFood draws uniform cells until one is not under the body.
func (m *Model) spawnFood() {
	if m.body.Len() >= m.width*m.height {
		m.food = NoFood
		return
	}
	for {
		p := core.Point{X: m.rng.Intn(m.width), Y: m.rng.Intn(m.height)}
		if !m.body.Contains(p) {
			m.food = p
			return
		}
	}
}

// Body returns the segments head-first.
func (m *Model) Body() []core.Point {
	return m.body.Slice()
}

// Head returns the head segment.
func (m *Model) Head() core.Point {
	return m.body.At(0)
}

// Len returns the number of body segments.
func (m *Model) Len() int {
	return m.body.Len()
}

// Occupied reports whether p is covered by the body.
func (m *Model) Occupied(p core.Point) bool {
	return m.body.Contains(p)
}

// Food returns the food cell, or NoFood when the grid is full.
func (m *Model) Food() core.Point {
	return m.food
}

// Alive reports whether the snake is still playable.
func (m *Model) Alive() bool {
	return m.alive
}

// Direction returns the current heading.
func (m *Model) Direction() Direction {
	return m.direction
}

// Size returns the grid dimensions.
func (m *Model) Size() (width, height int) {
	return m.width, m.height
}
