package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, K, Up arrow
	ActionDown           // S, J, Down arrow
	ActionLeft           // A, H, Left arrow
	ActionRight          // D, L, Right arrow
	ActionConfirm        // Enter, Space - place a mark
	ActionBack           // B, Escape - back to menu
	ActionRestart        // R - acknowledge a terminal state and start over
	ActionQuit           // Q, Ctrl+C
	ActionPause          // P
	ActionCell1          // 1..9 select a tic-tac-toe cell directly (row-major)
	ActionCell2
	ActionCell3
	ActionCell4
	ActionCell5
	ActionCell6
	ActionCell7
	ActionCell8
	ActionCell9
)

var actionNames = map[Action]string{
	ActionNone:    "None",
	ActionUp:      "Up",
	ActionDown:    "Down",
	ActionLeft:    "Left",
	ActionRight:   "Right",
	ActionConfirm: "Confirm",
	ActionBack:    "Back",
	ActionRestart: "Restart",
	ActionQuit:    "Quit",
	ActionPause:   "Pause",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	if idx, ok := a.CellIndex(); ok {
		return "Cell" + string(rune('1'+idx))
	}
	return "Unknown"
}

// CellIndex returns the zero-based row-major cell index for ActionCell1..9.
func (a Action) CellIndex() (int, bool) {
	if a >= ActionCell1 && a <= ActionCell9 {
		return int(a - ActionCell1), true
	}
	return 0, false
}

// CellAction returns the action selecting the zero-based cell index i.
func CellAction(i int) Action {
	if i < 0 || i > 8 {
		return ActionNone
	}
	return ActionCell1 + Action(i)
}

// InputFrame holds every action triggered during one platform tick.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	clear(f.Actions)
}
