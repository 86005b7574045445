package core

import "math/bits"

// Action is a player intent, independent of the key that produced it.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow
	ActionDown           // S, Down arrow
	ActionLeft           // A, Left arrow
	ActionRight          // D, Right arrow
	ActionToggle         // Space, Enter - mark or unmark the cell under the cursor
	ActionDrink          // E - drink the potion on the board
	ActionSquash         // X - squash the oldest spider
	ActionBack           // B, Escape - back to menu when paused or over
	ActionRestart        // R - new puzzle after game over
	ActionQuit           // Q, Ctrl+C
	ActionPause          // P

	actionCount
)

var actionNames = [actionCount]string{
	"None", "Up", "Down", "Left", "Right", "Toggle", "Drink",
	"Squash", "Back", "Restart", "Quit", "Pause",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if a < 0 || a >= actionCount {
		return "Unknown"
	}
	return actionNames[a]
}

// IsMove reports whether a is a cursor movement.
func (a Action) IsMove() bool {
	return a >= ActionUp && a <= ActionRight
}

// InputFrame is the set of actions triggered during one simulation tick.
// The zero value is an empty frame.
type InputFrame struct {
	set uint32
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set marks a as triggered. ActionNone and unknown actions are ignored.
func (f *InputFrame) Set(a Action) {
	if a <= ActionNone || a >= actionCount {
		return
	}
	f.set |= 1 << uint(a)
}

// Has reports whether a was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if a <= ActionNone || a >= actionCount {
		return false
	}
	return f.set&(1<<uint(a)) != 0
}

// Len returns the number of distinct actions in the frame.
func (f InputFrame) Len() int {
	return bits.OnesCount32(f.set)
}

// Actions lists the triggered actions in declaration order.
func (f InputFrame) Actions() []Action {
	out := make([]Action, 0, f.Len())
	for a := ActionNone + 1; a < actionCount; a++ {
		if f.Has(a) {
			out = append(out, a)
		}
	}
	return out
}

// Clear empties the frame for the next tick.
func (f *InputFrame) Clear() {
	f.set = 0
}
