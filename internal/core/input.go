package core

// Action is a semantic input, abstracted from physical keys and mouse buttons.
type Action uint8

const (
	ActionNone    Action = iota
	ActionUp             // W, K, Up arrow - move cursor up
	ActionDown           // S, J, Down arrow - move cursor down
	ActionLeft           // A, H, Left arrow - move cursor left
	ActionRight          // D, L, Right arrow - move cursor right
	ActionSelect         // Space, Enter - select the cell under the cursor
	ActionCancel         // Esc, X - drop the pending selection
	ActionHint           // ? - show a legal move
	ActionRestart        // R - replay the level
	ActionPause          // P - pause/unpause
	ActionQuit           // Q, Ctrl+C - leave the game
	actionCount
)

var actionNames = [...]string{
	ActionNone:    "None",
	ActionUp:      "Up",
	ActionDown:    "Down",
	ActionLeft:    "Left",
	ActionRight:   "Right",
	ActionSelect:  "Select",
	ActionCancel:  "Cancel",
	ActionHint:    "Hint",
	ActionRestart: "Restart",
	ActionPause:   "Pause",
	ActionQuit:    "Quit",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if a < actionCount {
		return actionNames[a]
	}
	return "Unknown"
}

// InputFrame collects the input of one tick: a set of actions plus at most
// one click position in screen coordinates. The zero value is empty and
// frames are plain values, so copying one clones it.
type InputFrame struct {
	actions uint16
	click   bool
	clickX  int
	clickY  int
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone || a >= actionCount {
		return
	}
	f.actions |= 1 << a
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return a < actionCount && f.actions&(1<<a) != 0
}

// SetClick records a click at screen position (x, y). A later click in the
// same frame replaces an earlier one.
func (f *InputFrame) SetClick(x, y int) {
	f.click, f.clickX, f.clickY = true, x, y
}

// Click returns the click position, if any.
func (f InputFrame) Click() (x, y int, ok bool) {
	return f.clickX, f.clickY, f.click
}

// Empty reports whether nothing was triggered.
func (f InputFrame) Empty() bool {
	return f.actions == 0 && !f.click
}

// Actions lists the triggered actions in declaration order.
func (f InputFrame) Actions() []Action {
	var out []Action
	for a := ActionNone + 1; a < actionCount; a++ {
		if f.Has(a) {
			out = append(out, a)
		}
	}
	return out
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	*f = InputFrame{}
}
