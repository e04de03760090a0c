// Package drag tracks pointer-driven move and resize operations. It performs
// no I/O: the dispatcher feeds it pointer positions and sends the geometry it
// returns to the display server.
package drag

import "github.com/1broseidon/dragwm/internal/platform"

// Tracker holds the single drag state of the window manager.
type Tracker struct {
	buttons Buttons
	state   State
}

// NewTracker creates an inactive tracker.
func NewTracker(buttons Buttons) *Tracker {
	return &Tracker{buttons: buttons}
}

// Begin starts a drag of target. A zero target is ignored.
func (t *Tracker) Begin(target platform.WindowID, button platform.Button, pointer platform.Point, geometry platform.Rect) bool {
	if target == 0 {
		return false
	}
	t.state = State{
		Active:         true,
		Target:         target,
		Button:         button,
		AnchorPointer:  pointer,
		AnchorGeometry: geometry,
	}
	return true
}

// Update returns the geometry the target should take for a pointer at
// pointer. The delta is always measured from the anchor, never from the
// previous update. ok is false when no drag is in progress.
func (t *Tracker) Update(pointer platform.Point) (target platform.WindowID, geometry platform.Rect, ok bool) {
	if !t.state.Active || t.state.Target == 0 {
		return 0, platform.Rect{}, false
	}
	dx := pointer.X - t.state.AnchorPointer.X
	dy := pointer.Y - t.state.AnchorPointer.Y
	mode := t.buttons.ModeFor(t.state.Button)
	return t.state.Target, Apply(t.state.AnchorGeometry, mode, dx, dy), true
}

// End resets the tracker to inactive regardless of which drag was running.
func (t *Tracker) End() {
	t.state = State{}
}

// Active reports whether a drag is in progress.
func (t *Tracker) Active() bool {
	return t.state.Active
}

// Mode returns the mode of the current drag, or ModeNone when inactive.
func (t *Tracker) Mode() Mode {
	if !t.state.Active {
		return ModeNone
	}
	return t.buttons.ModeFor(t.state.Button)
}

// State returns a copy of the current drag state.
func (t *Tracker) State() State {
	return t.state
}
