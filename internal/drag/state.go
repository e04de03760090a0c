package drag

import "github.com/1broseidon/dragwm/internal/platform"

// Mode is the geometry change a drag performs.
type Mode int

const (
	// ModeNone leaves the window at its anchor geometry.
	ModeNone Mode = iota
	// ModeMove translates the window by the pointer delta.
	ModeMove
	// ModeResize grows or shrinks the window by the pointer delta.
	ModeResize
)

// String returns the string representation of the mode
func (m Mode) String() string {
	switch m {
	case ModeNone:
		return "none"
	case ModeMove:
		return "move"
	case ModeResize:
		return "resize"
	default:
		return "unknown"
	}
}

// Buttons assigns pointer buttons to drag modes.
type Buttons struct {
	Move   platform.Button
	Resize platform.Button
}

// ModeFor returns the mode a drag started with button performs.
func (b Buttons) ModeFor(button platform.Button) Mode {
	switch button {
	case b.Move:
		return ModeMove
	case b.Resize:
		return ModeResize
	default:
		return ModeNone
	}
}

// State is a snapshot of an in-progress drag.
type State struct {
	Active         bool
	Target         platform.WindowID
	Button         platform.Button
	AnchorPointer  platform.Point
	AnchorGeometry platform.Rect // Captured once at drag start
}

// Apply computes the geometry for a pointer delta relative to the anchor.
// Resizing never yields a width or height below 1.
func Apply(anchor platform.Rect, mode Mode, dx, dy int) platform.Rect {
	next := anchor
	switch mode {
	case ModeMove:
		next.X = anchor.X + dx
		next.Y = anchor.Y + dy
	case ModeResize:
		next.Width = max(1, anchor.Width+dx)
		next.Height = max(1, anchor.Height+dy)
	}
	return next
}
