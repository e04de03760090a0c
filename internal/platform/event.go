package platform

import "fmt"

// Event is one decoded notification from the display server.
type Event interface {
	isEvent()
}

// KeyPress is delivered for a grabbed key combination.
type KeyPress struct {
	Keycode Keycode
	State   uint16
	Child   WindowID
}

// ButtonPress is delivered for a grabbed button combination. Child is the
// top-level window under the pointer, or zero over the root background.
type ButtonPress struct {
	Button Button
	State  uint16
	Child  WindowID
	Root   Point
}

// MotionNotify reports the pointer position while a grabbed button is held.
type MotionNotify struct {
	Root Point
}

// ButtonRelease ends any drag in progress.
type ButtonRelease struct {
	Button Button
}

// MappingRequest says which server mapping a MappingNotify reports.
type MappingRequest uint8

const (
	MappingModifier MappingRequest = iota
	MappingKeyboard
	MappingPointer
)

// MappingNotify reports a changed keyboard, modifier or pointer mapping.
type MappingNotify struct {
	Request MappingRequest
}

// Other carries every event kind the manager only logs.
type Other struct {
	Kind   string
	Detail string
}

// ProtocolError is an asynchronous error for an earlier unchecked request.
type ProtocolError struct {
	Err error
}

func (KeyPress) isEvent()      {}
func (ButtonPress) isEvent()   {}
func (MotionNotify) isEvent()  {}
func (ButtonRelease) isEvent() {}
func (MappingNotify) isEvent() {}
func (Other) isEvent()         {}
func (ProtocolError) isEvent() {}

func (e ProtocolError) String() string {
	return fmt.Sprintf("protocol error: %v", e.Err)
}
