package platform

import "errors"

// WindowID is a platform-neutral window identifier. Zero means no window.
type WindowID uint32

// Keycode is a hardware key code as reported by the display server.
type Keycode uint8

// Button is a pointer button number (1 = left, 3 = right).
type Button uint8

// ErrConnectionClosed is returned by NextEvent once the display connection is gone.
var ErrConnectionClosed = errors.New("display connection closed")

// Point is a root-relative pointer position.
type Point struct {
	X int
	Y int
}

// Rect describes a rectangular region in screen coordinates.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Session abstracts the display-server connection the window manager drives.
//
// Requests are buffered by the implementation; Flush forces them out. NextEvent
// blocks until a complete event is available and is the only blocking call the
// dispatcher makes between events.
//
// LockMasks also fixes the lock-modifier combinations that GrabKey and
// GrabButton repeat each grab for, so it is called before grabbing.
type Session interface {
	Root() WindowID
	Screen() Rect

	Keycodes(name string) ([]Keycode, error)
	LockMasks() []uint16
	GrabKey(mods uint16, code Keycode) error
	GrabButton(mods uint16, button Button) error
	UngrabAll() error
	RefreshKeymap() error

	Geometry(id WindowID) (Rect, error)
	MoveResize(id WindowID, r Rect) error
	Raise(id WindowID) error
	Destroy(id WindowID) error
	InputFocus() (WindowID, error)

	NextEvent() (Event, error)
	Flush() error
	Close()
}
