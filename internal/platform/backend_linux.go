//go:build linux

package platform

import (
	"fmt"
	"strings"

	"github.com/1broseidon/dragwm/internal/x11"
	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
)

// LinuxSession wraps an X11 connection behind the platform Session interface.
type LinuxSession struct {
	conn *x11.Connection
}

var _ Session = (*LinuxSession)(nil)

// NewLinuxSession creates a session from an existing X11 connection.
func NewLinuxSession(conn *x11.Connection) *LinuxSession {
	return &LinuxSession{conn: conn}
}

// NewLinuxSessionFromDisplay opens a fresh X11 connection. An empty display
// name uses $DISPLAY.
func NewLinuxSessionFromDisplay(display string) (*LinuxSession, error) {
	conn, err := x11.NewConnection(display)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to X11: %w", err)
	}
	return &LinuxSession{conn: conn}, nil
}

// Root returns the root window ID.
func (s *LinuxSession) Root() WindowID {
	if s == nil || s.conn == nil {
		return 0
	}
	return WindowID(s.conn.Root)
}

// Screen returns the default screen bounds.
func (s *LinuxSession) Screen() Rect {
	if s == nil || s.conn == nil {
		return Rect{}
	}
	w, h := s.conn.ScreenSize()
	return Rect{Width: w, Height: h}
}

func (s *LinuxSession) Keycodes(name string) ([]Keycode, error) {
	conn, err := s.connection()
	if err != nil {
		return nil, err
	}
	codes, err := conn.Keycodes(name)
	if err != nil {
		return nil, err
	}
	out := make([]Keycode, len(codes))
	for i, code := range codes {
		out[i] = Keycode(code)
	}
	return out, nil
}

func (s *LinuxSession) LockMasks() []uint16 {
	if s == nil || s.conn == nil {
		return []uint16{0}
	}
	return s.conn.LockMasks()
}

func (s *LinuxSession) GrabKey(mods uint16, code Keycode) error {
	conn, err := s.connection()
	if err != nil {
		return err
	}
	return conn.GrabKey(mods, xproto.Keycode(code))
}

func (s *LinuxSession) GrabButton(mods uint16, button Button) error {
	conn, err := s.connection()
	if err != nil {
		return err
	}
	return conn.GrabButton(mods, byte(button))
}

// UngrabAll releases every grab the session holds on the root window.
func (s *LinuxSession) UngrabAll() error {
	conn, err := s.connection()
	if err != nil {
		return err
	}
	return conn.UngrabAll()
}

// RefreshKeymap reloads the keyboard and modifier mappings from the server.
func (s *LinuxSession) RefreshKeymap() error {
	conn, err := s.connection()
	if err != nil {
		return err
	}
	return conn.RefreshKeymap()
}

// Geometry queries the window's current position and size.
func (s *LinuxSession) Geometry(id WindowID) (Rect, error) {
	conn, err := s.connection()
	if err != nil {
		return Rect{}, err
	}
	x, y, w, h, err := conn.Geometry(xproto.Window(id))
	if err != nil {
		return Rect{}, err
	}
	return Rect{X: x, Y: y, Width: w, Height: h}, nil
}

// MoveResize issues one configure request. Errors from the server arrive
// later as ProtocolError events.
func (s *LinuxSession) MoveResize(id WindowID, r Rect) error {
	conn, err := s.connection()
	if err != nil {
		return err
	}
	conn.MoveResizeWindow(xproto.Window(id), r.X, r.Y, r.Width, r.Height)
	return nil
}

func (s *LinuxSession) Raise(id WindowID) error {
	conn, err := s.connection()
	if err != nil {
		return err
	}
	conn.RaiseWindow(xproto.Window(id))
	return nil
}

func (s *LinuxSession) Destroy(id WindowID) error {
	conn, err := s.connection()
	if err != nil {
		return err
	}
	return conn.DestroyWindow(xproto.Window(id))
}

// InputFocus returns the focused window, or zero when focus is None or
// PointerRoot.
func (s *LinuxSession) InputFocus() (WindowID, error) {
	conn, err := s.connection()
	if err != nil {
		return 0, err
	}
	focus, err := conn.InputFocus()
	if err != nil {
		return 0, err
	}
	switch focus {
	case xproto.InputFocusNone, xproto.InputFocusPointerRoot:
		return 0, nil
	}
	return WindowID(focus), nil
}

// NextEvent blocks for the next event from the server.
func (s *LinuxSession) NextEvent() (Event, error) {
	conn, err := s.connection()
	if err != nil {
		return nil, err
	}
	ev, xerr := conn.WaitForEvent()
	if ev == nil && xerr == nil {
		return nil, ErrConnectionClosed
	}
	if xerr != nil {
		return ProtocolError{Err: xerr}, nil
	}
	return TranslateEvent(ev), nil
}

func (s *LinuxSession) Flush() error {
	conn, err := s.connection()
	if err != nil {
		return err
	}
	return conn.Sync()
}

// Close disconnects from the display server.
func (s *LinuxSession) Close() {
	if s != nil && s.conn != nil {
		s.conn.Close()
	}
}

func (s *LinuxSession) connection() (*x11.Connection, error) {
	if s == nil || s.conn == nil {
		return nil, fmt.Errorf("x11 session connection is nil")
	}
	return s.conn, nil
}

// TranslateEvent maps a decoded X event onto the platform event variants.
func TranslateEvent(ev xgb.Event) Event {
	switch e := ev.(type) {
	case xproto.KeyPressEvent:
		return KeyPress{
			Keycode: Keycode(e.Detail),
			State:   e.State,
			Child:   WindowID(e.Child),
		}
	case xproto.ButtonPressEvent:
		return ButtonPress{
			Button: Button(e.Detail),
			State:  e.State,
			Child:  WindowID(e.Child),
			Root:   Point{X: int(e.RootX), Y: int(e.RootY)},
		}
	case xproto.MotionNotifyEvent:
		return MotionNotify{
			Root: Point{X: int(e.RootX), Y: int(e.RootY)},
		}
	case xproto.ButtonReleaseEvent:
		return ButtonRelease{Button: Button(e.Detail)}
	case xproto.MappingNotifyEvent:
		return MappingNotify{Request: MappingRequest(e.Request)}
	default:
		return Other{Kind: eventKind(ev), Detail: ev.String()}
	}
}

// eventKind turns "xproto.MapRequestEvent" into "MapRequest".
func eventKind(ev xgb.Event) string {
	name := fmt.Sprintf("%T", ev)
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	return strings.TrimSuffix(name, "Event")
}
