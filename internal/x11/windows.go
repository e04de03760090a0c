package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/xwindow"
)

// Geometry returns the window's position relative to its parent and its size.
// Without reparenting the parent of every top-level window is the root.
func (c *Connection) Geometry(windowID xproto.Window) (x, y, width, height int, err error) {
	geom, err := xwindow.New(c.XUtil, windowID).Geometry()
	if err != nil {
		return 0, 0, 0, 0, fmt.Errorf("get geometry of 0x%x: %w", windowID, err)
	}
	return geom.X(), geom.Y(), geom.Width(), geom.Height(), nil
}

// MoveResizeWindow issues a single configure request for position and size.
// Values are clamped to what the protocol can carry; width and height never
// go below 1.
func (c *Connection) MoveResizeWindow(windowID xproto.Window, x, y, width, height int) {
	win := xwindow.New(c.XUtil, windowID)
	win.MoveResize(
		int(ClampCoord(x)),
		int(ClampCoord(y)),
		int(ClampSize(width)),
		int(ClampSize(height)),
	)
}

// RaiseWindow restacks a window above its siblings.
func (c *Connection) RaiseWindow(windowID xproto.Window) {
	xwindow.New(c.XUtil, windowID).Stack(xproto.StackModeAbove)
}

// DestroyWindow destroys a client window outright.
func (c *Connection) DestroyWindow(windowID xproto.Window) error {
	if err := xproto.DestroyWindowChecked(c.XUtil.Conn(), windowID).Check(); err != nil {
		return fmt.Errorf("destroy window 0x%x: %w", windowID, err)
	}
	return nil
}

// InputFocus returns the window currently holding keyboard focus. The result
// may be xproto.InputFocusNone or xproto.InputFocusPointerRoot.
func (c *Connection) InputFocus() (xproto.Window, error) {
	reply, err := xproto.GetInputFocus(c.XUtil.Conn()).Reply()
	if err != nil {
		return 0, fmt.Errorf("get input focus: %w", err)
	}
	return reply.Focus, nil
}
