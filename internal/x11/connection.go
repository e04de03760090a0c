package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/keybind"
)

// Connection manages the X11 connection and core X resources
type Connection struct {
	XUtil *xgbutil.XUtil
	Root  xproto.Window
}

// NewConnection establishes a connection to the X11 server. An empty display
// name falls back to $DISPLAY.
func NewConnection(display string) (*Connection, error) {
	xu, err := xgbutil.NewConnDisplay(display)
	if err != nil {
		return nil, err
	}

	// Required for keysym to keycode lookups. The MappingNotify callback it
	// registers only runs under xevent.Main; see RefreshKeymap.
	keybind.Initialize(xu)

	return &Connection{
		XUtil: xu,
		Root:  xu.RootWin(),
	}, nil
}

// ScreenSize returns the default screen dimensions in pixels.
func (c *Connection) ScreenSize() (width, height int) {
	screen := c.XUtil.Screen()
	return int(screen.WidthInPixels), int(screen.HeightInPixels)
}

// WaitForEvent blocks for the next event or asynchronous error. Both return
// values are nil once the connection has been closed.
func (c *Connection) WaitForEvent() (xgb.Event, xgb.Error) {
	return c.XUtil.Conn().WaitForEvent()
}

// Sync forces a round trip so every request issued so far has reached the
// server before the caller blocks again.
func (c *Connection) Sync() error {
	if _, err := xproto.GetInputFocus(c.XUtil.Conn()).Reply(); err != nil {
		return fmt.Errorf("sync: %w", err)
	}
	return nil
}

// Close cleanly disconnects from the X11 server
func (c *Connection) Close() {
	c.XUtil.Conn().Close()
}
