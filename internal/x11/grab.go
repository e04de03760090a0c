package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/keybind"
	"github.com/BurntSushi/xgbutil/mousebind"
	"github.com/BurntSushi/xgbutil/xevent"
)

// Keycodes resolves a keysym name such as "Return" or "d" to every keycode
// that produces it on the current keyboard mapping.
func (c *Connection) Keycodes(name string) ([]xproto.Keycode, error) {
	codes := keybind.StrToKeycodes(c.XUtil, name)
	if len(codes) == 0 {
		return nil, fmt.Errorf("no keycode found for %q", name)
	}
	return codes, nil
}

// GrabKey registers a passive, asynchronous key grab on the root window for
// mods combined with every mask in xevent.IgnoreMods.
func (c *Connection) GrabKey(mods uint16, code xproto.Keycode) error {
	return keybind.GrabChecked(c.XUtil, c.Root, mods, code)
}

// GrabButton registers a passive, asynchronous button grab on the root window
// that reports press, release and motion, for mods combined with every mask in
// xevent.IgnoreMods.
func (c *Connection) GrabButton(mods uint16, button byte) error {
	return mousebind.GrabChecked(c.XUtil, c.Root, mods, xproto.Button(button), false)
}

// UngrabAll drops every key and button grab held on the root window.
func (c *Connection) UngrabAll() error {
	if err := xproto.UngrabKeyChecked(c.XUtil.Conn(), xproto.GrabAny, c.Root, xproto.ModMaskAny).Check(); err != nil {
		return fmt.Errorf("ungrab keys: %w", err)
	}
	if err := xproto.UngrabButtonChecked(c.XUtil.Conn(), xproto.ButtonIndexAny, c.Root, xproto.ModMaskAny).Check(); err != nil {
		return fmt.Errorf("ungrab buttons: %w", err)
	}
	return nil
}

// RefreshKeymap reloads the keyboard and modifier mappings after a
// MappingNotify. keybind.Initialize only does this from xevent.Main.
func (c *Connection) RefreshKeymap() (err error) {
	// MapsGet panics when the server refuses either mapping.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("refresh keymap: %v", r)
		}
	}()
	keyMap, modMap := keybind.MapsGet(c.XUtil)
	keybind.KeyMapSet(c.XUtil, keyMap)
	keybind.ModMapSet(c.XUtil, modMap)
	return nil
}

// LockMasks computes every combination of the lock modifiers (CapsLock,
// NumLock, ScrollLock) including the empty one, installs it as
// xevent.IgnoreMods for the grabs that follow, and returns it.
func (c *Connection) LockMasks() []uint16 {
	// Always ignore CapsLock.
	caps := uint16(xproto.ModMaskLock)

	numLock := c.modMaskForKeysym("Num_Lock")
	scrollLock := c.modMaskForKeysym("Scroll_Lock")

	base := []uint16{caps}
	if numLock != 0 && numLock != caps {
		base = append(base, numLock)
	}
	if scrollLock != 0 && scrollLock != caps && scrollLock != numLock {
		base = append(base, scrollLock)
	}

	masks := []uint16{0}
	for subset := 1; subset < (1 << len(base)); subset++ {
		var mask uint16
		for bit := range base {
			if subset&(1<<bit) != 0 {
				mask |= base[bit]
			}
		}
		masks = append(masks, mask)
	}

	xevent.IgnoreMods = masks
	return masks
}

func (c *Connection) modMaskForKeysym(keysym string) uint16 {
	for _, keycode := range keybind.StrToKeycodes(c.XUtil, keysym) {
		if mask := keybind.ModGet(c.XUtil, keycode); mask != 0 {
			return mask
		}
	}
	return 0
}
