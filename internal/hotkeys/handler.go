package hotkeys

import (
	"fmt"

	"github.com/1broseidon/dragwm/internal/config"
	"github.com/1broseidon/dragwm/internal/platform"
)

// Grabber is the part of the display session needed to register grabs.
// LockMasks must be called first: GrabKey and GrabButton repeat each grab for
// every lock combination it returned.
type Grabber interface {
	Keycodes(name string) ([]platform.Keycode, error)
	LockMasks() []uint16
	GrabKey(mods uint16, code platform.Keycode) error
	GrabButton(mods uint16, button platform.Button) error
	Flush() error
}

// Regrabber can also reload the keymap and drop existing grabs.
type Regrabber interface {
	Grabber
	RefreshKeymap() error
	UngrabAll() error
}

// GrabError reports a key or button the server would not hand over.
type GrabError struct {
	Kind string // "key" or "button"
	Name string
	Err  error
}

func (e *GrabError) Error() string {
	return fmt.Sprintf("grab %s %s: %v", e.Kind, e.Name, e.Err)
}

func (e *GrabError) Unwrap() error {
	return e.Err
}

// Configure registers every key binding and the move/resize buttons as
// passive grabs on the root window, qualified by the configured modifier and
// repeated for each lock-modifier combination. Pending requests are flushed
// before it returns. The first refused grab aborts configuration, as does a
// key whose keycode is already bound by an earlier binding.
func Configure(g Grabber, cfg *config.Config) (*Table, error) {
	mods, err := config.ParseModifiers(cfg.Modifier)
	if err != nil {
		return nil, &GrabError{Kind: "modifier", Name: cfg.Modifier, Err: err}
	}
	table := NewTable(mods, g.LockMasks())

	for _, b := range cfg.Bindings {
		codes, err := g.Keycodes(b.Key)
		if err != nil {
			return nil, &GrabError{Kind: "key", Name: b.Key, Err: err}
		}
		for _, code := range codes {
			name := fmt.Sprintf("%s (keycode %d)", b.Key, code)
			if prev, ok := table.Bound(code); ok {
				return nil, &GrabError{Kind: "key", Name: name, Err: fmt.Errorf("keycode already bound by %q", prev.Key)}
			}
			if err := g.GrabKey(mods, code); err != nil {
				return nil, &GrabError{Kind: "key", Name: name, Err: err}
			}
			table.Add(code, b)
		}
	}

	buttons := []platform.Button{
		platform.Button(cfg.MoveButton),
		platform.Button(cfg.ResizeButton),
	}
	for _, button := range buttons {
		if err := g.GrabButton(mods, button); err != nil {
			return nil, &GrabError{Kind: "button", Name: fmt.Sprintf("%d", button), Err: err}
		}
	}

	if err := g.Flush(); err != nil {
		return nil, fmt.Errorf("flush grabs: %w", err)
	}
	return table, nil
}

// Reconfigure reloads the keyboard mapping, drops every grab and installs them
// again. It runs after the server reports a keyboard or modifier mapping
// change, which can move keysyms to other keycodes and NumLock to another
// modifier bit.
func Reconfigure(g Regrabber, cfg *config.Config) (*Table, error) {
	if err := g.RefreshKeymap(); err != nil {
		return nil, err
	}
	if err := g.UngrabAll(); err != nil {
		return nil, err
	}
	return Configure(g, cfg)
}
