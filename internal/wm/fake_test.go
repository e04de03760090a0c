package wm

import (
	"errors"
	"fmt"

	"github.com/1broseidon/dragwm/internal/platform"
)

type configureCall struct {
	id   platform.WindowID
	rect platform.Rect
}

type fakeSession struct {
	root     platform.WindowID
	windows  map[platform.WindowID]platform.Rect
	keymap   map[string][]platform.Keycode
	remap    map[string][]platform.Keycode
	ungrabs  int
	focus    platform.WindowID
	events   []platform.Event
	grabErr  error
	nextErr  error
	calls    []string
	configs  []configureCall
	raised   []platform.WindowID
	destroy  []platform.WindowID
	flushes  int
	closed   bool
	geomErrs map[platform.WindowID]error
}

func newFakeSession() *fakeSession {
	return &fakeSession{
		root:    1,
		windows: map[platform.WindowID]platform.Rect{},
		keymap: map[string][]platform.Keycode{
			"Return":    {36},
			"d":         {40},
			"space":     {65},
			"BackSpace": {22},
			"q":         {24},
		},
		geomErrs: map[platform.WindowID]error{},
	}
}

func (f *fakeSession) Root() platform.WindowID { return f.root }

func (f *fakeSession) Screen() platform.Rect { return platform.Rect{Width: 1920, Height: 1080} }

func (f *fakeSession) Keycodes(name string) ([]platform.Keycode, error) {
	codes, ok := f.keymap[name]
	if !ok {
		return nil, fmt.Errorf("no keycode found for %q", name)
	}
	return codes, nil
}

func (f *fakeSession) LockMasks() []uint16 { return []uint16{0} }

func (f *fakeSession) GrabKey(mods uint16, code platform.Keycode) error {
	f.calls = append(f.calls, "grab-key")
	return f.grabErr
}

func (f *fakeSession) GrabButton(mods uint16, button platform.Button) error {
	f.calls = append(f.calls, "grab-button")
	return f.grabErr
}

func (f *fakeSession) UngrabAll() error {
	f.calls = append(f.calls, "ungrab")
	f.ungrabs++
	return nil
}

func (f *fakeSession) RefreshKeymap() error {
	f.calls = append(f.calls, "refresh-keymap")
	if f.remap != nil {
		f.keymap = f.remap
	}
	return nil
}

func (f *fakeSession) Geometry(id platform.WindowID) (platform.Rect, error) {
	f.calls = append(f.calls, "geometry")
	if err := f.geomErrs[id]; err != nil {
		return platform.Rect{}, err
	}
	r, ok := f.windows[id]
	if !ok {
		return platform.Rect{}, errors.New("BadDrawable")
	}
	return r, nil
}

func (f *fakeSession) MoveResize(id platform.WindowID, r platform.Rect) error {
	f.calls = append(f.calls, "configure")
	f.configs = append(f.configs, configureCall{id: id, rect: r})
	return nil
}

func (f *fakeSession) Raise(id platform.WindowID) error {
	f.calls = append(f.calls, "raise")
	f.raised = append(f.raised, id)
	return nil
}

func (f *fakeSession) Destroy(id platform.WindowID) error {
	f.calls = append(f.calls, "destroy")
	f.destroy = append(f.destroy, id)
	return nil
}

func (f *fakeSession) InputFocus() (platform.WindowID, error) {
	f.calls = append(f.calls, "input-focus")
	return f.focus, nil
}

func (f *fakeSession) NextEvent() (platform.Event, error) {
	if len(f.events) == 0 {
		if f.nextErr != nil {
			return nil, f.nextErr
		}
		return nil, platform.ErrConnectionClosed
	}
	ev := f.events[0]
	f.events = f.events[1:]
	return ev, nil
}

func (f *fakeSession) Flush() error {
	f.calls = append(f.calls, "flush")
	f.flushes++
	return nil
}

func (f *fakeSession) Close() {
	f.closed = true
}

type fakeLauncher struct {
	launched [][]string
	err      error
}

func (l *fakeLauncher) Launch(argv []string) error {
	l.launched = append(l.launched, argv)
	return l.err
}
