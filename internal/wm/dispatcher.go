// Package wm runs the window manager's event loop.
//
// The Dispatcher owns the display session and the drag tracker. Events are
// read one at a time and handled to completion before the next read, so no
// state is shared and nothing is locked.
package wm

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/1broseidon/dragwm/internal/config"
	"github.com/1broseidon/dragwm/internal/drag"
	"github.com/1broseidon/dragwm/internal/hotkeys"
	"github.com/1broseidon/dragwm/internal/platform"
)

// Launcher starts an external program without waiting for it.
type Launcher interface {
	Launch(argv []string) error
}

// errQuit is returned by handleKey when the quit binding fires.
var errQuit = errors.New("quit requested")

// Dispatcher routes display events to shortcut handling and drag tracking.
type Dispatcher struct {
	session  platform.Session
	cfg      *config.Config
	bindings *hotkeys.Table
	launcher Launcher
	tracker  *drag.Tracker
	logger   *slog.Logger
}

// NewDispatcher wires a dispatcher. Grabs for cfg must already be in place and
// described by bindings; see Start.
func NewDispatcher(session platform.Session, cfg *config.Config, bindings *hotkeys.Table, launcher Launcher, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = discardLogger()
	}
	buttons := drag.Buttons{
		Move:   platform.Button(cfg.MoveButton),
		Resize: platform.Button(cfg.ResizeButton),
	}
	return &Dispatcher{
		session:  session,
		cfg:      cfg,
		bindings: bindings,
		launcher: launcher,
		tracker:  drag.NewTracker(buttons),
		logger:   logger,
	}
}

// Run processes events until the quit binding fires or the connection fails.
// It returns nil after a requested quit, having closed the session.
func (d *Dispatcher) Run() error {
	d.logger.Info("entering event loop")
	for {
		ev, err := d.session.NextEvent()
		if err != nil {
			return fmt.Errorf("waiting for event: %w", err)
		}
		if err := d.Handle(ev); err != nil {
			if errors.Is(err, errQuit) {
				d.logger.Info("quit requested, closing display connection")
				d.session.Close()
				return nil
			}
			return err
		}
	}
}

// Handle processes a single event. Failures inside a handler are logged and
// swallowed; only a quit request is returned.
func (d *Dispatcher) Handle(ev platform.Event) error {
	switch e := ev.(type) {
	case platform.KeyPress:
		return d.handleKey(e)
	case platform.ButtonPress:
		d.handleButtonPress(e)
	case platform.MotionNotify:
		d.handleMotion(e)
	case platform.ButtonRelease:
		d.tracker.End()
	case platform.MappingNotify:
		d.handleMapping(e)
	case platform.ProtocolError:
		d.logger.Warn("protocol error", "error", e.Err)
	case platform.Other:
		d.logger.Info("unhandled event", "kind", e.Kind, "detail", e.Detail)
	default:
		d.logger.Info("unhandled event", "kind", fmt.Sprintf("%T", ev))
	}
	return nil
}

// DragState returns a snapshot of the current drag.
func (d *Dispatcher) DragState() drag.State {
	return d.tracker.State()
}

func (d *Dispatcher) handleKey(e platform.KeyPress) error {
	if e.Child != 0 {
		if err := d.session.Raise(e.Child); err != nil {
			d.logger.Warn("raise failed", "window", e.Child, "error", err)
		}
	}

	b, ok := d.bindings.Lookup(e.Keycode, e.State)
	if !ok {
		d.logger.Info("unhandled keycode", "keycode", e.Keycode, "state", e.State)
		return nil
	}

	switch b.Action {
	case config.ActionSpawn:
		if err := d.launcher.Launch(b.Command); err != nil {
			d.logger.Error("launch failed", "key", b.Key, "command", b.Command, "error", err)
		}
	case config.ActionQuit:
		return errQuit
	case config.ActionCloseFocused:
		d.closeFocused()
	default:
		d.logger.Warn("binding has unknown action", "key", b.Key, "action", b.Action)
	}
	return nil
}

func (d *Dispatcher) closeFocused() {
	focus, err := d.session.InputFocus()
	if err != nil {
		d.logger.Warn("input focus query failed", "error", err)
		return
	}
	if focus == 0 || focus == d.session.Root() {
		d.logger.Debug("no focused client to close")
		return
	}
	if err := d.session.Destroy(focus); err != nil {
		d.logger.Warn("destroy failed", "window", focus, "error", err)
	}
}

func (d *Dispatcher) handleButtonPress(e platform.ButtonPress) {
	if e.Child == 0 {
		d.logger.Debug("button press on root background", "button", e.Button)
		return
	}

	geom, err := d.session.Geometry(e.Child)
	if err != nil {
		d.logger.Warn("geometry query failed, not starting drag", "window", e.Child, "error", err)
		return
	}
	if err := d.session.Raise(e.Child); err != nil {
		d.logger.Warn("raise failed", "window", e.Child, "error", err)
	}

	d.tracker.Begin(e.Child, e.Button, e.Root, geom)
	d.logger.Debug("drag started",
		"window", e.Child,
		"mode", d.tracker.Mode(),
		"pointer_x", e.Root.X, "pointer_y", e.Root.Y,
		"x", geom.X, "y", geom.Y, "width", geom.Width, "height", geom.Height,
	)
}

func (d *Dispatcher) handleMotion(e platform.MotionNotify) {
	target, geom, ok := d.tracker.Update(e.Root)
	if !ok {
		return
	}
	if err := d.session.MoveResize(target, geom); err != nil {
		d.logger.Warn("configure failed", "window", target, "error", err)
		return
	}
	if err := d.session.Flush(); err != nil {
		d.logger.Warn("flush failed", "error", err)
	}
}

// handleMapping regrabs everything after a keyboard or modifier mapping
// change. On failure the previous table stays in place.
func (d *Dispatcher) handleMapping(e platform.MappingNotify) {
	if e.Request == platform.MappingPointer {
		d.logger.Debug("pointer mapping changed")
		return
	}
	table, err := hotkeys.Reconfigure(d.session, d.cfg)
	if err != nil {
		d.logger.Error("regrab after mapping change failed", "error", err)
		return
	}
	d.bindings = table
	d.logger.Info("keyboard mapping changed, grabs reinstalled", "keys", table.Len())
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
