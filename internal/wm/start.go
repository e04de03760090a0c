package wm

import (
	"fmt"
	"log/slog"

	"github.com/1broseidon/dragwm/internal/config"
	"github.com/1broseidon/dragwm/internal/hotkeys"
	"github.com/1broseidon/dragwm/internal/platform"
)

// Startup stages reported in StartupError.
const (
	StageConnect = "connect"
	StageGrab    = "grab"
)

// StartupError is a failure before the event loop begins. The manager cannot
// operate without a connection and its grabs, so callers treat it as fatal.
type StartupError struct {
	Stage string
	Err   error
}

func (e *StartupError) Error() string {
	return fmt.Sprintf("startup failed at %s: %v", e.Stage, e.Err)
}

func (e *StartupError) Unwrap() error {
	return e.Err
}

// ConnectFunc opens the display session.
type ConnectFunc func(display string) (platform.Session, error)

// Start connects, installs all grabs and returns a dispatcher ready to Run.
// On a grab failure the session is closed before returning.
func Start(cfg *config.Config, connect ConnectFunc, launcher Launcher, logger *slog.Logger) (*Dispatcher, error) {
	if logger == nil {
		logger = discardLogger()
	}
	session, err := connect(cfg.Display)
	if err != nil {
		return nil, &StartupError{Stage: StageConnect, Err: err}
	}

	screen := session.Screen()
	logger.Info("connected to display",
		"root", session.Root(),
		"width", screen.Width,
		"height", screen.Height,
	)

	table, err := hotkeys.Configure(session, cfg)
	if err != nil {
		session.Close()
		return nil, &StartupError{Stage: StageGrab, Err: err}
	}
	logger.Info("grabs installed",
		"modifier", cfg.Modifier,
		"keys", table.Len(),
		"move_button", cfg.MoveButton,
		"resize_button", cfg.ResizeButton,
	)

	return NewDispatcher(session, cfg, table, launcher, logger), nil
}
