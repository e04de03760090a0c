// Package launcher starts user-configured programs without waiting for them.
package launcher

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
)

// ErrEmptyCommand is returned when asked to launch nothing.
var ErrEmptyCommand = errors.New("empty command")

// Launcher spawns detached child processes. Children inherit the manager's
// environment and stderr and are reaped in the background.
type Launcher struct {
	logger *slog.Logger
	stderr io.Writer
}

// New creates a launcher logging child exits to logger.
func New(logger *slog.Logger) *Launcher {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Launcher{logger: logger, stderr: os.Stderr}
}

// Launch starts argv[0] with the remaining arguments. It returns once the
// process has started; a start failure is returned and nothing is retried.
func (l *Launcher) Launch(argv []string) error {
	if len(argv) == 0 || argv[0] == "" {
		return ErrEmptyCommand
	}

	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stderr = l.stderr
	cmd.SysProcAttr = detachAttr()
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("couldn't spawn %s: %w", argv[0], err)
	}

	pid := cmd.Process.Pid
	l.logger.Debug("launched", "command", argv[0], "pid", pid)
	go func() {
		if err := cmd.Wait(); err != nil {
			l.logger.Debug("child exited", "command", argv[0], "pid", pid, "error", err)
			return
		}
		l.logger.Debug("child exited", "command", argv[0], "pid", pid)
	}()
	return nil
}
