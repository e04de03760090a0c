package wm

import (
	"errors"
	"testing"

	"github.com/1broseidon/dragwm/internal/config"
	"github.com/1broseidon/dragwm/internal/hotkeys"
	"github.com/1broseidon/dragwm/internal/platform"
)

func TestStart_ConnectFailure(t *testing.T) {
	refused := errors.New("cannot open display :9")
	connect := func(display string) (platform.Session, error) {
		if display != ":9" {
			t.Fatalf("expected configured display, got %q", display)
		}
		return nil, refused
	}
	cfg := config.DefaultConfig()
	cfg.Display = ":9"

	_, err := Start(cfg, connect, &fakeLauncher{}, nil)

	var serr *StartupError
	if !errors.As(err, &serr) {
		t.Fatalf("expected StartupError, got %v", err)
	}
	if serr.Stage != StageConnect || !errors.Is(err, refused) {
		t.Fatalf("unexpected startup error: %v", err)
	}
}

func TestStart_GrabFailureClosesSession(t *testing.T) {
	session := newFakeSession()
	session.grabErr = errors.New("BadAccess")
	connect := func(string) (platform.Session, error) { return session, nil }

	_, err := Start(config.DefaultConfig(), connect, &fakeLauncher{}, nil)

	var serr *StartupError
	if !errors.As(err, &serr) || serr.Stage != StageGrab {
		t.Fatalf("expected grab StartupError, got %v", err)
	}
	var gerr *hotkeys.GrabError
	if !errors.As(err, &gerr) {
		t.Fatalf("expected GrabError in chain, got %v", err)
	}
	if !session.closed {
		t.Fatalf("expected session closed after grab failure")
	}
	if session.flushes != 0 {
		t.Fatalf("no flush expected after a refused grab")
	}
}

func TestStart_FlushesGrabsBeforeReturning(t *testing.T) {
	session := newFakeSession()
	connect := func(string) (platform.Session, error) { return session, nil }

	d, err := Start(config.DefaultConfig(), connect, &fakeLauncher{}, nil)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if d == nil {
		t.Fatalf("expected dispatcher")
	}
	if n := len(session.calls); n == 0 || session.calls[n-1] != "flush" {
		t.Fatalf("expected grabs followed by flush, got %v", session.calls)
	}
	if session.closed {
		t.Fatalf("session closed on success")
	}
}
