//go:build linux

package platform

import (
	"strings"
	"testing"

	"github.com/BurntSushi/xgb/xproto"
)

func TestTranslateEvent_InputEvents(t *testing.T) {
	press := TranslateEvent(xproto.ButtonPressEvent{
		Detail: 3,
		State:  xproto.ModMask4,
		Child:  0x1a00003,
		RootX:  -12,
		RootY:  480,
	})
	want := ButtonPress{Button: 3, State: xproto.ModMask4, Child: 0x1a00003, Root: Point{X: -12, Y: 480}}
	if press != want {
		t.Fatalf("button press = %#v, want %#v", press, want)
	}

	motion := TranslateEvent(xproto.MotionNotifyEvent{RootX: 130, RootY: 80})
	if motion != (MotionNotify{Root: Point{X: 130, Y: 80}}) {
		t.Fatalf("motion = %#v", motion)
	}

	release := TranslateEvent(xproto.ButtonReleaseEvent{Detail: 1})
	if release != (ButtonRelease{Button: 1}) {
		t.Fatalf("release = %#v", release)
	}

	key := TranslateEvent(xproto.KeyPressEvent{Detail: 36, State: xproto.ModMask4, Child: 7})
	if key != (KeyPress{Keycode: 36, State: xproto.ModMask4, Child: 7}) {
		t.Fatalf("key press = %#v", key)
	}
}

func TestTranslateEvent_OtherKeepsKindAndDetail(t *testing.T) {
	ev := TranslateEvent(xproto.MapRequestEvent{Parent: 1, Window: 2})
	other, ok := ev.(Other)
	if !ok {
		t.Fatalf("expected Other, got %T", ev)
	}
	if other.Kind != "MapRequest" {
		t.Fatalf("kind = %q, want MapRequest", other.Kind)
	}
	if !strings.Contains(other.Detail, "MapRequest") {
		t.Fatalf("detail should carry the event text, got %q", other.Detail)
	}
}

func TestTranslateEvent_MappingNotify(t *testing.T) {
	tests := []struct {
		request byte
		want    MappingRequest
	}{
		{xproto.MappingModifier, MappingModifier},
		{xproto.MappingKeyboard, MappingKeyboard},
		{xproto.MappingPointer, MappingPointer},
	}
	for _, tt := range tests {
		ev := TranslateEvent(xproto.MappingNotifyEvent{Request: tt.request, FirstKeycode: 8, Count: 248})
		if ev != (MappingNotify{Request: tt.want}) {
			t.Fatalf("request %d: got %#v", tt.request, ev)
		}
	}
}
