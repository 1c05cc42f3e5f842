package terminal

import (
	"testing"
)

func TestCtrl(t *testing.T) {
	if Ctrl('q') != 0x11 {
		t.Errorf("Ctrl('q') = %#x, want 0x11", Ctrl('q'))
	}
	if Ctrl('Q') != 0x11 {
		t.Errorf("Ctrl('Q') = %#x, want 0x11", Ctrl('Q'))
	}
}

func TestEventString(t *testing.T) {
	tests := []struct {
		ev   Event
		want string
	}{
		{Event{Key: KeyUp}, "Up"},
		{Event{Key: KeyLeft}, "Left"},
		{CtrlEvent('q'), "Ctrl-Q"},
		{Event{Key: KeyPrintable, Byte: 'a'}, "Rune[a]"},
		{Event{}, "None"},
	}
	for _, tt := range tests {
		if got := tt.ev.String(); got != tt.want {
			t.Errorf("%+v: got %q, want %q", tt.ev, got, tt.want)
		}
	}
}

func TestEventString_ControlBytes(t *testing.T) {
	tests := []struct {
		b    byte
		want string
	}{
		{0x00, "Ctrl-Space"},
		{Ctrl('a'), "Ctrl-A"},
		{Ctrl('q'), "Ctrl-Q"},
		{Ctrl('s'), "Ctrl-S"},
		{Ctrl('z'), "Ctrl-Z"},
		{0x08, "Backspace"},
		{'\t', "Tab"},
		{'\r', "Enter"},
		{0x1c, "Ctrl-\\"},
		{0x1f, "Ctrl-_"},
		{0x7f, "Backspace2"},
	}
	for _, tt := range tests {
		ev := byteEvent(tt.b)
		if ev.Key != KeyControl {
			t.Fatalf("byte %#x: not a control event", tt.b)
		}
		if got := ev.String(); got != tt.want {
			t.Errorf("byte %#x: got %q, want %q", tt.b, got, tt.want)
		}
	}
}

func TestParseKey(t *testing.T) {
	tests := []struct {
		name string
		want Event
		ok   bool
	}{
		{"ctrl_q", CtrlEvent('q'), true},
		{"ctrl_a", Event{Key: KeyControl, Byte: 0x01}, true},
		{"escape", Event{Key: KeyEscape}, true},
		{"esc", Event{Key: KeyEscape}, true},
		{"up", Event{Key: KeyUp}, true},
		{"q", Event{Key: KeyPrintable, Byte: 'q'}, true},
		{"tab", Event{Key: KeyControl, Byte: '\t'}, true},
		{"ctrl_", Event{}, false},
		{"", Event{}, false},
		{"hyper_x", Event{}, false},
	}
	for _, tt := range tests {
		got, ok := ParseKey(tt.name)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ParseKey(%q) = %+v, %v; want %+v, %v", tt.name, got, ok, tt.want, tt.ok)
		}
	}
}

func TestKeyName_RoundTrip(t *testing.T) {
	for _, name := range []string{"ctrl_q", "ctrl_z", "escape", "left", "tab", "enter", "x"} {
		ev, ok := ParseKey(name)
		if !ok {
			t.Fatalf("ParseKey(%q) failed", name)
		}
		if got := KeyName(ev); got != name {
			t.Errorf("KeyName(ParseKey(%q)) = %q", name, got)
		}
	}
}
