package terminal

// namedKeys maps canonical config names to events
var namedKeys = map[string]Event{
	"escape": {Key: KeyEscape},
	"up":     {Key: KeyUp},
	"down":   {Key: KeyDown},
	"left":   {Key: KeyLeft},
	"right":  {Key: KeyRight},
	"tab":    {Key: KeyControl, Byte: '\t'},
	"enter":  {Key: KeyControl, Byte: '\r'},
	"space":  {Key: KeyPrintable, Byte: ' '},
}

// eventNames is the reverse lookup, built from namedKeys and the ctrl_ range
var eventNames map[Event]string

func init() {
	for c := byte('a'); c <= 'z'; c++ {
		namedKeys["ctrl_"+string(c)] = CtrlEvent(c)
	}

	eventNames = make(map[Event]string, len(namedKeys))
	for name, ev := range namedKeys {
		eventNames[ev] = name
	}
	// ctrl_i and ctrl_m share bytes with tab and enter; prefer the short names
	eventNames[Event{Key: KeyControl, Byte: '\t'}] = "tab"
	eventNames[Event{Key: KeyControl, Byte: '\r'}] = "enter"

	// Aliases
	namedKeys["esc"] = Event{Key: KeyEscape}
}

// ParseKey resolves a config name ("ctrl_q", "escape", "up", or a single
// printable character) to the event that key produces
func ParseKey(name string) (Event, bool) {
	if ev, ok := namedKeys[name]; ok {
		return ev, true
	}
	if len(name) == 1 && name[0] >= 0x20 && name[0] < 0x7f {
		return Event{Key: KeyPrintable, Byte: name[0]}, true
	}
	return Event{}, false
}

// KeyName returns the canonical config name for an event, or empty string
func KeyName(ev Event) string {
	if name, ok := eventNames[ev]; ok {
		return name
	}
	if ev.Key == KeyPrintable && ev.Byte >= 0x20 && ev.Byte < 0x7f {
		return string(ev.Byte)
	}
	return ""
}
