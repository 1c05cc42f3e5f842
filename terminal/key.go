package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Key is the category of a decoded input event
type Key uint8

const (
	KeyNone      Key = iota
	KeyPrintable     // literal byte, check Event.Byte
	KeyControl       // control byte (0x00-0x1f except ESC, 0x7f), check Event.Byte
	KeyEscape

	// Navigation
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)

const keyEsc = 0x1b

// Event is one decoded key press.
// Byte is meaningful only for KeyPrintable and KeyControl.
type Event struct {
	Key  Key
	Byte byte
}

// Ctrl maps a letter to its Ctrl-chord byte
func Ctrl(letter byte) byte {
	return letter & 0x1f
}

// CtrlEvent is the event produced by pressing Ctrl together with letter
func CtrlEvent(letter byte) Event {
	return Event{Key: KeyControl, Byte: Ctrl(letter)}
}

// byteEvent classifies a single non-escape byte
func byteEvent(b byte) Event {
	if b < 0x20 || b == 0x7f {
		return Event{Key: KeyControl, Byte: b}
	}
	return Event{Key: KeyPrintable, Byte: b}
}

// tcellKeys maps navigation categories onto tcell's key vocabulary so log
// output reads the same as in tcell applications
var tcellKeys = map[Key]tcell.Key{
	KeyEscape: tcell.KeyEscape,
	KeyUp:     tcell.KeyUp,
	KeyDown:   tcell.KeyDown,
	KeyLeft:   tcell.KeyLeft,
	KeyRight:  tcell.KeyRight,
}

// controlKey maps a control byte to tcell's key code. Backspace, Tab and Enter
// are typeable without Ctrl and keep their ASCII codes; tcell numbers the Ctrl
// chords from KeyCtrlSpace (NUL) upward.
func controlKey(b byte) tcell.Key {
	switch tcell.Key(b) {
	case tcell.KeyBackspace, tcell.KeyTab, tcell.KeyEnter, tcell.KeyDEL:
		return tcell.Key(b)
	}
	if b < 0x20 {
		return tcell.KeyCtrlSpace + tcell.Key(b)
	}
	return tcell.Key(b)
}

// String returns a human readable name: "Up", "Ctrl-Q", "Rune[a]"
func (e Event) String() string {
	switch e.Key {
	case KeyNone:
		return "None"
	case KeyPrintable:
		return fmt.Sprintf("Rune[%c]", e.Byte)
	case KeyControl:
		if name, ok := tcell.KeyNames[controlKey(e.Byte)]; ok {
			return name
		}
		return fmt.Sprintf("Ctrl[0x%02x]", e.Byte)
	}
	if tk, ok := tcellKeys[e.Key]; ok {
		if name, ok := tcell.KeyNames[tk]; ok {
			return name
		}
	}
	return fmt.Sprintf("Key[%d]", e.Key)
}
