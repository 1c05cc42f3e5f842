package editor

import (
	"github.com/lixenwraith/kilo/buffer"
	"github.com/lixenwraith/kilo/terminal"
	"github.com/lixenwraith/kilo/viewport"
)

// MoveCursor returns c moved one step in the arrow direction k.
//
// The result always satisfies 0 <= Y <= NumRows and 0 <= X <= RowLen(Y).
// Left at the start of a row wraps to the end of the previous row; Right stops
// at the end of the row. Keys other than arrows return c unchanged.
func MoveCursor(buf *buffer.Buffer, c viewport.Cursor, k terminal.Key) viewport.Cursor {
	switch k {
	case terminal.KeyLeft:
		if c.X > 0 {
			c.X--
		} else if c.Y > 0 {
			c.Y--
			c.X = buf.RowLen(c.Y)
		}
	case terminal.KeyRight:
		if c.Y < buf.NumRows() && c.X < buf.RowLen(c.Y) {
			c.X++
		}
	case terminal.KeyUp:
		if c.Y > 0 {
			c.Y--
		}
	case terminal.KeyDown:
		if c.Y < buf.NumRows() {
			c.Y++
		}
	default:
		return c
	}

	// Snap to the end of a shorter row after a vertical move
	if rowlen := buf.RowLen(c.Y); c.X > rowlen {
		c.X = rowlen
	}
	return c
}
