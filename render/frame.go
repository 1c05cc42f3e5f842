// @focus: #render { frame }
// Package render builds the byte stream for one full-screen frame.
//
// A frame is assembled in a fresh append buffer and handed back whole so the
// caller can write it with a single write call; the terminal never shows a
// half-drawn screen.
package render

import (
	"github.com/lixenwraith/kilo/buffer"
	"github.com/lixenwraith/kilo/terminal"
	"github.com/lixenwraith/kilo/viewport"
)

// Version is shown in the welcome banner
const Version = "0.0.1"

// Welcome is the banner drawn a third of the way down an empty buffer
const Welcome = "Kilo editor -- version " + Version

// Refresh reclamps the viewport around cursor and renders the frame.
// It returns the frame bytes and the offset the frame was drawn with.
func Refresh(buf *buffer.Buffer, cursor viewport.Cursor, prev viewport.Offset, dims viewport.Dims) ([]byte, viewport.Offset) {
	off := viewport.Scroll(cursor, dims, prev)
	return Frame(buf, cursor, off, dims), off
}

// Frame renders buf at offset off into a new byte slice
func Frame(buf *buffer.Buffer, cursor viewport.Cursor, off viewport.Offset, dims viewport.Dims) []byte {
	// Rough per-frame estimate: every cell plus per-row escapes
	ab := make([]byte, 0, dims.Rows*(dims.Cols+8)+32)

	ab = append(ab, terminal.SeqCursorHide...)
	ab = append(ab, terminal.SeqCursorHome...)

	ab = drawRows(ab, buf, off, dims)

	ab = terminal.AppendCursorPos(ab, cursor.Y-off.Row+1, cursor.X-off.Col+1)
	ab = append(ab, terminal.SeqCursorShow...)
	return ab
}

func drawRows(ab []byte, buf *buffer.Buffer, off viewport.Offset, dims viewport.Dims) []byte {
	for y := 0; y < dims.Rows; y++ {
		filerow := y + off.Row
		if filerow >= buf.NumRows() {
			if buf.Empty() && y == dims.Rows/3 {
				ab = appendWelcome(ab, dims.Cols)
			} else {
				ab = append(ab, '~')
			}
		} else {
			ab = append(ab, visibleSlice(buf.Row(filerow), off.Col, dims.Cols)...)
		}

		ab = append(ab, terminal.SeqEraseLine...)
		if y < dims.Rows-1 {
			ab = append(ab, terminal.SeqNewline...)
		}
	}
	return ab
}

// visibleSlice returns row[coloff : coloff+cols], clamped to the row
func visibleSlice(row buffer.Row, coloff, cols int) []byte {
	n := len(row) - coloff
	if n <= 0 {
		return nil
	}
	if n > cols {
		n = cols
	}
	return row[coloff : coloff+n]
}

// appendWelcome writes the banner centered in cols, truncated when too wide
func appendWelcome(ab []byte, cols int) []byte {
	msg := Welcome
	if len(msg) > cols {
		msg = msg[:cols]
	}

	padding := (cols - len(msg)) / 2
	if padding > 0 {
		ab = append(ab, '~')
		padding--
	}
	for ; padding > 0; padding-- {
		ab = append(ab, ' ')
	}
	return append(ab, msg...)
}
