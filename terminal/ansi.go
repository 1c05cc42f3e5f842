package terminal

import (
	"strconv"
)

// Pre-allocated VT100 sequence fragments, appended as-is into frame buffers
var (
	SeqClearScreen = []byte("\x1b[2J")
	SeqCursorHome  = []byte("\x1b[H")
	SeqCursorHide  = []byte("\x1b[?25l")
	SeqCursorShow  = []byte("\x1b[?25h")
	SeqEraseLine   = []byte("\x1b[K") // erase from cursor to end of line
	SeqNewline     = []byte("\r\n")   // OPOST is off, CR must be explicit

	csi = []byte("\x1b[")
)

// AppendCursorPos appends a cursor position directive for 1-based row and col
func AppendCursorPos(dst []byte, row, col int) []byte {
	if row < 1 {
		row = 1
	}
	if col < 1 {
		col = 1
	}
	dst = append(dst, csi...)
	dst = strconv.AppendInt(dst, int64(row), 10)
	dst = append(dst, ';')
	dst = strconv.AppendInt(dst, int64(col), 10)
	return append(dst, 'H')
}

// AppendClear appends the clear-screen and cursor-home pair
func AppendClear(dst []byte) []byte {
	dst = append(dst, SeqClearScreen...)
	return append(dst, SeqCursorHome...)
}
