// Package viewport maps buffer coordinates onto the screen.
package viewport

// Cursor is a buffer position: Y indexes rows (NumRows is the sentinel past
// the last row), X is a byte offset into row Y
type Cursor struct {
	X int
	Y int
}

// Offset is the buffer coordinate shown at the top-left screen cell
type Offset struct {
	Row int
	Col int
}

// Dims is the screen size in cells
type Dims struct {
	Rows int
	Cols int
}

// Scroll returns the offset that keeps c visible, moving prev by the minimum
// amount on each axis. It never re-centers; a visible cursor leaves prev
// unchanged.
func Scroll(c Cursor, d Dims, prev Offset) Offset {
	return Offset{
		Row: ensureVisible(c.Y, prev.Row, d.Rows),
		Col: ensureVisible(c.X, prev.Col, d.Cols),
	}
}

// ensureVisible adjusts offset so pos lies in [offset, offset+visible)
func ensureVisible(pos, offset, visible int) int {
	if pos < offset {
		return pos
	}
	if visible > 0 && pos >= offset+visible {
		return pos - visible + 1
	}
	return offset
}
