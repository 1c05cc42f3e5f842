// Package buffer holds the text being viewed as an ordered list of rows.
//
// Rows are raw bytes, one display line each, without the line terminator.
// Rows only ever get appended; nothing edits or removes them.
package buffer

// Row is one display line; its length is the byte count
type Row []byte

// Buffer is the ordered row sequence
type Buffer struct {
	rows []Row
}

// New creates an empty buffer
func New() *Buffer {
	return &Buffer{}
}

// AppendRow copies b into a new row at the end of the buffer
func (b *Buffer) AppendRow(line []byte) {
	row := make(Row, len(line))
	copy(row, line)
	b.rows = append(b.rows, row)
}

// NumRows returns the number of rows; it is also the index of the sentinel
// row one past the end
func (b *Buffer) NumRows() int {
	return len(b.rows)
}

// Row returns row i, or nil for the sentinel and out-of-range indexes.
// The returned slice is shared with the buffer and must not be modified.
func (b *Buffer) Row(i int) Row {
	if i < 0 || i >= len(b.rows) {
		return nil
	}
	return b.rows[i]
}

// RowLen returns the byte length of row i, 0 outside the buffer
func (b *Buffer) RowLen(i int) int {
	return len(b.Row(i))
}

// Empty reports whether the buffer has no rows
func (b *Buffer) Empty() bool {
	return len(b.rows) == 0
}
