package buffer

import (
	"bufio"
	"bytes"
	"io"
	"os"

	"github.com/lixenwraith/kilo/fault"
)

// Load appends every line of r as a row, stripping trailing "\n" and "\r".
// A final line without terminator is kept; an empty source adds no rows.
func (b *Buffer) Load(r io.Reader) error {
	// bufio.Reader rather than Scanner: no line length limit
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadBytes('\n')
		if len(line) > 0 {
			b.AppendRow(trimEOL(line))
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fault.Wrap(fault.KindIO, "read", err)
		}
	}
}

// LoadFile opens path and loads its lines
func (b *Buffer) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fault.Wrap(fault.KindIO, "fopen", err)
	}
	defer f.Close()

	return b.Load(f)
}

// trimEOL removes any run of trailing CR/LF bytes
func trimEOL(line []byte) []byte {
	return bytes.TrimRight(line, "\r\n")
}
