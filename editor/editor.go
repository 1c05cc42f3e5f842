// @focus: #flow { loop } #input { keys }
// Package editor runs the viewer: one goroutine that draws a frame, waits for
// one key, applies it, and repeats until the quit key.
package editor

import (
	"io"
	"log"
	"slices"

	"github.com/lixenwraith/kilo/buffer"
	"github.com/lixenwraith/kilo/render"
	"github.com/lixenwraith/kilo/terminal"
	"github.com/lixenwraith/kilo/viewport"
)

// Screen receives whole frames. Implemented by *terminal.Session.
type Screen interface {
	Write(p []byte) error
}

// KeySource yields decoded key presses. Implemented by *terminal.Decoder.
type KeySource interface {
	ReadKey() (terminal.Event, error)
}

// Editor is the complete viewer state; the event loop owns it exclusively
type Editor struct {
	buf    *buffer.Buffer
	cursor viewport.Cursor
	offset viewport.Offset
	dims   viewport.Dims

	quitKeys []terminal.Event
	logger   *log.Logger
}

// Option configures an Editor
type Option func(*Editor)

// WithQuitKey replaces the default Ctrl-Q quit binding; any of evs quits
func WithQuitKey(evs ...terminal.Event) Option {
	return func(e *Editor) {
		if len(evs) > 0 {
			e.quitKeys = append([]terminal.Event(nil), evs...)
		}
	}
}

// WithLogger routes debug output to l
func WithLogger(l *log.Logger) Option {
	return func(e *Editor) {
		if l != nil {
			e.logger = l
		}
	}
}

// New creates an editor over buf for a screen of the given size
func New(buf *buffer.Buffer, dims viewport.Dims, opts ...Option) *Editor {
	if buf == nil {
		buf = buffer.New()
	}
	e := &Editor{
		buf:      buf,
		dims:     dims,
		quitKeys: []terminal.Event{terminal.CtrlEvent('q')},
		logger:   log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Cursor returns the current cursor position
func (e *Editor) Cursor() viewport.Cursor {
	return e.cursor
}

// Offset returns the offset used for the last frame
func (e *Editor) Offset() viewport.Offset {
	return e.offset
}

// Run draws and dispatches until the quit key, which clears the screen and
// returns nil. Any write or read failure ends the loop with that error.
func (e *Editor) Run(screen Screen, keys KeySource) error {
	e.logger.Printf("editor: start rows=%d screen=%dx%d", e.buf.NumRows(), e.dims.Rows, e.dims.Cols)
	for {
		if err := e.RefreshScreen(screen); err != nil {
			return err
		}

		ev, err := keys.ReadKey()
		if err != nil {
			return err
		}

		if e.ProcessKey(ev) {
			e.logger.Printf("editor: quit on %v", ev)
			return screen.Write(terminal.AppendClear(nil))
		}
	}
}

// RefreshScreen reclamps the viewport and writes one frame
func (e *Editor) RefreshScreen(screen Screen) error {
	var frame []byte
	frame, e.offset = render.Refresh(e.buf, e.cursor, e.offset, e.dims)
	return screen.Write(frame)
}

// ProcessKey applies one key press; it reports true for the quit key
func (e *Editor) ProcessKey(ev terminal.Event) bool {
	if slices.Contains(e.quitKeys, ev) {
		return true
	}

	switch ev.Key {
	case terminal.KeyUp, terminal.KeyDown, terminal.KeyLeft, terminal.KeyRight:
		e.cursor = MoveCursor(e.buf, e.cursor, ev.Key)
	default:
		e.logger.Printf("editor: ignored key %v", ev)
	}
	return false
}
