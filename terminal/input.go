// @focus: #sys { io } #input { keys }
package terminal

import (
	"io"

	"github.com/pkg/errors"

	"github.com/lixenwraith/kilo/fault"
)

// ErrInputClosed is the cause reported when the input source hangs up
var ErrInputClosed = errors.New("input closed")

// Decoder turns a raw byte stream into key events.
//
// The source follows Session.Read semantics: a read returning zero bytes and
// a nil error is a timeout ("no key yet"), not end of stream. io.EOF means the
// input is gone and is fatal.
type Decoder struct {
	r   io.Reader
	buf [1]byte
}

// NewDecoder creates a decoder reading from r
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: r}
}

// ReadKey blocks until one key event is decoded.
// Timeouts before the first byte are retried indefinitely.
func (d *Decoder) ReadKey() (Event, error) {
	var c byte
	for {
		b, ok, err := d.readByte()
		if err != nil {
			return Event{}, err
		}
		if ok {
			c = b
			break
		}
	}

	if c != keyEsc {
		return byteEvent(c), nil
	}

	// A lone ESC press and the start of a sequence look the same; the read
	// timeout is the only way to tell them apart
	var seq [2]byte
	for i := range seq {
		b, ok, err := d.readByte()
		if err != nil {
			return Event{}, err
		}
		if !ok {
			return Event{Key: KeyEscape}, nil
		}
		seq[i] = b
	}

	if seq[0] == '[' {
		switch seq[1] {
		case 'A':
			return Event{Key: KeyUp}, nil
		case 'B':
			return Event{Key: KeyDown}, nil
		case 'C':
			return Event{Key: KeyRight}, nil
		case 'D':
			return Event{Key: KeyLeft}, nil
		}
	}
	return Event{Key: KeyEscape}, nil
}

// readByte performs one read; ok is false on timeout
func (d *Decoder) readByte() (byte, bool, error) {
	n, err := d.r.Read(d.buf[:])
	if n == 1 {
		return d.buf[0], true, nil
	}
	if err != nil {
		return 0, false, readFailure(err)
	}
	return 0, false, nil
}

func readFailure(err error) error {
	if err == io.EOF {
		return fault.Wrap(fault.KindIO, "read", ErrInputClosed)
	}
	if fault.KindOf(err) != fault.KindUnknown {
		return err
	}
	return fault.Wrap(fault.KindIO, "read", err)
}
