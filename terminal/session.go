//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package terminal

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
	"golang.org/x/term"

	"github.com/lixenwraith/kilo/fault"
)

// ErrZeroColumns is the cause reported when the device claims no width
var ErrZeroColumns = errors.New("terminal reports zero columns")

// Session owns the raw-mode configuration of one terminal device and the
// attributes to restore when it ends. Exactly one Session should exist per
// process; Restore must run on every exit path.
type Session struct {
	in    *os.File
	out   *os.File
	inFd  int
	outFd int

	orig     *unix.Termios
	restored bool
}

// Open saves the terminal attributes of in and switches it to raw mode with
// a 100ms read timeout
func Open(in, out *os.File) (*Session, error) {
	s := &Session{
		in:    in,
		out:   out,
		inFd:  int(in.Fd()),
		outFd: int(out.Fd()),
	}

	if !term.IsTerminal(s.inFd) {
		return nil, fault.Wrap(fault.KindConfiguration, "tcgetattr", unix.ENOTTY)
	}

	orig, err := unix.IoctlGetTermios(s.inFd, ioctlGetTermios)
	if err != nil {
		return nil, fault.Wrap(fault.KindConfiguration, "tcgetattr", err)
	}
	s.orig = orig

	raw := makeRaw(*orig)
	if err := unix.IoctlSetTermios(s.inFd, ioctlSetTermiosFlush, &raw); err != nil {
		return nil, fault.Wrap(fault.KindConfiguration, "tcsetattr", err)
	}
	return s, nil
}

// makeRaw derives raw-mode attributes from the saved ones
func makeRaw(t unix.Termios) unix.Termios {
	// Input: no break signal, no CR-to-NL, no parity check, no 8th bit strip, no XON/XOFF
	t.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	// Output: no post processing ("\n" is not turned into "\r\n")
	t.Oflag &^= unix.OPOST
	t.Cflag |= unix.CS8
	// Local: no echo, no line buffering, no Ctrl-V, no Ctrl-C/Ctrl-Z signals
	t.Lflag &^= unix.ECHO | unix.ICANON | unix.IEXTEN | unix.ISIG

	// read(2) returns as soon as any input is available, or after 1/10s with nothing
	t.Cc[unix.VMIN] = 0
	t.Cc[unix.VTIME] = 1
	return t
}

// Restore re-applies the attributes saved by Open. Safe to call multiple times.
func (s *Session) Restore() error {
	if s == nil || s.orig == nil || s.restored {
		return nil
	}
	if err := unix.IoctlSetTermios(s.inFd, ioctlSetTermiosFlush, s.orig); err != nil {
		return fault.Wrap(fault.KindConfiguration, "tcsetattr", err)
	}
	s.restored = true
	return nil
}

// Size queries the window size of the output device
func (s *Session) Size() (rows, cols int, err error) {
	ws, err := unix.IoctlGetWinsize(s.outFd, unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, fault.Wrap(fault.KindDeviceQuery, "getWindowSize", err)
	}
	if ws.Col == 0 {
		return 0, 0, fault.Wrap(fault.KindDeviceQuery, "getWindowSize", ErrZeroColumns)
	}
	return int(ws.Row), int(ws.Col), nil
}

// Read reads raw input. A timeout returns (0, nil); a hung-up device returns io.EOF.
func (s *Session) Read(p []byte) (int, error) {
	n, err := unix.Read(s.inFd, p)
	if err != nil {
		if err == unix.EINTR || err == unix.EAGAIN {
			return 0, nil
		}
		return 0, fault.Wrap(fault.KindIO, "read", err)
	}
	if n == 0 && s.hungUp() {
		return 0, io.EOF
	}
	return n, nil
}

// hungUp distinguishes an expired VTIME from a closed input after a zero-byte read
func (s *Session) hungUp() bool {
	fds := []unix.PollFd{{Fd: int32(s.inFd), Events: unix.POLLIN}}
	n, err := unix.Poll(fds, 0)
	if err != nil || n == 0 {
		return false
	}
	return fds[0].Revents&(unix.POLLHUP|unix.POLLERR|unix.POLLNVAL) != 0
}

// Write sends p to the device in a single write call
func (s *Session) Write(p []byte) error {
	if _, err := s.out.Write(p); err != nil {
		return fault.Wrap(fault.KindIO, "write", err)
	}
	return nil
}

// ClearScreen erases the display and homes the cursor
func (s *Session) ClearScreen() error {
	return s.Write(AppendClear(nil))
}

// EmergencyReset leaves the terminal clean after a crash: clear, show the
// cursor, restore attributes. Errors are ignored.
func (s *Session) EmergencyReset() {
	if s == nil {
		return
	}
	buf := AppendClear(nil)
	buf = append(buf, SeqCursorShow...)
	s.out.Write(buf)
	s.out.Sync()
	s.Restore()
}
