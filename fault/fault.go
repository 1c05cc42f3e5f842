// Package fault classifies the fatal failures of the viewer.
//
// Every failure that reaches the top level is one of three kinds: the
// terminal attributes could not be read or applied, the screen size could not
// be queried, or an input/file read failed. All of them end the process; the
// kind only decides how the failure is described.
package fault

import (
	"github.com/pkg/errors"
)

// Kind is the failure category
type Kind uint8

const (
	KindUnknown       Kind = iota
	KindConfiguration      // terminal attribute get/set
	KindDeviceQuery        // screen size query
	KindIO                 // input read or seed file open
)

func (k Kind) String() string {
	switch k {
	case KindConfiguration:
		return "configuration"
	case KindDeviceQuery:
		return "device query"
	case KindIO:
		return "io"
	}
	return "unknown"
}

// Error carries the failing operation and its OS-level cause
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

// Error formats as "op: cause", the way perror(3) reports
func (e *Error) Error() string {
	if e.Err == nil {
		return e.Op
	}
	return e.Op + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Wrap attaches kind and operation to err, recording the call stack of the
// wrap site. Returns nil for a nil err.
func Wrap(kind Kind, op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Op: op, Err: errors.WithStack(err)}
}

// KindOf reports the kind of the outermost fault in err's chain
func KindOf(err error) Kind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return KindUnknown
}

// Is reports whether err is a fault of the given kind
func Is(err error, kind Kind) bool {
	return KindOf(err) == kind
}
