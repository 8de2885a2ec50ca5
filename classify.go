package unchecked

import (
	"errors"
	"io"
	"io/fs"
	"net"
	"os"
	"runtime"
)

// Kind is the category a failure is normalized into.
type Kind int

const (
	// KindNone means there was no failure.
	KindNone Kind = iota
	// KindUnchecked failures are already unchecked and propagate unchanged.
	KindUnchecked
	// KindIO failures come from input/output and are raised as *UncheckedIOError.
	KindIO
	// KindGeneric covers every other failure, raised as *UncheckedError.
	KindGeneric
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindUnchecked:
		return "unchecked"
	case KindIO:
		return "io"
	case KindGeneric:
		return "generic"
	default:
		return "unknown"
	}
}

// ioSentinels are the io, fs and net sentinel errors that count as I/O failures.
var ioSentinels = []error{
	io.EOF,
	io.ErrUnexpectedEOF,
	io.ErrShortWrite,
	io.ErrShortBuffer,
	io.ErrClosedPipe,
	io.ErrNoProgress,
	fs.ErrNotExist,
	fs.ErrExist,
	fs.ErrPermission,
	fs.ErrClosed,
	os.ErrDeadlineExceeded,
	net.ErrClosed,
}

// Classify reports which Kind err belongs to. Only err's own type makes it
// already unchecked; an error that merely wraps a carrier or a runtime.Error
// is classified like any other. The I/O check looks at the whole chain with
// errors.Is and errors.As. The message is never consulted. The checks run in
// order: already unchecked, then I/O, then generic.
func Classify(err error) Kind {
	switch {
	case err == nil:
		return KindNone
	case isUnchecked(err):
		return KindUnchecked
	case isIO(err):
		return KindIO
	default:
		return KindGeneric
	}
}

// Normalize returns the error Invoke panics with for err: err itself when it
// is already unchecked, a new *UncheckedIOError or *UncheckedError with err
// as Cause otherwise. Normalize(nil) is nil.
func Normalize(err error) error {
	switch Classify(err) {
	case KindNone:
		return nil
	case KindUnchecked:
		return err
	case KindIO:
		return NewUncheckedIOError(err)
	default:
		return NewUncheckedError(err)
	}
}

func isUnchecked(err error) bool {
	switch err.(type) {
	case runtime.Error, *UncheckedError, *UncheckedIOError:
		return true
	default:
		return false
	}
}

// ioMarker is implemented by errors that declare whether they are I/O
// failures. The first marker in the chain decides.
type ioMarker interface {
	IOError() bool
}

func isIO(err error) bool {
	var (
		marker  ioMarker
		pathErr *fs.PathError
		linkErr *os.LinkError
		sysErr  *os.SyscallError
		opErr   *net.OpError
		dnsErr  *net.DNSError
		addrErr *net.AddrError
	)
	if errors.As(err, &marker) {
		return marker.IOError()
	}
	if errors.As(err, &pathErr) || errors.As(err, &linkErr) || errors.As(err, &sysErr) ||
		errors.As(err, &opErr) || errors.As(err, &dnsErr) || errors.As(err, &addrErr) {
		return true
	}
	for _, sentinel := range ioSentinels {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}
