package unchecked

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net"
	"os"
	"runtime"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// markedError declares its own I/O category.
type markedError struct {
	msg  string
	flag bool
}

func (e markedError) Error() string { return e.msg }
func (e markedError) IOError() bool { return e.flag }

func runtimeError(t *testing.T) runtime.Error {
	t.Helper()
	zero := 0
	v := recovered(func() { divide(1, zero) })
	rtErr, ok := v.(runtime.Error)
	require.True(t, ok, "expected runtime.Error, got %T", v)
	return rtErr
}

func TestClassify(t *testing.T) {
	t.Parallel()
	pathErr := &fs.PathError{Op: "read", Path: "/", Err: syscall.EISDIR}
	rtErr := runtimeError(t)

	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"nil", nil, KindNone},

		{"runtime error", rtErr, KindUnchecked},
		{"wrapped runtime error is carried", fmt.Errorf("compute: %w", rtErr), KindGeneric},
		{"unchecked carrier", NewUncheckedError(errors.New("x")), KindUnchecked},
		{"unchecked io carrier", NewUncheckedIOError(pathErr), KindUnchecked},
		{"carrier wrapping io error", NewUncheckedError(pathErr), KindUnchecked},
		{"wrapped carrier is carried again", fmt.Errorf("save: %w", NewUncheckedError(errors.New("root"))), KindGeneric},
		{"wrapped carrier of io error is io", fmt.Errorf("outer: %w", NewUncheckedError(pathErr)), KindIO},

		{"path error", pathErr, KindIO},
		{"wrapped path error", fmt.Errorf("load config: %w", pathErr), KindIO},
		{"link error", &os.LinkError{Op: "symlink", Old: "a", New: "b", Err: fs.ErrExist}, KindIO},
		{"syscall error", os.NewSyscallError("fsync", syscall.EIO), KindIO},
		{"net op error", &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")}, KindIO},
		{"dns error", &net.DNSError{Err: "no such host", Name: "example.invalid"}, KindIO},
		{"addr error", &net.AddrError{Err: "missing port", Addr: "localhost"}, KindIO},
		{"io.EOF", io.EOF, KindIO},
		{"io.ErrUnexpectedEOF", io.ErrUnexpectedEOF, KindIO},
		{"io.ErrShortWrite", io.ErrShortWrite, KindIO},
		{"io.ErrClosedPipe", io.ErrClosedPipe, KindIO},
		{"fs.ErrNotExist", fs.ErrNotExist, KindIO},
		{"fs.ErrPermission", fs.ErrPermission, KindIO},
		{"os.ErrDeadlineExceeded", os.ErrDeadlineExceeded, KindIO},
		{"net.ErrClosed", net.ErrClosed, KindIO},
		{"joined with io error", errors.Join(errors.New("first"), io.EOF), KindIO},
		{"marked io", markedError{msg: "disk gone", flag: true}, KindIO},

		{"plain error", errors.New("incorrect path"), KindGeneric},
		{"formatted error", fmt.Errorf("bad value %d", 42), KindGeneric},
		{"context canceled", context.Canceled, KindGeneric},
		{"context deadline", context.DeadlineExceeded, KindGeneric},
		{"fs.ErrInvalid", fs.ErrInvalid, KindGeneric},
		{"marked not io", markedError{msg: "disk fine"}, KindGeneric},
		{"marker overrides path error behind it", fmt.Errorf("%w: %w", markedError{msg: "m"}, pathErr), KindGeneric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Classify(tt.err))
		})
	}
}

func TestClassify_IgnoresMessage(t *testing.T) {
	t.Parallel()
	// Messages that look like I/O or runtime failures do not change the category.
	for _, msg := range []string{"EOF", "read /: is a directory", "runtime error: integer divide by zero"} {
		assert.Equal(t, KindGeneric, Classify(errors.New(msg)), msg)
	}
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	t.Run("nil", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, Normalize(nil))
	})

	t.Run("unchecked is returned as is", func(t *testing.T) {
		t.Parallel()
		original := NewUncheckedIOError(io.EOF)
		assert.Same(t, original, Normalize(original))
	})

	t.Run("io error is carried", func(t *testing.T) {
		t.Parallel()
		cause := fmt.Errorf("reading header: %w", io.ErrUnexpectedEOF)
		var ioErr *UncheckedIOError
		require.ErrorAs(t, Normalize(cause), &ioErr)
		assert.Same(t, cause, ioErr.Cause)
		assert.ErrorIs(t, ioErr, io.ErrUnexpectedEOF)
	})

	t.Run("generic error is carried", func(t *testing.T) {
		t.Parallel()
		cause := errors.New("incorrect path")
		var genErr *UncheckedError
		require.ErrorAs(t, Normalize(cause), &genErr)
		assert.Same(t, cause, genErr.Cause)
	})

	t.Run("wrapped carrier gets a new carrier", func(t *testing.T) {
		t.Parallel()
		inner := NewUncheckedError(errors.New("root"))
		wrapped := fmt.Errorf("save: %w", inner)
		var genErr *UncheckedError
		require.ErrorAs(t, Normalize(wrapped), &genErr)
		assert.Same(t, wrapped, genErr.Cause)
		assert.ErrorIs(t, genErr, inner)
	})

	t.Run("normalizing twice does not rewrap", func(t *testing.T) {
		t.Parallel()
		once := Normalize(errors.New("x"))
		assert.Same(t, once, Normalize(once))
	})
}

func TestKind_String(t *testing.T) {
	t.Parallel()
	tests := []struct {
		kind Kind
		want string
	}{
		{KindNone, "none"},
		{KindUnchecked, "unchecked"},
		{KindIO, "io"},
		{KindGeneric, "generic"},
		{Kind(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", int(tt.kind), got, tt.want)
		}
	}
}
