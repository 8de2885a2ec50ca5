package unchecked

import "fmt"

// UncheckedError carries a failure that was not already unchecked and is not
// an I/O failure. Cause is the original error.
type UncheckedError struct {
	// Message is optional context placed in front of the cause.
	Message string
	// Cause is the error returned by the wrapped function.
	Cause error
}

// NewUncheckedError returns an *UncheckedError for cause.
func NewUncheckedError(cause error) *UncheckedError {
	return &UncheckedError{Cause: cause}
}

// NewUncheckedErrorf returns an *UncheckedError for cause with a formatted message.
func NewUncheckedErrorf(cause error, format string, a ...any) *UncheckedError {
	return &UncheckedError{Message: fmt.Sprintf(format, a...), Cause: cause}
}

func (e *UncheckedError) Error() string {
	return carrierMessage("unchecked", e.Message, e.Cause)
}

// Unwrap returns the original cause.
func (e *UncheckedError) Unwrap() error { return e.Cause }

// UncheckedIOError carries an input/output failure. Cause is the original
// error, e.g. an *fs.PathError.
type UncheckedIOError struct {
	// Message is optional context placed in front of the cause.
	Message string
	// Cause is the error returned by the wrapped function.
	Cause error
}

// NewUncheckedIOError returns an *UncheckedIOError for cause.
func NewUncheckedIOError(cause error) *UncheckedIOError {
	return &UncheckedIOError{Cause: cause}
}

// NewUncheckedIOErrorf returns an *UncheckedIOError for cause with a formatted message.
func NewUncheckedIOErrorf(cause error, format string, a ...any) *UncheckedIOError {
	return &UncheckedIOError{Message: fmt.Sprintf(format, a...), Cause: cause}
}

func (e *UncheckedIOError) Error() string {
	return carrierMessage("unchecked io", e.Message, e.Cause)
}

// Unwrap returns the original cause.
func (e *UncheckedIOError) Unwrap() error { return e.Cause }

func carrierMessage(prefix, message string, cause error) string {
	if message != "" {
		prefix = message
	}
	if cause == nil {
		return prefix
	}
	return prefix + ": " + cause.Error()
}
