package editor

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when an edit or delete session is requested for
// an id that is not in the collection.
var ErrNotFound = errors.New("record not found")

// ErrSessionOpen is returned when a new session is requested while another
// one is still open. The caller must submit or cancel first.
var ErrSessionOpen = errors.New("another editing session is open")

// ErrNoSession is returned when a draft or commit operation is invoked
// without an open session.
var ErrNoSession = errors.New("no editing session is open")

// ValidationError blocks a commit. It is local, synchronous and non-fatal:
// the session stays open with the draft intact and the message is meant to
// be shown to the user verbatim.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// IsValidation reports whether err is a commit-blocking validation failure.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

func invalidf(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}
