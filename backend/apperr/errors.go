// Package apperr defines the error kinds shared by the tracker, the session
// store and the stats store. Handlers map a kind to a response status.
package apperr

import (
	"errors"
	"fmt"
)

// Error kinds.
var (
	// ErrIO indicates a file or database could not be read or written.
	ErrIO = errors.New("io error")

	// ErrValidation indicates a required field is missing or malformed.
	ErrValidation = errors.New("validation error")

	// ErrNotFound indicates the referenced item, session or folder does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict indicates the change would collide with an existing entity.
	ErrConflict = errors.New("already exists")

	// ErrConsistency indicates persisted data could not be parsed.
	ErrConsistency = errors.New("corrupt data")
)

// Error carries the operation and kind of a failure.
type Error struct {
	Op   string
	Kind error
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	msg := e.Msg
	if msg == "" {
		msg = e.Kind.Error()
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	if e.Op == "" {
		return msg
	}
	return e.Op + ": " + msg
}

// Unwrap exposes both the kind and the cause to errors.Is / errors.As.
func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func Validation(op, msg string) error {
	return &Error{Op: op, Kind: ErrValidation, Msg: msg}
}

func NotFound(op, msg string) error {
	return &Error{Op: op, Kind: ErrNotFound, Msg: msg}
}

func Conflict(op, msg string) error {
	return &Error{Op: op, Kind: ErrConflict, Msg: msg}
}

func IO(op string, err error) error {
	return &Error{Op: op, Kind: ErrIO, Err: err}
}

func Consistency(op string, err error) error {
	return &Error{Op: op, Kind: ErrConsistency, Err: err}
}

// IsValidation reports whether err is a validation failure.
func IsValidation(err error) bool { return errors.Is(err, ErrValidation) }

// IsNotFound reports whether err names a missing entity.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// IsConflict reports whether err is a uniqueness conflict.
func IsConflict(err error) bool { return errors.Is(err, ErrConflict) }

// IsConsistency reports whether err comes from corrupt persisted data.
func IsConsistency(err error) bool { return errors.Is(err, ErrConsistency) }
